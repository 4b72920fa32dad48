package application

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/logitrack/logistics-api/internal/domain/entity"
	"github.com/logitrack/logistics-api/internal/domain/policy"
	repo "github.com/logitrack/logistics-api/internal/domain/repository"
	"github.com/logitrack/logistics-api/pkg/apperr"
	"github.com/logitrack/logistics-api/pkg/helpers"
	"github.com/logitrack/logistics-api/pkg/mailer"
)

// canonical package id shape: 8-4-4-4-12 hex groups
var uuidPattern = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

const resolveCacheTTL = 10 * time.Minute

func resolveCacheKey(code string) string {
	return "pkg:code:" + code
}

// PackageService owns the package lifecycle: tracking-code generation, the
// status state machine, and dual-mode lookup by id or tracking code. It is
// the sole writer of Package.Status.
type PackageService struct {
	Repo   repo.PackageRepository
	Users  repo.UserRepository
	Redis  *redis.Client
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewPackageService(r repo.PackageRepository, users repo.UserRepository, rdb *redis.Client, pub *helpers.RabbitPublisher, logger *logrus.Logger) *PackageService {
	return &PackageService{Repo: r, Users: users, Redis: rdb, Pub: pub, Logger: logger}
}

type CreatePackageInput struct {
	Description        string
	Weight             float64
	OriginAddress      string
	DestinationAddress string
	RecipientName      string
	RecipientPhone     string
}

// Create registers a new package in pending status under ownerID.
// The tracking code suffix is drawn uniformly from [0, 99999] with no
// collision check; the unique index on tracking_code is the only backstop,
// and a losing writer sees a conflict.
func (s *PackageService) Create(ctx context.Context, in CreatePackageInput, ownerID string) (*entity.Package, error) {
	p := &entity.Package{
		ID:                 uuid.NewString(),
		TrackingCode:       newTrackingCode(),
		Description:        in.Description,
		Weight:             in.Weight,
		OriginAddress:      in.OriginAddress,
		DestinationAddress: in.DestinationAddress,
		RecipientName:      in.RecipientName,
		RecipientPhone:     in.RecipientPhone,
		Status:             entity.StatusPending,
		OwnerID:            ownerID,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"package_id": p.ID, "tracking_code": p.TrackingCode, "owner_id": ownerID}).Info("package created")
	}
	return p, nil
}

// GetByID returns a package visible to the requester: admins see
// everything, other users only their own packages.
func (s *PackageService) GetByID(id string, requester entity.Requester) (*entity.Package, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanReadPackage(requester, p) {
		return nil, apperr.Forbidden("no access to package %s", id)
	}
	return p, nil
}

// ListMine returns all packages owned by ownerID.
func (s *PackageService) ListMine(ownerID string) ([]*entity.Package, error) {
	return s.Repo.ListByOwner(ownerID)
}

// ListAll returns every package. The boundary restricts this to admins.
func (s *PackageService) ListAll() ([]*entity.Package, error) {
	return s.Repo.ListAll()
}

// UpdateStatus moves a package to newStatus. Terminal packages (delivered,
// cancelled) reject every update, including re-setting the current value.
// Any non-terminal status may move to any other status. On success a
// notification job for the owner is queued; queue failures are logged and
// do not fail the update.
func (s *PackageService) UpdateStatus(ctx context.Context, id string, newStatus entity.PackageStatus) (*entity.Package, error) {
	if !entity.ValidPackageStatus(newStatus) {
		return nil, apperr.Validation("unknown status %q", newStatus)
	}
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !p.CanBeUpdated() {
		return nil, apperr.InvalidTransition("package in status %q cannot be updated", p.Status)
	}
	updated, err := s.Repo.UpdateStatus(id, newStatus)
	if err != nil {
		return nil, err
	}
	s.notifyStatusChange(ctx, updated)
	return updated, nil
}

// Resolve looks a package up by either its canonical id or its tracking
// code. An id-shaped argument that misses falls through to the tracking-code
// lookup before reporting not found. Code lookups go through a short-lived
// Redis id cache to spare the secondary index.
func (s *PackageService) Resolve(ctx context.Context, idOrCode string) (*entity.Package, error) {
	if uuidPattern.MatchString(idOrCode) {
		p, err := s.Repo.GetByID(idOrCode)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
	}
	return s.resolveByCode(ctx, idOrCode)
}

func (s *PackageService) resolveByCode(ctx context.Context, code string) (*entity.Package, error) {
	if s.Redis != nil {
		if id, err := s.Redis.Get(ctx, resolveCacheKey(code)).Result(); err == nil && id != "" {
			if p, err := s.Repo.GetByID(id); err == nil {
				return p, nil
			}
		}
	}
	p, err := s.Repo.GetByTrackingCode(code)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := s.Redis.Set(ctx, resolveCacheKey(code), p.ID, resolveCacheTTL).Err(); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("tracking_code", code).Warn("resolve cache set failed")
		}
	}
	return p, nil
}

func (s *PackageService) notifyStatusChange(ctx context.Context, p *entity.Package) {
	if s.Pub == nil {
		return
	}
	job := mailer.StatusNotificationJob{
		PackageID:     p.ID,
		TrackingCode:  p.TrackingCode,
		Status:        string(p.Status),
		RecipientName: p.RecipientName,
	}
	if s.Users != nil {
		if owner, err := s.Users.GetByID(p.OwnerID); err == nil {
			job.To = owner.Email
		}
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("package_id", p.ID).Warn("status notification publish failed")
	}
}

// newTrackingCode builds TRK-YYYYMMDD-NNNNN with a uniformly random
// zero-padded 5-digit suffix. Uniqueness is not checked here.
func newTrackingCode() string {
	return fmt.Sprintf("TRK-%s-%05d", time.Now().Format("20060102"), rand.Intn(100000))
}
