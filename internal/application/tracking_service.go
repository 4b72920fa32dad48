package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/logitrack/logistics-api/internal/domain/entity"
	repo "github.com/logitrack/logistics-api/internal/domain/repository"
)

// ErrEventWriteFailed marks the case where the package existence check
// passed but the journal write itself failed. There is no compensating
// rollback across the two stores, so this is surfaced as its own class
// instead of a generic storage error.
var ErrEventWriteFailed = errors.New("tracking event write failed")

// TrackingService owns the append-only tracking history. It holds no state
// beyond the journal itself and validates package existence through the
// ledger before every write and read.
type TrackingService struct {
	Repo     repo.TrackingRepository
	Packages *PackageService
	Logger   *logrus.Logger
}

func NewTrackingService(r repo.TrackingRepository, packages *PackageService, logger *logrus.Logger) *TrackingService {
	return &TrackingService{Repo: r, Packages: packages, Logger: logger}
}

type RegisterEventInput struct {
	Location    string
	Status      string
	Description string
}

// RegisterEvent appends a tracking event to a package's history. The
// package may be addressed by id or tracking code; the event is stored
// under the canonical id so both forms read back the same history.
// Registration is open to any authenticated caller. The timestamp is
// assigned here, not by the caller.
func (s *TrackingService) RegisterEvent(ctx context.Context, packageIDOrCode string, in RegisterEventInput, registeredBy string) (*entity.TrackingEvent, error) {
	pkg, err := s.Packages.Resolve(ctx, packageIDOrCode)
	if err != nil {
		return nil, err
	}

	e := &entity.TrackingEvent{
		ID:           uuid.NewString(),
		PackageID:    pkg.ID,
		Location:     in.Location,
		Status:       in.Status,
		Description:  in.Description,
		RegisteredBy: registeredBy,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.Repo.Save(ctx, e); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("package_id", pkg.ID).Error("tracking event write failed after existence check")
		}
		return nil, fmt.Errorf("%w: %v", ErrEventWriteFailed, err)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"package_id": pkg.ID, "event_id": e.ID, "status": e.Status}).Info("tracking event registered")
	}
	return e, nil
}

// GetHistory returns a package's events newest first. A package with no
// events yields an empty slice, not an error.
func (s *TrackingService) GetHistory(ctx context.Context, packageIDOrCode string) ([]*entity.TrackingEvent, error) {
	pkg, err := s.Packages.Resolve(ctx, packageIDOrCode)
	if err != nil {
		return nil, err
	}
	events, err := s.Repo.FindByPackageID(ctx, pkg.ID)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []*entity.TrackingEvent{}
	}
	return events, nil
}
