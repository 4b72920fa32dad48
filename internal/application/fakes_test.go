package application

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/logitrack/logistics-api/internal/domain/entity"
	"github.com/logitrack/logistics-api/pkg/apperr"
)

// In-memory repository fakes sharing the error taxonomy with the real
// implementations so errors.Is checks behave identically in tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return apperr.Conflict("email %s already registered", u.Email)
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.NotFound("user %s", id)
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.NotFound("user with email %s", email)
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return apperr.NotFound("user %s", u.ID)
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

type fakePackageRepo struct {
	mu       sync.Mutex
	packages map[string]*entity.Package
}

func newFakePackageRepo() *fakePackageRepo {
	return &fakePackageRepo{packages: map[string]*entity.Package{}}
}

func (r *fakePackageRepo) Create(p *entity.Package) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.packages {
		if existing.TrackingCode == p.TrackingCode {
			return apperr.Conflict("tracking code %s already exists", p.TrackingCode)
		}
	}
	cp := *p
	r.packages[p.ID] = &cp
	return nil
}

func (r *fakePackageRepo) GetByID(id string) (*entity.Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.packages[id]
	if !ok {
		return nil, apperr.NotFound("package %s", id)
	}
	cp := *p
	return &cp, nil
}

func (r *fakePackageRepo) GetByTrackingCode(code string) (*entity.Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.packages {
		if p.TrackingCode == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperr.NotFound("package with tracking code %s", code)
}

func (r *fakePackageRepo) ListByOwner(ownerID string) ([]*entity.Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Package, 0)
	for _, p := range r.packages {
		if p.OwnerID == ownerID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePackageRepo) ListAll() ([]*entity.Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Package, 0, len(r.packages))
	for _, p := range r.packages {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePackageRepo) UpdateStatus(id string, status entity.PackageStatus) (*entity.Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.packages[id]
	if !ok {
		return nil, apperr.NotFound("package %s", id)
	}
	p.Status = status
	cp := *p
	return &cp, nil
}

type fakeTrackingRepo struct {
	mu     sync.Mutex
	events []*entity.TrackingEvent
	// saveErr, when set, makes the next Save fail.
	saveErr error
}

func newFakeTrackingRepo() *fakeTrackingRepo {
	return &fakeTrackingRepo{}
}

func (r *fakeTrackingRepo) Save(_ context.Context, e *entity.TrackingEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	cp := *e
	r.events = append(r.events, &cp)
	return nil
}

func (r *fakeTrackingRepo) FindByPackageID(_ context.Context, packageID string) ([]*entity.TrackingEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.TrackingEvent, 0)
	for _, e := range r.events {
		if e.PackageID == packageID {
			cp := *e
			out = append(out, &cp)
		}
	}
	// newest first, matching the real journal
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}
