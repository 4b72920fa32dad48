package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logitrack/logistics-api/internal/domain/entity"
	"github.com/logitrack/logistics-api/pkg/apperr"
)

func newTrackingFixture() (*TrackingService, *PackageService, *fakeTrackingRepo) {
	pkgRepo := newFakePackageRepo()
	pkgSvc := NewPackageService(pkgRepo, newFakeUserRepo(), nil, nil, nil)
	journal := newFakeTrackingRepo()
	return NewTrackingService(journal, pkgSvc, nil), pkgSvc, journal
}

func TestRegisterEvent_StoresUnderCanonicalID(t *testing.T) {
	svc, pkgSvc, _ := newTrackingFixture()
	p := createTestPackage(t, pkgSvc, "owner-1")

	// register by tracking code
	e, err := svc.RegisterEvent(context.Background(), p.TrackingCode, RegisterEventInput{
		Location: "Warehouse A",
		Status:   "received",
	}, "staff-1")
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, p.ID, e.PackageID, "events are keyed by the canonical id even when addressed by code")
	assert.Equal(t, "staff-1", e.RegisteredBy)
	assert.False(t, e.Timestamp.IsZero())

	// read back by id: both address forms see the same history
	byID, err := svc.GetHistory(context.Background(), p.ID)
	require.NoError(t, err)
	byCode, err := svc.GetHistory(context.Background(), p.TrackingCode)
	require.NoError(t, err)
	require.Len(t, byID, 1)
	require.Len(t, byCode, 1)
	assert.Equal(t, byID[0].ID, byCode[0].ID)
}

func TestRegisterEvent_UnknownPackageWritesNothing(t *testing.T) {
	svc, _, journal := newTrackingFixture()

	_, err := svc.RegisterEvent(context.Background(), "TRK-20260101-00000", RegisterEventInput{
		Location: "Nowhere",
		Status:   "lost",
	}, "staff-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.Empty(t, journal.events, "failed existence check must not append")
}

func TestRegisterEvent_JournalWriteFailure(t *testing.T) {
	svc, pkgSvc, journal := newTrackingFixture()
	p := createTestPackage(t, pkgSvc, "owner-1")

	journal.saveErr = errors.New("index unavailable")
	_, err := svc.RegisterEvent(context.Background(), p.ID, RegisterEventInput{
		Location: "Warehouse A",
		Status:   "received",
	}, "staff-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEventWriteFailed))
}

func TestGetHistory_NewestFirst(t *testing.T) {
	svc, pkgSvc, journal := newTrackingFixture()
	p := createTestPackage(t, pkgSvc, "owner-1")

	base := time.Now().UTC()
	for i, label := range []string{"received", "sorted", "loaded"} {
		journal.events = append(journal.events, &entity.TrackingEvent{
			ID:        label,
			PackageID: p.ID,
			Status:    label,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
	}

	events, err := svc.GetHistory(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "loaded", events[0].Status)
	assert.Equal(t, "sorted", events[1].Status)
	assert.Equal(t, "received", events[2].Status)
}

func TestGetHistory_EmptyForEventlessPackage(t *testing.T) {
	svc, pkgSvc, _ := newTrackingFixture()
	p := createTestPackage(t, pkgSvc, "owner-1")

	events, err := svc.GetHistory(context.Background(), p.ID)
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestGetHistory_UnknownPackage(t *testing.T) {
	svc, _, _ := newTrackingFixture()

	_, err := svc.GetHistory(context.Background(), "TRK-20260101-00000")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
