package repository

import (
	"context"

	"github.com/logitrack/logistics-api/internal/domain/entity"
)

// TrackingRepository is the append-only store for tracking events.
// Events are never updated or deleted; reads come back newest first.
type TrackingRepository interface {
	Save(ctx context.Context, e *entity.TrackingEvent) error
	FindByPackageID(ctx context.Context, packageID string) ([]*entity.TrackingEvent, error)
}
