package entity

import (
	"time"
)

// PackageStatus is the shipment lifecycle state.
// Delivered and cancelled are terminal: once reached, the status is frozen.
type PackageStatus string

const (
	StatusPending   PackageStatus = "pending"
	StatusInTransit PackageStatus = "in_transit"
	StatusDelivered PackageStatus = "delivered"
	StatusCancelled PackageStatus = "cancelled"
)

// ValidPackageStatus reports whether s is one of the known lifecycle states.
func ValidPackageStatus(s PackageStatus) bool {
	switch s {
	case StatusPending, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Package is the aggregate root for the packages domain.
// TrackingCode is globally unique (TRK-YYYYMMDD-NNNNN) and immutable
// after creation. OwnerID references an existing user; the database
// restricts deleting a referenced user.
type Package struct {
	ID                 string
	TrackingCode       string
	Description        string
	Weight             float64
	OriginAddress      string
	DestinationAddress string
	RecipientName      string
	RecipientPhone     string
	Status             PackageStatus
	OwnerID            string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CanBeUpdated reports whether the package accepts further status changes.
// Terminal states reject every update, including re-setting the same value.
func (p *Package) CanBeUpdated() bool {
	return p.Status != StatusDelivered && p.Status != StatusCancelled
}
