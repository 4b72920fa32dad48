package entity

import (
	"time"
)

// TrackingEvent is one entry in a package's append-only tracking history.
// Status here is a free-text checkpoint label and is independent of the
// PackageStatus enum. Events are immutable once written.
type TrackingEvent struct {
	ID           string
	PackageID    string
	Location     string
	Status       string
	Description  string
	RegisteredBy string
	Timestamp    time.Time
}
