package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPackageStatus(t *testing.T) {
	for _, s := range []PackageStatus{StatusPending, StatusInTransit, StatusDelivered, StatusCancelled} {
		assert.True(t, ValidPackageStatus(s), string(s))
	}
	assert.False(t, ValidPackageStatus(""))
	assert.False(t, ValidPackageStatus("lost"))
	assert.False(t, ValidPackageStatus("Pending"), "statuses are case-sensitive")
}

func TestCanBeUpdated(t *testing.T) {
	assert.True(t, (&Package{Status: StatusPending}).CanBeUpdated())
	assert.True(t, (&Package{Status: StatusInTransit}).CanBeUpdated())
	assert.False(t, (&Package{Status: StatusDelivered}).CanBeUpdated())
	assert.False(t, (&Package{Status: StatusCancelled}).CanBeUpdated())
}
