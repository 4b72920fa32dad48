package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logitrack/logistics-api/internal/domain/entity"
)

func TestCanReadPackage(t *testing.T) {
	pkg := &entity.Package{ID: "p1", OwnerID: "u1"}

	assert.True(t, CanReadPackage(entity.Requester{ID: "u1", Role: entity.RoleUser}, pkg))
	assert.True(t, CanReadPackage(entity.Requester{ID: "u2", Role: entity.RoleAdmin}, pkg))
	assert.False(t, CanReadPackage(entity.Requester{ID: "u2", Role: entity.RoleUser}, pkg))
}

func TestCanAdministerStatus(t *testing.T) {
	assert.True(t, CanAdministerStatus(entity.Requester{ID: "u1", Role: entity.RoleAdmin}))
	assert.False(t, CanAdministerStatus(entity.Requester{ID: "u1", Role: entity.RoleUser}))
}

func TestCanViewUserProfile(t *testing.T) {
	assert.True(t, CanViewUserProfile(entity.Requester{ID: "u1", Role: entity.RoleUser}, "u1"))
	assert.True(t, CanViewUserProfile(entity.Requester{ID: "u2", Role: entity.RoleAdmin}, "u1"))
	assert.False(t, CanViewUserProfile(entity.Requester{ID: "u2", Role: entity.RoleUser}, "u1"))
}
