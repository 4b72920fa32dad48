// Package policy holds the pure authorization rules for the API.
// Functions here take the requester context and the target and return a
// decision; they perform no I/O.
package policy

import "github.com/logitrack/logistics-api/internal/domain/entity"

// CanReadPackage allows admins and the package owner.
func CanReadPackage(req entity.Requester, pkg *entity.Package) bool {
	return req.Role == entity.RoleAdmin || req.ID == pkg.OwnerID
}

// CanAdministerStatus gates status mutation on role, not ownership.
func CanAdministerStatus(req entity.Requester) bool {
	return req.Role == entity.RoleAdmin
}

// CanViewUserProfile allows admins and the user themselves.
func CanViewUserProfile(req entity.Requester, targetUserID string) bool {
	return req.Role == entity.RoleAdmin || req.ID == targetUserID
}
