package entity

// Requester is the authenticated caller's identity and role, supplied by
// the auth middleware on every request that reaches the application layer.
type Requester struct {
	ID   string
	Role Role
}
