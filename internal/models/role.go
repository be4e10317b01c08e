package models

// User roles. A USER becomes MEMBER on first booking and MENTOR only
// through an approved mentor request.
const (
	RoleUser   = "USER"
	RoleMember = "MEMBER"
	RoleMentor = "MENTOR"
	RoleAdmin  = "ADMIN"
)
