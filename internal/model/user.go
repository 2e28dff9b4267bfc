package model

import "time"

// User logs in by email. OrganizationID is nil for unassigned users, who
// have no access to any tenant-scoped data.
type User struct {
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Email          string    `json:"email"`
	OrganizationID *int64    `json:"organization_id"`
	ID             int64     `json:"id"`
	IsActive       bool      `json:"is_active"`
	IsStaff        bool      `json:"is_staff"`
}

// Actor is the authenticated identity executing a request. It is resolved
// from a bearer credential and passed explicitly to every resolver.
type Actor struct {
	Email          string
	OrganizationID *int64
	ID             int64
	IsActive       bool
}

// ActorForUser derives the request identity from a stored user.
func ActorForUser(u *User) *Actor {
	return &Actor{
		ID:             u.ID,
		Email:          u.Email,
		OrganizationID: u.OrganizationID,
		IsActive:       u.IsActive,
	}
}
