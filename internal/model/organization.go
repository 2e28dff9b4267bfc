package model

import "time"

// Organization is the tenancy boundary. Every project, task and comment
// resolves to exactly one organization through its ownership chain.
type Organization struct {
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ContactEmail string    `json:"contact_email"`
	ID           int64     `json:"id"`
}
