package model

import "time"

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectOnHold    ProjectStatus = "ON_HOLD"
	ProjectCompleted ProjectStatus = "COMPLETED"
)

// ProjectStatuses is the closed value set accepted for Project.Status.
var ProjectStatuses = []ProjectStatus{ProjectActive, ProjectOnHold, ProjectCompleted}

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectOnHold, ProjectCompleted:
		return true
	}
	return false
}

// Project belongs to exactly one organization for its whole lifetime.
// DueDate is a calendar date; nil means no due date.
type Project struct {
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	DueDate        *time.Time    `json:"due_date"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Status         ProjectStatus `json:"status"`
	ID             int64         `json:"id"`
	OrganizationID int64         `json:"organization_id"`
}
