package dto

import (
	"time"

	"planline.app/api-server/common/optional"
	"planline.app/api-server/internal/model"
	"planline.app/api-server/internal/service"
)

const dueDateLayout = "2006-01-02"

type CreateProjectRequest struct {
	Name        string                    `json:"name" binding:"required,min=1,max=200"`
	Description optional.Optional[string] `json:"description"`
	Status      optional.Optional[string] `json:"status"`
	DueDate     optional.Optional[string] `json:"due_date"`
}

func (r *CreateProjectRequest) ToInput() service.CreateProjectInput {
	return service.CreateProjectInput{
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
		DueDate:     r.DueDate,
	}
}

// UpdateProjectRequest is a partial update: keys absent from the body leave
// the stored field untouched.
type UpdateProjectRequest struct {
	Name        optional.Optional[string] `json:"name"`
	Description optional.Optional[string] `json:"description"`
	Status      optional.Optional[string] `json:"status"`
	DueDate     optional.Optional[string] `json:"due_date"`
}

func (r *UpdateProjectRequest) ToPatch() service.ProjectPatch {
	return service.ProjectPatch{
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
		DueDate:     r.DueDate,
	}
}

type ProjectResponse struct {
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	DueDate        *string   `json:"due_date,omitempty"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	ID             int64     `json:"id,string"`
	OrganizationID int64     `json:"organization_id,string"`
}

func ToProjectResponse(p *model.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		Name:           p.Name,
		Description:    p.Description,
		Status:         string(p.Status),
		DueDate:        formatDueDate(p.DueDate),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func ToProjectResponses(projects []model.Project) []ProjectResponse {
	result := make([]ProjectResponse, len(projects))
	for i := range projects {
		result[i] = *ToProjectResponse(&projects[i])
	}
	return result
}

type ProjectStatsResponse struct {
	CompletionRate float64 `json:"completion_rate"`
	TotalTasks     int64   `json:"total_tasks"`
	CompletedTasks int64   `json:"completed_tasks"`
}

func ToProjectStatsResponse(stats *service.ProjectStats) *ProjectStatsResponse {
	return &ProjectStatsResponse{
		TotalTasks:     stats.TotalTasks,
		CompletedTasks: stats.CompletedTasks,
		CompletionRate: stats.CompletionRate,
	}
}

// formatDueDate renders the stored timestamp back as the calendar date it was
// submitted as.
func formatDueDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(dueDateLayout)
	return &formatted
}
