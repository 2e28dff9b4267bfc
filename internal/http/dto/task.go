package dto

import (
	"strconv"
	"time"

	"planline.app/api-server/common/optional"
	"planline.app/api-server/internal/model"
	"planline.app/api-server/internal/service"
)

type CreateTaskRequest struct {
	Title         string                    `json:"title" binding:"required,min=1,max=200"`
	Description   optional.Optional[string] `json:"description"`
	Status        optional.Optional[string] `json:"status"`
	AssigneeEmail optional.Optional[string] `json:"assignee_email"`
	DueDate       optional.Optional[string] `json:"due_date"`
}

func (r *CreateTaskRequest) ToInput() service.CreateTaskInput {
	return service.CreateTaskInput{
		Title:         r.Title,
		Description:   r.Description,
		Status:        r.Status,
		AssigneeEmail: r.AssigneeEmail,
		DueDate:       r.DueDate,
	}
}

// UpdateTaskRequest is a partial update; an explicit null assignee_email
// unassigns the task.
type UpdateTaskRequest struct {
	Title         optional.Optional[string] `json:"title"`
	Description   optional.Optional[string] `json:"description"`
	Status        optional.Optional[string] `json:"status"`
	AssigneeEmail optional.Optional[string] `json:"assignee_email"`
	DueDate       optional.Optional[string] `json:"due_date"`
}

func (r *UpdateTaskRequest) ToPatch() service.TaskPatch {
	return service.TaskPatch{
		Title:         r.Title,
		Description:   r.Description,
		Status:        r.Status,
		AssigneeEmail: r.AssigneeEmail,
		DueDate:       r.DueDate,
	}
}

type TaskResponse struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	DueDate     *string   `json:"due_date,omitempty"`
	AssigneeID  *string   `json:"assignee_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	ID          int64     `json:"id,string"`
	ProjectID   int64     `json:"project_id,string"`
}

func ToTaskResponse(t *model.Task) *TaskResponse {
	return &TaskResponse{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		AssigneeID:  formatID(t.AssigneeID),
		DueDate:     formatDueDate(t.DueDate),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ToTaskResponses(tasks []model.Task) []TaskResponse {
	result := make([]TaskResponse, len(tasks))
	for i := range tasks {
		result[i] = *ToTaskResponse(&tasks[i])
	}
	return result
}

func formatID(id *int64) *string {
	if id == nil {
		return nil
	}
	formatted := strconv.FormatInt(*id, 10)
	return &formatted
}
