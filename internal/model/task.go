package model

import "time"

type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskDone       TaskStatus = "DONE"
)

// TaskStatuses is the closed value set accepted for Task.Status.
var TaskStatuses = []TaskStatus{TaskTodo, TaskInProgress, TaskDone}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskDone:
		return true
	}
	return false
}

// Task belongs to exactly one project. AssigneeID, when set, references a
// user in the same organization as the task's project; deactivating that
// user leaves the reference in place rather than destroying history.
type Task struct {
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DueDate     *time.Time `json:"due_date"`
	AssigneeID  *int64     `json:"assignee_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	ID          int64      `json:"id"`
	ProjectID   int64      `json:"project_id"`
}
