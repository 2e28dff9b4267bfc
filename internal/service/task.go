package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"planline.app/api-server/common/id"
	"planline.app/api-server/common/optional"
	"planline.app/api-server/internal/model"
	"planline.app/api-server/internal/store"
)

type CreateTaskInput struct {
	Title         string
	Description   optional.Optional[string]
	Status        optional.Optional[string]
	AssigneeEmail optional.Optional[string]
	DueDate       optional.Optional[string]
}

// TaskPatch carries a partial update. An explicitly-null assignee email
// unassigns the task.
type TaskPatch struct {
	Title         optional.Optional[string]
	Description   optional.Optional[string]
	Status        optional.Optional[string]
	AssigneeEmail optional.Optional[string]
	DueDate       optional.Optional[string]
}

type TaskService interface {
	List(ctx context.Context, actor *model.Actor, projectID int64) ([]model.Task, error)
	Get(ctx context.Context, actor *model.Actor, id int64) (*model.Task, error)
	Create(ctx context.Context, actor *model.Actor, projectID int64, input CreateTaskInput) (*model.Task, error)
	Update(ctx context.Context, actor *model.Actor, id int64, patch TaskPatch) (*model.Task, error)
}

type taskService struct {
	guard  *Guard
	stores store.Provider
	tx     store.TxRunner
}

func NewTaskService(stores store.Provider, tx store.TxRunner) TaskService {
	return &taskService{
		guard:  NewGuard(stores),
		stores: stores,
		tx:     tx,
	}
}

func (s *taskService) List(ctx context.Context, actor *model.Actor, projectID int64) ([]model.Task, error) {
	project, err := s.guard.Project(ctx, actor, projectID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.stores.Tasks().ListByProject(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return tasks, nil
}

func (s *taskService) Get(ctx context.Context, actor *model.Actor, id int64) (*model.Task, error) {
	return s.guard.Task(ctx, actor, id)
}

func (s *taskService) Create(ctx context.Context, actor *model.Actor, projectID int64, input CreateTaskInput) (*model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, reject(KindInvalidFormat, "task title must not be empty")
	}

	status, err := parseTaskStatus(input.Status)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDueDate(input.DueDate, "due_date")
	if err != nil {
		return nil, err
	}

	var created *model.Task
	err = s.tx.WithTx(ctx, func(stores store.Provider) error {
		project, err := NewGuard(stores).Project(ctx, actor, projectID)
		if err != nil {
			return err
		}

		task := &model.Task{
			ID:          id.New(),
			ProjectID:   project.ID,
			Title:       title,
			Description: input.Description.Or(""),
			Status:      status.Or(model.TaskTodo),
		}
		if due, ok := dueDate.Get(); ok {
			task.DueDate = &due
		}

		if email, ok := input.AssigneeEmail.Get(); ok && email != "" {
			assignee, err := resolveAssignee(ctx, stores, project.OrganizationID, email)
			if err != nil {
				return err
			}
			task.AssigneeID = &assignee.ID
		}

		if err := stores.Tasks().Create(ctx, task); err != nil {
			return fmt.Errorf("creating task: %w", err)
		}
		created = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "task created",
		"task_id", created.ID,
		"project_id", projectID,
		"actor_id", actor.ID,
	)
	return created, nil
}

func (s *taskService) Update(ctx context.Context, actor *model.Actor, taskID int64, patch TaskPatch) (*model.Task, error) {
	status, err := parseTaskStatus(patch.Status)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDueDate(patch.DueDate, "due_date")
	if err != nil {
		return nil, err
	}

	var updated *model.Task
	err = s.tx.WithTx(ctx, func(stores store.Provider) error {
		guard := NewGuard(stores)
		task, err := guard.Task(ctx, actor, taskID)
		if err != nil {
			return err
		}

		if title, ok := patch.Title.Get(); ok {
			trimmed := strings.TrimSpace(title)
			if trimmed == "" {
				return reject(KindInvalidFormat, "task title must not be empty")
			}
			task.Title = trimmed
		}
		if desc, ok := patch.Description.Get(); ok {
			task.Description = desc
		} else if patch.Description.IsNull() {
			task.Description = ""
		}
		if v, ok := status.Get(); ok {
			task.Status = v
		}
		if dueDate.Present() {
			if due, ok := dueDate.Get(); ok {
				task.DueDate = &due
			} else {
				task.DueDate = nil
			}
		}
		if patch.AssigneeEmail.Present() {
			email, _ := patch.AssigneeEmail.Get()
			if email == "" {
				task.AssigneeID = nil
			} else {
				project, err := stores.Projects().GetByID(ctx, task.ProjectID)
				if err != nil {
					return fmt.Errorf("getting project: %w", err)
				}
				assignee, err := resolveAssignee(ctx, stores, project.OrganizationID, email)
				if err != nil {
					return err
				}
				task.AssigneeID = &assignee.ID
			}
		}

		if err := stores.Tasks().Update(ctx, task); err != nil {
			return fmt.Errorf("updating task: %w", err)
		}
		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// resolveAssignee looks up a user by email inside one organization. An email
// belonging to another tenant resolves to the same rejection as an unknown
// one.
func resolveAssignee(ctx context.Context, stores store.Provider, orgID int64, email string) (*model.User, error) {
	user, err := stores.Users().GetByEmailInOrganization(ctx, email, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, reject(KindAssigneeNotFound, "assignee %q not found in your organization", email)
		}
		return nil, fmt.Errorf("resolving assignee: %w", err)
	}
	return user, nil
}
