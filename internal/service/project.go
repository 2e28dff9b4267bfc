package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"planline.app/api-server/common/id"
	"planline.app/api-server/common/optional"
	"planline.app/api-server/internal/model"
	"planline.app/api-server/internal/store"
)

type CreateProjectInput struct {
	Name        string
	Description optional.Optional[string]
	Status      optional.Optional[string]
	DueDate     optional.Optional[string]
}

// ProjectPatch carries a partial update. Absent fields leave the stored value
// untouched; explicitly-null nullable fields are cleared.
type ProjectPatch struct {
	Name        optional.Optional[string]
	Description optional.Optional[string]
	Status      optional.Optional[string]
	DueDate     optional.Optional[string]
}

type ProjectStats struct {
	CompletionRate float64 `json:"completion_rate"`
	TotalTasks     int64   `json:"total_tasks"`
	CompletedTasks int64   `json:"completed_tasks"`
}

type ProjectService interface {
	List(ctx context.Context, actor *model.Actor) ([]model.Project, error)
	Get(ctx context.Context, actor *model.Actor, id int64) (*model.Project, error)
	Stats(ctx context.Context, actor *model.Actor, projectID int64) (*ProjectStats, error)
	Create(ctx context.Context, actor *model.Actor, input CreateProjectInput) (*model.Project, error)
	Update(ctx context.Context, actor *model.Actor, id int64, patch ProjectPatch) (*model.Project, error)
}

type projectService struct {
	guard  *Guard
	stores store.Provider
	tx     store.TxRunner
}

func NewProjectService(stores store.Provider, tx store.TxRunner) ProjectService {
	return &projectService{
		guard:  NewGuard(stores),
		stores: stores,
		tx:     tx,
	}
}

func (s *projectService) List(ctx context.Context, actor *model.Actor) ([]model.Project, error) {
	orgID, err := s.guard.Authenticate(actor)
	if err != nil {
		return nil, err
	}

	projects, err := s.stores.Projects().ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

func (s *projectService) Get(ctx context.Context, actor *model.Actor, id int64) (*model.Project, error) {
	return s.guard.Project(ctx, actor, id)
}

func (s *projectService) Stats(ctx context.Context, actor *model.Actor, projectID int64) (*ProjectStats, error) {
	project, err := s.guard.Project(ctx, actor, projectID)
	if err != nil {
		return nil, err
	}

	total, err := s.stores.Tasks().CountByProject(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("counting tasks: %w", err)
	}
	done, err := s.stores.Tasks().CountByProjectAndStatus(ctx, project.ID, model.TaskDone)
	if err != nil {
		return nil, fmt.Errorf("counting done tasks: %w", err)
	}

	stats := &ProjectStats{TotalTasks: total, CompletedTasks: done}
	// An empty project has a completion rate of 0, not an error.
	if total > 0 {
		stats.CompletionRate = float64(done) / float64(total) * 100
	}
	return stats, nil
}

func (s *projectService) Create(ctx context.Context, actor *model.Actor, input CreateProjectInput) (*model.Project, error) {
	orgID, err := s.guard.Authenticate(actor)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, reject(KindInvalidFormat, "project name must not be empty")
	}

	status, err := parseProjectStatus(input.Status)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDueDate(input.DueDate, "due_date")
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		ID:             id.New(),
		OrganizationID: orgID,
		Name:           name,
		Description:    input.Description.Or(""),
		Status:         status.Or(model.ProjectActive),
	}
	if due, ok := dueDate.Get(); ok {
		project.DueDate = &due
	}

	err = s.tx.WithTx(ctx, func(stores store.Provider) error {
		return stores.Projects().Create(ctx, project)
	})
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	slog.InfoContext(ctx, "project created",
		"project_id", project.ID,
		"organization_id", orgID,
		"actor_id", actor.ID,
	)
	return project, nil
}

func (s *projectService) Update(ctx context.Context, actor *model.Actor, projectID int64, patch ProjectPatch) (*model.Project, error) {
	status, err := parseProjectStatus(patch.Status)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDueDate(patch.DueDate, "due_date")
	if err != nil {
		return nil, err
	}

	var updated *model.Project
	err = s.tx.WithTx(ctx, func(stores store.Provider) error {
		project, err := NewGuard(stores).Project(ctx, actor, projectID)
		if err != nil {
			return err
		}

		if name, ok := patch.Name.Get(); ok {
			trimmed := strings.TrimSpace(name)
			if trimmed == "" {
				return reject(KindInvalidFormat, "project name must not be empty")
			}
			project.Name = trimmed
		}
		if desc, ok := patch.Description.Get(); ok {
			project.Description = desc
		} else if patch.Description.IsNull() {
			project.Description = ""
		}
		if v, ok := status.Get(); ok {
			project.Status = v
		}
		if dueDate.Present() {
			if due, ok := dueDate.Get(); ok {
				project.DueDate = &due
			} else {
				project.DueDate = nil
			}
		}

		if err := stores.Projects().Update(ctx, project); err != nil {
			return fmt.Errorf("updating project: %w", err)
		}
		updated = project
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
