package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"planline.app/api-server/internal/model"
	"planline.app/api-server/internal/store"
)

// Guard makes every authorization decision for the API. A target is readable
// or writable only when its ownership chain resolves to the actor's own
// organization. Missing targets and cross-tenant targets produce the same
// not-found rejection so that a caller cannot probe other tenants' ids.
type Guard struct {
	stores store.Provider
}

func NewGuard(stores store.Provider) *Guard {
	return &Guard{stores: stores}
}

// Authenticate rejects absent or inactive actors and actors without an
// organization; unassigned users have no tenant and therefore no access.
// Returns the actor's organization id on success.
func (g *Guard) Authenticate(actor *model.Actor) (int64, error) {
	if actor == nil || !actor.IsActive {
		return 0, rejectUnauthenticated()
	}
	if actor.OrganizationID == nil {
		return 0, rejectUnauthenticated()
	}
	return *actor.OrganizationID, nil
}

// Project authorizes access to one project and returns it.
func (g *Guard) Project(ctx context.Context, actor *model.Actor, id int64) (*model.Project, error) {
	orgID, err := g.Authenticate(actor)
	if err != nil {
		return nil, err
	}

	project, err := g.stores.Projects().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, rejectNotFound("project")
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}

	if project.OrganizationID != orgID {
		g.logDenied(ctx, actor, "project", id)
		return nil, rejectNotFound("project")
	}
	return project, nil
}

// Task authorizes access through the Task -> Project -> Organization chain.
func (g *Guard) Task(ctx context.Context, actor *model.Actor, id int64) (*model.Task, error) {
	orgID, err := g.Authenticate(actor)
	if err != nil {
		return nil, err
	}

	task, err := g.stores.Tasks().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, rejectNotFound("task")
		}
		return nil, fmt.Errorf("getting task: %w", err)
	}

	taskOrg, err := g.organizationOfTask(ctx, task)
	if err != nil {
		return nil, err
	}
	if taskOrg != orgID {
		g.logDenied(ctx, actor, "task", id)
		return nil, rejectNotFound("task")
	}
	return task, nil
}

// Comment authorizes access through Comment -> Task -> Project -> Organization.
func (g *Guard) Comment(ctx context.Context, actor *model.Actor, id int64) (*model.Comment, error) {
	orgID, err := g.Authenticate(actor)
	if err != nil {
		return nil, err
	}

	comment, err := g.stores.Comments().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, rejectNotFound("comment")
		}
		return nil, fmt.Errorf("getting comment: %w", err)
	}

	commentOrg, err := g.organizationOfComment(ctx, comment)
	if err != nil {
		return nil, err
	}
	if commentOrg != orgID {
		g.logDenied(ctx, actor, "comment", id)
		return nil, rejectNotFound("comment")
	}
	return comment, nil
}

// organizationOfTask walks one link of the ownership chain. A task whose
// project is missing counts as not found rather than an internal error; the
// chain is immutable, so this only happens for inconsistent data.
func (g *Guard) organizationOfTask(ctx context.Context, task *model.Task) (int64, error) {
	project, err := g.stores.Projects().GetByID(ctx, task.ProjectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, rejectNotFound("task")
		}
		return 0, fmt.Errorf("resolving task organization: %w", err)
	}
	return project.OrganizationID, nil
}

func (g *Guard) organizationOfComment(ctx context.Context, comment *model.Comment) (int64, error) {
	task, err := g.stores.Tasks().GetByID(ctx, comment.TaskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, rejectNotFound("comment")
		}
		return 0, fmt.Errorf("resolving comment organization: %w", err)
	}
	return g.organizationOfTask(ctx, task)
}

// logDenied records the real reason internally. The caller only ever sees
// not-found.
func (g *Guard) logDenied(ctx context.Context, actor *model.Actor, entity string, id int64) {
	slog.WarnContext(ctx, "cross-tenant access denied",
		"actor_id", actor.ID,
		"entity", entity,
		"entity_id", id,
	)
}
