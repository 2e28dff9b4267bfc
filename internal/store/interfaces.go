package store

import (
	"context"
	"errors"

	"planline.app/api-server/internal/model"
)

var ErrNotFound = errors.New("not found")

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// GetByEmailInOrganization scopes the lookup to one tenant; an email that
	// exists in another organization is ErrNotFound.
	GetByEmailInOrganization(ctx context.Context, email string, orgID int64) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
}

type OrganizationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*model.Organization, error)
	Create(ctx context.Context, org *model.Organization) error
	Update(ctx context.Context, org *model.Organization) error
}

type ProjectStore interface {
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	ListByOrganization(ctx context.Context, orgID int64) ([]model.Project, error)
}

type TaskStore interface {
	GetByID(ctx context.Context, id int64) (*model.Task, error)
	Create(ctx context.Context, task *model.Task) error
	Update(ctx context.Context, task *model.Task) error
	ListByProject(ctx context.Context, projectID int64) ([]model.Task, error)
	CountByProject(ctx context.Context, projectID int64) (int64, error)
	CountByProjectAndStatus(ctx context.Context, projectID int64, status model.TaskStatus) (int64, error)
}

type CommentStore interface {
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	Create(ctx context.Context, comment *model.Comment) error
	Update(ctx context.Context, comment *model.Comment) error
	ListByTask(ctx context.Context, taskID int64) ([]model.Comment, error)
}

// Provider hands out the entity stores sharing one underlying connection or
// transaction.
type Provider interface {
	Users() UserStore
	Organizations() OrganizationStore
	Projects() ProjectStore
	Tasks() TaskStore
	Comments() CommentStore
}

// TxRunner executes fn against stores bound to a single transaction. fn
// returning an error rolls the whole transaction back.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores Provider) error) error
}
