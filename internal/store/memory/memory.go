// Package memory is an in-memory store.Provider for tests and local
// development. It is not durable and offers no rollback; the service layer
// validates before writing, so mutations reach it fully formed.
package memory

import (
	"context"
	"sync"
	"time"

	"planline.app/api-server/internal/model"
	"planline.app/api-server/internal/store"
)

type Store struct {
	mu            sync.RWMutex
	users         map[int64]*model.User
	organizations map[int64]*model.Organization
	projects      map[int64]*model.Project
	tasks         map[int64]*model.Task
	comments      map[int64]*model.Comment

	// insertion order for stable listings
	projectOrder []int64
	taskOrder    []int64
	commentOrder []int64
}

var (
	_ store.Provider = &Store{}
	_ store.TxRunner = &Store{}
)

func New() *Store {
	return &Store{
		users:         make(map[int64]*model.User),
		organizations: make(map[int64]*model.Organization),
		projects:      make(map[int64]*model.Project),
		tasks:         make(map[int64]*model.Task),
		comments:      make(map[int64]*model.Comment),
	}
}

func (s *Store) Users() store.UserStore                 { return &userStore{s: s} }
func (s *Store) Organizations() store.OrganizationStore { return &organizationStore{s: s} }
func (s *Store) Projects() store.ProjectStore           { return &projectStore{s: s} }
func (s *Store) Tasks() store.TaskStore                 { return &taskStore{s: s} }
func (s *Store) Comments() store.CommentStore           { return &commentStore{s: s} }

// WithTx runs fn against the same store. There is no rollback; callers get
// the same per-write atomicity the map operations already have.
func (s *Store) WithTx(_ context.Context, fn func(stores store.Provider) error) error {
	return fn(s)
}

type userStore struct{ s *Store }

func (u *userStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	user, ok := u.s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyOf(user), nil
}

func (u *userStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for _, user := range u.s.users {
		if user.Email == email {
			return copyOf(user), nil
		}
	}
	return nil, store.ErrNotFound
}

func (u *userStore) GetByEmailInOrganization(_ context.Context, email string, orgID int64) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for _, user := range u.s.users {
		if user.Email == email && user.OrganizationID != nil && *user.OrganizationID == orgID {
			return copyOf(user), nil
		}
	}
	return nil, store.ErrNotFound
}

func (u *userStore) Create(_ context.Context, user *model.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	stamp(&user.CreatedAt, &user.UpdatedAt)
	u.s.users[user.ID] = copyOf(user)
	return nil
}

func (u *userStore) Update(_ context.Context, user *model.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if _, ok := u.s.users[user.ID]; !ok {
		return store.ErrNotFound
	}
	user.UpdatedAt = time.Now().UTC()
	u.s.users[user.ID] = copyOf(user)
	return nil
}

type organizationStore struct{ s *Store }

func (o *organizationStore) GetByID(_ context.Context, id int64) (*model.Organization, error) {
	o.s.mu.RLock()
	defer o.s.mu.RUnlock()
	org, ok := o.s.organizations[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyOf(org), nil
}

func (o *organizationStore) GetBySlug(_ context.Context, slug string) (*model.Organization, error) {
	o.s.mu.RLock()
	defer o.s.mu.RUnlock()
	for _, org := range o.s.organizations {
		if org.Slug == slug {
			return copyOf(org), nil
		}
	}
	return nil, store.ErrNotFound
}

func (o *organizationStore) Create(_ context.Context, org *model.Organization) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	stamp(&org.CreatedAt, &org.UpdatedAt)
	o.s.organizations[org.ID] = copyOf(org)
	return nil
}

func (o *organizationStore) Update(_ context.Context, org *model.Organization) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	if _, ok := o.s.organizations[org.ID]; !ok {
		return store.ErrNotFound
	}
	org.UpdatedAt = time.Now().UTC()
	o.s.organizations[org.ID] = copyOf(org)
	return nil
}

type projectStore struct{ s *Store }

func (p *projectStore) GetByID(_ context.Context, id int64) (*model.Project, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	project, ok := p.s.projects[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyOf(project), nil
}

func (p *projectStore) Create(_ context.Context, project *model.Project) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	stamp(&project.CreatedAt, &project.UpdatedAt)
	p.s.projects[project.ID] = copyOf(project)
	p.s.projectOrder = append(p.s.projectOrder, project.ID)
	return nil
}

func (p *projectStore) Update(_ context.Context, project *model.Project) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if _, ok := p.s.projects[project.ID]; !ok {
		return store.ErrNotFound
	}
	project.UpdatedAt = time.Now().UTC()
	p.s.projects[project.ID] = copyOf(project)
	return nil
}

func (p *projectStore) ListByOrganization(_ context.Context, orgID int64) ([]model.Project, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	var projects []model.Project
	for _, id := range p.s.projectOrder {
		if project := p.s.projects[id]; project.OrganizationID == orgID {
			projects = append(projects, *copyOf(project))
		}
	}
	return projects, nil
}

type taskStore struct{ s *Store }

func (t *taskStore) GetByID(_ context.Context, id int64) (*model.Task, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	task, ok := t.s.tasks[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyOf(task), nil
}

func (t *taskStore) Create(_ context.Context, task *model.Task) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	stamp(&task.CreatedAt, &task.UpdatedAt)
	t.s.tasks[task.ID] = copyOf(task)
	t.s.taskOrder = append(t.s.taskOrder, task.ID)
	return nil
}

func (t *taskStore) Update(_ context.Context, task *model.Task) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if _, ok := t.s.tasks[task.ID]; !ok {
		return store.ErrNotFound
	}
	task.UpdatedAt = time.Now().UTC()
	t.s.tasks[task.ID] = copyOf(task)
	return nil
}

func (t *taskStore) ListByProject(_ context.Context, projectID int64) ([]model.Task, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	var tasks []model.Task
	for _, id := range t.s.taskOrder {
		if task := t.s.tasks[id]; task.ProjectID == projectID {
			tasks = append(tasks, *copyOf(task))
		}
	}
	return tasks, nil
}

func (t *taskStore) CountByProject(_ context.Context, projectID int64) (int64, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	var count int64
	for _, task := range t.s.tasks {
		if task.ProjectID == projectID {
			count++
		}
	}
	return count, nil
}

func (t *taskStore) CountByProjectAndStatus(_ context.Context, projectID int64, status model.TaskStatus) (int64, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	var count int64
	for _, task := range t.s.tasks {
		if task.ProjectID == projectID && task.Status == status {
			count++
		}
	}
	return count, nil
}

type commentStore struct{ s *Store }

func (c *commentStore) GetByID(_ context.Context, id int64) (*model.Comment, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	comment, ok := c.s.comments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyOf(comment), nil
}

func (c *commentStore) Create(_ context.Context, comment *model.Comment) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	stamp(&comment.CreatedAt, &comment.UpdatedAt)
	c.s.comments[comment.ID] = copyOf(comment)
	c.s.commentOrder = append(c.s.commentOrder, comment.ID)
	return nil
}

func (c *commentStore) Update(_ context.Context, comment *model.Comment) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if _, ok := c.s.comments[comment.ID]; !ok {
		return store.ErrNotFound
	}
	comment.UpdatedAt = time.Now().UTC()
	c.s.comments[comment.ID] = copyOf(comment)
	return nil
}

func (c *commentStore) ListByTask(_ context.Context, taskID int64) ([]model.Comment, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	var comments []model.Comment
	for _, id := range c.s.commentOrder {
		if comment := c.s.comments[id]; comment.TaskID == taskID {
			comments = append(comments, *copyOf(comment))
		}
	}
	return comments, nil
}

func copyOf[T any](v *T) *T {
	c := *v
	return &c
}

func stamp(createdAt, updatedAt *time.Time) {
	now := time.Now().UTC()
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}
