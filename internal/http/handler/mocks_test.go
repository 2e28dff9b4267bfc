package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"planline.app/api-server/internal/http/handler"
	"planline.app/api-server/internal/http/middleware"
	"planline.app/api-server/internal/http/router"
	"planline.app/api-server/internal/model"
	"planline.app/api-server/internal/service"
)

// Service mocks in the function-field style: a test sets only the methods it
// expects to be called, anything else panics with a nil function.

type authServiceMock struct {
	ResolveActorFn func(ctx context.Context, credential string) (*model.Actor, error)
	IssueTokenFn   func(user *model.User) (string, error)
}

func (m *authServiceMock) ResolveActor(ctx context.Context, credential string) (*model.Actor, error) {
	return m.ResolveActorFn(ctx, credential)
}

func (m *authServiceMock) IssueToken(user *model.User) (string, error) {
	return m.IssueTokenFn(user)
}

type projectServiceMock struct {
	ListFn   func(ctx context.Context, actor *model.Actor) ([]model.Project, error)
	GetFn    func(ctx context.Context, actor *model.Actor, id int64) (*model.Project, error)
	StatsFn  func(ctx context.Context, actor *model.Actor, projectID int64) (*service.ProjectStats, error)
	CreateFn func(ctx context.Context, actor *model.Actor, input service.CreateProjectInput) (*model.Project, error)
	UpdateFn func(ctx context.Context, actor *model.Actor, id int64, patch service.ProjectPatch) (*model.Project, error)
}

func (m *projectServiceMock) List(ctx context.Context, actor *model.Actor) ([]model.Project, error) {
	return m.ListFn(ctx, actor)
}

func (m *projectServiceMock) Get(ctx context.Context, actor *model.Actor, id int64) (*model.Project, error) {
	return m.GetFn(ctx, actor, id)
}

func (m *projectServiceMock) Stats(ctx context.Context, actor *model.Actor, projectID int64) (*service.ProjectStats, error) {
	return m.StatsFn(ctx, actor, projectID)
}

func (m *projectServiceMock) Create(ctx context.Context, actor *model.Actor, input service.CreateProjectInput) (*model.Project, error) {
	return m.CreateFn(ctx, actor, input)
}

func (m *projectServiceMock) Update(ctx context.Context, actor *model.Actor, id int64, patch service.ProjectPatch) (*model.Project, error) {
	return m.UpdateFn(ctx, actor, id, patch)
}

type taskServiceMock struct {
	ListFn   func(ctx context.Context, actor *model.Actor, projectID int64) ([]model.Task, error)
	GetFn    func(ctx context.Context, actor *model.Actor, id int64) (*model.Task, error)
	CreateFn func(ctx context.Context, actor *model.Actor, projectID int64, input service.CreateTaskInput) (*model.Task, error)
	UpdateFn func(ctx context.Context, actor *model.Actor, id int64, patch service.TaskPatch) (*model.Task, error)
}

func (m *taskServiceMock) List(ctx context.Context, actor *model.Actor, projectID int64) ([]model.Task, error) {
	return m.ListFn(ctx, actor, projectID)
}

func (m *taskServiceMock) Get(ctx context.Context, actor *model.Actor, id int64) (*model.Task, error) {
	return m.GetFn(ctx, actor, id)
}

func (m *taskServiceMock) Create(ctx context.Context, actor *model.Actor, projectID int64, input service.CreateTaskInput) (*model.Task, error) {
	return m.CreateFn(ctx, actor, projectID, input)
}

func (m *taskServiceMock) Update(ctx context.Context, actor *model.Actor, id int64, patch service.TaskPatch) (*model.Task, error) {
	return m.UpdateFn(ctx, actor, id, patch)
}

type commentServiceMock struct {
	ListFn   func(ctx context.Context, actor *model.Actor, taskID int64) ([]model.Comment, error)
	AddFn    func(ctx context.Context, actor *model.Actor, taskID int64, content string) (*model.Comment, error)
	UpdateFn func(ctx context.Context, actor *model.Actor, id int64, content string) (*model.Comment, error)
}

func (m *commentServiceMock) List(ctx context.Context, actor *model.Actor, taskID int64) ([]model.Comment, error) {
	return m.ListFn(ctx, actor, taskID)
}

func (m *commentServiceMock) Add(ctx context.Context, actor *model.Actor, taskID int64, content string) (*model.Comment, error) {
	return m.AddFn(ctx, actor, taskID, content)
}

func (m *commentServiceMock) Update(ctx context.Context, actor *model.Actor, id int64, content string) (*model.Comment, error) {
	return m.UpdateFn(ctx, actor, id, content)
}

// testActor is the identity behind every authenticated test request.
var testActor = &model.Actor{ID: 1001, OrganizationID: ptr(int64(2002)), IsActive: true}

func ptr[T any](v T) *T { return &v }

func dateUTC(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// resolveTestActor accepts the well-known test credential and nothing else.
func resolveTestActor(_ context.Context, credential string) (*model.Actor, error) {
	if credential != "test-token" {
		return nil, service.ErrUnauthenticated
	}
	return testActor, nil
}

type engineMocks struct {
	projects *projectServiceMock
	tasks    *taskServiceMock
	comments *commentServiceMock
}

// newEngine mounts the tenant-scoped routes behind the real auth middleware,
// backed by the given service mocks.
func newEngine(m engineMocks) *gin.Engine {
	auth := &authServiceMock{ResolveActorFn: resolveTestActor}
	projectHandler := handler.NewProjectHandler(m.projects)
	taskHandler := handler.NewTaskHandler(m.tasks)
	commentHandler := handler.NewCommentHandler(m.comments)

	engine := gin.New()
	authed := engine.Group("/api/v1", middleware.Auth(auth))
	router.ProjectRouter(authed.Group("/projects"), projectHandler, taskHandler)
	router.TaskRouter(authed.Group("/tasks"), taskHandler, commentHandler)
	router.CommentRouter(authed.Group("/comments"), commentHandler)
	return engine
}

func doRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer test-token")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func doAnonymousRequest(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, http.NoBody)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}
