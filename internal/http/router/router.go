package router

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"planline.app/api-server/internal/http/handler"
	"planline.app/api-server/internal/http/middleware"
	"planline.app/api-server/internal/service"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Organization *handler.OrganizationHandler
	Project      *handler.ProjectHandler
	Task         *handler.TaskHandler
	Comment      *handler.CommentHandler
}

// New assembles the gin engine. Provisioning routes (organizations, users,
// token issuing) sit outside the bearer-auth middleware; everything
// tenant-scoped sits behind it.
func New(serviceName string, auth service.AuthService, h Handlers) *gin.Engine {
	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		otelgin.Middleware(serviceName),
		middleware.RequestID(),
	)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	api.POST("/auth/token", h.Auth.IssueToken)
	OrganizationRouter(api.Group("/organizations"), h.Organization)
	UserRouter(api.Group("/users"), h.User)

	authed := api.Group("", middleware.Auth(auth))
	authed.GET("/me", h.User.Me)
	ProjectRouter(authed.Group("/projects"), h.Project, h.Task)
	TaskRouter(authed.Group("/tasks"), h.Task, h.Comment)
	CommentRouter(authed.Group("/comments"), h.Comment)

	return engine
}
