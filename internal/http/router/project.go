package router

import (
	"github.com/gin-gonic/gin"

	"planline.app/api-server/internal/http/handler"
)

func ProjectRouter(rg *gin.RouterGroup, h *handler.ProjectHandler, th *handler.TaskHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.GetByID)
	rg.PATCH("/:id", h.Update)
	rg.GET("/:id/stats", h.Stats)
	rg.GET("/:id/tasks", th.ListByProject)
	rg.POST("/:id/tasks", th.Create)
}
