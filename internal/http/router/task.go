package router

import (
	"github.com/gin-gonic/gin"

	"planline.app/api-server/internal/http/handler"
)

func TaskRouter(rg *gin.RouterGroup, h *handler.TaskHandler, ch *handler.CommentHandler) {
	rg.GET("/:id", h.GetByID)
	rg.PATCH("/:id", h.Update)
	rg.GET("/:id/comments", ch.ListByTask)
	rg.POST("/:id/comments", ch.Create)
}
