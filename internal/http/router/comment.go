package router

import (
	"github.com/gin-gonic/gin"

	"planline.app/api-server/internal/http/handler"
)

func CommentRouter(rg *gin.RouterGroup, h *handler.CommentHandler) {
	rg.PATCH("/:id", h.Update)
}
