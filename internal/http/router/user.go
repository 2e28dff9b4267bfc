package router

import (
	"github.com/gin-gonic/gin"

	"planline.app/api-server/internal/http/handler"
)

func UserRouter(rg *gin.RouterGroup, h *handler.UserHandler) {
	rg.POST("", h.Create)
	rg.GET("/:id", h.GetByID)
}
