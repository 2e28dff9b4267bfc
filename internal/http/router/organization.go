package router

import (
	"github.com/gin-gonic/gin"

	"planline.app/api-server/internal/http/handler"
)

func OrganizationRouter(rg *gin.RouterGroup, h *handler.OrganizationHandler) {
	rg.POST("", h.Create)
	rg.GET("/:id", h.GetByID)
}
