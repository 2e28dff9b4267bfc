package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planline.app/api-server/internal/http/dto"
	"planline.app/api-server/internal/service"
)

type OrganizationHandler struct {
	organizations service.OrganizationService
}

func NewOrganizationHandler(organizations service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{organizations: organizations}
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org, err := h.organizations.Create(c.Request.Context(), req.Name, req.Slug, req.ContactEmail)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToOrganizationResponse(org))
}

func (h *OrganizationHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	org, err := h.organizations.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}
