package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planline.app/api-server/internal/service"
)

type AuthHandler struct {
	auth  service.AuthService
	users service.UserService
}

func NewAuthHandler(auth service.AuthService, users service.UserService) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

type IssueTokenRequest struct {
	UserID int64 `json:"user_id,string" binding:"required"`
}

type IssueTokenResponse struct {
	Token string `json:"token"`
}

// IssueToken mints a bearer token for a provisioned user. Credential
// verification happens upstream; this endpoint must only be reachable from
// trusted provisioning callers.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	user, err := h.users.Get(c.Request.Context(), req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.auth.IssueToken(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, IssueTokenResponse{Token: token})
}
