package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planline.app/api-server/internal/http/dto"
	"planline.app/api-server/internal/http/middleware"
	"planline.app/api-server/internal/service"
)

type CommentHandler struct {
	comments service.CommentService
}

func NewCommentHandler(comments service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// ListByTask serves GET /tasks/:id/comments.
func (h *CommentHandler) ListByTask(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	comments, err := h.comments.List(c.Request.Context(), middleware.CurrentActor(c), taskID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentResponses(comments))
}

// Create serves POST /tasks/:id/comments.
func (h *CommentHandler) Create(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.comments.Add(c.Request.Context(), middleware.CurrentActor(c), taskID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.comments.Update(c.Request.Context(), middleware.CurrentActor(c), id, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}
