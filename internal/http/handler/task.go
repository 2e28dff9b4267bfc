package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planline.app/api-server/internal/http/dto"
	"planline.app/api-server/internal/http/middleware"
	"planline.app/api-server/internal/service"
)

type TaskHandler struct {
	tasks service.TaskService
}

func NewTaskHandler(tasks service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// ListByProject serves GET /projects/:id/tasks.
func (h *TaskHandler) ListByProject(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	tasks, err := h.tasks.List(c.Request.Context(), middleware.CurrentActor(c), projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponses(tasks))
}

func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	task, err := h.tasks.Get(c.Request.Context(), middleware.CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// Create serves POST /projects/:id/tasks.
func (h *TaskHandler) Create(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), middleware.CurrentActor(c), projectID, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), middleware.CurrentActor(c), id, req.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}
