package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	taskservice "github.com/thenoetrevino/projectapi/internal/services/task"
)

// TaskHandler serves /tasks, addressing tasks directly by ID
type TaskHandler struct {
	tasks taskservice.Service
}

// NewTaskHandler creates a TaskHandler
func NewTaskHandler(tasks taskservice.Service) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// Register mounts the handler on rg
func (h *TaskHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}

func (h *TaskHandler) list(c *gin.Context) {
	tasks, err := h.tasks.GetAllTasks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) get(c *gin.Context) {
	task, err := h.tasks.GetTaskByID(c.Request.Context(), pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// update stores title and status as sent; neither is required.
func (h *TaskHandler) update(c *gin.Context) {
	var body taskBody
	if !bindBody(c, &body) {
		return
	}

	task, err := h.tasks.UpdateTask(c.Request.Context(), taskservice.UpdateTaskRequest{
		ID:     pathID(c),
		Title:  body.Title,
		Status: body.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) delete(c *gin.Context) {
	if err := h.tasks.DeleteTask(c.Request.Context(), pathID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
