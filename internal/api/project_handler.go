package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	projectservice "github.com/thenoetrevino/projectapi/internal/services/project"
	taskservice "github.com/thenoetrevino/projectapi/internal/services/task"
)

type projectBody struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type taskBody struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

// ProjectHandler serves /projects and the project-scoped task routes
type ProjectHandler struct {
	projects projectservice.Service
	tasks    taskservice.Service
}

// NewProjectHandler creates a ProjectHandler
func NewProjectHandler(projects projectservice.Service, tasks taskservice.Service) *ProjectHandler {
	return &ProjectHandler{projects: projects, tasks: tasks}
}

// Register mounts the handler on rg
func (h *ProjectHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.GET("/:id", h.get)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
	rg.GET("/:id/tasks", h.listTasks)
	rg.POST("/:id/tasks", h.createTask)
}

func (h *ProjectHandler) list(c *gin.Context) {
	projects, err := h.projects.GetAllProjects(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) get(c *gin.Context) {
	project, err := h.projects.GetProjectByID(c.Request.Context(), pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) create(c *gin.Context) {
	var body projectBody
	if !bindBody(c, &body) {
		return
	}

	project, err := h.projects.CreateProject(c.Request.Context(), projectservice.CreateProjectRequest{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) update(c *gin.Context) {
	var body projectBody
	if !bindBody(c, &body) {
		return
	}

	project, err := h.projects.UpdateProject(c.Request.Context(), projectservice.UpdateProjectRequest{
		ID:          pathID(c),
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) delete(c *gin.Context) {
	if err := h.projects.DeleteProject(c.Request.Context(), pathID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) listTasks(c *gin.Context) {
	tasks, err := h.tasks.GetTasksByProject(c.Request.Context(), pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *ProjectHandler) createTask(c *gin.Context) {
	var body taskBody
	if !bindBody(c, &body) {
		return
	}

	task, err := h.tasks.CreateTask(c.Request.Context(), taskservice.CreateTaskRequest{
		ProjectID: pathID(c),
		Title:     body.Title,
		Status:    body.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}
