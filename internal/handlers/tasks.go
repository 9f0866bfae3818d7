package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/narrniar/simple-status-task/internal/dto"
	"github.com/narrniar/simple-status-task/internal/models"
	"github.com/narrniar/simple-status-task/internal/repositories"
	"github.com/narrniar/simple-status-task/internal/services"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// parseTaskID extracts the numeric id path parameter. A malformed id is a
// type-mismatch failure, distinct from field validation.
func parseTaskID(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respondTypeMismatch(c, "id", idStr, "integer")
		return 0, false
	}
	return id, true
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMalformedJSON(c, err)
		return
	}

	if details := req.Validate(); len(details) > 0 {
		respondValidationFailed(c, details)
		return
	}

	log.Printf("POST /tasks - Creating new task with title: %s", req.Title)

	task, err := h.taskService.CreateTask(req)
	if err != nil {
		handleTaskError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTaskByID(id)
	if err != nil {
		handleTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req dto.TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMalformedJSON(c, err)
		return
	}

	if details := req.Validate(); len(details) > 0 {
		respondValidationFailed(c, details)
		return
	}

	log.Printf("PUT /tasks/%d - Updating task", id)

	task, err := h.taskService.UpdateTask(id, req)
	if err != nil {
		handleTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	log.Printf("DELETE /tasks/%d - Deleting task", id)

	if err := h.taskService.DeleteTask(id); err != nil {
		handleTaskError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetTasks lists tasks newest first, optionally filtered by status and a
// case-insensitive title substring.
func (h *TaskHandler) GetTasks(c *gin.Context) {
	var filter repositories.TaskFilter

	if statusStr := c.Query("status"); statusStr != "" {
		status, err := models.ParseTaskStatus(statusStr)
		if err != nil {
			respondIllegalArgument(c, err)
			return
		}
		filter.Status = &status
	}
	filter.Title = c.Query("title")

	tasks, err := h.taskService.ListTasks(filter)
	if err != nil {
		handleTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}
