// Package mapper translates between wire-level task representations and the
// persisted entity. All functions are pure and never fail on well-typed
// input; ids and timestamps are owned by the service and store, never set
// here.
package mapper

import (
	"github.com/narrniar/simple-status-task/internal/dto"
	"github.com/narrniar/simple-status-task/internal/models"
)

// ToEntity builds a new task from a create request. Status falls back to
// PENDING when the request omits it.
func ToEntity(req dto.TaskCreateRequest) models.Task {
	status := models.StatusPending
	if req.Status != nil {
		status = *req.Status
	}
	return models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
	}
}

// ApplyUpdate merges non-nil request fields into the existing task. Nil
// fields leave the stored value untouched. ID and CreatedAt are never
// modified; UpdatedAt belongs to the service.
func ApplyUpdate(req dto.TaskUpdateRequest, task *models.Task) {
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
}

// ToResponse projects a persisted task onto the response shape.
func ToResponse(task models.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt.Format(dto.TimestampLayout),
		UpdatedAt:   task.UpdatedAt.Format(dto.TimestampLayout),
	}
}
