package mapper

import (
	"testing"
	"time"

	"github.com/narrniar/simple-status-task/internal/dto"
	"github.com/narrniar/simple-status-task/internal/models"
)

func TestToEntity_DefaultsStatusToPending(t *testing.T) {
	req := dto.TaskCreateRequest{
		Title:       "New Task",
		Description: "Some description",
	}

	task := ToEntity(req)

	if task.Status != models.StatusPending {
		t.Errorf("Expected default status PENDING, got %q", task.Status)
	}
	if task.Title != "New Task" {
		t.Errorf("Expected title to be copied, got %q", task.Title)
	}
	if task.Description != "Some description" {
		t.Errorf("Expected description to be copied, got %q", task.Description)
	}
	if task.ID != 0 {
		t.Errorf("Expected ID to remain unset, got %d", task.ID)
	}
	if !task.CreatedAt.IsZero() || !task.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to remain unset")
	}
}

func TestToEntity_ExplicitStatus(t *testing.T) {
	status := models.StatusCompleted
	req := dto.TaskCreateRequest{Title: "Done already", Status: &status}

	task := ToEntity(req)

	if task.Status != models.StatusCompleted {
		t.Errorf("Expected COMPLETED, got %q", task.Status)
	}
}

func TestApplyUpdate_PartialSemantics(t *testing.T) {
	created := time.Date(2025, 6, 22, 10, 0, 0, 0, time.UTC)
	task := models.Task{
		ID:          7,
		Title:       "Original",
		Description: "Original description",
		Status:      models.StatusPending,
		CreatedAt:   created,
		UpdatedAt:   created,
	}

	newTitle := "Renamed"
	ApplyUpdate(dto.TaskUpdateRequest{Title: &newTitle}, &task)

	if task.Title != "Renamed" {
		t.Errorf("Expected title to change, got %q", task.Title)
	}
	if task.Description != "Original description" {
		t.Errorf("Expected description untouched, got %q", task.Description)
	}
	if task.Status != models.StatusPending {
		t.Errorf("Expected status untouched, got %q", task.Status)
	}
	if task.ID != 7 || !task.CreatedAt.Equal(created) {
		t.Error("Expected ID and CreatedAt to be immutable")
	}
}

func TestApplyUpdate_AllFields(t *testing.T) {
	task := models.Task{Title: "Old", Description: "Old", Status: models.StatusPending}

	title := "New"
	desc := "New description"
	status := models.StatusInProgress
	ApplyUpdate(dto.TaskUpdateRequest{Title: &title, Description: &desc, Status: &status}, &task)

	if task.Title != "New" || task.Description != "New description" || task.Status != models.StatusInProgress {
		t.Errorf("Expected all supplied fields to be applied, got %+v", task)
	}
}

func TestApplyUpdate_BlankTitleOverwrites(t *testing.T) {
	task := models.Task{Title: "Something"}

	blank := ""
	ApplyUpdate(dto.TaskUpdateRequest{Title: &blank}, &task)

	if task.Title != "" {
		t.Errorf("Expected supplied blank title to overwrite, got %q", task.Title)
	}
}

func TestToResponse_Projection(t *testing.T) {
	created := time.Date(2025, 6, 22, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 6, 22, 10, 30, 0, 0, time.UTC)
	task := models.Task{
		ID:          42,
		Title:       "Task",
		Description: "Desc",
		Status:      models.StatusInProgress,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}

	resp := ToResponse(task)

	if resp.ID != 42 || resp.Title != "Task" || resp.Description != "Desc" {
		t.Errorf("Unexpected projection: %+v", resp)
	}
	if resp.Status != models.StatusInProgress {
		t.Errorf("Expected status IN_PROGRESS, got %q", resp.Status)
	}
	if resp.CreatedAt != "2025-06-22T10:00:00" {
		t.Errorf("Expected ISO-8601 local date-time, got %q", resp.CreatedAt)
	}
	if resp.UpdatedAt != "2025-06-22T10:30:00" {
		t.Errorf("Expected ISO-8601 local date-time, got %q", resp.UpdatedAt)
	}
}

func TestRoundTrip_CreateToResponse(t *testing.T) {
	status := models.StatusPending
	req := dto.TaskCreateRequest{
		Title:       "Round Trip",
		Description: "Survives the trip",
		Status:      &status,
	}

	resp := ToResponse(ToEntity(req))

	if resp.Title != req.Title {
		t.Errorf("Expected title preserved, got %q", resp.Title)
	}
	if resp.Description != req.Description {
		t.Errorf("Expected description preserved, got %q", resp.Description)
	}
	if resp.Status != status {
		t.Errorf("Expected status preserved, got %q", resp.Status)
	}
}
