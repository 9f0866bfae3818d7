package dto

import (
	"strings"
	"unicode/utf8"

	"github.com/narrniar/simple-status-task/internal/models"
)

// MaxTitleLength is the upper bound on task titles, matching the column size.
const MaxTitleLength = 100

// TaskCreateRequest is the payload for POST /tasks. Status defaults to
// PENDING when omitted.
type TaskCreateRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Status      *models.TaskStatus `json:"status"`
}

// Validate returns one message per violated rule, in field order.
func (r TaskCreateRequest) Validate() []string {
	var details []string
	if strings.TrimSpace(r.Title) == "" {
		details = append(details, "Title is required")
	}
	if utf8.RuneCountInString(r.Title) > MaxTitleLength {
		details = append(details, "Title must not exceed 100 characters")
	}
	return details
}

// TaskUpdateRequest is the payload for PUT /tasks/{id}. Nil fields mean
// "leave unchanged", not "clear".
type TaskUpdateRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Status      *models.TaskStatus `json:"status"`
}

// Validate only checks the length bound. A present-but-blank title is
// accepted here, unlike on create.
func (r TaskUpdateRequest) Validate() []string {
	var details []string
	if r.Title != nil && utf8.RuneCountInString(*r.Title) > MaxTitleLength {
		details = append(details, "Title must not exceed 100 characters")
	}
	return details
}

// TaskResponse is the read-only projection of a persisted task. Timestamps
// are ISO-8601 local date-time strings.
type TaskResponse struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
}
