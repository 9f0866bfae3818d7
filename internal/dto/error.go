package dto

import "time"

// TimestampLayout is the ISO-8601 local date-time encoding used on the wire.
const TimestampLayout = "2006-01-02T15:04:05"

// ErrorResponse is the uniform error envelope returned for every failed
// request, whatever the error kind.
type ErrorResponse struct {
	Status    int      `json:"status"`
	Message   string   `json:"message"`
	Details   []string `json:"details,omitempty"`
	Timestamp string   `json:"timestamp"`
	Path      string   `json:"path"`
}

func NewErrorResponse(status int, message, path string) ErrorResponse {
	return ErrorResponse{
		Status:    status,
		Message:   message,
		Path:      path,
		Timestamp: time.Now().Format(TimestampLayout),
	}
}

func NewErrorResponseWithDetails(status int, message string, details []string, path string) ErrorResponse {
	resp := NewErrorResponse(status, message, path)
	resp.Details = details
	return resp
}
