package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// TaskStatus is the closed set of states a task can be in. There is no
// enforced transition graph: any value may be set at creation or update.
type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ParseTaskStatus converts a raw string into a TaskStatus, rejecting
// anything outside the closed set.
func ParseTaskStatus(value string) (TaskStatus, error) {
	s := TaskStatus(value)
	if !s.Valid() {
		return "", fmt.Errorf("invalid task status: %q", value)
	}
	return s, nil
}

// UnmarshalJSON rejects unknown status values so that a payload carrying
// one fails at decode time like any other malformed input.
func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTaskStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

type Task struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string     `json:"title" gorm:"size:100;not null"`
	Description string     `json:"description" gorm:"type:text"`
	Status      TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	// Timestamps are owned by the service's injected clock; gorm's
	// auto-time tracking would overwrite them with the wall clock on save.
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
}
