package services

import (
	"fmt"
	"log"
	"time"

	"github.com/narrniar/simple-status-task/internal/dto"
	"github.com/narrniar/simple-status-task/internal/mapper"
	"github.com/narrniar/simple-status-task/internal/repositories"
)

// Clock supplies the current time so entity timestamps stay deterministic
// in tests. Nil means time.Now.
type Clock func() time.Time

// NotFoundError signals that no task exists for the requested id.
type NotFoundError struct {
	ID int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("Task not found with ID: %d", e.ID)
}

type TaskService interface {
	CreateTask(req dto.TaskCreateRequest) (dto.TaskResponse, error)
	GetTaskByID(id int64) (dto.TaskResponse, error)
	UpdateTask(id int64, req dto.TaskUpdateRequest) (dto.TaskResponse, error)
	DeleteTask(id int64) error
	ListTasks(filter repositories.TaskFilter) ([]dto.TaskResponse, error)
}

type TaskServiceImpl struct {
	repo  repositories.TaskRepository
	clock Clock
}

func NewTaskService(repo repositories.TaskRepository, clock Clock) *TaskServiceImpl {
	if clock == nil {
		clock = time.Now
	}
	return &TaskServiceImpl{repo: repo, clock: clock}
}

func (s *TaskServiceImpl) CreateTask(req dto.TaskCreateRequest) (dto.TaskResponse, error) {
	task := mapper.ToEntity(req)

	now := s.clock()
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := s.repo.Insert(&task); err != nil {
		return dto.TaskResponse{}, err
	}
	log.Printf("Task created successfully with ID: %d", task.ID)

	return mapper.ToResponse(task), nil
}

func (s *TaskServiceImpl) GetTaskByID(id int64) (dto.TaskResponse, error) {
	task, err := s.repo.FindByID(id)
	if err != nil {
		return dto.TaskResponse{}, err
	}
	if task == nil {
		return dto.TaskResponse{}, NotFoundError{ID: id}
	}
	return mapper.ToResponse(*task), nil
}

func (s *TaskServiceImpl) UpdateTask(id int64, req dto.TaskUpdateRequest) (dto.TaskResponse, error) {
	task, err := s.repo.FindByID(id)
	if err != nil {
		return dto.TaskResponse{}, err
	}
	if task == nil {
		return dto.TaskResponse{}, NotFoundError{ID: id}
	}

	mapper.ApplyUpdate(req, task)
	task.UpdatedAt = s.clock()

	if err := s.repo.Update(task); err != nil {
		return dto.TaskResponse{}, err
	}
	log.Printf("Task updated successfully with ID: %d", task.ID)

	return mapper.ToResponse(*task), nil
}

func (s *TaskServiceImpl) DeleteTask(id int64) error {
	exists, err := s.repo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return NotFoundError{ID: id}
	}

	if err := s.repo.DeleteByID(id); err != nil {
		return err
	}
	log.Printf("Task deleted successfully with ID: %d", id)
	return nil
}

func (s *TaskServiceImpl) ListTasks(filter repositories.TaskFilter) ([]dto.TaskResponse, error) {
	tasks, err := s.repo.List(filter)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, mapper.ToResponse(task))
	}
	return responses, nil
}
