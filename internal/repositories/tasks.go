package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/narrniar/simple-status-task/internal/models"

	"gorm.io/gorm"
)

// TaskFilter narrows List results. Zero value means "all tasks".
type TaskFilter struct {
	Status *models.TaskStatus
	Title  string
}

// TaskRepository is the store the task pipeline is built on. FindByID
// returns (nil, nil) when no task exists for the id.
type TaskRepository interface {
	Insert(task *models.Task) error
	FindByID(id int64) (*models.Task, error)
	Update(task *models.Task) error
	DeleteByID(id int64) error
	ExistsByID(id int64) (bool, error)
	List(filter TaskFilter) ([]models.Task, error)
}

type GormTaskRepository struct {
	db *gorm.DB
}

func NewGormTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{db: db}
}

func (r *GormTaskRepository) Insert(task *models.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

func (r *GormTaskRepository) FindByID(id int64) (*models.Task, error) {
	var task models.Task
	result := r.db.Where("id = ?", id).First(&task)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find task %d: %w", id, result.Error)
	}
	return &task, nil
}

func (r *GormTaskRepository) Update(task *models.Task) error {
	if err := r.db.Save(task).Error; err != nil {
		return fmt.Errorf("failed to update task %d: %w", task.ID, err)
	}
	return nil
}

func (r *GormTaskRepository) DeleteByID(id int64) error {
	if err := r.db.Delete(&models.Task{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return nil
}

func (r *GormTaskRepository) ExistsByID(id int64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Task{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check task %d: %w", id, err)
	}
	return count > 0, nil
}

func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, error) {
	query := r.db.Model(&models.Task{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Title != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Title)+"%")
	}

	var tasks []models.Task
	if err := query.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}
