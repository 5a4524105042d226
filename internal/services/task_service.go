package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atakanyildirim/taskdeck/internal/dto"
	"github.com/atakanyildirim/taskdeck/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidStatus   = errors.New("invalid status value")
	ErrInvalidPriority = errors.New("invalid priority value")
	// ErrTaskNotFound covers both a missing task and a task owned by
	// someone else, so a non-owner learns nothing about the resource.
	ErrTaskNotFound = errors.New("task not found")
)

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// List returns the caller's tasks, newest first. Filters compose
// conjunctively with the ownership filter; they can never widen it.
func (s *TaskService) List(userID uuid.UUID, filter dto.TaskFilter) ([]models.Task, error) {
	q := s.db.Where("user_id = ?", userID)

	if filter.Status != "" && filter.Status != "All" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" && filter.Priority != "All" {
		q = q.Where("priority = ?", filter.Priority)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
	}

	tasks := []models.Task{}
	if err := q.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Create stores a new task owned by the caller. The owner is always the
// authenticated identity, never client input.
func (s *TaskService) Create(userID uuid.UUID, req dto.CreateTaskRequest) (*models.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	status := req.Status
	if status == "" {
		status = models.StatusTodo
	}
	if !models.ValidTaskStatus(status) {
		return nil, ErrInvalidStatus
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.ValidTaskPriority(priority) {
		return nil, ErrInvalidPriority
	}

	task := models.Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Status:      status,
		Priority:    priority,
		DueDate:     req.DueDate,
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// Update applies a partial update after the ownership check.
func (s *TaskService) Update(userID, taskID uuid.UUID, req dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.requireOwnedTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		updates["title"] = title
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Status != nil {
		if !models.ValidTaskStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		updates["status"] = *req.Status
	}
	if req.Priority != nil {
		if !models.ValidTaskPriority(*req.Priority) {
			return nil, ErrInvalidPriority
		}
		updates["priority"] = *req.Priority
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}

	if len(updates) == 0 {
		return task, nil
	}

	if err := s.db.Model(task).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return s.requireOwnedTask(userID, taskID)
}

// Delete removes a task after the ownership check.
func (s *TaskService) Delete(userID, taskID uuid.UUID) error {
	task, err := s.requireOwnedTask(userID, taskID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(task).Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// requireOwnedTask loads the task only when it belongs to the caller.
func (s *TaskService) requireOwnedTask(userID, taskID uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := s.db.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	return &task, nil
}
