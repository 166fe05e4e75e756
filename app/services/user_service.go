package services

import (
	"context"
	"errors"
	"strings"
	"taskboard/app/models"

	"gorm.io/gorm"
)

// UserService handles user and task operations against the store.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a new instance of UserService.
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// CreateUser inserts a new user and returns it with its assigned ID.
func (s *UserService) CreateUser(ctx context.Context, name string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &models.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	user := models.User{Name: name}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, &models.StorageError{Op: "create user", Err: err}
	}
	return &user, nil
}

// ListUsersWithTasks retrieves all users, each populated with its tasks.
func (s *UserService) ListUsersWithTasks(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Preload("Tasks").Find(&users).Error; err != nil {
		return nil, &models.StorageError{Op: "list users", Err: err}
	}
	return users, nil
}

// CreateTask inserts a new task under the given user.
func (s *UserService) CreateTask(ctx context.Context, userID uint, title string) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, &models.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	var user models.User
	err := s.db.WithContext(ctx).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &models.NotFoundError{Resource: "user", ID: userID}
	}
	if err != nil {
		return nil, &models.StorageError{Op: "look up user", Err: err}
	}

	task := models.Task{Title: title, UserID: user.ID}
	if err := s.db.WithContext(ctx).Create(&task).Error; err != nil {
		return nil, &models.StorageError{Op: "create task", Err: err}
	}
	return &task, nil
}

// DeleteUser removes a user and every task it owns in one transaction.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return &models.StorageError{Op: "delete user", Err: res.Error}
		}
		if res.RowsAffected == 0 {
			return &models.NotFoundError{Resource: "user", ID: id}
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return &models.StorageError{Op: "delete user tasks", Err: err}
		}
		return nil
	})
}

// DeleteTask removes a single task, scoped to its parent user.
func (s *UserService) DeleteTask(ctx context.Context, userID, taskID uint) error {
	res := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Task{}, taskID)
	if res.Error != nil {
		return &models.StorageError{Op: "delete task", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &models.NotFoundError{Resource: "task", ID: taskID}
	}
	return nil
}
