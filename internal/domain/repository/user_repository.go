package repository

import "github.com/logitrack/logistics-api/internal/domain/entity"

// UserRepository defines the interface for user-related database operations.
// Emails are stored lowercased; GetByEmail expects a lowercased argument.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(u *entity.User) error
}
