package application

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/logitrack/logistics-api/internal/domain/entity"
	"github.com/logitrack/logistics-api/internal/domain/policy"
	repo "github.com/logitrack/logistics-api/internal/domain/repository"
	"github.com/logitrack/logistics-api/pkg/apperr"
	"github.com/logitrack/logistics-api/pkg/helpers"
)

// UserService owns user records and resolves identity for ownership checks.
// Password material never leaves this service: every outward path goes
// through UserResponse, which has no password field.
type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, Logger: logger}
}

// UserResponse is the outward projection of a user. It deliberately
// omits the password hash.
type UserResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone,omitempty"`
	Role      entity.Role       `json:"role"`
	Status    entity.UserStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func toUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     entity.Role
}

// CreateUser registers a new user. Emails are stored lowercased and must be
// unique; a duplicate surfaces as a conflict either from the pre-check here
// or from the unique index when two creates race.
func (s *UserService) CreateUser(in CreateUserInput) (*UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if existing, err := s.Repo.GetByEmail(email); err == nil && existing != nil {
		return nil, apperr.Conflict("email %s already registered", email)
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}

	u := &entity.User{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Email:    email,
		Password: hash,
		Phone:    in.Phone,
		Role:     role,
		Status:   entity.UserActive,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "role": u.Role}).Info("user created")
	}
	return toUserResponse(u), nil
}

// GetUser returns a user's profile. Only admins and the user themselves
// may view it.
func (s *UserService) GetUser(id string, requester entity.Requester) (*UserResponse, error) {
	if !policy.CanViewUserProfile(requester, id) {
		return nil, apperr.Forbidden("not allowed to view user %s", id)
	}
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// ListUsers returns every user. The boundary restricts this to admins.
func (s *UserService) ListUsers() ([]*UserResponse, error) {
	users, err := s.Repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

type UpdateUserInput struct {
	Name   string
	Phone  string
	Status entity.UserStatus
}

// UpdateUser applies a partial update. Empty fields are left unchanged.
// Status lets an admin soft-disable an account; users are never deleted.
func (s *UserService) UpdateUser(id string, in UpdateUserInput) (*UserResponse, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Phone != "" {
		u.Phone = in.Phone
	}
	if in.Status != "" {
		u.Status = in.Status
	}
	if err := s.Repo.Update(u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// FindByEmailForAuth exposes the full record, password hash included.
// Only the auth service may call this.
func (s *UserService) FindByEmailForAuth(email string) (*entity.User, error) {
	return s.Repo.GetByEmail(strings.ToLower(email))
}
