package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logitrack/logistics-api/internal/domain/entity"
	"github.com/logitrack/logistics-api/pkg/apperr"
	"github.com/logitrack/logistics-api/pkg/helpers"
)

func newUserService() (*UserService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewUserService(repo, nil), repo
}

func TestCreateUser_DefaultsAndProjection(t *testing.T) {
	svc, _ := newUserService()

	res, err := svc.CreateUser(CreateUserInput{
		Name:     "Alice",
		Email:    "  Alice@Example.COM ",
		Password: "secret123",
		Phone:    "555-0100",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "alice@example.com", res.Email, "email must be stored lowercased")
	assert.Equal(t, entity.RoleUser, res.Role, "role defaults to user")
	assert.Equal(t, entity.UserActive, res.Status)

	// the stored record carries a bcrypt hash, never the plaintext
	u, err := svc.Repo.GetByEmail("alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", u.Password)
	assert.True(t, helpers.CompareHashAndPassword(u.Password, "secret123"))
}

func TestCreateUser_DuplicateEmailCaseInsensitive(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.CreateUser(CreateUserInput{Name: "A", Email: "dup@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.CreateUser(CreateUserInput{Name: "B", Email: "DUP@EXAMPLE.COM", Password: "secret456"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrConflict))
}

func TestGetUser_SelfAndAdminOnly(t *testing.T) {
	svc, _ := newUserService()

	res, err := svc.CreateUser(CreateUserInput{Name: "Bob", Email: "bob@example.com", Password: "secret123"})
	require.NoError(t, err)

	// self
	got, err := svc.GetUser(res.ID, entity.Requester{ID: res.ID, Role: entity.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", got.Email)

	// admin
	_, err = svc.GetUser(res.ID, entity.Requester{ID: "someone-else", Role: entity.RoleAdmin})
	require.NoError(t, err)

	// unrelated user
	_, err = svc.GetUser(res.ID, entity.Requester{ID: "someone-else", Role: entity.RoleUser})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrForbidden))
}

func TestGetUser_NotFound(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.GetUser("missing-id", entity.Requester{ID: "missing-id", Role: entity.RoleUser})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestUpdateUser_PartialPatch(t *testing.T) {
	svc, _ := newUserService()

	res, err := svc.CreateUser(CreateUserInput{Name: "Carol", Email: "carol@example.com", Password: "secret123", Phone: "555-0101"})
	require.NoError(t, err)

	updated, err := svc.UpdateUser(res.ID, UpdateUserInput{Name: "Caroline"})
	require.NoError(t, err)
	assert.Equal(t, "Caroline", updated.Name)
	assert.Equal(t, "555-0101", updated.Phone, "untouched fields survive the patch")
	assert.Equal(t, entity.UserActive, updated.Status)

	deactivated, err := svc.UpdateUser(res.ID, UpdateUserInput{Status: entity.UserInactive})
	require.NoError(t, err)
	assert.Equal(t, entity.UserInactive, deactivated.Status)
	assert.Equal(t, "Caroline", deactivated.Name)
}

func TestListUsers_ProjectsAllWithoutPasswords(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.CreateUser(CreateUserInput{Name: "A", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)
	_, err = svc.CreateUser(CreateUserInput{Name: "B", Email: "b@example.com", Password: "secret123"})
	require.NoError(t, err)

	list, err := svc.ListUsers()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
