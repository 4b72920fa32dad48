package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logitrack/logistics-api/internal/domain/entity"
	"github.com/logitrack/logistics-api/pkg/apperr"
	"github.com/logitrack/logistics-api/pkg/helpers"
)

func newAuthFixture(t *testing.T) (*AuthService, *UserService) {
	t.Helper()
	users := newFakeUserRepo()
	jwtMgr := helpers.NewJWTManager("test-access", "test-refresh", time.Minute, time.Hour)
	return NewAuthService(users, jwtMgr, nil, nil), NewUserService(users, nil)
}

func TestLogin_Success(t *testing.T) {
	auth, users := newAuthFixture(t)
	_, err := users.CreateUser(CreateUserInput{Name: "Dave", Email: "dave@example.com", Password: "secret123"})
	require.NoError(t, err)

	// case-insensitive email match
	res, pair, err := auth.Login(context.Background(), "DAVE@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "dave@example.com", res.Email)
	assert.Equal(t, entity.RoleUser, res.Role)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.AccessTokenExpiry.After(time.Now()))
}

func TestLogin_WrongPassword(t *testing.T) {
	auth, users := newAuthFixture(t)
	_, err := users.CreateUser(CreateUserInput{Name: "Eve", Email: "eve@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, _, err = auth.Login(context.Background(), "eve@example.com", "wrongpass")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrUnauthenticated))
}

func TestLogin_UnknownEmail(t *testing.T) {
	auth, _ := newAuthFixture(t)

	_, _, err := auth.Login(context.Background(), "nobody@example.com", "secret123")
	require.Error(t, err)
	// unknown email and wrong password are indistinguishable to the caller
	assert.True(t, errors.Is(err, apperr.ErrUnauthenticated))
}

func TestLogin_InactiveUser(t *testing.T) {
	auth, users := newAuthFixture(t)
	res, err := users.CreateUser(CreateUserInput{Name: "Frank", Email: "frank@example.com", Password: "secret123"})
	require.NoError(t, err)
	_, err = users.UpdateUser(res.ID, UpdateUserInput{Status: entity.UserInactive})
	require.NoError(t, err)

	_, _, err = auth.Login(context.Background(), "frank@example.com", "secret123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrUnauthenticated))
}

func TestRefresh_RotatesPair(t *testing.T) {
	auth, users := newAuthFixture(t)
	_, err := users.CreateUser(CreateUserInput{Name: "Grace", Email: "grace@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, pair, err := auth.Login(context.Background(), "grace@example.com", "secret123")
	require.NoError(t, err)

	rotated, err := auth.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEmpty(t, rotated.RefreshToken)
}

func TestRefresh_RejectsGarbageToken(t *testing.T) {
	auth, _ := newAuthFixture(t)

	_, err := auth.Refresh(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrUnauthenticated))
}

func TestRefresh_RejectsAccessTokenAsRefresh(t *testing.T) {
	auth, users := newAuthFixture(t)
	_, err := users.CreateUser(CreateUserInput{Name: "Heidi", Email: "heidi@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, pair, err := auth.Login(context.Background(), "heidi@example.com", "secret123")
	require.NoError(t, err)

	// signed with the access secret, so the refresh parser must reject it
	_, err = auth.Refresh(context.Background(), pair.AccessToken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrUnauthenticated))
}
