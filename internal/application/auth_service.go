package application

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/logitrack/logistics-api/internal/domain/entity"
	repo "github.com/logitrack/logistics-api/internal/domain/repository"
	"github.com/logitrack/logistics-api/pkg/apperr"
	"github.com/logitrack/logistics-api/pkg/helpers"
)

const sessionTTL = 24 * time.Hour

func sessionKey(userID string) string {
	return "user:session:" + userID
}

// AuthService verifies credentials and issues the token pair plus the
// Redis session the auth middleware checks. It is the only caller allowed
// to see password hashes.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Redis: rdb, Logger: logger}
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

type LoginResponse struct {
	UserID string      `json:"user_id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   entity.Role `json:"role"`
}

// Login validates email/password, rejects inactive accounts, and returns
// the requester profile with a fresh token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, TokenPair, error) {
	u, err := s.Users.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil || u == nil {
		return nil, TokenPair{}, apperr.Unauthenticated("invalid credentials")
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, TokenPair{}, apperr.Unauthenticated("invalid credentials")
	}
	if !u.IsActive() {
		return nil, TokenPair{}, apperr.Unauthenticated("user inactive")
	}

	pair, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return &LoginResponse{UserID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}, pair, nil
}

// Refresh rotates the token pair for a valid refresh token with a live session.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, apperr.Unauthenticated("invalid refresh token")
	}
	u, err := s.Users.GetByID(claims.UserID)
	if err != nil || u == nil {
		return TokenPair{}, apperr.Unauthenticated("invalid refresh token")
	}
	if !u.IsActive() {
		return TokenPair{}, apperr.Unauthenticated("user inactive")
	}
	if s.Redis != nil {
		data, rErr := s.Redis.HGetAll(ctx, sessionKey(u.ID)).Result()
		if rErr != nil || len(data) == 0 {
			return TokenPair{}, apperr.Unauthenticated("session expired")
		}
	}
	return s.issueTokens(ctx, u)
}

// Logout drops the server-side session.
func (s *AuthService) Logout(ctx context.Context, userID string) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, sessionKey(userID)).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("session delete failed")
	}
}

func (s *AuthService) issueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, string(u.Role))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, string(u.Role))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate refresh token failed")
		}
		return TokenPair{}, err
	}

	if s.Redis != nil {
		fields := map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"name":       u.Name,
			"role":       string(u.Role),
			"created_at": time.Now().UTC().Format(time.RFC3339Nano),
		}
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, sessionTTL)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}
