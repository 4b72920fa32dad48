package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/logitrack/logistics-api/internal/application"
	"github.com/logitrack/logistics-api/internal/domain/entity"
	"github.com/logitrack/logistics-api/internal/interface/middleware"
	"github.com/logitrack/logistics-api/pkg/apperr"
	"github.com/logitrack/logistics-api/pkg/response"
	"github.com/logitrack/logistics-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Phone    string `json:"phone" binding:"omitempty,phone"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user"`
}

type updateUserRequest struct {
	Name   string `json:"name" binding:"omitempty,max=120"`
	Phone  string `json:"phone" binding:"omitempty,phone"`
	Status string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// Register POST /api/users (public)
func (h *UserHandler) Register(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.CreateUser(application.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		response.Error[any](c, apperr.HTTPStatus(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusCreated, u, "user created", nil)
}

// List GET /api/users (admin)
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.ListUsers()
	if err != nil {
		response.Error[any](c, apperr.HTTPStatus(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, users, "users", nil)
}

// Get GET /api/users/:id (self or admin)
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Svc.GetUser(c.Param("id"), middleware.RequesterFrom(c))
	if err != nil {
		response.Error[any](c, apperr.HTTPStatus(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, u, "user", nil)
}

// Update PATCH /api/users/:id (admin)
func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateUser(c.Param("id"), application.UpdateUserInput{
		Name:   req.Name,
		Phone:  req.Phone,
		Status: entity.UserStatus(req.Status),
	})
	if err != nil {
		response.Error[any](c, apperr.HTTPStatus(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, u, "user updated", nil)
}
