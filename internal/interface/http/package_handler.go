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

type PackageHandler struct {
	Svc    *application.PackageService
	Logger *logrus.Logger
}

func NewPackageHandler(svc *application.PackageService, logger *logrus.Logger) *PackageHandler {
	return &PackageHandler{Svc: svc, Logger: logger}
}

type createPackageRequest struct {
	Description        string  `json:"description" binding:"required,max=255"`
	Weight             float64 `json:"weight" binding:"required,gt=0"`
	OriginAddress      string  `json:"origin_address" binding:"required,max=300"`
	DestinationAddress string  `json:"destination_address" binding:"required,max=300"`
	RecipientName      string  `json:"recipient_name" binding:"required,max=120"`
	RecipientPhone     string  `json:"recipient_phone" binding:"required,max=20"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_transit delivered cancelled"`
}

func packageJSON(p *entity.Package) gin.H {
	return gin.H{
		"id":                  p.ID,
		"tracking_code":       p.TrackingCode,
		"description":         p.Description,
		"weight":              p.Weight,
		"origin_address":      p.OriginAddress,
		"destination_address": p.DestinationAddress,
		"recipient_name":      p.RecipientName,
		"recipient_phone":     p.RecipientPhone,
		"status":              p.Status,
		"owner_id":            p.OwnerID,
		"created_at":          p.CreatedAt,
		"updated_at":          p.UpdatedAt,
	}
}

func packagesJSON(pkgs []*entity.Package) []gin.H {
	out := make([]gin.H, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, packageJSON(p))
	}
	return out
}

// Create POST /api/packages
func (h *PackageHandler) Create(c *gin.Context) {
	var req createPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), application.CreatePackageInput{
		Description:        req.Description,
		Weight:             req.Weight,
		OriginAddress:      req.OriginAddress,
		DestinationAddress: req.DestinationAddress,
		RecipientName:      req.RecipientName,
		RecipientPhone:     req.RecipientPhone,
	}, c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		response.Error[any](c, apperr.HTTPStatus(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusCreated, packageJSON(p), "package created", nil)
}

// List GET /api/packages — admins see everything, users their own.
func (h *PackageHandler) List(c *gin.Context) {
	req := middleware.RequesterFrom(c)
	var (
		pkgs []*entity.Package
		err  error
	)
	if req.Role == entity.RoleAdmin {
		pkgs, err = h.Svc.ListAll()
	} else {
		pkgs, err = h.Svc.ListMine(req.ID)
	}
	if err != nil {
		response.Error[any](c, apperr.HTTPStatus(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, packagesJSON(pkgs), "packages", nil)
}

// ListMine GET /api/packages/my
func (h *PackageHandler) ListMine(c *gin.Context) {
	pkgs, err := h.Svc.ListMine(c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		response.Error[any](c, apperr.HTTPStatus(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, packagesJSON(pkgs), "packages", nil)
}

// GetByTrackingCode GET /api/packages/tracking/:trackingCode
// Lookup by code is open to any authenticated caller, matching the public
// tracking flow.
func (h *PackageHandler) GetByTrackingCode(c *gin.Context) {
	p, err := h.Svc.Resolve(c.Request.Context(), c.Param("trackingCode"))
	if err != nil {
		response.Error[any](c, apperr.HTTPStatus(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, packageJSON(p), "package", nil)
}

// Get GET /api/packages/:id
func (h *PackageHandler) Get(c *gin.Context) {
	p, err := h.Svc.GetByID(c.Param("id"), middleware.RequesterFrom(c))
	if err != nil {
		response.Error[any](c, apperr.HTTPStatus(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, packageJSON(p), "package", nil)
}

// UpdateStatus PATCH /api/packages/:id/status (admin)
func (h *PackageHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), entity.PackageStatus(req.Status))
	if err != nil {
		response.Error[any](c, apperr.HTTPStatus(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, packageJSON(p), "status updated", nil)
}
