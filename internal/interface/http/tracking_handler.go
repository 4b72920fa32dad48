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

type TrackingHandler struct {
	Svc    *application.TrackingService
	Logger *logrus.Logger
}

func NewTrackingHandler(svc *application.TrackingService, logger *logrus.Logger) *TrackingHandler {
	return &TrackingHandler{Svc: svc, Logger: logger}
}

type registerEventRequest struct {
	Location    string `json:"location" binding:"required,max=200"`
	Status      string `json:"status" binding:"required,max=50"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

func eventJSON(e *entity.TrackingEvent) gin.H {
	return gin.H{
		"id":            e.ID,
		"package_id":    e.PackageID,
		"location":      e.Location,
		"status":        e.Status,
		"description":   e.Description,
		"registered_by": e.RegisteredBy,
		"timestamp":     e.Timestamp,
	}
}

// Register POST /api/packages/:id/tracking
// The :id segment may be the canonical id or the tracking code. Any
// authenticated caller may append events.
func (h *TrackingHandler) Register(c *gin.Context) {
	var req registerEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	e, err := h.Svc.RegisterEvent(c.Request.Context(), c.Param("id"), application.RegisterEventInput{
		Location:    req.Location,
		Status:      req.Status,
		Description: req.Description,
	}, c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		response.Error[any](c, apperr.HTTPStatus(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusCreated, eventJSON(e), "tracking event registered", nil)
}

// History GET /api/packages/:id/tracking — newest first.
func (h *TrackingHandler) History(c *gin.Context) {
	events, err := h.Svc.GetHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, apperr.HTTPStatus(err), err.Error(), nil)
		return
	}
	out := make([]gin.H, 0, len(events))
	for _, e := range events {
		out = append(out, eventJSON(e))
	}
	response.Success(c, http.StatusOK, out, "tracking history", nil)
}
