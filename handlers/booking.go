package handlers

import (
	"errors"
	"net/http"

	"opsdeck/services/booking"
	"opsdeck/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the slot-selection flow over HTTP.
type BookingHandler struct {
	svc    booking.SessionService
	logger *zap.Logger
}

func NewBookingHandler(svc booking.SessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, logger: logger}
}

// InitiateSession opens a booking session for one resource view.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		ResourceID string `json:"resourceId" binding:"required"`
		TenantID   string `json:"tenantId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.svc.InitiateSession(c.Request.Context(), input.ResourceID, input.TenantID)
	if errors.Is(err, booking.ErrUnknownResource) {
		utils.JSONError(c, http.StatusNotFound, "unknown resource", input.ResourceID)
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to open booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectSlot locks one available hour in the session.
func (h *BookingHandler) SelectSlot(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Hour *int `json:"hour" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.svc.SelectSlot(c.Request.Context(), sessionID, *input.Hour)
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", sessionID)
	case errors.Is(err, booking.ErrSlotUnavailable):
		utils.JSONError(c, http.StatusConflict, "slot is not available", "")
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "failed to select slot", err.Error())
	default:
		c.JSON(http.StatusOK, view)
	}
}

// ConfirmBooking turns the locked slot into a booking and reconciles it.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	sessionID := c.Param("sessionID")

	confirmation, err := h.svc.ConfirmBooking(c.Request.Context(), sessionID)
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", sessionID)
	case errors.Is(err, booking.ErrNoSlotLocked):
		utils.JSONError(c, http.StatusBadRequest, "no slot locked in session", sessionID)
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "failed to confirm booking", err.Error())
	default:
		c.JSON(http.StatusOK, confirmation)
	}
}

// CancelSession drops the session and its lock.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.svc.CancelSession(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": sessionID})
}

// ResourceSlots returns the derived slot grid for one resource.
func (h *BookingHandler) ResourceSlots(c *gin.Context) {
	resourceID := c.Param("id")
	slots, err := h.svc.ResourceSlots(c.Request.Context(), resourceID)
	if errors.Is(err, booking.ErrUnknownResource) {
		utils.JSONError(c, http.StatusNotFound, "unknown resource", resourceID)
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"resourceId": resourceID, "slots": slots})
}

// ListBookings returns the booking sequence in insertion order.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.svc.ListBookings(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
