package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "parkcore/internal/handler/dto/request"
	resdto "parkcore/internal/handler/dto/response"
	"parkcore/internal/handler/httperr"
	"parkcore/internal/pkg/clock"
	"parkcore/internal/pkg/gatetoken"
	"parkcore/internal/usecase/commands"
	"parkcore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GateHandler serves the scanner at the barrier: it verifies the QR token
// and records the entry or exit it proves.
type GateHandler struct {
	bookingCommands commands.BookingCommands
	gate            *gatetoken.Service
	clock           clock.Clock
}

func NewGateHandler(bookingCommands commands.BookingCommands, gate *gatetoken.Service, clock clock.Clock) *GateHandler {
	return &GateHandler{
		bookingCommands: bookingCommands,
		gate:            gate,
		clock:           clock,
	}
}

func (h *GateHandler) RecordEntry(c *gin.Context) {
	reservationID, at, ok := h.verifyScan(c)
	if !ok {
		return
	}

	view, err := h.bookingCommands.RecordEntry(c.Request.Context(), reservationID, at)
	if err != nil {
		h.respondGateError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *GateHandler) RecordExit(c *gin.Context) {
	reservationID, at, ok := h.verifyScan(c)
	if !ok {
		return
	}

	view, err := h.bookingCommands.RecordExit(c.Request.Context(), reservationID, at)
	if err != nil {
		h.respondGateError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *GateHandler) verifyScan(c *gin.Context) (uuid.UUID, time.Time, bool) {
	var req reqdto.GateScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return uuid.Nil, time.Time{}, false
	}

	claims, err := h.gate.Verify(req.Token)
	if err != nil {
		switch {
		case errors.Is(err, gatetoken.ErrExpiredToken):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Gate token expired")
		default:
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid gate token")
		}
		return uuid.Nil, time.Time{}, false
	}

	at := h.clock.Now()
	if req.OccurredAt != nil {
		at = *req.OccurredAt
	}
	return claims.ReservationID, at, true
}

func (h *GateHandler) respondGateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrReservationNotFound), errors.Is(err, queries.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
	case errors.Is(err, commands.ErrNotConfirmed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking is not confirmed")
	case errors.Is(err, commands.ErrAlreadyEntered):
		httperr.AbortWithError(c, http.StatusConflict, err, "Entry already recorded")
	case errors.Is(err, commands.ErrNotEntered):
		httperr.AbortWithError(c, http.StatusConflict, err, "No entry recorded for this booking")
	case errors.Is(err, commands.ErrAlreadyExited):
		httperr.AbortWithError(c, http.StatusConflict, err, "Exit already recorded")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
