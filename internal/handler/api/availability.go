package api

import (
	"errors"
	"net/http"
	"time"

	resdto "parkcore/internal/handler/dto/response"
	"parkcore/internal/handler/httperr"
	"parkcore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	bookingQueries queries.BookingQueries
}

func NewAvailabilityHandler(bookingQueries queries.BookingQueries) *AvailabilityHandler {
	return &AvailabilityHandler{bookingQueries: bookingQueries}
}

func (h *AvailabilityHandler) SlotAvailability(c *gin.Context) {
	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot ID format")
		return
	}
	from, to, ok := parseWindow(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.SlotAvailability(c.Request.Context(), slotID, from, to)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time interval")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotAvailabilityView(view))
}

func (h *AvailabilityHandler) QuotePreview(c *gin.Context) {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid location ID format")
		return
	}
	from, to, ok := parseWindow(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.QuotePreview(c.Request.Context(), locationID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrLocationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Location not found")
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time interval")
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

func parseWindow(c *gin.Context) (time.Time, time.Time, bool) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing from (RFC3339)")
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing to (RFC3339)")
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
