package api

import (
	"errors"
	"net/http"

	reqdto "parkcore/internal/handler/dto/request"
	resdto "parkcore/internal/handler/dto/response"
	"parkcore/internal/handler/httperr"
	"parkcore/internal/usecase/commands"
	"parkcore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), commands.CreateBookingInput{
		SlotID:      req.SlotID,
		RequesterID: req.RequesterID,
		VehicleID:   req.VehicleID,
		Start:       req.StartTime,
		End:         req.EndTime,
	})
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		Booking:   resdto.FromBookingView(result.Booking),
		GateToken: result.GateToken,
	})
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format")
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	requesterID, err := uuid.Parse(c.Query("requester_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing requester_id")
		return
	}

	views, err := h.bookingQueries.ListByRequester(c.Request.Context(), requesterID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

func (h *BookingHandler) ExtendBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format")
		return
	}

	var req reqdto.ExtendBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	view, err := h.bookingCommands.ExtendBooking(c.Request.Context(), id, req.NewEnd)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format")
		return
	}

	result, err := h.bookingCommands.CancelBooking(c.Request.Context(), id)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CancelBookingResponse{
		Booking:     resdto.FromBookingView(result.Booking),
		RefundCents: result.RefundCents,
	})
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSlotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found")
	case errors.Is(err, commands.ErrVehicleNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found")
	case errors.Is(err, commands.ErrLocationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Location not found")
	case errors.Is(err, commands.ErrReservationNotFound), errors.Is(err, queries.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
	case errors.Is(err, commands.ErrInvalidInterval):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time interval")
	case errors.Is(err, commands.ErrVehicleClassMismatch):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Vehicle class not allowed on this slot")
	case errors.Is(err, commands.ErrSlotDisabled), errors.Is(err, commands.ErrLocationInactive):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Slot not open for booking")
	case errors.Is(err, commands.ErrSlotUnderMaintenance):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot under maintenance for the requested interval")
	case errors.Is(err, commands.ErrSlotUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot already booked for the requested interval")
	case errors.Is(err, commands.ErrExtensionOverlap):
		httperr.AbortWithError(c, http.StatusConflict, err, "Extension conflicts with a later booking")
	case errors.Is(err, commands.ErrPaymentFailed):
		httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment failed")
	case errors.Is(err, commands.ErrAlreadyExpired):
		httperr.AbortWithError(c, http.StatusConflict, err, "Hold expired before payment completed")
	case errors.Is(err, commands.ErrNotConfirmed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking is not confirmed")
	case errors.Is(err, commands.ErrAlreadyEntered):
		httperr.AbortWithError(c, http.StatusConflict, err, "Vehicle already entered")
	case errors.Is(err, commands.ErrAlreadyStarted):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking already started")
	case errors.Is(err, commands.ErrCancelNotAllowed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking cannot be cancelled in its current state")
	case errors.Is(err, commands.ErrReconciliationRequired):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Payment captured but booking update failed; support has been notified")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
