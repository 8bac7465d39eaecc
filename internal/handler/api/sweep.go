package api

import (
	"errors"
	"net/http"

	resdto "parkcore/internal/handler/dto/response"
	"parkcore/internal/handler/httperr"
	"parkcore/internal/pkg/clock"
	"parkcore/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// SweepHandler triggers the automation pass on demand; the cron schedule
// runs the same code.
type SweepHandler struct {
	sweepCommands commands.SweepCommands
	clock         clock.Clock
}

func NewSweepHandler(sweepCommands commands.SweepCommands, clock clock.Clock) *SweepHandler {
	return &SweepHandler{sweepCommands: sweepCommands, clock: clock}
}

func (h *SweepHandler) RunSweep(c *gin.Context) {
	now := h.clock.Now()
	report, err := h.sweepCommands.Sweep(c.Request.Context(), now)
	if err != nil {
		if errors.Is(err, commands.ErrSweepRunning) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Sweep already running")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.SweepResponse{
		RanAt:         now,
		ExpiredHolds:  report.ExpiredHolds,
		FinesIssued:   report.FinesIssued,
		FinesRaised:   report.FinesRaised,
		RemindersSent: report.RemindersSent,
	})
}
