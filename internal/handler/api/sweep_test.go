//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"parkcore/internal/handler/api"
	resdto "parkcore/internal/handler/dto/response"
	"parkcore/internal/pkg/clock"
	"parkcore/internal/usecase/commands"
	"parkcore/tests/common/httptest"
	commandsmock "parkcore/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SweepHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockSweep *commandsmock.MockSweepCommands
	clk       *clock.MockClock
	handler   *api.SweepHandler
}

func (s *SweepHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSweep = commandsmock.NewMockSweepCommands(s.mockCtrl)
	s.clk = clock.NewMockClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	s.handler = api.NewSweepHandler(s.mockSweep, s.clk)

	s.router.POST("/admin/sweep", s.handler.RunSweep)
}

func (s *SweepHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSweepHandlerSuite(t *testing.T) {
	suite.Run(t, new(SweepHandlerTestSuite))
}

func (s *SweepHandlerTestSuite) TestRunSweep() {
	s.Run("success: returns the pass report", func() {
		s.mockSweep.EXPECT().Sweep(gomock.Any(), s.clk.Now()).
			Return(&commands.SweepReport{ExpiredHolds: 2, FinesIssued: 1, RemindersSent: 3}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/sweep", nil)

		var body resdto.SweepResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.ExpiredHolds)
		s.Equal(1, body.FinesIssued)
		s.Equal(0, body.FinesRaised)
		s.Equal(3, body.RemindersSent)
		s.True(body.RanAt.Equal(s.clk.Now()))
	})

	s.Run("error: 409 while a pass is running", func() {
		s.mockSweep.EXPECT().Sweep(gomock.Any(), gomock.Any()).Return(nil, commands.ErrSweepRunning)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/sweep", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already running")
	})
}
