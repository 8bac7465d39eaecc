package response

import (
	"time"

	"parkcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotAvailabilityResponse struct {
	SlotID uuid.UUID `json:"slotId"`
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
	Free   bool      `json:"free"`
}

type QuoteResponse struct {
	LocationID uuid.UUID              `json:"locationId"`
	From       time.Time              `json:"from"`
	To         time.Time              `json:"to"`
	FeeCents   int64                  `json:"feeCents"`
	DayUnits   int64                  `json:"dayUnits"`
	Segments   []QuoteSegmentResponse `json:"segments"`
}

type QuoteSegmentResponse struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	RuleID     string    `json:"ruleId,omitempty"`
	Multiplier string    `json:"multiplier"`
	Amount     string    `json:"amount"`
}

func FromSlotAvailabilityView(view *queries.SlotAvailabilityView) *SlotAvailabilityResponse {
	var resp SlotAvailabilityResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	var resp QuoteResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
