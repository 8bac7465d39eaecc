package response

import "time"

type SweepResponse struct {
	RanAt         time.Time `json:"ranAt"`
	ExpiredHolds  int       `json:"expiredHolds"`
	FinesIssued   int       `json:"finesIssued"`
	FinesRaised   int       `json:"finesRaised"`
	RemindersSent int       `json:"remindersSent"`
}
