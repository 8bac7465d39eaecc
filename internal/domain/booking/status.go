package booking

import (
	"context"
	"errors"

	"github.com/looplab/fsm"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
	StatusExpired   Status = "EXPIRED"
)

// Transition events.
const (
	EventConfirm  = "confirm"
	EventCancel   = "cancel"
	EventComplete = "complete"
	EventExpire   = "expire"
)

var ErrInvalidTransition = errors.New("invalid reservation state transition")

// transitions is the whole reservation life cycle. Terminal states have no
// outgoing events.
var transitions = fsm.Events{
	{Name: EventConfirm, Src: []string{string(StatusPending)}, Dst: string(StatusConfirmed)},
	{Name: EventExpire, Src: []string{string(StatusPending)}, Dst: string(StatusExpired)},
	{Name: EventCancel, Src: []string{string(StatusPending), string(StatusConfirmed)}, Dst: string(StatusCancelled)},
	{Name: EventComplete, Src: []string{string(StatusConfirmed)}, Dst: string(StatusCompleted)},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusCompleted, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) machine() *fsm.FSM {
	return fsm.NewFSM(string(s), transitions, fsm.Callbacks{})
}

// CanTransition reports whether the event is legal from this state.
func (s Status) CanTransition(event string) bool {
	return s.machine().Can(event)
}

// Transition applies the event and returns the resulting state, or
// ErrInvalidTransition when the state machine forbids it.
func (s Status) Transition(event string) (Status, error) {
	m := s.machine()
	if err := m.Event(context.Background(), event); err != nil {
		return s, ErrInvalidTransition
	}
	return Status(m.Current()), nil
}
