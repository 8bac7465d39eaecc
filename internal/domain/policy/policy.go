// Package policy computes cancellation refunds. Like pricing, it is pure:
// a policy, a scheduled start and a cancellation time always yield the same
// fraction.
package policy

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAlreadyStarted  = errors.New("reservation already started")
	ErrInvalidFraction = errors.New("refund fraction must be within [0,1]")
)

// Band grants RefundFraction when the cancellation lead time is at least
// MinLead. A negative MinLead is an after-start band: it still applies once
// the reservation has begun.
type Band struct {
	MinLead        time.Duration
	RefundFraction decimal.Decimal
}

// Policy is an ordered list of bands; LocationID nil marks the global
// fallback policy.
type Policy struct {
	ID         uuid.UUID
	LocationID *uuid.UUID
	Bands      []Band
}

func New(id uuid.UUID, locationID *uuid.UUID, bands []Band) (*Policy, error) {
	one := decimal.NewFromInt(1)
	for _, b := range bands {
		if b.RefundFraction.IsNegative() || b.RefundFraction.GreaterThan(one) {
			return nil, ErrInvalidFraction
		}
	}
	p := &Policy{ID: id, LocationID: locationID, Bands: append([]Band(nil), bands...)}
	sort.SliceStable(p.Bands, func(i, j int) bool {
		return p.Bands[i].MinLead > p.Bands[j].MinLead
	})
	return p, nil
}

func (p *Policy) hasAfterStartBand() bool {
	for _, b := range p.Bands {
		if b.MinLead < 0 {
			return true
		}
	}
	return false
}

// RefundFraction picks the tightest band the lead time still satisfies:
// bands are ordered descending by threshold and the first band whose
// threshold is at most the lead time wins. Cancelling after the start fails
// unless an after-start band exists. No matching band refunds nothing.
func (p *Policy) RefundFraction(scheduledStart, cancelAt time.Time) (decimal.Decimal, error) {
	lead := scheduledStart.Sub(cancelAt)
	if lead < 0 && !p.hasAfterStartBand() {
		return decimal.Zero, ErrAlreadyStarted
	}
	for _, b := range p.Bands {
		if b.MinLead <= lead {
			return b.RefundFraction, nil
		}
	}
	return decimal.Zero, nil
}

// Set resolves the effective policy for a location, falling back to the
// global policy when no location-specific one exists.
type Set struct {
	byLocation map[uuid.UUID]*Policy
	global     *Policy
}

func NewSet(policies []*Policy) *Set {
	s := &Set{byLocation: make(map[uuid.UUID]*Policy)}
	for _, p := range policies {
		if p.LocationID == nil {
			s.global = p
			continue
		}
		s.byLocation[*p.LocationID] = p
	}
	return s
}

// For returns the policy in effect for the location; nil when neither a
// location policy nor a global one is configured.
func (s *Set) For(locationID uuid.UUID) *Policy {
	if p, ok := s.byLocation[locationID]; ok {
		return p
	}
	return s.global
}
