package pricing

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rule is a time-scoped multiplier on the base hourly rate. LocationID nil
// means the rule is global; DayOfWeek nil means it applies every day.
// DayOfWeek uses 0=Monday .. 6=Sunday.
type Rule struct {
	ID          uuid.UUID
	LocationID  *uuid.UUID
	DayOfWeek   *int
	StartMinute int // minutes since midnight, inclusive
	EndMinute   int // minutes since midnight, exclusive
	Multiplier  decimal.Decimal
	Priority    int
}

// AppliesAt reports whether the rule's window covers the instant.
func (r Rule) AppliesAt(t time.Time) bool {
	if r.DayOfWeek != nil && *r.DayOfWeek != weekdayMondayBased(t) {
		return false
	}
	m := t.Hour()*60 + t.Minute()
	return m >= r.StartMinute && m < r.EndMinute
}

func (r Rule) isLocationScoped() bool {
	return r.LocationID != nil
}

// Resolve returns the single winning rule at an instant: highest priority
// first, then location-specific over global, then lowest rule ID so ties
// stay stable across runs. Nil when no rule matches.
func Resolve(rules []Rule, at time.Time) *Rule {
	var matching []Rule
	for _, r := range rules {
		if r.AppliesAt(at) {
			matching = append(matching, r)
		}
	}
	if len(matching) == 0 {
		return nil
	}
	sort.Slice(matching, func(i, j int) bool {
		a, b := matching[i], matching[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.isLocationScoped() != b.isLocationScoped() {
			return a.isLocationScoped()
		}
		return a.ID.String() < b.ID.String()
	})
	winner := matching[0]
	return &winner
}

func weekdayMondayBased(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
