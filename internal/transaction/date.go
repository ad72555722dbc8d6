package transaction

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date, never in the future. The time component is
// truncated to midnight UTC.
type Date struct {
	t time.Time
}

// NewDate truncates t to a calendar date and rejects dates after today.
func NewDate(t time.Time) (Date, error) {
	if t.IsZero() {
		return Date{}, fmt.Errorf("%w: transaction date is required", ErrInvalidArgument)
	}

	day := truncateToDay(t)
	if day.After(truncateToDay(time.Now())) {
		return Date{}, fmt.Errorf("%w: transaction date %s is in the future", ErrInvalidArgument, day.Format(time.DateOnly))
	}

	return Date{t: day}, nil
}

// ParseDate parses a YYYY-MM-DD string into a Date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("%w: transaction date is required", ErrInvalidArgument)
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: malformed date %q, expected YYYY-MM-DD", ErrInvalidArgument, s)
	}

	return NewDate(t)
}

// Today returns the current calendar date.
func Today() Date {
	return Date{t: truncateToDay(time.Now())}
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

func (d Date) Time() time.Time { return d.t }

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) String() string { return d.t.Format(time.DateOnly) }

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
