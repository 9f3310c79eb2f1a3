package booking

import (
	"fmt"
	"math"
	"time"
)

const DateLayout = "2006-01-02"

const hoursPerDay = 24

// DateRange is an inclusive span of calendar days. Both ends are normalized
// to midnight UTC so day arithmetic never drifts across DST boundaries.
type DateRange struct {
	from time.Time
	to   time.Time
}

func NewDateRange(from, to time.Time) (DateRange, error) {
	f, t := truncateToDate(from), truncateToDate(to)
	if t.Before(f) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{from: f, to: t}, nil
}

func ParseDateRange(from, to string) (DateRange, error) {
	f, err := time.Parse(DateLayout, from)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: date_from: %s", ErrInvalidRange, err.Error())
	}
	t, err := time.Parse(DateLayout, to)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: date_to: %s", ErrInvalidRange, err.Error())
	}
	return NewDateRange(f, t)
}

// MustDateRange is intended for fixtures and tests.
func MustDateRange(from, to string) DateRange {
	r, err := ParseDateRange(from, to)
	if err != nil {
		panic(err)
	}
	return r
}

func (r DateRange) From() time.Time {
	return r.from
}

func (r DateRange) To() time.Time {
	return r.to
}

// Nights is the whole-day difference date_to - date_from.
func (r DateRange) Nights() int {
	return int(r.to.Sub(r.from).Hours() / hoursPerDay)
}

// Overlaps reports whether the two ranges share at least one calendar day.
// Both ends are inclusive: a stay ending on the 7th conflicts with one
// starting on the 7th.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.from.After(other.to) && !r.to.Before(other.from)
}

func (r DateRange) ValidateMaxStay(maxNights int) error {
	if maxNights > 0 && r.Nights() > maxNights {
		return ErrStayTooLong
	}
	return nil
}

func (r DateRange) String() string {
	return r.from.Format(DateLayout) + "/" + r.to.Format(DateLayout)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Money is an integer amount in the smallest currency unit.
type Money struct {
	amount int64
}

func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{amount: amount}, nil
}

func (m Money) Amount() int64 {
	return m.amount
}

// Times fails with ErrCostOverflow when the product leaves the int64 range.
func (m Money) Times(n int) (Money, error) {
	if n < 0 {
		return Money{}, ErrInvalidRange
	}
	if n > 0 && m.amount > math.MaxInt64/int64(n) {
		return Money{}, ErrCostOverflow
	}
	return Money{amount: m.amount * int64(n)}, nil
}
