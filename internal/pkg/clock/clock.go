package clock

import "time"

// Clock stamps booking creation times.
type Clock interface {
	Now() time.Time
}

type Func func() time.Time

func (f Func) Now() time.Time { return f() }

func NewRealClock() Clock {
	return Func(func() time.Time { return time.Now().UTC() })
}

// Fixed always reports t. For tests.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}
