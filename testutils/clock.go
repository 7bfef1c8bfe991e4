package testutils

import "time"

// FixedTime implements utils.Clock with a time that only moves when told to.
type FixedTime struct {
	Fixed time.Time
}

func NewFixedTime(t time.Time) *FixedTime {
	return &FixedTime{Fixed: t}
}

func (ft *FixedTime) Now() time.Time {
	return ft.Fixed
}

func (ft *FixedTime) Advance(d time.Duration) {
	ft.Fixed = ft.Fixed.Add(d)
}
