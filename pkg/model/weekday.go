package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownWeekDay is returned for weekday tokens outside Sat..Fri.
var ErrUnknownWeekDay = errors.New("unknown weekday")

// ErrInvalidClockTime is returned for times not in HH:MM 24-hour form.
var ErrInvalidClockTime = errors.New("invalid clock time")

type WeekDay int

// Week starts on Saturday.
const (
	Sat WeekDay = iota
	Sun
	Mon
	Tue
	Wed
	Thu
	Fri
)

// DaysInWeek is the number of WeekDay values.
const DaysInWeek = 7

var weekDayNames = [DaysInWeek]string{"Sat", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri"}

// ParseWeekDay maps a three letter token to its WeekDay.
// Matching is exact; anything else fails with ErrUnknownWeekDay.
func ParseWeekDay(s string) (WeekDay, error) {
	for i, name := range weekDayNames {
		if s == name {
			return WeekDay(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekDay, s)
}

func (d WeekDay) String() string {
	if d < 0 || int(d) >= DaysInWeek {
		return fmt.Sprintf("WeekDay(%d)", int(d))
	}
	return weekDayNames[d]
}

// ClockTime is a time of day in minutes since midnight.
type ClockTime int

// ParseClockTime parses an HH:MM 24-hour time.
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	return ClockTime(t.Hour()*60 + t.Minute()), nil
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}
