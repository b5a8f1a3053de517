// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import "fmt"

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * 60
	secondsPerDay    = 24 * 60 * 60
)

// TimeOfDay represents a time of day with second resolution, packed into
// a uint32. It has no date concept: arithmetic wraps silently within a
// 24 hour day and never produces an out of range value.
type TimeOfDay uint32

// NewTimeOfDay returns the TimeOfDay for the given hour, minute and
// second, returning an error wrapping ErrInvalidField if any value is
// outside 0..23/0..59/0..59.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour %d out of range: %w", hour, ErrInvalidField)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute %d out of range: %w", minute, ErrInvalidField)
	}
	if second < 0 || second > 59 {
		return 0, fmt.Errorf("second %d out of range: %w", second, ErrInvalidField)
	}
	return newTimeOfDay(hour, minute, second), nil
}

func newTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour<<16 | minute<<8 | second)
}

func (t TimeOfDay) Hour() int {
	return int(t >> 16)
}

func (t TimeOfDay) Minute() int {
	return int(t >> 8 & 0xff)
}

func (t TimeOfDay) Second() int {
	return int(t & 0xff)
}

// SetHour sets the hour, failing if it is outside 0..23.
func (t *TimeOfDay) SetHour(hour int) error {
	nt, err := NewTimeOfDay(hour, t.Minute(), t.Second())
	if err != nil {
		return err
	}
	*t = nt
	return nil
}

// SetMinute sets the minute, failing if it is outside 0..59.
func (t *TimeOfDay) SetMinute(minute int) error {
	nt, err := NewTimeOfDay(t.Hour(), minute, t.Second())
	if err != nil {
		return err
	}
	*t = nt
	return nil
}

// SetSecond sets the second, failing if it is outside 0..59.
func (t *TimeOfDay) SetSecond(second int) error {
	nt, err := NewTimeOfDay(t.Hour(), t.Minute(), second)
	if err != nil {
		return err
	}
	*t = nt
	return nil
}

// SecondOfDay returns the number of seconds since midnight, 0..86399.
func (t TimeOfDay) SecondOfDay() int {
	return t.Hour()*secondsPerHour + t.Minute()*secondsPerMinute + t.Second()
}

func timeOfDayFromSecondOfDay(s int) TimeOfDay {
	return newTimeOfDay(s/secondsPerHour, s/secondsPerMinute%60, s%60)
}

// AddSeconds adds n seconds, wrapping minutes and hours modulo one day.
func (t TimeOfDay) AddSeconds(n int64) TimeOfDay {
	s := floorMod(int64(t.SecondOfDay())+n, secondsPerDay)
	return timeOfDayFromSecondOfDay(int(s))
}

// AddMinutes adds n minutes, wrapping hours modulo one day.
func (t TimeOfDay) AddMinutes(n int64) TimeOfDay {
	return t.AddSeconds(n * secondsPerMinute)
}

// AddHours adds n hours modulo one day.
func (t TimeOfDay) AddHours(n int64) TimeOfDay {
	return t.AddSeconds(n * secondsPerHour)
}

// RollHours wraps the hour modulo 24; for hours there is no larger unit
// within the type so this is the same operation as AddHours.
func (t TimeOfDay) RollHours(n int64) TimeOfDay {
	hour := int(floorMod(int64(t.Hour())+n, 24))
	return newTimeOfDay(hour, t.Minute(), t.Second())
}

// RollMinutes wraps the minute modulo 60; the hour is never changed.
func (t TimeOfDay) RollMinutes(n int64) TimeOfDay {
	minute := int(floorMod(int64(t.Minute())+n, 60))
	return newTimeOfDay(t.Hour(), minute, t.Second())
}

// RollSeconds wraps the second modulo 60; the minute and hour are never
// changed.
func (t TimeOfDay) RollSeconds(n int64) TimeOfDay {
	second := int(floorMod(int64(t.Second())+n, 60))
	return newTimeOfDay(t.Hour(), t.Minute(), second)
}

// Sub returns the signed number of seconds from other to t. There is no
// day to wrap into, so the result is simply the difference of the two
// second counts, -86399..86399.
func (t TimeOfDay) Sub(other TimeOfDay) int {
	return t.SecondOfDay() - other.SecondOfDay()
}

// Duration returns the time of day as a tick offset from midnight.
func (t TimeOfDay) Duration() Duration {
	return Duration(t.SecondOfDay()) * Second
}

// Compare orders times lexicographically on (hour, minute, second),
// returning -1, 0 or 1.
func (t TimeOfDay) Compare(other TimeOfDay) int {
	switch {
	case t < other:
		return -1
	case t > other:
		return 1
	}
	return 0
}
