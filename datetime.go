// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import "cloudeng.io/errors"

// DateTime composes a Date and a TimeOfDay by value. Calendar work is
// delegated to Date and wrap around work to TimeOfDay; the only logic of
// its own is the carry of whole days between the two when second level
// arithmetic crosses midnight.
type DateTime struct {
	date Date
	time TimeOfDay
}

// NewDateTime returns the DateTime for the given fields, validating the
// date and time parts as per NewDate and NewTimeOfDay. Errors from both
// parts are combined.
func NewDateTime(year int, month Month, day, hour, minute, second int) (DateTime, error) {
	errs := errors.M{}
	d, err := NewDate(year, month, day)
	errs.Append(err)
	t, err := NewTimeOfDay(hour, minute, second)
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return DateTime{}, err
	}
	return DateTime{date: d, time: t}, nil
}

// NewDateTimeOf composes two already valid values.
func NewDateTimeOf(d Date, t TimeOfDay) DateTime {
	return DateTime{date: d, time: t}
}

func (dt DateTime) Date() Date {
	return dt.date
}

func (dt DateTime) TimeOfDay() TimeOfDay {
	return dt.time
}

func (dt DateTime) Year() int {
	return dt.date.Year()
}

func (dt DateTime) Month() Month {
	return dt.date.Month()
}

func (dt DateTime) Day() int {
	return dt.date.Day()
}

func (dt DateTime) Hour() int {
	return dt.time.Hour()
}

func (dt DateTime) Minute() int {
	return dt.time.Minute()
}

func (dt DateTime) Second() int {
	return dt.time.Second()
}

// SetYear sets the year of the date part, failing as per Date.SetYear.
func (dt *DateTime) SetYear(year int) error {
	return dt.date.SetYear(year)
}

// SetMonth sets the month of the date part, failing as per Date.SetMonth.
func (dt *DateTime) SetMonth(month Month) error {
	return dt.date.SetMonth(month)
}

// SetDay sets the day of the date part, failing as per Date.SetDay.
func (dt *DateTime) SetDay(day int) error {
	return dt.date.SetDay(day)
}

// SetHour sets the hour of the time part, failing as per TimeOfDay.SetHour.
func (dt *DateTime) SetHour(hour int) error {
	return dt.time.SetHour(hour)
}

// SetMinute sets the minute of the time part.
func (dt *DateTime) SetMinute(minute int) error {
	return dt.time.SetMinute(minute)
}

// SetSecond sets the second of the time part.
func (dt *DateTime) SetSecond(second int) error {
	return dt.time.SetSecond(second)
}

// AddYears adds n years to the date part per Date.AddYears.
func (dt DateTime) AddYears(n int, overflow Overflow) DateTime {
	return DateTime{dt.date.AddYears(n, overflow), dt.time}
}

// AddMonths adds n months to the date part per Date.AddMonths.
func (dt DateTime) AddMonths(n int, overflow Overflow) DateTime {
	return DateTime{dt.date.AddMonths(n, overflow), dt.time}
}

// AddDays adds n days to the date part.
func (dt DateTime) AddDays(n int64) DateTime {
	return DateTime{dt.date.AddDays(n), dt.time}
}

// AddSeconds adds n seconds, carrying whole days crossed into the date
// via day number arithmetic and wrapping the remainder in the time of
// day. Subtracting seconds that cross midnight rolls the date backwards.
func (dt DateTime) AddSeconds(n int64) DateTime {
	total := int64(dt.time.SecondOfDay()) + n
	days := floorDiv(total, secondsPerDay)
	rem := int(floorMod(total, secondsPerDay))
	return DateTime{dt.date.AddDays(days), timeOfDayFromSecondOfDay(rem)}
}

// AddMinutes adds n minutes, carrying across midnight as per AddSeconds.
func (dt DateTime) AddMinutes(n int64) DateTime {
	return dt.AddSeconds(n * secondsPerMinute)
}

// AddHours adds n hours, carrying across midnight as per AddSeconds.
func (dt DateTime) AddHours(n int64) DateTime {
	return dt.AddSeconds(n * secondsPerHour)
}

// AddDuration adds the whole seconds of d; the sub-second remainder is
// below the resolution of a DateTime and is truncated towards zero.
func (dt DateTime) AddDuration(d Duration) DateTime {
	return dt.AddSeconds(d.Seconds())
}

// RollYears rolls the date part per Date.RollYears.
func (dt DateTime) RollYears(n int, overflow Overflow) DateTime {
	return DateTime{dt.date.RollYears(n, overflow), dt.time}
}

// RollMonths rolls the date part per Date.RollMonths; the year never
// changes.
func (dt DateTime) RollMonths(n int, overflow Overflow) DateTime {
	return DateTime{dt.date.RollMonths(n, overflow), dt.time}
}

// RollDays rolls the day within the month per Date.RollDays.
func (dt DateTime) RollDays(n int) DateTime {
	return DateTime{dt.date.RollDays(n), dt.time}
}

// RollHours wraps the hour within the day; the date never changes.
func (dt DateTime) RollHours(n int64) DateTime {
	return DateTime{dt.date, dt.time.RollHours(n)}
}

// RollMinutes wraps the minute within the hour; nothing else changes.
func (dt DateTime) RollMinutes(n int64) DateTime {
	return DateTime{dt.date, dt.time.RollMinutes(n)}
}

// RollSeconds wraps the second within the minute; nothing else changes.
func (dt DateTime) RollSeconds(n int64) DateTime {
	return DateTime{dt.date, dt.time.RollSeconds(n)}
}

// Sub returns the signed duration from other to dt: the day number
// difference converted to ticks plus the time of day difference.
func (dt DateTime) Sub(other DateTime) Duration {
	days := dt.date.DayNumber() - other.date.DayNumber()
	secs := int64(dt.time.Sub(other.time))
	return Duration(satAdd(satMul(days, ticksPerDay), secs*ticksPerSecond))
}

// Ticks returns the tick count since midnight 0001-01-01 for the civil
// fields, saturating at the int64 range for extreme dates.
func (dt DateTime) Ticks() int64 {
	days := dt.date.DayNumber() - 1
	return satAdd(satMul(days, ticksPerDay), int64(dt.time.SecondOfDay())*ticksPerSecond)
}

// DateTimeFromTicks decomposes a tick count since midnight 0001-01-01
// into a DateTime and the sub-second remainder, 0 <= frac < Second.
func DateTimeFromTicks(ticks int64) (DateTime, Duration) {
	days := floorDiv(ticks, ticksPerDay)
	rem := floorMod(ticks, ticksPerDay)
	sod := int(rem / ticksPerSecond)
	frac := Duration(rem % ticksPerSecond)
	return DateTime{DateFromDayNumber(days + 1), timeOfDayFromSecondOfDay(sod)}, frac
}

// Compare orders by date then time of day, returning -1, 0 or 1.
func (dt DateTime) Compare(other DateTime) int {
	if c := dt.date.Compare(other.date); c != 0 {
		return c
	}
	return dt.time.Compare(other.time)
}
