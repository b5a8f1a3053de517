// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import (
	"fmt"
	"time"
)

// Overflow selects the day overflow policy for month and year arithmetic.
// When the target month has fewer days than the current day, AllowOverflow
// rolls the excess days into the following month and ClampOverflow sets
// the day to the last day of the target month.
type Overflow int

const (
	AllowOverflow Overflow = iota
	ClampOverflow
)

func (o Overflow) String() string {
	if o == ClampOverflow {
		return "clamp"
	}
	return "allow"
}

// Date represents a date on the proleptic Gregorian calendar. The year,
// month and day are packed into a uint32 to keep Date a cheap value type;
// the year is stored as an int16 so years -32768 to 32767 are
// representable, with year 0 being 1 B.C. A Date is always valid: the
// only ways to obtain one are the validating constructor and setters, the
// total day number conversion, and arithmetic on an existing Date.
type Date uint32

// NewDate returns the Date for the given year, month and day. It returns
// an error wrapping ErrInvalidField if the month is outside 1..12 or the
// day is invalid for the month and year, eg. February 29th of a non
// leap year.
func NewDate(year int, month Month, day int) (Date, error) {
	if year < minYear || year > maxYear {
		return 0, fmt.Errorf("year %d out of range: %w", year, ErrInvalidField)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("month %d out of range: %w", int(month), ErrInvalidField)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return 0, fmt.Errorf("day %d out of range for %s %d: %w", day, month, year, ErrInvalidField)
	}
	return newDate(year, month, day), nil
}

func newDate(year int, month Month, day int) Date {
	return Date(uint32(uint16(int16(year)))<<16 | uint32(month)<<8 | uint32(day))
}

var (
	minDate = newDate(minYear, 1, 1)
	maxDate = newDate(maxYear, 12, 31)

	minDayNumber = DayNumber(minYear, 1, 1)
	maxDayNumber = DayNumber(maxYear, 12, 31)
)

// DateFromDayNumber returns the Date for the given Gregorian day number.
// It is total: day numbers beyond the representable year range saturate
// to the first or last representable Date.
func DateFromDayNumber(n int64) Date {
	if n < minDayNumber {
		return minDate
	}
	if n > maxDayNumber {
		return maxDate
	}
	year, month, day := YearMonthDayFromDayNumber(n)
	return newDate(year, month, day)
}

func (d Date) Year() int {
	return int(int16(uint16(d >> 16)))
}

func (d Date) Month() Month {
	return Month(d >> 8 & 0xff)
}

func (d Date) Day() int {
	return int(d & 0xff)
}

// SetYear sets the year, failing if the current month and day are invalid
// for the new year (February 29th of a non leap year).
func (d *Date) SetYear(year int) error {
	nd, err := NewDate(year, d.Month(), d.Day())
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// SetMonth sets the month, failing if the current day exceeds the days in
// the new month.
func (d *Date) SetMonth(month Month) error {
	nd, err := NewDate(d.Year(), month, d.Day())
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// SetDay sets the day of the month, failing if it is invalid for the
// current month and year.
func (d *Date) SetDay(day int) error {
	nd, err := NewDate(d.Year(), d.Month(), day)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// DayNumber returns the signed Gregorian day number for the date, with
// day 1 being January 1st of year 1.
func (d Date) DayNumber() int64 {
	return DayNumber(d.Year(), d.Month(), d.Day())
}

// SetDayNumber replaces the entire date with the date for the given day
// number. It cannot fail; out of range day numbers saturate as for
// DateFromDayNumber.
func (d *Date) SetDayNumber(n int64) {
	*d = DateFromDayNumber(n)
}

// clampYear keeps arithmetic results inside the representable year range
// so that add/roll never produce an invalid Date.
func clampYear(year int64) int {
	if year < minYear {
		return minYear
	}
	if year > maxYear {
		return maxYear
	}
	return int(year)
}

// AddYears adds n years, which may be negative. A February 29th start
// date landing on a non leap year is resolved per the overflow policy:
// AllowOverflow yields March 1st, ClampOverflow February 28th.
func (d Date) AddYears(n int, overflow Overflow) Date {
	year := clampYear(int64(d.Year()) + int64(n))
	month, day := d.Month(), d.Day()
	if day > DaysInMonth(year, month) {
		if overflow == ClampOverflow {
			return newDate(year, month, DaysInMonth(year, month))
		}
		return newDate(year, 3, day-DaysInFeb(year))
	}
	return newDate(year, month, day)
}

// AddMonths adds n months, which may be negative, adjusting the year as
// needed. Day overflow into a shorter month is resolved per the overflow
// policy, with AllowOverflow rolling the excess into the following month.
func (d Date) AddMonths(n int, overflow Overflow) Date {
	total := int64(d.Year())*12 + int64(d.Month()) - 1 + int64(n)
	year := clampYear(floorDiv(total, 12))
	month := Month(floorMod(total, 12) + 1)
	day := d.Day()
	if dim := DaysInMonth(year, month); day > dim {
		if overflow == ClampOverflow {
			return newDate(year, month, dim)
		}
		day -= dim
		month++
		if month > 12 {
			month = 1
			year = clampYear(int64(year) + 1)
		}
	}
	return newDate(year, month, day)
}

// AddDays adds n days, which may be negative, via day number arithmetic.
func (d Date) AddDays(n int64) Date {
	return DateFromDayNumber(d.DayNumber() + n)
}

// RollYears is identical to AddYears; there is no larger unit for the
// year to wrap within.
func (d Date) RollYears(n int, overflow Overflow) Date {
	return d.AddYears(n, overflow)
}

// RollMonths wraps the month within the current year: the year is never
// changed, rolling forward from December continues at January. Day
// overflow is resolved per the overflow policy, with AllowOverflow
// wrapping December into January of the same year.
func (d Date) RollMonths(n int, overflow Overflow) Date {
	year := d.Year()
	month := Month(floorMod(int64(d.Month())-1+int64(n), 12) + 1)
	day := d.Day()
	if dim := DaysInMonth(year, month); day > dim {
		if overflow == ClampOverflow {
			return newDate(year, month, dim)
		}
		day -= dim
		month++
		if month > 12 {
			month = 1
		}
	}
	return newDate(year, month, day)
}

// RollDays wraps the day within the current month; the month and year are
// never changed.
func (d Date) RollDays(n int) Date {
	dim := int64(d.DaysInMonth())
	day := int(floorMod(int64(d.Day())-1+int64(n), dim)) + 1
	return newDate(d.Year(), d.Month(), day)
}

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday {
	return weekdayFromDayNumber(d.DayNumber())
}

// DayOfYear returns the day of the year, 1-365 for non leap years and
// 1-366 for leap years.
func (d Date) DayOfYear() int {
	return dayOfYearFor(d.Year(), d.Month(), d.Day())
}

// ISOWeek returns the ISO 8601 week year and week number for the date.
// Week ranges from 1 to 53; dates in late December may belong to week 1
// of the following year and dates in early January to week 52 or 53 of
// the previous year. The week containing the date's Thursday determines
// the week year.
func (d Date) ISOWeek() (year, week int) {
	offset := int64(time.Thursday - d.Weekday())
	if offset == 4 { // Sunday belongs to the preceding Thursday's week
		offset = -3
	}
	year, yday := yearDayFromDayNumber(d.DayNumber() + offset)
	return year, (yday-1)/7 + 1
}

// DaysInMonth returns the number of days in the date's month.
func (d Date) DaysInMonth() int {
	return DaysInMonth(d.Year(), d.Month())
}

// EndOfMonth returns the last day of the date's month.
func (d Date) EndOfMonth() Date {
	return newDate(d.Year(), d.Month(), d.DaysInMonth())
}

// IsLeapYear returns true if the date's year is a leap year.
func (d Date) IsLeapYear() bool {
	return IsLeap(d.Year())
}

// DiffMonths returns the number of months between the two dates, ignoring
// the day fields: January 31st and February 1st are one month apart.
func (d Date) DiffMonths(other Date) int {
	return (d.Year()-other.Year())*12 + int(d.Month()) - int(other.Month())
}

// Compare orders dates lexicographically on (year, month, day), returning
// -1, 0 or 1.
func (d Date) Compare(other Date) int {
	if y, oy := d.Year(), other.Year(); y != oy {
		if y < oy {
			return -1
		}
		return 1
	}
	// Same year: month and day occupy the low bits in order.
	if dd, od := d&0xffff, other&0xffff; dd != od {
		if dd < od {
			return -1
		}
		return 1
	}
	return 0
}
