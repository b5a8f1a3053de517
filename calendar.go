// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import "time"

// Month as an int, interoperable with time.Month.
type Month time.Month

func (m Month) String() string {
	if m < 1 || m > 12 {
		return "???"
	}
	return time.Month(m).String()
}

// Abbrev returns the three letter abbreviation for the month, eg. "Jan".
func (m Month) Abbrev() string {
	if m < 1 || m > 12 {
		return "???"
	}
	return monthAbbrevs[m-1]
}

// MonthFromAbbrev returns the Month for a three letter abbreviation
// such as "Jan" or "Dec".
func MonthFromAbbrev(val string) (Month, bool) {
	for i := range monthAbbrevs {
		if monthAbbrevs[i] == val {
			return Month(i + 1), true
		}
	}
	return 0, false
}

const (
	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461

	minYear = -32768
	maxYear = 32767
)

var (
	daysInMonths     = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	daysInMonthsLeap = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	// Cumulative days in the year before each month.
	dayOfYearStart     = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
	dayOfYearStartLeap = [12]int{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}

	monthAbbrevs = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

// IsLeap returns true if the given year is a leap year under the proleptic
// Gregorian rules, which apply to all years including those <= 0
// (year 0, ie. 1 B.C., is a leap year).
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(year int, month Month) int {
	if IsLeap(year) {
		return daysInMonthsLeap[month-1]
	}
	return daysInMonths[month-1]
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

func daysInMonthsForYear(year int) *[12]int {
	if IsLeap(year) {
		return &daysInMonthsLeap
	}
	return &daysInMonths
}

// floorDiv is integer division rounding towards negative infinity,
// as required for day and tick arithmetic with B.C. values.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// daysBeforeYear returns the number of days from January 1st of year 1
// to January 1st of the given year. Negative for years <= 0.
func daysBeforeYear(year int64) int64 {
	y := year - 1
	return 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400)
}

// dayOfYearFor returns the 1 based day of the year for the given date.
func dayOfYearFor(year int, month Month, day int) int {
	if IsLeap(year) {
		return dayOfYearStartLeap[month-1] + day
	}
	return dayOfYearStart[month-1] + day
}

// DayNumber returns the signed Gregorian day number for the given date:
// day 1 is January 1st of year 1, day 0 is December 31st of year 0. The
// date is assumed to be valid.
func DayNumber(year int, month Month, day int) int64 {
	return daysBeforeYear(int64(year)) + int64(dayOfYearFor(year, month, day))
}

// yearDayFromDayNumber returns the year and 1 based day of year containing
// the given Gregorian day number. The year decomposition works on 400,
// 100, 4 and single year blocks; the last 100 year block of a 400 year
// cycle and the last year of a 4 year block each carry an extra leap day,
// which the n -= n>>2 corrections account for.
func yearDayFromDayNumber(n int64) (year int, yday int) {
	d := n - 1 // zero based days since January 1st of year 1.
	era := floorDiv(d, daysPer400Years)
	d -= era * daysPer400Years // now 0..146096

	n100 := d / daysPer100Years
	n100 -= n100 >> 2
	d -= n100 * daysPer100Years

	n4 := d / daysPer4Years
	d -= n4 * daysPer4Years

	n1 := d / 365
	n1 -= n1 >> 2
	d -= n1 * 365

	year = int(era*400 + n100*100 + n4*4 + n1 + 1)
	return year, int(d) + 1
}

// monthDayFromYearDay maps a 1 based day of year back to month and day.
func monthDayFromYearDay(year, yday int) (Month, int) {
	dim := daysInMonthsForYear(year)
	for month := 0; month < 12; month++ {
		if yday <= dim[month] {
			return Month(month + 1), yday
		}
		yday -= dim[month]
	}
	panic("unreachable")
}

// YearMonthDayFromDayNumber is the exact inverse of DayNumber:
// YearMonthDayFromDayNumber(DayNumber(y, m, d)) == (y, m, d) for every
// valid date in the representable year range.
func YearMonthDayFromDayNumber(n int64) (year int, month Month, day int) {
	year, yday := yearDayFromDayNumber(n)
	month, day = monthDayFromYearDay(year, yday)
	return year, month, day
}

// weekdayFromDayNumber returns the day of the week for a Gregorian day
// number. Day 1, January 1st of year 1, was a Monday.
func weekdayFromDayNumber(n int64) time.Weekday {
	return time.Weekday(floorMod(n, 7))
}
