// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import (
	"fmt"
	"strconv"
	"strings"
)

// The parsers below are the strict inverses of the formatters in
// format.go: wrong field widths, wrong separators, out of range numeric
// fields and trailing content all fail with an error wrapping
// ErrMalformed. Leading and trailing whitespace around the whole value
// is ignored. Date fields are anchored from the right so that the
// variable width year field never needs a delimiter of its own.

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parse2(s string) (int, bool) {
	if len(s) != 2 || !allDigits(s) {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

// parseYearField parses a year of at least four digits with an optional
// sign. Years without a sign must be exactly four digits; a '+' prefix
// requires five or more digits and a '-' prefix allows four or more.
// Wider fields must not be zero padded, so "+02010" and "-010000" are
// rejected.
func parseYearField(val string) (int, error) {
	body := val
	neg, plus := false, false
	if len(body) > 0 && (body[0] == '-' || body[0] == '+') {
		neg, plus = body[0] == '-', body[0] == '+'
		body = body[1:]
	}
	if len(body) == 0 || !allDigits(body) {
		return 0, fmt.Errorf("invalid year %q: %w", val, ErrMalformed)
	}
	switch {
	case plus && len(body) < 5,
		neg && len(body) < 4,
		!plus && !neg && len(body) != 4:
		return 0, fmt.Errorf("invalid year width %q: %w", val, ErrMalformed)
	}
	year, err := strconv.Atoi(body)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q: %w", val, ErrMalformed)
	}
	if len(body) > 4 && year < 10000 {
		return 0, fmt.Errorf("zero padded year %q: %w", val, ErrMalformed)
	}
	if neg {
		year = -year
	}
	if year < minYear || year > maxYear {
		return 0, fmt.Errorf("year %d out of range: %w", year, ErrMalformed)
	}
	return year, nil
}

func dateFromFields(val, yearField, monthField, dayField string) (Date, error) {
	year, err := parseYearField(yearField)
	if err != nil {
		return 0, err
	}
	month, ok := parse2(monthField)
	if !ok {
		return 0, fmt.Errorf("invalid month in %q: %w", val, ErrMalformed)
	}
	day, ok := parse2(dayField)
	if !ok {
		return 0, fmt.Errorf("invalid day in %q: %w", val, ErrMalformed)
	}
	d, err := NewDate(year, Month(month), day)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", val, ErrMalformed)
	}
	return d, nil
}

// ParseISO parses a compact ISO 8601 date such as "20100704" or
// "-00040105".
func (d *Date) ParseISO(val string) error {
	s := strings.TrimSpace(val)
	if len(s) < 8 {
		return fmt.Errorf("invalid date %q, expected 'YYYYMMDD': %w", val, ErrMalformed)
	}
	nd, err := dateFromFields(val, s[:len(s)-4], s[len(s)-4:len(s)-2], s[len(s)-2:])
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// ParseISOExt parses an extended ISO 8601 date such as "2010-07-04".
func (d *Date) ParseISOExt(val string) error {
	s := strings.TrimSpace(val)
	if len(s) < 10 || s[len(s)-3] != '-' || s[len(s)-6] != '-' {
		return fmt.Errorf("invalid date %q, expected 'YYYY-MM-DD': %w", val, ErrMalformed)
	}
	nd, err := dateFromFields(val, s[:len(s)-6], s[len(s)-5:len(s)-3], s[len(s)-2:])
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// ParseSimple parses a date in the simple form such as "2010-Jul-04".
func (d *Date) ParseSimple(val string) error {
	s := strings.TrimSpace(val)
	if len(s) < 11 || s[len(s)-3] != '-' || s[len(s)-7] != '-' {
		return fmt.Errorf("invalid date %q, expected 'YYYY-Mon-DD': %w", val, ErrMalformed)
	}
	month, ok := MonthFromAbbrev(s[len(s)-6 : len(s)-3])
	if !ok {
		return fmt.Errorf("invalid month in %q: %w", val, ErrMalformed)
	}
	year, err := parseYearField(s[:len(s)-7])
	if err != nil {
		return err
	}
	day, ok := parse2(s[len(s)-2:])
	if !ok {
		return fmt.Errorf("invalid day in %q: %w", val, ErrMalformed)
	}
	nd, err := NewDate(year, month, day)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", val, ErrMalformed)
	}
	*d = nd
	return nil
}

func timeFromFields(val, hourField, minField, secField string) (TimeOfDay, error) {
	hour, ok1 := parse2(hourField)
	minute, ok2 := parse2(minField)
	second, ok3 := parse2(secField)
	if !ok1 || !ok2 || !ok3 {
		return 0, fmt.Errorf("invalid time %q: %w", val, ErrMalformed)
	}
	t, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", val, ErrMalformed)
	}
	return t, nil
}

// ParseISO parses a compact ISO 8601 time of day such as "123033".
func (t *TimeOfDay) ParseISO(val string) error {
	s := strings.TrimSpace(val)
	if len(s) != 6 {
		return fmt.Errorf("invalid time %q, expected 'HHMMSS': %w", val, ErrMalformed)
	}
	nt, err := timeFromFields(val, s[0:2], s[2:4], s[4:6])
	if err != nil {
		return err
	}
	*t = nt
	return nil
}

// ParseISOExt parses an extended ISO 8601 time of day such as
// "12:30:33".
func (t *TimeOfDay) ParseISOExt(val string) error {
	s := strings.TrimSpace(val)
	if len(s) != 8 || s[2] != ':' || s[5] != ':' {
		return fmt.Errorf("invalid time %q, expected 'HH:MM:SS': %w", val, ErrMalformed)
	}
	nt, err := timeFromFields(val, s[0:2], s[3:5], s[6:8])
	if err != nil {
		return err
	}
	*t = nt
	return nil
}

// ParseSimple parses a time of day in the simple form, which is the same
// as the extended ISO form.
func (t *TimeOfDay) ParseSimple(val string) error {
	return t.ParseISOExt(val)
}

func (dt *DateTime) parse(val string, sep byte, dateParse func(*Date, string) error, timeParse func(*TimeOfDay, string) error) error {
	s := strings.TrimSpace(val)
	i := strings.IndexByte(s, sep)
	if i < 0 {
		return fmt.Errorf("invalid date-time %q, missing %q separator: %w", val, string(sep), ErrMalformed)
	}
	var d Date
	if err := dateParse(&d, s[:i]); err != nil {
		return err
	}
	var t TimeOfDay
	if err := timeParse(&t, s[i+1:]); err != nil {
		return err
	}
	*dt = DateTime{date: d, time: t}
	return nil
}

// ParseISO parses a compact ISO 8601 date and time such as
// "20100704T123033".
func (dt *DateTime) ParseISO(val string) error {
	return dt.parse(val, 'T', (*Date).ParseISO, (*TimeOfDay).ParseISO)
}

// ParseISOExt parses an extended ISO 8601 date and time such as
// "2010-07-04T12:30:33".
func (dt *DateTime) ParseISOExt(val string) error {
	return dt.parse(val, 'T', (*Date).ParseISOExt, (*TimeOfDay).ParseISOExt)
}

// ParseSimple parses a date and time in the simple form such as
// "2010-Jul-04 12:30:33".
func (dt *DateTime) ParseSimple(val string) error {
	return dt.parse(val, ' ', (*Date).ParseSimple, (*TimeOfDay).ParseISOExt)
}

// parseFracSuffix consumes a leading ".digits" fraction of up to seven
// digits, returning the tick count and the remaining input. An absent
// fraction is zero ticks.
func parseFracSuffix(val, s string) (Duration, string, error) {
	if len(s) == 0 || s[0] != '.' {
		return 0, s, nil
	}
	s = s[1:]
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 || n > 7 {
		return 0, "", fmt.Errorf("invalid fractional seconds in %q: %w", val, ErrMalformed)
	}
	frac := 0
	for i := 0; i < 7; i++ {
		frac *= 10
		if i < n {
			frac += int(s[i] - '0')
		}
	}
	return Duration(frac), s[n:], nil
}

// parseZoneSuffix maps a zone suffix to an adapter: "" is the local
// zone, "Z" is UTC and ±HH, ±HHMM or ±HH:MM is a fixed offset zone.
func parseZoneSuffix(val, s string) (Zone, error) {
	if s == "" {
		return Local, nil
	}
	if s == "Z" {
		return UTC, nil
	}
	if s[0] != '+' && s[0] != '-' {
		return nil, fmt.Errorf("invalid zone suffix in %q: %w", val, ErrMalformed)
	}
	var hourField, minField string
	switch len(s) {
	case 3:
		hourField, minField = s[1:3], "00"
	case 5:
		hourField, minField = s[1:3], s[3:5]
	case 6:
		if s[3] != ':' {
			return nil, fmt.Errorf("invalid zone suffix in %q: %w", val, ErrMalformed)
		}
		hourField, minField = s[1:3], s[4:6]
	default:
		return nil, fmt.Errorf("invalid zone suffix in %q: %w", val, ErrMalformed)
	}
	hours, ok1 := parse2(hourField)
	mins, ok2 := parse2(minField)
	if !ok1 || !ok2 || hours > 23 || mins > 59 {
		return nil, fmt.Errorf("invalid zone offset in %q: %w", val, ErrMalformed)
	}
	offset := Duration(hours)*Hour + Duration(mins)*Minute
	if s[0] == '-' {
		offset = -offset
	}
	return FixedZone("", offset), nil
}

func (t *Timestamp) parse(val string, sep byte, dateParse func(*Date, string) error, timeWidth int, timeParse func(*TimeOfDay, string) error) error {
	s := strings.TrimSpace(val)
	i := strings.IndexByte(s, sep)
	if i < 0 {
		return fmt.Errorf("invalid timestamp %q, missing %q separator: %w", val, string(sep), ErrMalformed)
	}
	var d Date
	if err := dateParse(&d, s[:i]); err != nil {
		return err
	}
	rest := s[i+1:]
	if len(rest) < timeWidth {
		return fmt.Errorf("invalid timestamp %q, truncated time: %w", val, ErrMalformed)
	}
	var tod TimeOfDay
	if err := timeParse(&tod, rest[:timeWidth]); err != nil {
		return err
	}
	frac, rest, err := parseFracSuffix(val, rest[timeWidth:])
	if err != nil {
		return err
	}
	zone, err := parseZoneSuffix(val, rest)
	if err != nil {
		return err
	}
	ts, err := TimestampFromCivil(NewDateTimeOf(d, tod), frac, zone)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", val, ErrMalformed)
	}
	*t = ts
	return nil
}

// ParseISO parses a compact ISO 8601 timestamp such as
// "20100704T123033.1234567Z". An empty zone suffix yields the Local
// zone, "Z" yields UTC and an offset yields a fixed offset zone.
func (t *Timestamp) ParseISO(val string) error {
	return t.parse(val, 'T', (*Date).ParseISO, 6, (*TimeOfDay).ParseISO)
}

// ParseISOExt parses an extended ISO 8601 timestamp such as
// "2010-07-04T12:30:33.1234567+08:00".
func (t *Timestamp) ParseISOExt(val string) error {
	return t.parse(val, 'T', (*Date).ParseISOExt, 8, (*TimeOfDay).ParseISOExt)
}

// ParseSimple parses a timestamp in the simple form such as
// "2010-Jul-04 12:30:33.1234567Z".
func (t *Timestamp) ParseSimple(val string) error {
	return t.parse(val, ' ', (*Date).ParseSimple, 8, (*TimeOfDay).ParseISOExt)
}
