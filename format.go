// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import (
	"fmt"
	"strings"
)

// The three wire forms shared by all value types: compact ISO 8601
// (YYYYMMDDTHHMMSS), extended ISO 8601 (YYYY-MM-DDTHH:MM:SS) and a
// human readable simple form (YYYY-Mon-DD HH:MM:SS). Years below zero
// are prefixed with '-' using the year 0 == 1 B.C. convention and years
// of five or more digits with '+'; the fractional second prints the
// minimum number of digits that round trips exactly.

// yearString formats a year with at least four digits, a '-' prefix for
// B.C. years and a '+' prefix for years of five or more digits.
func yearString(year int) string {
	switch {
	case year < 0:
		return fmt.Sprintf("-%04d", -year)
	case year > 9999:
		return fmt.Sprintf("+%d", year)
	}
	return fmt.Sprintf("%04d", year)
}

// fracSuffix formats a sub-second tick count as a decimal suffix with
// trailing zero digits removed, or "" for a zero fraction.
func fracSuffix(frac Duration) string {
	if frac == 0 {
		return ""
	}
	return "." + strings.TrimRight(fmt.Sprintf("%07d", int64(frac)), "0")
}

// zoneSuffix returns the wire form of the zone: "Z" for UTC, the offset
// for a fixed offset zone, and "" for the local or any other adapter.
func zoneSuffix(z Zone, extended bool) string {
	switch fz := z.(type) {
	case utcZone:
		return "Z"
	case *fixedZone:
		return offsetString(fz.offset, extended)
	}
	return ""
}

func offsetString(offset Duration, extended bool) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	mins := int64(offset) / int64(Minute)
	if extended {
		return fmt.Sprintf("%s%02d:%02d", sign, mins/60, mins%60)
	}
	return fmt.Sprintf("%s%02d%02d", sign, mins/60, mins%60)
}

// ISOString returns the date in compact ISO 8601 form, eg. "20100704"
// or "-00040105".
func (d Date) ISOString() string {
	return fmt.Sprintf("%s%02d%02d", yearString(d.Year()), int(d.Month()), d.Day())
}

// ISOExtString returns the date in extended ISO 8601 form, eg.
// "2010-07-04".
func (d Date) ISOExtString() string {
	return fmt.Sprintf("%s-%02d-%02d", yearString(d.Year()), int(d.Month()), d.Day())
}

// String returns the date in the simple form, eg. "2010-Jul-04".
func (d Date) String() string {
	return fmt.Sprintf("%s-%s-%02d", yearString(d.Year()), d.Month().Abbrev(), d.Day())
}

// ISOString returns the time in compact ISO 8601 form, eg. "123033".
func (t TimeOfDay) ISOString() string {
	return fmt.Sprintf("%02d%02d%02d", t.Hour(), t.Minute(), t.Second())
}

// ISOExtString returns the time in extended ISO 8601 form, eg.
// "12:30:33".
func (t TimeOfDay) ISOExtString() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// String returns the time in the simple form, which is the same as the
// extended ISO form.
func (t TimeOfDay) String() string {
	return t.ISOExtString()
}

// ISOString returns the date and time in compact ISO 8601 form, eg.
// "20100704T123033".
func (dt DateTime) ISOString() string {
	return dt.date.ISOString() + "T" + dt.time.ISOString()
}

// ISOExtString returns the date and time in extended ISO 8601 form, eg.
// "2010-07-04T12:30:33".
func (dt DateTime) ISOExtString() string {
	return dt.date.ISOExtString() + "T" + dt.time.ISOExtString()
}

// String returns the date and time in the simple form, eg.
// "2010-Jul-04 12:30:33".
func (dt DateTime) String() string {
	return dt.date.String() + " " + dt.time.ISOExtString()
}

// ISOString returns the instant in compact ISO 8601 form in the
// timestamp's zone, eg. "20100704T123033.1234567Z".
func (t Timestamp) ISOString() string {
	dt, frac := t.Civil()
	return dt.ISOString() + fracSuffix(frac) + zoneSuffix(t.Zone(), false)
}

// ISOExtString returns the instant in extended ISO 8601 form in the
// timestamp's zone, eg. "2010-07-04T12:30:33.1234567+08:00".
func (t Timestamp) ISOExtString() string {
	dt, frac := t.Civil()
	return dt.ISOExtString() + fracSuffix(frac) + zoneSuffix(t.Zone(), true)
}

// String returns the instant in the simple form in the timestamp's zone,
// eg. "2010-Jul-04 12:30:33.1234567Z".
func (t Timestamp) String() string {
	dt, frac := t.Civil()
	return dt.String() + fracSuffix(frac) + zoneSuffix(t.Zone(), true)
}
