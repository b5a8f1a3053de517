// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import "cloudeng.io/errors"

var (
	// ErrInvalidField is returned when a year, month, day, hour, minute,
	// second or fractional second value is outside its legal range, or
	// when a day is invalid for its month and year combination. It is
	// returned by constructors and field setters only; read accessors and
	// the add/roll arithmetic never fail.
	ErrInvalidField = errors.New("invalid field")

	// ErrMalformed is returned when text being parsed has the wrong
	// field width, a wrong separator, an out of range numeric field or
	// trailing content beyond surrounding whitespace.
	ErrMalformed = errors.New("malformed input")
)
