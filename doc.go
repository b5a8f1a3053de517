// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package civiltime provides value types for working with the proleptic
// Gregorian calendar: calendar dates, times of day, their composition and
// an absolute UTC timestamp with a pluggable time zone adapter. Years are
// signed, with year 0 corresponding to 1 B.C., and all absolute time is
// measured in 100 nanosecond ticks since midnight on January 1st of year 1.
//
// The calendar conversion between (year, month, day) and a single signed
// Gregorian day number is exactly invertible over the full representable
// range, and all arithmetic (add and roll, with allow or clamp day
// overflow policies) preserves validity: an operation on a valid value
// always produces a valid value. Only construction, field assignment and
// text parsing can fail.
//
// Time zone rules are not evaluated by this package. The Zone interface
// is the boundary: implementations supply the civil to UTC tick
// transforms for a zone, and the built in UTC, Local and FixedZone
// adapters cover the common cases.
package civiltime
