// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import (
	"fmt"
	"math"
	"time"
)

// Duration is a signed count of 100 nanosecond ticks. All absolute and
// sub-second arithmetic in this package is expressed in whole ticks.
type Duration int64

const (
	Tick        Duration = 1
	Microsecond          = 10 * Tick
	Millisecond          = 1000 * Microsecond
	Second               = 1000 * Millisecond
	Minute               = 60 * Second
	Hour                 = 60 * Minute
	Day                  = 24 * Hour
)

const (
	ticksPerSecond = int64(Second)
	ticksPerDay    = int64(Day)

	// Ticks from midnight 0001-01-01 to midnight 1970-01-01, both UTC.
	unixEpochTicks = 621355968000000000
)

// DurationFromStd converts a time.Duration to ticks, truncating the
// sub-tick remainder towards zero.
func DurationFromStd(d time.Duration) Duration {
	return Duration(d / 100)
}

// Std returns the duration as a time.Duration, saturating at the
// time.Duration range.
func (d Duration) Std() time.Duration {
	if d > math.MaxInt64/100 {
		return time.Duration(math.MaxInt64)
	}
	if d < math.MinInt64/100 {
		return time.Duration(math.MinInt64)
	}
	return time.Duration(d * 100)
}

// Ticks returns the duration as a tick count.
func (d Duration) Ticks() int64 {
	return int64(d)
}

// Seconds returns the number of whole seconds in the duration,
// truncated towards zero.
func (d Duration) Seconds() int64 {
	return int64(d) / ticksPerSecond
}

func (d Duration) String() string {
	t := int64(d)
	sign := ""
	if t < 0 {
		sign = "-"
		if t == math.MinInt64 { // cannot be negated
			t++
		}
		t = -t
	}
	sec := t / ticksPerSecond
	frac := Duration(t % ticksPerSecond)
	if frac == 0 {
		return fmt.Sprintf("%s%ds", sign, sec)
	}
	return fmt.Sprintf("%s%ds%s", sign, sec, fracSuffix(frac))
}

// satAdd adds two tick counts, saturating at the int64 range.
func satAdd(a, b int64) int64 {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		if a > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return s
}

// satMul multiplies two tick counts, saturating at the int64 range.
func satMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/b != a {
		if (a > 0) == (b > 0) {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return p
}
