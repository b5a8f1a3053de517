// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

// Timeval is the POSIX timeval equivalent: whole seconds since the Unix
// epoch plus non-negative microseconds. Negative sub-second remainders
// truncate towards negative infinity, so the instant one tick before the
// epoch is {Sec: -1, Usec: 999999}.
type Timeval struct {
	Sec  int64
	Usec int64
}

// Tm is the POSIX broken down time equivalent, with the conventional
// field biases: Year is offset from 1900, Mon is 0 based, Yday is 0
// based. Wday follows the POSIX convention of 0 for Sunday.
type Tm struct {
	Sec   int
	Min   int
	Hour  int
	Mday  int
	Mon   int
	Year  int
	Wday  int
	Yday  int
	IsDST bool
}

// unixDelta returns the tick count relative to the Unix epoch,
// saturating for instants near the tick range limits.
func (t Timestamp) unixDelta() int64 {
	return satAdd(t.ticks, -unixEpochTicks)
}

// UnixSeconds returns the number of whole seconds since
// 1970-01-01T00:00:00Z, rounded towards negative infinity so that the
// instant one tick before the epoch reports -1.
func (t Timestamp) UnixSeconds() int64 {
	return floorDiv(t.unixDelta(), ticksPerSecond)
}

// Timeval returns the instant as a POSIX timeval.
func (t Timestamp) Timeval() Timeval {
	delta := t.unixDelta()
	return Timeval{
		Sec:  floorDiv(delta, ticksPerSecond),
		Usec: floorMod(delta, ticksPerSecond) / int64(Microsecond),
	}
}

// BrokenDown returns the instant as a POSIX broken down time in the
// timestamp's zone.
func (t Timestamp) BrokenDown() Tm {
	dt, _ := t.Civil()
	return Tm{
		Sec:   dt.Second(),
		Min:   dt.Minute(),
		Hour:  dt.Hour(),
		Mday:  dt.Day(),
		Mon:   int(dt.Month()) - 1,
		Year:  dt.Year() - 1900,
		Wday:  int(dt.Date().Weekday()),
		Yday:  dt.Date().DayOfYear() - 1,
		IsDST: t.IsDST(),
	}
}

// TimestampFromUnix returns the Timestamp for a count of seconds since
// the Unix epoch, saturating at the representable tick range. A nil zone
// is replaced by Local.
func TimestampFromUnix(sec int64, zone Zone) Timestamp {
	return NewTimestamp(satAdd(satMul(sec, ticksPerSecond), unixEpochTicks), zone)
}
