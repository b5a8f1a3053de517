// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import (
	"fmt"
	"time"
)

// Zone converts between zone local and UTC tick counts and answers
// offset and daylight saving queries for a specific time zone. The tick
// counts are those used by Timestamp: 100ns units since midnight
// 0001-01-01. Implementations must be pure and total for valid inputs
// and safe for concurrent use; this package does not evaluate time zone
// rules itself beyond the built in UTC, Local and FixedZone adapters.
type Zone interface {
	// CivilToUTC converts a zone local tick count to UTC.
	CivilToUTC(ticks int64) int64
	// UTCToCivil converts a UTC tick count to zone local time.
	UTCToCivil(ticks int64) int64
	// UTCOffsetAt returns the offset from UTC in effect at the given
	// UTC instant; positive east of Greenwich.
	UTCOffsetAt(utcTicks int64) Duration
	// IsDST reports whether daylight saving time is in effect at the
	// given UTC instant.
	IsDST(utcTicks int64) bool
	// DisplayName returns the zone's name, in its daylight saving form
	// when dst is true.
	DisplayName(utcTicks int64, dst bool) string
}

// UTC is the identity zone adapter: zero offset, no daylight saving.
var UTC Zone = utcZone{}

// Local is the zone adapter for the host's time zone, delegating offset
// lookup to the time package.
var Local Zone = localZone{}

type utcZone struct{}

func (utcZone) CivilToUTC(ticks int64) int64 {
	return ticks
}

func (utcZone) UTCToCivil(ticks int64) int64 {
	return ticks
}

func (utcZone) UTCOffsetAt(int64) Duration {
	return 0
}

func (utcZone) IsDST(int64) bool {
	return false
}

func (utcZone) DisplayName(int64, bool) string {
	return "UTC"
}

// FixedZone returns a zone adapter with a constant offset from UTC and
// no daylight saving. If name is empty the offset itself, formatted as
// ±HH:MM, is used as the display name.
func FixedZone(name string, offset Duration) Zone {
	return &fixedZone{name: name, offset: offset}
}

type fixedZone struct {
	name   string
	offset Duration
}

func (z *fixedZone) CivilToUTC(ticks int64) int64 {
	return satAdd(ticks, -int64(z.offset))
}

func (z *fixedZone) UTCToCivil(ticks int64) int64 {
	return satAdd(ticks, int64(z.offset))
}

func (z *fixedZone) UTCOffsetAt(int64) Duration {
	return z.offset
}

func (z *fixedZone) IsDST(int64) bool {
	return false
}

func (z *fixedZone) DisplayName(int64, bool) string {
	if z.name != "" {
		return z.name
	}
	off := int64(z.offset)
	sign := "+"
	if off < 0 {
		sign = "-"
		off = -off
	}
	mins := off / int64(Minute)
	return fmt.Sprintf("%s%02d:%02d", sign, mins/60, mins%60)
}

type localZone struct{}

// offsetAt returns the host zone's offset at a UTC instant. Instants
// outside the range the host's rules cover use the closest rule, which
// is what the time package does.
func (localZone) offsetAt(utcTicks int64) Duration {
	sec := floorDiv(utcTicks-unixEpochTicks, ticksPerSecond)
	_, off := time.Unix(sec, 0).In(time.Local).Zone()
	return Duration(off) * Second
}

func (z localZone) UTCToCivil(ticks int64) int64 {
	return satAdd(ticks, int64(z.offsetAt(ticks)))
}

// CivilToUTC probes the offset twice: civil fields near a DST transition
// may describe an instant whose offset differs from the offset at the
// same tick count read as UTC. Ambiguous or skipped local times resolve
// to the offset in effect after the transition.
func (z localZone) CivilToUTC(ticks int64) int64 {
	off := z.offsetAt(ticks)
	utc := satAdd(ticks, -int64(off))
	if again := z.offsetAt(utc); again != off {
		utc = satAdd(ticks, -int64(again))
	}
	return utc
}

func (z localZone) UTCOffsetAt(utcTicks int64) Duration {
	return z.offsetAt(utcTicks)
}

func (localZone) IsDST(utcTicks int64) bool {
	sec := floorDiv(utcTicks-unixEpochTicks, ticksPerSecond)
	return time.Unix(sec, 0).In(time.Local).IsDST()
}

func (localZone) DisplayName(utcTicks int64, _ bool) string {
	sec := floorDiv(utcTicks-unixEpochTicks, ticksPerSecond)
	name, _ := time.Unix(sec, 0).In(time.Local).Zone()
	return name
}
