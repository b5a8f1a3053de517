// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import (
	"fmt"
	"math"
	"time"
)

// Timestamp is an absolute point in time: a signed count of 100ns ticks
// since midnight 0001-01-01 UTC, plus a zone adapter used only to present
// the instant as civil fields. The tick count is always the authoritative
// UTC value; two timestamps compare equal iff their ticks are equal, the
// zone is excluded from equality and ordering.
//
// Every civil field accessor follows the same protocol: decode the ticks
// to zone local time via the adapter, apply the calendar or clock logic
// to the local value and, for writes, re-encode the result through the
// adapter. Ticks are never mutated directly from a civil field edit.
type Timestamp struct {
	ticks int64
	zone  Zone
}

// NewTimestamp returns the Timestamp for a raw UTC tick count. It is
// total: any int64 is a valid tick count. A nil zone is replaced by
// Local.
func NewTimestamp(ticks int64, zone Zone) Timestamp {
	if zone == nil {
		zone = Local
	}
	return Timestamp{ticks: ticks, zone: zone}
}

// TimestampFromCivil returns the Timestamp whose civil fields in the
// given zone are dt plus the sub-second fraction. The fraction must
// satisfy 0 <= frac < Second. The zone is assumed to describe the given
// civil fields; a nil zone is replaced by Local.
func TimestampFromCivil(dt DateTime, frac Duration, zone Zone) (Timestamp, error) {
	if frac < 0 || frac >= Second {
		return Timestamp{}, fmt.Errorf("fractional second %d out of range: %w", int64(frac), ErrInvalidField)
	}
	if zone == nil {
		zone = Local
	}
	local := satAdd(dt.Ticks(), int64(frac))
	return Timestamp{ticks: zone.CivilToUTC(local), zone: zone}, nil
}

// MinTimestamp returns the most negative representable instant, in UTC.
func MinTimestamp() Timestamp {
	return Timestamp{ticks: math.MinInt64, zone: UTC}
}

// MaxTimestamp returns the most positive representable instant, in UTC.
func MaxTimestamp() Timestamp {
	return Timestamp{ticks: math.MaxInt64, zone: UTC}
}

// Ticks returns the UTC tick count.
func (t Timestamp) Ticks() int64 {
	return t.ticks
}

// Zone returns the timestamp's zone adapter, never nil.
func (t Timestamp) Zone() Zone {
	if t.zone == nil {
		return Local
	}
	return t.zone
}

// WithZone re-tags the timestamp with another zone adapter. The instant,
// and hence the tick count, is unchanged; only the civil presentation
// moves. A nil zone is replaced by Local.
func (t Timestamp) WithZone(zone Zone) Timestamp {
	if zone == nil {
		zone = Local
	}
	return Timestamp{ticks: t.ticks, zone: zone}
}

// AsUTC re-tags the timestamp with the UTC adapter.
func (t Timestamp) AsUTC() Timestamp {
	return t.WithZone(UTC)
}

// AsLocal re-tags the timestamp with the Local adapter.
func (t Timestamp) AsLocal() Timestamp {
	return t.WithZone(Local)
}

// Civil returns the instant decomposed into civil fields in the
// timestamp's zone, plus the sub-second fraction, 0 <= frac < Second.
func (t Timestamp) Civil() (DateTime, Duration) {
	return DateTimeFromTicks(t.Zone().UTCToCivil(t.ticks))
}

func (t Timestamp) Year() int {
	dt, _ := t.Civil()
	return dt.Year()
}

func (t Timestamp) Month() Month {
	dt, _ := t.Civil()
	return dt.Month()
}

func (t Timestamp) Day() int {
	dt, _ := t.Civil()
	return dt.Day()
}

func (t Timestamp) Hour() int {
	dt, _ := t.Civil()
	return dt.Hour()
}

func (t Timestamp) Minute() int {
	dt, _ := t.Civil()
	return dt.Minute()
}

func (t Timestamp) Second() int {
	dt, _ := t.Civil()
	return dt.Second()
}

// FracSecond returns the sub-second part of the instant as ticks,
// 0 <= frac < Second. The fraction is zone independent.
func (t Timestamp) FracSecond() Duration {
	_, frac := t.Civil()
	return frac
}

func (t Timestamp) Weekday() time.Weekday {
	dt, _ := t.Civil()
	return dt.Date().Weekday()
}

func (t Timestamp) DayOfYear() int {
	dt, _ := t.Civil()
	return dt.Date().DayOfYear()
}

func (t Timestamp) ISOWeek() (year, week int) {
	dt, _ := t.Civil()
	return dt.Date().ISOWeek()
}

// setCivil re-encodes edited civil fields through the zone adapter.
func (t *Timestamp) setCivil(dt DateTime, frac Duration) {
	t.ticks = t.Zone().CivilToUTC(satAdd(dt.Ticks(), int64(frac)))
}

// SetYear sets the year of the civil presentation, failing as per
// Date.SetYear, and re-encodes the instant through the zone adapter.
func (t *Timestamp) SetYear(year int) error {
	dt, frac := t.Civil()
	if err := dt.SetYear(year); err != nil {
		return err
	}
	t.setCivil(dt, frac)
	return nil
}

// SetMonth sets the month of the civil presentation.
func (t *Timestamp) SetMonth(month Month) error {
	dt, frac := t.Civil()
	if err := dt.SetMonth(month); err != nil {
		return err
	}
	t.setCivil(dt, frac)
	return nil
}

// SetDay sets the day of the civil presentation.
func (t *Timestamp) SetDay(day int) error {
	dt, frac := t.Civil()
	if err := dt.SetDay(day); err != nil {
		return err
	}
	t.setCivil(dt, frac)
	return nil
}

// SetHour sets the hour of the civil presentation.
func (t *Timestamp) SetHour(hour int) error {
	dt, frac := t.Civil()
	if err := dt.SetHour(hour); err != nil {
		return err
	}
	t.setCivil(dt, frac)
	return nil
}

// SetMinute sets the minute of the civil presentation.
func (t *Timestamp) SetMinute(minute int) error {
	dt, frac := t.Civil()
	if err := dt.SetMinute(minute); err != nil {
		return err
	}
	t.setCivil(dt, frac)
	return nil
}

// SetSecond sets the second of the civil presentation.
func (t *Timestamp) SetSecond(second int) error {
	dt, frac := t.Civil()
	if err := dt.SetSecond(second); err != nil {
		return err
	}
	t.setCivil(dt, frac)
	return nil
}

// SetFracSecond sets the sub-second part; 0 <= frac < Second.
func (t *Timestamp) SetFracSecond(frac Duration) error {
	if frac < 0 || frac >= Second {
		return fmt.Errorf("fractional second %d out of range: %w", int64(frac), ErrInvalidField)
	}
	dt, _ := t.Civil()
	t.setCivil(dt, frac)
	return nil
}

// AddYears adds n years to the civil presentation per Date.AddYears,
// round tripping through the zone adapter.
func (t Timestamp) AddYears(n int, overflow Overflow) Timestamp {
	dt, frac := t.Civil()
	nt := t
	nt.setCivil(dt.AddYears(n, overflow), frac)
	return nt
}

// AddMonths adds n months to the civil presentation per Date.AddMonths.
func (t Timestamp) AddMonths(n int, overflow Overflow) Timestamp {
	dt, frac := t.Civil()
	nt := t
	nt.setCivil(dt.AddMonths(n, overflow), frac)
	return nt
}

// RollYears rolls the year of the civil presentation per Date.RollYears.
func (t Timestamp) RollYears(n int, overflow Overflow) Timestamp {
	dt, frac := t.Civil()
	nt := t
	nt.setCivil(dt.RollYears(n, overflow), frac)
	return nt
}

// RollMonths rolls the month of the civil presentation per
// Date.RollMonths; the civil year never changes.
func (t Timestamp) RollMonths(n int, overflow Overflow) Timestamp {
	dt, frac := t.Civil()
	nt := t
	nt.setCivil(dt.RollMonths(n, overflow), frac)
	return nt
}

// RollDays rolls the civil day within its month per Date.RollDays.
func (t Timestamp) RollDays(n int) Timestamp {
	dt, frac := t.Civil()
	nt := t
	nt.setCivil(dt.RollDays(n), frac)
	return nt
}

// RollHours wraps the civil hour within its day.
func (t Timestamp) RollHours(n int64) Timestamp {
	dt, frac := t.Civil()
	nt := t
	nt.setCivil(dt.RollHours(n), frac)
	return nt
}

// RollMinutes wraps the civil minute within its hour.
func (t Timestamp) RollMinutes(n int64) Timestamp {
	dt, frac := t.Civil()
	nt := t
	nt.setCivil(dt.RollMinutes(n), frac)
	return nt
}

// RollSeconds wraps the civil second within its minute.
func (t Timestamp) RollSeconds(n int64) Timestamp {
	dt, frac := t.Civil()
	nt := t
	nt.setCivil(dt.RollSeconds(n), frac)
	return nt
}

// Add advances the instant by d. UTC is linear, so this operates on the
// tick count directly and never consults the zone. The result saturates
// at the representable tick range.
func (t Timestamp) Add(d Duration) Timestamp {
	return Timestamp{ticks: satAdd(t.ticks, int64(d)), zone: t.zone}
}

// Sub moves the instant back by d, saturating as per Add.
func (t Timestamp) Sub(d Duration) Timestamp {
	if d == Duration(math.MinInt64) {
		return t.Add(Duration(math.MaxInt64)).Add(1)
	}
	return t.Add(-d)
}

// Diff returns the signed duration from other to t, independent of
// either zone, saturating at the Duration range.
func (t Timestamp) Diff(other Timestamp) Duration {
	if other.ticks == math.MinInt64 {
		return Duration(satAdd(satAdd(t.ticks, math.MaxInt64), 1))
	}
	return Duration(satAdd(t.ticks, -other.ticks))
}

// Equal reports whether the two timestamps denote the same instant;
// the zones are ignored.
func (t Timestamp) Equal(other Timestamp) bool {
	return t.ticks == other.ticks
}

// Compare orders timestamps by tick count only, returning -1, 0 or 1.
func (t Timestamp) Compare(other Timestamp) int {
	switch {
	case t.ticks < other.ticks:
		return -1
	case t.ticks > other.ticks:
		return 1
	}
	return 0
}

// Before reports whether t is strictly before other.
func (t Timestamp) Before(other Timestamp) bool {
	return t.ticks < other.ticks
}

// After reports whether t is strictly after other.
func (t Timestamp) After(other Timestamp) bool {
	return t.ticks > other.ticks
}

// UTCOffset returns the zone's offset from UTC at this instant.
func (t Timestamp) UTCOffset() Duration {
	return t.Zone().UTCOffsetAt(t.ticks)
}

// IsDST reports whether daylight saving time is in effect in the
// timestamp's zone at this instant.
func (t Timestamp) IsDST() bool {
	return t.Zone().IsDST(t.ticks)
}
