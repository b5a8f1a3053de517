// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime_test

import (
	"errors"
	"testing"

	"cloudeng.io/civiltime"
)

func TestNewDateTimeValidation(t *testing.T) {
	if _, err := civiltime.NewDateTime(1999, 2, 29, 12, 0, 0); !errors.Is(err, civiltime.ErrInvalidField) {
		t.Errorf("got %v, want ErrInvalidField", err)
	}
	if _, err := civiltime.NewDateTime(1999, 2, 28, 24, 0, 0); !errors.Is(err, civiltime.ErrInvalidField) {
		t.Errorf("got %v, want ErrInvalidField", err)
	}
	// Both halves invalid: still a single ErrInvalidField classified error.
	if _, err := civiltime.NewDateTime(1999, 13, 1, 0, 0, 61); !errors.Is(err, civiltime.ErrInvalidField) {
		t.Errorf("got %v, want ErrInvalidField", err)
	}
}

func TestDateTimeMidnightCarry(t *testing.T) {
	for _, tc := range []struct {
		name  string
		start [6]int
		op    func(civiltime.DateTime) civiltime.DateTime
		want  [6]int
	}{
		{"add-second-across-midnight", [6]int{1999, 12, 31, 23, 59, 59},
			func(dt civiltime.DateTime) civiltime.DateTime { return dt.AddSeconds(1) },
			[6]int{2000, 1, 1, 0, 0, 0}},
		{"sub-second-across-midnight", [6]int{2000, 1, 1, 0, 0, 0},
			func(dt civiltime.DateTime) civiltime.DateTime { return dt.AddSeconds(-1) },
			[6]int{1999, 12, 31, 23, 59, 59}},
		{"add-two-days-of-seconds", [6]int{2000, 2, 28, 12, 0, 0},
			func(dt civiltime.DateTime) civiltime.DateTime { return dt.AddSeconds(2 * 86400) },
			[6]int{2000, 3, 1, 12, 0, 0}},
		{"add-hours-across-midnight", [6]int{1999, 2, 28, 23, 0, 0},
			func(dt civiltime.DateTime) civiltime.DateTime { return dt.AddHours(2) },
			[6]int{1999, 3, 1, 1, 0, 0}},
		{"sub-minutes-across-bc-boundary", [6]int{1, 1, 1, 0, 10, 0},
			func(dt civiltime.DateTime) civiltime.DateTime { return dt.AddMinutes(-20) },
			[6]int{0, 12, 31, 23, 50, 0}},
		{"roll-hours-stays-on-date", [6]int{1999, 12, 31, 23, 0, 0},
			func(dt civiltime.DateTime) civiltime.DateTime { return dt.RollHours(2) },
			[6]int{1999, 12, 31, 1, 0, 0}},
	} {
		s := tc.start
		start := newDateTime(t, s[0], s[1], s[2], s[3], s[4], s[5])
		w := tc.want
		if got, want := tc.op(start), newDateTime(t, w[0], w[1], w[2], w[3], w[4], w[5]); got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
	}
}

func TestDateTimeRollMonths(t *testing.T) {
	start := newDateTime(t, 1999, 1, 29, 12, 30, 33)
	if got, want := start.RollMonths(1, civiltime.AllowOverflow), newDateTime(t, 1999, 3, 1, 12, 30, 33); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := start.RollMonths(1, civiltime.ClampOverflow), newDateTime(t, 1999, 2, 28, 12, 30, 33); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDateTimeSub(t *testing.T) {
	for _, tc := range []struct {
		a, b [6]int
		want civiltime.Duration
	}{
		{[6]int{2000, 1, 1, 0, 0, 0}, [6]int{1999, 12, 31, 23, 59, 59}, civiltime.Second},
		{[6]int{1999, 12, 31, 23, 59, 59}, [6]int{2000, 1, 1, 0, 0, 0}, -civiltime.Second},
		{[6]int{2000, 1, 2, 0, 0, 0}, [6]int{2000, 1, 1, 0, 0, 0}, civiltime.Day},
		{[6]int{2000, 1, 1, 6, 0, 0}, [6]int{2000, 1, 1, 5, 0, 0}, civiltime.Hour},
		{[6]int{1, 1, 1, 0, 0, 0}, [6]int{0, 12, 31, 0, 0, 0}, civiltime.Day},
	} {
		a := newDateTime(t, tc.a[0], tc.a[1], tc.a[2], tc.a[3], tc.a[4], tc.a[5])
		b := newDateTime(t, tc.b[0], tc.b[1], tc.b[2], tc.b[3], tc.b[4], tc.b[5])
		if got, want := a.Sub(b), tc.want; got != want {
			t.Errorf("%v.Sub(%v): got %v, want %v", a, b, got, want)
		}
	}
}

func TestDateTimeTicksRoundTrip(t *testing.T) {
	for _, tc := range [][6]int{
		{1, 1, 1, 0, 0, 0},
		{0, 12, 31, 23, 59, 59},
		{1970, 1, 1, 0, 0, 0},
		{2024, 2, 29, 12, 30, 33},
		{-4, 1, 5, 7, 6, 12},
	} {
		dt := newDateTime(t, tc[0], tc[1], tc[2], tc[3], tc[4], tc[5])
		back, frac := civiltime.DateTimeFromTicks(dt.Ticks())
		if got, want := back, dt; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if frac != 0 {
			t.Errorf("unexpected fraction %v", frac)
		}
	}
	if got, _ := civiltime.DateTimeFromTicks(0); got != newDateTime(t, 1, 1, 1, 0, 0, 0) {
		t.Errorf("tick zero: got %v", got)
	}
	dt, frac := civiltime.DateTimeFromTicks(-1)
	if got, want := dt, newDateTime(t, 0, 12, 31, 23, 59, 59); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := frac, civiltime.Second-1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDateTimeSettersAndCompare(t *testing.T) {
	dt := newDateTime(t, 2024, 2, 29, 12, 30, 33)
	if err := dt.SetYear(2023); !errors.Is(err, civiltime.ErrInvalidField) {
		t.Errorf("got %v, want ErrInvalidField", err)
	}
	if err := dt.SetHour(7); err != nil {
		t.Fatal(err)
	}
	if got, want := dt, newDateTime(t, 2024, 2, 29, 7, 30, 33); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	a := newDateTime(t, 2024, 2, 29, 7, 30, 33)
	b := newDateTime(t, 2024, 3, 1, 0, 0, 0)
	if got, want := a.Compare(b), -1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := b.Compare(a), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
