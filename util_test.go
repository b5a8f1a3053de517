// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime_test

import (
	"testing"

	"cloudeng.io/civiltime"
)

func newDate(t *testing.T, y, m, d int) civiltime.Date {
	t.Helper()
	date, err := civiltime.NewDate(y, civiltime.Month(m), d)
	if err != nil {
		t.Fatalf("NewDate(%v, %v, %v): %v", y, m, d, err)
	}
	return date
}

func newTime(t *testing.T, h, m, s int) civiltime.TimeOfDay {
	t.Helper()
	tod, err := civiltime.NewTimeOfDay(h, m, s)
	if err != nil {
		t.Fatalf("NewTimeOfDay(%v, %v, %v): %v", h, m, s, err)
	}
	return tod
}

func newDateTime(t *testing.T, y, m, d, hh, mm, ss int) civiltime.DateTime {
	t.Helper()
	dt, err := civiltime.NewDateTime(y, civiltime.Month(m), d, hh, mm, ss)
	if err != nil {
		t.Fatalf("NewDateTime(%v, %v, %v, %v, %v, %v): %v", y, m, d, hh, mm, ss, err)
	}
	return dt
}

func newUTCTimestamp(t *testing.T, y, m, d, hh, mm, ss int, frac civiltime.Duration) civiltime.Timestamp {
	t.Helper()
	ts, err := civiltime.TimestampFromCivil(newDateTime(t, y, m, d, hh, mm, ss), frac, civiltime.UTC)
	if err != nil {
		t.Fatalf("TimestampFromCivil: %v", err)
	}
	return ts
}

func ymd(d civiltime.Date) [3]int {
	return [3]int{d.Year(), int(d.Month()), d.Day()}
}
