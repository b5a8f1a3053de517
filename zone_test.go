// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime_test

import (
	"testing"

	"cloudeng.io/civiltime"
)

func TestUTCZone(t *testing.T) {
	z := civiltime.UTC
	for _, ticks := range []int64{0, 1, -1, 621355968000000000} {
		if got, want := z.CivilToUTC(ticks), ticks; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := z.UTCToCivil(ticks), ticks; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if got, want := z.UTCOffsetAt(0), civiltime.Duration(0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if z.IsDST(0) {
		t.Errorf("UTC never observes daylight saving")
	}
	if got, want := z.DisplayName(0, false), "UTC"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFixedZone(t *testing.T) {
	z := civiltime.FixedZone("AWST", 8*civiltime.Hour)
	const ticks = int64(1_000_000_000_000)
	if got, want := z.UTCToCivil(ticks), ticks+8*civiltime.Hour.Ticks(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := z.CivilToUTC(z.UTCToCivil(ticks)), ticks; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := z.UTCOffsetAt(ticks), 8*civiltime.Hour; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if z.IsDST(ticks) {
		t.Errorf("fixed offset zones never observe daylight saving")
	}
	if got, want := z.DisplayName(ticks, false), "AWST"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	anon := civiltime.FixedZone("", -(9*civiltime.Hour + 30*civiltime.Minute))
	if got, want := anon.DisplayName(ticks, false), "-09:30"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLocalZoneRoundTrip(t *testing.T) {
	// The local offset depends on the host's zone database, so only the
	// properties that hold for any zone are checked here.
	z := civiltime.Local
	const ticks = int64(630822816000000000) // 2000-01-01 00:00:00 UTC
	civil := z.UTCToCivil(ticks)
	if got, want := civiltime.Duration(civil-ticks), z.UTCOffsetAt(ticks); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := z.CivilToUTC(civil), ticks; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
