// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import (
	"fmt"
	"iter"
)

// DateRange represents a range of dates, inclusive of the start and end
// dates. The zero value is the empty range.
type DateRange struct {
	from, to Date
}

// NewDateRange returns a DateRange for the from/to dates. If the from
// date is later than the to date then they are swapped.
func NewDateRange(from, to Date) DateRange {
	if from.Compare(to) > 0 {
		from, to = to, from
	}
	return DateRange{from: from, to: to}
}

// From returns the start date of the range.
func (dr DateRange) From() Date {
	return dr.from
}

// To returns the end date of the range.
func (dr DateRange) To() Date {
	return dr.to
}

// IsEmpty returns true for the zero value.
func (dr DateRange) IsEmpty() bool {
	return dr == DateRange{}
}

// Include returns true if the specified date is within the range.
func (dr DateRange) Include(d Date) bool {
	return dr.from.Compare(d) <= 0 && dr.to.Compare(d) >= 0
}

// Bound returns a new DateRange that is bounded by the specified
// DateRange, namely the from date is the later of the two from dates and
// the to date is the earlier of the two to dates. If the resulting range
// is empty then the zero value is returned.
func (dr DateRange) Bound(bound DateRange) DateRange {
	from := dr.from
	if bound.from.Compare(from) > 0 {
		from = bound.from
	}
	to := dr.to
	if bound.to.Compare(to) < 0 {
		to = bound.to
	}
	if from.Compare(to) > 0 {
		return DateRange{}
	}
	return DateRange{from: from, to: to}
}

// Days returns the number of days in the range, inclusive of both ends.
func (dr DateRange) Days() int64 {
	if dr.IsEmpty() {
		return 0
	}
	return dr.to.DayNumber() - dr.from.DayNumber() + 1
}

// Dates returns an iterator that yields each Date in the range.
func (dr DateRange) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if dr.IsEmpty() {
			return
		}
		last := dr.to.DayNumber()
		for n := dr.from.DayNumber(); n <= last; n++ {
			if !yield(DateFromDayNumber(n)) {
				return
			}
		}
	}
}

func (dr DateRange) String() string {
	return fmt.Sprintf("%s - %s", dr.from, dr.to)
}
