/*
Copyright © 2018 the MTpy authors.
This file is part of MTpy.

MTpy is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

MTpy is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with MTpy.  If not, see <http://www.gnu.org/licenses/>.
*/

package mtpy

// PeriodCheck reports whether all periods in a batch equal the first
// one. The comparison is exact: batches are expected to come from a
// shared acquisition design with identical nominal frequencies, so a
// tolerance would hide real disagreement.
type PeriodCheck struct {
	Consistent bool
	Ref        float64 // first period in the batch [s]
	Value      float64 // first period that differs from Ref [s]
	Index      int     // batch position of Value
}

// CheckPeriods compares every period in the batch against the first
// one. It carries no failure policy of its own: the plotting path
// treats an inconsistent result as fatal while the CSV export path
// logs and skips, and each call site makes that choice explicitly.
func CheckPeriods(periods []float64) PeriodCheck {
	if len(periods) == 0 {
		return PeriodCheck{Consistent: true}
	}
	ref := periods[0]
	for i, p := range periods {
		if p != ref {
			return PeriodCheck{Ref: ref, Value: p, Index: i}
		}
	}
	return PeriodCheck{Consistent: true, Ref: ref}
}

// equalPeriodLists reports whether two period lists have the same
// length and exactly equal values, the filter used when exporting
// per-station depth profiles.
func equalPeriodLists(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
