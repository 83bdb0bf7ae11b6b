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

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when a station set or directory contains
// no stations.
var ErrEmptyInput = errors.New("mtpy: no stations given")

// IndexError is returned when a requested frequency index exceeds the
// number of frequencies measured at a station.
type IndexError struct {
	Station string
	Index   int
	NFreq   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("mtpy: period index %d out of range for station %s with %d frequencies",
		e.Index, e.Station, e.NFreq)
}

// UnsupportedComponentError is returned when an impedance component
// selector is not one of det, zxy or zyx.
type UnsupportedComponentError struct {
	Component string
}

func (e *UnsupportedComponentError) Error() string {
	return fmt.Sprintf("mtpy: unsupported impedance component %q (want det, zxy or zyx)",
		e.Component)
}

// PeriodMismatchError is returned when the stations in a batch do not
// share the same sampling period at the requested index.
type PeriodMismatchError struct {
	Station string  // station holding the offending value, if known
	Index   int     // position of the offending value in the batch
	Ref     float64 // period of the first station in the batch [s]
	Value   float64 // the offending period [s]
}

func (e *PeriodMismatchError) Error() string {
	if e.Station != "" {
		return fmt.Sprintf("mtpy: period %g s at station %s does not equal reference period %g s",
			e.Value, e.Station, e.Ref)
	}
	return fmt.Sprintf("mtpy: period %g s at batch position %d does not equal reference period %g s",
		e.Value, e.Index, e.Ref)
}
