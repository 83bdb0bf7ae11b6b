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
	"math"
)

// Component selects which part of the impedance tensor the
// penetration depth is derived from.
type Component string

const (
	// ComponentDet uses the tensor determinant, a rotation-invariant
	// combination of all four components.
	ComponentDet Component = "det"
	// ComponentZxy uses the off-diagonal XY component.
	ComponentZxy Component = "zxy"
	// ComponentZyx uses the off-diagonal YX component.
	ComponentZyx Component = "zyx"
)

// ParseComponent converts a selector string to a Component,
// returning an UnsupportedComponentError for anything other than
// det, zxy or zyx.
func ParseComponent(s string) (Component, error) {
	switch Component(s) {
	case ComponentDet, ComponentZxy, ComponentZyx:
		return Component(s), nil
	}
	return "", &UnsupportedComponentError{Component: s}
}

// scaleParam converts sqrt(ρT) to a depth in meters. It derives from
// the free-space magnetic permeability μ0 = 4π×10⁻⁷.
var scaleParam = math.Sqrt(1 / (2 * math.Pi * 4 * math.Pi * 1e-7))

// PenetrationSample is the penetration depth derived for one station
// at one sampling period. Depth keeps the negative sign convention of
// the raw formula; callers take the magnitude for gridding and
// display.
type PenetrationSample struct {
	Station  string
	Lat, Lon float64
	Period   float64 // [s]
	Depth    float64 // [m], signed
}

// PenetrationDepth computes the penetration depth of station s at
// frequency index i for the given tensor component. It returns an
// IndexError if i is not a valid frequency index.
func PenetrationDepth(s *Station, i int, comp Component) (PenetrationSample, error) {
	if i >= s.Z.NFreq() || i < 0 {
		return PenetrationSample{}, &IndexError{Station: s.ID, Index: i, NFreq: s.Z.NFreq()}
	}
	per := s.Z.Period(i)
	var depth float64
	switch comp {
	case ComponentZxy:
		depth = -scaleParam * math.Sqrt(s.Z.Resistivity(i, 0, 1)*per)
	case ComponentZyx:
		depth = -scaleParam * math.Sqrt(s.Z.Resistivity(i, 1, 0)*per)
	case ComponentDet:
		depth = -scaleParam * math.Sqrt(0.2*per*s.Z.DetMagnitude(i)*per)
	default:
		return PenetrationSample{}, &UnsupportedComponentError{Component: string(comp)}
	}
	return PenetrationSample{
		Station: s.ID,
		Lat:     s.Lat,
		Lon:     s.Lon,
		Period:  per,
		Depth:   depth,
	}, nil
}

// BatchDepths computes penetration depths for every station at the
// same frequency index. Any per-station failure aborts the batch.
func BatchDepths(stations []*Station, i int, comp Component) ([]PenetrationSample, error) {
	if len(stations) == 0 {
		return nil, ErrEmptyInput
	}
	samples := make([]PenetrationSample, len(stations))
	for j, s := range stations {
		sample, err := PenetrationDepth(s, i, comp)
		if err != nil {
			return nil, err
		}
		samples[j] = sample
	}
	return samples, nil
}

// SharedPeriod verifies that all samples in a batch were computed at
// exactly the same period and returns that period. A disagreement
// returns a PeriodMismatchError naming the offending station; this is
// the hard gate used before plotting, where a ragged batch cannot
// share one period value.
func SharedPeriod(samples []PenetrationSample) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrEmptyInput
	}
	periods := make([]float64, len(samples))
	for i, s := range samples {
		periods[i] = s.Period
	}
	check := CheckPeriods(periods)
	if !check.Consistent {
		return 0, &PeriodMismatchError{
			Station: samples[check.Index].Station,
			Index:   check.Index,
			Ref:     check.Ref,
			Value:   check.Value,
		}
	}
	return check.Ref, nil
}

// DepthProfile computes the penetration depth of one station at every
// measured period. The returned depths are magnitudes.
func DepthProfile(s *Station, comp Component) (periods, depths []float64, err error) {
	n := s.Z.NFreq()
	periods = make([]float64, n)
	depths = make([]float64, n)
	for i := 0; i < n; i++ {
		periods[i] = s.Z.Period(i)
		switch comp {
		case ComponentZxy:
			depths[i] = scaleParam * math.Sqrt(s.Z.Resistivity(i, 0, 1)*periods[i])
		case ComponentZyx:
			depths[i] = scaleParam * math.Sqrt(s.Z.Resistivity(i, 1, 0)*periods[i])
		case ComponentDet:
			depths[i] = scaleParam * math.Sqrt(0.2*periods[i]*s.Z.DetMagnitude(i)*periods[i])
		default:
			return nil, nil, &UnsupportedComponentError{Component: string(comp)}
		}
	}
	return periods, depths, nil
}
