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

// Package mtpy computes and grids penetration depths derived from
// magnetotelluric impedance-tensor measurements.
package mtpy

import (
	"math/cmplx"

	"github.com/ctessum/geom"
)

// Station is one magnetotelluric survey station: an identifier, a
// geographic coordinate in decimal degrees, and the impedance tensor
// measured at the station. Stations are immutable once loaded.
type Station struct {
	ID       string
	Lat, Lon float64
	Z        *ImpedanceTensor
}

// Point returns the station coordinate as a geometry point
// (X is longitude, Y is latitude).
func (s *Station) Point() geom.Point {
	return geom.Point{X: s.Lon, Y: s.Lat}
}

// ImpedanceTensor holds the 2×2 complex impedance tensor of one
// station at each measured frequency. Data[i] is ordered
// {{Zxx, Zxy}, {Zyx, Zyy}} and corresponds to Freqs[i].
// Impedance is in field units (mV/km/nT).
type ImpedanceTensor struct {
	Freqs []float64
	Data  [][2][2]complex128
}

// NFreq returns the number of measured frequencies.
func (z *ImpedanceTensor) NFreq() int { return len(z.Freqs) }

// Period returns the sampling period [s] at frequency index i.
func (z *ImpedanceTensor) Period(i int) float64 { return 1 / z.Freqs[i] }

// Resistivity returns the apparent resistivity [Ω·m] of tensor
// component (r, c) at frequency index i, following the field-unit
// convention ρ = 0.2 |Z|² / f.
func (z *ImpedanceTensor) Resistivity(i, r, c int) float64 {
	zz := z.Data[i][r][c]
	return 0.2 * (real(zz)*real(zz) + imag(zz)*imag(zz)) / z.Freqs[i]
}

// Det returns the determinant of the impedance tensor at frequency
// index i, a rotation-invariant combination of all four components.
func (z *ImpedanceTensor) Det(i int) complex128 {
	d := z.Data[i]
	return d[0][0]*d[1][1] - d[0][1]*d[1][0]
}

// DetMagnitude returns |det Z| at frequency index i.
func (z *ImpedanceTensor) DetMagnitude(i int) float64 {
	return cmplx.Abs(z.Det(i))
}
