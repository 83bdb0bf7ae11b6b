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
	"math"
	"testing"
)

// testStation builds a single-station fixture with one frequency and
// a fully populated impedance tensor.
func testStation(id string, lat, lon float64, freqs []float64) *Station {
	data := make([][2][2]complex128, len(freqs))
	for i := range freqs {
		data[i] = [2][2]complex128{
			{complex(1, 2), complex(10, -5)},
			{complex(-8, 3), complex(0.5, 1)},
		}
	}
	return &Station{
		ID:  id,
		Lat: lat,
		Lon: lon,
		Z:   &ImpedanceTensor{Freqs: freqs, Data: data},
	}
}

func TestPenetrationDepthZxy(t *testing.T) {
	s := testStation("SA001", -34.5, 149.2, []float64{0.125})
	sample, err := PenetrationDepth(s, 0, ComponentZxy)
	if err != nil {
		t.Fatal(err)
	}
	if sample.Period != 8 {
		t.Errorf("period: want 8 but have %v", sample.Period)
	}
	// ρxy = 0.2·|10-5i|²/0.125 = 200, depth = -k·sqrt(200·8).
	want := -scaleParam * math.Sqrt(200*8)
	if math.Abs(sample.Depth-want) > 1e-9 {
		t.Errorf("depth: want %v but have %v", want, sample.Depth)
	}
	if sample.Depth >= 0 {
		t.Errorf("raw depth should keep its negative sign convention, have %v", sample.Depth)
	}
	if math.Abs(sample.Depth) <= 0 {
		t.Errorf("depth magnitude must be positive, have %v", math.Abs(sample.Depth))
	}
}

func TestPenetrationDepthDet(t *testing.T) {
	s := testStation("SA002", -34.5, 149.2, []float64{0.125})
	sample, err := PenetrationDepth(s, 0, ComponentDet)
	if err != nil {
		t.Fatal(err)
	}
	det := s.Z.DetMagnitude(0)
	want := -scaleParam * math.Sqrt(0.2*8*det*8)
	if math.Abs(sample.Depth-want) > 1e-9 {
		t.Errorf("det depth: want %v but have %v", want, sample.Depth)
	}
}

func TestPenetrationDepthIndexOutOfRange(t *testing.T) {
	s := testStation("SA003", -34.5, 149.2, []float64{0.125, 0.25})
	_, err := PenetrationDepth(s, 2, ComponentDet)
	var idxErr *IndexError
	if !errors.As(err, &idxErr) {
		t.Fatalf("want IndexError but have %v", err)
	}
	if idxErr.Station != "SA003" || idxErr.Index != 2 || idxErr.NFreq != 2 {
		t.Errorf("IndexError fields: have %+v", idxErr)
	}
}

func TestParseComponent(t *testing.T) {
	for _, valid := range []string{"det", "zxy", "zyx"} {
		if _, err := ParseComponent(valid); err != nil {
			t.Errorf("ParseComponent(%q): unexpected error %v", valid, err)
		}
	}
	_, err := ParseComponent("zxx")
	var compErr *UnsupportedComponentError
	if !errors.As(err, &compErr) {
		t.Fatalf("want UnsupportedComponentError but have %v", err)
	}
	if compErr.Component != "zxx" {
		t.Errorf("component: want zxx but have %s", compErr.Component)
	}
}

func TestBatchDepthsEmpty(t *testing.T) {
	if _, err := BatchDepths(nil, 0, ComponentDet); err != ErrEmptyInput {
		t.Errorf("want ErrEmptyInput but have %v", err)
	}
}

func TestSharedPeriod(t *testing.T) {
	stations := []*Station{
		testStation("A", -34.50, 149.20, []float64{0.125}),
		testStation("B", -34.51, 149.21, []float64{0.125}),
	}
	samples, err := BatchDepths(stations, 0, ComponentDet)
	if err != nil {
		t.Fatal(err)
	}
	period, err := SharedPeriod(samples)
	if err != nil {
		t.Fatal(err)
	}
	if period != 8 {
		t.Errorf("period: want 8 but have %v", period)
	}
}

func TestSharedPeriodMismatch(t *testing.T) {
	stations := []*Station{
		testStation("A", -34.50, 149.20, []float64{0.125}),
		testStation("B", -34.51, 149.21, []float64{0.2}),
	}
	samples, err := BatchDepths(stations, 0, ComponentDet)
	if err != nil {
		t.Fatal(err)
	}
	_, err = SharedPeriod(samples)
	var mismatch *PeriodMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("want PeriodMismatchError but have %v", err)
	}
	if mismatch.Station != "B" {
		t.Errorf("offending station: want B but have %s", mismatch.Station)
	}
	if mismatch.Ref != 8 || mismatch.Value != 5 {
		t.Errorf("periods: want ref 8 value 5 but have ref %v value %v", mismatch.Ref, mismatch.Value)
	}
}

func TestDepthProfile(t *testing.T) {
	s := testStation("SA004", -34.5, 149.2, []float64{1, 0.5, 0.25})
	periods, depths, err := DepthProfile(s, ComponentZyx)
	if err != nil {
		t.Fatal(err)
	}
	if len(periods) != 3 || len(depths) != 3 {
		t.Fatalf("profile lengths: want 3 but have %d and %d", len(periods), len(depths))
	}
	for i, d := range depths {
		if d < 0 {
			t.Errorf("profile depth %d should be a magnitude, have %v", i, d)
		}
	}
	if periods[1] != 2 {
		t.Errorf("period 1: want 2 but have %v", periods[1])
	}
}
