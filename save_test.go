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
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestWriteCSV(t *testing.T) {
	stations := []*Station{
		testStation("A", -34.50, 149.20, []float64{0.125, 0.25}),
		testStation("B", -34.52, 149.22, []float64{0.125, 0.25}),
	}
	fname := filepath.Join(t.TempDir(), "depths.csv")
	if err := WriteCSV(fname, stations, ComponentDet, nil); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows: want 2 but have %d", len(rows))
	}
	if rows[0][0] != "-34.5" || rows[0][1] != "149.2" {
		t.Errorf("row 0 coordinates: have %v, %v", rows[0][0], rows[0][1])
	}
	depths := strings.Split(rows[0][2], ",")
	if len(depths) != 2 {
		t.Fatalf("depth columns: want 2 but have %d", len(depths))
	}
	for _, d := range depths {
		if dot := strings.IndexByte(d, '.'); dot < 0 || len(d)-dot-1 != 2 {
			t.Errorf("depth %q should have 2 decimal places", d)
		}
	}
}

func TestWriteCSVSkipsMismatchedStation(t *testing.T) {
	stations := []*Station{
		testStation("A", -34.50, 149.20, []float64{0.125, 0.25}),
		testStation("B", -34.52, 149.22, []float64{0.1, 0.2}),
		testStation("C", -34.54, 149.24, []float64{0.125, 0.25}),
	}
	var buf strings.Builder
	lg := logrus.New()
	lg.Out = &buf
	fname := filepath.Join(t.TempDir(), "depths.csv")
	if err := WriteCSV(fname, stations, ComponentDet, lg); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	// Station B disagrees with the reference periods: it is skipped
	// and logged, not fatal.
	if len(rows) != 2 {
		t.Errorf("rows: want 2 but have %d", len(rows))
	}
	if !strings.Contains(buf.String(), "station B") {
		t.Errorf("skip should be logged, have %q", buf.String())
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "depths.csv")
	if err := WriteCSV(fname, nil, ComponentDet, nil); err != ErrEmptyInput {
		t.Errorf("want ErrEmptyInput but have %v", err)
	}
}

func TestWriteStationShapefile(t *testing.T) {
	samples := []PenetrationSample{
		{Station: "A", Lat: -34.50, Lon: 149.20, Period: 8, Depth: -500},
		{Station: "B", Lat: -34.52, Lon: 149.22, Period: 8, Depth: -650},
	}
	fname := filepath.Join(t.TempDir(), "stations.shp")
	if err := WriteStationShapefile(fname, samples); err != nil {
		t.Fatal(err)
	}
	for _, ext := range []string{".shp", ".dbf", ".prj"} {
		name := strings.TrimSuffix(fname, ".shp") + ext
		if _, err := os.Stat(name); err != nil {
			t.Errorf("missing output file %s: %v", name, err)
		}
	}
}

func TestRasterWriteShapefile(t *testing.T) {
	samples := []PenetrationSample{
		{Station: "A", Lat: 10.000, Lon: 20.000, Period: 8, Depth: -500},
		{Station: "B", Lat: 10.004, Lon: 20.004, Period: 8, Depth: -300},
	}
	cfg := NewGridConfig()
	r, err := cfg.Rasterize(samples)
	if err != nil {
		t.Fatal(err)
	}
	fname := filepath.Join(t.TempDir(), "grid.shp")
	if err := r.WriteShapefile(fname); err != nil {
		t.Fatal(err)
	}
	for _, ext := range []string{".shp", ".dbf", ".prj"} {
		name := strings.TrimSuffix(fname, ".shp") + ext
		if _, err := os.Stat(name); err != nil {
			t.Errorf("missing output file %s: %v", name, err)
		}
	}
}
