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

package mtpyutil

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cast"
)

func TestDefaults(t *testing.T) {
	tests := []struct {
		name string
		want interface{}
	}{
		{"component", "det"},
		{"pixelsize", 0.002},
		{"output", ""},
		{"interpolate", true},
		{"legend", true},
	}
	for _, test := range tests {
		if have := Cfg.Get(test.name); cast.ToString(have) != cast.ToString(test.want) {
			t.Errorf("%s: want %v but have %v", test.name, test.want, have)
		}
	}
}

func TestParsePeriodIndex(t *testing.T) {
	i, err := parsePeriodIndex("3")
	if err != nil {
		t.Fatal(err)
	}
	if i != 3 {
		t.Errorf("want 3 but have %d", i)
	}
	for _, bad := range []string{"x", "1.5", "-1", ""} {
		if _, err := parsePeriodIndex(bad); err == nil {
			t.Errorf("parsePeriodIndex(%q): want an error", bad)
		}
	}
}

// writeTestSurvey writes a small EDI survey into dir, one file per
// station, offsetting each station's coordinate.
func writeTestSurvey(t *testing.T, dir string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		body := fmt.Sprintf(`>HEAD
DATAID="SA%03d"
LAT=%f LONG=%f

>FREQ //2
0.125 0.25

>ZXXR //2
1 1.5
>ZXXI //2
2 2.5
>ZXYR //2
10 11
>ZXYI //2
-5 -6
>ZYXR //2
-8 -9
>ZYXI //2
3 3.5
>ZYYR //2
0.5 0.6
>ZYYI //2
1 1.1

>END
`, i, -34.5+0.002*float64(i), 149.2+0.002*float64(i))
		fname := filepath.Join(dir, fmt.Sprintf("SA%03d.edi", i))
		if err := os.WriteFile(fname, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCSVCommand(t *testing.T) {
	dir := t.TempDir()
	writeTestSurvey(t, dir, 3)
	output := filepath.Join(dir, "depths.csv")
	err := CSV(CSVConfig{
		EDIDir:    dir,
		Component: "det",
		Output:    output,
		Log:       Log,
	})
	if err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Errorf("rows: want 3 but have %d", len(rows))
	}
}

func TestCSVCommandBadComponent(t *testing.T) {
	err := CSV(CSVConfig{EDIDir: t.TempDir(), Component: "zxx", Log: Log})
	if err == nil {
		t.Fatal("want an error for an unsupported component")
	}
}

func TestPlotCommand(t *testing.T) {
	dir := t.TempDir()
	writeTestSurvey(t, dir, 3)
	output := filepath.Join(dir, "map.png")
	err := Plot(PlotConfig{
		EDIDir:      dir,
		PeriodIndex: 0,
		Component:   "det",
		Output:      output,
		Interpolate: true,
		Legend:      false,
		Log:         Log,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("missing output map: %v", err)
	}
}

func TestPlotCommandBadIndex(t *testing.T) {
	dir := t.TempDir()
	writeTestSurvey(t, dir, 2)
	err := Plot(PlotConfig{
		EDIDir:      dir,
		PeriodIndex: 5,
		Component:   "det",
		Output:      filepath.Join(dir, "map.png"),
		Log:         Log,
	})
	if err == nil {
		t.Fatal("want an error for a period index beyond the station data")
	}
}

func TestCommandsDefaultLogger(t *testing.T) {
	dir := t.TempDir()
	writeTestSurvey(t, dir, 3)
	err := Plot(PlotConfig{
		EDIDir:      dir,
		PeriodIndex: 0,
		Component:   "det",
		Output:      filepath.Join(dir, "map.png"),
		Interpolate: true,
	})
	if err != nil {
		t.Errorf("Plot with nil logger: %v", err)
	}
	err = Shape(ShapeConfig{
		EDIDir:      dir,
		PeriodIndex: 0,
		Component:   "det",
		Output:      filepath.Join(dir, "depths"),
	})
	if err != nil {
		t.Errorf("Shape with nil logger: %v", err)
	}
}

func TestShapeCommand(t *testing.T) {
	dir := t.TempDir()
	writeTestSurvey(t, dir, 3)
	prefix := filepath.Join(dir, "depths")
	err := Shape(ShapeConfig{
		EDIDir:      dir,
		PeriodIndex: 1,
		Component:   "zxy",
		Output:      prefix,
		Log:         Log,
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"_stations.shp", "_grid.shp"} {
		if _, err := os.Stat(prefix + name); err != nil {
			t.Errorf("missing shapefile %s: %v", prefix+name, err)
		}
	}
}
