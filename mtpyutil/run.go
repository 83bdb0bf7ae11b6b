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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/adamqc/mtpy"
	"github.com/adamqc/mtpy/edi"
)

// PlotConfig configures the plot command.
type PlotConfig struct {
	EDIDir      string
	PeriodIndex int
	Component   string
	PixelSize   float64
	Output      string // PNG path; default penetration_depth.png
	Interpolate bool
	Legend      bool
	Log         logrus.FieldLogger
}

// Plot grids the station penetration depths at one period index and
// writes the (optionally interpolated) surface as a PNG map.
// A period disagreement between stations is fatal here: one map can
// only represent one period.
func Plot(c PlotConfig) error {
	if c.Log == nil {
		c.Log = logrus.StandardLogger()
	}
	comp, err := mtpy.ParseComponent(c.Component)
	if err != nil {
		return err
	}
	stations, err := edi.ReadDir(c.EDIDir)
	if err != nil {
		return err
	}
	c.Log.Infof("computing penetration depths for %d stations", len(stations))

	samples, err := mtpy.BatchDepths(stations, c.PeriodIndex, comp)
	if err != nil {
		return err
	}
	period, err := mtpy.SharedPeriod(samples)
	if err != nil {
		return err
	}
	c.Log.Infof("all stations share period %g s at index %d", period, c.PeriodIndex)

	grid := mtpy.NewGridConfig()
	if c.PixelSize > 0 {
		grid.PixelSize = c.PixelSize
	}
	raster, err := grid.Rasterize(samples)
	if err != nil {
		return err
	}
	c.Log.Infof("composited %d samples onto a %d x %d grid",
		raster.Populated(), raster.Rows(), raster.Cols())

	surface := raster
	if c.Interpolate {
		surface, err = raster.Interpolate()
		if err != nil {
			return err
		}
	}

	output := c.Output
	if output == "" {
		output = "penetration_depth.png"
	}
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("mtpyutil: %v", err)
	}
	defer f.Close()
	if err := surface.RenderPNG(f); err != nil {
		return err
	}
	c.Log.Infof("wrote map to %s", output)

	if c.Legend {
		legend := strings.TrimSuffix(output, filepath.Ext(output)) + "_legend.png"
		lf, err := os.Create(legend)
		if err != nil {
			return fmt.Errorf("mtpyutil: %v", err)
		}
		defer lf.Close()
		label := fmt.Sprintf("Penetration depth (m) at period %g s", period)
		if err := surface.RenderLegend(lf, label); err != nil {
			return err
		}
		c.Log.Infof("wrote legend to %s", legend)
	}
	return nil
}

// CSVConfig configures the csv command.
type CSVConfig struct {
	EDIDir    string
	Component string
	Output    string // CSV path; default penetration_depth.csv
	Log       logrus.FieldLogger
}

// CSV exports per-station depth profiles across all periods to a
// delimited text table. Stations with mismatched period tables are
// skipped, not fatal.
func CSV(c CSVConfig) error {
	comp, err := mtpy.ParseComponent(c.Component)
	if err != nil {
		return err
	}
	stations, err := edi.ReadDir(c.EDIDir)
	if err != nil {
		return err
	}
	output := c.Output
	if output == "" {
		output = "penetration_depth.csv"
	}
	return mtpy.WriteCSV(output, stations, comp, c.Log)
}

// ShapeConfig configures the shape command.
type ShapeConfig struct {
	EDIDir      string
	PeriodIndex int
	Component   string
	PixelSize   float64
	Output      string // shapefile path prefix; default penetration_depth
	Log         logrus.FieldLogger
}

// Shape exports the station samples at one period index as a point
// shapefile and the populated grid cells as a polygon shapefile.
func Shape(c ShapeConfig) error {
	if c.Log == nil {
		c.Log = logrus.StandardLogger()
	}
	comp, err := mtpy.ParseComponent(c.Component)
	if err != nil {
		return err
	}
	stations, err := edi.ReadDir(c.EDIDir)
	if err != nil {
		return err
	}
	samples, err := mtpy.BatchDepths(stations, c.PeriodIndex, comp)
	if err != nil {
		return err
	}
	if _, err := mtpy.SharedPeriod(samples); err != nil {
		return err
	}

	grid := mtpy.NewGridConfig()
	if c.PixelSize > 0 {
		grid.PixelSize = c.PixelSize
	}
	raster, err := grid.Rasterize(samples)
	if err != nil {
		return err
	}

	prefix := c.Output
	if prefix == "" {
		prefix = "penetration_depth"
	}
	prefix = strings.TrimSuffix(prefix, filepath.Ext(prefix))
	if err := mtpy.WriteStationShapefile(prefix+"_stations.shp", samples); err != nil {
		return err
	}
	if err := raster.WriteShapefile(prefix + "_grid.shp"); err != nil {
		return err
	}
	c.Log.Infof("wrote shapefiles %s_stations.shp and %s_grid.shp", prefix, prefix)
	return nil
}
