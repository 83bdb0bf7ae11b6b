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
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	goshp "github.com/jonas-p/go-shp"
	"github.com/sirupsen/logrus"
)

// wgs84WKT is the projection definition written alongside exported
// shapefiles; all coordinates in this package are WGS84 degrees.
const wgs84WKT = `GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",SPHEROID["WGS_1984",6378137.0,298.257223563]],PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]]`

// WriteCSV writes one row per station of
// (latitude, longitude, comma-joined depths at 2 decimals) across all
// of the station's periods. The first station's period list is the
// reference; a station whose periods differ is logged through lg and
// skipped rather than failing the batch, in contrast to the plotting
// path where a period mismatch is fatal.
func WriteCSV(fname string, stations []*Station, comp Component, lg logrus.FieldLogger) error {
	if len(stations) == 0 {
		return ErrEmptyInput
	}
	if lg == nil {
		lg = logrus.StandardLogger()
	}

	var refPeriods []float64
	var rows [][]string
	for _, s := range stations {
		periods, depths, err := DepthProfile(s, comp)
		if err != nil {
			return err
		}
		if refPeriods == nil {
			refPeriods = periods
		} else if !equalPeriodLists(periods, refPeriods) {
			lg.Warnf("mtpy: station %s periods do not match the reference station, skipping", s.ID)
			continue
		}
		formatted := make([]string, len(depths))
		for i, d := range depths {
			formatted[i] = fmt.Sprintf("%.2f", d)
		}
		rows = append(rows, []string{
			strconv.FormatFloat(s.Lat, 'f', -1, 64),
			strconv.FormatFloat(s.Lon, 'f', -1, 64),
			strings.Join(formatted, ","),
		})
	}

	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("mtpy.WriteCSV: %v", err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("mtpy.WriteCSV: %v", err)
	}
	lg.Infof("mtpy: saved %d station depth profiles to %s", len(rows), fname)
	return nil
}

// WriteStationShapefile writes a point shapefile of station samples
// with depth magnitudes as attributes, plus a .prj file.
func WriteStationShapefile(fname string, samples []PenetrationSample) error {
	if len(samples) == 0 {
		return ErrEmptyInput
	}
	type depthRec struct {
		geom.Point
		Station string
		Period  float64 // [s]
		Depth   float64 // [m]
	}
	e, err := shp.NewEncoder(fname, depthRec{})
	if err != nil {
		return fmt.Errorf("mtpy.WriteStationShapefile: %v", err)
	}
	for _, s := range samples {
		err := e.Encode(&depthRec{
			Point:   geom.Point{X: s.Lon, Y: s.Lat},
			Station: s.Station,
			Period:  s.Period,
			Depth:   math.Abs(s.Depth),
		})
		if err != nil {
			return fmt.Errorf("mtpy.WriteStationShapefile: %v", err)
		}
	}
	e.Close()
	return writePrj(fname)
}

// WriteShapefile writes the populated raster cells as square polygons
// with row, column and depth attributes.
func (r *Raster) WriteShapefile(fname string) error {
	base := strings.TrimSuffix(fname, filepath.Ext(fname))
	for _, ext := range []string{".shp", ".prj", ".dbf", ".shx"} {
		os.Remove(base + ext)
	}
	fields := []goshp.Field{
		goshp.NumberField("row", 10),
		goshp.NumberField("col", 10),
		goshp.FloatField("depth", 16, 2),
	}
	e, err := shp.NewEncoderFromFields(fname, goshp.POLYGON, fields...)
	if err != nil {
		return fmt.Errorf("mtpy.Raster.WriteShapefile: %v", err)
	}
	half := r.PixelSize / 2
	for _, s := range r.samples {
		lat, lon := r.CellCoordinate(s.row, s.col)
		cell := geom.Polygon{{
			{X: lon - half, Y: lat - half},
			{X: lon + half, Y: lat - half},
			{X: lon + half, Y: lat + half},
			{X: lon - half, Y: lat + half},
			{X: lon - half, Y: lat - half},
		}}
		if err := e.EncodeFields(cell, s.row, s.col, s.value); err != nil {
			return fmt.Errorf("mtpy.Raster.WriteShapefile: %v", err)
		}
	}
	e.Close()
	return writePrj(fname)
}

func writePrj(shpName string) error {
	prj := strings.TrimSuffix(shpName, filepath.Ext(shpName)) + ".prj"
	f, err := os.Create(prj)
	if err != nil {
		return fmt.Errorf("mtpy: %v", err)
	}
	defer f.Close()
	if _, err := f.WriteString(wgs84WKT); err != nil {
		return fmt.Errorf("mtpy: %v", err)
	}
	return nil
}
