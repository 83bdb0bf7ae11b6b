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

	"github.com/ctessum/geom"
	"github.com/ctessum/sparse"
)

// BoundingBox returns the geographic bounding box of a set of points
// (X is longitude, Y is latitude). A single point yields a degenerate
// box with Min == Max. An empty set returns ErrEmptyInput.
func BoundingBox(points []geom.Point) (*geom.Bounds, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	b := geom.NewBounds()
	for _, p := range points {
		b.Extend(p.Bounds())
	}
	return b, nil
}

// GridConfig describes the uniform lat/lon grid that station samples
// are composited onto.
type GridConfig struct {
	// PixelSize is the grid cell edge length in degrees.
	// 0.001° ≈ 100 m.
	PixelSize float64

	// Pad is the number of extra cells added to each grid dimension
	// beyond the station extent.
	Pad int

	// Offset shifts cell indices to leave a border between the
	// bounding box minimum and the grid edge.
	Offset int
}

// NewGridConfig returns a configuration with the standard pixel size
// of 0.002°, four cells of padding and a one-cell border.
func NewGridConfig() GridConfig {
	return GridConfig{PixelSize: 0.002, Pad: 4, Offset: 1}
}

// CellIndex maps a coordinate to integer cell indices on a grid
// anchored at (minLat, minLon). Indices are rounded to the nearest
// cell and shifted by offset.
func CellIndex(lat, lon, minLat, minLon, pixelSize float64, offset int) (ix, iy int) {
	ix = int(math.Round((lon-minLon)/pixelSize)) + offset
	iy = int(math.Round((lat-minLat)/pixelSize)) + offset
	return ix, iy
}

// CellCenter is the inverse of CellIndex: it returns the coordinate
// of the center of cell (ix, iy). Round-tripping a coordinate through
// CellIndex and CellCenter moves it by at most pixelSize/2 per axis.
func CellCenter(ix, iy int, minLat, minLon, pixelSize float64, offset int) (lat, lon float64) {
	lon = minLon + float64(ix-offset)*pixelSize
	lat = minLat + float64(iy-offset)*pixelSize
	return lat, lon
}

// Raster is a dense north-up grid of depth magnitudes. Unpopulated
// cells hold NaN: zero is a valid depth, so the no-data sentinel must
// stay distinct from it.
type Raster struct {
	// Data has shape (ny, nx); row 0 is the northern edge.
	Data *sparse.DenseArray

	// Bounds is the geographic bounding box of the stations the
	// raster was built from.
	Bounds *geom.Bounds

	PixelSize float64
	Offset    int

	// samples are the populated cells in composition order, one entry
	// per cell after last-write-wins resolution.
	samples []cellSample
}

// cellSample is one populated raster cell.
type cellSample struct {
	row, col int
	value    float64
}

// Rows returns the number of grid rows (latitude axis).
func (r *Raster) Rows() int { return r.Data.Shape[0] }

// Cols returns the number of grid columns (longitude axis).
func (r *Raster) Cols() int { return r.Data.Shape[1] }

// Value returns the cell value at (row, col); NaN means no data.
func (r *Raster) Value(row, col int) float64 { return r.Data.Get(row, col) }

// Populated returns the number of cells holding station samples.
func (r *Raster) Populated() int { return len(r.samples) }

// Rasterize composites station samples onto a uniform grid. Each
// sample is written as a magnitude at the cell its coordinate maps
// to; when two stations map to the same cell the later one in
// iteration order silently overwrites the earlier (last write wins;
// a coarser pixel size makes collisions more likely).
func (c GridConfig) Rasterize(samples []PenetrationSample) (*Raster, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}
	points := make([]geom.Point, len(samples))
	for i, s := range samples {
		points[i] = geom.Point{X: s.Lon, Y: s.Lat}
	}
	bbox, err := BoundingBox(points)
	if err != nil {
		return nil, err
	}

	nx := int(math.Ceil((bbox.Max.X-bbox.Min.X)/c.PixelSize)) + c.Pad
	ny := int(math.Ceil((bbox.Max.Y-bbox.Min.Y)/c.PixelSize)) + c.Pad

	r := &Raster{
		Data:      sparse.ZerosDense(ny, nx),
		Bounds:    bbox,
		PixelSize: c.PixelSize,
		Offset:    c.Offset,
	}
	for i := range r.Data.Elements {
		r.Data.Elements[i] = math.NaN()
	}

	// Track which cell each composition landed in so the interpolator
	// sees one value per cell.
	occupied := make(map[[2]int]int)
	for _, s := range samples {
		ix, iy := CellIndex(s.Lat, s.Lon, bbox.Min.Y, bbox.Min.X, c.PixelSize, c.Offset)
		row := ny - iy - 1 // row 0 is geographic north
		col := ix
		r.Data.Set(math.Abs(s.Depth), row, col)
		cell := [2]int{row, col}
		if j, ok := occupied[cell]; ok {
			r.samples[j].value = math.Abs(s.Depth)
			continue
		}
		occupied[cell] = len(r.samples)
		r.samples = append(r.samples, cellSample{row: row, col: col, value: math.Abs(s.Depth)})
	}
	return r, nil
}

// CellCoordinate returns the geographic coordinate of the center of
// raster cell (row, col).
func (r *Raster) CellCoordinate(row, col int) (lat, lon float64) {
	iy := r.Rows() - row - 1
	return CellCenter(col, iy, r.Bounds.Min.Y, r.Bounds.Min.X, r.PixelSize, r.Offset)
}
