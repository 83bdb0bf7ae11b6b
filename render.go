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
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/ctessum/geom/carto"
	"github.com/gonum/plot/vg"
	"github.com/gonum/plot/vg/draw"
	"github.com/gonum/plot/vg/vgimg"
)

// background is the color of no-data cells in rendered rasters.
var background = color.NRGBA{255, 255, 255, 255}

// colorMap builds a color map over the raster's finite cell values.
func (r *Raster) colorMap() (*carto.ColorMap, error) {
	var vals []float64
	for _, v := range r.Data.Elements {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return nil, ErrEmptyInput
	}
	cmap := carto.NewColorMap(carto.Linear)
	cmap.AddArray(vals)
	cmap.Set()
	return cmap, nil
}

// RenderPNG writes the raster to w as a PNG image, one pixel per grid
// cell with row 0 at the top (geographic north). No-data cells are
// drawn as background.
func (r *Raster) RenderPNG(w io.Writer) error {
	cmap, err := r.colorMap()
	if err != nil {
		return err
	}
	img := image.NewRGBA(image.Rect(0, 0, r.Cols(), r.Rows()))
	for row := 0; row < r.Rows(); row++ {
		for col := 0; col < r.Cols(); col++ {
			v := r.Value(row, col)
			if math.IsNaN(v) {
				img.Set(col, row, background)
				continue
			}
			img.Set(col, row, cmap.GetColor(v))
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("mtpy.Raster.RenderPNG: %v", err)
	}
	return nil
}

// RenderLegend writes a PNG legend for the raster's color scale to w.
func (r *Raster) RenderLegend(w io.Writer, label string) error {
	cmap, err := r.colorMap()
	if err != nil {
		return err
	}
	const legendWidth = 6.2 * vg.Inch
	const legendHeight = legendWidth * 0.1067
	cmap.LegendWidth = legendWidth
	cmap.LegendHeight = legendHeight
	cmap.LineWidth = 0.5
	cmap.FontSize = 8

	c := vgimg.New(legendWidth, legendHeight)
	dc := draw.New(c)
	if err := cmap.Legend(&dc, label); err != nil {
		return fmt.Errorf("mtpy.Raster.RenderLegend: %v", err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("mtpy.Raster.RenderLegend: %v", err)
	}
	return nil
}
