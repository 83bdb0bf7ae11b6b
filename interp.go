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
	"sort"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/mat"
)

// insideTol absorbs floating-point noise when testing whether a grid
// cell center lies inside a triangle.
const insideTol = 1e-9

// Interpolate produces a dense surface from the raster's populated
// cells by piecewise-cubic scattered-data interpolation: a Delaunay
// triangulation of the sample cells with a cubic Bézier patch per
// triangle, using least-squares estimated gradients at the samples.
// Cells outside the convex hull of the samples stay NaN; the
// interpolant does not extrapolate. A cell at a sample point keeps
// exactly that sample's value.
//
// When the samples have no triangulation (fewer than three populated
// cells, or all collinear) the hull has no interior and the result
// contains only the sample cells themselves.
func (r *Raster) Interpolate() (*Raster, error) {
	out := &Raster{
		Data:      sparse.ZerosDense(r.Rows(), r.Cols()),
		Bounds:    r.Bounds.Copy(),
		PixelSize: r.PixelSize,
		Offset:    r.Offset,
		samples:   append([]cellSample(nil), r.samples...),
	}
	for i := range out.Data.Elements {
		out.Data.Elements[i] = math.NaN()
	}
	for _, s := range r.samples {
		out.Data.Set(s.value, s.row, s.col)
	}

	points := make([]geom.Point, len(r.samples))
	values := make([]float64, len(r.samples))
	for i, s := range r.samples {
		points[i] = geom.Point{X: float64(s.col), Y: float64(s.row)}
		values[i] = s.value
	}

	tri, err := triangulate(points)
	if err == errDegenerate {
		return out, nil
	} else if err != nil {
		return nil, err
	}

	grads := estimateGradients(points, values)

	patches := make([]triPatch, len(tri.triangles))
	index := rtree.NewTree(25, 50)
	for i, t := range tri.triangles {
		patches[i] = triPatch{
			Polygon: geom.Polygon{{
				tri.points[t[0]], tri.points[t[1]], tri.points[t[2]],
			}},
			i: i,
		}
		index.Insert(patches[i])
	}

	for row := 0; row < r.Rows(); row++ {
		for col := 0; col < r.Cols(); col++ {
			p := geom.Point{X: float64(col), Y: float64(row)}
			if !math.IsNaN(out.Data.Get(row, col)) {
				continue // sample cell, already exact
			}
			for _, s := range index.SearchIntersect(p.Bounds()) {
				patch := s.(triPatch)
				t := tri.triangles[patch.i]
				l0, l1, l2 := tri.barycentric(t, p)
				if l0 < -insideTol || l1 < -insideTol || l2 < -insideTol {
					continue
				}
				out.Data.Set(cubicPatch(tri, t, values, grads, l0, l1, l2), row, col)
				break
			}
		}
	}
	return out, nil
}

// triPatch is one triangle of a triangulation as an indexable
// geometry, tagged with its triangle index.
type triPatch struct {
	geom.Polygon
	i int
}

// gradient is an estimated surface slope (∂v/∂x, ∂v/∂y) at a sample.
type gradient struct {
	dx, dy float64
}

// estimateGradients fits a weighted least-squares plane through each
// sample's nearest neighbors to estimate the surface gradient there.
// Planar data therefore reproduces exactly. A rank-deficient
// neighborhood falls back to a flat gradient.
func estimateGradients(points []geom.Point, values []float64) []gradient {
	const maxNeighbors = 9
	grads := make([]gradient, len(points))
	for i, p := range points {
		type neighbor struct {
			j    int
			dist float64
		}
		neighbors := make([]neighbor, 0, len(points)-1)
		for j, q := range points {
			if j == i {
				continue
			}
			dx, dy := q.X-p.X, q.Y-p.Y
			neighbors = append(neighbors, neighbor{j: j, dist: math.Hypot(dx, dy)})
		}
		sort.Slice(neighbors, func(a, b int) bool {
			return neighbors[a].dist < neighbors[b].dist
		})
		if len(neighbors) > maxNeighbors {
			neighbors = neighbors[:maxNeighbors]
		}
		if len(neighbors) < 2 {
			continue
		}

		a := mat.NewDense(len(neighbors), 2, nil)
		b := mat.NewVecDense(len(neighbors), nil)
		for k, n := range neighbors {
			w := 1 / n.dist
			q := points[n.j]
			a.Set(k, 0, w*(q.X-p.X))
			a.Set(k, 1, w*(q.Y-p.Y))
			b.SetVec(k, w*(values[n.j]-values[i]))
		}
		var g mat.VecDense
		if err := g.SolveVec(a, b); err != nil {
			continue
		}
		grads[i] = gradient{dx: g.AtVec(0), dy: g.AtVec(1)}
	}
	return grads
}

// cubicPatch evaluates a cubic Bézier triangle at barycentric
// coordinates (l0, l1, l2). Edge control points come from the vertex
// values and gradients; the interior control point is chosen for
// quadratic precision.
func cubicPatch(tri *triangulation, t [3]int, values []float64, grads []gradient, l0, l1, l2 float64) float64 {
	p0, p1, p2 := tri.points[t[0]], tri.points[t[1]], tri.points[t[2]]
	v0, v1, v2 := values[t[0]], values[t[1]], values[t[2]]
	g0, g1, g2 := grads[t[0]], grads[t[1]], grads[t[2]]

	along := func(g gradient, from, to geom.Point) float64 {
		return (g.dx*(to.X-from.X) + g.dy*(to.Y-from.Y)) / 3
	}

	b300, b030, b003 := v0, v1, v2
	b210 := v0 + along(g0, p0, p1)
	b201 := v0 + along(g0, p0, p2)
	b120 := v1 + along(g1, p1, p0)
	b021 := v1 + along(g1, p1, p2)
	b012 := v2 + along(g2, p2, p1)
	b102 := v2 + along(g2, p2, p0)
	e := (b210 + b201 + b120 + b021 + b012 + b102) / 6
	v := (v0 + v1 + v2) / 3
	b111 := e + (e-v)/2

	return b300*l0*l0*l0 + b030*l1*l1*l1 + b003*l2*l2*l2 +
		3*(b210*l0*l0*l1+b201*l0*l0*l2+b120*l0*l1*l1+
			b021*l1*l1*l2+b012*l1*l2*l2+b102*l0*l2*l2) +
		6*b111*l0*l1*l2
}
