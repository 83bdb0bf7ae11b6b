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

	"github.com/ctessum/geom"
)

// errDegenerate indicates that a point set cannot be triangulated:
// fewer than three points, or all points collinear. The convex hull
// of such a set has no interior, so the interpolated surface is
// empty.
var errDegenerate = errors.New("mtpy: point set has no triangulation")

// triangulation is a Delaunay triangulation of a set of points.
// Triangle vertex indices are stored counterclockwise.
type triangulation struct {
	points    []geom.Point
	triangles [][3]int
}

// triangulate builds a Delaunay triangulation with the Bowyer-Watson
// incremental algorithm. It returns errDegenerate when the input has
// no triangulation.
func triangulate(points []geom.Point) (*triangulation, error) {
	if len(points) < 3 {
		return nil, errDegenerate
	}

	// Super-triangle enclosing all input points.
	b := geom.NewBounds()
	for _, p := range points {
		b.Extend(p.Bounds())
	}
	span := math.Max(b.Max.X-b.Min.X, b.Max.Y-b.Min.Y)
	if span == 0 {
		return nil, errDegenerate
	}
	cx := (b.Min.X + b.Max.X) / 2
	cy := (b.Min.Y + b.Max.Y) / 2
	verts := make([]geom.Point, len(points), len(points)+3)
	copy(verts, points)
	verts = append(verts,
		geom.Point{X: cx - 20*span, Y: cy - span},
		geom.Point{X: cx + 20*span, Y: cy - span},
		geom.Point{X: cx, Y: cy + 20*span},
	)
	s0, s1, s2 := len(points), len(points)+1, len(points)+2

	work := [][3]int{{s0, s1, s2}}
	for i := range points {
		work = insertPoint(verts, work, i)
	}

	t := &triangulation{points: points}
	for _, tri := range work {
		if tri[0] >= len(points) || tri[1] >= len(points) || tri[2] >= len(points) {
			continue
		}
		// Collinear inputs can leave zero-area slivers.
		if orient2d(points[tri[0]], points[tri[1]], points[tri[2]]) == 0 {
			continue
		}
		t.triangles = append(t.triangles, tri)
	}
	if len(t.triangles) == 0 {
		return nil, errDegenerate
	}
	return t, nil
}

// insertPoint adds point i to the triangulation: every triangle whose
// circumcircle contains the point is removed and the resulting cavity
// is re-triangulated from its boundary edges.
func insertPoint(verts []geom.Point, triangles [][3]int, i int) [][3]int {
	p := verts[i]
	var bad [][3]int
	var keep [][3]int
	for _, tri := range triangles {
		if inCircumcircle(verts[tri[0]], verts[tri[1]], verts[tri[2]], p) {
			bad = append(bad, tri)
		} else {
			keep = append(keep, tri)
		}
	}

	// Boundary edges of the cavity appear in exactly one bad triangle.
	edgeCount := make(map[[2]int]int)
	for _, tri := range bad {
		for _, e := range triEdges(tri) {
			edgeCount[normEdge(e)]++
		}
	}
	for _, tri := range bad {
		for _, e := range triEdges(tri) {
			if edgeCount[normEdge(e)] == 1 {
				keep = append(keep, ccw(verts, [3]int{e[0], e[1], i}))
			}
		}
	}
	return keep
}

func triEdges(t [3]int) [3][2]int {
	return [3][2]int{{t[0], t[1]}, {t[1], t[2]}, {t[2], t[0]}}
}

func normEdge(e [2]int) [2]int {
	if e[0] > e[1] {
		return [2]int{e[1], e[0]}
	}
	return e
}

// ccw reorders triangle t counterclockwise.
func ccw(verts []geom.Point, t [3]int) [3]int {
	if orient2d(verts[t[0]], verts[t[1]], verts[t[2]]) < 0 {
		return [3]int{t[0], t[2], t[1]}
	}
	return t
}

// orient2d is twice the signed area of triangle abc; positive when
// the vertices wind counterclockwise.
func orient2d(a, b, c geom.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// inCircumcircle reports whether p lies strictly inside the
// circumcircle of counterclockwise triangle abc.
func inCircumcircle(a, b, c, p geom.Point) bool {
	if orient2d(a, b, c) < 0 {
		a, b = b, a
	}
	ax, ay := a.X-p.X, a.Y-p.Y
	bx, by := b.X-p.X, b.Y-p.Y
	cx, cy := c.X-p.X, c.Y-p.Y
	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)
	return det > 0
}

// barycentric returns the barycentric coordinates of p in triangle t.
func (t *triangulation) barycentric(tri [3]int, p geom.Point) (l0, l1, l2 float64) {
	a, b, c := t.points[tri[0]], t.points[tri[1]], t.points[tri[2]]
	area := orient2d(a, b, c)
	l0 = orient2d(p, b, c) / area
	l1 = orient2d(a, p, c) / area
	l2 = orient2d(a, b, p) / area
	return l0, l1, l2
}
