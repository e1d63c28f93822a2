package scene

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rclancey/earcut"

	"github.com/irfansharif/conics/internal/geom"
)

const (
	markerSegments = 24
	dashLength     = 6.0
	gapLength      = 4.0
	miterLimit     = 4.0
)

// Shape is a set of triangles sharing one color. All triangles are wound the
// same way, so rasterizers accumulating signed coverage see their union.
type Shape struct {
	Role      Role
	Color     colorful.Color
	Triangles [][3]geom.Point
}

// Mesh triangulates every stroke and marker of s, in drawing order. Strokes
// become mitered outline polygons; markers become a disc plus an outline
// ring.
func Mesh(s Scene) ([]Shape, error) {
	var shapes []Shape
	for _, st := range s.Strokes {
		tris, err := strokeTriangles(st)
		if err != nil {
			return nil, fmt.Errorf("meshing %s stroke: %w", st.Role, err)
		}
		if len(tris) > 0 {
			shapes = append(shapes, Shape{Role: st.Role, Color: st.Color, Triangles: tris})
		}
	}

	for _, m := range s.Markers {
		inner := m.Radius - m.StrokeWidth/2
		outer := m.Radius + m.StrokeWidth/2
		if inner > 0 {
			tris, err := earClip(circle(m.Center, inner), nil)
			if err != nil {
				return nil, fmt.Errorf("meshing %s marker: %w", m.Role, err)
			}
			shapes = append(shapes, Shape{Role: m.Role, Color: m.Fill, Triangles: tris})
		}
		if m.StrokeWidth <= 0 || outer <= 0 {
			continue
		}

		ring, holes := circle(m.Center, outer), []int(nil)
		if inner > 0 {
			holes = []int{len(ring)}
			ring = append(ring, circle(m.Center, inner)...)
		}
		tris, err := earClip(ring, holes)
		if err != nil {
			return nil, fmt.Errorf("meshing %s marker outline: %w", m.Role, err)
		}
		shapes = append(shapes, Shape{Role: m.Role, Color: m.Stroke, Triangles: tris})
	}
	return shapes, nil
}

func strokeTriangles(st Stroke) ([][3]geom.Point, error) {
	line := dedupe(st.Points)
	if len(line) < 2 || st.Width <= 0 {
		return nil, nil
	}
	hw := st.Width / 2

	if closed(line) {
		outer, inner := offsets(line[:len(line)-1], hw, true)
		if area(outer) < area(inner) {
			outer, inner = inner, outer
		}
		return earClip(append(outer, inner...), []int{len(outer)})
	}

	lines := [][]geom.Point{line}
	if st.Dashed {
		lines = dash(line, dashLength, gapLength)
	}
	var tris [][3]geom.Point
	for _, l := range lines {
		if len(l) < 2 {
			continue
		}
		left, right := offsets(l, hw, false)
		for i, j := 0, len(right)-1; i < j; i, j = i+1, j-1 {
			right[i], right[j] = right[j], right[i]
		}
		t, err := earClip(append(left, right...), nil)
		if err != nil {
			return nil, err
		}
		tris = append(tris, t...)
	}
	return tris, nil
}

// offsets returns the polyline shifted hw to either side, with mitered
// joins. For closed lines the last point must not repeat the first.
func offsets(line []geom.Point, hw float64, isClosed bool) (left, right []geom.Point) {
	n := len(line)
	left, right = make([]geom.Point, n), make([]geom.Point, n)
	for i := range line {
		var in, out geom.Point
		switch {
		case isClosed:
			in = unit(line[i].Sub(line[(i-1+n)%n]))
			out = unit(line[(i+1)%n].Sub(line[i]))
		case i == 0:
			in = unit(line[1].Sub(line[0]))
			out = in
		case i == n-1:
			in = unit(line[n-1].Sub(line[n-2]))
			out = in
		default:
			in = unit(line[i].Sub(line[i-1]))
			out = unit(line[i+1].Sub(line[i]))
		}

		d := unit(in.Add(out))
		if d == (geom.Point{}) {
			d = out // the line doubles back on itself
		}
		scale := miterLimit
		if cos := geom.Dot(d, out); cos > 1/miterLimit {
			scale = 1 / cos
		}
		normal := geom.MakePoint(-d.Y, d.X).Scale(hw * scale)
		left[i], right[i] = line[i].Add(normal), line[i].Sub(normal)
	}
	return left, right
}

// dash splits a polyline into dashes of length on separated by gaps of
// length off.
func dash(line []geom.Point, on, off float64) [][]geom.Point {
	var out [][]geom.Point
	cur := []geom.Point{line[0]}
	drawing, left := true, on
	for i := 1; i < len(line); i++ {
		a, b := line[i-1], line[i]
		for seg := geom.Dist(a, b); seg > 0; {
			if seg < left {
				left -= seg
				if drawing {
					cur = append(cur, b)
				}
				break
			}
			p := a.Add(b.Sub(a).Scale(left / seg))
			if drawing {
				out = append(out, append(cur, p))
				cur = nil
			} else {
				cur = []geom.Point{p}
			}
			seg -= left
			a = p
			drawing = !drawing
			left = off
			if drawing {
				left = on
			}
		}
	}
	if drawing && len(cur) >= 2 {
		out = append(out, cur)
	}
	return out
}

func circle(c geom.Point, r float64) []geom.Point {
	out := make([]geom.Point, markerSegments)
	for i := range out {
		theta := 2 * math.Pi * float64(i) / markerSegments
		out[i] = geom.MakePoint(c.X+r*math.Cos(theta), c.Y+r*math.Sin(theta))
	}
	return out
}

func dedupe(ps []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(ps))
	for _, p := range ps {
		if len(out) > 0 && geom.Dist(out[len(out)-1], p) < geom.DefaultTolerance {
			continue
		}
		out = append(out, p)
	}
	return out
}

func closed(line []geom.Point) bool {
	return len(line) >= 4 && geom.Dist(line[0], line[len(line)-1]) < geom.DefaultTolerance
}

func unit(p geom.Point) geom.Point {
	l := math.Hypot(p.X, p.Y)
	if l == 0 {
		return geom.Point{}
	}
	return p.Scale(1 / l)
}

// earClip triangulates a polygon, optionally with holes starting at the given
// vertex indices, and winds every triangle the same way.
func earClip(polygon []geom.Point, holes []int) ([][3]geom.Point, error) {
	if len(polygon) < 3 {
		return nil, fmt.Errorf("degenerate polygon (%d vertices < 3)", len(polygon))
	}

	// Flat [x0, y0, x1, y1, ...] layout.
	coords := make([]float64, len(polygon)*2)
	for i, p := range polygon {
		coords[i*2], coords[i*2+1] = p.X, p.Y
	}

	indices, err := earcut.Earcut(coords, holes, 2 /* dim */)
	if err != nil {
		return nil, fmt.Errorf("triangulating %d-vertex polygon: %w", len(polygon), err)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("invalid triangle count (indices: %d, not divisible by 3)", len(indices))
	}

	tris := make([][3]geom.Point, len(indices)/3)
	for i := range tris {
		a, b, c := polygon[indices[3*i]], polygon[indices[3*i+1]], polygon[indices[3*i+2]]
		if cross(a, b, c) < 0 {
			b, c = c, b
		}
		tris[i] = [3]geom.Point{a, b, c}
	}
	return tris, nil
}

// area returns the unsigned area of a simple polygon.
func area(ps []geom.Point) float64 {
	var sum float64
	for i, p := range ps {
		q := ps[(i+1)%len(ps)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(sum) / 2
}

func cross(a, b, c geom.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
