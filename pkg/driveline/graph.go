package driveline

import (
	stdmath "math"

	"github.com/Faultbox/antarctica-export/pkg/math"
	"github.com/Faultbox/antarctica-export/pkg/report"
)

// Corner is one quad corner: either a literal point or a back-reference to a
// corner of an earlier quad.
type Corner struct {
	Point math.Vec3
	Ref   bool
	Quad  int
	Index int
}

// Quad is one navigation quad. Corner order is left/right of the leading row,
// then right/left of the trailing row, so corners 0,1 face corners 3,2 of the
// previous quad.
type Quad struct {
	Corners   [4]Corner
	Invisible bool
	AIIgnore  bool
}

// Span is a consecutive quad-index range [First, Last].
type Span struct {
	First, Last int
}

// Edge is one directed graph connection between quads.
type Edge struct {
	From, To int
}

// Graph is the assembled navigation structure backing quads.xml and
// graph.xml: the quad list, the main loop span, one span per branch driveline
// and the explicit edges stitching branches into the loop.
type Graph struct {
	Quads    []Quad
	MainLoop Span
	Branches []Span
	Edges    []Edge
}

// Strip couples a parsed driveline with the per-quad flags it contributes.
type Strip struct {
	Data      *Data
	Invisible bool
	AIIgnore  bool
}

func litCorner(p math.Vec3) Corner { return Corner{Point: p} }

func refCorner(quad, index int) Corner {
	return Corner{Ref: true, Quad: quad, Index: index}
}

// appendStrip converts one driveline's rails into quads. Quads after the
// first share their leading row with the previous quad's trailing row and
// reference it instead of repeating the coordinates. When closed, a final
// quad connects the last row back to the first.
func (g *Graph) appendStrip(s Strip, closed bool) Span {
	d := s.Data
	first := len(g.Quads)
	rows := d.Rows()

	for i := 0; i+1 < rows; i++ {
		q := Quad{Invisible: s.Invisible, AIIgnore: s.AIIgnore}
		if i == 0 {
			q.Corners[0] = litCorner(d.Left[i])
			q.Corners[1] = litCorner(d.Right[i])
		} else {
			prev := len(g.Quads) - 1
			q.Corners[0] = refCorner(prev, 3)
			q.Corners[1] = refCorner(prev, 2)
		}
		q.Corners[2] = litCorner(d.Right[i+1])
		q.Corners[3] = litCorner(d.Left[i+1])
		g.Quads = append(g.Quads, q)
	}

	if closed && len(g.Quads) > first {
		prev := len(g.Quads) - 1
		q := Quad{
			Corners: [4]Corner{
				refCorner(prev, 3),
				refCorner(prev, 2),
				refCorner(first, 1),
				refCorner(first, 0),
			},
			Invisible: s.Invisible,
			AIIgnore:  s.AIIgnore,
		}
		g.Quads = append(g.Quads, q)
	}

	return Span{First: first, Last: len(g.Quads) - 1}
}

// center returns the midpoint of a quad, resolving corner references.
func (g *Graph) center(qi int) math.Vec3 {
	var sum math.Vec3
	for _, c := range g.Quads[qi].Corners {
		for c.Ref {
			c = g.Quads[c.Quad].Corners[c.Index]
		}
		sum = sum.Add(c.Point)
	}
	return sum.Scale(0.25)
}

// nearest returns the quad in span closest to p.
func (g *Graph) nearest(span Span, p math.Vec3) int {
	best := span.First
	bestDist := float32(stdmath.MaxFloat32)
	for qi := span.First; qi <= span.Last; qi++ {
		if d := g.center(qi).Distance(p); d < bestDist {
			best = qi
			bestDist = d
		}
	}
	return best
}

// Build assembles the navigation graph from the ordered drivelines. The main
// driveline becomes a closed quad loop; every additional driveline becomes an
// open branch strip connected to the loop at the quads nearest to its start
// and end points.
func Build(main Strip, branches []Strip, rep report.Func) *Graph {
	g := &Graph{}
	if main.Data == nil || main.Data.Rows() < 2 {
		report.Errorf(rep, "cannot build the navigation graph: no usable main driveline")
		return g
	}

	g.MainLoop = g.appendStrip(main, true)

	for _, b := range branches {
		if b.Data == nil || b.Data.Rows() < 2 {
			report.Warnf(rep, "skipping an unusable branch driveline")
			continue
		}
		span := g.appendStrip(b, false)
		g.Branches = append(g.Branches, span)

		in := g.nearest(g.MainLoop, b.Data.Access)
		out := g.nearest(g.MainLoop, b.Data.End)
		g.Edges = append(g.Edges,
			Edge{From: in, To: span.First},
			Edge{From: span.Last, To: out},
		)
	}

	return g
}
