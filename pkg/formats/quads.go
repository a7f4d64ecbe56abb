package formats

import (
	"io"

	"github.com/Faultbox/antarctica-export/pkg/driveline"
)

// WriteQuads serializes the navigation quad strip. Corners shared with an
// earlier quad are written as "quad-index:corner-index" back-references
// instead of repeating coordinates.
func WriteQuads(w io.Writer, g *driveline.Graph) error {
	f := newXMLFile(w)
	f.open("<quads>")

	for _, q := range g.Quads {
		attrs := ""
		for i, c := range q.Corners {
			if i > 0 {
				attrs += " "
			}
			if c.Ref {
				attrs += "p" + itoa(i) + "=\"" + itoa(c.Quad) + ":" + itoa(c.Index) + "\""
			} else {
				attrs += "p" + itoa(i) + "=\"" + f2(c.Point.X) + " " + f2(c.Point.Y) + " " + f2(c.Point.Z) + "\""
			}
		}
		if q.Invisible {
			attrs += " invisible=\"y\""
		}
		if q.AIIgnore {
			attrs += " ai-ignore=\"y\""
		}
		f.line("<quad %s/>", attrs)
	}

	f.close("quads")
	return f.err
}

// WriteGraph serializes the directed navigation graph over the quad indices:
// the closed main loop, one edge-line per branch strip and the explicit
// edges stitching branches into the loop.
func WriteGraph(w io.Writer, g *driveline.Graph) error {
	f := newXMLFile(w)
	f.open("<graph>")

	f.line("<node-list from-quad=\"0\" to-quad=\"%d\"/>", len(g.Quads)-1)
	if g.MainLoop.Last >= g.MainLoop.First {
		f.line("<edge-loop from=\"%d\" to=\"%d\"/>", g.MainLoop.First, g.MainLoop.Last)
	}
	for _, span := range g.Branches {
		f.line("<edge-line from=\"%d\" to=\"%d\"/>", span.First, span.Last)
	}
	for _, e := range g.Edges {
		f.line("<edge from=\"%d\" to=\"%d\"/>", e.From, e.To)
	}

	f.close("graph")
	return f.err
}

// WriteNavmesh serializes the battle/soccer navigation mesh as a vertex list
// followed by quad faces with their adjacency.
func WriteNavmesh(w io.Writer, nm *driveline.Navmesh) error {
	f := newXMLFile(w)
	f.open("<navmesh>")

	f.line("<MaxVertsPerPoly nb=\"4\"/>")
	f.open("<vertices number=\"%d\">", len(nm.Verts))
	for _, v := range nm.Verts {
		f.line("<vertex x=\"%s\" y=\"%s\" z=\"%s\"/>", f2(v.X), f2(v.Y), f2(v.Z))
	}
	f.close("vertices")

	f.open("<faces number=\"%d\">", len(nm.Faces))
	for _, face := range nm.Faces {
		f.line("<face indices=\"%d %d %d %d\" adjacents=\"%d %d %d %d\"/>",
			face.Indices[0], face.Indices[1], face.Indices[2], face.Indices[3],
			face.Adjacent[0], face.Adjacent[1], face.Adjacent[2], face.Adjacent[3])
	}
	f.close("faces")

	f.close("navmesh")
	return f.err
}
