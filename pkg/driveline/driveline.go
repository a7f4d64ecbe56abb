// Package driveline parses drivable-path meshes into ordered quad strips and
// builds the navigation graph consumed by the engine. A driveline mesh is a
// ladder of quads with two single-edge antenna vertices marking the start; the
// parser walks both rails from there.
package driveline

import (
	"github.com/Faultbox/antarctica-export/pkg/math"
	"github.com/Faultbox/antarctica-export/pkg/report"
	"github.com/Faultbox/antarctica-export/pkg/scene"
)

// Data is one parsed driveline in engine space. Left and Right hold the rail
// vertices row by row, Mid the per-quad center points.
type Data struct {
	Left  []math.Vec3
	Right []math.Vec3
	Mid   []math.Vec3

	Start  math.Vec3 // Midpoint of the first row
	End    math.Vec3 // Midpoint of the last row
	Access math.Vec3 // Midpoint of the antenna vertices
}

// Rows returns the number of vertex rows on the rails.
func (d *Data) Rows() int {
	return len(d.Left)
}

// mesh adjacency helper for the rail walk
type meshTopo struct {
	mesh      *scene.Mesh
	vertEdges [][]int // Edge indices linked to each vertex
}

func newMeshTopo(m *scene.Mesh) *meshTopo {
	t := &meshTopo{mesh: m, vertEdges: make([][]int, len(m.Vertices))}
	for i, e := range m.Edges {
		t.vertEdges[e[0]] = append(t.vertEdges[e[0]], i)
		t.vertEdges[e[1]] = append(t.vertEdges[e[1]], i)
	}
	return t
}

func (t *meshTopo) otherVert(edge, vert int) int {
	e := t.mesh.Edges[edge]
	if e[0] == vert {
		return e[1]
	}
	return e[0]
}

func (t *meshTopo) linked(vert, edge int) bool {
	for _, e := range t.vertEdges[vert] {
		if e == edge {
			return true
		}
	}
	return false
}

// Parse walks the driveline mesh of obj and extracts its rails. The two
// vertices with exactly one linked edge are the start antennas; from their
// far ends both rails are walked in lockstep while the rail vertices keep
// exactly three linked edges. Returns nil and reports an error when no start
// quad can be located.
func Parse(obj *scene.Object, rep report.Func) *Data {
	if obj.Mesh == nil || len(obj.Mesh.Edges) == 0 {
		report.Errorf(rep, "unable to parse the driveline '%s': no edge data", obj.Name)
		return nil
	}

	topo := newMeshTopo(obj.Mesh)

	var antennas []int // Edge indices
	var startVerts []int
	for v := range obj.Mesh.Vertices {
		if len(topo.vertEdges[v]) == 1 {
			e := topo.vertEdges[v][0]
			antennas = append(antennas, e)
			startVerts = append(startVerts, topo.otherVert(e, v))
		}
	}
	if len(antennas) != 2 {
		report.Errorf(rep, "unable to locate the start of the driveline '%s': expected two "+
			"antenna vertices, found %d", obj.Name, len(antennas))
		return nil
	}

	lPrev, rPrev := antennas[0], antennas[1]
	lVerts := []int{startVerts[0]}
	rVerts := []int{startVerts[1]}
	var mids []math.Vec3

	co := func(v int) math.Vec3 { return obj.Mesh.Vertices[v] }

	for len(topo.vertEdges[lVerts[len(lVerts)-1]]) == 3 && len(topo.vertEdges[rVerts[len(rVerts)-1]]) == 3 {
		lLast := lVerts[len(lVerts)-1]
		rLast := rVerts[len(rVerts)-1]

		advanced := false
		for _, e := range topo.vertEdges[lLast] {
			if e != lPrev && !topo.linked(rLast, e) {
				lVerts = append(lVerts, topo.otherVert(e, lLast))
				lPrev = e
				advanced = true
				break
			}
		}
		if !advanced {
			break
		}

		// The right rail must not cross over to the row just left behind.
		prevLeft := lVerts[len(lVerts)-2]
		advanced = false
		for _, e := range topo.vertEdges[rLast] {
			if e != rPrev && !topo.linked(prevLeft, e) {
				rVerts = append(rVerts, topo.otherVert(e, rLast))
				rPrev = e
				advanced = true
				break
			}
		}
		if !advanced {
			break
		}

		l0, l1 := co(lVerts[len(lVerts)-2]), co(lVerts[len(lVerts)-1])
		r0, r1 := co(rVerts[len(rVerts)-2]), co(rVerts[len(rVerts)-1])
		mids = append(mids, l0.Add(l1).Add(r0).Add(r1).Scale(0.25))
	}

	if len(lVerts) != len(rVerts) {
		report.Warnf(rep, "the driveline '%s' has an invalid shape and will probably not "+
			"work correctly in-game", obj.Name)
	}

	world := obj.WorldMatrix()
	engine := func(p math.Vec3) math.Vec3 {
		return scene.EnginePoint(world.TransformVec3(p))
	}

	d := &Data{
		Left:  make([]math.Vec3, len(lVerts)),
		Right: make([]math.Vec3, len(rVerts)),
		Mid:   make([]math.Vec3, len(mids)),
	}
	for i, v := range lVerts {
		d.Left[i] = engine(co(v))
	}
	for i, v := range rVerts {
		d.Right[i] = engine(co(v))
	}
	for i, m := range mids {
		d.Mid[i] = engine(m)
	}
	d.Start = engine(co(lVerts[0]).Add(co(rVerts[0])).Scale(0.5))
	d.End = engine(co(lVerts[len(lVerts)-1]).Add(co(rVerts[len(rVerts)-1])).Scale(0.5))
	d.Access = engine(co(startVerts[0]).Add(co(startVerts[1])).Scale(0.5))

	return d
}

// Merge appends b onto a, inserting the connecting quad midpoint between
// their midpoint runs.
func Merge(a, b *Data) *Data {
	connect := a.Left[len(a.Left)-1].
		Add(a.Right[len(a.Right)-1]).
		Add(b.Left[0]).
		Add(b.Right[0]).Scale(0.25)

	mid := make([]math.Vec3, 0, len(a.Mid)+len(b.Mid)+1)
	mid = append(mid, a.Mid...)
	mid = append(mid, connect)
	mid = append(mid, b.Mid...)

	return &Data{
		Left:   append(append([]math.Vec3{}, a.Left...), b.Left...),
		Right:  append(append([]math.Vec3{}, a.Right...), b.Right...),
		Mid:    mid,
		Start:  a.Start,
		End:    b.End,
		Access: a.Access,
	}
}
