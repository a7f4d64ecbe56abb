package driveline

import (
	"github.com/Faultbox/antarctica-export/pkg/math"
	"github.com/Faultbox/antarctica-export/pkg/report"
	"github.com/Faultbox/antarctica-export/pkg/scene"
)

// Navmesh is a parsed battle/soccer navigation mesh: quad faces with their
// adjacency, in engine space.
type Navmesh struct {
	Verts []math.Vec3
	Faces []NavFace
}

// NavFace is one navmesh quad. Adjacent holds the indices of the faces
// sharing an edge, padded with -1 up to four entries.
type NavFace struct {
	Indices  [4]int
	Adjacent [4]int
}

// ParseNavmesh extracts the navigation mesh of obj. Non-quad faces and
// overlapping faces are reported as errors and skipped; the remaining mesh is
// still returned.
func ParseNavmesh(obj *scene.Object, rep report.Func) *Navmesh {
	if obj.Mesh == nil {
		report.Errorf(rep, "unable to parse the navmesh '%s': no mesh data", obj.Name)
		return nil
	}

	world := obj.WorldMatrix()
	nm := &Navmesh{Verts: make([]math.Vec3, len(obj.Mesh.Vertices))}
	for i, v := range obj.Mesh.Vertices {
		nm.Verts[i] = scene.EnginePoint(world.TransformVec3(v))
	}

	// Map each edge to the faces using it.
	type edgeKey [2]int
	edgeFaces := make(map[edgeKey][]int)
	key := func(a, b int) edgeKey {
		if a > b {
			a, b = b, a
		}
		return edgeKey{a, b}
	}
	for fi, f := range obj.Mesh.Faces {
		for i := range f.Vertices {
			a := f.Vertices[i]
			b := f.Vertices[(i+1)%len(f.Vertices)]
			edgeFaces[key(a, b)] = append(edgeFaces[key(a, b)], fi)
		}
	}

	for fi, f := range obj.Mesh.Faces {
		if len(f.Vertices) != 4 {
			report.Errorf(rep, "the navmesh '%s' contains faces that do not form a quad", obj.Name)
			continue
		}

		face := NavFace{}
		copy(face.Indices[:], f.Vertices)

		n := 0
		for i := 0; i < 4; i++ {
			linked := edgeFaces[key(f.Vertices[i], f.Vertices[(i+1)%4])]
			switch {
			case len(linked) == 2:
				if n < 4 {
					other := linked[0]
					if other == fi {
						other = linked[1]
					}
					face.Adjacent[n] = other
					n++
				}
			case len(linked) < 2:
				continue
			default:
				report.Errorf(rep, "the navmesh '%s' has overlapping faces", obj.Name)
			}
		}
		for ; n < 4; n++ {
			face.Adjacent[n] = -1
		}

		nm.Faces = append(nm.Faces, face)
	}

	return nm
}
