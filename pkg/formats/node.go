package formats

import (
	"io"

	"github.com/Faultbox/antarctica-export/pkg/collect"
	"github.com/Faultbox/antarctica-export/pkg/scene"
)

// WriteNode serializes a library node. The document is a reduced scene file,
// so the track section writers are reused over a collection view of the node.
// Validation happened at collect time; serialization itself cannot fail
// except on writer errors.
func WriteNode(w io.Writer, s *scene.Scene, n *collect.LibraryNode) error {
	view := &collect.SceneCollection{
		LODGroups:      n.LODGroups,
		DynamicObjects: n.Objects,
		Billboards:     n.Billboards,
		Particles:      n.Particles,
		AudioSources:   n.AudioSources,
		ActionTriggers: n.ActionTriggers,
		Lights:         n.Lights,
		FPS:            n.FPS,
	}

	f := newXMLFile(w)
	f.open("<scene>")

	f.writeLOD(view)
	f.writeDynamicObjects(view)
	f.writeBillboards(s, view)
	f.writeActionTriggers(view)
	f.writeAudioSources(view)
	f.writeParticles(view)
	f.writeLights(view)

	f.close("scene")
	return f.err
}
