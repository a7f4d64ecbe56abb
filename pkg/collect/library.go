package collect

import (
	"github.com/Faultbox/antarctica-export/pkg/anim"
	"github.com/Faultbox/antarctica-export/pkg/report"
	"github.com/Faultbox/antarctica-export/pkg/scene"
)

// LibraryNode is the classified scene of a library-node export. It shares the
// track record vocabulary, restricted to what a node may contain.
type LibraryNode struct {
	LODGroups      map[string][]*scene.Object
	Objects        []TrackObject
	Billboards     []Billboard
	Particles      []Particles
	AudioSources   []AudioSource
	ActionTriggers []ActionTrigger
	Lights         []PointLight
	FPS            float32
}

// Node classifies the scene snapshot for a library-node export. Validation
// follows the track collector: warnings skip the offending entity, the
// collection always completes.
func Node(s *scene.Scene, rep report.Func) *LibraryNode {
	n := &LibraryNode{
		LODGroups: make(map[string][]*scene.Object),
		FPS:       s.FPS,
	}
	used := make(map[string]bool)

	for _, obj := range s.Root.EnabledObjects() {
		if obj.Hidden() {
			continue
		}
		// Only accept proxies of nested library objects.
		if obj.Linked && !obj.Proxy {
			continue
		}

		if obj.Kind == scene.KindLight && obj.Light != nil {
			if obj.Light.Kind == scene.LightPoint {
				n.collectLight(obj, used, rep)
			}
			continue
		}
		if (obj.Kind != scene.KindMesh && obj.Kind != scene.KindEmpty) || obj.Library == nil {
			continue
		}

		props := obj.Library
		role := props.Role

		switch {
		case obj.Kind != scene.KindEmpty &&
			(role == scene.RoleObject || role == scene.RoleLODInstance || role == scene.RoleLODStandalone):
			n.collectObject(s, obj, used, rep)

		case obj.Kind != scene.KindEmpty && role == scene.RoleBillboard:
			n.collectBillboard(obj, used, rep)

		case role == scene.RoleParticles:
			if skipDuplicate(obj.Name, used, rep) {
				continue
			}
			n.Particles = append(n.Particles, Particles{
				ID:        obj.Name,
				Transform: scene.EngineTransform(obj),
				Animation: anim.Extract(obj, obj.Name, rep),
				File:      props.ParticlesFile,
				Distance:  props.ParticlesDistance,
				Emit:      props.ParticlesEmit,
				Condition: props.ParticlesCondition,
			})
			used[obj.Name] = true

		case role == scene.RoleSFX:
			if skipDuplicate(obj.Name, used, rep) {
				continue
			}
			trigger := float32(-1)
			if props.SFXTrigger {
				trigger = props.SFXTriggerDistance
			}
			n.AudioSources = append(n.AudioSources, AudioSource{
				ID:        obj.Name,
				Transform: scene.EngineTransform(obj),
				Animation: anim.Extract(obj, obj.Name, rep),
				File:      props.SFXFile,
				Volume:    props.SFXVolume,
				Rolloff:   props.SFXRolloff,
				Distance:  props.SFXDistance,
				Trigger:   trigger,
				Condition: props.SFXCondition,
			})
			used[obj.Name] = true

		case role == scene.RoleAction:
			if skipDuplicate(obj.Name, used, rep) {
				continue
			}
			n.ActionTriggers = append(n.ActionTriggers, ActionTrigger{
				ID:          obj.Name,
				Transform:   scene.EngineTransform(obj),
				Animation:   anim.Extract(obj, obj.Name, rep),
				Action:      props.Action,
				Distance:    props.ActionDistance,
				Height:      props.ActionHeight,
				Timeout:     props.ActionTimeout,
				Cylindrical: props.ActionTrigger == "cylinder",
				Object:      props.ActionObject,
			})
			used[obj.Name] = true
		}
	}

	return n
}

func (n *LibraryNode) collectObject(s *scene.Scene, obj *scene.Object,
	used map[string]bool, rep report.Func) {

	// Node objects share the track staging rules; reuse the track collector
	// on a scratch collection and move the result over.
	scratch := &SceneCollection{LODGroups: n.LODGroups}
	scratch.collectObject(s, obj, obj.Library, used, rep)
	n.Objects = append(n.Objects, scratch.StaticObjects...)
	n.Objects = append(n.Objects, scratch.DynamicObjects...)
}

func (n *LibraryNode) collectBillboard(obj *scene.Object, used map[string]bool, rep report.Func) {
	scratch := &SceneCollection{}
	scratch.collectBillboard(obj, obj.Library, used, rep)
	n.Billboards = append(n.Billboards, scratch.Billboards...)
}

func (n *LibraryNode) collectLight(obj *scene.Object, used map[string]bool, rep report.Func) {
	scratch := &SceneCollection{}
	scratch.collectLight(obj, used, rep)
	n.Lights = append(n.Lights, scratch.Lights...)
}
