package collect

import (
	"github.com/Faultbox/antarctica-export/pkg/report"
	"github.com/Faultbox/antarctica-export/pkg/scene"
)

// SpeedWeighted is a kart attachment whose animation weight follows speed.
type SpeedWeighted struct {
	Name     string
	Object   *scene.Object
	Strength float32 // <0 disables the speed-weight strength
	Speed    float32 // Animation speed multiplier, <0 disables
	UVSpeedU float32
	UVSpeedV float32
}

// Instanced is a named kart attachment object.
type Instanced struct {
	Name   string
	Object *scene.Object
}

// KartCollection is the classified scene of a kart export. Kart scenes are
// small and structurally different from tracks, so the buckets stay plain
// object lists.
type KartCollection struct {
	Objects       []*scene.Object // Chassis model
	Wheels        []*scene.Object
	SpeedWeighted []SpeedWeighted
	NitroEmitters []scene.Transform
	Headlights    []Instanced
	Hat           *scene.Object
	FPS           float32
}

// Kart classifies the scene snapshot for a kart export. A wheel count other
// than four is reported as an error; the collection is still returned with
// the wheels found, so the caller can produce a best-effort file.
func Kart(s *scene.Scene, rep report.Func) *KartCollection {
	c := &KartCollection{FPS: s.FPS}
	used := make(map[string]bool)

	for _, obj := range s.Root.EnabledObjects() {
		if obj.Hidden() {
			continue
		}
		if (obj.Kind != scene.KindMesh && obj.Kind != scene.KindEmpty) || obj.Kart == nil {
			continue
		}
		// Library object proxies are not part of the kart model.
		if obj.Proxy {
			continue
		}

		props := obj.Kart
		switch {
		case obj.Kind != scene.KindEmpty && props.Role == scene.KartRoleNone:
			c.Objects = append(c.Objects, obj)

		case obj.Kind != scene.KindEmpty && props.Role == scene.KartRoleWheel:
			if len(c.Wheels) >= 4 {
				report.Warnf(rep, "more than four wheels found in scene; the wheel '%s' has "+
					"been ignored", obj.Name)
				continue
			}
			c.Wheels = append(c.Wheels, obj)

		case obj.Kind != scene.KindEmpty && props.Role == scene.KartRoleSpeedWeighted:
			name := props.Name
			if name == "" {
				name = obj.Name
			}
			if skipDuplicate(name, used, rep) {
				continue
			}

			strength := float32(0.05)
			speed := float32(1)
			switch props.Strength {
			case "disable":
				strength = -1
			case "custom":
				strength = props.StrengthFactor
			}
			switch props.Speed {
			case "disable":
				speed = -1
			case "custom":
				speed = props.SpeedFactor
			}

			c.SpeedWeighted = append(c.SpeedWeighted, SpeedWeighted{
				Name:     name,
				Object:   obj,
				Strength: strength,
				Speed:    speed,
				UVSpeedU: props.UVSpeedU,
				UVSpeedV: props.UVSpeedV,
			})
			used[name] = true

		case props.Role == scene.KartRoleNitroEmitter:
			if len(c.NitroEmitters) >= 2 {
				report.Warnf(rep, "more than two nitro emitters found in scene; the emitter "+
					"'%s' has been ignored", obj.Name)
				continue
			}
			c.NitroEmitters = append(c.NitroEmitters, scene.EngineTransform(obj))

		case obj.Kind != scene.KindEmpty && props.Role == scene.KartRoleHeadlight:
			name := props.Name
			if name == "" {
				name = obj.Name
			}
			if skipDuplicate(name, used, rep) {
				continue
			}
			c.Headlights = append(c.Headlights, Instanced{Name: name, Object: obj})
			used[name] = true

		case props.Role == scene.KartRoleHat:
			if c.Hat != nil {
				report.Warnf(rep, "multiple hat positioners found in scene; the object '%s' "+
					"has been ignored", obj.Name)
				continue
			}
			c.Hat = obj
		}
	}

	if len(c.Wheels) != 4 {
		report.Errorf(rep, "a kart must have 4 wheels specified, found %d", len(c.Wheels))
	}

	return c
}

// WheelOrder returns the wheels sorted front-left, front-right, rear-left,
// rear-right by their position quadrant. Missing quadrants stay nil.
func (c *KartCollection) WheelOrder() [4]*scene.Object {
	var ordered [4]*scene.Object
	for _, w := range c.Wheels {
		front := w.Location.Y > 0 // Editor forward axis
		left := w.Location.X < 0
		switch {
		case front && left:
			ordered[0] = w
		case front && !left:
			ordered[1] = w
		case !front && left:
			ordered[2] = w
		default:
			ordered[3] = w
		}
	}
	return ordered
}
