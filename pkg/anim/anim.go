// Package anim extracts engine animation curves from an object's bound
// action. Editor channels are remapped into the engine's axis convention and
// rotation values converted to degrees; the result is a flat curve list ready
// for serialization.
package anim

import (
	"github.com/Faultbox/antarctica-export/pkg/math"
	"github.com/Faultbox/antarctica-export/pkg/report"
	"github.com/Faultbox/antarctica-export/pkg/scene"
)

// Interpolation of a whole exported curve.
const (
	InterpConst  = "const"
	InterpLinear = "linear"
	InterpBezier = "bezier"
)

// Extrapolation past the last keyframe.
const (
	ExtendConst  = "const"
	ExtendCyclic = "cyclic"
)

// Rotation channels are negated on top of the degree conversion so the
// angles stay correct after the axis swap.
const rotationFactor = -57.2957795131

// Animation is the extracted, engine-space animation of one object.
type Animation struct {
	Curves []Curve
}

// Curve is one exported animation channel.
type Curve struct {
	Channel       string // LocX, RotZ, ScaleY...
	Interpolation string
	Extend        string
	Points        []Point
}

// Point is one exported keyframe. H1 and H2 carry the bezier handles; for
// constant and linear keyframes they degrade to the point itself.
type Point struct {
	Frame float32
	Value float32
	H1    math.Vec2
	H2    math.Vec2
}

// Engine channel prefixes, indexed by editor array index after the Y/Z swap.
var channelAxes = [3]string{"X", "Z", "Y"}

// Extract converts the action bound to obj into engine animation curves.
// Returns nil when no action is bound, or when the object's rotation mode
// cannot be represented (reported as an error). A non-XYZ Euler order is
// reported as a warning but still exported.
func Extract(obj *scene.Object, id string, rep report.Func) *Animation {
	if obj.Animation == nil || len(obj.Animation.Curves) == 0 {
		return nil
	}

	if !obj.RotationMode.Euler() {
		report.Errorf(rep, "object '%s': rotation mode '%s' is not supported, animation curves "+
			"cannot be exported; use the XYZ Euler rotation mode for animated objects", id, obj.RotationMode)
		return nil
	}
	if obj.RotationMode != scene.RotationEulerXYZ {
		report.Warnf(rep, "object '%s': rotation order '%s' should be XYZ, the animation will "+
			"likely look different in-game", id, obj.RotationMode)
	}

	a := &Animation{}
	for _, fc := range obj.Animation.Curves {
		if fc.ArrayIndex < 0 || fc.ArrayIndex > 2 {
			report.Warnf(rep, "object '%s': animation curve index %d out of range", id, fc.ArrayIndex)
			continue
		}

		factor := float32(1)
		var channel string
		switch fc.Path {
		case scene.PathLocation:
			channel = "Loc" + channelAxes[fc.ArrayIndex]
		case scene.PathRotation:
			channel = "Rot" + channelAxes[fc.ArrayIndex]
			factor = rotationFactor
		case scene.PathScale:
			channel = "Scale" + channelAxes[fc.ArrayIndex]
		default:
			report.Warnf(rep, "object '%s': unknown animation curve type '%s'", id, fc.Path)
			continue
		}

		c := Curve{
			Channel:       channel,
			Interpolation: InterpConst,
			Extend:        ExtendConst,
		}
		if fc.Cyclic {
			c.Extend = ExtendCyclic
		}

		mixed := false
		for i, kp := range fc.Keyframes {
			switch kp.Interpolation {
			case scene.InterpConstant, scene.InterpLinear:
				if c.Interpolation == InterpBezier {
					mixed = true
				} else if kp.Interpolation == scene.InterpLinear {
					c.Interpolation = InterpLinear
					mixed = mixed || i > 0
				}
				// Handles degrade to the keyframe point.
				c.Points = append(c.Points, Point{
					Frame: kp.Co.X,
					Value: kp.Co.Y * factor,
					H1:    math.Vec2{X: kp.Co.X, Y: kp.Co.Y * factor},
					H2:    math.Vec2{X: kp.Co.X, Y: kp.Co.Y * factor},
				})
			default:
				// Bezier is the fallback for every smoothed mode.
				if c.Interpolation != InterpBezier {
					c.Interpolation = InterpBezier
					mixed = mixed || i > 0
				}
				c.Points = append(c.Points, Point{
					Frame: kp.Co.X,
					Value: kp.Co.Y * factor,
					H1:    math.Vec2{X: kp.HandleLeft.X, Y: kp.HandleLeft.Y * factor},
					H2:    math.Vec2{X: kp.HandleRight.X, Y: kp.HandleRight.Y * factor},
				})
			}
		}

		if mixed {
			report.Warnf(rep, "object '%s': animation curve '%s' mixes keyframe interpolation "+
				"modes; a curve must use constant, linear or bezier consistently", id, channel)
		}
		a.Curves = append(a.Curves, c)
	}

	if len(a.Curves) == 0 {
		return nil
	}
	return a
}
