package anim

import (
	"strings"
	"testing"

	"github.com/Faultbox/antarctica-export/pkg/math"
	"github.com/Faultbox/antarctica-export/pkg/report"
	"github.com/Faultbox/antarctica-export/pkg/scene"
)

func key(frame, value float32, interp scene.Interpolation) scene.Keyframe {
	return scene.Keyframe{
		Co:            math.Vec2{X: frame, Y: value},
		HandleLeft:    math.Vec2{X: frame - 1, Y: value},
		HandleRight:   math.Vec2{X: frame + 1, Y: value},
		Interpolation: interp,
	}
}

func animated(mode scene.RotationMode, curves ...scene.FCurve) *scene.Object {
	return &scene.Object{
		Name:         "obj",
		RotationMode: mode,
		Animation:    &scene.AnimationData{Name: "action", Curves: curves},
	}
}

func TestExtractNoAction(t *testing.T) {
	o := &scene.Object{Name: "static", RotationMode: scene.RotationEulerXYZ}
	if a := Extract(o, "static", report.Discard); a != nil {
		t.Errorf("got %+v, want nil for an object without animation", a)
	}
}

func TestExtractChannelRemap(t *testing.T) {
	o := animated(scene.RotationEulerXYZ,
		scene.FCurve{Path: scene.PathLocation, ArrayIndex: 1, Keyframes: []scene.Keyframe{
			key(1, 4, scene.InterpLinear),
		}},
		scene.FCurve{Path: scene.PathScale, ArrayIndex: 2, Keyframes: []scene.Keyframe{
			key(1, 2, scene.InterpConstant),
		}},
	)
	a := Extract(o, "obj", report.Discard)
	if a == nil || len(a.Curves) != 2 {
		t.Fatalf("got %+v, want 2 curves", a)
	}
	if a.Curves[0].Channel != "LocZ" {
		t.Errorf("channel = %q, want LocZ (editor Y maps to engine Z)", a.Curves[0].Channel)
	}
	if a.Curves[1].Channel != "ScaleY" {
		t.Errorf("channel = %q, want ScaleY (editor Z maps to engine Y)", a.Curves[1].Channel)
	}
	if a.Curves[0].Interpolation != InterpLinear || a.Curves[1].Interpolation != InterpConst {
		t.Errorf("interpolations = %q, %q", a.Curves[0].Interpolation, a.Curves[1].Interpolation)
	}
}

func TestExtractRotationDegrees(t *testing.T) {
	o := animated(scene.RotationEulerXYZ,
		scene.FCurve{Path: scene.PathRotation, ArrayIndex: 0, Keyframes: []scene.Keyframe{
			key(1, 1, scene.InterpLinear),
		}},
	)
	a := Extract(o, "obj", report.Discard)
	if a == nil || len(a.Curves) != 1 {
		t.Fatalf("got %+v, want 1 curve", a)
	}
	got := a.Curves[0].Points[0].Value
	if got < -57.2958 || got > -57.2957 {
		t.Errorf("1 rad exported as %v, want about -57.29578 degrees", got)
	}
}

func TestExtractMixedInterpolation(t *testing.T) {
	o := animated(scene.RotationEulerXYZ,
		scene.FCurve{Path: scene.PathLocation, ArrayIndex: 0, Keyframes: []scene.Keyframe{
			key(1, 0, scene.InterpLinear),
			key(10, 5, scene.InterpBezier),
		}},
	)
	var log report.Log
	a := Extract(o, "obj", log.Func())
	if a == nil || a.Curves[0].Interpolation != InterpBezier {
		t.Fatalf("mixed curve should fall back to bezier, got %+v", a)
	}
	if log.Warnings() != 1 {
		t.Errorf("warnings = %d, want 1", log.Warnings())
	}
	// The linear keyframe degrades to handles on the point itself.
	p := a.Curves[0].Points[0]
	if p.H1.X != p.Frame || p.H1.Y != p.Value || p.H2.X != p.Frame || p.H2.Y != p.Value {
		t.Errorf("degraded handles = %+v", p)
	}
}

func TestExtractQuaternionError(t *testing.T) {
	o := animated(scene.RotationQuat,
		scene.FCurve{Path: scene.PathLocation, ArrayIndex: 0, Keyframes: []scene.Keyframe{
			key(1, 0, scene.InterpLinear),
		}},
	)
	var log report.Log
	if a := Extract(o, "obj", log.Func()); a != nil {
		t.Errorf("got %+v, want nil for quaternion rotation mode", a)
	}
	if log.Errors() != 1 {
		t.Fatalf("errors = %d, want 1", log.Errors())
	}
	if !strings.Contains(log.Messages[0].Text, "QUATERNION") {
		t.Errorf("message %q should name the rotation mode", log.Messages[0].Text)
	}
}

func TestExtractNonXYZWarning(t *testing.T) {
	o := animated(scene.RotationEulerXZY,
		scene.FCurve{Path: scene.PathLocation, ArrayIndex: 0, Keyframes: []scene.Keyframe{
			key(1, 0, scene.InterpLinear),
		}},
	)
	var log report.Log
	a := Extract(o, "obj", log.Func())
	if a == nil {
		t.Fatal("non-XYZ Euler order must still export")
	}
	if log.Warnings() != 1 {
		t.Errorf("warnings = %d, want 1", log.Warnings())
	}
}

func TestExtractCyclic(t *testing.T) {
	o := animated(scene.RotationEulerXYZ,
		scene.FCurve{Path: scene.PathLocation, ArrayIndex: 0, Cyclic: true, Keyframes: []scene.Keyframe{
			key(1, 0, scene.InterpLinear),
		}},
	)
	a := Extract(o, "obj", report.Discard)
	if a.Curves[0].Extend != ExtendCyclic {
		t.Errorf("extend = %q, want cyclic", a.Curves[0].Extend)
	}
}
