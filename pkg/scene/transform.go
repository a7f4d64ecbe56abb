package scene

import (
	stdmath "math"

	"github.com/Faultbox/antarctica-export/pkg/math"
)

// Transform is an object's placement in engine space: right-handed Y-up,
// rotation as Euler XYZ angles in degrees.
type Transform struct {
	Location math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
}

const radToDeg = 180 / stdmath.Pi

// EnginePoint converts a point from editor space (Z-up) to engine space
// (Y-up) by swapping the Y and Z axes.
func EnginePoint(p math.Vec3) math.Vec3 {
	return math.Vec3{X: p.X, Y: p.Z, Z: p.Y}
}

// EngineTransform converts an object's editor-space placement to engine
// space. Translation and scale swap the Y and Z axes; rotation angles are
// negated and converted to degrees, with the Y and Z channels swapped, so
// the Euler result stays correct after the handedness change.
func EngineTransform(o *Object) Transform {
	return Transform{
		Location: EnginePoint(o.Location),
		Rotation: math.Vec3{
			X: -o.Rotation.X * radToDeg,
			Y: -o.Rotation.Z * radToDeg,
			Z: -o.Rotation.Y * radToDeg,
		},
		Scale: EnginePoint(o.Scale),
	}
}

// EditorTransform is the inverse of EngineTransform. It recovers the
// editor-space location, rotation (radians) and scale from an engine-space
// placement.
func EditorTransform(t Transform) (location, rotation, scale math.Vec3) {
	location = EnginePoint(t.Location)
	rotation = math.Vec3{
		X: -t.Rotation.X / radToDeg,
		Y: -t.Rotation.Z / radToDeg,
		Z: -t.Rotation.Y / radToDeg,
	}
	scale = EnginePoint(t.Scale)
	return location, rotation, scale
}

// WorldPoints transforms the mesh vertices of o into engine-space world
// coordinates. Returns nil when the object carries no mesh.
func WorldPoints(o *Object) []math.Vec3 {
	if o.Mesh == nil {
		return nil
	}
	m := o.WorldMatrix()
	points := make([]math.Vec3, len(o.Mesh.Vertices))
	for i, v := range o.Mesh.Vertices {
		points[i] = EnginePoint(m.TransformVec3(v))
	}
	return points
}
