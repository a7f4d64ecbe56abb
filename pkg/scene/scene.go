// Package scene defines the editor scene snapshot consumed by the exporters.
// A snapshot is a tree of collections holding objects with resolved world
// transforms, role property bags, mesh/curve data and animation bindings. The
// host application (or the YAML loader in this package) produces it; the
// collect package consumes it.
package scene

import (
	"github.com/Faultbox/antarctica-export/pkg/math"
)

// ObjectKind is the underlying data type of a scene object.
type ObjectKind string

const (
	KindMesh   ObjectKind = "mesh"
	KindEmpty  ObjectKind = "empty"
	KindLight  ObjectKind = "light"
	KindCamera ObjectKind = "camera"
	KindCurve  ObjectKind = "curve"
)

// RotationMode is the rotation representation of an object.
type RotationMode string

const (
	RotationEulerXYZ  RotationMode = "XYZ"
	RotationEulerXZY  RotationMode = "XZY"
	RotationEulerYXZ  RotationMode = "YXZ"
	RotationEulerYZX  RotationMode = "YZX"
	RotationEulerZXY  RotationMode = "ZXY"
	RotationEulerZYX  RotationMode = "ZYX"
	RotationQuat      RotationMode = "QUATERNION"
	RotationAxisAngle RotationMode = "AXIS_ANGLE"
)

// Euler reports whether the mode is any Euler order.
func (m RotationMode) Euler() bool {
	return m != RotationQuat && m != RotationAxisAngle
}

// Scene is a complete editor scene snapshot.
type Scene struct {
	Root      *Collection `yaml:"root"`
	Settings  Settings    `yaml:"settings"`
	Materials []Material  `yaml:"materials"`
	FPS       float32     `yaml:"fps"` // Animation playback speed (frames per second)
}

// Collection is a nested group of objects. A collection hidden in the
// viewport or for rendering is skipped with its whole subtree.
type Collection struct {
	Name         string        `yaml:"name"`
	HideViewport bool          `yaml:"hide_viewport"`
	HideRender   bool          `yaml:"hide_render"`
	Objects      []*Object     `yaml:"objects"`
	Children     []*Collection `yaml:"children"`
}

// Enabled reports whether the collection participates in an export.
func (c *Collection) Enabled() bool {
	return !c.HideViewport && !c.HideRender
}

// EnabledObjects flattens the enabled collection tree into one object list.
// Traversal is depth-first in declaration order; this order is the
// determinism contract for everything derived from it (quad indices, graph
// node numbering, file output).
func (c *Collection) EnabledObjects() []*Object {
	if c == nil || !c.Enabled() {
		return nil
	}
	objects := make([]*Object, 0, len(c.Objects))
	objects = append(objects, c.Objects...)
	for _, child := range c.Children {
		objects = append(objects, child.EnabledObjects()...)
	}
	return objects
}

// Object is one scene object with a resolved world transform.
type Object struct {
	Name         string       `yaml:"name"`
	Kind         ObjectKind   `yaml:"kind"`
	HideViewport bool         `yaml:"hide_viewport"`
	HideRender   bool         `yaml:"hide_render"`
	Linked       bool         `yaml:"linked"` // Direct linked-library reference (not exported)
	Proxy        bool         `yaml:"proxy"`  // Local proxy of a library object
	Location     math.Vec3    `yaml:"location"`
	Rotation     math.Vec3    `yaml:"rotation"` // Euler angles in radians (editor convention)
	Scale        math.Vec3    `yaml:"scale"`
	RotationMode RotationMode `yaml:"rotation_mode"`
	Dimensions   math.Vec3    `yaml:"dimensions"` // World-space bounding box extents
	ParentBone   string       `yaml:"parent_bone"`
	Armature     bool         `yaml:"armature"` // Object is skeletal-animated

	Mesh      *Mesh          `yaml:"mesh"`
	Curve     *Curve         `yaml:"curve"`
	Animation *AnimationData `yaml:"animation"`
	Materials []string       `yaml:"materials"` // Material slot names, face material by index

	Track   *TrackProps   `yaml:"track"`
	Library *LibraryProps `yaml:"library"`
	Kart    *KartProps    `yaml:"kart"`
	Light   *LightProps   `yaml:"light"`
	Camera  *CameraProps  `yaml:"camera"`
}

// Hidden reports whether the object is individually disabled.
func (o *Object) Hidden() bool {
	return o.HideViewport || o.HideRender
}

// WorldMatrix composes the object's world transform in editor space.
// Euler rotation is applied X, then Y, then Z.
func (o *Object) WorldMatrix() math.Mat4 {
	t := math.Translate(o.Location.X, o.Location.Y, o.Location.Z)
	r := math.RotateZ(o.Rotation.Z).Mul(math.RotateY(o.Rotation.Y)).Mul(math.RotateX(o.Rotation.X))
	s := math.Scale(o.Scale.X, o.Scale.Y, o.Scale.Z)
	return t.Mul(r).Mul(s)
}

// Animated reports whether the object has an animation action bound.
func (o *Object) Animated() bool {
	return o.Animation != nil && len(o.Animation.Curves) > 0
}

// Mesh holds object-local geometry.
type Mesh struct {
	Vertices []math.Vec3 `yaml:"vertices"`
	Normals  []math.Vec3 `yaml:"normals"` // Per-vertex normals
	Faces    []Face      `yaml:"faces"`
	Edges    [][2]int    `yaml:"edges"`
}

// Face is a polygon referencing mesh vertices by index.
type Face struct {
	Vertices      []int `yaml:"vertices"`
	MaterialIndex int   `yaml:"material_index"`
}

// Curve is a 3D bezier curve backing cannon paths.
type Curve struct {
	Points []CurvePoint `yaml:"points"`
	Cyclic bool         `yaml:"cyclic"`
}

// CurvePoint is a bezier control point with its two handles.
type CurvePoint struct {
	Co          math.Vec3 `yaml:"co"`
	HandleLeft  math.Vec3 `yaml:"handle_left"`
	HandleRight math.Vec3 `yaml:"handle_right"`
}

// Material maps a material name to its main texture file.
type Material struct {
	Name    string `yaml:"name"`
	Texture string `yaml:"texture"` // Output texture filename (png/jpg)
	Shader  string `yaml:"shader"`  // Engine shader name, empty for default
}
