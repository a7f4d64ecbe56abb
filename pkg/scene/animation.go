package scene

import "github.com/Faultbox/antarctica-export/pkg/math"

// Interpolation is the keyframe interpolation mode of an F-curve segment.
type Interpolation string

const (
	InterpConstant Interpolation = "CONSTANT"
	InterpLinear   Interpolation = "LINEAR"
	InterpBezier   Interpolation = "BEZIER"
)

// ChannelPath identifies which transform channel an F-curve animates.
type ChannelPath string

const (
	PathLocation ChannelPath = "location"
	PathRotation ChannelPath = "rotation_euler"
	PathScale    ChannelPath = "scale"
)

// AnimationData is the action bound to an object: a set of F-curves over
// transform channels.
type AnimationData struct {
	Name   string   `yaml:"name"` // Action name
	Curves []FCurve `yaml:"curves"`
}

// FCurve animates one component of one transform channel.
type FCurve struct {
	Path       ChannelPath `yaml:"path"`
	ArrayIndex int         `yaml:"array_index"` // 0=X 1=Y 2=Z in editor space
	Keyframes  []Keyframe  `yaml:"keyframes"`
	Cyclic     bool        `yaml:"cyclic"` // Repeats past the last keyframe
}

// Keyframe is one control point of an F-curve. Co.X is the frame number,
// Co.Y the channel value. The handles are only meaningful for bezier
// interpolation.
type Keyframe struct {
	Co            math.Vec2     `yaml:"co"`
	HandleLeft    math.Vec2     `yaml:"handle_left"`
	HandleRight   math.Vec2     `yaml:"handle_right"`
	Interpolation Interpolation `yaml:"interpolation"`
}
