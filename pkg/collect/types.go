// Package collect classifies the objects of a scene snapshot into the typed
// buckets consumed by the serializers. Validation happens here, right before
// an entity is appended to its bucket; the serializers assume well-formed
// collections.
package collect

import (
	"github.com/Faultbox/antarctica-export/pkg/anim"
	"github.com/Faultbox/antarctica-export/pkg/driveline"
	"github.com/Faultbox/antarctica-export/pkg/math"
	"github.com/Faultbox/antarctica-export/pkg/scene"
)

// DetailLevel is the geometry visibility level of an object.
type DetailLevel int8

const (
	DetailOff    DetailLevel = -1
	DetailAlways DetailLevel = 0
	DetailMedium DetailLevel = 1
	DetailHigh   DetailLevel = 2
)

// String returns the level name used in the scene file.
func (d DetailLevel) String() string {
	switch d {
	case DetailAlways:
		return "always"
	case DetailMedium:
		return "medium"
	case DetailHigh:
		return "high"
	default:
		return "off"
	}
}

func parseDetailLevel(s string) DetailLevel {
	switch s {
	case "always":
		return DetailAlways
	case "medium":
		return DetailMedium
	case "high":
		return DetailHigh
	default:
		return DetailOff
	}
}

// Interaction is the physics interaction type of an object.
type Interaction int8

const (
	InteractStatic Interaction = iota
	InteractMovable
	InteractGhost
	InteractPhysics
	InteractReset
	InteractKnock
	InteractFlatten
)

// String returns the interaction name used in the scene file.
func (i Interaction) String() string {
	switch i {
	case InteractMovable:
		return "movable"
	case InteractGhost:
		return "ghost"
	case InteractPhysics:
		return "physics"
	case InteractReset:
		return "reset"
	case InteractKnock:
		return "knock"
	case InteractFlatten:
		return "flatten"
	default:
		return "static"
	}
}

func parseInteraction(s string) Interaction {
	switch s {
	case "movable":
		return InteractMovable
	case "ghost":
		return InteractGhost
	case "physics":
		return InteractPhysics
	case "reset":
		return InteractReset
	case "knock":
		return InteractKnock
	case "flatten":
		return InteractFlatten
	default:
		return InteractStatic
	}
}

// Shape is the physics collision shape of a movable object.
type Shape int8

const (
	ShapeBox Shape = iota
	ShapeSphere
	ShapeCylinderX
	ShapeCylinderY
	ShapeCylinderZ
	ShapeConeX
	ShapeConeY
	ShapeConeZ
	ShapeExact
)

// String returns the shape name used in the scene file.
func (s Shape) String() string {
	switch s {
	case ShapeSphere:
		return "sphere"
	case ShapeCylinderX:
		return "cylinderX"
	case ShapeCylinderY:
		return "cylinderY"
	case ShapeCylinderZ:
		return "cylinderZ"
	case ShapeConeX:
		return "coneX"
	case ShapeConeY:
		return "coneY"
	case ShapeConeZ:
		return "coneZ"
	case ShapeExact:
		return "exact"
	default:
		return "box"
	}
}

func parseShape(s string) Shape {
	switch s {
	case "sphere":
		return ShapeSphere
	case "cylinder_x":
		return ShapeCylinderX
	case "cylinder_y":
		return ShapeCylinderY
	case "cylinder_z":
		return ShapeCylinderZ
	case "cone_x":
		return ShapeConeX
	case "cone_y":
		return ShapeConeY
	case "cone_z":
		return ShapeConeZ
	case "exact":
		return ShapeExact
	default:
		return ShapeBox
	}
}

// Flags is the object flag bitmask.
type Flags int8

const (
	FlagDriveable  Flags = 0x01
	FlagSoccerBall Flags = 0x02
	FlagGlow       Flags = 0x04
	FlagShadows    Flags = 0x08
)

// PlaceableKind is the exported item or marker type.
type PlaceableKind int8

const (
	PlaceGift PlaceableKind = iota
	PlaceBanana
	PlaceEasterEgg
	PlaceNitroSmall
	PlaceNitroBig
	PlaceFlagRed
	PlaceFlagBlue
	PlaceStartPosition
)

// String returns the element name used in the scene file.
func (p PlaceableKind) String() string {
	switch p {
	case PlaceBanana:
		return "banana"
	case PlaceEasterEgg:
		return "easter-egg"
	case PlaceNitroSmall:
		return "small-nitro"
	case PlaceNitroBig:
		return "big-nitro"
	case PlaceFlagRed:
		return "red-flag"
	case PlaceFlagBlue:
		return "blue-flag"
	case PlaceStartPosition:
		return "start"
	default:
		return "item"
	}
}

func parsePlaceable(r scene.Role) (PlaceableKind, bool) {
	switch r {
	case scene.RoleItemGift:
		return PlaceGift, true
	case scene.RoleItemBanana:
		return PlaceBanana, true
	case scene.RoleItemEasterEgg:
		return PlaceEasterEgg, true
	case scene.RoleItemNitroS:
		return PlaceNitroSmall, true
	case scene.RoleItemNitroB:
		return PlaceNitroBig, true
	case scene.RoleItemFlagRed:
		return PlaceFlagRed, true
	case scene.RoleItemFlagBlue:
		return PlaceFlagBlue, true
	case scene.RoleStartPosition:
		return PlaceStartPosition, true
	}
	return 0, false
}

// EggVisibility is the easter-egg difficulty visibility bitmask.
type EggVisibility int8

const (
	EggEasy         EggVisibility = 0x01
	EggIntermediate EggVisibility = 0x02
	EggHard         EggVisibility = 0x04
)

// DrivelineKind distinguishes the main loop from branch drivelines.
type DrivelineKind int8

const (
	DrivelineMain DrivelineKind = iota
	DrivelineAdditional
)

// Line is a two-point line segment in engine space.
type Line [2]math.Vec3

// TrackObject is a classified mesh object with export properties.
type TrackObject struct {
	ID        string
	Object    *scene.Object
	Transform scene.Transform
	Animation *anim.Animation

	LODGroup     string  // LOD collection name for instances
	LODDistance  float32 // Standalone LOD distance, <0 for instances
	LODModifiers float32 // Modifier skip distance, <0 if disabled

	UVMaterial string // Material with animated UVs, empty if none
	UVSpeedU   float32
	UVSpeedV   float32
	UVSpeedDT  float32 // Step animation speed, <0 if disabled

	Visibility  DetailLevel
	Interaction Interaction
	Shape       Shape
	Flags       Flags
	Glow        math.Vec3
	Mass        float32

	VisibleIf   string
	OnCollision string
	CustomXML   string
}

// Placeable is an item, flag or start position marker.
type Placeable struct {
	ID         string
	Transform  scene.Transform
	Kind       PlaceableKind
	StartIndex int
	SnapGround bool
	CTFOnly    bool
	Visibility EggVisibility
}

// Billboard is a fixed textured quad with an inferred size.
type Billboard struct {
	ID           string
	Transform    scene.Transform
	Animation    *anim.Animation
	Material     string
	Size         math.Vec2
	FadeoutStart float32 // <0 when fadeout is disabled
	FadeoutEnd   float32
}

// Particles is a particle emitter placement.
type Particles struct {
	ID        string
	Transform scene.Transform
	Animation *anim.Animation
	File      string
	Distance  float32
	Emit      bool
	Condition string
}

// Godray is a light shaft emitter.
type Godray struct {
	ID        string
	Transform scene.Transform
	Opacity   float32
	Color     math.Vec3
}

// AudioSource is a positional sound emitter.
type AudioSource struct {
	ID        string
	Transform scene.Transform
	Animation *anim.Animation
	File      string
	Volume    float32
	Rolloff   float32
	Distance  float32
	Trigger   float32 // Play-on-approach distance, <0 if disabled
	Condition string
}

// ActionTrigger fires a scripting callback when a kart enters its volume.
type ActionTrigger struct {
	ID          string
	Transform   scene.Transform
	Animation   *anim.Animation
	Action      string
	Distance    float32
	Height      float32
	Timeout     float32
	Cylindrical bool
	Object      string // Library-node trigger object, track triggers leave it empty
}

// LibraryRef is a placed instance of a shared library node.
type LibraryRef struct {
	ID        string
	Node      string
	Transform scene.Transform
	Animation *anim.Animation
}

// Driveline couples a parsed driveline with its export properties.
type Driveline struct {
	ID        string
	Data      *driveline.Data
	Kind      DrivelineKind
	Lower     float32
	Upper     float32
	Invisible bool
	Ignore    bool
	Reverse   bool
}

// Checkline is a lap or section progress gate.
type Checkline struct {
	ID       string
	Line     Line
	Index    int
	Activate int
	Lapline  bool
}

// Cannon is a curve-following transport between two trigger lines.
type Cannon struct {
	ID    string
	Curve *scene.Object
	Start Line
	End   Line
	Speed float32
}

// Goal is a soccer goal line.
type Goal struct {
	ID   string
	Line Line
	Ally bool
}

// PointLight is a positional dynamic light.
type PointLight struct {
	ID        string
	Transform scene.Transform
	Distance  float32
	Energy    float32
	Color     math.Vec3
	VisibleIf string
}

// Sun is the scene's single directional light.
type Sun struct {
	Transform scene.Transform
	Diffuse   math.Vec3
	Specular  math.Vec3
}

// Camera is an end or cutscene camera.
type Camera struct {
	ID           string
	Transform    scene.Transform
	Animation    *anim.Animation
	RotationMode scene.RotationMode
	Kind         scene.CameraKind
	Distance     float32
	Order        int // <0 when ordered automatically
}

// SceneCollection is the complete classified track scene.
type SceneCollection struct {
	LODGroups      map[string][]*scene.Object // LOD model groups by collection name
	TrackObjects   []*scene.Object            // Unassigned static scenery
	StaticObjects  []TrackObject
	DynamicObjects []TrackObject
	Placeables     []Placeable
	Billboards     []Billboard
	Particles      []Particles
	Godrays        []Godray
	AudioSources   []AudioSource
	ActionTriggers []ActionTrigger
	Libraries      []LibraryRef
	Drivelines     []Driveline
	Checklines     []Checkline
	Navmesh        *driveline.Navmesh
	Cannons        []Cannon
	Goals          []Goal
	Lights         []PointLight
	Cameras        []Camera
	Sun            *Sun
	FPS            float32
}
