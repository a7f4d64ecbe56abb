package scene

import "github.com/Faultbox/antarctica-export/pkg/math"

// Role is the declared export role of a track or library object. An empty or
// unknown role exports as plain static scenery.
type Role string

const (
	RoleNone          Role = ""
	RoleObject        Role = "object"
	RoleLODInstance   Role = "lod_instance"
	RoleLODStandalone Role = "lod_standalone"
	RoleLODModel      Role = "lod_model"
	RoleBillboard     Role = "billboard"
	RoleLibraryNode   Role = "library_node"
	RoleParticles     Role = "particle_emitter"
	RoleLightshaft    Role = "lightshaft_emitter"
	RoleSFX           Role = "sfx_emitter"
	RoleAction        Role = "action_trigger"
	RoleDrivelineMain Role = "driveline_main"
	RoleDrivelineAdd  Role = "driveline_additional"
	RoleNavmesh       Role = "navmesh"
	RoleCheckline     Role = "checkline"
	RoleLapline       Role = "lapline"
	RoleCannonStart   Role = "cannon_start"
	RoleCannonEnd     Role = "cannon_end"
	RoleGoal          Role = "goal"
	RoleStartPosition Role = "start_position"
	RoleItemGift      Role = "item_gift"
	RoleItemBanana    Role = "item_banana"
	RoleItemEasterEgg Role = "item_easteregg"
	RoleItemNitroS    Role = "item_nitro_small"
	RoleItemNitroB    Role = "item_nitro_big"
	RoleItemFlagRed   Role = "item_flag_red"
	RoleItemFlagBlue  Role = "item_flag_blue"
)

// Placeable reports whether the role is an item or start position.
func (r Role) Placeable() bool {
	switch r {
	case RoleStartPosition, RoleItemGift, RoleItemBanana, RoleItemEasterEgg,
		RoleItemNitroS, RoleItemNitroB, RoleItemFlagRed, RoleItemFlagBlue:
		return true
	}
	return false
}

// KartRole is the declared export role of a kart object.
type KartRole string

const (
	KartRoleNone          KartRole = ""
	KartRoleWheel         KartRole = "wheel"
	KartRoleSpeedWeighted KartRole = "speed_weighted"
	KartRoleNitroEmitter  KartRole = "nitro_emitter"
	KartRoleHeadlight     KartRole = "headlight"
	KartRoleHat           KartRole = "hat"
)

// TrackProps is the role property bag for track export. Only the fields
// matching the declared role are meaningful; the schema-driven property
// reader of the host fills in defaults for the rest.
type TrackProps struct {
	Role Role   `yaml:"role"`
	Name string `yaml:"name"` // Identifier override, object name if empty

	// Generic objects
	Interaction      string    `yaml:"interaction"` // static/movable/ghost/physics/reset/knock/flatten
	Shape            string    `yaml:"shape"`       // box/sphere/cylinder_x... /exact
	Driveable        bool      `yaml:"driveable"`
	SoccerBall       bool      `yaml:"soccer_ball"`
	Glow             bool      `yaml:"glow"`
	GlowColor        math.Vec3 `yaml:"glow_color"`
	Shadows          bool      `yaml:"shadows"`
	Visibility       bool      `yaml:"visibility"`
	VisibilityDetail string    `yaml:"visibility_detail"` // always/medium/high
	VisibleIf        string    `yaml:"visible_if"`
	OnKartCollision  string    `yaml:"on_kart_collision"`
	CustomXML        string    `yaml:"custom_xml"`
	Mass             float32   `yaml:"mass"`

	// Animated UV textures
	UVAnimated bool    `yaml:"uv_animated"`
	UVMaterial string  `yaml:"uv_material"`
	UVSpeedU   float32 `yaml:"uv_speed_u"`
	UVSpeedV   float32 `yaml:"uv_speed_v"`
	UVStep     bool    `yaml:"uv_step"`
	UVSpeedDT  float32 `yaml:"uv_speed_dt"`

	// Library node instances
	LibraryNode string `yaml:"library_node"` // Node name to instance

	// Level of detail
	LODCollection        string  `yaml:"lod_collection"` // Group name for lod_instance
	LODDistance          float32 `yaml:"lod_distance"`
	LODModifiers         bool    `yaml:"lod_modifiers"`
	LODModifiersDistance float32 `yaml:"lod_modifiers_distance"`

	// Placeables
	StartIndex     int      `yaml:"start_index"`
	SnapGround     bool     `yaml:"snap_ground"`
	CTFOnly        bool     `yaml:"ctf_only"`
	EggVisibility  []string `yaml:"egg_visibility"` // easy/intermediate/hard

	// Billboards
	Fadeout      bool    `yaml:"fadeout"`
	FadeoutStart float32 `yaml:"fadeout_start"`
	FadeoutEnd   float32 `yaml:"fadeout_end"`

	// Particle emitters
	ParticlesFile      string  `yaml:"particles_file"`
	ParticlesDistance  float32 `yaml:"particles_distance"`
	ParticlesEmit      bool    `yaml:"particles_emit"`
	ParticlesCondition string  `yaml:"particles_condition"`

	// Light shafts
	LightshaftOpacity float32   `yaml:"lightshaft_opacity"`
	LightshaftColor   math.Vec3 `yaml:"lightshaft_color"`

	// SFX emitters
	SFXFile            string  `yaml:"sfx_file"`
	SFXVolume          float32 `yaml:"sfx_volume"`
	SFXRolloff         float32 `yaml:"sfx_rolloff"`
	SFXDistance        float32 `yaml:"sfx_distance"`
	SFXTrigger         bool    `yaml:"sfx_trigger"`
	SFXTriggerDistance float32 `yaml:"sfx_trigger_distance"`
	SFXCondition       string  `yaml:"sfx_condition"`

	// Action triggers
	Action         string  `yaml:"action"`
	ActionDistance float32 `yaml:"action_distance"`
	ActionHeight   float32 `yaml:"action_height"`
	ActionTimeout  float32 `yaml:"action_timeout"`
	ActionTrigger  string  `yaml:"action_trigger"` // point or cylinder
	ActionObject   string  `yaml:"action_object"`  // Library-node trigger object reference

	// Drivelines
	DrivelineLower     float32 `yaml:"driveline_lower"`
	DrivelineUpper     float32 `yaml:"driveline_upper"`
	DrivelineInvisible bool    `yaml:"driveline_invisible"`
	DrivelineIgnore    bool    `yaml:"driveline_ignore"`
	DrivelineDirection string  `yaml:"driveline_direction"` // none/forward/reverse/both

	// Checklines
	ChecklineIndex    int `yaml:"checkline_index"`
	ChecklineActivate int `yaml:"checkline_activate"`

	// Cannons
	CannonEndTrigger string  `yaml:"cannon_end_trigger"` // Object name of the end line
	CannonPath       string  `yaml:"cannon_path"`        // Object name of the backing curve
	CannonSpeed      float32 `yaml:"cannon_speed"`

	// Goals
	GoalTeam string `yaml:"goal_team"` // ally or enemy
}

// LibraryProps is the role property bag for library-node export. It shares
// the track vocabulary subset relevant for nodes.
type LibraryProps = TrackProps

// KartProps is the role property bag for kart export.
type KartProps struct {
	Role KartRole `yaml:"role"`
	Name string   `yaml:"name"`

	// Speed-weighted objects
	Strength       string  `yaml:"strength"` // default/disable/custom
	StrengthFactor float32 `yaml:"strength_factor"`
	Speed          string  `yaml:"speed"` // default/disable/custom
	SpeedFactor    float32 `yaml:"speed_factor"`
	UVSpeedU       float32 `yaml:"uv_speed_u"`
	UVSpeedV       float32 `yaml:"uv_speed_v"`
}

// LightKind distinguishes light objects.
type LightKind string

const (
	LightSun   LightKind = "sun"
	LightPoint LightKind = "point"
)

// LightProps holds light data and the engine-specific light settings.
type LightProps struct {
	Kind      LightKind `yaml:"kind"`
	Color     math.Vec3 `yaml:"color"`
	Energy    float32   `yaml:"energy"`
	Specular  math.Vec3 `yaml:"specular"` // Sun specular color
	Distance  float32   `yaml:"distance"` // Point light radius
	VisibleIf string    `yaml:"visible_if"`
}

// CameraKind distinguishes exported cameras.
type CameraKind string

const (
	CameraNone     CameraKind = ""
	CameraEndFixed CameraKind = "end_fixed"
	CameraEndKart  CameraKind = "end_kart"
	CameraCutscene CameraKind = "cutscene"
)

// CameraProps holds engine camera settings.
type CameraProps struct {
	Kind      CameraKind `yaml:"kind"`
	Distance  float32    `yaml:"distance"`
	Order     int        `yaml:"order"`
	AutoOrder bool       `yaml:"auto_order"`
}
