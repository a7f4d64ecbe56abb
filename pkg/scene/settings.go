package scene

import "github.com/Faultbox/antarctica-export/pkg/math"

// TrackType selects the gameplay mode a track is built for.
type TrackType string

const (
	TrackRace     TrackType = "race"
	TrackArena    TrackType = "arena"
	TrackSoccer   TrackType = "soccer"
	TrackCutscene TrackType = "cutscene"
)

// Settings holds scene-wide export metadata.
type Settings struct {
	Identifier string    `yaml:"identifier"` // Output file-name base
	Name       string    `yaml:"name"`
	Groups     string    `yaml:"groups"`
	Designer   string    `yaml:"designer"`
	Music      string    `yaml:"music"`
	Screenshot string    `yaml:"screenshot"`
	TrackType  TrackType `yaml:"track_type"`

	CTF           bool `yaml:"ctf"`
	Internal      bool `yaml:"internal"`
	PushBack      bool `yaml:"push_back"`
	AutoRescue    bool `yaml:"auto_rescue"`
	SmoothNormals bool `yaml:"smooth_normals"`
	DefaultLaps   int  `yaml:"default_laps"`
	Reverse       bool `yaml:"reverse"`
	DuringDay     bool `yaml:"during_day"`
	Shadows       bool `yaml:"shadows"`
	Clouds        bool `yaml:"clouds"`

	// Race start grid
	StartKartsPerRow int     `yaml:"start_karts_per_row"`
	StartForward     float32 `yaml:"start_forward"`
	StartSide        float32 `yaml:"start_side"`
	StartUp          float32 `yaml:"start_up"`

	FarClip float32 `yaml:"far_clip"`

	// Sky: either a plain color or a 6-texture box, optionally with a
	// spherical-harmonics ambient map.
	SkyColor    *math.Vec3 `yaml:"sky_color"`
	SkyTextures []string   `yaml:"sky_textures"` // N E S W Top Bottom
	AmbientMap  []string   `yaml:"ambient_map"`  // N E S W Top Bottom
	Ambient     math.Vec3  `yaml:"ambient"`

	Fog      bool      `yaml:"fog"`
	FogColor math.Vec3 `yaml:"fog_color"`
	FogMax   float32   `yaml:"fog_max"`
	FogStart float32   `yaml:"fog_start"`
	FogEnd   float32   `yaml:"fog_end"`

	Weather      string `yaml:"weather"` // none/rain/snow
	Lightning    bool   `yaml:"lightning"`
	WeatherSound string `yaml:"weather_sound"`

	// Timeline markers (frame by name), drives kart animation ranges and
	// cutscene subtitle timing.
	Markers map[string]int `yaml:"markers"`

	Kart KartSettings `yaml:"kart"`
}

// KartSettings holds kart-specific metadata.
type KartSettings struct {
	Type           string    `yaml:"type"` // new/medium/heavy...
	HighlightColor math.Vec3 `yaml:"highlight_color"`
	Icon           string    `yaml:"icon"`
	IconMinimap    string    `yaml:"icon_minimap"`
	Shadow         string    `yaml:"shadow"`
	EngineSFX      string    `yaml:"engine_sfx"`
	SkidSound      string    `yaml:"skid_sound"` // Custom skid sample, engine default if empty
	SFXVolume      float32   `yaml:"sfx_volume"`
	SFXRolloff     float32   `yaml:"sfx_rolloff"`
	SFXDistance    float32   `yaml:"sfx_distance"`
	Exhaust        string    `yaml:"exhaust"` // Exhaust particles file
	Lean           bool      `yaml:"lean"`
	LeanMax        float32   `yaml:"lean_max"`
}
