package formats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Faultbox/antarctica-export/pkg/collect"
	"github.com/Faultbox/antarctica-export/pkg/math"
	"github.com/Faultbox/antarctica-export/pkg/report"
	"github.com/Faultbox/antarctica-export/pkg/scene"
)

func trackScene(kind scene.TrackType) *scene.Scene {
	return &scene.Scene{
		Settings: scene.Settings{
			Identifier: "volcano",
			Name:       "Volcano Valley",
			Groups:     "standard",
			Designer:   "Anonymous",
			Music:      "lava.music",
			Screenshot: "volcano.jpg",
			TrackType:  kind,
			PushBack:   true,
			AutoRescue: true,
			DuringDay:  true,
			Shadows:    true,
		},
	}
}

func TestWriteTrackRace(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTrack(&buf, trackScene(scene.TrackRace), &collect.SceneCollection{}, report.Discard); err != nil {
		t.Fatalf("WriteTrack: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"name=\"Volcano Valley\"",
		"version=\"7\"",
		"groups=\"standard\"",
		"designer=\"Anonymous\"",
		"music=\"lava.music\"",
		"default-number-of-laps=\"3\"",
		"reverse=\"N\"",
		"is-during-day=\"Y\"",
		"shadows=\"Y\"",
		"</track>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	for _, unwanted := range []string{"arena=", "soccer=", "ctf=", "push-back=", "auto-rescue="} {
		if strings.Contains(out, unwanted) {
			t.Errorf("race track carries %q:\n%s", unwanted, out)
		}
	}
}

func TestWriteTrackArenaPlayers(t *testing.T) {
	s := trackScene(scene.TrackArena)
	s.Settings.CTF = true
	c := &collect.SceneCollection{
		Placeables: []collect.Placeable{
			{ID: "s0", Kind: collect.PlaceStartPosition},
			{ID: "s1", Kind: collect.PlaceStartPosition},
			{ID: "ctf", Kind: collect.PlaceStartPosition, CTFOnly: true},
			{ID: "item", Kind: collect.PlaceBanana},
		},
	}

	var buf bytes.Buffer
	if err := WriteTrack(&buf, s, c, report.Discard); err != nil {
		t.Fatalf("WriteTrack: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "arena=\"Y\" max-arena-players=\"2\" ctf=\"Y\"") {
		t.Errorf("arena attributes missing or CTF-only starts counted:\n%s", out)
	}
}

func TestWriteTrackMissingMusicWarns(t *testing.T) {
	s := trackScene(scene.TrackRace)
	s.Settings.Music = ""
	s.Settings.Screenshot = ""

	var buf bytes.Buffer
	var log report.Log
	if err := WriteTrack(&buf, s, &collect.SceneCollection{}, log.Func()); err != nil {
		t.Fatalf("WriteTrack: %v", err)
	}
	if log.Warnings() != 2 {
		t.Errorf("warnings = %d, want 2 (music and screenshot)", log.Warnings())
	}
	if strings.Contains(buf.String(), "music=") {
		t.Errorf("empty music attribute emitted:\n%s", buf.String())
	}
}

func TestWriteTrackDisabledAssists(t *testing.T) {
	s := trackScene(scene.TrackRace)
	s.Settings.PushBack = false
	s.Settings.AutoRescue = false

	var buf bytes.Buffer
	if err := WriteTrack(&buf, s, &collect.SceneCollection{}, report.Discard); err != nil {
		t.Fatalf("WriteTrack: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "push-back=\"N\"") || !strings.Contains(out, "auto-rescue=\"N\"") {
		t.Errorf("disabled assists not emitted:\n%s", out)
	}
}

func TestWriteNodeSections(t *testing.T) {
	s := &scene.Scene{
		FPS:       25,
		Materials: []scene.Material{{Name: "flame", Texture: "flame.png"}},
	}
	n := &collect.LibraryNode{
		FPS: 25,
		Objects: []collect.TrackObject{{
			ID:         "lamp_post",
			Object:     &scene.Object{Name: "lamp_post", Scale: math.Vec3{X: 1, Y: 1, Z: 1}},
			Transform:  scene.Transform{Scale: math.Vec3{X: 1, Y: 1, Z: 1}},
			Visibility: collect.DetailOff,
			Flags:      collect.FlagShadows,
		}},
		ActionTriggers: []collect.ActionTrigger{{
			ID:        "switch",
			Transform: scene.Transform{Scale: math.Vec3{X: 1, Y: 1, Z: 1}},
			Action:    "toggle",
			Distance:  2,
			Object:    "lamp_post",
		}},
	}

	var buf bytes.Buffer
	if err := WriteNode(&buf, s, n); err != nil {
		t.Fatalf("WriteNode: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, xmlHeader) || !strings.HasSuffix(out, "</scene>\n") {
		t.Errorf("node document framing wrong:\n%s", out)
	}
	obj := strings.Index(out, "id=\"lamp_post\"")
	trig := strings.Index(out, "type=\"action-trigger\"")
	if obj < 0 || trig < 0 || obj > trig {
		t.Errorf("node sections missing or out of order:\n%s", out)
	}
	if !strings.Contains(out, "triggered-object=\"lamp_post\"") {
		t.Errorf("trigger object reference missing:\n%s", out)
	}
}

func TestWriteMaterials(t *testing.T) {
	materials := []scene.Material{
		{Name: "lava", Texture: "lava_flow.png", Shader: "additive"},
		{Name: "plain"},
		{Name: "glass", Texture: "glass.png"},
	}

	var buf bytes.Buffer
	if err := WriteMaterials(&buf, materials); err != nil {
		t.Fatalf("WriteMaterials: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "<material name=\"lava_flow.png\" shader=\"additive\"/>") {
		t.Errorf("shader material missing:\n%s", out)
	}
	if !strings.Contains(out, "<material name=\"glass.png\"/>") {
		t.Errorf("texture material missing:\n%s", out)
	}
	if strings.Contains(out, "plain") {
		t.Errorf("material without engine data was emitted:\n%s", out)
	}
}
