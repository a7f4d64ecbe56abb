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

func unitTransform(loc math.Vec3) scene.Transform {
	return scene.Transform{Location: loc, Scale: math.Vec3{X: 1, Y: 1, Z: 1}}
}

func testScene() *scene.Scene {
	return &scene.Scene{
		FPS: 25,
		Settings: scene.Settings{
			Identifier: "testtrack",
			Name:       "Test Track",
			TrackType:  scene.TrackRace,
			FarClip:    1000,
			Ambient:    math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		},
		Materials: []scene.Material{
			{Name: "glass", Texture: "glass.png"},
		},
	}
}

func testCollection() *collect.SceneCollection {
	obj := &scene.Object{Name: "crate", Scale: math.Vec3{X: 1, Y: 1, Z: 1}}
	return &collect.SceneCollection{
		FPS: 25,
		StaticObjects: []collect.TrackObject{{
			ID:         "rock",
			Object:     obj,
			Transform:  unitTransform(math.Vec3{X: 1}),
			Visibility: collect.DetailOff,
			Flags:      collect.FlagShadows,
		}},
		DynamicObjects: []collect.TrackObject{{
			ID:          "crate",
			Object:      obj,
			Transform:   unitTransform(math.Vec3{X: 2}),
			Visibility:  collect.DetailOff,
			Interaction: collect.InteractMovable,
			Shape:       collect.ShapeBox,
			Mass:        20,
			Flags:       collect.FlagShadows,
		}},
		Checklines: []collect.Checkline{
			{ID: "lap", Index: 0, Activate: 1, Lapline: true},
			{ID: "c1", Index: 1, Activate: 0, Line: collect.Line{
				{X: -5, Y: 1, Z: 10}, {X: 5, Y: 2, Z: 10},
			}},
		},
		Billboards: []collect.Billboard{{
			ID:        "sign",
			Transform: unitTransform(math.Vec3{Y: 3}),
			Material:  "glass",
			Size:      math.Vec2{X: 2, Y: 1},
			FadeoutStart: -1, FadeoutEnd: -1,
		}},
		ActionTriggers: []collect.ActionTrigger{{
			ID:        "portal",
			Transform: unitTransform(math.Vec3{Z: 4}),
			Action:    "teleport",
			Distance:  5,
		}},
		AudioSources: []collect.AudioSource{{
			ID:        "waterfall",
			Transform: unitTransform(math.Vec3{Z: 8}),
			File:      "waterfall.ogg",
			Volume:    1, Rolloff: 0.5, Distance: 50, Trigger: -1,
		}},
		Particles: []collect.Particles{{
			ID:        "smoke",
			Transform: unitTransform(math.Vec3{Y: 5}),
			File:      "smoke.xml",
			Emit:      true,
		}},
		Lights: []collect.PointLight{{
			ID:        "lamp",
			Transform: unitTransform(math.Vec3{Y: 6}),
			Distance:  20, Energy: 100,
			Color: math.Vec3{X: 1, Y: 1, Z: 1},
		}},
		Placeables: []collect.Placeable{{
			ID:        "nitro",
			Kind:      collect.PlaceNitroSmall,
			Transform: unitTransform(math.Vec3{X: 7}),
			SnapGround: true,
		}},
	}
}

func TestWriteSceneSectionOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteScene(&buf, testScene(), testCollection(), report.Discard); err != nil {
		t.Fatalf("WriteScene: %v", err)
	}
	out := buf.String()

	sections := []string{
		"<track ",
		"<default-start ",
		"<checks>",
		"<object ",
		"type=\"billboard\"",
		"type=\"action-trigger\"",
		"type=\"sfx-emitter\"",
		"<particle-emitter ",
		"<light ",
		"<small-nitro ",
		"<sun ",
		"<camera ",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(out, s)
		if idx < 0 {
			t.Fatalf("section %q missing from output:\n%s", s, out)
		}
		if idx < last {
			t.Errorf("section %q appears out of order", s)
		}
		last = idx
	}
}

func TestWriteSceneIdempotent(t *testing.T) {
	s := testScene()
	c := testCollection()

	var first, second bytes.Buffer
	if err := WriteScene(&first, s, c, report.Discard); err != nil {
		t.Fatalf("WriteScene: %v", err)
	}
	if err := WriteScene(&second, s, c, report.Discard); err != nil {
		t.Fatalf("WriteScene: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two runs over the same collection produced different output")
	}
}

func TestWriteSceneHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteScene(&buf, testScene(), testCollection(), report.Discard); err != nil {
		t.Fatalf("WriteScene: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, xmlHeader) {
		t.Errorf("output does not start with the XML declaration")
	}
	if !strings.Contains(out, xmlGenerator) {
		t.Errorf("output is missing the generator comment")
	}
	if !strings.HasSuffix(out, "</scene>\n") {
		t.Errorf("output does not end with the closing scene tag")
	}
}

func TestWriteChecksActivation(t *testing.T) {
	c := &collect.SceneCollection{
		Checklines: []collect.Checkline{
			{ID: "lap", Index: 0, Activate: 1, Lapline: true},
			{ID: "c1", Index: 1, Activate: 0, Line: collect.Line{
				{X: -1, Y: 0, Z: 5}, {X: 1, Y: 1, Z: 5},
			}},
		},
	}

	var buf bytes.Buffer
	f := newXMLFile(&buf)
	f.writeChecks(c, report.Discard)
	out := buf.String()

	if !strings.Contains(out, "<check-lap kind=\"lap\" same-group=\"0\" other-ids=\"1\"/>") {
		t.Errorf("lap line missing or malformed:\n%s", out)
	}
	if !strings.Contains(out, "kind=\"activate\" same-group=\"1\" other-ids=\"0\" p1=\"-1.00 5.00\" p2=\"1.00 5.00\" min-height=\"0.00\"") {
		t.Errorf("checkline missing or malformed:\n%s", out)
	}
}

func TestWriteChecksMissingActivationTarget(t *testing.T) {
	c := &collect.SceneCollection{
		Checklines: []collect.Checkline{
			{ID: "c1", Index: 0, Activate: 7, Lapline: true},
		},
	}

	var buf bytes.Buffer
	var log report.Log
	f := newXMLFile(&buf)
	f.writeChecks(c, log.Func())
	out := buf.String()

	if strings.Contains(out, "other-ids") {
		t.Errorf("cross-reference to an empty group was emitted:\n%s", out)
	}
	if !strings.Contains(out, "same-group=\"0\"") {
		t.Errorf("own group declaration was dropped:\n%s", out)
	}
	if log.Warnings() != 1 {
		t.Errorf("warnings = %d, want 1", log.Warnings())
	}
}

func TestWriteChecksGoalsAndCannons(t *testing.T) {
	curve := &scene.Object{
		Name:  "path",
		Scale: math.Vec3{X: 1, Y: 1, Z: 1},
		Curve: &scene.Curve{Points: []scene.CurvePoint{
			{Co: math.Vec3{X: 1, Y: 2, Z: 3}},
		}},
	}
	c := &collect.SceneCollection{
		Goals: []collect.Goal{{
			ID:   "goal",
			Line: collect.Line{{X: -3, Z: 20}, {X: 3, Z: 20}},
			Ally: true,
		}},
		Cannons: []collect.Cannon{{
			ID:    "cannon",
			Curve: curve,
			Start: collect.Line{{X: 0}, {X: 1}},
			End:   collect.Line{{Z: 10}, {X: 1, Z: 10}},
			Speed: 30,
		}},
	}

	var buf bytes.Buffer
	f := newXMLFile(&buf)
	f.writeChecks(c, report.Discard)
	out := buf.String()

	if !strings.Contains(out, "<goal first_goal=\"y\" p1=\"-3.00 20.00\" p2=\"3.00 20.00\"/>") {
		t.Errorf("goal missing or malformed:\n%s", out)
	}
	if !strings.Contains(out, "speed=\"30.00\"") {
		t.Errorf("cannon speed missing:\n%s", out)
	}
	// Curve points swap into engine space: editor (1,2,3) becomes (1,3,2).
	if !strings.Contains(out, "<point c=\"1.00 3.00 2.00\"") {
		t.Errorf("cannon curve point missing or not converted:\n%s", out)
	}
}

func TestWriteObjectAttributes(t *testing.T) {
	var buf bytes.Buffer
	f := newXMLFile(&buf)
	f.writeObject("object", collect.TrackObject{
		ID:          "barrel",
		Object:      &scene.Object{Name: "barrel", Scale: math.Vec3{X: 1, Y: 1, Z: 1}},
		Transform:   unitTransform(math.Vec3{}),
		Visibility:  collect.DetailOff,
		Interaction: collect.InteractMovable,
		Shape:       collect.ShapeCylinderY,
		Mass:        12.5,
		Flags:       collect.FlagShadows,
	}, 25)
	out := buf.String()

	for _, want := range []string{
		"type=\"movable\"",
		"interaction=\"movable\"",
		"shape=\"cylinderY\"",
		"mass=\"12.50\"",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "shadow-pass") {
		t.Errorf("shadow-pass emitted for an object with shadows enabled:\n%s", out)
	}
}

func TestWriteObjectLODMovableShape(t *testing.T) {
	var buf bytes.Buffer
	f := newXMLFile(&buf)
	f.writeObject("object", collect.TrackObject{
		ID:          "tower",
		Object:      &scene.Object{Name: "tower", Scale: math.Vec3{X: 1, Y: 1, Z: 1}},
		Transform:   unitTransform(math.Vec3{}),
		LODGroup:    "towers",
		LODDistance: -1,
		Visibility:  collect.DetailOff,
		Interaction: collect.InteractMovable,
		Shape:       collect.ShapeExact,
		Flags:       collect.FlagShadows,
	}, 25)
	out := buf.String()

	// Exact collision needs the mesh; LOD instances have none, so the shape
	// degrades to a box.
	if !strings.Contains(out, "shape=\"box\"") {
		t.Errorf("exact shape on a LOD instance did not degrade to box:\n%s", out)
	}
	if !strings.Contains(out, "lod_instance=\"y\" lod_group=\"towers\"") {
		t.Errorf("LOD instance attributes missing:\n%s", out)
	}
	if strings.Contains(out, "model=") {
		t.Errorf("LOD instance must not carry a model attribute:\n%s", out)
	}
}

func TestWriteStartPositionsArena(t *testing.T) {
	s := testScene()
	s.Settings.TrackType = scene.TrackArena

	c := &collect.SceneCollection{
		Placeables: []collect.Placeable{
			{ID: "s1", Kind: collect.PlaceStartPosition, StartIndex: 1, Transform: unitTransform(math.Vec3{X: 1})},
			{ID: "s0", Kind: collect.PlaceStartPosition, StartIndex: 0, Transform: unitTransform(math.Vec3{})},
			{ID: "dup", Kind: collect.PlaceStartPosition, StartIndex: 0, Transform: unitTransform(math.Vec3{X: 9})},
		},
	}

	var buf bytes.Buffer
	var log report.Log
	f := newXMLFile(&buf)
	f.writeStartPositions(s, c, log.Func())
	out := buf.String()

	if got := strings.Count(out, "<start "); got != 2 {
		t.Errorf("start positions = %d, want 2 (duplicate index dropped)", got)
	}
	first := strings.Index(out, "xyz=\"0.00 0.00 0.00\"")
	second := strings.Index(out, "xyz=\"1.00 0.00 0.00\"")
	if first < 0 || second < 0 || first > second {
		t.Errorf("start positions not ordered by index:\n%s", out)
	}
	// Duplicate index plus fewer than 4 starts.
	if log.Warnings() != 2 {
		t.Errorf("warnings = %d, want 2", log.Warnings())
	}
}

func TestWriteLightingDefaults(t *testing.T) {
	var buf bytes.Buffer
	f := newXMLFile(&buf)
	f.writeLighting(testScene(), &collect.SceneCollection{})
	out := buf.String()

	if !strings.Contains(out, "xyz=\"0.00 60.00 0.00\" sun-diffuse=\"204 204 204\" sun-specular=\"255 255 255\"") {
		t.Errorf("default sun missing:\n%s", out)
	}
	if !strings.Contains(out, "ambient=\"128 128 128\"") {
		t.Errorf("ambient color missing or wrong:\n%s", out)
	}
}
