package collect

import (
	"github.com/Faultbox/antarctica-export/pkg/anim"
	"github.com/Faultbox/antarctica-export/pkg/driveline"
	"github.com/Faultbox/antarctica-export/pkg/math"
	"github.com/Faultbox/antarctica-export/pkg/report"
	"github.com/Faultbox/antarctica-export/pkg/scene"
)

// Billboards must roughly face one of the world axes; the aggregate vertex
// normal decides which two dimensions become width and height.
const axisTolerance = 0.7853981634 // 45 degrees

// Track classifies the scene snapshot for a track export. Every validation
// failure is reported through rep and degrades to skipping the offending
// entity; the collection itself always completes.
func Track(s *scene.Scene, rep report.Func) *SceneCollection {
	c := &SceneCollection{
		LODGroups: make(map[string][]*scene.Object),
		FPS:       s.FPS,
	}
	used := make(map[string]bool)
	objects := s.Root.EnabledObjects()
	byName := objectIndex(objects)

	haveMain := false
	for _, obj := range objects {
		if obj.Hidden() {
			continue
		}
		if obj.Linked && !obj.Proxy {
			continue
		}

		switch {
		case obj.Kind == scene.KindLight && obj.Light != nil:
			c.collectLight(obj, used, rep)
		case obj.Kind == scene.KindCamera && obj.Camera != nil:
			c.collectCamera(obj, used, rep)
		case (obj.Kind == scene.KindMesh || obj.Kind == scene.KindEmpty) && obj.Track != nil:
			haveMain = c.collectTrackObject(s, obj, byName, used, haveMain, rep)
		}
	}

	orderDrivelines(c)
	return c
}

func objectIndex(objects []*scene.Object) map[string]*scene.Object {
	m := make(map[string]*scene.Object, len(objects))
	for _, o := range objects {
		if _, ok := m[o.Name]; !ok {
			m[o.Name] = o
		}
	}
	return m
}

func skipDuplicate(id string, used map[string]bool, rep report.Func) bool {
	if used[id] {
		report.Warnf(rep, "the object with the name '%s' is already staged for export and will "+
			"be ignored; check if different objects have the same name identifier", id)
		return true
	}
	return false
}

func (c *SceneCollection) collectTrackObject(s *scene.Scene, obj *scene.Object,
	byName map[string]*scene.Object, used map[string]bool, haveMain bool, rep report.Func) bool {

	props := obj.Track
	role := props.Role

	switch {
	// Unassigned model defaults to static track scenery.
	case obj.Kind != scene.KindEmpty && role == scene.RoleNone:
		c.TrackObjects = append(c.TrackObjects, obj)

	case role == scene.RoleLODModel:
		// Exported through its LOD group, not on its own.

	case obj.Kind != scene.KindEmpty &&
		(role == scene.RoleObject || role == scene.RoleLODInstance || role == scene.RoleLODStandalone):
		c.collectObject(s, obj, props, used, rep)

	case role.Placeable():
		c.collectPlaceable(obj, used, rep)

	case obj.Kind != scene.KindEmpty && role == scene.RoleBillboard:
		c.collectBillboard(obj, props, used, rep)

	case role == scene.RoleParticles:
		if skipDuplicate(obj.Name, used, rep) {
			return haveMain
		}
		c.Particles = append(c.Particles, Particles{
			ID:        obj.Name,
			Transform: scene.EngineTransform(obj),
			Animation: anim.Extract(obj, obj.Name, rep),
			File:      props.ParticlesFile,
			Distance:  props.ParticlesDistance,
			Emit:      props.ParticlesEmit,
			Condition: props.ParticlesCondition,
		})
		used[obj.Name] = true

	case role == scene.RoleLightshaft:
		if skipDuplicate(obj.Name, used, rep) {
			return haveMain
		}
		c.Godrays = append(c.Godrays, Godray{
			ID:        obj.Name,
			Transform: scene.EngineTransform(obj),
			Opacity:   props.LightshaftOpacity,
			Color:     props.LightshaftColor,
		})
		used[obj.Name] = true

	case role == scene.RoleSFX:
		if skipDuplicate(obj.Name, used, rep) {
			return haveMain
		}
		trigger := float32(-1)
		if props.SFXTrigger {
			trigger = props.SFXTriggerDistance
		}
		c.AudioSources = append(c.AudioSources, AudioSource{
			ID:        obj.Name,
			Transform: scene.EngineTransform(obj),
			Animation: anim.Extract(obj, obj.Name, rep),
			File:      props.SFXFile,
			Volume:    props.SFXVolume,
			Rolloff:   props.SFXRolloff,
			Distance:  props.SFXDistance,
			Trigger:   trigger,
			Condition: props.SFXCondition,
		})
		used[obj.Name] = true

	case role == scene.RoleLibraryNode:
		if skipDuplicate(obj.Name, used, rep) {
			return haveMain
		}
		node := props.LibraryNode
		if node == "" {
			report.Warnf(rep, "the library reference '%s' names no node and will be ignored", obj.Name)
			return haveMain
		}
		c.Libraries = append(c.Libraries, LibraryRef{
			ID:        obj.Name,
			Node:      node,
			Transform: scene.EngineTransform(obj),
			Animation: anim.Extract(obj, obj.Name, rep),
		})
		used[obj.Name] = true

	case role == scene.RoleAction:
		if skipDuplicate(obj.Name, used, rep) {
			return haveMain
		}
		c.ActionTriggers = append(c.ActionTriggers, ActionTrigger{
			ID:          obj.Name,
			Transform:   scene.EngineTransform(obj),
			Animation:   anim.Extract(obj, obj.Name, rep),
			Action:      props.Action,
			Distance:    props.ActionDistance,
			Height:      props.ActionHeight,
			Timeout:     props.ActionTimeout,
			Cylindrical: props.ActionTrigger == "cylinder",
		})
		used[obj.Name] = true

	case obj.Kind != scene.KindEmpty &&
		(role == scene.RoleDrivelineMain || role == scene.RoleDrivelineAdd):
		if skipDuplicate(obj.Name, used, rep) {
			return haveMain
		}
		if role == scene.RoleDrivelineMain && haveMain {
			report.Warnf(rep, "the main driveline '%s' will be ignored as there is already a "+
				"main driveline defined in the scene", obj.Name)
			return haveMain
		}
		kind := DrivelineAdditional
		if role == scene.RoleDrivelineMain {
			kind = DrivelineMain
			haveMain = true
		}
		c.Drivelines = append(c.Drivelines, Driveline{
			ID:        obj.Name,
			Data:      driveline.Parse(obj, rep),
			Kind:      kind,
			Lower:     props.DrivelineLower,
			Upper:     props.DrivelineUpper,
			Invisible: props.DrivelineInvisible,
			Ignore:    props.DrivelineIgnore,
			Reverse:   props.DrivelineDirection == "reverse",
		})
		used[obj.Name] = true

	case obj.Kind != scene.KindEmpty && (role == scene.RoleCheckline || role == scene.RoleLapline):
		if skipDuplicate(obj.Name, used, rep) {
			return haveMain
		}
		line, ok := lineOf(obj)
		if !ok {
			report.Warnf(rep, "the checkline '%s' has no line geometry and will be ignored", obj.Name)
			return haveMain
		}
		c.Checklines = append(c.Checklines, Checkline{
			ID:       obj.Name,
			Line:     line,
			Index:    props.ChecklineIndex,
			Activate: props.ChecklineActivate,
			Lapline:  role == scene.RoleLapline,
		})
		used[obj.Name] = true

	case obj.Kind != scene.KindEmpty && role == scene.RoleNavmesh:
		if c.Navmesh != nil {
			report.Warnf(rep, "the navmesh '%s' will be ignored, as the scene cannot contain "+
				"multiple navmeshes", obj.Name)
			return haveMain
		}
		c.Navmesh = driveline.ParseNavmesh(obj, rep)

	case obj.Kind != scene.KindEmpty && role == scene.RoleCannonStart:
		c.collectCannon(obj, byName, used, rep)

	case obj.Kind != scene.KindEmpty && role == scene.RoleGoal:
		if skipDuplicate(obj.Name, used, rep) {
			return haveMain
		}
		line, ok := lineOf(obj)
		if !ok {
			report.Warnf(rep, "the goal '%s' has no line geometry and will be ignored", obj.Name)
			return haveMain
		}
		c.Goals = append(c.Goals, Goal{
			ID:   obj.Name,
			Line: line,
			Ally: props.GoalTeam == "ally",
		})
		used[obj.Name] = true
	}

	return haveMain
}

func (c *SceneCollection) collectObject(s *scene.Scene, obj *scene.Object,
	props *scene.TrackProps, used map[string]bool, rep report.Func) {

	id := props.Name
	if id == "" {
		id = obj.Name
	}
	if skipDuplicate(id, used, rep) {
		return
	}

	isStatic := props.Interaction == "static" || props.Interaction == "physics"
	to := TrackObject{
		ID:           id,
		Object:       obj,
		Transform:    scene.EngineTransform(obj),
		LODDistance:  -1,
		LODModifiers: -1,
		UVSpeedDT:    -1,
		Visibility:   DetailOff,
		Interaction:  parseInteraction(props.Interaction),
		Shape:        parseShape(props.Shape),
		Glow:         props.GlowColor,
		Mass:         props.Mass,
		VisibleIf:    props.VisibleIf,
		OnCollision:  props.OnKartCollision,
		CustomXML:    props.CustomXML,
	}

	if props.Role == scene.RoleLODInstance && props.LODCollection != "" {
		if group := findCollection(s.Root, props.LODCollection); group != nil && len(group.Objects) > 0 {
			to.LODGroup = props.LODCollection
			c.LODGroups[props.LODCollection] = group.Objects
		}
	}
	if props.Role == scene.RoleLODStandalone {
		to.LODDistance = props.LODDistance
		if props.LODModifiers {
			to.LODModifiers = props.LODModifiersDistance
		}
		c.LODGroups[id] = []*scene.Object{obj}
	}

	if props.UVAnimated && props.UVMaterial != "" {
		to.UVMaterial = props.UVMaterial
		to.UVSpeedU = props.UVSpeedU
		to.UVSpeedV = props.UVSpeedV
		if props.UVStep {
			to.UVSpeedDT = props.UVSpeedDT
		}
	}

	if props.Visibility {
		to.Visibility = parseDetailLevel(props.VisibilityDetail)
		isStatic = false
	}

	if props.Interaction == "static" && props.Driveable {
		to.Flags |= FlagDriveable
	}
	if props.Interaction == "movable" && props.SoccerBall {
		to.Flags |= FlagSoccerBall
		isStatic = false
	}
	if props.Glow {
		to.Flags |= FlagGlow
		isStatic = false
	}
	if props.Shadows {
		to.Flags |= FlagShadows
	} else {
		isStatic = false
	}

	if isStatic && (props.VisibleIf != "" || props.OnKartCollision != "") {
		isStatic = false
	}
	if isStatic && obj.Animated() {
		isStatic = false
	}

	if !isStatic {
		to.Animation = anim.Extract(obj, id, rep)
	}

	if isStatic {
		c.StaticObjects = append(c.StaticObjects, to)
	} else {
		c.DynamicObjects = append(c.DynamicObjects, to)
	}
	used[id] = true
}

func (c *SceneCollection) collectPlaceable(obj *scene.Object, used map[string]bool, rep report.Func) {
	if skipDuplicate(obj.Name, used, rep) {
		return
	}
	props := obj.Track
	kind, ok := parsePlaceable(props.Role)
	if !ok {
		return
	}

	var visibility EggVisibility
	for _, v := range props.EggVisibility {
		switch v {
		case "easy":
			visibility |= EggEasy
		case "intermediate":
			visibility |= EggIntermediate
		case "hard":
			visibility |= EggHard
		}
	}

	c.Placeables = append(c.Placeables, Placeable{
		ID:         obj.Name,
		Transform:  scene.EngineTransform(obj),
		Kind:       kind,
		StartIndex: props.StartIndex,
		SnapGround: props.SnapGround,
		CTFOnly:    props.CTFOnly,
		Visibility: visibility,
	})
	used[obj.Name] = true
}

func (c *SceneCollection) collectBillboard(obj *scene.Object, props *scene.TrackProps,
	used map[string]bool, rep report.Func) {

	if skipDuplicate(obj.Name, used, rep) {
		return
	}
	if obj.Mesh == nil || len(obj.Mesh.Vertices) != 4 || len(obj.Mesh.Faces) != 1 {
		report.Warnf(rep, "the billboard '%s' has an invalid shape; make sure it has no more "+
			"than 4 vertices and consists of only one face", obj.Name)
		return
	}

	material := billboardMaterial(obj)
	if material == "" {
		report.Warnf(rep, "the billboard '%s' has no material assigned", obj.Name)
		return
	}

	normal := billboardNormal(obj.Mesh)
	var size math.Vec2
	switch {
	case normal.AngleTo(math.Vec3{Z: 1}) < axisTolerance || normal.AngleTo(math.Vec3{Z: -1}) < axisTolerance:
		size = math.Vec2{X: obj.Dimensions.X, Y: obj.Dimensions.Y}
	case normal.AngleTo(math.Vec3{Y: 1}) < axisTolerance || normal.AngleTo(math.Vec3{Y: -1}) < axisTolerance:
		size = math.Vec2{X: obj.Dimensions.X, Y: obj.Dimensions.Z}
	default:
		size = math.Vec2{X: obj.Dimensions.Y, Y: obj.Dimensions.Z}
	}

	fadeoutStart, fadeoutEnd := float32(-1), float32(-1)
	if props.Fadeout {
		fadeoutStart = props.FadeoutStart
		fadeoutEnd = props.FadeoutEnd
	}

	c.Billboards = append(c.Billboards, Billboard{
		ID:           obj.Name,
		Transform:    scene.EngineTransform(obj),
		Animation:    anim.Extract(obj, obj.Name, rep),
		Material:     material,
		Size:         size,
		FadeoutStart: fadeoutStart,
		FadeoutEnd:   fadeoutEnd,
	})
	used[obj.Name] = true
}

func billboardMaterial(obj *scene.Object) string {
	if len(obj.Materials) == 0 {
		return ""
	}
	idx := obj.Mesh.Faces[0].MaterialIndex
	if idx < 0 || idx >= len(obj.Materials) {
		return ""
	}
	return obj.Materials[idx]
}

// billboardNormal sums the vertex normals, falling back to the face plane
// normal for meshes without normal data.
func billboardNormal(m *scene.Mesh) math.Vec3 {
	var n math.Vec3
	for _, vn := range m.Normals {
		n = n.Add(vn)
	}
	if n.Length() > 0 {
		return n
	}
	f := m.Faces[0].Vertices
	a := m.Vertices[f[1]].Sub(m.Vertices[f[0]])
	b := m.Vertices[f[2]].Sub(m.Vertices[f[0]])
	return a.Cross(b)
}

func (c *SceneCollection) collectCannon(obj *scene.Object, byName map[string]*scene.Object,
	used map[string]bool, rep report.Func) {

	if skipDuplicate(obj.Name, used, rep) {
		return
	}
	props := obj.Track

	end := byName[props.CannonEndTrigger]
	if end == nil {
		report.Warnf(rep, "the cannon '%s' has no end defined and will be ignored", obj.Name)
		return
	}
	path := byName[props.CannonPath]
	if path == nil || path.Curve == nil {
		report.Warnf(rep, "the cannon '%s' has no curve defined and will be ignored", obj.Name)
		return
	}
	if obj.Mesh == nil || len(obj.Mesh.Edges) != 1 || end.Mesh == nil || len(end.Mesh.Edges) != 1 {
		report.Warnf(rep, "the cannon '%s' has invalid start or end lines and will be ignored", obj.Name)
		return
	}

	startLine, _ := lineOf(obj)
	endLine, _ := lineOf(end)

	c.Cannons = append(c.Cannons, Cannon{
		ID:    obj.Name,
		Curve: path,
		Start: startLine,
		End:   endLine,
		Speed: props.CannonSpeed,
	})
	used[obj.Name] = true
}

func (c *SceneCollection) collectLight(obj *scene.Object, used map[string]bool, rep report.Func) {
	props := obj.Light

	if props.Kind == scene.LightSun {
		if c.Sun != nil {
			report.Warnf(rep, "the sun '%s' will be ignored, as the scene cannot contain "+
				"multiple suns", obj.Name)
			return
		}
		c.Sun = &Sun{
			Transform: scene.EngineTransform(obj),
			Diffuse:   props.Color,
			Specular:  props.Specular,
		}
		return
	}

	if skipDuplicate(obj.Name, used, rep) {
		return
	}
	energy := props.Energy
	if energy == 0 {
		energy = 100
	}
	c.Lights = append(c.Lights, PointLight{
		ID:        obj.Name,
		Transform: scene.EngineTransform(obj),
		Distance:  props.Distance,
		Energy:    energy,
		Color:     props.Color,
		VisibleIf: props.VisibleIf,
	})
	used[obj.Name] = true
}

func (c *SceneCollection) collectCamera(obj *scene.Object, used map[string]bool, rep report.Func) {
	props := obj.Camera
	if props.Kind == scene.CameraNone {
		return
	}
	if skipDuplicate(obj.Name, used, rep) {
		return
	}
	order := props.Order
	if props.AutoOrder {
		order = -1
	}
	c.Cameras = append(c.Cameras, Camera{
		ID:           obj.Name,
		Transform:    scene.EngineTransform(obj),
		Animation:    anim.Extract(obj, obj.Name, rep),
		RotationMode: obj.RotationMode,
		Kind:         props.Kind,
		Distance:     props.Distance,
		Order:        order,
	})
	used[obj.Name] = true
}

// lineOf extracts the two endpoints of a line mesh in engine world space.
func lineOf(obj *scene.Object) (Line, bool) {
	if obj.Mesh == nil || len(obj.Mesh.Vertices) < 2 {
		return Line{}, false
	}
	world := obj.WorldMatrix()
	return Line{
		scene.EnginePoint(world.TransformVec3(obj.Mesh.Vertices[0])),
		scene.EnginePoint(world.TransformVec3(obj.Mesh.Vertices[1])),
	}, true
}

// findCollection looks up a collection by name in the enabled tree.
func findCollection(root *scene.Collection, name string) *scene.Collection {
	if root == nil {
		return nil
	}
	if root.Name == name {
		return root
	}
	for _, child := range root.Children {
		if found := findCollection(child, name); found != nil {
			return found
		}
	}
	return nil
}

// orderDrivelines moves the main driveline to index 0.
func orderDrivelines(c *SceneCollection) {
	ordered := make([]Driveline, 0, len(c.Drivelines))
	for _, d := range c.Drivelines {
		if d.Kind == DrivelineMain {
			ordered = append([]Driveline{d}, ordered...)
		} else {
			ordered = append(ordered, d)
		}
	}
	c.Drivelines = ordered
}
