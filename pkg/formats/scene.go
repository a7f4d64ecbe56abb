package formats

import (
	"io"
	"sort"

	"github.com/Faultbox/antarctica-export/pkg/collect"
	"github.com/Faultbox/antarctica-export/pkg/math"
	"github.com/Faultbox/antarctica-export/pkg/report"
	"github.com/Faultbox/antarctica-export/pkg/scene"
)

// Standalone LOD objects get a synthetic group named after themselves.
const standaloneLODPrefix = "_standalone_"

// WriteScene serializes the classified track scene. The section order is a
// correctness requirement of the consuming engine: check structures must
// precede every scripted or conditional object, or lap counting misbehaves.
func WriteScene(w io.Writer, s *scene.Scene, c *collect.SceneCollection, rep report.Func) error {
	f := newXMLFile(w)
	f.open("<scene>")

	f.writeLOD(c)
	f.writeTrack(s, c)
	f.writeStartPositions(s, c, rep)
	f.writeChecks(c, rep)
	f.writeLibraries(c)
	f.writeDynamicObjects(c)
	f.writeBillboards(s, c)
	f.writeActionTriggers(c)
	f.writeCutsceneCameras(c)
	f.writeAudioSources(c)
	f.writeParticles(c)
	f.writeGodrays(c)
	f.writeLights(c)
	f.writePlaceables(c, rep)
	f.writeLighting(s, c)
	f.writeCameras(s, c)

	f.close("scene")
	return f.err
}

func (f *xmlFile) writeLOD(c *collect.SceneCollection) {
	if len(c.LODGroups) == 0 {
		return
	}

	names := make([]string, 0, len(c.LODGroups))
	for name := range c.LODGroups {
		names = append(names, name)
	}
	sort.Strings(names)

	f.line("<!-- level-of-detail groups -->")
	f.open("<lod>")
	for _, name := range names {
		objects := c.LODGroups[name]
		var standalone *scene.TrackProps
		if len(objects) == 1 {
			props := objects[0].Track
			if props == nil {
				props = objects[0].Library
			}
			if props != nil && props.Role == scene.RoleLODStandalone {
				standalone = props
			}
		}

		if standalone != nil {
			obj := objects[0]
			props := standalone
			id := props.Name
			if id == "" {
				id = obj.Name
			}
			group := standaloneLODPrefix + id

			f.open("<group name=\"%s\">", escape(group))
			if props.LODModifiers {
				f.line("<static-object model=\"%s.spm\" lod_distance=\"%s\" lod_group=\"%s\" skeletal-animation=\"%s\"/>",
					escape(id), f2(props.LODModifiersDistance), escape(group), onOff(obj.Armature))
				f.line("<static-object model=\"%s_low.spm\" lod_distance=\"%s\" lod_group=\"%s\" skeletal-animation=\"%s\"/>",
					escape(id), f2(props.LODDistance), escape(group), onOff(obj.Armature))
			} else {
				f.line("<static-object model=\"%s.spm\" lod_distance=\"%s\" lod_group=\"%s\" skeletal-animation=\"%s\"/>",
					escape(id), f2(props.LODDistance), escape(group), onOff(obj.Armature))
			}
			f.close("group")
			continue
		}

		f.open("<group name=\"%s\">", escape(name))
		for _, model := range objects {
			props := model.Track
			if props == nil {
				props = model.Library
			}
			if props == nil || props.Role != scene.RoleLODModel {
				continue
			}
			id := props.Name
			if id == "" {
				id = model.Name
			}
			f.line("<static-object model=\"%s.spm\" lod_distance=\"%s\" lod_group=\"%s\" skeletal-animation=\"%s\"/>",
				escape(id), f2(props.LODDistance), escape(name), onOff(model.Armature))
		}
		f.close("group")
	}
	f.close("lod")
}

func (f *xmlFile) writeTrack(s *scene.Scene, c *collect.SceneCollection) {
	f.line("<!-- track model and static objects -->")
	f.open("<track model=\"%s_track.spm\" x=\"0\" y=\"0\" z=\"0\">", escape(s.Settings.Identifier))
	for _, o := range c.StaticObjects {
		f.writeObject("static-object", o, c.FPS)
	}
	f.close("track")
}

func (f *xmlFile) writeDynamicObjects(c *collect.SceneCollection) {
	if len(c.DynamicObjects) == 0 {
		return
	}
	f.line("<!-- dynamic/animated and non-static objects -->")
	for _, o := range c.DynamicObjects {
		f.writeObject("object", o, c.FPS)
	}
}

// writeObject emits one generic scene object. Optional attributes follow the
// sparse-emission rule: a governing toggle that is off produces no attribute
// at all.
func (f *xmlFile) writeObject(tag string, o collect.TrackObject, fps float32) {
	attrs := "id=\"" + escape(o.ID) + "\" " + attrTransform(o.Transform)

	switch {
	case o.Interaction == collect.InteractMovable:
		attrs += " type=\"movable\""
	case o.Animation != nil:
		attrs += " type=\"animation\" fps=\"" + f2(fps) + "\""
	default:
		attrs += " type=\"static\""
	}

	isLOD := false
	switch {
	case o.LODGroup != "":
		attrs += " lod_instance=\"y\" lod_group=\"" + escape(o.LODGroup) + "\""
		isLOD = true
	case o.LODDistance >= 0:
		attrs += " lod_instance=\"y\" lod_group=\"" + escape(standaloneLODPrefix+o.ID) + "\""
		isLOD = true
	default:
		attrs += " model=\"" + escape(o.ID) + ".spm\" skeletal-animation=\"" + onOff(o.Object.Armature) + "\""
	}

	if o.Visibility != collect.DetailOff {
		attrs += " geometry-level=\"" + itoa(int(o.Visibility)) + "\""
	}

	switch o.Interaction {
	case collect.InteractMovable:
		attrs += " interaction=\"movable\""
	case collect.InteractGhost:
		attrs += " interaction=\"ghost\""
	case collect.InteractPhysics:
		attrs += " interaction=\"physics-only\""
	case collect.InteractReset:
		attrs += " interaction=\"reset\" reset=\"y\""
	case collect.InteractKnock:
		attrs += " interaction=\"explode\" explode=\"y\""
	case collect.InteractFlatten:
		attrs += " interaction=\"flatten\" flatten=\"y\""
	}

	// Ghost and physics-only objects carry no shape; LOD instances only
	// when movable, and then without exact collision.
	shape := o.Shape.String()
	switch {
	case !isLOD && o.Interaction != collect.InteractGhost && o.Interaction != collect.InteractPhysics:
		attrs += " shape=\"" + shape + "\""
	case isLOD && o.Interaction == collect.InteractMovable:
		if o.Shape == collect.ShapeExact {
			shape = collect.ShapeBox.String()
		}
		attrs += " shape=\"" + shape + "\""
	}

	if o.Interaction == collect.InteractMovable && o.Mass > 0 {
		attrs += " mass=\"" + f2(o.Mass) + "\""
	}

	if o.Flags&collect.FlagDriveable != 0 {
		attrs += " driveable=\"y\""
	}
	if o.Flags&collect.FlagSoccerBall != 0 {
		attrs += " soccer_ball=\"y\""
	}
	if o.Flags&collect.FlagGlow != 0 {
		attrs += " glow=\"" + color(o.Glow) + "\""
	}
	if o.Flags&collect.FlagShadows == 0 {
		attrs += " shadow-pass=\"n\""
	}

	if o.VisibleIf != "" {
		attrs += " if=\"" + escape(o.VisibleIf) + "\""
	}
	if o.OnCollision != "" {
		attrs += " on-kart-collision=\"" + escape(o.OnCollision) + "\""
	}
	if o.CustomXML != "" {
		attrs += " " + o.CustomXML
	}

	if o.UVMaterial == "" && o.Animation == nil {
		f.line("<%s %s/>", tag, attrs)
		return
	}

	f.open("<%s %s>", tag, attrs)
	if o.UVMaterial != "" {
		uv := "name=\"" + escape(o.UVMaterial) + "\""
		if o.UVSpeedDT >= 0 {
			uv += " animByStep=\"y\" dt=\"" + f3(o.UVSpeedDT) + "\""
		}
		f.line("<animated-texture %s dx=\"%.5f\" dy=\"%.5f\"/>", uv, o.UVSpeedU, o.UVSpeedV)
	}
	f.writeCurves(o.Animation)
	f.close(tag)
}

func (f *xmlFile) writeStartPositions(s *scene.Scene, c *collect.SceneCollection, rep report.Func) {
	f.line("<!-- start positions -->")

	if s.Settings.TrackType == scene.TrackRace {
		f.line("<default-start karts-per-row=\"%d\" forwards-distance=\"%s\" sidewards-distance=\"%s\" upwards-distance=\"%s\"/>",
			s.Settings.StartKartsPerRow,
			f2(s.Settings.StartForward), f2(s.Settings.StartSide), f2(s.Settings.StartUp))
		return
	}

	starts := make(map[int]collect.Placeable)
	ctfStarts := make(map[int]collect.Placeable)
	for _, p := range c.Placeables {
		if p.Kind != collect.PlaceStartPosition {
			continue
		}
		bucket := starts
		if p.CTFOnly {
			bucket = ctfStarts
		}
		if _, dup := bucket[p.StartIndex]; dup {
			report.Warnf(rep, "start position index '%d' is already used; this start position "+
				"will be ignored", p.StartIndex)
			continue
		}
		bucket[p.StartIndex] = p
	}

	if len(starts) > 0 && len(starts) < 4 {
		report.Warnf(rep, "for arenas, there should be at least 4 start positions defined")
	}
	if len(ctfStarts) > 0 && len(ctfStarts) < 16 {
		report.Warnf(rep, "for capture the flag arena mode, there should be at least 16 start "+
			"positions defined")
	}

	for _, idx := range sortedKeys(starts) {
		f.line("<start %s/>", attrXYZH(starts[idx].Transform))
	}
	for _, idx := range sortedKeys(ctfStarts) {
		f.line("<ctf-start %s/>", attrXYZH(ctfStarts[idx].Transform))
	}
}

func sortedKeys(m map[int]collect.Placeable) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// writeChecks emits the check structures. Checklines sharing an index form an
// activation group; a checkline whose activation target has no members keeps
// its own group declaration but drops the cross-reference. Goals and cannons
// are check structures too and share the section.
func (f *xmlFile) writeChecks(c *collect.SceneCollection, rep report.Func) {
	if len(c.Checklines)+len(c.Goals)+len(c.Cannons) == 0 {
		return
	}

	groups := make(map[int]bool)
	for _, cl := range c.Checklines {
		groups[cl.Index] = true
	}

	f.line("<!-- check structures -->")
	f.open("<checks>")
	for _, cl := range c.Checklines {
		tag := "check-line"
		kind := "activate"
		if cl.Lapline {
			tag = "check-lap"
			kind = "lap"
		}

		attrs := "kind=\"" + kind + "\" same-group=\"" + itoa(cl.Index) + "\""
		if groups[cl.Activate] && cl.Activate != cl.Index {
			attrs += " other-ids=\"" + itoa(cl.Activate) + "\""
		} else if !groups[cl.Activate] {
			report.Warnf(rep, "the checkline '%s' activates group %d which has no members; "+
				"lap counting may be incorrect", cl.ID, cl.Activate)
		}

		if cl.Lapline {
			f.line("<%s %s/>", tag, attrs)
		} else {
			f.line("<%s %s p1=\"%s %s\" p2=\"%s %s\" min-height=\"%s\"/>", tag, attrs,
				f2(cl.Line[0].X), f2(cl.Line[0].Z),
				f2(cl.Line[1].X), f2(cl.Line[1].Z),
				f2(minf(cl.Line[0].Y, cl.Line[1].Y)))
		}
	}

	for _, g := range c.Goals {
		f.line("<goal first_goal=\"%s\" p1=\"%s %s\" p2=\"%s %s\"/>", onOff(g.Ally),
			f2(g.Line[0].X), f2(g.Line[0].Z),
			f2(g.Line[1].X), f2(g.Line[1].Z))
	}

	for _, cn := range c.Cannons {
		f.open("<cannon p1=\"%s %s %s\" p2=\"%s %s %s\" target-p1=\"%s %s %s\" target-p2=\"%s %s %s\" speed=\"%s\">",
			f2(cn.Start[0].X), f2(cn.Start[0].Y), f2(cn.Start[0].Z),
			f2(cn.Start[1].X), f2(cn.Start[1].Y), f2(cn.Start[1].Z),
			f2(cn.End[0].X), f2(cn.End[0].Y), f2(cn.End[0].Z),
			f2(cn.End[1].X), f2(cn.End[1].Y), f2(cn.End[1].Z),
			f2(cn.Speed))
		f.writeCannonCurve(cn.Curve)
		f.close("cannon")
	}

	f.close("checks")
}

// writeCannonCurve emits the flight path control points in engine space.
func (f *xmlFile) writeCannonCurve(obj *scene.Object) {
	if obj == nil || obj.Curve == nil {
		return
	}
	world := obj.WorldMatrix()
	point := func(p math.Vec3) math.Vec3 {
		return scene.EnginePoint(world.TransformVec3(p))
	}

	f.open("<curve channel=\"LocXYZ\" interpolation=\"bezier\">")
	for _, p := range obj.Curve.Points {
		co, h1, h2 := point(p.Co), point(p.HandleLeft), point(p.HandleRight)
		f.line("<point c=\"%s %s %s\" h1=\"%s %s %s\" h2=\"%s %s %s\"/>",
			f2(co.X), f2(co.Y), f2(co.Z),
			f2(h1.X), f2(h1.Y), f2(h1.Z),
			f2(h2.X), f2(h2.Y), f2(h2.Z))
	}
	f.close("curve")
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func (f *xmlFile) writeLibraries(c *collect.SceneCollection) {
	if len(c.Libraries) == 0 {
		return
	}
	f.line("<!-- library references -->")
	for _, l := range c.Libraries {
		attrs := "name=\"" + escape(l.Node) + "\" id=\"" + escape(l.ID) + "\" " + attrTransform(l.Transform)
		if l.Animation == nil {
			f.line("<library %s/>", attrs)
			continue
		}
		f.open("<library %s fps=\"%s\">", attrs, f2(c.FPS))
		f.writeCurves(l.Animation)
		f.close("library")
	}
}

func (f *xmlFile) writeBillboards(s *scene.Scene, c *collect.SceneCollection) {
	if len(c.Billboards) == 0 {
		return
	}
	f.line("<!-- billboards -->")
	for _, b := range c.Billboards {
		attrs := "type=\"billboard\" id=\"" + escape(b.ID) + "\" " + attrXYZ(b.Transform)
		attrs += " texture=\"" + escape(materialTexture(s.Materials, b.Material)) + "\""
		attrs += " width=\"" + f2(b.Size.X) + "\" height=\"" + f2(b.Size.Y) + "\""
		if b.FadeoutStart >= 0 && b.FadeoutEnd >= 0 {
			attrs += " fadeout=\"y\" start=\"" + f2(b.FadeoutStart) + "\" end=\"" + f2(b.FadeoutEnd) + "\""
		}

		if b.Animation == nil {
			f.line("<object %s/>", attrs)
			continue
		}
		f.open("<object %s fps=\"%s\">", attrs, f2(c.FPS))
		f.writeCurves(b.Animation)
		f.close("object")
	}
}

func (f *xmlFile) writeActionTriggers(c *collect.SceneCollection) {
	if len(c.ActionTriggers) == 0 {
		return
	}
	f.line("<!-- action triggers -->")
	for _, a := range c.ActionTriggers {
		attrs := "type=\"action-trigger\" id=\"" + escape(a.ID) + "\" " + attrTransform(a.Transform)
		if a.Cylindrical {
			attrs += " trigger-type=\"cylinder\" radius=\"" + f2(a.Distance) + "\" height=\"" + f2(a.Height) + "\""
		} else {
			attrs += " trigger-type=\"point\" distance=\"" + f2(a.Distance) + "\""
		}
		attrs += " action=\"" + escape(a.Action) + "\" reenable-timeout=\"" + f2(a.Timeout) + "\""
		if a.Object != "" {
			attrs += " triggered-object=\"" + escape(a.Object) + "\""
		}

		if a.Animation == nil {
			f.line("<object %s/>", attrs)
			continue
		}
		f.open("<object %s fps=\"%s\">", attrs, f2(c.FPS))
		f.writeCurves(a.Animation)
		f.close("object")
	}
}

func (f *xmlFile) writeCutsceneCameras(c *collect.SceneCollection) {
	var cutscene []collect.Camera
	for _, cam := range c.Cameras {
		if cam.Kind == scene.CameraCutscene {
			cutscene = append(cutscene, cam)
		}
	}
	if len(cutscene) == 0 {
		return
	}

	f.line("<!-- cutscene cameras -->")
	for _, cam := range cutscene {
		attrs := "type=\"cutscene_camera\" id=\"" + escape(cam.ID) + "\" " + attrTransform(cam.Transform)
		if cam.Animation == nil {
			f.line("<object %s/>", attrs)
			continue
		}
		f.open("<object %s fps=\"%s\">", attrs, f2(c.FPS))
		f.writeCurves(cam.Animation)
		f.close("object")
	}
}

func (f *xmlFile) writeAudioSources(c *collect.SceneCollection) {
	if len(c.AudioSources) == 0 {
		return
	}
	f.line("<!-- sfx emitters -->")
	for _, sfx := range c.AudioSources {
		attrs := "type=\"sfx-emitter\" id=\"" + escape(sfx.ID) + "\" " + attrXYZ(sfx.Transform)
		attrs += " sound=\"" + escape(sfx.File) + "\""
		attrs += " volume=\"" + f2(sfx.Volume) + "\" rolloff=\"" + f2(sfx.Rolloff) + "\""
		attrs += " max_dist=\"" + f2(sfx.Distance) + "\""
		if sfx.Trigger >= 0 {
			attrs += " play-when-near=\"y\" distance=\"" + f2(sfx.Trigger) + "\""
		}
		if sfx.Condition != "" {
			attrs += " conditions=\"" + escape(sfx.Condition) + "\""
		}

		if sfx.Animation == nil {
			f.line("<object %s/>", attrs)
			continue
		}
		f.open("<object %s fps=\"%s\">", attrs, f2(c.FPS))
		f.writeCurves(sfx.Animation)
		f.close("object")
	}
}

func (f *xmlFile) writeParticles(c *collect.SceneCollection) {
	if len(c.Particles) == 0 {
		return
	}
	f.line("<!-- particle emitters -->")
	for _, p := range c.Particles {
		attrs := "id=\"" + escape(p.ID) + "\" " + attrXYZH(p.Transform)
		attrs += " kind=\"" + escape(p.File) + "\""
		if p.Distance != 0 {
			attrs += " clip_distance=\"" + f2(p.Distance) + "\""
		}
		attrs += " auto_emit=\"" + onOff(p.Emit) + "\""
		if p.Condition != "" {
			attrs += " conditions=\"" + escape(p.Condition) + "\""
		}

		if p.Animation == nil {
			f.line("<particle-emitter %s/>", attrs)
			continue
		}
		f.open("<particle-emitter %s fps=\"%s\">", attrs, f2(c.FPS))
		f.writeCurves(p.Animation)
		f.close("particle-emitter")
	}
}

func (f *xmlFile) writeGodrays(c *collect.SceneCollection) {
	if len(c.Godrays) == 0 {
		return
	}
	f.line("<!-- godrays -->")
	for _, g := range c.Godrays {
		f.line("<lightshaft id=\"%s\" %s opacity=\"%s\" color=\"%s\"/>",
			escape(g.ID), attrXYZ(g.Transform), f2(g.Opacity), color(g.Color))
	}
}

func (f *xmlFile) writeLights(c *collect.SceneCollection) {
	if len(c.Lights) == 0 {
		return
	}
	f.line("<!-- dynamic lights -->")
	for _, l := range c.Lights {
		attrs := "id=\"" + escape(l.ID) + "\" " + attrXYZ(l.Transform)
		attrs += " distance=\"" + f2(l.Distance) + "\" energy=\"" + f2(l.Energy) + "\""
		attrs += " color=\"" + color(l.Color) + "\""
		if l.VisibleIf != "" {
			attrs += " if=\"" + escape(l.VisibleIf) + "\""
		}
		f.line("<light %s/>", attrs)
	}
}

func (f *xmlFile) writePlaceables(c *collect.SceneCollection, rep report.Func) {
	var items, bananas, nitroSmall, nitroBig, flags []collect.Placeable
	for _, p := range c.Placeables {
		switch p.Kind {
		case collect.PlaceStartPosition, collect.PlaceEasterEgg:
			// Start positions have their own section; easter eggs live in
			// the easter-egg mode file.
		case collect.PlaceBanana:
			bananas = append(bananas, p)
		case collect.PlaceNitroSmall:
			nitroSmall = append(nitroSmall, p)
		case collect.PlaceNitroBig:
			nitroBig = append(nitroBig, p)
		case collect.PlaceFlagRed, collect.PlaceFlagBlue:
			flags = append(flags, p)
		default:
			items = append(items, p)
		}
	}
	if len(items)+len(bananas)+len(nitroSmall)+len(nitroBig)+len(flags) == 0 {
		return
	}

	f.line("<!-- placeables/items -->")
	write := func(group []collect.Placeable) {
		for _, p := range group {
			attrs := "id=\"" + escape(p.ID) + "\" " + attrXYZH(p.Transform)
			if !p.SnapGround {
				attrs += " drop=\"n\""
			}
			if p.CTFOnly && p.Kind != collect.PlaceFlagRed && p.Kind != collect.PlaceFlagBlue {
				attrs += " ctf=\"y\""
			}
			f.line("<%s %s/>", p.Kind, attrs)
		}
	}
	write(items)
	write(bananas)
	write(nitroSmall)
	write(nitroBig)
	write(flags)
}

func (f *xmlFile) writeLighting(s *scene.Scene, c *collect.SceneCollection) {
	f.line("<!-- scene lighting and weather effects -->")

	// Sky: texture box or flat color.
	set := s.Settings
	if len(set.SkyTextures) == 6 {
		attr := "texture"
		textures := set.SkyTextures
		if len(set.AmbientMap) == 6 {
			attr = "sh-texture"
			textures = set.AmbientMap
		}
		// Engine order: top, bottom, east, west, south, north.
		f.line("<sky-box %s=\"%s %s %s %s %s %s\"/>", attr,
			escape(textures[4]), escape(textures[5]), escape(textures[1]),
			escape(textures[3]), escape(textures[2]), escape(textures[0]))
	} else if set.SkyColor != nil {
		f.line("<sky-color rgb=\"%s\"/>", color(*set.SkyColor))
	}

	// Sun with ambient and screen-space fog.
	var attrs string
	if c.Sun != nil {
		attrs = xyz(c.Sun.Transform.Location) +
			" sun-diffuse=\"" + color(c.Sun.Diffuse) + "\"" +
			" sun-specular=\"" + color(c.Sun.Specular) + "\""
	} else {
		attrs = "xyz=\"0.00 60.00 0.00\" sun-diffuse=\"204 204 204\" sun-specular=\"255 255 255\""
	}
	if len(set.AmbientMap) != 6 {
		attrs += " ambient=\"" + color(set.Ambient) + "\""
	}
	if set.Fog {
		attrs += " fog=\"y\" fog-color=\"" + color(set.FogColor) + "\""
		attrs += " fog-max=\"" + f2(set.FogMax) + "\""
		attrs += " fog-start=\"" + f2(set.FogStart) + "\""
		attrs += " fog-end=\"" + f2(set.FogEnd) + "\""
	}
	f.line("<sun %s/>", attrs)

	// Weather effects.
	var weather string
	switch set.Weather {
	case "rain":
		weather = "particles=\"rain.xml\""
	case "snow":
		weather = "particles=\"snow.xml\""
	}
	if set.Lightning {
		if weather != "" {
			weather += " "
		}
		weather += "lightning=\"y\""
	}
	if set.WeatherSound != "" {
		if weather != "" {
			weather += " "
		}
		weather += "sound=\"" + escape(set.WeatherSound) + "\""
	}
	if weather != "" {
		f.line("<weather %s/>", weather)
	}
}

func (f *xmlFile) writeCameras(s *scene.Scene, c *collect.SceneCollection) {
	f.line("<!-- camera rendering and end cameras -->")
	f.line("<camera far=\"%s\"/>", f1(s.Settings.FarClip))

	var end []collect.Camera
	for _, cam := range c.Cameras {
		if cam.Kind == scene.CameraEndFixed || cam.Kind == scene.CameraEndKart {
			end = append(end, cam)
		}
	}
	if len(end) == 0 {
		return
	}

	f.open("<end-cameras>")
	for _, cam := range end {
		kind := "static_follow_kart"
		if cam.Kind == scene.CameraEndKart {
			kind = "ahead_of_kart"
		}
		f.line("<camera type=\"%s\" %s distance=\"%s\"/> <!-- %s -->",
			kind, attrXYZ(cam.Transform), f2(cam.Distance), cam.ID)
	}
	f.close("end-cameras")
}
