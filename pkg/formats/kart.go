package formats

import (
	"io"

	"github.com/Faultbox/antarctica-export/pkg/collect"
	"github.com/Faultbox/antarctica-export/pkg/report"
	"github.com/Faultbox/antarctica-export/pkg/scene"
)

// kartFileVersion is the kart.xml format version understood by the engine.
const kartFileVersion = 3

// kartAnimations lists the timeline marker names that translate into kart
// animation frames. Markers with other names are ignored.
var kartAnimations = []string{
	"straight", "right", "left",
	"start-winning", "start-winning-loop", "end-winning", "end-winning-straight",
	"start-losing", "start-losing-loop", "end-losing", "end-losing-straight",
	"start-explosion", "end-explosion",
	"start-jump", "start-jump-loop", "end-jump",
	"backpedal", "backpedal-right", "backpedal-left",
	"selection-start", "selection-end",
}

// wheelNames maps the wheel quadrant order of collect.WheelOrder to the
// element names the engine expects.
var wheelNames = [4]string{"front-left", "front-right", "rear-left", "rear-right"}

// WriteKart serializes the kart metadata document. Unlike track colors, the
// kart highlight color is written as float channels in 0-1.
func WriteKart(w io.Writer, s *scene.Scene, c *collect.KartCollection, rep report.Func) error {
	f := newXMLFile(w)
	set := &s.Settings
	kart := &set.Kart

	attrs := "name=\"" + escape(set.Name) + "\"" +
		" groups=\"" + escape(kartGroup(set.Groups)) + "\"" +
		" version=\"" + itoa(kartFileVersion) + "\"" +
		" type=\"" + escape(kart.Type) + "\"" +
		" rgb=\"" + f2(kart.HighlightColor.X) + " " + f2(kart.HighlightColor.Y) + " " + f2(kart.HighlightColor.Z) + "\"" +
		" model-file=\"" + escape(set.Identifier) + ".spm\""
	if kart.Icon != "" {
		attrs += " icon-file=\"" + escape(kart.Icon) + "\""
	}
	if kart.IconMinimap != "" {
		attrs += " minimap-icon-file=\"" + escape(kart.IconMinimap) + "\""
	}
	if kart.Shadow != "" {
		attrs += " shadow-file=\"" + escape(kart.Shadow) + "\""
	}
	f.open("<kart %s>", attrs)

	if kart.Lean {
		f.line("<lean max=\"%s\"/>", f2(kart.LeanMax))
	}

	f.writeKartAnimations(set.Markers, c.FPS)
	f.writeKartSounds(kart)

	exhaust := kart.Exhaust
	if exhaust == "" {
		exhaust = "kart_exhaust.xml"
	}
	f.line("<exhaust file=\"%s\"/>", escape(exhaust))

	f.writeWheels(c, rep)
	f.writeSpeedWeighted(c.SpeedWeighted)
	f.writeNitroEmitters(c.NitroEmitters)
	f.writeHeadlights(c.Headlights)

	if c.Hat != nil {
		f.line("<hat %s%s/>", attrTransform(scene.EngineTransform(c.Hat)), attrBone(c.Hat))
	}

	f.close("kart")
	return f.err
}

// kartGroup resolves the special category spellings the engine expects.
func kartGroup(group string) string {
	switch group {
	case "add-ons":
		return "Add-Ons"
	case "wip":
		return "wip-kart"
	default:
		return group
	}
}

func (f *xmlFile) writeKartAnimations(markers map[string]int, fps float32) {
	attrs := ""
	for _, name := range kartAnimations {
		frame, ok := markers[name]
		if !ok {
			continue
		}
		attrs += " " + name + "=\"" + itoa(frame) + "\""
	}
	if attrs == "" {
		return
	}
	f.line("<animations speed=\"%s\"%s/>", f1(fps), attrs)
}

func (f *xmlFile) writeKartSounds(kart *scene.KartSettings) {
	if kart.SkidSound == "" {
		f.line("<sounds engine=\"%s\"/>", escape(kart.EngineSFX))
		return
	}
	f.open("<sounds engine=\"%s\">", escape(kart.EngineSFX))
	f.line("<skid name=\"%s\" volume=\"%s\" rolloff=\"%s\" max_dist=\"%s\"/>",
		escape(kart.SkidSound), f2(kart.SFXVolume), f2(kart.SFXRolloff), f2(kart.SFXDistance))
	f.close("sounds")
}

// writeWheels emits one element per wheel quadrant. An incomplete wheel set
// has already been reported by the collector; the section is skipped so the
// engine never sees a partial block.
func (f *xmlFile) writeWheels(c *collect.KartCollection, rep report.Func) {
	if len(c.Wheels) != 4 {
		return
	}
	ordered := c.WheelOrder()
	for i, w := range ordered {
		if w == nil {
			report.Errorf(rep, "no wheel found in the %s quadrant", wheelNames[i])
			return
		}
	}

	f.open("<wheels>")
	for i, w := range ordered {
		f.line("<%s %s model=\"wheel-%s.spm\"/>",
			wheelNames[i], attrXYZ(scene.EngineTransform(w)), wheelNames[i])
	}
	f.close("wheels")
}

func (f *xmlFile) writeSpeedWeighted(objects []collect.SpeedWeighted) {
	if len(objects) == 0 {
		return
	}
	f.open("<speed-weighted-objects>")
	for _, sw := range objects {
		f.line("<object %s%s model=\"%s.spm\" strength-factor=\"%s\" speed-factor=\"%s\""+
			" texture-speed-x=\"%s\" texture-speed-y=\"%s\"/>",
			attrTransform(scene.EngineTransform(sw.Object)), attrBone(sw.Object),
			escape(sw.Name), f2(sw.Strength), f2(sw.Speed), f3(sw.UVSpeedU), f3(sw.UVSpeedV))
	}
	f.close("speed-weighted-objects")
}

// writeNitroEmitters emits the emitter pair. A single emitter is mirrored into
// both slots.
func (f *xmlFile) writeNitroEmitters(emitters []scene.Transform) {
	if len(emitters) == 0 {
		return
	}
	a := emitters[0]
	b := a
	if len(emitters) > 1 {
		b = emitters[1]
	}
	f.open("<nitro-emitter>")
	f.line("<nitro-emitter-a %s/>", attrXYZ(a))
	f.line("<nitro-emitter-b %s/>", attrXYZ(b))
	f.close("nitro-emitter")
}

func (f *xmlFile) writeHeadlights(objects []collect.Instanced) {
	if len(objects) == 0 {
		return
	}
	f.open("<headlights>")
	for _, i := range objects {
		f.line("<object %s%s model=\"%s.spm\"/>",
			attrTransform(scene.EngineTransform(i.Object)), attrBone(i.Object), escape(i.Name))
	}
	f.close("headlights")
}

// attrBone formats the optional bone attachment attribute, with a leading
// space for appending after a transform.
func attrBone(o *scene.Object) string {
	if o.ParentBone == "" {
		return ""
	}
	return " bone=\"" + escape(o.ParentBone) + "\""
}
