// Package formats writes the engine's XML output documents: the scene graph,
// navigation quads and graph, track/kart metadata, library nodes and material
// mappings. All documents are UTF-8 with Unix newlines and start with an XML
// declaration followed by a generator comment. Serializers assume validated
// input; see the collect package.
package formats

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Faultbox/antarctica-export/pkg/math"
	"github.com/Faultbox/antarctica-export/pkg/scene"
)

const (
	xmlHeader    = "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n"
	xmlGenerator = "<!-- generated by antarctica-export -->\n"
)

// xmlFile accumulates output lines and tracks the first write error, so the
// serializers can emit unconditionally and report once.
type xmlFile struct {
	w      io.Writer
	indent int
	err    error
}

func newXMLFile(w io.Writer) *xmlFile {
	f := &xmlFile{w: w}
	f.raw(xmlHeader)
	f.raw(xmlGenerator)
	return f
}

func (f *xmlFile) raw(s string) {
	if f.err != nil {
		return
	}
	_, f.err = io.WriteString(f.w, s)
}

func (f *xmlFile) line(format string, args ...any) {
	f.raw(strings.Repeat("  ", f.indent))
	f.raw(fmt.Sprintf(format, args...))
	f.raw("\n")
}

func (f *xmlFile) open(format string, args ...any) {
	f.line(format, args...)
	f.indent++
}

func (f *xmlFile) close(tag string) {
	f.indent--
	f.line("</%s>", tag)
}

// f2 formats a float with two decimals, the precision used for all spatial
// values.
func f2(v float32) string {
	return fmt.Sprintf("%.2f", v)
}

func f1(v float32) string {
	return fmt.Sprintf("%.1f", v)
}

func f3(v float32) string {
	return fmt.Sprintf("%.3f", v)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

// xyz formats a position attribute.
func xyz(p math.Vec3) string {
	return fmt.Sprintf("xyz=\"%.2f %.2f %.2f\"", p.X, p.Y, p.Z)
}

// attrTransform formats the full placement: position, Euler rotation and
// scale.
func attrTransform(t scene.Transform) string {
	return fmt.Sprintf("%s hpr=\"%.2f %.2f %.2f\" scale=\"%.2f %.2f %.2f\"",
		xyz(t.Location),
		t.Rotation.X, t.Rotation.Y, t.Rotation.Z,
		t.Scale.X, t.Scale.Y, t.Scale.Z)
}

// attrXYZ formats the position only, for entities without orientation.
func attrXYZ(t scene.Transform) string {
	return xyz(t.Location)
}

// attrXYZH formats position plus heading, for entities rotating around the
// vertical axis only.
func attrXYZH(t scene.Transform) string {
	return fmt.Sprintf("%s h=\"%.2f\"", xyz(t.Location), t.Rotation.Y)
}

// color formats a color as "R G B" integer channels in 0-255.
func color(c math.Vec3) string {
	return fmt.Sprintf("%d %d %d", channel(c.X), channel(c.Y), channel(c.Z))
}

func channel(v float32) int {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return int(v*255 + 0.5)
}

// escape replaces the XML attribute metacharacters in user-provided strings.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
)

func escape(s string) string {
	return escaper.Replace(s)
}

// onOff renders a boolean flag attribute value.
func onOff(b bool) string {
	if b {
		return "y"
	}
	return "n"
}

// materialTexture resolves a material name to its texture filename. Materials
// without an explicit texture fall back to the material name with a png
// extension.
func materialTexture(materials []scene.Material, name string) string {
	for _, m := range materials {
		if m.Name == name {
			if m.Texture != "" {
				return m.Texture
			}
			break
		}
	}
	return name + ".png"
}
