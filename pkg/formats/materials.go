package formats

import (
	"io"

	"github.com/Faultbox/antarctica-export/pkg/scene"
)

// WriteMaterials serializes the material-to-texture mapping. Materials without
// a texture or shader assignment carry no engine-relevant data and are
// skipped.
func WriteMaterials(w io.Writer, materials []scene.Material) error {
	f := newXMLFile(w)
	f.open("<materials>")

	for _, m := range materials {
		if m.Texture == "" && m.Shader == "" {
			continue
		}
		attrs := "name=\"" + escape(materialTexture(materials, m.Name)) + "\""
		if m.Shader != "" {
			attrs += " shader=\"" + escape(m.Shader) + "\""
		}
		f.line("<material %s/>", attrs)
	}

	f.close("materials")
	return f.err
}
