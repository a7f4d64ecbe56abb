package formats

import "github.com/Faultbox/antarctica-export/pkg/anim"

// writeCurves emits the curve nodes of an extracted animation. Keyframe time
// is written with one decimal, values with three; bezier curves additionally
// carry their handle pairs.
func (f *xmlFile) writeCurves(a *anim.Animation) {
	if a == nil {
		return
	}
	for _, c := range a.Curves {
		f.open("<curve channel=\"%s\" interpolation=\"%s\" extend=\"%s\">",
			c.Channel, c.Interpolation, c.Extend)

		if c.Interpolation == anim.InterpBezier {
			for _, p := range c.Points {
				f.line("<p c=\"%.1f %.3f\" h1=\"%.1f %.3f\" h2=\"%.1f %.3f\"/>",
					p.Frame, p.Value, p.H1.X, p.H1.Y, p.H2.X, p.H2.Y)
			}
		} else {
			for _, p := range c.Points {
				f.line("<p c=\"%.1f %.3f\"/>", p.Frame, p.Value)
			}
		}

		f.close("curve")
	}
}
