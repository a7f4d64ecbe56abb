package formats

import (
	"io"

	"github.com/Faultbox/antarctica-export/pkg/collect"
	"github.com/Faultbox/antarctica-export/pkg/report"
	"github.com/Faultbox/antarctica-export/pkg/scene"
)

// trackFileVersion is the track.xml format version understood by the engine.
const trackFileVersion = 7

// WriteTrack serializes the track metadata document. The element carries only
// attributes; all spatial data lives in scene.xml and the navigation files.
func WriteTrack(w io.Writer, s *scene.Scene, c *collect.SceneCollection, rep report.Func) error {
	f := newXMLFile(w)
	set := &s.Settings

	attrs := "name=\"" + escape(set.Name) + "\"" +
		" version=\"" + itoa(trackFileVersion) + "\"" +
		" groups=\"" + escape(set.Groups) + "\"" +
		" designer=\"" + escape(set.Designer) + "\""

	if set.Music != "" {
		attrs += " music=\"" + escape(set.Music) + "\""
	} else if set.TrackType != scene.TrackCutscene {
		report.Warnf(rep, "no music file defined; the default music will be used")
	}

	switch set.TrackType {
	case scene.TrackArena:
		attrs += " arena=\"Y\" max-arena-players=\"" + itoa(maxArenaPlayers(c, set.CTF)) + "\""
		if set.CTF {
			attrs += " ctf=\"Y\""
		}
	case scene.TrackSoccer:
		attrs += " soccer=\"Y\""
	case scene.TrackCutscene:
		attrs += " cutscene=\"Y\""
	}
	if set.Internal {
		attrs += " internal=\"Y\""
	}
	if !set.PushBack {
		attrs += " push-back=\"N\""
	}
	if !set.AutoRescue {
		attrs += " auto-rescue=\"N\""
	}

	if set.Screenshot != "" {
		attrs += " screenshot=\"" + escape(set.Screenshot) + "\""
	} else if set.TrackType != scene.TrackCutscene {
		report.Warnf(rep, "no screenshot defined")
	}

	attrs += " smooth-normals=\"" + yn(set.SmoothNormals) + "\""
	attrs += " default-number-of-laps=\"" + itoa(defaultLaps(set)) + "\""
	attrs += " reverse=\"" + yn(set.Reverse) + "\""
	attrs += " clouds=\"" + yn(set.Clouds) + "\""
	attrs += " is-during-day=\"" + yn(set.DuringDay) + "\""
	attrs += " shadows=\"" + yn(set.Shadows) + "\""

	f.line("<track %s>", attrs)
	f.line("</track>")
	return f.err
}

func defaultLaps(set *scene.Settings) int {
	if set.DefaultLaps <= 0 {
		return 3
	}
	return set.DefaultLaps
}

// maxArenaPlayers counts the start positions usable in free-for-all battles.
// CTF-only markers belong to the flag teams and do not raise the limit.
func maxArenaPlayers(c *collect.SceneCollection, ctf bool) int {
	n := 0
	for _, p := range c.Placeables {
		if p.Kind != collect.PlaceStartPosition {
			continue
		}
		if ctf && p.CTFOnly {
			continue
		}
		n++
	}
	return n
}

func yn(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}
