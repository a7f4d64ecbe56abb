// Package exporter orchestrates export runs: it ties the scene collectors,
// the driveline graph builder and the document writers together and reports
// a per-run summary.
package exporter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/antarctica-export/internal/config"
	"github.com/Faultbox/antarctica-export/internal/logger"
	"github.com/Faultbox/antarctica-export/pkg/collect"
	"github.com/Faultbox/antarctica-export/pkg/driveline"
	"github.com/Faultbox/antarctica-export/pkg/formats"
	"github.com/Faultbox/antarctica-export/pkg/report"
	"github.com/Faultbox/antarctica-export/pkg/scene"
)

// ErrOutputExists is returned when a target file exists and overwriting is
// disabled.
var ErrOutputExists = errors.New("output file already exists")

// ErrNoDriveline is returned for race tracks without a usable main driveline.
var ErrNoDriveline = errors.New("no main driveline in scene")

// Exporter runs export pipelines against one configuration.
type Exporter struct {
	cfg *config.Config
}

// New returns an Exporter using cfg.
func New(cfg *config.Config) *Exporter {
	return &Exporter{cfg: cfg}
}

// Summary describes one finished export run.
type Summary struct {
	Files    []string
	Warnings int
	Errors   int
}

// Track exports a track scene: metadata, scene graph, navigation data and
// materials, per the configured toggles.
func (e *Exporter) Track(s *scene.Scene) (*Summary, error) {
	e.applyFPSOverride(s)

	var log report.Log
	rep := forward(&log)

	c := collect.Track(s, rep)
	sum := &Summary{}

	if err := e.writeFile(sum, "track.xml", func(w io.Writer) error {
		return formats.WriteTrack(w, s, c, rep)
	}); err != nil {
		return sum, err
	}

	if e.cfg.Export.Scene {
		if err := e.writeFile(sum, "scene.xml", func(w io.Writer) error {
			return formats.WriteScene(w, s, c, rep)
		}); err != nil {
			return sum, err
		}
	}

	if e.cfg.Export.Drivelines {
		if err := e.writeNavigation(sum, s, c, rep); err != nil {
			return sum, err
		}
	}

	if e.cfg.Export.Materials {
		if err := e.writeFile(sum, "materials.xml", func(w io.Writer) error {
			return formats.WriteMaterials(w, s.Materials)
		}); err != nil {
			return sum, err
		}
	}

	e.finish(sum, &log, "track export finished", s.Settings.Identifier)
	return sum, nil
}

// Kart exports a kart scene.
func (e *Exporter) Kart(s *scene.Scene) (*Summary, error) {
	e.applyFPSOverride(s)

	var log report.Log
	rep := forward(&log)

	c := collect.Kart(s, rep)
	sum := &Summary{}

	if err := e.writeFile(sum, "kart.xml", func(w io.Writer) error {
		return formats.WriteKart(w, s, c, rep)
	}); err != nil {
		return sum, err
	}

	if e.cfg.Export.Materials {
		if err := e.writeFile(sum, "materials.xml", func(w io.Writer) error {
			return formats.WriteMaterials(w, s.Materials)
		}); err != nil {
			return sum, err
		}
	}

	e.finish(sum, &log, "kart export finished", s.Settings.Identifier)
	return sum, nil
}

// Node exports a library node scene.
func (e *Exporter) Node(s *scene.Scene) (*Summary, error) {
	e.applyFPSOverride(s)

	var log report.Log
	rep := forward(&log)

	n := collect.Node(s, rep)
	sum := &Summary{}

	if e.cfg.Export.Scene {
		if err := e.writeFile(sum, "node.xml", func(w io.Writer) error {
			return formats.WriteNode(w, s, n)
		}); err != nil {
			return sum, err
		}
	}

	if e.cfg.Export.Materials {
		if err := e.writeFile(sum, "materials.xml", func(w io.Writer) error {
			return formats.WriteMaterials(w, s.Materials)
		}); err != nil {
			return sum, err
		}
	}

	e.finish(sum, &log, "library node export finished", s.Settings.Identifier)
	return sum, nil
}

// writeNavigation emits the driveline quads and graph for race tracks, or the
// navigation mesh for arena and soccer tracks.
func (e *Exporter) writeNavigation(sum *Summary, s *scene.Scene,
	c *collect.SceneCollection, rep report.Func) error {

	if c.Navmesh != nil {
		return e.writeFile(sum, "navmesh.xml", func(w io.Writer) error {
			return formats.WriteNavmesh(w, c.Navmesh)
		})
	}

	if s.Settings.TrackType != scene.TrackRace {
		return nil
	}
	if len(c.Drivelines) == 0 || c.Drivelines[0].Kind != collect.DrivelineMain {
		return ErrNoDriveline
	}

	main := strip(c.Drivelines[0])
	var branches []driveline.Strip
	for _, d := range c.Drivelines[1:] {
		branches = append(branches, strip(d))
	}
	g := driveline.Build(main, branches, rep)

	if err := e.writeFile(sum, "quads.xml", func(w io.Writer) error {
		return formats.WriteQuads(w, g)
	}); err != nil {
		return err
	}
	return e.writeFile(sum, "graph.xml", func(w io.Writer) error {
		return formats.WriteGraph(w, g)
	})
}

func strip(d collect.Driveline) driveline.Strip {
	return driveline.Strip{
		Data:      d.Data,
		Invisible: d.Invisible,
		AIIgnore:  d.Ignore,
	}
}

func (e *Exporter) applyFPSOverride(s *scene.Scene) {
	if e.cfg.Export.FPS > 0 {
		s.FPS = e.cfg.Export.FPS
	}
}

// writeFile creates one output document under the configured directory and
// records it in the summary.
func (e *Exporter) writeFile(sum *Summary, name string, write func(io.Writer) error) error {
	path := filepath.Join(e.cfg.Output.Dir, name)

	if !e.cfg.Output.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrOutputExists, path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Debug("wrote file", zap.String("path", path))
	sum.Files = append(sum.Files, path)
	return nil
}

// forward returns a report function that both collects into log and mirrors
// each message to the structured logger.
func forward(log *report.Log) report.Func {
	sink := log.Func()
	return func(severity report.Severity, msg string) {
		sink(severity, msg)
		if severity == report.SeverityError {
			logger.Error(msg)
		} else {
			logger.Warn(msg)
		}
	}
}

func (e *Exporter) finish(sum *Summary, log *report.Log, msg, identifier string) {
	sum.Warnings = log.Warnings()
	sum.Errors = log.Errors()
	logger.Info(msg,
		zap.String("identifier", identifier),
		zap.Int("files", len(sum.Files)),
		zap.Int("warnings", sum.Warnings),
		zap.Int("errors", sum.Errors))
}
