package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoRoot indicates a snapshot without a root collection.
	ErrNoRoot = errors.New("scene: snapshot has no root collection")
)

// Load reads a scene snapshot from a YAML file.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene snapshot: %w", err)
	}
	defer f.Close()
	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene snapshot from YAML.
func Parse(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, err
	}
	if s.Root == nil {
		return nil, ErrNoRoot
	}
	if s.FPS == 0 {
		s.FPS = 25
	}
	return &s, nil
}
