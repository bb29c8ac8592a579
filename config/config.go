// Package config loads curve configurations from YAML files, SVG drawings,
// plain point lists and the presets embedded in this package.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/bezier"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by Load for files that are neither YAML
// nor SVG.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Load reads a configuration from path, choosing the format by extension.
// The result is not validated; ComputeCurve does that.
func Load(path string) (bezier.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return bezier.Config{}, errors.Wrapf(err, "could not read config %q", path)
	}

	var cfg bezier.Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		cfg, err = LoadYAML(bytes.NewReader(data))
	case ".svg":
		cfg, err = LoadSVG(bytes.NewReader(data))
	default:
		return bezier.Config{}, errors.Wrapf(ErrUnsupportedFormat, "%q", ext)
	}
	if err != nil {
		return bezier.Config{}, errors.Wrapf(err, "could not load config %q", path)
	}
	return cfg, nil
}

type yamlConfig struct {
	ControlPoints []yamlPoint `yaml:"controlPoints"`
	Step          *float64    `yaml:"step"`
}

// Points can be written either as {x: 1, y: 2} or as [1, 2].
type yamlPoint bezier.Point

func (p *yamlPoint) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var xy []float64
		if err := node.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return errors.Errorf("line %d: point needs 2 coordinates, got %d", node.Line, len(xy))
		}
		p.X, p.Y = xy[0], xy[1]
	case yaml.MappingNode:
		var xy struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
		}
		if err := node.Decode(&xy); err != nil {
			return err
		}
		p.X, p.Y = xy.X, xy.Y
	default:
		return errors.Errorf("line %d: point must be a sequence or a mapping", node.Line)
	}
	return nil
}

// LoadYAML decodes a configuration document. A missing step means
// bezier.DefaultStep.
func LoadYAML(r io.Reader) (bezier.Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var doc yamlConfig
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return bezier.Config{}, errors.New("empty config")
		}
		return bezier.Config{}, errors.Wrap(err, "invalid YAML config")
	}

	cfg := bezier.Config{Step: bezier.DefaultStep}
	if doc.Step != nil {
		cfg.Step = *doc.Step
	}
	cfg.ControlPoints = make([]bezier.Point, len(doc.ControlPoints))
	for i, p := range doc.ControlPoints {
		cfg.ControlPoints[i] = bezier.Point(p)
	}
	return cfg, nil
}
