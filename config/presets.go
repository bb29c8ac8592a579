package config

import (
	"bytes"
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/osuushi/bezier"
	"github.com/pkg/errors"
)

// Presets are YAML configs available by name in the presets/ directory,
// sans extension.

//go:embed presets
var presets embed.FS

var ErrUnknownPreset = errors.New("unknown preset")

// Preset loads the embedded configuration called name.
func Preset(name string) (bezier.Config, error) {
	data, err := presets.ReadFile("presets/" + name + ".yaml")
	if err != nil {
		return bezier.Config{}, errors.Wrapf(ErrUnknownPreset, "%q", name)
	}
	cfg, err := LoadYAML(bytes.NewReader(data))
	if err != nil {
		return bezier.Config{}, errors.Wrapf(err, "preset %q", name)
	}
	return cfg, nil
}

// Presets lists the embedded preset names in sorted order.
func Presets() []string {
	entries, err := fs.ReadDir(presets, "presets")
	if err != nil {
		panic(err) // the directory is embedded
	}
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if path.Ext(name) != ".yaml" {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".yaml"))
	}
	sort.Strings(names)
	return names
}
