// Package scene loads layout scenes from TOML or YAML files and replays them
// into a clay.Context. Scenes are a debugging aid: they pin down a tree of
// boxes and a pointer position so hover lookahead can be inspected offline.
package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/clay"
)

// Scene is a layout area, a pointer and a tree of elements.
type Scene struct {
	Width    float64 `toml:"width" yaml:"width"`
	Height   float64 `toml:"height" yaml:"height"`
	Pointer  Pointer `toml:"pointer" yaml:"pointer"`
	Elements []Node  `toml:"elements" yaml:"elements"`
}

// Pointer is the pointer state applied between the two passes.
type Pointer struct {
	X    float64 `toml:"x" yaml:"x"`
	Y    float64 `toml:"y" yaml:"y"`
	Down bool    `toml:"down" yaml:"down"`
}

// Node is one element. At most one of ID and Local may be set; with neither
// the element is anonymous.
type Node struct {
	ID       string  `toml:"id" yaml:"id"`       // global id, clay.IDI(ID, Index)
	Local    string  `toml:"local" yaml:"local"` // ElementIDLocalWithIndex(Local, Index)
	Index    uint32  `toml:"index" yaml:"index"`
	X        float64 `toml:"x" yaml:"x"`
	Y        float64 `toml:"y" yaml:"y"`
	Width    float64 `toml:"width" yaml:"width"`
	Height   float64 `toml:"height" yaml:"height"`
	Color    string  `toml:"color" yaml:"color"` // #rrggbb or #rrggbbaa
	Children []Node  `toml:"children" yaml:"children"`
}

// ErrUnknownFormat is returned by Load for unsupported file extensions.
var ErrUnknownFormat = errors.New("unknown scene format")

// Load reads a scene, choosing the decoder by file extension.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}

	var s Scene
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &s); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks sizes, colors and id fields.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("layout size must be positive, got %vx%v", s.Width, s.Height)
	}
	var check func(path string, nodes []Node) error
	check = func(path string, nodes []Node) error {
		for i := range nodes {
			n := &nodes[i]
			p := fmt.Sprintf("%s/%d", path, i)
			if n.ID != "" && n.Local != "" {
				return fmt.Errorf("%s: id and local are mutually exclusive", p)
			}
			if n.Width < 0 || n.Height < 0 {
				return fmt.Errorf("%s: negative size", p)
			}
			if _, err := ParseColor(n.Color); err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			if err := check(p, n.Children); err != nil {
				return err
			}
		}
		return nil
	}
	return check("", s.Elements)
}

// ParseColor parses #rrggbb or #rrggbbaa. The empty string is transparent.
func ParseColor(s string) (clay.Color, error) {
	if s == "" {
		return clay.ColorTransparent, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return clay.Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return clay.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return clay.Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Dimensions returns the layout size.
func (s *Scene) Dimensions() clay.Dimensions {
	return clay.Dimensions{Width: float32(s.Width), Height: float32(s.Height)}
}
