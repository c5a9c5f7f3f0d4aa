package theme

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pazarplus/toastkit/pkg/toast"
)

// ErrUnknownVariant is returned when an override file names a variant
// outside the closed set.
var ErrUnknownVariant = errors.New("theme: unknown variant in override file")

type overrideFile struct {
	Variants map[string]Palette `yaml:"variants"`
}

// LoadFile applies palette overrides from a YAML file on top of the
// built-in styles. Icon glyphs and ARIA attributes are not overridable;
// only colors are. Empty color fields keep their defaults.
func LoadFile(path string) (*Theme, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: read override file: %w", err)
	}
	return Parse(raw)
}

// Parse builds a theme from raw YAML override content.
func Parse(raw []byte) (*Theme, error) {
	var file overrideFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("theme: parse override file: %w", err)
	}

	t := New()
	for name, p := range file.Variants {
		v := toast.Variant(name)
		if !v.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
		}
		s := t.styles[v]
		if p.Background != "" {
			s.Palette.Background = p.Background
		}
		if p.Icon != "" {
			s.Palette.Icon = p.Icon
		}
		if p.Progress != "" {
			s.Palette.Progress = p.Progress
		}
		t.styles[v] = s
	}
	return t, nil
}
