// Package styles bundles the fonts and colors shared by every plot.
//
// A Config is built once at startup, after the font assets have been
// ensured, and passed read-only to all render calls. It replaces the
// process-wide font and color singletons of earlier designs with an
// explicit dependency.
package styles

import (
	"github.com/niudunkule/ctviz/pkg/errors"
	"github.com/niudunkule/ctviz/pkg/fonts"
)

// Config is an immutable bundle of font handles and palette colors.
type Config struct {
	Fonts   *fonts.Set
	Palette Palette
}

// New creates a style configuration from an ensured font set and the
// default palette.
func New(fs *fonts.Set) (*Config, error) {
	if fs == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "font set is required")
	}
	return &Config{
		Fonts:   fs,
		Palette: DefaultPalette(),
	}, nil
}
