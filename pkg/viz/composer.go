package viz

import (
	"os"
	"path/filepath"

	"github.com/niudunkule/ctviz/pkg/errors"
	"github.com/niudunkule/ctviz/pkg/viz/colormap"
	"github.com/niudunkule/ctviz/pkg/viz/styles"
)

// History keys read by PerformancePanel.
const (
	KeyPerceptualLoss = "p_loss"
	KeyPSNR           = "psnr"
)

// History maps a metric name to its per-epoch series.
type History map[string][]float64

// Composer renders diagnostic figures into a plots directory. It holds
// only immutable state (styles, options) and is safe to reuse across an
// entire training run.
type Composer struct {
	style    *styles.Config
	plotsDir string
	cmap     *colormap.Colormap
}

// Option configures a Composer.
type Option func(*Composer)

// WithColormap renders image cells through the given gradient instead of
// the default gray ramp.
func WithColormap(m colormap.Colormap) Option {
	return func(c *Composer) { c.cmap = &m }
}

// NewComposer creates a composer writing into plotsDir, which is created
// if absent.
func NewComposer(style *styles.Config, plotsDir string, opts ...Option) (*Composer, error) {
	if style == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "style configuration is required")
	}
	if plotsDir == "" {
		return nil, errors.New(errors.ErrCodeInvalidPath, "plots directory is required")
	}
	if err := os.MkdirAll(plotsDir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIOFailure, err, "create plots directory %s", plotsDir)
	}

	c := &Composer{style: style, plotsDir: plotsDir}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// PlotsDir returns the output directory.
func (c *Composer) PlotsDir() string { return c.plotsDir }

// writeFile persists a serialized figure under the plots directory.
// Writes are not transactional; a crash mid-write leaves a partial file.
func (c *Composer) writeFile(name string, data []byte) error {
	path := filepath.Join(c.plotsDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIOFailure, err, "write %s", path)
	}
	return nil
}
