package cli

import (
	"context"

	"github.com/niudunkule/ctviz/pkg/fonts"
	"github.com/niudunkule/ctviz/pkg/viz"
	"github.com/niudunkule/ctviz/pkg/viz/colormap"
	"github.com/niudunkule/ctviz/pkg/viz/styles"
)

// newComposer wires a figure composer from the active configuration:
// font assets are ensured (downloading on first run), the style config is
// built, and a configured colormap is applied.
func (c *CLI) newComposer(ctx context.Context, plotsDir string, noCache bool) (*viz.Composer, error) {
	set, err := c.ensureFonts(ctx, noCache)
	if err != nil {
		return nil, err
	}

	style, err := styles.New(set)
	if err != nil {
		return nil, err
	}

	var opts []viz.Option
	if stops := c.Config.Colormap; len(stops) > 0 {
		cm, err := colormap.BuildHex(stops...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, viz.WithColormap(cm))
	}

	if plotsDir == "" {
		plotsDir = c.Config.PlotsDir
	}
	return viz.NewComposer(style, plotsDir, opts...)
}

// ensureFonts makes the font assets available, fetching the archive on
// first use. Failure here is fatal for every render command.
func (c *CLI) ensureFonts(ctx context.Context, noCache bool) (*fonts.Set, error) {
	dir := c.Config.ResourceDir
	if dir == "" {
		d, err := dataDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	archiveCache, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	defer archiveCache.Close()

	return fonts.Ensure(ctx, dir,
		fonts.WithURL(c.Config.ArchiveURL),
		fonts.WithCache(archiveCache),
	)
}
