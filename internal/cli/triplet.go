package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/niudunkule/ctviz/pkg/io"
	"github.com/niudunkule/ctviz/pkg/viz"
)

// tripletOpts holds the command-line flags for the triplet command.
type tripletOpts struct {
	output  string // plots directory (overrides config)
	epoch   int    // zero-based epoch index
	noCache bool   // skip the font archive cache
}

// tripletCommand creates the triplet command for rendering 3×8 comparison grids.
func (c *CLI) tripletCommand() *cobra.Command {
	var opts tripletOpts

	cmd := &cobra.Command{
		Use:   "triplet [samples.json]",
		Short: "Render a 3×8 low/super/high-resolution comparison grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTriplet(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "plots directory (default from config)")
	cmd.Flags().IntVarP(&opts.epoch, "epoch", "e", 0, "zero-based epoch index")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "skip the font archive cache")

	return cmd
}

func (c *CLI) runTriplet(cmd *cobra.Command, input string, opts *tripletOpts) error {
	ctx := cmd.Context()
	prog := newProgress(c.Logger)

	batch, err := io.ImportSamples(input)
	if err != nil {
		return err
	}
	c.Logger.Debugf("Loaded %d samples from %s", len(batch.LowRes), input)

	composer, err := c.newComposer(ctx, opts.output, opts.noCache)
	if err != nil {
		return err
	}

	if err := composer.TripletGrid(batch.LowRes, batch.SuperRes, batch.HighRes, opts.epoch); err != nil {
		return err
	}

	prog.done("Rendered triplet grid")
	printSuccess("Triplet grid for epoch %d", opts.epoch+1)
	printFile(filepath.Join(composer.PlotsDir(), viz.VisualizationFilename(opts.epoch)))
	return nil
}
