package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/niudunkule/ctviz/pkg/io"
	"github.com/niudunkule/ctviz/pkg/viz"
)

// perfOpts holds the command-line flags for the perf command.
type perfOpts struct {
	output  string
	epoch   int
	noCache bool
}

// perfCommand creates the perf command for rendering the curve panel.
func (c *CLI) perfCommand() *cobra.Command {
	var opts perfOpts

	cmd := &cobra.Command{
		Use:   "perf [history.json]",
		Short: "Render the loss and PSNR curve panel for a training run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPerf(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "plots directory (default from config)")
	cmd.Flags().IntVarP(&opts.epoch, "epoch", "e", 0, "zero-based epoch index")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "skip the font archive cache")

	return cmd
}

func (c *CLI) runPerf(cmd *cobra.Command, input string, opts *perfOpts) error {
	ctx := cmd.Context()
	prog := newProgress(c.Logger)

	train, val, err := io.ImportHistory(input)
	if err != nil {
		return err
	}
	c.Logger.Debugf("Loaded history with %d epochs from %s", len(train[viz.KeyPerceptualLoss]), input)

	composer, err := c.newComposer(ctx, opts.output, opts.noCache)
	if err != nil {
		return err
	}

	if err := composer.PerformancePanel(train, val, opts.epoch); err != nil {
		return err
	}

	prog.done("Rendered performance panel")
	printSuccess("Performance panel for epoch %d", opts.epoch+1)
	printFile(filepath.Join(composer.PlotsDir(), viz.PerformanceFilename(opts.epoch)))
	return nil
}
