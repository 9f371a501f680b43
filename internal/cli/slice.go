package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/niudunkule/ctviz/pkg/io"
	"github.com/niudunkule/ctviz/pkg/metrics"
	"github.com/niudunkule/ctviz/pkg/viz"
)

// sliceOpts holds the command-line flags for the slice command.
type sliceOpts struct {
	output  string
	epoch   int
	noCache bool
}

// sliceCommand creates the slice command for rendering full-resolution
// test triplets.
func (c *CLI) sliceCommand() *cobra.Command {
	var opts sliceOpts

	cmd := &cobra.Command{
		Use:   "slice [case.json]",
		Short: "Render a full-resolution test triplet with its scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSlice(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "plots directory (default from config)")
	cmd.Flags().IntVarP(&opts.epoch, "epoch", "e", 0, "epoch number for the output filename")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "skip the font archive cache")

	return cmd
}

func (c *CLI) runSlice(cmd *cobra.Command, input string, opts *sliceOpts) error {
	ctx := cmd.Context()
	prog := newProgress(c.Logger)

	tc, err := io.ImportCase(input)
	if err != nil {
		return err
	}

	// Compute scores when the file does not carry them.
	scores := tc.Scores
	if scores == nil {
		scores, err = metrics.Evaluate(tc.SuperRes, tc.HighRes)
		if err != nil {
			return err
		}
		c.Logger.Debugf("Computed scores for %s: mse=%.3e psnr=%.3f",
			tc.Name, scores[metrics.KeyMSE], scores[metrics.KeyPSNR])
	}

	composer, err := c.newComposer(ctx, opts.output, opts.noCache)
	if err != nil {
		return err
	}

	if err := composer.FullSliceTriplet(tc.LowRes, tc.SuperRes, tc.HighRes, scores, tc.Name, opts.epoch); err != nil {
		return err
	}

	prog.done("Rendered full-slice triplet")
	printSuccess("Test sheet for case %s", tc.Name)
	printFile(filepath.Join(composer.PlotsDir(), viz.TestResultsFilename(tc.Name, opts.epoch)))
	return nil
}
