package cli

import (
	"github.com/spf13/cobra"

	"github.com/niudunkule/ctviz/pkg/fonts"
)

// fontsCommand creates the fonts command for installing the font assets
// ahead of the first render.
func (c *CLI) fontsCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "Download and install the font assets",
		Long: `Download the ` + fonts.FamilyName + ` archive and unpack it into the
resource directory. Rendering commands do this automatically on first
use; run it explicitly to warm the assets on an offline machine or to
verify connectivity.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := newSpinnerWithContext(cmd.Context(), "Fetching font archive")
			spinner.Start()

			set, err := c.ensureFonts(cmd.Context(), noCache)
			if err != nil {
				spinner.StopWithError("Font assets unavailable")
				return err
			}

			spinner.StopWithSuccess("Font assets installed")
			printDetail("Face: %s", set.Title.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "skip the font archive cache")
	return cmd
}
