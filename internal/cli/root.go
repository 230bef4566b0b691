// Package cli provides the command-line interface for the dominant binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/dominant"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
)

// Version is the release version, overridden at build time via ldflags.
var Version = "dev"

// NewRootCmd builds the root command. Each call returns a fresh command so
// tests can run it repeatedly without sharing flag state.
func NewRootCmd() *cobra.Command {
	var (
		number   int
		weights  bool
		single   bool
		seed     int64
		parallel bool
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "dominant [flags] <image>",
		Short: "Find the dominant colors of an image",
		Long: `Find the dominant colors of an image.

The image is downscaled, clustered, and the resulting palette is printed
in descending dominance order, one #RRGGBB hex value per line. By default
the palette holds up to four colors; use --number to change the palette
size, --single to reduce the output to the one color that best represents
the image, and --weights to append each color's share of the image pixels.

Supported image formats: PNG, JPEG, GIF, WebP

Examples:
  # Print up to four dominant colors
  dominant wallpaper.png

  # Print the eight most dominant colors with their pixel shares
  dominant --weights -n 8 wallpaper.jpg

  # Print the single most representative color
  dominant --single photo.png

  # Reproducible output for scripting
  dominant --seed 42 wallpaper.png`,
		Version: Version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imagePath := args[0]

			if verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "Loading image: %s\n", imagePath)
			}

			img, err := imaging.Load(imagePath)
			if err != nil {
				return fmt.Errorf("failed to load image: %w", err)
			}

			if verbose {
				bounds := img.Bounds()
				fmt.Fprintf(cmd.ErrOrStderr(), "Image loaded: %dx%d\n", bounds.Dx(), bounds.Dy())
			}

			var opts []dominant.Option
			if cmd.Flags().Changed("seed") {
				opts = append(opts, dominant.WithSeed(seed))
			}
			if parallel {
				opts = append(opts, dominant.WithParallel())
			}

			out := cmd.OutOrStdout()
			switch {
			case single:
				if verbose {
					fmt.Fprintln(cmd.ErrOrStderr(), "Selecting the most representative color...")
				}
				c := dominant.Find(img, opts...)
				fmt.Fprintln(out, c.Hex())
			case weights:
				if verbose {
					fmt.Fprintf(cmd.ErrOrStderr(), "Clustering into up to %d colors...\n", number)
				}
				palette := dominant.FindWeight(img, number, opts...)
				if verbose {
					fmt.Fprintf(cmd.ErrOrStderr(), "Found %d colors\n", len(palette))
				}
				for _, c := range palette {
					fmt.Fprintf(out, "%s %.4f\n", c.Hex(), c.Weight)
				}
			default:
				if verbose {
					fmt.Fprintf(cmd.ErrOrStderr(), "Clustering into up to %d colors...\n", number)
				}
				colors := dominant.FindN(img, number, opts...)
				if verbose {
					fmt.Fprintf(cmd.ErrOrStderr(), "Found %d colors\n", len(colors))
				}
				for _, c := range colors {
					fmt.Fprintln(out, c.Hex())
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&number, "number", "n", dominant.DefaultClusters, "number of colors to extract")
	cmd.Flags().BoolVar(&weights, "weights", false, "append each color's pixel share to the output")
	cmd.Flags().BoolVar(&single, "single", false, "print only the single most representative color")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible clustering (time-seeded when omitted)")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "spread pixel assignment across CPU cores")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	cmd.MarkFlagsMutuallyExclusive("single", "weights")

	return cmd
}
