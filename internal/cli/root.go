package cli

import (
	"bmpsteg/pkg/config"

	"github.com/spf13/cobra"
)

type rootOpts struct {
	requireUncompressed bool
	cpuProfile          string
	memProfileDir       string
}

func (o *rootOpts) stegoConfig() config.StegoConfig {
	return config.StegoConfig{RequireUncompressed: o.requireUncompressed}
}

// RootCommand builds the bmpsteg command tree. Profilers started from the persistent flags are stopped by
// StopProfilers, which the caller must also invoke when a command fails.
func RootCommand() *cobra.Command {
	opts := &rootOpts{}

	rootCmd := &cobra.Command{
		Use:          "bmpsteg",
		Short:        "Hide data in uncompressed bitmaps using LSB steganography",
		Example:      "bmpsteg encode carrier.bmp stego.bmp \"meet me at noon\"",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.startProfilers()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			StopProfilers()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.requireUncompressed, "require-uncompressed", false, "Refuse bitmaps whose header declares a compression method")
	rootCmd.PersistentFlags().StringVar(&opts.cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&opts.memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	rootCmd.AddCommand(
		encodeBitmapCommand(opts),
		decodeBitmapCommand(opts),
		inspectBitmapCommand(),
		carrierCommand(),
		ServeAppCommand(opts),
	)
	return rootCmd
}

func (o *rootOpts) startProfilers() error {
	if o.cpuProfile != "" {
		if err := StartCPUProfiler(o.cpuProfile); err != nil {
			return err
		}
	}
	if o.memProfileDir != "" {
		StartMemoryProfiler(o.memProfileDir)
	}
	return nil
}
