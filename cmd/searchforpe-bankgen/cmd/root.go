package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ff66ccff/SearchForPE/internal/config"
	"github.com/ff66ccff/SearchForPE/internal/service/bankgen"
	"github.com/ff66ccff/SearchForPE/internal/version"
)

var (
	// outputPath stores the path the question bank JSON is written to.
	outputPath string

	// rootCmd represents the base command for generating the question bank.
	rootCmd = &cobra.Command{
		Use:   "searchforpe-bankgen [transcript-file]",
		Short: "Parse an exam transcript into the question bank JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &bankgen.Options{
				InputPath:  args[0],
				OutputPath: outputPath,
			}

			return bankgen.Run(ctx, options)
		},
	}
)

// Execute runs the searchforpe-bankgen CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultBankFilename, "path to the question bank JSON")
}
