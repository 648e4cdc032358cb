package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ff66ccff/SearchForPE/internal/config"
	"github.com/ff66ccff/SearchForPE/internal/service/bundler"
	"github.com/ff66ccff/SearchForPE/internal/version"
)

var (
	// configPath stores the path to the bundle manifest YAML file.
	configPath string
	// noOpen disables opening the output directory after a successful bundle.
	noOpen bool
	// noPause disables waiting for operator acknowledgment before exit.
	noPause bool

	// rootCmd represents the base command for bundling the application.
	rootCmd = &cobra.Command{
		Use:   "searchforpe-bundler",
		Short: "Bundle the question bank application into a standalone executable",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &bundler.Options{
				ConfigPath: configPath,
				NoOpen:     noOpen,
			}

			err := bundler.Run(ctx, options)

			// The tool is often launched from a file browser; keep the
			// console open so the operator can read the outcome.
			waitForOperator()

			return err
		},
	}
)

// Execute runs the searchforpe-bundler CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// waitForOperator blocks until the operator presses Enter, unless disabled.
func waitForOperator() {
	if noPause {
		return
	}

	fmt.Print("Press Enter to close...")

	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultManifestFilename, "path to bundle manifest")
	rootCmd.Flags().BoolVar(&noOpen, "no-open", false, "do not open the output directory on success")
	rootCmd.Flags().BoolVar(&noPause, "no-pause", false, "do not wait for Enter before exiting")
}
