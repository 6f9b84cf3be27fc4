package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/jonathanmweiss/go-unimode/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with -ldflags, but *not* when installing via
// "go install".
var Version string

// newRootCmd builds the command tree. A fresh tree is built per invocation so
// that flag state never leaks between runs.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "polymode",
		Short: "Classify integer polynomials by the number of their interior extrema.",
		Long: `polymode works with polynomials given as comma separated coefficient lists,
lowest degree first ("1,-2,1" is 1 - 2p + p^2). Lists starting with a minus
sign must follow "--" so they are not mistaken for flags.

Settings may also be given through POLYMODE_* environment variables
(POLYMODE_A, POLYMODE_B, POLYMODE_TOLERANCE, POLYMODE_MAX_STEPS, POLYMODE_VAR,
POLYMODE_VERBOSE); explicit flags take precedence.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if GetFlag(cmd, "version") {
				fmt.Fprintf(cmd.OutOrStdout(), "polymode %s\n", version())
				return nil
			}

			return cmd.Help()
		},
	}

	config.RegisterFlags(root.PersistentFlags())
	root.Flags().Bool("version", false, "print version and exit")

	root.AddCommand(
		newClassifyCmd(),
		newEvalCmd(),
		newDeriveCmd(),
		newComposeCmd(),
		newPowCmd(),
	)

	return root
}

func version() string {
	if Version != "" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}

	return "(unknown version)"
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the settings for cmd and configures logging.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return config.Config{}, err
	}

	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	log.Debugf("settings: interval [%g, %g], tolerance %g, max steps %d", cfg.A, cfg.B, cfg.Tolerance, cfg.MaxSteps)

	return cfg, nil
}
