// Package main provides the CLI entrypoint for monogen.
//
// monogen turns generic class templates into concrete, non-generic copies:
//   - Reads a YAML directive file listing templates and their instantiations
//   - Rewrites each template once per instantiation, in text
//   - Writes the generated sources into a package-shaped output tree
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose       bool
	directivePath string
	outputDir     string
	strictRules   bool
	jobs          int

	// Logger
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "monogen",
	Short: "monogen - generic template monomorphization",
	Long: `monogen generates concrete copies of generic templates.

Every instantiation listed in the directive file produces one new type with
the type parameters replaced by concrete types, the type-parameter clause and
generator annotations removed, and a provenance header on top.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error

		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVarP(&directivePath, "file", "f", "monogen.yaml", "directive file")
	pf.StringVarP(&outputDir, "output", "o", "", "output root (overrides the directive file)")
	pf.BoolVar(&strictRules, "strict", false, "fail instantiations whose replacement rules match nothing")
	pf.IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "templates processed in parallel")

	rootCmd.AddCommand(genCmd, checkCmd, namesCmd, watchCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
