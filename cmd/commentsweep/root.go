package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"commentsweep/internal/config"
	"commentsweep/internal/run"
	"commentsweep/internal/sweep"
	"commentsweep/internal/version"
	"commentsweep/internal/walk"
)

var (
	cfgFile    string
	dryRun     bool
	aggressive bool
	excludes   []string
	extensions []string
	reportPath string
)

var rootCmd = &cobra.Command{
	Use:   "commentsweep [paths...]",
	Short: "Strip removable // comments from source files",
	Long: `commentsweep removes inline and trivial standalone // comments from
source files while preserving doc comments (/// and //!), marker comments
(TODO, FIXME, NOTE, SAFETY, HACK, XXX), block comments, and leading file
headers. Paths may be files or directories; directories are scanned
recursively for files with a target extension.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runSweep,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the commentsweep version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("commentsweep %s\n", version.Version)
	},
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default "+config.DefaultFile+" if present)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without modifying files")
	rootCmd.Flags().BoolVar(&aggressive, "aggressive", false, "drop all standalone non-doc, non-marker comments")
	rootCmd.Flags().StringArrayVar(&excludes, "exclude", nil, "skip files whose path contains or glob-matches the pattern (repeatable)")
	rootCmd.Flags().StringArrayVar(&extensions, "ext", nil, "target file extension, dot included (repeatable; default .rs)")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "write a JSON run report to this file")
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the effective configuration: the --config file if
// given, else .commentsweep.yaml when present, else built-in defaults.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	cfg, err := config.Load(config.DefaultFile)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

// mergeFlags layers command-line values over cfg. Boolean flags and
// repeatable list flags are additive; --ext replaces the configured
// extension list when given.
func mergeFlags(cfg *config.Config, paths []string) {
	if len(paths) > 0 {
		cfg.Paths = paths
	}
	if len(extensions) > 0 {
		cfg.Extensions = extensions
	}
	cfg.Exclude = append(cfg.Exclude, excludes...)
	if aggressive {
		cfg.Aggressive = true
	}
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	mergeFlags(cfg, args)

	files, skipped, err := walk.Discover(cfg.Paths, walk.Options{
		Extensions: cfg.Extensions,
		Exclude:    cfg.Exclude,
	})
	if err != nil {
		return err
	}
	for _, path := range skipped {
		fmt.Fprintf(os.Stderr, "Skipping %s: extension not targeted\n", path)
	}

	runner := &run.Runner{
		Sweeper: sweep.New(sweep.Options{
			ShortCommentLimit: cfg.ShortCommentLimit,
			TrivialPhrases:    cfg.TrivialPhrases,
			PreserveMarkers:   cfg.PreserveMarkers,
			Aggressive:        cfg.Aggressive,
		}),
		DryRun: dryRun,
	}

	fmt.Printf("Processing %d files...\n", len(files))
	rep, err := runner.Run(files)
	if err != nil {
		return err
	}
	runner.PrintSummary(rep)

	if reportPath != "" {
		if err := run.WriteReport(reportPath, rep); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
