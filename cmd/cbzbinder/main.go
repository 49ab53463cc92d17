// Command cbzbinder merges groups of small comic archives into numbered
// volume archives, driven by a CSV configuration table inside the target
// directory.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/backmassage/cbzbinder/internal/config"
	"github.com/backmassage/cbzbinder/internal/display"
	"github.com/backmassage/cbzbinder/internal/logging"
	"github.com/backmassage/cbzbinder/internal/pipeline"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

var (
	flagDryRun  bool
	flagVerbose bool
	flagTable   string

	rootCmd = &cobra.Command{
		Use:   "cbzbinder [flags] <root-dir>",
		Short: "Merge comic chapter archives into numbered volumes",
		Long: `cbzbinder reads a CSV table inside <root-dir> describing which of its
subfolders to process and how many chapter archives go into each volume.
For every listed folder it moves special releases (SP01, SP02, ...) into
a Specials subdirectory, skips archives already tagged as volumes, and
merges the rest into consecutively numbered V-archives with renumbered
pages.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
)

func init() {
	rootCmd.Flags().BoolVarP(&flagDryRun, "dry-run", "d", false, "compute and log the plan without touching any files")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log per-file extraction and deletion details")
	rootCmd.Flags().StringVar(&flagTable, "table", "", "configuration table filename inside the root directory")
}

func run(rootDir string) error {
	cfg := config.DefaultConfig()
	cfg.RootDir = config.NormalizeDirArg(rootDir)

	if fi, err := os.Stat(cfg.RootDir); err != nil || !fi.IsDir() {
		return fmt.Errorf("directory not found: %s", cfg.RootDir)
	}

	found, err := config.LoadSettings(&cfg)
	if err != nil {
		return err
	}

	// Flags beat the settings file.
	cfg.DryRun = flagDryRun
	cfg.Verbose = flagVerbose
	if flagTable != "" {
		cfg.TableFile = flagTable
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.RootDir, cfg.Verbose)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner()

	log.Info("=== cbzbinder v%s (%s) ===", version, commit)
	log.Info("Root: %s", cfg.RootDir)
	log.Info("Log:  %s", log.Path())
	if found {
		log.Info("Settings loaded from %s", config.SettingsFile)
	}

	if _, err := pipeline.Run(&cfg, log); err != nil {
		log.Error("%v", err)
		return err
	}
	return nil
}

func main() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s (commit: %s)", version, commit)),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
