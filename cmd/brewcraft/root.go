package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/brewcraft/internal/catalog"
	"github.com/hammamikhairi/brewcraft/internal/config"
	"github.com/hammamikhairi/brewcraft/internal/logger"
)

var (
	configPath  string
	verbose     bool
	quiet       bool
	logFile     string
	effectLang  string
	noClipboard bool
	indent      int

	// Set by PersistentPreRunE for every command.
	cfg      *config.Config
	log      *logger.Logger
	closeLog = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "brewcraft",
	Short: "Recipe editor for the BreweryX plugin",
	Long: `brewcraft builds drink recipes for the BreweryX plugin.

Pick ingredients and potion effects from searchable catalogs, set names,
lore and properties, then finalize to get the recipe text ready to paste
into the plugin's config.

Modes:
  brewcraft                  Interactive editor (default)
  brewcraft catalog search   Query the catalogs without opening the editor
  brewcraft version          Print the version`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
	RunE:         runEditor,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlags(cmd, c)
		if err := c.Validate(); err != nil {
			return err
		}
		cfg = c

		level, err := logger.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return err
		}
		if verbose {
			level = logger.LevelVerbose
		}
		if quiet {
			level = logger.LevelOff
		}

		out, closer := openLogOutput(cfg.Logging.File, os.Stderr)
		closeLog = closer
		log = logger.New(level, out)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLog()
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&configPath, "config", "", "config file (default $"+config.EnvConfigFile+" or "+config.DefaultConfigFile+")")
	f.BoolVar(&verbose, "verbose", false, "enable verbose/debug logging")
	f.BoolVar(&quiet, "quiet", false, "disable all logging")
	f.StringVar(&logFile, "log-file", "", "file to write logs to (use \"stderr\" to log to console)")
	f.StringVar(&effectLang, "lang", "", "effect alias language: "+fmt.Sprint(catalog.EffectLanguages()))
	f.BoolVar(&noClipboard, "no-clipboard", false, "do not copy finalized recipes to the clipboard")
	f.IntVar(&indent, "indent", 0, "spaces in front of every rendered line")
}

// applyFlags lets explicitly set flags win over file and environment.
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("log-file") {
		c.Logging.File = logFile
	}
	if flags.Changed("lang") {
		c.Effects.Language = effectLang
	}
	if noClipboard {
		c.Output.Clipboard = false
	}
	if flags.Changed("indent") {
		c.Output.Indent = indent
	}
}

// openLogOutput sends logs to a file by default so the editor stays clean.
// Problems opening it are reported on warn and logging falls back to stderr.
func openLogOutput(path string, warn io.Writer) (io.Writer, func()) {
	if path == "" || path == "stderr" {
		return os.Stderr, func() {}
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(warn, "warning: could not create log directory %s: %v (falling back to stderr)\n", dir, err)
			return os.Stderr, func() {}
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(warn, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return os.Stderr, func() {}
	}
	// Third-party packages logging through the standard logger go to the
	// same file.
	stdlog.SetOutput(f)
	stdlog.SetFlags(stdlog.Ltime)
	return f, func() { f.Close() }
}

// loadCatalogs reads the configured ingredient sources and builds the
// effect catalog. Failed sources are returned, never fatal.
func loadCatalogs(ctx context.Context) (ingredients, effects *catalog.Index, errs []error) {
	sources := make([]catalog.Source, 0, len(cfg.Catalogs))
	for _, c := range cfg.Catalogs {
		sources = append(sources, catalog.FileSource(c.Path, c.Prefix))
	}
	ingredients, errs = catalog.Load(ctx, log, sources...)
	effects = catalog.NewEffectIndex(cfg.Effects.Language)
	return ingredients, effects, errs
}
