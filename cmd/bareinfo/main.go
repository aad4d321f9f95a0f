package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/go-tangra/go-tangra-bareinfo/internal/collector"
	"github.com/go-tangra/go-tangra-bareinfo/internal/config"
	"github.com/go-tangra/go-tangra-bareinfo/internal/convert"
	"github.com/go-tangra/go-tangra-bareinfo/internal/export"
	"github.com/go-tangra/go-tangra-bareinfo/internal/logging"
	"github.com/go-tangra/go-tangra-bareinfo/internal/store"
)

var (
	version    = "dev"
	commitHash = "unknown"
	buildDate  = "unknown"
)

// Export flags. Only one may be given per run.
const (
	flagExportToFile = "export-to-file"
	flagExport       = "export"
	flagHTML         = "ExportToHTML"
	flagJSON         = "ExportToJSON"
	flagSQLite       = "export-sqlite"
)

// legacyFlags maps the single-dash spellings older scripts use to the
// flags cobra understands.
var legacyFlags = map[string]string{
	"-export":       "--" + flagExport,
	"-ExportToHTML": "--" + flagHTML,
	"-ExportToJSON": "--" + flagJSON,
}

func main() {
	cmd := newRootCmd()
	cmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if n, ok := legacyFlags[a]; ok {
			a = n
		}
		out[i] = a
	}
	return out
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bareinfo",
		Short: "bareinfo - report CPU, firmware, board and OS facts of this host",
		Long: `bareinfo reads hardware and firmware facts from /proc and /sys and prints
them to the console, or writes them to bareinfo.txt, bareinfo.json,
Bareinfo.html or the bareinfo.db snapshot database.

Facts that cannot be read are reported as N/A; nothing on the host is
modified and no discovered program is executed.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runReport,
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bareinfo.yaml)")
	rootCmd.PersistentFlags().String("root", "", "filesystem root to probe (default /)")
	rootCmd.PersistentFlags().String("output-dir", "", "directory export files are written to (default .)")
	rootCmd.PersistentFlags().String("color", "", "console colour: auto, always or never (default auto)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every fact that could not be read")

	rootCmd.Flags().Bool(flagExportToFile, false, "write the report to bareinfo.txt")
	rootCmd.Flags().Bool(flagExport, false, "same as --export-to-file")
	rootCmd.Flags().Bool(flagHTML, false, "write the Bareinfo.html viewer for bareinfo.json")
	rootCmd.Flags().Bool(flagJSON, false, "write the report to bareinfo.json")
	rootCmd.Flags().Bool(flagSQLite, false, "append the report to the snapshot database")
	rootCmd.MarkFlagsMutuallyExclusive(flagExportToFile, flagExport, flagHTML, flagJSON, flagSQLite)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSMBIOSCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bareinfo %s (commit: %s, built: %s)\n", version, commitHash, buildDate)
		},
	}
}

// env bundles what every subcommand needs after flag parsing.
type env struct {
	cfg    *config.Config
	log    *slog.Logger
	closer io.Closer
}

func (e *env) Close() {
	_ = e.closer.Close()
}

func setup(cmd *cobra.Command) (*env, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// CLI flag overrides.
	if v, _ := cmd.Flags().GetString("root"); v != "" {
		cfg.Root = v
	}
	if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
		cfg.OutputDir = v
	}
	if v, _ := cmd.Flags().GetString("color"); v != "" {
		cfg.Color = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, closer, err := logging.New(cfg, verbose)
	if err != nil {
		return nil, fmt.Errorf("set up logging: %w", err)
	}

	return &env{cfg: cfg, log: logger, closer: closer}, nil
}

func (e *env) collect() collector.Report {
	c := collector.New(collector.Options{
		Root:     e.cfg.Root,
		ShellEnv: e.cfg.ShellEnv,
		Logger:   e.log,
	})
	return c.Collect()
}

func (e *env) outputPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(e.cfg.OutputDir, name)
}

func runReport(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	start := time.Now()
	defer func() { e.log.Debug("run finished", "elapsed", time.Since(start)) }()

	flags := cmd.Flags()
	switch {
	case flagSet(flags.GetBool(flagExportToFile)), flagSet(flags.GetBool(flagExport)):
		r := e.collect()
		return e.writeFile(export.TextFile, export.Text{LabelWidth: e.cfg.LabelWidth}, &r)

	case flagSet(flags.GetBool(flagJSON)):
		r := e.collect()
		return e.writeFile(export.JSONFile, export.JSON{}, &r)

	case flagSet(flags.GetBool(flagHTML)):
		// The viewer is static; nothing needs to be probed for it.
		return e.writeFile(export.HTMLFile, export.HTML{}, nil)

	case flagSet(flags.GetBool(flagSQLite)):
		r := e.collect()
		return e.saveSnapshot(cmd.Context(), &r)

	default:
		r := e.collect()
		out := cmd.OutOrStdout()
		console := export.Console{
			LabelWidth: e.cfg.LabelWidth,
			Style:      e.cfg.Style,
			Profile:    colorProfile(e.cfg.Color, out),
		}
		return console.Export(out, &r)
	}
}

func flagSet(v bool, err error) bool {
	return err == nil && v
}

func (e *env) writeFile(name string, exp export.Exporter, r *collector.Report) error {
	path := e.outputPath(name)
	if err := export.WriteFile(path, exp, r); err != nil {
		return err
	}
	e.log.Info("report written", "path", path)
	return nil
}

func (e *env) saveSnapshot(ctx context.Context, r *collector.Report) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rec, err := convert.ReportToRecord(r)
	if err != nil {
		return err
	}

	path := e.outputPath(e.cfg.DatabasePath)
	db, err := store.New(path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.Insert(ctx, rec); err != nil {
		return err
	}
	e.log.Info("snapshot stored", "path", path, "id", rec.ID, "snapshot_id", rec.SnapshotID)
	return nil
}

// colorProfile resolves the configured colour mode for out. In auto mode
// colour is used only when out is a terminal.
func colorProfile(mode string, out io.Writer) termenv.Profile {
	switch mode {
	case config.ColorAlways:
		return termenv.ANSI
	case config.ColorNever:
		return termenv.Ascii
	}

	if f, ok := out.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		if os.Getenv("NO_COLOR") != "" {
			return termenv.Ascii
		}
		return termenv.ANSI
	}
	return termenv.Ascii
}
