// Package cmd implements the docstree command line interface.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/tsawler/docstree/internal/config"
)

var (
	// Version is set at build time
	version = "dev"
	// Commit is set at build time
	commit = "none"
	// Date is set at build time
	date = "unknown"
)

// SetVersionInfo sets the version information from build flags
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globalFlags are shared by every subcommand
type globalFlags struct {
	configFile string
	debug      bool
	quiet      bool
}

// NewRootCmd builds the command tree. Each call returns independent
// commands and flag state.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "docstree",
		Short: "Convert Google Docs documents to HTML syntax trees",
		Long: `docstree converts documents in the Google Docs API JSON format into
HTML abstract syntax trees (HAST), HTML, Markdown, YAML or a plain outline.

Lists are rebuilt as properly nested ul/ol elements, inline styles are
mapped to CSS, and heading ids are replaced with readable slugs.

Input may be compressed with gzip, zstd, brotli or lz4.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("docstree version %s (commit: %s, built: %s)\n", version, commit, date))

	root.PersistentFlags().StringVar(&g.configFile, "config", "", "Config file (default: ~/.config/docstree/config.yaml)")
	root.PersistentFlags().BoolVar(&g.debug, "debug", false, "Log each pipeline stage to stderr")
	root.PersistentFlags().BoolVarP(&g.quiet, "quiet", "q", false, "Suppress warnings and status messages")

	root.AddCommand(newConvertCmd(g))
	root.AddCommand(newConfigCmd(g))
	return root
}

// Execute runs the root command
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

func (g *globalFlags) configPath() (string, error) {
	if strings.TrimSpace(g.configFile) != "" {
		return g.configFile, nil
	}
	return config.DefaultConfigPath()
}

func (g *globalFlags) loadConfig() (*config.Config, string, error) {
	path, err := g.configPath()
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, fmt.Errorf("%w (path: %s)", err, path)
	}
	return cfg, path, nil
}

// logger returns the --debug trace logger writing to w, or a no-op logger
// when debug is off.
func (g *globalFlags) logger(w io.Writer) *zap.Logger {
	if !g.debug {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core).Named("docstree")
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// terminalWidth returns the column count of w, or 0 when w is not a
// terminal.
func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}
	return width
}
