package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/docstree"
	"github.com/tsawler/docstree/format"
	"github.com/tsawler/docstree/hast"
	"github.com/tsawler/docstree/internal/config"
	"github.com/tsawler/docstree/internal/filters"
	"github.com/tsawler/docstree/reader"
	"github.com/tsawler/docstree/render"
)

type convertFlags struct {
	output       string
	out          string
	query        string
	compress     string
	noStyles     bool
	rawHeaderIDs bool
	width        int
}

func newConvertCmd(g *globalFlags) *cobra.Command {
	f := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert <file|->",
		Short: "Convert a document",
		Long: `Convert a Google Docs API JSON document. Use - to read from stdin.

The output format is taken from --output, then the config file, then the
extension of --out, and defaults to html. Output compression is taken from
--compress, then the config file, then the extension of --out.`,
		Example: `  docstree convert doc.json
  docstree convert doc.json.zst -o markdown --out doc.md
  docstree convert - -o json --query '.children[].tagName' < doc.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, g, f, args[0])
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output format (html|markdown|json|yaml|outline)")
	cmd.Flags().StringVar(&f.out, "out", "", "Write output to file instead of stdout")
	cmd.Flags().StringVar(&f.query, "query", "", "jq expression to filter JSON output")
	cmd.Flags().StringVar(&f.compress, "compress", "", "Compress output (none|gzip|zstd|brotli|lz4)")
	cmd.Flags().BoolVar(&f.noStyles, "no-styles", false, "Strip inline styles")
	cmd.Flags().BoolVar(&f.rawHeaderIDs, "raw-header-ids", false, "Keep Google Docs heading ids")
	cmd.Flags().IntVar(&f.width, "width", -1, "Truncate outline lines to this many columns (default: terminal width)")
	return cmd
}

// settings is the resolved configuration for one conversion
type settings struct {
	options     docstree.Options
	format      format.Format
	compression format.Compression
}

// resolveSettings applies flags over the config file over defaults.
func resolveSettings(cmd *cobra.Command, f *convertFlags, cfg *config.Config) (settings, error) {
	s := settings{options: docstree.DefaultOptions()}

	if cfg.PrettyHeaderIDs != nil {
		s.options.PrettyHeaderIDs = *cfg.PrettyHeaderIDs
	}
	if cfg.Styles != nil {
		s.options.Styles = *cfg.Styles
	}
	if flagChanged(cmd, "raw-header-ids") {
		s.options.PrettyHeaderIDs = !f.rawHeaderIDs
	}
	if flagChanged(cmd, "no-styles") {
		s.options.Styles = !f.noStyles
	}

	switch {
	case f.output != "":
		s.format = format.Parse(f.output)
		if s.format == format.Unknown {
			return s, fmt.Errorf("invalid --output %q (expected html|markdown|json|yaml|outline)", f.output)
		}
	case cfg.OutputFormat != "":
		s.format = format.Parse(cfg.OutputFormat)
	case f.out != "" && format.Detect(f.out) != format.Unknown:
		s.format = format.Detect(f.out)
	default:
		s.format = format.HTML
	}

	switch {
	case f.compress != "":
		c, ok := format.ParseCompression(f.compress)
		if !ok {
			return s, fmt.Errorf("invalid --compress %q (expected none|gzip|zstd|brotli|lz4)", f.compress)
		}
		s.compression = c
	case cfg.Compression != "":
		s.compression, _ = format.ParseCompression(cfg.Compression)
	case f.out != "":
		s.compression = format.DetectCompression(f.out)
	}

	if f.query != "" && s.format != format.JSON {
		return s, errors.New("--query requires json output")
	}
	return s, nil
}

func runConvert(cmd *cobra.Command, g *globalFlags, f *convertFlags, input string) error {
	logger := g.logger(cmd.ErrOrStderr())
	defer logger.Sync()

	cfg, _, err := g.loadConfig()
	if err != nil {
		return err
	}
	s, err := resolveSettings(cmd, f, cfg)
	if err != nil {
		return err
	}
	logger.Debug("resolved settings",
		zap.Stringer("format", s.format),
		zap.Stringer("compression", s.compression),
		zap.Bool("pretty_header_ids", s.options.PrettyHeaderIDs),
		zap.Bool("styles", s.options.Styles))

	r, err := openInput(cmd, input)
	if err != nil {
		return err
	}
	defer r.Close()
	logger.Debug("read document",
		zap.String("input", input),
		zap.Int64("bytes", r.Size()),
		zap.Int("blocks", r.Document().BlockCount()))

	tree, warnings, err := docstree.FromReader(r).WithOptions(s.options).Tree()
	if err != nil {
		return err
	}
	logger.Debug("built tree", zap.Int("nodes", tree.Len()), zap.Int("warnings", len(warnings)))

	if len(warnings) > 0 && !g.quiet {
		fmt.Fprintln(cmd.ErrOrStderr(), docstree.FormatWarnings(warnings))
	}

	return writeOutput(cmd, f, s, tree, logger)
}

func openInput(cmd *cobra.Command, input string) (*reader.Reader, error) {
	if input == "-" {
		return reader.NewReader(cmd.InOrStdin())
	}
	return reader.Open(input)
}

func writeOutput(cmd *cobra.Command, f *convertFlags, s settings, tree *hast.Tree, logger *zap.Logger) error {
	var dst io.Writer = cmd.OutOrStdout()
	if f.out != "" {
		file, err := os.Create(f.out)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer file.Close()
		dst = file
	} else if s.compression != format.None && isTerminal(dst) {
		return errors.New("refusing to write compressed output to a terminal; use --out")
	}

	w, err := filters.NewWriter(s.compression, dst)
	if err != nil {
		return err
	}

	width := f.width
	if width < 0 {
		width = terminalWidth(dst)
	}

	if err := render.Write(w, tree, s.format, render.WriteOptions{Query: f.query, Width: width}); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finishing output: %w", err)
	}

	if f.out != "" {
		logger.Debug("wrote output",
			zap.String("path", f.out),
			zap.Stringer("format", s.format),
			zap.Stringer("compression", s.compression))
		if file, ok := dst.(*os.File); ok {
			return file.Sync()
		}
	}
	return nil
}
