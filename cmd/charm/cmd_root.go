package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oy3o/charm"
	"github.com/oy3o/charm/config"
	"github.com/oy3o/charm/format"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type rootOptions struct {
	cfg     config.Config
	text    string
	textSet bool
	offset  int64
	limit   int64
	skipBOM bool
	verbose bool
}

func newRootCmd(cfg config.Config) *cobra.Command {
	opts := &rootOptions{cfg: cfg}

	cmd := &cobra.Command{
		Use:   "charm [flags] [file]",
		Short: "Show the characters of a file one by one, invalid UTF-8 included",
		Long: `charm reads a file (or standard input) and prints one row per UTF-8 unit:
its position, the character, and the raw bytes. Bytes that do not form valid
UTF-8 are shown as invalid rows instead of stopping the output.`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.textSet = cmd.Flags().Changed("text")
			return runRoot(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.cfg.Bytes, "bytes", "b", cfg.Bytes, "show count in number of bytes, not characters")
	flags.BoolVarP(&opts.cfg.Names, "names", "n", cfg.Names, "show unicode name of each character")
	flags.BoolVarP(&opts.cfg.Scripts, "scripts", "s", cfg.Scripts, "show script for each character")
	flags.BoolVar(&opts.cfg.EastAsian, "east-asian", cfg.EastAsian, "treat characters of ambiguous East Asian width as wide")
	flags.StringVarP(&opts.cfg.Format, "format", "f", cfg.Format, "output format (line, json)")
	flags.StringVar(&opts.cfg.Color, "color", cfg.Color, "colorize output (auto, always, never)")
	flags.IntVar(&opts.cfg.BufferSize, "buffer-size", cfg.BufferSize, "input buffer size in bytes")
	flags.StringVarP(&opts.text, "text", "e", "", "inspect this text instead of a file")
	flags.Int64Var(&opts.offset, "offset", 0, "skip this many bytes before decoding")
	flags.Int64Var(&opts.limit, "limit", -1, "decode at most this many bytes")
	flags.BoolVar(&opts.skipBOM, "skip-bom", false, "drop a leading byte order mark")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log decoder diagnostics to stderr")

	return cmd
}

func runRoot(cmd *cobra.Command, opts *rootOptions, args []string) error {
	if err := opts.cfg.Validate(); err != nil {
		return err
	}
	if opts.offset < 0 {
		return errors.New("offset must not be negative")
	}

	if opts.verbose {
		logger, err := newLogger()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer logger.Sync()
		charm.SetLogger(logger)
		defer charm.SetLogger(nil)
	}

	in, err := openInput(cmd, opts, args)
	if err != nil {
		return err
	}
	defer in.Close()

	src, err := prepareInput(in, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	enc, err := format.New(opts.cfg.Format, out, format.Options{
		Bytes:   opts.cfg.Bytes,
		Names:   opts.cfg.Names,
		Scripts: opts.cfg.Scripts,
		Styles:  styles(opts.cfg.Color, out),
	})
	if err != nil {
		return err
	}

	return inspect(src, enc, charm.NewClassifier(charm.NewUnicode(opts.cfg.EastAsian)), opts.cfg.BufferSize)
}

// inspect renders every outcome of src. The first I/O error ends the run;
// rows decoded before it are still written.
func inspect(src io.Reader, enc format.Encoder, classifier *charm.Classifier, bufferSize int) error {
	dec, err := charm.NewDecoderSize(src, bufferSize)
	if err != nil {
		return fmt.Errorf("create decoder: %w", err)
	}
	for out, err := range dec.All() {
		if err != nil {
			enc.Flush()
			return fmt.Errorf("read input: %w", err)
		}
		if err := enc.Encode(classifier.Describe(out)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func styles(mode string, w io.Writer) *format.Styles {
	var s format.Styles
	switch mode {
	case config.ColorAlways:
		s = format.ColorStyles(w)
	case config.ColorAuto:
		f, ok := w.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) {
			return nil
		}
		s = format.TerminalStyles(w)
	default:
		return nil
	}
	return &s
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
