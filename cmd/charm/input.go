package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oy3o/charm"
	"github.com/spf13/cobra"
)

// openInput returns the byte source named on the command line: the --text
// value, the file argument, or standard input for no argument or "-".
func openInput(cmd *cobra.Command, opts *rootOptions, args []string) (io.ReadCloser, error) {
	if opts.textSet {
		if len(args) > 0 {
			return nil, errors.New("--text cannot be combined with a file argument")
		}
		return io.NopCloser(strings.NewReader(opts.text)), nil
	}
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// prepareInput applies --offset, --skip-bom and --limit, in that order.
func prepareInput(in io.Reader, opts *rootOptions) (io.Reader, error) {
	src, err := charm.Skip(in, opts.offset)
	if err != nil {
		return nil, err
	}
	if opts.skipBOM {
		src, _, err = charm.SkipBOM(src)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
	}
	if opts.limit >= 0 {
		src = charm.LimitReader(src, opts.limit)
	}
	return src, nil
}
