// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelcols/main.go
// Summary: Command-line front end that prints table definitions fitted to
// the terminal width.
// Usage: texelcols [file.yaml|file.json|file.toml], or TSV/CSV on stdin.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/framegrace/texelcols/columns"
	"github.com/framegrace/texelcols/config"
	"github.com/framegrace/texelcols/internal/tabledef"
	"github.com/framegrace/texelcols/internal/termsize"
	"github.com/framegrace/texelcols/printer"
)

type options struct {
	width      int
	maxOut     bool
	noWrap     bool
	noEncoding bool
	separator  string
	delimiter  string
	ascii      bool
	noHeadings bool
	box        bool
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "texelcols [definition]",
		Short:         "Print a table fitted to the terminal width",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&opts.width, "width", "w", 0, "force the output width (implies terminal layout)")
	fs.BoolVarP(&opts.maxOut, "maxout", "m", false, "fill the whole output width")
	fs.BoolVar(&opts.noWrap, "nowrap", false, "never wrap, cut or hide columns instead")
	fs.BoolVar(&opts.noEncoding, "noencoding", false, "print control characters unescaped")
	fs.StringVarP(&opts.separator, "separator", "s", "", "column separator")
	fs.StringVarP(&opts.delimiter, "delimiter", "d", "", "input field delimiter for stdin (default: detect tab or comma)")
	fs.BoolVar(&opts.ascii, "ascii", false, "use ASCII characters for tree art and borders")
	fs.BoolVarP(&opts.noHeadings, "noheadings", "n", false, "do not print the header line")
	fs.BoolVar(&opts.box, "box", false, "draw borders around the table")
	fs.BoolVar(&opts.debug, "debug", false, "log width allocation steps to stderr")

	cmd.AddCommand(newConfigCmd())
	return cmd
}

func setupLogging(w io.Writer, debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	color := false
	if f, ok := w.(*os.File); ok {
		color = termsize.Detect(f).IsTerm
	}
	cw := zerolog.ConsoleWriter{Out: w, NoColor: !color}
	log.Logger = zerolog.New(cw).Level(level).With().Timestamp().Logger()
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	setupLogging(cmd.ErrOrStderr(), opts.debug)

	cfg := config.System()
	if err := config.Err(); err != nil {
		log.Warn().Err(err).Msg("using default configuration")
	}

	def, err := loadDefinition(cmd.InOrStdin(), args, opts.delimiter)
	if err != nil {
		return err
	}
	tb, err := def.Build()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if f, ok := out.(*os.File); ok {
		info := termsize.Detect(f)
		tb.IsTerm, tb.TermWidth = info.IsTerm, info.Width
	} else {
		tb.TermWidth = termsize.DefaultWidth
	}

	settings := config.ApplyTable(cfg, tb)
	if settings.Width > 0 {
		tb.IsTerm = true
	}
	applyFlags(cmd.Flags(), opts, tb, &settings)

	if opts.debug {
		tb.Observer = columns.LogObserver{Logger: log.Logger}
	}
	log.Debug().
		Int("columns", len(tb.Columns)).
		Int("lines", len(tb.Lines)).
		Int("width", tb.TermWidth).
		Bool("terminal", tb.IsTerm).
		Msg("printing table")

	return printer.Print(out, tb, printer.Options{
		NoHeadings: settings.NoHeadings,
		Box:        settings.Box,
	})
}

func loadDefinition(stdin io.Reader, args []string, delimiter string) (*tabledef.Definition, error) {
	if len(args) == 1 && args[0] != "-" {
		return tabledef.Load(args[0])
	}
	var delim byte
	switch delimiter {
	case "":
	case "tab", `\t`:
		delim = '\t'
	default:
		if len(delimiter) != 1 {
			return nil, errors.Errorf("delimiter must be a single byte, got %q", delimiter)
		}
		delim = delimiter[0]
	}
	return tabledef.ReadDelimited(stdin, delim)
}

// applyFlags lets explicitly given flags override the configuration.
func applyFlags(fs *pflag.FlagSet, opts *options, tb *columns.Table, settings *config.TableSettings) {
	if fs.Changed("width") && opts.width > 0 {
		tb.TermWidth = opts.width
		tb.IsTerm = true
	}
	if fs.Changed("maxout") {
		tb.MaxOut = opts.maxOut
	}
	if fs.Changed("nowrap") {
		tb.NoWrap = opts.noWrap
	}
	if fs.Changed("noencoding") {
		tb.NoEncoding = opts.noEncoding
	}
	if fs.Changed("separator") {
		tb.Separator = opts.separator
	}
	if fs.Changed("ascii") {
		tb.ASCII = opts.ascii
	}
	if fs.Changed("noheadings") {
		settings.NoHeadings = opts.noHeadings
	}
	if fs.Changed("box") {
		settings.Box = opts.box
	}
}
