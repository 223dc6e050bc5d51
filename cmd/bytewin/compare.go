package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/joshuapare/bytewin/internal/logger"
	"github.com/joshuapare/bytewin/internal/render"
	"github.com/joshuapare/bytewin/internal/watch"
	"github.com/joshuapare/bytewin/pkg/window"
)

var (
	comparePos       string
	compareContext   int
	compareClamp     bool
	compareFirstDiff bool
	compareChars     bool
	compareCharset   string
	compareSummary   bool
	compareWatch     bool
)

func init() {
	cmd := newCompareCmd()
	bindCompareFlags(cmd)
	rootCmd.AddCommand(cmd)
}

// bindCompareFlags registers the compare flags, resetting their variables to
// the defaults.
func bindCompareFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&comparePos, "pos", "p", "", "Center offset (decimal, or 0x-prefixed hex)")
	cmd.Flags().IntVarP(&compareContext, "context", "c", window.DefaultContext, "Bytes shown on each side of the offset")
	cmd.Flags().BoolVar(&compareClamp, "clamp", false, "Shrink the window to the shorter file instead of failing")
	cmd.Flags().BoolVar(&compareFirstDiff, "first-diff", false, "Center the window on the first differing byte")
	cmd.Flags().BoolVar(&compareChars, "chars", false, "Add character columns decoded with --charset")
	cmd.Flags().StringVar(&compareCharset, "charset", render.DefaultCharset, "Codepage for --chars")
	cmd.Flags().BoolVar(&compareSummary, "summary", false, "Print the number of differing bytes after the table")
	cmd.Flags().BoolVarP(&compareWatch, "watch", "w", false, "Re-run whenever either file changes")
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <file1> <file2> [pos]",
		Short: "Show both files side by side around an offset",
		Long: `The compare command prints the bytes of both files in the window
[pos-context, pos+context), one row per offset, and marks rows that differ
with ***. The window end is limited by the length of file1; if file2 is
shorter than that the command fails unless --clamp is given.

Example:
  bytewin compare out.bin golden.bin 200
  bytewin compare out.bin golden.bin --pos 0xc8 --context 16
  bytewin compare out.bin golden.bin --first-diff --chars
  bytewin compare out.bin golden.bin --first-diff --watch`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := settingsFromFlags(cmd, args)
			if err != nil {
				return err
			}
			if compareWatch {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return watchCompare(ctx, args[0], args[1], s)
			}
			return runCompare(args[0], args[1], s)
		},
	}
	return cmd
}

// compareSettings is the merged result of config file and flags.
type compareSettings struct {
	window.Options
	Pos       int
	FirstDiff bool
	Render    render.Options
}

// settingsFromFlags overlays explicitly set flags on the loaded config.
func settingsFromFlags(cmd *cobra.Command, args []string) (compareSettings, error) {
	flags := cmd.Flags()
	s := compareSettings{
		Options:   *cfg.WindowOptions(),
		FirstDiff: compareFirstDiff,
		Render: render.Options{
			Chars:   compareChars,
			Summary: cfg.Summary,
			Color:   cfg.Color && !noColor && term.IsTerminal(int(os.Stdout.Fd())),
		},
	}
	if flags.Changed("context") {
		s.Context = compareContext
	}
	if flags.Changed("clamp") {
		s.Clamp = compareClamp
	}
	if flags.Changed("summary") {
		s.Render.Summary = compareSummary
	}

	charset := cfg.Charset
	if flags.Changed("charset") {
		charset = compareCharset
	}
	cm, err := render.Charset(charset)
	if err != nil {
		return s, err
	}
	s.Render.Charset = cm

	posArg := comparePos
	if len(args) == 3 {
		if flags.Changed("pos") {
			return s, errors.New("offset given both as argument and --pos")
		}
		posArg = args[2]
	}
	switch {
	case posArg != "" && s.FirstDiff:
		return s, errors.New("--first-diff cannot be combined with an offset")
	case posArg == "" && !s.FirstDiff:
		return s, errors.New("an offset (argument or --pos) or --first-diff is required")
	case posArg != "":
		s.Pos, err = parseOffset(posArg)
		if err != nil {
			return s, err
		}
	}
	return s, nil
}

// parseOffset reads a decimal offset, or hex with a 0x/0X prefix. Leading
// zeros are decimal.
func parseOffset(s string) (int, error) {
	digits, base := s, 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits, base = s[2:], 16
	}
	v, err := strconv.ParseInt(digits, base, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q: %w", s, err)
	}
	return int(v), nil
}

// runCompare compares the two files and writes the result to stdout.
func runCompare(file1, file2 string, s compareSettings) error {
	logger.L.Debug("comparing", "file1", file1, "file2", file2,
		"pos", s.Pos, "first_diff", s.FirstDiff, "context", s.Context, "clamp", s.Clamp)

	var (
		res *window.Result
		err error
	)
	if s.FirstDiff {
		res, err = window.CompareFilesAtFirstDiff(file1, file2, &s.Options)
	} else {
		res, err = window.CompareFiles(file1, file2, s.Pos, &s.Options)
	}
	if err != nil {
		return err
	}
	logger.L.Debug("window computed", "start", res.Start, "end", res.End,
		"len1", res.LenA, "len2", res.LenB, "differences", res.Differences())

	var out io.Writer = os.Stdout
	if quiet {
		out = io.Discard
	}
	if jsonOut {
		return render.JSON(out, file1, file2, res)
	}
	return render.NewText(out, s.Render).Render(res)
}

// watchCompare runs the comparison once, then again after every change to
// either file until ctx is cancelled. Failures after the first run are
// reported without stopping the watch.
func watchCompare(ctx context.Context, file1, file2 string, s compareSettings) error {
	if err := runCompare(file1, file2, s); err != nil {
		return err
	}

	w, err := watch.New([]string{file1, file2}, watch.DefaultDebounce)
	if err != nil {
		return err
	}
	defer w.Close()

	logger.L.Debug("watching", "file1", file1, "file2", file2)
	return w.Run(ctx, func() {
		if err := runCompare(file1, file2, s); err != nil {
			printError("%v\n", err)
		}
	})
}
