package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/dragline/buffer"
	"github.com/iw2rmb/dragline/drag"
)

type moveOptions struct {
	line      int
	to        string
	diff      bool
	write     bool
	normalize bool
	copy      bool
}

func newMoveCommand(a *app) *cobra.Command {
	var opts moveOptions

	cmd := &cobra.Command{
		Use:   "move FILE",
		Short: "Move the block at a line before another line",
		Long: `Move the block anchored at --line so it lands before line --to, or after
the last line with --to end. The result is printed unless --write is set.

Every line of the result uses the file's most common terminator. --write
refuses files that mix LF, CRLF and CR unless --normalize is set.

Examples:
  # Move the section starting at line 10 to the top
  dragline move README.md --line 10 --to 1

  # Append a list item and its children, showing what changes
  dragline move notes.md --line 4 --to end --diff`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMove(args[0], opts)
		},
	}
	cmd.Flags().IntVar(&opts.line, "line", 0, "1-based line of the block to move")
	cmd.Flags().StringVar(&opts.to, "to", "", `1-based line to land before, or "end"`)
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "print a line diff instead of the result")
	cmd.Flags().BoolVar(&opts.write, "write", false, "rewrite FILE in place")
	cmd.Flags().BoolVar(&opts.normalize, "normalize", false, "allow --write to unify mixed line terminators")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "copy the result to the clipboard")
	_ = cmd.MarkFlagRequired("line")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *app) runMove(path string, opts moveOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	text := string(data)
	if opts.write && !opts.normalize && buffer.MixedLineEndings(text) {
		return fmt.Errorf("%s: %w; pass --normalize to rewrite them as %s", path, ErrMixedLineEndings, buffer.DetectLineEnding(text))
	}
	buf := buffer.New(text, buffer.Options{})

	if opts.line < 1 || opts.line > buf.LineCount() {
		return fmt.Errorf("--line %d: %w (1..%d)", opts.line, ErrInvalidLine, buf.LineCount())
	}
	boundary, err := parseBoundary(buf, opts.to)
	if err != nil {
		return err
	}

	block := a.cfg.Resolver().Resolve(buf, opts.line)
	span := block.Span(buf)
	if boundary > span.From && boundary < span.To {
		return fmt.Errorf("lines %d-%d, --to %s: %w", block.Start, block.End, opts.to, ErrNoBoundary)
	}
	res, ok := drag.Reorder(buf, block, boundary)
	if !ok {
		return fmt.Errorf("lines %d-%d, --to %s: %w", block.Start, block.End, opts.to, ErrNoOp)
	}
	a.logger.Slog().Debug("block moved",
		"file", path,
		"start", block.Start,
		"end", block.End,
		"boundary", boundary,
	)

	switch {
	case opts.write:
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		if err := os.WriteFile(path, []byte(res.Text), info.Mode().Perm()); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		a.printf("moved lines %d-%d in %s\n", block.Start, block.End, path)
	case opts.diff:
		a.printf("%s", lineDiff(buf.Text(), res.Text))
	default:
		a.printf("%s", res.Text)
		if !strings.HasSuffix(res.Text, "\n") {
			a.printf("\n")
		}
	}

	if opts.copy {
		if err := writeClipboard(res.Text); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return nil
}

// parseBoundary turns --to into a line-start offset or the document end.
func parseBoundary(buf *buffer.Buffer, to string) (int, error) {
	if strings.EqualFold(to, "end") {
		return buf.Len(), nil
	}
	n, err := strconv.Atoi(to)
	if err != nil {
		return 0, fmt.Errorf("--to %q: want a line number or \"end\"", to)
	}
	if n < 1 || n > buf.LineCount() {
		return 0, fmt.Errorf("--to %d: %w (1..%d)", n, ErrInvalidLine, buf.LineCount())
	}
	return buf.Line(n).From, nil
}

// lineDiff renders a line-level diff with "- ", "+ " and "  " prefixes.
func lineDiff(before, after string) string {
	d := diffmatchpatch.New()
	a, b, lines := d.DiffLinesToChars(withTrailingNewline(before), withTrailingNewline(after))
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, df := range diffs {
		prefix := "  "
		switch df.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.SplitAfter(df.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
		}
	}
	return sb.String()
}

func withTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
