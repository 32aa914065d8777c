package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/dragline/buffer"
)

func newBlockCommand(a *app) *cobra.Command {
	var line int

	cmd := &cobra.Command{
		Use:   "block FILE",
		Short: "Print the line range that moves with a line",
		Long: `Print the inclusive 1-based line range of the block anchored at --line.

Examples:
  # A heading's block runs to the next heading of the same or higher level
  dragline block README.md --line 12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := readBuffer(args[0])
			if err != nil {
				return err
			}
			if line < 1 || line > buf.LineCount() {
				return fmt.Errorf("--line %d: %w (1..%d)", line, ErrInvalidLine, buf.LineCount())
			}
			block := a.cfg.Resolver().Resolve(buf, line)
			a.printf("%d-%d\n", block.Start, block.End)
			return nil
		},
	}
	cmd.Flags().IntVar(&line, "line", 0, "1-based anchor line")
	_ = cmd.MarkFlagRequired("line")
	return cmd
}

func readBuffer(path string) (*buffer.Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buffer.New(string(data), buffer.Options{}), nil
}
