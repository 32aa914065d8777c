package main

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/dragline/internal/config"
	"github.com/iw2rmb/dragline/internal/log"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// app carries what every subcommand needs after the root has loaded
// configuration.
type app struct {
	configPath string
	envPath    string

	cfg    config.Config
	logger *log.Logger
	out    io.Writer
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out}

	cmd := &cobra.Command{
		Use:   "dragline",
		Short: "Reorder Markdown sections and list items by dragging",
		Long: `Dragline moves whole blocks of lines: a heading with its section, or a
list item with its nested items.

Use "dragline edit" for the mouse-driven editor, or "dragline move" to
reorder without a terminal UI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath, a.envPath)
			if err != nil {
				return err
			}
			logger, err := log.NewLogger(cfg)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger == nil {
				return nil
			}
			return a.logger.Close()
		},
	}
	cmd.SetOut(out)

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&a.envPath, "env-file", "", "dotenv file (default .env, skipped if missing)")

	cmd.AddCommand(newMoveCommand(a))
	cmd.AddCommand(newBlockCommand(a))
	cmd.AddCommand(newEditCommand(a))
	cmd.AddCommand(newVersionCommand(a))
	return cmd
}

func (a *app) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
