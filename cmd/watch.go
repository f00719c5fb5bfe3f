package cmd

import (
	"context"
	"fmt"
	"os"

	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/viviai0214/fanfare/internal/config"
	"github.com/viviai0214/fanfare/internal/log"
	"github.com/viviai0214/fanfare/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the performance whenever fanfare.toml changes",
	Long: `Watch follows the fanfare.toml governing the current directory and
re-runs the performance inside a TUI every time the file is saved.
Useful for tuning the reveal width with immediate feedback.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		startPath := "."
		if cfgFile != "" {
			startPath = cfgFile
		}

		configPath, err := config.FindConfigFile(startPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error: no fanfare.toml to watch. Create one with:\n\nwidth = 40\ndelay_ms = 30")
			os.Exit(1)
		}

		if err := runWatchMode(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatchMode(configPath string) error {
	model := ui.NewModel(configPath)
	p := tea.NewProgram(model)

	// The TUI owns the terminal, so logs become frame messages
	log.SetCallback(func(record slog.Record) {
		p.Send(ui.LogLine(record))
	})
	defer log.SetCallback(nil)

	watcher, err := ui.NewFileWatcher(configPath, func() {
		p.Send(ui.ConfigChanged())
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Start(ctx)

	_, err = p.Run()
	return err
}
