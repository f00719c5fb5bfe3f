package cmd

import (
	"context"
	"fmt"
	"os"

	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/viviai0214/fanfare/internal/app"
	"github.com/viviai0214/fanfare/internal/config"
	"github.com/viviai0214/fanfare/internal/log"
)

var verbose bool

var performCmd = &cobra.Command{
	Use:   "perform",
	Short: "Run the greeting performance once",
	Long: `Perform assembles "Hello World!" from its four segments, in order:

- "Hello" decoded from Fibonacci (index, offset) pairs
- " " round-tripped through its Church encoding
- "World" mined into a hash-chained ledger and extracted
- "!" run through the character pipeline

The assembled message is integrity-checked before the reveal.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runPerform()
	},
}

func init() {
	rootCmd.AddCommand(performCmd)
}

func runPerform() {
	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		log.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging
	setupLogging(cfg)

	// Fall back to plain frames when stdout is not a terminal
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.Plain = true
	}

	// Run the performance
	performApp := app.NewPerformApp(os.Stdout)
	if err := performApp.Run(context.Background(), cfg); err != nil {
		log.Error("performance failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// loadConfig merges fanfare.toml with flag overrides
func loadConfig() (*config.Config, error) {
	startPath := "."
	if cfgFile != "" {
		// An explicitly requested config file must exist
		if _, err := os.Stat(cfgFile); err != nil {
			return nil, fmt.Errorf("config file %s: %w", cfgFile, err)
		}
		startPath = cfgFile
	}

	cfg, err := config.Load(startPath)
	if err != nil {
		return nil, err
	}

	// Flags override file values, but only when actually passed:
	// viper's flag defaults must not stomp on the config file
	flags := rootCmd.PersistentFlags()
	if f := flags.Lookup("width"); f != nil && f.Changed {
		cfg.Width = viper.GetInt("width")
	}
	if f := flags.Lookup("delay"); f != nil && f.Changed {
		cfg.DelayMS = viper.GetInt("delay")
	}
	if f := flags.Lookup("no-color"); f != nil && f.Changed {
		cfg.NoColor = viper.GetBool("no-color")
	}
	if f := flags.Lookup("plain"); f != nil && f.Changed {
		cfg.Plain = viper.GetBool("plain")
	}
	if f := flags.Lookup("log-level"); f != nil && f.Changed {
		cfg.LogLevel = viper.GetString("log-level")
	}
	cfg.Verbose = verbose

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogging(cfg *config.Config) {
	logLevel := cfg.LogLevel
	if logLevel == "" {
		logLevel = "info"
	}
	if cfg.Verbose {
		logLevel = "debug"
	}
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Error("invalid log level", slog.String("level", logLevel))
		os.Exit(1)
	}
	if err := log.SetLevel(level); err != nil {
		log.Error("failed to set log level", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
