package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/viviai0214/fanfare/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "fanfare",
	Short: "The most over-engineered Hello World available to mortals",
	Long: `Fanfare prints "Hello World" through a Fibonacci decoder, a
hash-chained character ledger, Church numerals, and a monadic pipeline,
then frames the result in decorative banners.

Running fanfare with no arguments performs the greeting once.`,
	Args: cobra.NoArgs,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		runPerform()
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./fanfare.toml, searched upward)")
	rootCmd.PersistentFlags().Int("width", config.DefaultWidth, "inner width of the reveal box")
	rootCmd.PersistentFlags().Int("delay", config.DefaultDelayMS, "dramatic pause per stage in milliseconds")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colors and emphasis")
	rootCmd.PersistentFlags().Bool("plain", false, "plain output without styling")
	rootCmd.PersistentFlags().String("log-level", "", "log level (error, warn, info, debug)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every character event")

	viper.BindPFlag("width", rootCmd.PersistentFlags().Lookup("width"))
	viper.BindPFlag("delay", rootCmd.PersistentFlags().Lookup("delay"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("plain", rootCmd.PersistentFlags().Lookup("plain"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}
