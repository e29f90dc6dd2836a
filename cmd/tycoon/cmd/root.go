package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tycoon",
	Short: "A single-player merchant trading simulation",
	Long: `Tycoon is a turn-based merchant trading simulation.

Travel between European cities, trade goods at city-dependent prices,
invest in stocks, commodities and crypto, and manage bank deposits and
loans. Every journey advances the game by one day: interest compounds,
dividends pay out, prices move and random events hit your cargo,
wallet and portfolio.

The game lives in a save file; every command loads it, applies your
action and writes it back.`,
}

var (
	cfgPath     string
	savePath    string
	contentPath string
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (YAML or JSON), defaults to built-in balance")
	rootCmd.PersistentFlags().StringVar(&savePath, "save", "tycoon.sav", "save file path")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "content pack (YAML), defaults to built-in tables")
}
