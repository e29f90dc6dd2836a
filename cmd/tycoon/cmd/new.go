package cmd

import (
	"fmt"

	"github.com/rustyeddy/tycoon/game"
	"github.com/rustyeddy/tycoon/save"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new game",
	Long: `Create a fresh game on the chosen difficulty and write the save file.

Difficulties range from playground ($1,000,000 and a huge hold) to
insane ($0 and a single cargo slot).

Example:
  tycoon new --difficulty hard --save mygame.sav`,
	RunE: runNew,
}

var newDifficulty string

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVarP(&newDifficulty, "difficulty", "d", "", "difficulty preset (defaults to config)")
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	tables, err := loadTables()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	difficulty := newDifficulty
	if difficulty == "" {
		difficulty = cfg.Game.DefaultDifficulty
	}

	engine, err := game.New(cfg, tables, difficulty)
	if err != nil {
		return err
	}

	state := engine.State()
	if err := save.Write(savePath, state, state.Date); err != nil {
		return fmt.Errorf("write save: %w", err)
	}

	city := tables.Cities[state.CityIndex]
	fmt.Printf("✓ New game started: %s\n", state.Difficulty.DisplayName)
	fmt.Printf("  Day %d (%s), starting in %s, %s\n", state.Day, state.Date, city.Name, city.Country)
	fmt.Printf("  Cash: $%d, cargo capacity: %d slots\n", state.Wallet.Balance(), state.MaxSlots)
	fmt.Printf("  Save: %s\n", savePath)
	return nil
}
