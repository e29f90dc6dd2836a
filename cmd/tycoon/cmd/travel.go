package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var travelCmd = &cobra.Command{
	Use:   "travel <city>",
	Short: "Travel to another city (advances one day)",
	Long: `Travel to the named city. The journey costs a fee based on how much
cargo you carry and advances the game by one day: interest accrues,
dividends pay out, prices move and random events may fire on arrival.

Example:
  tycoon travel Amsterdam`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTravel,
}

func init() {
	rootCmd.AddCommand(travelCmd)
}

func runTravel(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	// City names may contain spaces when quoting is forgotten.
	city := strings.Join(args, " ")
	res := s.engine.TravelTo(city)
	if !res.OK {
		s.jrnl.Close()
		return fmt.Errorf("%s", res.Message)
	}

	fmt.Println(res.Message)
	if res.Dividends != nil && res.Dividends.Total > 0 {
		fmt.Printf("Dividends: $%d credited to your bank account\n", res.Dividends.Total)
		for _, p := range res.Dividends.Payouts {
			fmt.Printf("  %-6s $%d (%d lots)\n", p.Symbol, p.Amount, p.Lots)
		}
	}
	for _, ev := range res.Events {
		fmt.Printf("[%s] %s\n", ev.Category, ev.Message)
	}

	return s.persist()
}
