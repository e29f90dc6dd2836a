package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rustyeddy/tycoon/game"
	"github.com/spf13/cobra"
)

var buyCmd = &cobra.Command{
	Use:   "buy <good> <quantity>",
	Short: "Buy goods at today's price",
	Long: `Buy goods at the current city's quote. The purchase opens a new
inventory lot; lots are sold oldest first.

Example:
  tycoon buy TV 10
  tycoon buy "Luxury Watch" 2`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrade(args, func(s *session, name string, qty int64) game.Result {
			return s.engine.BuyGoods(name, qty)
		})
	},
}

var sellCmd = &cobra.Command{
	Use:   "sell <good> <quantity>",
	Short: "Sell goods at today's price",
	Long: `Sell goods at the current city's quote. Units come out of your oldest
lots first and the realized profit is computed against what you
actually paid for them.

Example:
  tycoon sell TV 12`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrade(args, func(s *session, name string, qty int64) game.Result {
			return s.engine.SellGoods(name, qty)
		})
	},
}

func init() {
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(sellCmd)
}

// runTrade parses "<name parts...> <qty>" and applies op to a loaded
// session, persisting on success.
func runTrade(args []string, op func(*session, string, int64) game.Result) error {
	qty, err := strconv.ParseInt(args[len(args)-1], 10, 64)
	if err != nil {
		return fmt.Errorf("quantity must be a number, got %q", args[len(args)-1])
	}
	name := strings.Join(args[:len(args)-1], " ")

	s, err := loadSession()
	if err != nil {
		return err
	}

	res := op(s, name, qty)
	if !res.OK {
		s.jrnl.Close()
		return fmt.Errorf("%s", res.Message)
	}
	fmt.Println(res.Message)
	return s.persist()
}
