package cmd

import (
	"fmt"
	"strconv"

	"github.com/rustyeddy/tycoon/game"
	"github.com/spf13/cobra"
)

var investCmd = &cobra.Command{
	Use:   "invest",
	Short: "Trade stocks, commodities and crypto",
	Long: `Buy and sell financial assets at their running prices. Asset prices
drift from day to day rather than resetting per city, and dividend
paying stocks credit your bank account while you hold them.

Examples:
  tycoon invest buy GOOGL 10
  tycoon invest sell BTC 1`,
}

var investBuyCmd = &cobra.Command{
	Use:   "buy <symbol> <quantity>",
	Short: "Buy an asset at the running price",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInvest(args, true)
	},
}

var investSellCmd = &cobra.Command{
	Use:   "sell <symbol> <quantity>",
	Short: "Sell an asset at the running price",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInvest(args, false)
	},
}

func init() {
	rootCmd.AddCommand(investCmd)
	investCmd.AddCommand(investBuyCmd)
	investCmd.AddCommand(investSellCmd)
}

func runInvest(args []string, buy bool) error {
	qty, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("quantity must be a number, got %q", args[1])
	}

	s, err := loadSession()
	if err != nil {
		return err
	}

	var res game.Result
	if buy {
		res = s.engine.BuyAsset(args[0], qty)
	} else {
		res = s.engine.SellAsset(args[0], qty)
	}
	if !res.OK {
		s.jrnl.Close()
		return fmt.Errorf("%s", res.Message)
	}
	fmt.Println(res.Message)
	return s.persist()
}
