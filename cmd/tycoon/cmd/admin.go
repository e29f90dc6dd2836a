package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rustyeddy/tycoon/game"
	"github.com/spf13/cobra"
)

// Admin commands for testing balance changes and content packs; they
// bypass the market but still respect cargo limits and write lots and
// ledger entries like ordinary trades.

var grantCmd = &cobra.Command{
	Use:    "grant",
	Short:  "Add goods or assets without paying",
	Hidden: true,
}

var giftCmd = &cobra.Command{
	Use:    "gift",
	Short:  "Remove goods or assets without compensation",
	Hidden: true,
}

var grantGoodCmd = &cobra.Command{
	Use:   "good <name> <quantity>",
	Short: "Grant goods",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdmin(args, func(s *session, item string, qty int64) game.Result {
			return s.engine.GrantGoods(item, qty)
		})
	},
}

var grantAssetCmd = &cobra.Command{
	Use:   "asset <symbol> <quantity>",
	Short: "Grant asset units",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdmin(args, func(s *session, item string, qty int64) game.Result {
			return s.engine.GrantAsset(item, qty)
		})
	},
}

var giftGoodCmd = &cobra.Command{
	Use:   "good <name> <quantity>",
	Short: "Gift goods away",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdmin(args, func(s *session, item string, qty int64) game.Result {
			return s.engine.GiftGoods(item, qty)
		})
	},
}

var giftAssetCmd = &cobra.Command{
	Use:   "asset <symbol> <quantity>",
	Short: "Gift asset units away",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdmin(args, func(s *session, item string, qty int64) game.Result {
			return s.engine.GiftAsset(item, qty)
		})
	},
}

func init() {
	rootCmd.AddCommand(grantCmd)
	rootCmd.AddCommand(giftCmd)
	grantCmd.AddCommand(grantGoodCmd)
	grantCmd.AddCommand(grantAssetCmd)
	giftCmd.AddCommand(giftGoodCmd)
	giftCmd.AddCommand(giftAssetCmd)
}

func runAdmin(args []string, op func(*session, string, int64) game.Result) error {
	qty, err := strconv.ParseInt(args[len(args)-1], 10, 64)
	if err != nil {
		return fmt.Errorf("quantity must be a number, got %q", args[len(args)-1])
	}
	item := strings.Join(args[:len(args)-1], " ")

	s, err := loadSession()
	if err != nil {
		return err
	}

	res := op(s, item, qty)
	if !res.OK {
		s.jrnl.Close()
		return fmt.Errorf("%s", res.Message)
	}
	fmt.Println(res.Message)
	return s.persist()
}
