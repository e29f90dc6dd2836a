package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current game state",
	Long: `Print the player's position: location, cash, bank, cargo, inventory,
portfolio, loans and net worth, plus today's market quotes.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	defer s.jrnl.Close()

	st := s.engine.State()
	city := s.tables.Cities[st.CityIndex]

	fmt.Printf("Day %d (%s) — %s, %s [%s]\n", st.Day, st.Date, city.Name, city.Country, st.Difficulty.DisplayName)
	fmt.Printf("  Cash:  $%d\n", st.Wallet.Balance())
	fmt.Printf("  Bank:  $%d (APR %.2f%%)\n", st.Bank.Balance, st.Bank.APR*100)
	fmt.Printf("  Debt:  $%d (loan offer %.2f%% APR)\n", st.TotalDebt(), st.LoanOfferAPR*100)
	fmt.Printf("  Cargo: %d/%d slots\n", s.engine.Cargo().UsedSlots(), st.MaxSlots)
	fmt.Printf("  Net worth: $%d\n", s.engine.NetWorth())

	if len(st.GoodsLots) > 0 {
		fmt.Println("\nInventory:")
		for _, name := range st.HeldGoodNames() {
			quote := "-"
			if p, ok := st.GoodsPrices[name]; ok {
				quote = fmt.Sprintf("$%d", p)
			}
			fmt.Printf("  %-18s %6d units, today %s\n", name, st.GoodsHeld(name), quote)
		}
	}

	if len(st.InvestLots) > 0 {
		fmt.Println("\nPortfolio:")
		for _, sym := range st.HeldSymbols() {
			quote := "-"
			if p, ok := st.AssetPrices[sym]; ok {
				quote = fmt.Sprintf("$%d", p)
			}
			fmt.Printf("  %-6s %6d units, today %s\n", sym, st.AssetHeld(sym), quote)
		}
	}

	if st.TotalDebt() > 0 {
		fmt.Println("\nLoans:")
		for _, ln := range st.Loans {
			if ln.Remaining == 0 {
				continue
			}
			fmt.Printf("  %s  $%d remaining at %.2f%% APR (taken day %d)\n",
				ln.ID, ln.Remaining, ln.APR*100, ln.DayTaken)
		}
	}

	fmt.Println("\nMarket:")
	for _, g := range s.tables.Goods {
		price := st.GoodsPrices[g.Name]
		trend := ""
		if prev, ok := st.PrevGoodsPrices[g.Name]; ok && prev > 0 {
			switch {
			case price > prev:
				trend = "↑"
			case price < prev:
				trend = "↓"
			}
		}
		fmt.Printf("  %-18s $%-8d %s\n", g.Name, price, trend)
	}

	fmt.Println("\nAssets:")
	for _, a := range s.tables.Assets {
		price := st.AssetPrices[a.Symbol]
		trend := ""
		if prev, ok := st.PrevAssetPrices[a.Symbol]; ok && prev > 0 {
			switch {
			case price > prev:
				trend = "↑"
			case price < prev:
				trend = "↓"
			}
		}
		fmt.Printf("  %-6s (%s) $%-8d %s\n", a.Symbol, a.Class, price, trend)
	}
	return nil
}
