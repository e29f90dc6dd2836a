package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cargoCmd = &cobra.Command{
	Use:   "cargo",
	Short: "Inspect and extend cargo capacity",
	Long: `Show how the cargo hold is used, or buy a capacity extension. Each
extension adds a fixed number of slots; the price climbs with every
bundle bought.

Examples:
  tycoon cargo status
  tycoon cargo extend`,
}

var cargoStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show slot usage and the next extension cost",
	RunE:  runCargoStatus,
}

var cargoExtendCmd = &cobra.Command{
	Use:   "extend",
	Short: "Buy the next capacity extension",
	RunE:  runCargoExtend,
}

func init() {
	rootCmd.AddCommand(cargoCmd)
	cargoCmd.AddCommand(cargoStatusCmd)
	cargoCmd.AddCommand(cargoExtendCmd)
}

func runCargoStatus(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	defer s.jrnl.Close()

	cargo := s.engine.Cargo()
	fmt.Printf("Cargo: %d/%d slots used (%d free)\n",
		cargo.UsedSlots(), cargo.MaxSlots(), cargo.FreeSlots())
	fmt.Printf("Next extension: +%d slots for $%d\n",
		s.cfg.Cargo.ExtendStep, cargo.ExtendCost())

	st := s.engine.State()
	if len(st.GoodsLots) > 0 {
		fmt.Println("\nLots:")
		for _, lot := range st.GoodsLots {
			fmt.Printf("  %-18s %5d units @ $%-8d bought day %d in %s\n",
				lot.GoodName, lot.Quantity, lot.UnitCost, lot.PurchaseDay, lot.City)
		}
	}
	return nil
}

func runCargoExtend(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	res := s.engine.ExtendCargo()
	if !res.OK {
		s.jrnl.Close()
		return fmt.Errorf("%s", res.Message)
	}
	fmt.Println(res.Message)
	fmt.Printf("  Next extension: $%d\n", res.NextCost)
	return s.persist()
}
