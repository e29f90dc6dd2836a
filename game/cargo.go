package game

import (
	"math"

	"github.com/rustyeddy/tycoon/config"
	"github.com/rustyeddy/tycoon/market"
)

// CargoService tracks slot usage and sells capacity extensions. Used
// slots are derived from the goods lots, never stored, so they cannot
// drift out of sync with the inventory.
type CargoService struct {
	state  *State
	tables *market.Tables
	cfg    *config.CargoConfig
}

func NewCargoService(state *State, tables *market.Tables, cfg *config.CargoConfig) *CargoService {
	return &CargoService{state: state, tables: tables, cfg: cfg}
}

// UsedSlots returns the slots occupied by all goods lots
// (quantity × cargo size per good).
func (c *CargoService) UsedSlots() int64 {
	var used int64
	for _, lot := range c.state.GoodsLots {
		size := int64(1)
		if g, ok := c.tables.GoodByName(lot.GoodName); ok {
			size = g.CargoSize
		}
		used += lot.Quantity * size
	}
	return used
}

// MaxSlots returns the current capacity.
func (c *CargoService) MaxSlots() int64 { return c.state.MaxSlots }

// FreeSlots returns the unoccupied capacity.
func (c *CargoService) FreeSlots() int64 { return c.state.MaxSlots - c.UsedSlots() }

// HasSpaceFor reports whether qty units of a good fit in free space.
func (c *CargoService) HasSpaceFor(qty int64, good market.Good) bool {
	return qty*good.CargoSize <= c.FreeSlots()
}

// bundlesPurchased counts extensions bought so far, derived from how
// far capacity sits above the difficulty's base.
func (c *CargoService) bundlesPurchased() int64 {
	over := c.state.MaxSlots - c.state.Difficulty.StartCapacity
	if over < 0 {
		over = 0
	}
	return over / c.cfg.ExtendStep
}

// costForBundle prices the n-th extension bundle (0-indexed) under the
// configured curve.
func (c *CargoService) costForBundle(n int64) int64 {
	base := c.cfg.ExtendBaseCost
	if c.cfg.PricingMode == config.CargoPricingExponential {
		return int64(float64(base) * math.Pow(c.cfg.CostFactor, float64(n)))
	}
	increment := float64(base) * c.cfg.CostFactor
	return base + int64(increment*float64(n))
}

// ExtendCost returns the price of the next capacity extension.
func (c *CargoService) ExtendCost() int64 {
	return c.costForBundle(c.bundlesPurchased())
}

// Extend buys one extension bundle: debits the wallet, raises capacity
// by the configured step and returns the next bundle's cost.
func (c *CargoService) Extend() ExtendResult {
	cost := c.ExtendCost()
	if !c.state.Wallet.CanAfford(cost) {
		return ExtendResult{
			Result: failure(ErrInsufficientFunds,
				"Not enough cash! Need $%d, have $%d", cost, c.state.Wallet.Balance()),
			NewCapacity: c.state.MaxSlots,
			NextCost:    cost,
		}
	}

	c.state.Wallet.Spend(cost)
	c.state.MaxSlots += c.cfg.ExtendStep
	next := c.costForBundle(c.bundlesPurchased())

	return ExtendResult{
		Result: success("Cargo extended by +%d slots to %d (-$%d)",
			c.cfg.ExtendStep, c.state.MaxSlots, cost),
		NewCapacity: c.state.MaxSlots,
		NextCost:    next,
	}
}
