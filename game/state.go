package game

import (
	"github.com/rustyeddy/tycoon/market"
)

// State is the single mutable aggregate of one game. Every service
// operates on a borrowed reference to the same State; only the Engine
// replaces the whole instance (new game, load). All fields are
// exported so the persistence layer can snapshot and restore a game
// wholesale.
type State struct {
	// Starting parameters; applied once at creation and kept only
	// for display and save metadata.
	Difficulty market.Difficulty `json:"difficulty"`

	Day       int    `json:"day"`
	Date      string `json:"date"` // ISO calendar date for day N
	CityIndex int    `json:"city_index"`

	Wallet Wallet `json:"wallet"`

	MaxSlots int64 `json:"max_slots"`

	GoodsLots  []*PurchaseLot   `json:"goods_lots"`
	InvestLots []*InvestmentLot `json:"invest_lots"`

	Bank  BankAccount `json:"bank"`
	Loans []*Loan     `json:"loans"`

	// Per-visit goods quotes for the current city and the previous
	// visit's quotes used for trend display.
	GoodsPrices     map[string]int64 `json:"goods_prices"`
	PrevGoodsPrices map[string]int64 `json:"prev_goods_prices"`

	// Running asset quotes; these persist across travels, so event
	// shocks carry into future quotes.
	AssetPrices     map[string]int64 `json:"asset_prices"`
	PrevAssetPrices map[string]int64 `json:"prev_asset_prices"`

	// One-day multipliers applied to the next goods price roll in the
	// current city, then cleared.
	PriceModifiers map[string]float64 `json:"price_modifiers,omitempty"`

	// Rolling window of generated prices per good/asset.
	PriceHistory map[string][]int64 `json:"price_history,omitempty"`

	// APR offered for a loan taken today; redrawn each travel.
	LoanOfferAPR float64 `json:"loan_offer_apr"`

	History []Transaction `json:"history"`
}

// GoodsHeld returns the total units of a good across all lots.
func (s *State) GoodsHeld(name string) int64 {
	var n int64
	for _, lot := range s.GoodsLots {
		if lot.GoodName == name {
			n += lot.Quantity
		}
	}
	return n
}

// AssetHeld returns the total units of an asset across all lots.
func (s *State) AssetHeld(symbol string) int64 {
	var n int64
	for _, lot := range s.InvestLots {
		if lot.Symbol == symbol {
			n += lot.Quantity
		}
	}
	return n
}

// HeldGoodNames returns the names of all goods currently held, in
// first-purchase order.
func (s *State) HeldGoodNames() []string {
	var names []string
	seen := map[string]bool{}
	for _, lot := range s.GoodsLots {
		if lot.Quantity > 0 && !seen[lot.GoodName] {
			seen[lot.GoodName] = true
			names = append(names, lot.GoodName)
		}
	}
	return names
}

// HeldSymbols returns the symbols of all assets currently held, in
// first-purchase order.
func (s *State) HeldSymbols() []string {
	var syms []string
	seen := map[string]bool{}
	for _, lot := range s.InvestLots {
		if lot.Quantity > 0 && !seen[lot.Symbol] {
			seen[lot.Symbol] = true
			syms = append(syms, lot.Symbol)
		}
	}
	return syms
}

// TotalDebt is the sum of remaining balances across active loans.
func (s *State) TotalDebt() int64 {
	var total int64
	for _, ln := range s.Loans {
		if ln.Remaining > 0 {
			total += ln.Remaining
		}
	}
	return total
}

// recordPrice appends a generated price to the rolling history window.
func (s *State) recordPrice(item string, price int64, window int) {
	if s.PriceHistory == nil {
		s.PriceHistory = map[string][]int64{}
	}
	seq := append(s.PriceHistory[item], price)
	if len(seq) > window {
		seq = seq[len(seq)-window:]
	}
	s.PriceHistory[item] = seq
}

// replaceLastPrice overwrites the newest history entry for an item.
func (s *State) replaceLastPrice(item string, price int64) {
	seq := s.PriceHistory[item]
	if len(seq) == 0 {
		return
	}
	seq[len(seq)-1] = price
}

func (s *State) appendTransaction(tx Transaction) {
	s.History = append(s.History, tx)
}
