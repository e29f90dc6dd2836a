package game

import (
	"math/rand"

	"github.com/rustyeddy/tycoon/config"
	"github.com/rustyeddy/tycoon/market"
	"github.com/rustyeddy/tycoon/pkg/id"
)

// InvestService handles the asset market. Unlike goods quotes, asset
// prices are running values: each travel drifts the previous price
// rather than re-rolling from base, so event shocks persist into
// future quotes.
type InvestService struct {
	state   *State
	tables  *market.Tables
	cfg     *config.InvestConfig
	pricing *config.PricingConfig
	rng     *rand.Rand
}

func NewInvestService(state *State, tables *market.Tables, cfg *config.InvestConfig, pricing *config.PricingConfig, rng *rand.Rand) *InvestService {
	return &InvestService{state: state, tables: tables, cfg: cfg, pricing: pricing, rng: rng}
}

// SeedPrices sets every asset's running price to its base. Called once
// at game creation.
func (v *InvestService) SeedPrices() {
	prices := make(map[string]int64, len(v.tables.Assets))
	for _, a := range v.tables.Assets {
		prices[a.Symbol] = a.BasePrice
	}
	v.state.AssetPrices = prices
	v.state.PrevAssetPrices = nil
}

// GeneratePrices drifts every running price by a uniform step within
// the asset's variance band, scaled by the configured multiplier. A
// non-zero mean reversion pulls the result back toward base.
func (v *InvestService) GeneratePrices() {
	prev := v.state.AssetPrices
	v.state.PrevAssetPrices = prev
	prices := make(map[string]int64, len(v.tables.Assets))

	for _, a := range v.tables.Assets {
		current, ok := prev[a.Symbol]
		if !ok || current <= 0 {
			current = a.BasePrice
		}
		drift := (v.rng.Float64()*2 - 1) * a.PriceVariance * v.cfg.VarianceScale
		next := float64(current) * (1 + drift)
		if v.cfg.MeanReversion > 0 {
			next += (float64(a.BasePrice) - next) * v.cfg.MeanReversion
		}
		p := int64(next)
		if p < v.pricing.MinUnitPrice {
			p = v.pricing.MinUnitPrice
		}
		prices[a.Symbol] = p
		v.state.recordPrice(a.Symbol, p, v.pricing.HistoryWindow)
	}

	v.state.AssetPrices = prices
}

// Quote returns the current running price for an asset.
func (v *InvestService) Quote(symbol string) (int64, bool) {
	p, ok := v.state.AssetPrices[symbol]
	return p, ok
}

// Buy purchases qty units at the running price, opening a new lot.
// New lots start at zero days held and wait out the minimum holding
// period before earning dividends.
func (v *InvestService) Buy(symbol string, qty int64) Result {
	if qty <= 0 {
		return failure(ErrValidation, "Quantity must be positive")
	}
	asset, ok := v.tables.AssetBySymbol(symbol)
	if !ok {
		return failure(ErrValidation, "Unknown asset: %s", symbol)
	}
	price, ok := v.Quote(asset.Symbol)
	if !ok {
		return failure(ErrValidation, "No quote for %s", asset.Symbol)
	}
	total := price * qty
	if !v.state.Wallet.Spend(total) {
		return failure(ErrInsufficientFunds, "Not enough cash! Need $%d, have $%d",
			total, v.state.Wallet.Balance())
	}

	v.state.InvestLots = append(v.state.InvestLots, &InvestmentLot{
		ID:          id.New(),
		Symbol:      asset.Symbol,
		Quantity:    qty,
		UnitCost:    price,
		PurchaseDay: v.state.Day,
	})
	v.state.appendTransaction(Transaction{
		ID: id.New(), Kind: KindAsset, Side: SideBuy,
		Item: asset.Symbol, Quantity: qty, UnitPrice: price, Total: total,
		Day: v.state.Day, City: v.currentCity(),
	})
	return success("Bought %d x %s @ $%d (-$%d)", qty, asset.Symbol, price, total)
}

// Sell sells qty units at the running price, consuming lots oldest
// first.
func (v *InvestService) Sell(symbol string, qty int64) Result {
	if qty <= 0 {
		return failure(ErrValidation, "Quantity must be positive")
	}
	asset, ok := v.tables.AssetBySymbol(symbol)
	if !ok {
		return failure(ErrValidation, "Unknown asset: %s", symbol)
	}
	price, ok := v.Quote(asset.Symbol)
	if !ok {
		return failure(ErrValidation, "No quote for %s", asset.Symbol)
	}
	if held := v.state.AssetHeld(asset.Symbol); held < qty {
		return failure(ErrInsufficientQuantity, "Not enough %s! Have %d, tried to sell %d",
			asset.Symbol, held, qty)
	}

	cost := v.consumeInvestFIFO(asset.Symbol, qty)
	proceeds := price * qty
	v.state.Wallet.Earn(proceeds)

	v.state.appendTransaction(Transaction{
		ID: id.New(), Kind: KindAsset, Side: SideSell,
		Item: asset.Symbol, Quantity: qty, UnitPrice: price, Total: proceeds,
		RealizedPL: proceeds - cost,
		Day:        v.state.Day, City: v.currentCity(),
	})
	return success("Sold %d x %s @ $%d (+$%d, P/L $%+d)",
		qty, asset.Symbol, price, proceeds, proceeds-cost)
}

// Grant adds qty units at zero cost without touching the wallet.
func (v *InvestService) Grant(symbol string, qty int64) Result {
	if qty <= 0 {
		return failure(ErrValidation, "Quantity must be positive")
	}
	asset, ok := v.tables.AssetBySymbol(symbol)
	if !ok {
		return failure(ErrValidation, "Unknown asset: %s", symbol)
	}

	v.state.InvestLots = append(v.state.InvestLots, &InvestmentLot{
		ID:          id.New(),
		Symbol:      asset.Symbol,
		Quantity:    qty,
		UnitCost:    0,
		PurchaseDay: v.state.Day,
	})
	v.state.appendTransaction(Transaction{
		ID: id.New(), Kind: KindAsset, Side: SideGrant,
		Item: asset.Symbol, Quantity: qty,
		Day: v.state.Day, City: v.currentCity(),
	})
	return success("Granted %d x %s", qty, asset.Symbol)
}

// Gift removes qty units FIFO without compensation.
func (v *InvestService) Gift(symbol string, qty int64) Result {
	if qty <= 0 {
		return failure(ErrValidation, "Quantity must be positive")
	}
	asset, ok := v.tables.AssetBySymbol(symbol)
	if !ok {
		return failure(ErrValidation, "Unknown asset: %s", symbol)
	}
	if held := v.state.AssetHeld(asset.Symbol); held < qty {
		return failure(ErrInsufficientQuantity, "Not enough %s! Have %d, tried to gift %d",
			asset.Symbol, held, qty)
	}

	v.consumeInvestFIFO(asset.Symbol, qty)
	v.state.appendTransaction(Transaction{
		ID: id.New(), Kind: KindAsset, Side: SideGift,
		Item: asset.Symbol, Quantity: qty,
		Day: v.state.Day, City: v.currentCity(),
	})
	return success("Gifted %d x %s", qty, asset.Symbol)
}

// IncrementHoldingDays ages every lot by one day. Called once per
// travel before dividends are evaluated.
func (v *InvestService) IncrementHoldingDays() {
	for _, lot := range v.state.InvestLots {
		lot.DaysHeld++
	}
}

// PayDividends credits dividends to the bank account for every
// eligible lot. A lot is eligible when it has aged past the minimum
// holding period and the day count since purchase lands exactly on the
// payout cadence, so each lot pays on its own schedule.
func (v *InvestService) PayDividends() *DividendSummary {
	summary := &DividendSummary{}
	if v.cfg.DividendIntervalDays <= 0 {
		return summary
	}

	for _, asset := range v.tables.Assets {
		if asset.DividendRate <= 0 {
			continue
		}
		price, ok := v.Quote(asset.Symbol)
		if !ok {
			continue
		}

		var amount int64
		var lots int
		for _, lot := range v.state.InvestLots {
			if lot.Symbol != asset.Symbol || lot.Quantity == 0 {
				continue
			}
			if lot.DaysHeld < v.cfg.DividendMinHoldingDays {
				continue
			}
			if (v.state.Day-lot.PurchaseDay)%v.cfg.DividendIntervalDays != 0 {
				continue
			}
			payout := int64(float64(lot.Quantity*price) * asset.DividendRate)
			if payout <= 0 {
				continue
			}
			lot.DividendPaid += payout
			amount += payout
			lots++
		}
		if amount > 0 {
			summary.Total += amount
			summary.Payouts = append(summary.Payouts, DividendPayout{
				Symbol: asset.Symbol, Lots: lots, Amount: amount,
			})
		}
	}

	if summary.Total > 0 {
		v.state.Bank.Balance += summary.Total
		v.state.Bank.Transactions = append(v.state.Bank.Transactions, BankTransaction{
			Type:         BankTxDividend,
			Amount:       summary.Total,
			BalanceAfter: v.state.Bank.Balance,
			Day:          v.state.Day,
			Title:        "Dividend payout",
		})
	}
	return summary
}

// consumeInvestFIFO removes qty units of an asset oldest-lot-first and
// returns the cost basis of the removed units.
func (v *InvestService) consumeInvestFIFO(symbol string, qty int64) int64 {
	var cost int64
	remaining := qty
	for _, lot := range v.state.InvestLots {
		if remaining == 0 {
			break
		}
		if lot.Symbol != symbol || lot.Quantity == 0 {
			continue
		}
		take := lot.Quantity
		if take > remaining {
			take = remaining
		}
		lot.Quantity -= take
		cost += take * lot.UnitCost
		remaining -= take
	}

	kept := v.state.InvestLots[:0]
	for _, lot := range v.state.InvestLots {
		if lot.Quantity > 0 {
			kept = append(kept, lot)
		}
	}
	v.state.InvestLots = kept
	return cost
}

func (v *InvestService) currentCity() string {
	return v.tables.Cities[v.state.CityIndex].Name
}
