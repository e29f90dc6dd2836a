package game

import (
	"math/rand"

	"github.com/rustyeddy/tycoon/config"
	"github.com/rustyeddy/tycoon/market"
	"github.com/rustyeddy/tycoon/pkg/id"
)

// GoodsService handles the goods market: per-city price generation and
// FIFO lot trading. Prices are quotes for the current city only and are
// re-rolled on every arrival.
type GoodsService struct {
	state   *State
	tables  *market.Tables
	pricing *config.PricingConfig
	cargo   *CargoService
	rng     *rand.Rand
}

func NewGoodsService(state *State, tables *market.Tables, pricing *config.PricingConfig, cargo *CargoService, rng *rand.Rand) *GoodsService {
	return &GoodsService{state: state, tables: tables, pricing: pricing, cargo: cargo, rng: rng}
}

// GeneratePrices rolls a fresh quote sheet for the given city:
// base × city multiplier × uniform noise within the good's variance,
// times any one-day modifier. Modifiers are consumed by the roll.
func (g *GoodsService) GeneratePrices(city market.City) {
	g.state.PrevGoodsPrices = g.state.GoodsPrices
	prices := make(map[string]int64, len(g.tables.Goods))

	for _, good := range g.tables.Goods {
		noise := 1 + (g.rng.Float64()*2-1)*good.PriceVariance
		price := float64(good.BasePrice) * city.Multiplier(good.Name) * noise
		if mod, ok := g.state.PriceModifiers[good.Name]; ok {
			price *= mod
		}
		p := int64(price)
		if p < g.pricing.MinUnitPrice {
			p = g.pricing.MinUnitPrice
		}
		prices[good.Name] = p
		g.state.recordPrice(good.Name, p, g.pricing.HistoryWindow)
	}

	g.state.GoodsPrices = prices
	g.state.PriceModifiers = nil
}

// ApplyModifiers folds pending one-day modifiers into the current
// quote sheet. Only the modified goods move; everyone else keeps the
// price already rolled, and the day's history entry is overwritten
// rather than duplicated.
func (g *GoodsService) ApplyModifiers() {
	for name, mod := range g.state.PriceModifiers {
		old, ok := g.state.GoodsPrices[name]
		if !ok {
			continue
		}
		p := int64(float64(old) * mod)
		if p < g.pricing.MinUnitPrice {
			p = g.pricing.MinUnitPrice
		}
		g.state.GoodsPrices[name] = p
		g.state.replaceLastPrice(name, p)
	}
	g.state.PriceModifiers = nil
}

// Quote returns the current city's unit price for a good.
func (g *GoodsService) Quote(name string) (int64, bool) {
	p, ok := g.state.GoodsPrices[name]
	return p, ok
}

// Buy purchases qty units at the current quote, opening a new lot.
func (g *GoodsService) Buy(name string, qty int64) Result {
	if qty <= 0 {
		return failure(ErrValidation, "Quantity must be positive")
	}
	good, ok := g.tables.GoodByName(name)
	if !ok {
		return failure(ErrValidation, "Unknown good: %s", name)
	}
	price, ok := g.Quote(good.Name)
	if !ok {
		return failure(ErrValidation, "No quote for %s in this city", good.Name)
	}
	if !g.cargo.HasSpaceFor(qty, good) {
		return failure(ErrCargoFull, "Not enough cargo space! Need %d slots, have %d free",
			qty*good.CargoSize, g.cargo.FreeSlots())
	}
	total := price * qty
	if !g.state.Wallet.Spend(total) {
		return failure(ErrInsufficientFunds, "Not enough cash! Need $%d, have $%d",
			total, g.state.Wallet.Balance())
	}

	city := g.tables.Cities[g.state.CityIndex]
	g.state.GoodsLots = append(g.state.GoodsLots, &PurchaseLot{
		ID:              id.New(),
		GoodName:        good.Name,
		Quantity:        qty,
		UnitCost:        price,
		PurchaseDay:     g.state.Day,
		City:            city.Name,
		InitialQuantity: qty,
	})
	g.state.appendTransaction(Transaction{
		ID: id.New(), Kind: KindGoods, Side: SideBuy,
		Item: good.Name, Quantity: qty, UnitPrice: price, Total: total,
		Day: g.state.Day, City: city.Name,
	})
	return success("Bought %d x %s @ $%d (-$%d)", qty, good.Name, price, total)
}

// Sell sells qty units at the current quote, consuming lots oldest
// first. Realized P/L is proceeds minus the FIFO cost of the units
// actually sold.
func (g *GoodsService) Sell(name string, qty int64) Result {
	if qty <= 0 {
		return failure(ErrValidation, "Quantity must be positive")
	}
	good, ok := g.tables.GoodByName(name)
	if !ok {
		return failure(ErrValidation, "Unknown good: %s", name)
	}
	price, ok := g.Quote(good.Name)
	if !ok {
		return failure(ErrValidation, "No quote for %s in this city", good.Name)
	}
	if held := g.state.GoodsHeld(good.Name); held < qty {
		return failure(ErrInsufficientQuantity, "Not enough %s! Have %d, tried to sell %d",
			good.Name, held, qty)
	}

	cost := g.consumeGoodsFIFO(good.Name, qty)
	proceeds := price * qty
	g.state.Wallet.Earn(proceeds)

	city := g.tables.Cities[g.state.CityIndex]
	g.state.appendTransaction(Transaction{
		ID: id.New(), Kind: KindGoods, Side: SideSell,
		Item: good.Name, Quantity: qty, UnitPrice: price, Total: proceeds,
		RealizedPL: proceeds - cost,
		Day:        g.state.Day, City: city.Name,
	})
	return success("Sold %d x %s @ $%d (+$%d, P/L $%+d)",
		qty, good.Name, price, proceeds, proceeds-cost)
}

// Grant adds qty units at zero cost without touching the wallet.
func (g *GoodsService) Grant(name string, qty int64) Result {
	if qty <= 0 {
		return failure(ErrValidation, "Quantity must be positive")
	}
	good, ok := g.tables.GoodByName(name)
	if !ok {
		return failure(ErrValidation, "Unknown good: %s", name)
	}
	if !g.cargo.HasSpaceFor(qty, good) {
		return failure(ErrCargoFull, "Not enough cargo space! Need %d slots, have %d free",
			qty*good.CargoSize, g.cargo.FreeSlots())
	}

	city := g.tables.Cities[g.state.CityIndex]
	g.state.GoodsLots = append(g.state.GoodsLots, &PurchaseLot{
		ID:              id.New(),
		GoodName:        good.Name,
		Quantity:        qty,
		UnitCost:        0,
		PurchaseDay:     g.state.Day,
		City:            city.Name,
		InitialQuantity: qty,
	})
	g.state.appendTransaction(Transaction{
		ID: id.New(), Kind: KindGoods, Side: SideGrant,
		Item: good.Name, Quantity: qty,
		Day: g.state.Day, City: city.Name,
	})
	return success("Granted %d x %s", qty, good.Name)
}

// Gift removes qty units FIFO without compensation.
func (g *GoodsService) Gift(name string, qty int64) Result {
	if qty <= 0 {
		return failure(ErrValidation, "Quantity must be positive")
	}
	good, ok := g.tables.GoodByName(name)
	if !ok {
		return failure(ErrValidation, "Unknown good: %s", name)
	}
	if held := g.state.GoodsHeld(good.Name); held < qty {
		return failure(ErrInsufficientQuantity, "Not enough %s! Have %d, tried to gift %d",
			good.Name, held, qty)
	}

	g.consumeGoodsFIFO(good.Name, qty)
	city := g.tables.Cities[g.state.CityIndex]
	g.state.appendTransaction(Transaction{
		ID: id.New(), Kind: KindGoods, Side: SideGift,
		Item: good.Name, Quantity: qty,
		Day: g.state.Day, City: city.Name,
	})
	return success("Gifted %d x %s", qty, good.Name)
}

// ApplyLoss removes up to qty units FIFO for a travel event, marking
// the removed units lost on their lots. Returns the units actually
// removed, which may be less than requested.
func (g *GoodsService) ApplyLoss(name string, qty int64) int64 {
	held := g.state.GoodsHeld(name)
	if qty > held {
		qty = held
	}
	if qty <= 0 {
		return 0
	}

	remaining := qty
	for _, lot := range g.state.GoodsLots {
		if remaining == 0 {
			break
		}
		if lot.GoodName != name || lot.Quantity == 0 {
			continue
		}
		take := lot.Quantity
		if take > remaining {
			take = remaining
		}
		lot.Quantity -= take
		lot.LostQuantity += take
		remaining -= take
	}
	g.dropEmptyLots()

	city := g.tables.Cities[g.state.CityIndex]
	g.state.appendTransaction(Transaction{
		ID: id.New(), Kind: KindGoods, Side: SideLoss,
		Item: name, Quantity: qty,
		Day: g.state.Day, City: city.Name,
	})
	return qty
}

// consumeGoodsFIFO removes qty units of a good oldest-lot-first and
// returns the total cost basis of the removed units. The caller has
// already verified qty is covered.
func (g *GoodsService) consumeGoodsFIFO(name string, qty int64) int64 {
	var cost int64
	remaining := qty
	for _, lot := range g.state.GoodsLots {
		if remaining == 0 {
			break
		}
		if lot.GoodName != name || lot.Quantity == 0 {
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
	g.dropEmptyLots()
	return cost
}

func (g *GoodsService) dropEmptyLots() {
	kept := g.state.GoodsLots[:0]
	for _, lot := range g.state.GoodsLots {
		if lot.Quantity > 0 {
			kept = append(kept, lot)
		}
	}
	g.state.GoodsLots = kept
}
