package game

import (
	"math/rand"

	"github.com/rustyeddy/tycoon/config"
	"github.com/rustyeddy/tycoon/market"
)

// EventContext carries everything a travel event may touch. Handlers
// mutate state only through the services, so event effects follow the
// same accounting rules as player actions.
type EventContext struct {
	State  *State
	Tables *market.Tables
	Cfg    *config.EventsConfig
	Goods  *GoodsService
	Bank   *BankService
	Rng    *rand.Rand
	City   market.City
}

// Handler is one travel event. Eligible gates selection on the current
// state (no robbery with an empty hold); Apply performs the effect and
// returns the player-facing report.
type Handler interface {
	Key() string
	Category() EventCategory
	Weight() float64
	Eligible(ctx *EventContext) bool
	Apply(ctx *EventContext) EventReport
}

// Registry holds the event handlers and their effective selection
// weights. Weight overrides come from configuration; an explicit zero
// disables the event entirely.
type Registry struct {
	handlers []Handler
	weights  map[string]float64
}

// NewRegistry builds the default event set with configured weight
// overrides applied.
func NewRegistry(cfg *config.EventsConfig) *Registry {
	r := &Registry{weights: map[string]float64{}}
	for _, h := range defaultHandlers() {
		w := h.Weight()
		if cfg.Weights != nil {
			if override, ok := cfg.Weights[h.Key()]; ok {
				w = override
			}
		}
		if w <= 0 {
			continue
		}
		r.handlers = append(r.handlers, h)
		r.weights[h.Key()] = w
	}
	return r
}

func defaultHandlers() []Handler {
	return []Handler{
		// loss
		&robberyEvent{}, &fireEvent{}, &customsDutyEvent{},
		&cashDamageEvent{}, &stolenPurchaseEvent{}, &portfolioCrashEvent{},
		// gain
		&contestWinEvent{}, &bonusDividendEvent{},
		&bankCorrectionEvent{}, &portfolioBoomEvent{},
		// neutral
		&promoEvent{}, &oversupplyEvent{}, &shortageEvent{},
		&loyalDiscountEvent{}, &marketBoomEvent{}, &marketCrashEvent{},
	}
}

// Run rolls the events for one arrival in ctx.City. A single gate roll
// against the city's probability decides whether anything happens at
// all; past the gate, each category fires a uniform count within the
// city's bounds. The same event never fires twice in one journey, and
// reports come back losses first, then gains, then neutral.
func (r *Registry) Run(ctx *EventContext) []EventReport {
	bounds := ctx.City.Events
	if ctx.Rng.Float64() >= bounds.Probability {
		return nil
	}

	var reports []EventReport
	for _, cat := range []struct {
		category EventCategory
		min, max int
	}{
		{CategoryLoss, bounds.LossMin, bounds.LossMax},
		{CategoryGain, bounds.GainMin, bounds.GainMax},
		{CategoryNeutral, bounds.NeutralMin, bounds.NeutralMax},
	} {
		count := cat.min
		if cat.max > cat.min {
			count += ctx.Rng.Intn(cat.max - cat.min + 1)
		}
		for _, h := range r.pick(ctx, cat.category, count) {
			reports = append(reports, h.Apply(ctx))
		}
	}
	return reports
}

// pick selects up to count eligible handlers of one category by
// weighted draw without replacement.
func (r *Registry) pick(ctx *EventContext, category EventCategory, count int) []Handler {
	var pool []Handler
	for _, h := range r.handlers {
		if h.Category() == category && h.Eligible(ctx) {
			pool = append(pool, h)
		}
	}

	var picked []Handler
	for len(picked) < count && len(pool) > 0 {
		var total float64
		for _, h := range pool {
			total += r.weights[h.Key()]
		}
		roll := ctx.Rng.Float64() * total
		idx := len(pool) - 1
		for i, h := range pool {
			roll -= r.weights[h.Key()]
			if roll < 0 {
				idx = i
				break
			}
		}
		picked = append(picked, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return picked
}

// uniformPct draws a percentage uniformly from [lo, hi].
func uniformPct(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// setPriceModifier records a one-day multiplier for the next goods
// price roll in this city.
func setPriceModifier(s *State, good string, mult float64) {
	if s.PriceModifiers == nil {
		s.PriceModifiers = map[string]float64{}
	}
	s.PriceModifiers[good] = mult
}

// randomHeldGood returns a uniformly chosen good the player holds.
func randomHeldGood(ctx *EventContext) (string, bool) {
	names := ctx.State.HeldGoodNames()
	if len(names) == 0 {
		return "", false
	}
	return names[ctx.Rng.Intn(len(names))], true
}

// randomGood returns a uniformly chosen good from the content tables.
func randomGood(ctx *EventContext) market.Good {
	return ctx.Tables.Goods[ctx.Rng.Intn(len(ctx.Tables.Goods))]
}

// randomHeldAssetClass returns a uniformly chosen asset class the
// player holds at least one lot of.
func randomHeldAssetClass(ctx *EventContext) (market.AssetClass, bool) {
	var classes []market.AssetClass
	seen := map[market.AssetClass]bool{}
	for _, symbol := range ctx.State.HeldSymbols() {
		asset, ok := ctx.Tables.AssetBySymbol(symbol)
		if !ok || seen[asset.Class] {
			continue
		}
		seen[asset.Class] = true
		classes = append(classes, asset.Class)
	}
	if len(classes) == 0 {
		return "", false
	}
	return classes[ctx.Rng.Intn(len(classes))], true
}

// randomAssetClass returns a uniformly chosen class present in the
// content tables.
func randomAssetClass(ctx *EventContext) (market.AssetClass, bool) {
	var classes []market.AssetClass
	seen := map[market.AssetClass]bool{}
	for _, a := range ctx.Tables.Assets {
		if seen[a.Class] {
			continue
		}
		seen[a.Class] = true
		classes = append(classes, a.Class)
	}
	if len(classes) == 0 {
		return "", false
	}
	return classes[ctx.Rng.Intn(len(classes))], true
}

// shockHeldClass multiplies the running price of every held asset of
// one class and returns the player's aggregate paper change, negative
// for a loss. The shock hits the shared quotes, so it carries into
// future prices.
func shockHeldClass(ctx *EventContext, class market.AssetClass, mult float64) int64 {
	var delta int64
	for _, symbol := range ctx.State.HeldSymbols() {
		asset, ok := ctx.Tables.AssetBySymbol(symbol)
		if !ok || asset.Class != class {
			continue
		}
		old := ctx.State.AssetPrices[symbol]
		next := int64(float64(old) * mult)
		if next < 1 {
			next = 1
		}
		ctx.State.AssetPrices[symbol] = next
		delta += ctx.State.AssetHeld(symbol) * (next - old)
	}
	return delta
}

// shockAssetClass multiplies the running price of every asset of one
// class, held or not.
func shockAssetClass(ctx *EventContext, class market.AssetClass, mult float64) {
	for _, a := range ctx.Tables.AssetsByClass(class) {
		old := ctx.State.AssetPrices[a.Symbol]
		next := int64(float64(old) * mult)
		if next < 1 {
			next = 1
		}
		ctx.State.AssetPrices[a.Symbol] = next
	}
}

// portfolioValue is the mark-to-market value of all asset lots.
func portfolioValue(ctx *EventContext) int64 {
	var total int64
	for _, lot := range ctx.State.InvestLots {
		if price, ok := ctx.State.AssetPrices[lot.Symbol]; ok {
			total += lot.Quantity * price
		}
	}
	return total
}
