// game/events_neutral.go
package game

import "fmt"

// Neutral events never move money directly. Most plant one-day goods
// price modifiers that are folded into this city's quote sheet, so the
// player sees the distorted market on arrival and can act on it. The
// market boom/crash pair instead shocks a whole asset class, held or
// not, and those shocks persist like any other asset price move.

// promoEvent discounts one random good for the day.
type promoEvent struct{}

func (promoEvent) Key() string { return "promo" }
func (promoEvent) Category() EventCategory { return CategoryNeutral }
func (promoEvent) Weight() float64 { return 1.0 }
func (promoEvent) Eligible(*EventContext) bool { return true }

func (e promoEvent) Apply(ctx *EventContext) EventReport {
	good := randomGood(ctx)
	mult := uniformPct(ctx.Rng, ctx.Cfg.PromoMultMin, ctx.Cfg.PromoMultMax)
	setPriceModifier(ctx.State, good.Name, mult)
	return EventReport{
		Key: e.Key(), Category: CategoryNeutral,
		Message: fmt.Sprintf("Promotion! %s sells at %.0f%% off today", good.Name, (1-mult)*100),
	}
}

// oversupplyEvent floods the market with one good.
type oversupplyEvent struct{}

func (oversupplyEvent) Key() string { return "oversupply" }
func (oversupplyEvent) Category() EventCategory { return CategoryNeutral }
func (oversupplyEvent) Weight() float64 { return 0.8 }
func (oversupplyEvent) Eligible(*EventContext) bool { return true }

func (e oversupplyEvent) Apply(ctx *EventContext) EventReport {
	good := randomGood(ctx)
	mult := uniformPct(ctx.Rng, ctx.Cfg.OversupplyMultMin, ctx.Cfg.OversupplyMultMax)
	setPriceModifier(ctx.State, good.Name, mult)
	return EventReport{
		Key: e.Key(), Category: CategoryNeutral,
		Message: fmt.Sprintf("Market flooded with %s, prices collapsed for the day", good.Name),
	}
}

// shortageEvent spikes one good's price.
type shortageEvent struct{}

func (shortageEvent) Key() string { return "shortage" }
func (shortageEvent) Category() EventCategory { return CategoryNeutral }
func (shortageEvent) Weight() float64 { return 0.8 }
func (shortageEvent) Eligible(*EventContext) bool { return true }

func (e shortageEvent) Apply(ctx *EventContext) EventReport {
	good := randomGood(ctx)
	mult := uniformPct(ctx.Rng, ctx.Cfg.ShortageMultMin, ctx.Cfg.ShortageMultMax)
	setPriceModifier(ctx.State, good.Name, mult)
	return EventReport{
		Key: e.Key(), Category: CategoryNeutral,
		Message: fmt.Sprintf("%s is in shortage, prices spiked for the day", good.Name),
	}
}

// loyalDiscountEvent gives a small flat discount on one good the
// player already trades.
type loyalDiscountEvent struct{}

func (loyalDiscountEvent) Key() string { return "loyal_discount" }
func (loyalDiscountEvent) Category() EventCategory { return CategoryNeutral }
func (loyalDiscountEvent) Weight() float64 { return 0.6 }

func (loyalDiscountEvent) Eligible(ctx *EventContext) bool {
	return len(ctx.State.GoodsLots) > 0
}

func (e loyalDiscountEvent) Apply(ctx *EventContext) EventReport {
	name, _ := randomHeldGood(ctx)
	mult := 1 - ctx.Cfg.LoyalDiscountMult
	setPriceModifier(ctx.State, name, mult)
	return EventReport{
		Key: e.Key(), Category: CategoryNeutral,
		Message: fmt.Sprintf("A loyal supplier offers you %.0f%% off %s today",
			ctx.Cfg.LoyalDiscountMult*100, name),
	}
}

// marketBoomEvent booms every asset of one random class, whether the
// player holds it or not.
type marketBoomEvent struct{}

func (marketBoomEvent) Key() string { return "market_boom" }
func (marketBoomEvent) Category() EventCategory { return CategoryNeutral }
func (marketBoomEvent) Weight() float64 { return 0.5 }

func (marketBoomEvent) Eligible(ctx *EventContext) bool {
	return len(ctx.Tables.Assets) > 0
}

func (e marketBoomEvent) Apply(ctx *EventContext) EventReport {
	class, _ := randomAssetClass(ctx)
	mult := uniformPct(ctx.Rng, ctx.Cfg.BoomMultMin, ctx.Cfg.BoomMultMax)
	shockAssetClass(ctx, class, mult)
	return EventReport{
		Key: e.Key(), Category: CategoryNeutral,
		Message: fmt.Sprintf("Bull run: every %s price surged", class),
	}
}

// marketCrashEvent crashes every asset of one random class, whether
// the player holds it or not.
type marketCrashEvent struct{}

func (marketCrashEvent) Key() string { return "market_crash" }
func (marketCrashEvent) Category() EventCategory { return CategoryNeutral }
func (marketCrashEvent) Weight() float64 { return 0.5 }

func (marketCrashEvent) Eligible(ctx *EventContext) bool {
	return len(ctx.Tables.Assets) > 0
}

func (e marketCrashEvent) Apply(ctx *EventContext) EventReport {
	class, _ := randomAssetClass(ctx)
	mult := uniformPct(ctx.Rng, ctx.Cfg.CrashMultMin, ctx.Cfg.CrashMultMax)
	shockAssetClass(ctx, class, mult)
	return EventReport{
		Key: e.Key(), Category: CategoryNeutral,
		Message: fmt.Sprintf("Sell-off: every %s price slumped", class),
	}
}
