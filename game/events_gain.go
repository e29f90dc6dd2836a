// game/events_gain.go
package game

import "fmt"

// contestWinEvent pays a cash prize from the configured prize table.
type contestWinEvent struct{}

func (contestWinEvent) Key() string { return "contest_win" }
func (contestWinEvent) Category() EventCategory { return CategoryGain }
func (contestWinEvent) Weight() float64 { return 1.0 }

func (contestWinEvent) Eligible(ctx *EventContext) bool {
	return len(ctx.Cfg.ContestPrizes) > 0
}

func (e contestWinEvent) Apply(ctx *EventContext) EventReport {
	prize := ctx.Cfg.ContestPrizes[ctx.Rng.Intn(len(ctx.Cfg.ContestPrizes))]
	ctx.State.Wallet.Earn(prize)
	return EventReport{
		Key: e.Key(), Category: CategoryGain,
		Message: fmt.Sprintf("You won a local contest! Prize: $%d", prize),
	}
}

// bonusDividendEvent pays a special dividend on the whole portfolio,
// credited to the bank like regular dividends.
type bonusDividendEvent struct{}

func (bonusDividendEvent) Key() string { return "bonus_dividend" }
func (bonusDividendEvent) Category() EventCategory { return CategoryGain }
func (bonusDividendEvent) Weight() float64 { return 0.7 }

func (bonusDividendEvent) Eligible(ctx *EventContext) bool {
	return len(ctx.State.InvestLots) > 0
}

func (e bonusDividendEvent) Apply(ctx *EventContext) EventReport {
	pct := uniformPct(ctx.Rng, ctx.Cfg.BonusDividendPctMin, ctx.Cfg.BonusDividendPctMax)
	amount := int64(float64(portfolioValue(ctx)) * pct)
	if amount < 1 {
		amount = 1
	}
	ctx.Bank.Credit(amount, BankTxDividend, "Special dividend")
	return EventReport{
		Key: e.Key(), Category: CategoryGain,
		Message: fmt.Sprintf("Special dividend announced! $%d credited to your bank account", amount),
	}
}

// bankCorrectionEvent credits a correction in the player's favor.
type bankCorrectionEvent struct{}

func (bankCorrectionEvent) Key() string { return "bank_correction" }
func (bankCorrectionEvent) Category() EventCategory { return CategoryGain }
func (bankCorrectionEvent) Weight() float64 { return 0.6 }

func (bankCorrectionEvent) Eligible(ctx *EventContext) bool {
	return ctx.State.Bank.Balance > 0
}

func (e bankCorrectionEvent) Apply(ctx *EventContext) EventReport {
	pct := uniformPct(ctx.Rng, ctx.Cfg.BankCorrectionPctMin, ctx.Cfg.BankCorrectionPctMax)
	amount := int64(float64(ctx.State.Bank.Balance) * pct)
	if amount < ctx.Cfg.BankCorrectionMin {
		amount = ctx.Cfg.BankCorrectionMin
	}
	ctx.Bank.Credit(amount, BankTxCorrection, "Interest recalculation")
	return EventReport{
		Key: e.Key(), Category: CategoryGain,
		Message: fmt.Sprintf("The bank recalculated your interest: +$%d", amount),
	}
}

// portfolioBoomEvent picks one asset class the player holds and booms
// every held asset of that class. The shock hits the shared quotes and
// persists into future prices.
type portfolioBoomEvent struct{}

func (portfolioBoomEvent) Key() string { return "portfolio_boom" }
func (portfolioBoomEvent) Category() EventCategory { return CategoryGain }
func (portfolioBoomEvent) Weight() float64 { return 0.5 }

func (portfolioBoomEvent) Eligible(ctx *EventContext) bool {
	return len(ctx.State.InvestLots) > 0
}

func (e portfolioBoomEvent) Apply(ctx *EventContext) EventReport {
	class, _ := randomHeldAssetClass(ctx)
	mult := uniformPct(ctx.Rng, ctx.Cfg.BoomMultMin, ctx.Cfg.BoomMultMax)
	gain := shockHeldClass(ctx, class, mult)
	return EventReport{
		Key: e.Key(), Category: CategoryGain,
		Message: fmt.Sprintf("%s markets are booming! Your holdings gained $%d on paper", class, gain),
	}
}
