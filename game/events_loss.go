// game/events_loss.go
package game

import "fmt"

// robberyEvent steals a slice of one held good.
type robberyEvent struct{}

func (robberyEvent) Key() string { return "robbery" }
func (robberyEvent) Category() EventCategory { return CategoryLoss }
func (robberyEvent) Weight() float64 { return 1.0 }

func (robberyEvent) Eligible(ctx *EventContext) bool {
	return len(ctx.State.GoodsLots) > 0
}

func (e robberyEvent) Apply(ctx *EventContext) EventReport {
	name, _ := randomHeldGood(ctx)
	held := ctx.State.GoodsHeld(name)
	pct := uniformPct(ctx.Rng, ctx.Cfg.RobberyLossPctMin, ctx.Cfg.RobberyLossPctMax)
	qty := int64(float64(held) * pct)
	if qty < 1 {
		qty = 1
	}
	lost := ctx.Goods.ApplyLoss(name, qty)
	return EventReport{
		Key: e.Key(), Category: CategoryLoss,
		Message: fmt.Sprintf("You were robbed! Lost %d x %s", lost, name),
	}
}

// fireEvent burns a share of every good in the hold.
type fireEvent struct{}

func (fireEvent) Key() string { return "fire" }
func (fireEvent) Category() EventCategory { return CategoryLoss }
func (fireEvent) Weight() float64 { return 0.5 }

func (fireEvent) Eligible(ctx *EventContext) bool {
	return len(ctx.State.GoodsLots) > 0
}

func (e fireEvent) Apply(ctx *EventContext) EventReport {
	pct := uniformPct(ctx.Rng, ctx.Cfg.FireTotalPctMin, ctx.Cfg.FireTotalPctMax)
	var lost int64
	for _, name := range ctx.State.HeldGoodNames() {
		qty := int64(float64(ctx.State.GoodsHeld(name)) * pct)
		if qty < 1 {
			qty = 1
		}
		lost += ctx.Goods.ApplyLoss(name, qty)
	}
	return EventReport{
		Key: e.Key(), Category: CategoryLoss,
		Message: fmt.Sprintf("Warehouse fire! Lost %d units of cargo", lost),
	}
}

// customsDutyEvent charges a cash duty on the cargo's market value.
type customsDutyEvent struct{}

func (customsDutyEvent) Key() string { return "customs_duty" }
func (customsDutyEvent) Category() EventCategory { return CategoryLoss }
func (customsDutyEvent) Weight() float64 { return 0.8 }

func (customsDutyEvent) Eligible(ctx *EventContext) bool {
	return len(ctx.State.GoodsLots) > 0 && ctx.State.Wallet.Balance() > 0
}

func (e customsDutyEvent) Apply(ctx *EventContext) EventReport {
	var cargoValue int64
	for _, lot := range ctx.State.GoodsLots {
		if price, ok := ctx.State.GoodsPrices[lot.GoodName]; ok {
			cargoValue += lot.Quantity * price
		}
	}
	pct := uniformPct(ctx.Rng, ctx.Cfg.CustomsDutyPctMin, ctx.Cfg.CustomsDutyPctMax)
	duty := int64(float64(cargoValue) * pct)
	if duty > ctx.State.Wallet.Balance() {
		duty = ctx.State.Wallet.Balance()
	}
	if duty < 1 {
		duty = 1
	}
	ctx.State.Wallet.Spend(duty)
	return EventReport{
		Key: e.Key(), Category: CategoryLoss,
		Message: fmt.Sprintf("Customs inspection! Paid $%d duty", duty),
	}
}

// cashDamageEvent takes a bounded slice of cash on hand.
type cashDamageEvent struct{}

func (cashDamageEvent) Key() string { return "cash_damage" }
func (cashDamageEvent) Category() EventCategory { return CategoryLoss }
func (cashDamageEvent) Weight() float64 { return 0.8 }

func (cashDamageEvent) Eligible(ctx *EventContext) bool {
	return ctx.State.Wallet.Balance() > 0
}

func (e cashDamageEvent) Apply(ctx *EventContext) EventReport {
	pct := uniformPct(ctx.Rng, ctx.Cfg.CashDamagePctMin, ctx.Cfg.CashDamagePctMax)
	loss := int64(float64(ctx.State.Wallet.Balance()) * pct)
	if loss < ctx.Cfg.CashDamageMin {
		loss = ctx.Cfg.CashDamageMin
	}
	if loss > ctx.Cfg.CashDamageMax {
		loss = ctx.Cfg.CashDamageMax
	}
	if loss > ctx.State.Wallet.Balance() {
		loss = ctx.State.Wallet.Balance()
	}
	ctx.State.Wallet.Spend(loss)
	return EventReport{
		Key: e.Key(), Category: CategoryLoss,
		Message: fmt.Sprintf("Your wallet was pickpocketed! Lost $%d", loss),
	}
}

// stolenPurchaseEvent steals the most recently opened goods lot whole.
type stolenPurchaseEvent struct{}

func (stolenPurchaseEvent) Key() string { return "stolen_purchase" }
func (stolenPurchaseEvent) Category() EventCategory { return CategoryLoss }
func (stolenPurchaseEvent) Weight() float64 { return 0.4 }

func (stolenPurchaseEvent) Eligible(ctx *EventContext) bool {
	return len(ctx.State.GoodsLots) > 0
}

func (e stolenPurchaseEvent) Apply(ctx *EventContext) EventReport {
	last := ctx.State.GoodsLots[len(ctx.State.GoodsLots)-1]
	name, qty := last.GoodName, last.Quantity
	last.LostQuantity += qty
	last.Quantity = 0
	ctx.Goods.dropEmptyLots()
	return EventReport{
		Key: e.Key(), Category: CategoryLoss,
		Message: fmt.Sprintf("Thieves took your latest haul: %d x %s gone", qty, name),
	}
}

// portfolioCrashEvent picks one asset class the player holds and
// crashes every held asset of that class. The shock hits the shared
// quotes and persists into future prices.
type portfolioCrashEvent struct{}

func (portfolioCrashEvent) Key() string { return "portfolio_crash" }
func (portfolioCrashEvent) Category() EventCategory { return CategoryLoss }
func (portfolioCrashEvent) Weight() float64 { return 0.5 }

func (portfolioCrashEvent) Eligible(ctx *EventContext) bool {
	return len(ctx.State.InvestLots) > 0
}

func (e portfolioCrashEvent) Apply(ctx *EventContext) EventReport {
	class, _ := randomHeldAssetClass(ctx)
	mult := uniformPct(ctx.Rng, ctx.Cfg.CrashMultMin, ctx.Cfg.CrashMultMax)
	loss := -shockHeldClass(ctx, class, mult)
	return EventReport{
		Key: e.Key(), Category: CategoryLoss,
		Message: fmt.Sprintf("%s markets crashed! Your holdings lost $%d on paper", class, loss),
	}
}
