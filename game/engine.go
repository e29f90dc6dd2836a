package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rustyeddy/tycoon/config"
	"github.com/rustyeddy/tycoon/journal"
	"github.com/rustyeddy/tycoon/market"
)

// Engine owns one game and exposes every player action. It wires the
// services around a shared State, runs the travel sequence and feeds
// the journal. The engine is not safe for concurrent use; it is built
// for one interactive session.
type Engine struct {
	cfg    *config.Config
	tables *market.Tables
	rng    *rand.Rand

	state  *State
	clock  *Clock
	cargo  *CargoService
	goods  *GoodsService
	invest *InvestService
	bank   *BankService
	events *Registry

	journal journal.Journal
}

// Option tweaks engine construction.
type Option func(*Engine)

// WithSeed fixes the random source, for reproducible runs.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithJournal sets the journaling backend. Defaults to a no-op.
func WithJournal(j journal.Journal) Option {
	return func(e *Engine) { e.journal = j }
}

// New creates a fresh game on the named difficulty preset, starting in
// the first city of the content tables.
func New(cfg *config.Config, tables *market.Tables, difficulty string, opts ...Option) (*Engine, error) {
	diff, ok := tables.DifficultyByName(difficulty)
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q", difficulty)
	}

	state := &State{
		Difficulty: diff,
		Day:        1,
		Date:       cfg.Game.StartDate,
		CityIndex:  0,
		Wallet:     Wallet{Cash: diff.StartCash},
		MaxSlots:   diff.StartCapacity,
	}

	e := build(cfg, tables, state, opts...)

	// Seed the markets so day 1 has quotes to trade against.
	e.bank.RandomizeRates()
	e.invest.SeedPrices()
	e.invest.GeneratePrices()
	e.goods.GeneratePrices(e.currentCity())
	return e, nil
}

// Restore rebuilds an engine around a previously saved state.
func Restore(cfg *config.Config, tables *market.Tables, state *State, opts ...Option) (*Engine, error) {
	if state.CityIndex < 0 || state.CityIndex >= len(tables.Cities) {
		return nil, fmt.Errorf("saved city index %d out of range", state.CityIndex)
	}
	return build(cfg, tables, state, opts...), nil
}

func build(cfg *config.Config, tables *market.Tables, state *State, opts ...Option) *Engine {
	e := &Engine{
		cfg:     cfg,
		tables:  tables,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		state:   state,
		journal: journal.Noop{},
	}
	for _, opt := range opts {
		opt(e)
	}

	e.clock = NewClock(state)
	e.cargo = NewCargoService(state, tables, &cfg.Cargo)
	e.goods = NewGoodsService(state, tables, &cfg.Pricing, e.cargo, e.rng)
	e.invest = NewInvestService(state, tables, &cfg.Invest, &cfg.Pricing, e.rng)
	e.bank = NewBankService(state, tables, &cfg.Bank, e.rng)
	e.events = NewRegistry(&cfg.Events)
	return e
}

// State exposes the game state for display and persistence.
func (e *Engine) State() *State { return e.state }

// Cargo exposes the cargo service for display.
func (e *Engine) Cargo() *CargoService { return e.cargo }

// Bank exposes the bank service for display.
func (e *Engine) Bank() *BankService { return e.bank }

func (e *Engine) currentCity() market.City {
	return e.tables.Cities[e.state.CityIndex]
}

// TravelFee is the cost of any journey from here: a flat base plus a
// per-occupied-slot charge.
func (e *Engine) TravelFee() int64 {
	return e.cfg.Travel.BaseFee + e.cfg.Travel.FeePerCargoUnit*e.cargo.UsedSlots()
}

// TravelTo moves to the named city and advances the day. The fixed
// sequence is: pay the fee, advance the clock, redraw rates, accrue
// loan then savings interest, age investment lots, pay dividends,
// re-roll both markets, run arrival events, and fold any event price
// modifiers into today's goods sheet.
func (e *Engine) TravelTo(cityName string) TravelResult {
	idx := e.tables.CityIndex(cityName)
	if idx < 0 {
		return TravelResult{Result: failure(ErrValidation, "Unknown city: %s", cityName)}
	}
	if idx == e.state.CityIndex {
		return TravelResult{Result: failure(ErrValidation, "Already in %s", cityName)}
	}

	fee := e.TravelFee()
	if !e.state.Wallet.Spend(fee) {
		return TravelResult{
			Result: failure(ErrInsufficientFunds,
				"Not enough cash for the journey! Need $%d, have $%d", fee, e.state.Wallet.Balance()),
			Fee: fee,
		}
	}

	e.state.CityIndex = idx
	city := e.currentCity()

	e.clock.Advance()
	e.bank.RandomizeRates()
	e.bank.AccrueLoanInterest()
	e.bank.AccrueInterest()
	e.invest.IncrementHoldingDays()
	dividends := e.invest.PayDividends()

	e.goods.GeneratePrices(city)
	e.invest.GeneratePrices()

	tradesBefore := len(e.state.History)
	reports := e.events.Run(&EventContext{
		State:  e.state,
		Tables: e.tables,
		Cfg:    &e.cfg.Events,
		Goods:  e.goods,
		Bank:   e.bank,
		Rng:    e.rng,
		City:   city,
	})

	// Neutral events distort today's market; fold the modifiers into
	// the sheet so only the affected goods move.
	e.goods.ApplyModifiers()

	e.journalTrades(tradesBefore)
	for _, rep := range reports {
		_ = e.journal.RecordEvent(journal.EventRecord{
			Day:      e.state.Day,
			Date:     e.state.Date,
			City:     city.Name,
			Key:      rep.Key,
			Category: string(rep.Category),
			Message:  rep.Message,
		})
	}
	e.recordNetWorth()

	return TravelResult{
		Result:    success("Arrived in %s, %s (day %d, -$%d travel fee)", city.Name, city.Country, e.state.Day, fee),
		Fee:       fee,
		Events:    reports,
		Dividends: dividends,
	}
}

// BuyGoods purchases goods at the current city's quote.
func (e *Engine) BuyGoods(name string, qty int64) Result {
	return e.journaled(func() Result { return e.goods.Buy(name, qty) })
}

// SellGoods sells goods at the current city's quote.
func (e *Engine) SellGoods(name string, qty int64) Result {
	return e.journaled(func() Result { return e.goods.Sell(name, qty) })
}

// GrantGoods adds goods at zero cost.
func (e *Engine) GrantGoods(name string, qty int64) Result {
	return e.journaled(func() Result { return e.goods.Grant(name, qty) })
}

// GiftGoods removes goods without compensation.
func (e *Engine) GiftGoods(name string, qty int64) Result {
	return e.journaled(func() Result { return e.goods.Gift(name, qty) })
}

// BuyAsset purchases an asset at its running price.
func (e *Engine) BuyAsset(symbol string, qty int64) Result {
	return e.journaled(func() Result { return e.invest.Buy(symbol, qty) })
}

// SellAsset sells an asset at its running price.
func (e *Engine) SellAsset(symbol string, qty int64) Result {
	return e.journaled(func() Result { return e.invest.Sell(symbol, qty) })
}

// GrantAsset adds asset units at zero cost.
func (e *Engine) GrantAsset(symbol string, qty int64) Result {
	return e.journaled(func() Result { return e.invest.Grant(symbol, qty) })
}

// GiftAsset removes asset units without compensation.
func (e *Engine) GiftAsset(symbol string, qty int64) Result {
	return e.journaled(func() Result { return e.invest.Gift(symbol, qty) })
}

// Deposit moves cash into the bank.
func (e *Engine) Deposit(amount int64) Result { return e.bank.Deposit(amount) }

// Withdraw moves bank balance into cash.
func (e *Engine) Withdraw(amount int64) Result { return e.bank.Withdraw(amount) }

// TakeLoan originates a loan at today's offer rate.
func (e *Engine) TakeLoan(amount int64) LoanResult { return e.bank.TakeLoan(amount) }

// RepayLoan pays down a loan, clamped to its remaining balance.
func (e *Engine) RepayLoan(loanID string, amount int64) Result {
	return e.bank.RepayLoan(loanID, amount)
}

// ExtendCargo buys the next cargo capacity bundle.
func (e *Engine) ExtendCargo() ExtendResult { return e.cargo.Extend() }

// GoodsQuote returns the current city's price for a good.
func (e *Engine) GoodsQuote(name string) (int64, bool) { return e.goods.Quote(name) }

// AssetQuote returns the running price for an asset.
func (e *Engine) AssetQuote(symbol string) (int64, bool) { return e.invest.Quote(symbol) }

// GoodsValue is the mark-to-market value of the cargo hold. Goods
// without a quote in the current city fall back to their cost basis.
func (e *Engine) GoodsValue() int64 {
	var total int64
	for _, lot := range e.state.GoodsLots {
		if price, ok := e.state.GoodsPrices[lot.GoodName]; ok {
			total += lot.Quantity * price
		} else {
			total += lot.Quantity * lot.UnitCost
		}
	}
	return total
}

// AssetValue is the mark-to-market value of the portfolio.
func (e *Engine) AssetValue() int64 {
	var total int64
	for _, lot := range e.state.InvestLots {
		if price, ok := e.state.AssetPrices[lot.Symbol]; ok {
			total += lot.Quantity * price
		} else {
			total += lot.Quantity * lot.UnitCost
		}
	}
	return total
}

// NetWorth is cash plus bank plus marked inventory and portfolio,
// minus outstanding debt.
func (e *Engine) NetWorth() int64 {
	return e.state.Wallet.Balance() + e.state.Bank.Balance +
		e.GoodsValue() + e.AssetValue() - e.state.TotalDebt()
}

// journaled runs op and forwards any transactions it appended to the
// journal. Journal failures never fail the action.
func (e *Engine) journaled(op func() Result) Result {
	before := len(e.state.History)
	res := op()
	e.journalTrades(before)
	return res
}

func (e *Engine) journalTrades(from int) {
	for _, tx := range e.state.History[from:] {
		_ = e.journal.RecordTrade(journal.TradeRecord{
			TradeID:    tx.ID,
			Day:        tx.Day,
			Date:       e.state.Date,
			City:       tx.City,
			Kind:       string(tx.Kind),
			Side:       string(tx.Side),
			Item:       tx.Item,
			Quantity:   tx.Quantity,
			UnitPrice:  tx.UnitPrice,
			Total:      tx.Total,
			RealizedPL: tx.RealizedPL,
		})
	}
}

func (e *Engine) recordNetWorth() {
	_ = e.journal.RecordNetWorth(journal.NetWorthSnapshot{
		Day:        e.state.Day,
		Date:       e.state.Date,
		Cash:       e.state.Wallet.Balance(),
		Bank:       e.state.Bank.Balance,
		Debt:       e.state.TotalDebt(),
		GoodsValue: e.GoodsValue(),
		AssetValue: e.AssetValue(),
		NetWorth:   e.NetWorth(),
	})
}
