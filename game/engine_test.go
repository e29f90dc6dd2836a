package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tycoon/config"
	"github.com/rustyeddy/tycoon/journal"
	"github.com/rustyeddy/tycoon/market"
)

func TestNewGameStartsFromDifficulty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		difficulty string
		cash       int64
		capacity   int64
	}{
		{difficulty: "playground", cash: 1_000_000, capacity: 1000},
		{difficulty: "normal", cash: 50_000, capacity: 50},
		{difficulty: "insane", cash: 0, capacity: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.difficulty, func(t *testing.T) {
			t.Parallel()

			e := newTestEngine(t, tt.difficulty, 80)
			st := e.State()

			assert.Equal(t, 1, st.Day)
			assert.Equal(t, "2025-01-01", st.Date)
			assert.Equal(t, 0, st.CityIndex)
			assert.Equal(t, tt.cash, st.Wallet.Balance())
			assert.Equal(t, tt.capacity, st.MaxSlots)

			// Day 1 has full quote sheets to trade against.
			assert.Len(t, st.GoodsPrices, len(e.tables.Goods))
			assert.Len(t, st.AssetPrices, len(e.tables.Assets))
			assert.Positive(t, st.Bank.APR)
			assert.Positive(t, st.LoanOfferAPR)
		})
	}
}

func TestNewGameUnknownDifficulty(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	_, err := New(cfg, market.Builtin(), "nightmare")
	assert.ErrorContains(t, err, "nightmare")
}

func TestTravelValidation(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, "normal", 81)

	res := e.TravelTo("Atlantis")
	assert.False(t, res.OK)
	assert.ErrorIs(t, res.Err, ErrValidation)

	res = e.TravelTo("Warsaw") // starting city
	assert.False(t, res.OK)
	assert.ErrorIs(t, res.Err, ErrValidation)
}

func TestTravelFeeScalesWithCargo(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, "normal", 82)

	// Empty hold: just the base fee.
	assert.Equal(t, int64(100), e.TravelFee())

	setCash(e, 100_000)
	setGoodsPrice(e, "TV", 800)
	require.True(t, e.BuyGoods("TV", 10).OK)
	assert.Equal(t, int64(110), e.TravelFee())
}

func TestTravelAdvancesOneDay(t *testing.T) {
	t.Parallel()

	e := newQuietEngine(t, "normal", 83)
	setCash(e, 50_000)

	res := e.TravelTo("Berlin")
	require.True(t, res.OK, res.Message)

	st := e.State()
	assert.Equal(t, 2, st.Day)
	assert.Equal(t, "2025-01-02", st.Date)
	assert.Equal(t, "Berlin", e.tables.Cities[st.CityIndex].Name)
	assert.Equal(t, int64(100), res.Fee)
	assert.Equal(t, int64(49_900), st.Wallet.Balance())

	// Previous quotes survive for trend display.
	assert.Len(t, st.PrevGoodsPrices, len(e.tables.Goods))
	assert.Len(t, st.PrevAssetPrices, len(e.tables.Assets))
}

func TestTravelRunsDailyAccounting(t *testing.T) {
	t.Parallel()

	e := newQuietEngine(t, "normal", 84)
	setCash(e, 50_000)
	// Travel redraws the savings APR before accruing, so pin the band
	// rather than the current rate.
	e.cfg.Bank.BankAPRMin = 0.02
	e.cfg.Bank.BankAPRMax = 0.02
	e.state.Bank.Balance = 1_000_000
	e.state.Bank.LastInterestDay = 1
	e.state.Loans = []*Loan{{ID: "LN1", Principal: 10_000, Remaining: 10_000, APR: 0.365}}
	e.state.InvestLots = []*InvestmentLot{{ID: "I1", Symbol: "BTC", Quantity: 1, PurchaseDay: 1, DaysHeld: 4}}

	res := e.TravelTo("Prague")
	require.True(t, res.OK, res.Message)

	// Loan interest: +10. Savings interest: 1,000,000 x 0.02/365 = +54
	// whole dollars, fraction carried. Lot aged.
	assert.Equal(t, 0.02, e.state.Bank.APR)
	assert.Equal(t, int64(10_010), e.state.Loans[0].Remaining)
	assert.Equal(t, int64(1_000_054), e.state.Bank.Balance)
	assert.Equal(t, 5, e.state.InvestLots[0].DaysHeld)
	assert.Equal(t, 2, e.state.Bank.LastInterestDay)
}

func TestTravelUnaffordableFee(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, "insane", 85) // starts with $0
	res := e.TravelTo("Berlin")
	assert.False(t, res.OK)
	assert.ErrorIs(t, res.Err, ErrInsufficientFunds)
	assert.Equal(t, 1, e.state.Day)
}

func TestNetWorth(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, "normal", 86)
	setCash(e, 10_000)
	e.state.Bank.Balance = 5_000
	e.state.GoodsLots = []*PurchaseLot{{ID: "L1", GoodName: "TV", Quantity: 3, UnitCost: 700}}
	e.state.InvestLots = []*InvestmentLot{{ID: "I1", Symbol: "GOOGL", Quantity: 10, UnitCost: 120}}
	e.state.Loans = []*Loan{{ID: "LN1", Remaining: 2_000}}
	setGoodsPrice(e, "TV", 900)
	setAssetPrice(e, "GOOGL", 150)

	// 10,000 + 5,000 + 3*900 + 10*150 - 2,000.
	assert.Equal(t, int64(17_200), e.NetWorth())
}

func TestRestoreRejectsBadCityIndex(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	state := &State{CityIndex: 99}
	_, err := Restore(cfg, market.Builtin(), state)
	assert.ErrorContains(t, err, "city index")
}

func TestRestoreKeepsState(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, "normal", 87)
	setCash(e, 12_345)
	e.state.Day = 7
	e.state.CityIndex = 3

	restored, err := Restore(e.cfg, e.tables, e.state)
	require.NoError(t, err)
	assert.Equal(t, int64(12_345), restored.State().Wallet.Balance())
	assert.Equal(t, 7, restored.State().Day)
	assert.Same(t, e.state, restored.State())
}

// recordingJournal captures everything the engine forwards.
type recordingJournal struct {
	trades   []journal.TradeRecord
	events   []journal.EventRecord
	networth []journal.NetWorthSnapshot
}

func (r *recordingJournal) RecordTrade(t journal.TradeRecord) error {
	r.trades = append(r.trades, t)
	return nil
}

func (r *recordingJournal) RecordEvent(e journal.EventRecord) error {
	r.events = append(r.events, e)
	return nil
}

func (r *recordingJournal) RecordNetWorth(s journal.NetWorthSnapshot) error {
	r.networth = append(r.networth, s)
	return nil
}

func (r *recordingJournal) Close() error { return nil }

func TestEngineJournalsTradesAndTravel(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Journal.Type = "none"
	rec := &recordingJournal{}

	e, err := New(cfg, market.Builtin(), "normal", WithSeed(88), WithJournal(rec))
	require.NoError(t, err)

	setCash(e, 50_000)
	setGoodsPrice(e, "TV", 800)
	require.True(t, e.BuyGoods("TV", 10).OK)
	setGoodsPrice(e, "TV", 1_000)
	require.True(t, e.SellGoods("TV", 4).OK)

	require.Len(t, rec.trades, 2)
	assert.Equal(t, "buy", rec.trades[0].Side)
	assert.Equal(t, "sell", rec.trades[1].Side)
	assert.Equal(t, int64(800), rec.trades[0].UnitPrice)
	assert.Equal(t, int64(4*1_000-4*800), rec.trades[1].RealizedPL)

	require.True(t, e.TravelTo("Paris").OK)
	require.Len(t, rec.networth, 1)
	assert.Equal(t, 2, rec.networth[0].Day)
}
