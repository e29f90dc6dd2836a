package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tycoon/config"
	"github.com/rustyeddy/tycoon/market"
)

// newTestEngine builds a seeded engine on the named difficulty with
// journaling off.
func newTestEngine(t *testing.T, difficulty string, seed int64) *Engine {
	t.Helper()

	cfg := config.Default()
	cfg.Journal.Type = "none"

	e, err := New(cfg, market.Builtin(), difficulty, WithSeed(seed))
	require.NoError(t, err)
	return e
}

// setGoodsPrice pins a quote so trades are deterministic.
func setGoodsPrice(e *Engine, name string, price int64) {
	if e.state.GoodsPrices == nil {
		e.state.GoodsPrices = map[string]int64{}
	}
	e.state.GoodsPrices[name] = price
}

// setAssetPrice pins a running asset price.
func setAssetPrice(e *Engine, symbol string, price int64) {
	if e.state.AssetPrices == nil {
		e.state.AssetPrices = map[string]int64{}
	}
	e.state.AssetPrices[symbol] = price
}

// setCash overwrites the wallet balance.
func setCash(e *Engine, amount int64) {
	e.state.Wallet.Cash = amount
}

// newQuietEngine builds an engine with every travel event disabled, so
// travel outcomes are fully deterministic.
func newQuietEngine(t *testing.T, difficulty string, seed int64) *Engine {
	t.Helper()

	cfg := config.Default()
	cfg.Journal.Type = "none"
	cfg.Events.Weights = map[string]float64{}
	for _, h := range defaultHandlers() {
		cfg.Events.Weights[h.Key()] = 0
	}

	e, err := New(cfg, market.Builtin(), difficulty, WithSeed(seed))
	require.NoError(t, err)
	return e
}
