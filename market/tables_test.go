package market

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinTablesValid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Builtin().Validate())
}

func TestValidateRejectsBrokenTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Tables)
		want   string
	}{
		{name: "no goods", mutate: func(tb *Tables) { tb.Goods = nil }, want: "at least one good"},
		{name: "one city", mutate: func(tb *Tables) { tb.Cities = tb.Cities[:1] }, want: "two cities"},
		{name: "no difficulties", mutate: func(tb *Tables) { tb.Difficulties = nil }, want: "difficulty"},
		{
			name: "duplicate good",
			mutate: func(tb *Tables) {
				tb.Goods = append([]Good{}, tb.Goods...)
				tb.Goods = append(tb.Goods, tb.Goods[0])
			},
			want: "duplicate good",
		},
		{
			name: "zero base price",
			mutate: func(tb *Tables) {
				goods := append([]Good{}, tb.Goods...)
				goods[0].BasePrice = 0
				tb.Goods = goods
			},
			want: "base_price",
		},
		{
			name: "zero cargo size",
			mutate: func(tb *Tables) {
				goods := append([]Good{}, tb.Goods...)
				goods[0].CargoSize = 0
				tb.Goods = goods
			},
			want: "cargo_size",
		},
		{
			name: "unknown asset class",
			mutate: func(tb *Tables) {
				assets := append([]Asset{}, tb.Assets...)
				assets[0].Class = "bond"
				tb.Assets = assets
			},
			want: "unknown class",
		},
		{
			name: "multiplier for unknown good",
			mutate: func(tb *Tables) {
				cities := append([]City{}, tb.Cities...)
				cities[0].Multipliers = map[string]float64{"Unobtainium": 2}
				tb.Cities = cities
			},
			want: "unknown good",
		},
		{
			name: "event probability above one",
			mutate: func(tb *Tables) {
				cities := append([]City{}, tb.Cities...)
				cities[0].Events.Probability = 1.5
				tb.Cities = cities
			},
			want: "probability",
		},
		{
			name: "inverted event bounds",
			mutate: func(tb *Tables) {
				cities := append([]City{}, tb.Cities...)
				cities[0].Events.LossMin = 3
				cities[0].Events.LossMax = 1
				tb.Cities = cities
			},
			want: "event bounds",
		},
		{
			name: "zero start capacity",
			mutate: func(tb *Tables) {
				diffs := append([]Difficulty{}, tb.Difficulties...)
				diffs[0].StartCapacity = 0
				tb.Difficulties = diffs
			},
			want: "start_capacity",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tb := Builtin()
			tt.mutate(tb)
			err := tb.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFromFilePartialPack(t *testing.T) {
	t.Parallel()

	// A pack overriding only the goods inherits everything else from
	// the built-in tables.
	path := filepath.Join(t.TempDir(), "pack.yaml")
	data := []byte(`
goods:
  - name: Spice
    base_price: 5000
    price_variance: 0.6
    tier: contraband
    category: drugs
    cargo_size: 1
cities:
  - name: Arrakeen
    country: Arrakis
    multipliers:
      Spice: 0.5
  - name: Carthag
    country: Arrakis
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	tb, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Len(t, tb.Goods, 1)
	assert.Len(t, tb.Cities, 2)
	assert.Equal(t, Builtin().Assets, tb.Assets)
	assert.Equal(t, Builtin().Difficulties, tb.Difficulties)

	city, ok := tb.CityByName("Arrakeen")
	require.True(t, ok)
	assert.Equal(t, 0.5, city.Multiplier("Spice"))
	assert.Equal(t, 1.0, city.Multiplier("Unlisted"))
}

func TestLoadFromFileRejectsInvalidPack(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pack.yaml")
	data := []byte(`
goods:
  - name: Spice
    base_price: 0
    cargo_size: 1
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	_, err := LoadFromFile(path)
	assert.ErrorContains(t, err, "base_price")
}

func TestLookups(t *testing.T) {
	t.Parallel()

	tb := Builtin()

	good, ok := tb.GoodByName("Ferrari")
	require.True(t, ok)
	assert.Equal(t, int64(8), good.CargoSize)
	_, ok = tb.GoodByName("Submarine")
	assert.False(t, ok)

	asset, ok := tb.AssetBySymbol("BTC")
	require.True(t, ok)
	assert.Equal(t, ClassCrypto, asset.Class)

	assert.Equal(t, 0, tb.CityIndex("Warsaw"))
	assert.Equal(t, -1, tb.CityIndex("Atlantis"))

	diff, ok := tb.DifficultyByName("insane")
	require.True(t, ok)
	assert.Equal(t, int64(0), diff.StartCash)

	stocks := tb.AssetsByClass(ClassStock)
	assert.Len(t, stocks, 4)
}
