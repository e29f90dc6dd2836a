package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Default().Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "zero min price", mutate: func(c *Config) { c.Pricing.MinUnitPrice = 0 }, want: "min_unit_price"},
		{name: "zero history window", mutate: func(c *Config) { c.Pricing.HistoryWindow = 0 }, want: "history_window"},
		{name: "zero extend cost", mutate: func(c *Config) { c.Cargo.ExtendBaseCost = 0 }, want: "extend_base_cost"},
		{name: "bad pricing mode", mutate: func(c *Config) { c.Cargo.PricingMode = "quadratic" }, want: "pricing_mode"},
		{name: "inverted bank APR band", mutate: func(c *Config) { c.Bank.BankAPRMax = 0.001 }, want: "APR"},
		{name: "inverted loan APR band", mutate: func(c *Config) { c.Bank.LoanAPRMax = 0.001 }, want: "APR"},
		{name: "haircut above one", mutate: func(c *Config) { c.Bank.HaircutCrypto = 1.5 }, want: "haircut"},
		{name: "negative mean reversion", mutate: func(c *Config) { c.Invest.MeanReversion = -0.1 }, want: "mean_reversion"},
		{name: "negative travel fee", mutate: func(c *Config) { c.Travel.BaseFee = -1 }, want: "travel"},
		{name: "unknown journal type", mutate: func(c *Config) { c.Journal.Type = "parquet" }, want: "journal.type"},
		{name: "sqlite without path", mutate: func(c *Config) { c.Journal.DBPath = "" }, want: "db_path"},
		{
			name: "csv without files",
			mutate: func(c *Config) {
				c.Journal.Type = "csv"
				c.Journal.TradesFile = ""
			},
			want: "trades_file",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := []byte(`
game:
  start_date: "2030-06-15"
  default_difficulty: hard
bank:
  per_loan_max: 123456
journal:
  type: none
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	// Overrides land; everything else keeps its default.
	assert.Equal(t, "2030-06-15", cfg.Game.StartDate)
	assert.Equal(t, "hard", cfg.Game.DefaultDifficulty)
	assert.Equal(t, int64(123456), cfg.Bank.PerLoanMax)
	assert.Equal(t, "none", cfg.Journal.Type)
	assert.Equal(t, int64(10_000), cfg.Cargo.ExtendBaseCost)
}

func TestLoadFromFileJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cfg.json")
	data := []byte(`{"game": {"start_date": "2031-01-01", "default_difficulty": "easy"}}`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "easy", cfg.Game.DefaultDifficulty)
}

func TestLoadFromFileInvalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pricing:\n  min_unit_price: 0\n"), 0644))

	_, err := LoadFromFile(path)
	assert.ErrorContains(t, err, "min_unit_price")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Default()
	cfg.Game.DefaultDifficulty = "insane"
	cfg.Events.Weights = map[string]float64{"robbery": 2.5}

	for _, name := range []string{"cfg.yaml", "cfg.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, cfg.SaveToFile(path))

		got, err := LoadFromFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, cfg, got, name)
	}
}
