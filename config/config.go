package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the complete engine configuration: one strongly-typed
// section per subsystem, constructed once at startup and passed by
// reference into the relevant service.
type Config struct {
	Game    GameConfig    `json:"game" yaml:"game"`
	Pricing PricingConfig `json:"pricing" yaml:"pricing"`
	Cargo   CargoConfig   `json:"cargo" yaml:"cargo"`
	Bank    BankConfig    `json:"bank" yaml:"bank"`
	Invest  InvestConfig  `json:"invest" yaml:"invest"`
	Travel  TravelConfig  `json:"travel" yaml:"travel"`
	Events  EventsConfig  `json:"events" yaml:"events"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
}

// GameConfig contains whole-game parameters.
type GameConfig struct {
	// Calendar date of day 1, ISO format.
	StartDate string `json:"start_date" yaml:"start_date"`
	// Difficulty preset used when none is given explicitly.
	DefaultDifficulty string `json:"default_difficulty" yaml:"default_difficulty"`
}

// PricingConfig contains cross-cutting price generation parameters.
type PricingConfig struct {
	// Floor applied to every generated price.
	MinUnitPrice int64 `json:"min_unit_price" yaml:"min_unit_price"`
	// Rolling price-history window per item, entries.
	HistoryWindow int `json:"history_window" yaml:"history_window"`
}

// CargoPricingMode selects the capacity-extension cost curve.
type CargoPricingMode string

const (
	CargoPricingLinear      CargoPricingMode = "linear"
	CargoPricingExponential CargoPricingMode = "exponential"
)

// CargoConfig contains cargo capacity parameters.
type CargoConfig struct {
	ExtendBaseCost int64            `json:"extend_base_cost" yaml:"extend_base_cost"`
	ExtendStep     int64            `json:"extend_step" yaml:"extend_step"`
	PricingMode    CargoPricingMode `json:"pricing_mode" yaml:"pricing_mode"`
	// Exponential: multiplier per bundle. Linear: increment is
	// base_cost * factor per bundle.
	CostFactor float64 `json:"cost_factor" yaml:"cost_factor"`
}

// BankConfig contains deposit, loan and credit-capacity parameters.
type BankConfig struct {
	// Daily-offer APR range for the savings balance.
	BankAPRMin float64 `json:"bank_apr_min" yaml:"bank_apr_min"`
	BankAPRMax float64 `json:"bank_apr_max" yaml:"bank_apr_max"`
	// Daily-offer APR range for NEW loans. Existing loans keep theirs.
	LoanAPRMin float64 `json:"loan_apr_min" yaml:"loan_apr_min"`
	LoanAPRMax float64 `json:"loan_apr_max" yaml:"loan_apr_max"`

	// Origination commission added to the opening balance.
	LoanCommissionRate     float64 `json:"loan_commission_rate" yaml:"loan_commission_rate"`
	LoanHighCommissionRate float64 `json:"loan_high_commission_rate" yaml:"loan_high_commission_rate"`
	// Active-loan count at which the high commission applies.
	LoanHighCommissionThreshold int `json:"loan_high_commission_threshold" yaml:"loan_high_commission_threshold"`
	// Flat per-loan principal cap, 0 = no cap.
	PerLoanMax int64 `json:"per_loan_max" yaml:"per_loan_max"`

	// Credit capacity: debt cap = wealth * leverage + base allowance.
	CreditEnabled    bool    `json:"credit_enabled" yaml:"credit_enabled"`
	LeverageFactor   float64 `json:"leverage_factor" yaml:"leverage_factor"`
	BaseAllowance    int64   `json:"base_allowance" yaml:"base_allowance"`
	HaircutCash      float64 `json:"haircut_cash" yaml:"haircut_cash"`
	HaircutStock     float64 `json:"haircut_stock" yaml:"haircut_stock"`
	HaircutCommodity float64 `json:"haircut_commodity" yaml:"haircut_commodity"`
	HaircutCrypto    float64 `json:"haircut_crypto" yaml:"haircut_crypto"`
}

// InvestConfig contains investment trading and dividend parameters.
type InvestConfig struct {
	// Global multiplier on per-asset drift bands.
	VarianceScale float64 `json:"variance_scale" yaml:"variance_scale"`
	// Pull of the running price back toward base per travel, 0 = off.
	MeanReversion float64 `json:"mean_reversion" yaml:"mean_reversion"`
	// Dividend payout cadence in days, 0 disables dividends.
	DividendIntervalDays int `json:"dividend_interval_days" yaml:"dividend_interval_days"`
	// Minimum days a lot must be held before it earns dividends.
	DividendMinHoldingDays int `json:"dividend_min_holding_days" yaml:"dividend_min_holding_days"`
}

// TravelConfig contains travel fee parameters.
type TravelConfig struct {
	BaseFee         int64 `json:"base_fee" yaml:"base_fee"`
	FeePerCargoUnit int64 `json:"fee_per_cargo_unit" yaml:"fee_per_cargo_unit"`
}

// EventsConfig contains travel-event tuning: selection weights by event
// key plus per-event effect ranges.
type EventsConfig struct {
	// Selection weight per event key; omitted keys use handler defaults,
	// an explicit 0 disables the event.
	Weights map[string]float64 `json:"weights,omitempty" yaml:"weights,omitempty"`

	RobberyLossPctMin float64 `json:"robbery_loss_pct_min" yaml:"robbery_loss_pct_min"`
	RobberyLossPctMax float64 `json:"robbery_loss_pct_max" yaml:"robbery_loss_pct_max"`

	FireTotalPctMin float64 `json:"fire_total_pct_min" yaml:"fire_total_pct_min"`
	FireTotalPctMax float64 `json:"fire_total_pct_max" yaml:"fire_total_pct_max"`

	CustomsDutyPctMin float64 `json:"customs_duty_pct_min" yaml:"customs_duty_pct_min"`
	CustomsDutyPctMax float64 `json:"customs_duty_pct_max" yaml:"customs_duty_pct_max"`

	CashDamagePctMin float64 `json:"cash_damage_pct_min" yaml:"cash_damage_pct_min"`
	CashDamagePctMax float64 `json:"cash_damage_pct_max" yaml:"cash_damage_pct_max"`
	CashDamageMin    int64   `json:"cash_damage_min" yaml:"cash_damage_min"`
	CashDamageMax    int64   `json:"cash_damage_max" yaml:"cash_damage_max"`

	CrashMultMin float64 `json:"crash_mult_min" yaml:"crash_mult_min"`
	CrashMultMax float64 `json:"crash_mult_max" yaml:"crash_mult_max"`
	BoomMultMin  float64 `json:"boom_mult_min" yaml:"boom_mult_min"`
	BoomMultMax  float64 `json:"boom_mult_max" yaml:"boom_mult_max"`

	BonusDividendPctMin float64 `json:"bonus_dividend_pct_min" yaml:"bonus_dividend_pct_min"`
	BonusDividendPctMax float64 `json:"bonus_dividend_pct_max" yaml:"bonus_dividend_pct_max"`

	BankCorrectionPctMin float64 `json:"bank_correction_pct_min" yaml:"bank_correction_pct_min"`
	BankCorrectionPctMax float64 `json:"bank_correction_pct_max" yaml:"bank_correction_pct_max"`
	BankCorrectionMin    int64   `json:"bank_correction_min" yaml:"bank_correction_min"`

	ContestPrizes []int64 `json:"contest_prizes,omitempty" yaml:"contest_prizes,omitempty"`

	PromoMultMin      float64 `json:"promo_mult_min" yaml:"promo_mult_min"`
	PromoMultMax      float64 `json:"promo_mult_max" yaml:"promo_mult_max"`
	OversupplyMultMin float64 `json:"oversupply_mult_min" yaml:"oversupply_mult_min"`
	OversupplyMultMax float64 `json:"oversupply_mult_max" yaml:"oversupply_mult_max"`
	ShortageMultMin   float64 `json:"shortage_mult_min" yaml:"shortage_mult_min"`
	ShortageMultMax   float64 `json:"shortage_mult_max" yaml:"shortage_mult_max"`
	LoyalDiscountMult float64 `json:"loyal_discount_mult" yaml:"loyal_discount_mult"`
}

// JournalConfig selects the journaling backend.
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "sqlite", "csv" or "none"
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	EventsFile string `json:"events_file,omitempty" yaml:"events_file,omitempty"`
	// Optional for the csv backend; when empty, net-worth snapshots
	// are not written.
	NetWorthFile string `json:"net_worth_file,omitempty" yaml:"net_worth_file,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile saves configuration to a file (format chosen by extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Pricing.MinUnitPrice < 1 {
		return fmt.Errorf("pricing.min_unit_price must be at least 1")
	}
	if c.Pricing.HistoryWindow < 1 {
		return fmt.Errorf("pricing.history_window must be positive")
	}
	if c.Cargo.ExtendBaseCost <= 0 {
		return fmt.Errorf("cargo.extend_base_cost must be positive")
	}
	if c.Cargo.ExtendStep <= 0 {
		return fmt.Errorf("cargo.extend_step must be positive")
	}
	if c.Cargo.PricingMode != CargoPricingLinear && c.Cargo.PricingMode != CargoPricingExponential {
		return fmt.Errorf("cargo.pricing_mode must be 'linear' or 'exponential'")
	}
	if c.Cargo.CostFactor <= 0 {
		return fmt.Errorf("cargo.cost_factor must be positive")
	}
	if c.Bank.BankAPRMin < 0 || c.Bank.BankAPRMax < c.Bank.BankAPRMin {
		return fmt.Errorf("bank APR range is malformed")
	}
	if c.Bank.LoanAPRMin < 0 || c.Bank.LoanAPRMax < c.Bank.LoanAPRMin {
		return fmt.Errorf("loan APR range is malformed")
	}
	if c.Bank.LeverageFactor < 0 {
		return fmt.Errorf("bank.leverage_factor must not be negative")
	}
	for name, h := range map[string]float64{
		"haircut_cash":      c.Bank.HaircutCash,
		"haircut_stock":     c.Bank.HaircutStock,
		"haircut_commodity": c.Bank.HaircutCommodity,
		"haircut_crypto":    c.Bank.HaircutCrypto,
	} {
		if h < 0 || h > 1 {
			return fmt.Errorf("bank.%s must be in [0,1]", name)
		}
	}
	if c.Invest.VarianceScale <= 0 {
		return fmt.Errorf("invest.variance_scale must be positive")
	}
	if c.Invest.MeanReversion < 0 || c.Invest.MeanReversion > 1 {
		return fmt.Errorf("invest.mean_reversion must be in [0,1]")
	}
	if c.Invest.DividendIntervalDays < 0 {
		return fmt.Errorf("invest.dividend_interval_days must not be negative")
	}
	if c.Travel.BaseFee < 0 || c.Travel.FeePerCargoUnit < 0 {
		return fmt.Errorf("travel fees must not be negative")
	}
	switch c.Journal.Type {
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for sqlite type")
		}
	case "csv":
		if c.Journal.TradesFile == "" || c.Journal.EventsFile == "" {
			return fmt.Errorf("journal trades_file and events_file required for csv type")
		}
	case "none":
	default:
		return fmt.Errorf("journal.type must be 'sqlite', 'csv' or 'none'")
	}
	return nil
}

// Default returns a configuration with the standard game balance.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			StartDate:         "2025-01-01",
			DefaultDifficulty: "normal",
		},
		Pricing: PricingConfig{
			MinUnitPrice:  1,
			HistoryWindow: 10,
		},
		Cargo: CargoConfig{
			ExtendBaseCost: 10000,
			ExtendStep:     10,
			PricingMode:    CargoPricingLinear,
			CostFactor:     2,
		},
		Bank: BankConfig{
			BankAPRMin:                  0.01,
			BankAPRMax:                  0.03,
			LoanAPRMin:                  0.01,
			LoanAPRMax:                  0.20,
			LoanCommissionRate:          0.10,
			LoanHighCommissionRate:      0.30,
			LoanHighCommissionThreshold: 10,
			PerLoanMax:                  500_000,
			CreditEnabled:               true,
			LeverageFactor:              0.8,
			BaseAllowance:               1000,
			HaircutCash:                 0.1,
			HaircutStock:                0.5,
			HaircutCommodity:            0.7,
			HaircutCrypto:               0.2,
		},
		Invest: InvestConfig{
			VarianceScale:          1.0,
			MeanReversion:          0,
			DividendIntervalDays:   11,
			DividendMinHoldingDays: 10,
		},
		Travel: TravelConfig{
			BaseFee:         100,
			FeePerCargoUnit: 1,
		},
		Events: EventsConfig{
			RobberyLossPctMin:    0.10,
			RobberyLossPctMax:    0.40,
			FireTotalPctMin:      0.20,
			FireTotalPctMax:      0.60,
			CustomsDutyPctMin:    0.05,
			CustomsDutyPctMax:    0.15,
			CashDamagePctMin:     0.01,
			CashDamagePctMax:     0.05,
			CashDamageMin:        50,
			CashDamageMax:        2000,
			CrashMultMin:         0.3,
			CrashMultMax:         0.7,
			BoomMultMin:          1.5,
			BoomMultMax:          3.0,
			BonusDividendPctMin:  0.005,
			BonusDividendPctMax:  0.02,
			BankCorrectionPctMin: 0.01,
			BankCorrectionPctMax: 0.05,
			BankCorrectionMin:    10,
			ContestPrizes:        []int64{800, 1000, 1500, 2000, 2500, 3000},
			PromoMultMin:         0.4,
			PromoMultMax:         0.7,
			OversupplyMultMin:    0.3,
			OversupplyMultMax:    0.6,
			ShortageMultMin:      1.8,
			ShortageMultMax:      2.2,
			LoyalDiscountMult:    0.05,
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./tycoon.sqlite",
		},
	}
}
