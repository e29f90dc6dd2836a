package market

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tables bundles the static content the engine consumes: goods, assets,
// cities and difficulty presets. The engine treats a Tables value as
// read-only after Validate; a malformed table is fatal at startup.
type Tables struct {
	Goods        []Good       `yaml:"goods"`
	Assets       []Asset      `yaml:"assets"`
	Cities       []City       `yaml:"cities"`
	Difficulties []Difficulty `yaml:"difficulties"`
}

// Builtin returns the compiled-in content tables.
func Builtin() *Tables {
	return &Tables{
		Goods:        Goods,
		Assets:       Assets,
		Cities:       Cities,
		Difficulties: Difficulties,
	}
}

// LoadFromFile reads a YAML content pack. Sections left empty in the
// file fall back to the built-in tables, so a pack may override only
// the goods list, say, and inherit everything else.
func LoadFromFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content pack: %w", err)
	}

	t := &Tables{}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse content pack: %w", err)
	}

	builtin := Builtin()
	if len(t.Goods) == 0 {
		t.Goods = builtin.Goods
	}
	if len(t.Assets) == 0 {
		t.Assets = builtin.Assets
	}
	if len(t.Cities) == 0 {
		t.Cities = builtin.Cities
	}
	if len(t.Difficulties) == 0 {
		t.Difficulties = builtin.Difficulties
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content pack: %w", err)
	}
	return t, nil
}

// Validate checks the tables are complete enough to run a game.
func (t *Tables) Validate() error {
	if len(t.Goods) == 0 {
		return fmt.Errorf("at least one good is required")
	}
	if len(t.Cities) < 2 {
		return fmt.Errorf("at least two cities are required")
	}
	if len(t.Difficulties) == 0 {
		return fmt.Errorf("at least one difficulty preset is required")
	}

	seenGoods := map[string]bool{}
	for _, g := range t.Goods {
		if g.Name == "" {
			return fmt.Errorf("good with empty name")
		}
		if seenGoods[g.Name] {
			return fmt.Errorf("duplicate good %q", g.Name)
		}
		seenGoods[g.Name] = true
		if g.BasePrice <= 0 {
			return fmt.Errorf("good %q: base_price must be positive", g.Name)
		}
		if g.PriceVariance < 0 || g.PriceVariance > 1 {
			return fmt.Errorf("good %q: price_variance must be in [0,1]", g.Name)
		}
		if g.CargoSize <= 0 {
			return fmt.Errorf("good %q: cargo_size must be positive", g.Name)
		}
	}

	seenAssets := map[string]bool{}
	for _, a := range t.Assets {
		if a.Symbol == "" {
			return fmt.Errorf("asset with empty symbol")
		}
		if seenAssets[a.Symbol] {
			return fmt.Errorf("duplicate asset %q", a.Symbol)
		}
		seenAssets[a.Symbol] = true
		if a.BasePrice <= 0 {
			return fmt.Errorf("asset %q: base_price must be positive", a.Symbol)
		}
		if a.PriceVariance < 0 || a.PriceVariance > 1 {
			return fmt.Errorf("asset %q: price_variance must be in [0,1]", a.Symbol)
		}
		switch a.Class {
		case ClassStock, ClassCommodity, ClassCrypto:
		default:
			return fmt.Errorf("asset %q: unknown class %q", a.Symbol, a.Class)
		}
		if a.DividendRate < 0 {
			return fmt.Errorf("asset %q: dividend_rate must not be negative", a.Symbol)
		}
	}

	seenCities := map[string]bool{}
	for _, c := range t.Cities {
		if c.Name == "" {
			return fmt.Errorf("city with empty name")
		}
		if seenCities[c.Name] {
			return fmt.Errorf("duplicate city %q", c.Name)
		}
		seenCities[c.Name] = true
		ev := c.Events
		if ev.Probability < 0 || ev.Probability > 1 {
			return fmt.Errorf("city %q: event probability must be in [0,1]", c.Name)
		}
		if ev.LossMin < 0 || ev.LossMax < ev.LossMin ||
			ev.GainMin < 0 || ev.GainMax < ev.GainMin ||
			ev.NeutralMin < 0 || ev.NeutralMax < ev.NeutralMin {
			return fmt.Errorf("city %q: malformed event bounds", c.Name)
		}
		for name := range c.Multipliers {
			if !seenGoods[name] {
				return fmt.Errorf("city %q: multiplier for unknown good %q", c.Name, name)
			}
		}
	}

	seenDiff := map[string]bool{}
	for _, d := range t.Difficulties {
		if d.Name == "" {
			return fmt.Errorf("difficulty with empty name")
		}
		if seenDiff[d.Name] {
			return fmt.Errorf("duplicate difficulty %q", d.Name)
		}
		seenDiff[d.Name] = true
		if d.StartCash < 0 {
			return fmt.Errorf("difficulty %q: start_cash must not be negative", d.Name)
		}
		if d.StartCapacity <= 0 {
			return fmt.Errorf("difficulty %q: start_capacity must be positive", d.Name)
		}
	}

	return nil
}

// GoodByName looks up a good; ok is false for unknown names.
func (t *Tables) GoodByName(name string) (Good, bool) {
	for _, g := range t.Goods {
		if g.Name == name {
			return g, true
		}
	}
	return Good{}, false
}

// AssetBySymbol looks up an asset by ticker symbol.
func (t *Tables) AssetBySymbol(symbol string) (Asset, bool) {
	for _, a := range t.Assets {
		if a.Symbol == symbol {
			return a, true
		}
	}
	return Asset{}, false
}

// CityByName looks up a city.
func (t *Tables) CityByName(name string) (City, bool) {
	for _, c := range t.Cities {
		if c.Name == name {
			return c, true
		}
	}
	return City{}, false
}

// CityIndex returns the position of a city in the table, -1 if absent.
func (t *Tables) CityIndex(name string) int {
	for i, c := range t.Cities {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// DifficultyByName looks up a preset.
func (t *Tables) DifficultyByName(name string) (Difficulty, bool) {
	for _, d := range t.Difficulties {
		if d.Name == name {
			return d, true
		}
	}
	return Difficulty{}, false
}

// AssetsByClass returns all assets of one class, table order preserved.
func (t *Tables) AssetsByClass(class AssetClass) []Asset {
	var out []Asset
	for _, a := range t.Assets {
		if a.Class == class {
			out = append(out, a)
		}
	}
	return out
}
