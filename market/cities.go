package market

// EventBounds configures random travel events for a city: the overall
// chance that any event fires on arrival, and per-category caps on how
// many may fire in one journey.
type EventBounds struct {
	Probability float64 `yaml:"probability"`
	LossMin     int     `yaml:"loss_min"`
	LossMax     int     `yaml:"loss_max"`
	GainMin     int     `yaml:"gain_min"`
	GainMax     int     `yaml:"gain_max"`
	NeutralMin  int     `yaml:"neutral_min"`
	NeutralMax  int     `yaml:"neutral_max"`
}

// City is a trading location. Multipliers maps good name to a local
// price factor; goods not listed trade at 1.0.
type City struct {
	Name        string             `yaml:"name"`
	Country     string             `yaml:"country"`
	Multipliers map[string]float64 `yaml:"multipliers"`
	Events      EventBounds        `yaml:"events"`
}

// Multiplier returns the city's price factor for a good, 1.0 if unset.
func (c City) Multiplier(good string) float64 {
	if m, ok := c.Multipliers[good]; ok {
		return m
	}
	return 1.0
}

// Cities is the built-in city table. Safer cities skew toward gain
// events; contraband hubs carry higher loss exposure.
var Cities = []City{
	{
		Name: "Warsaw", Country: "Poland",
		Multipliers: map[string]float64{
			"Weed": 0.9, "Cocaine": 0.95, "Pistol": 0.9,
		},
		Events: EventBounds{Probability: 0.30, LossMax: 1, GainMax: 2, NeutralMin: 1, NeutralMax: 1},
	},
	{
		Name: "Berlin", Country: "Germany",
		Multipliers: map[string]float64{
			"TV": 0.8, "Laptop": 1.15, "Phone": 1.1, "Camera": 0.85,
			"Luxury Watch": 1.1, "Ferrari": 1.15, "Weed": 0.85,
		},
		Events: EventBounds{Probability: 0.30, LossMax: 1, GainMax: 2, NeutralMax: 2},
	},
	{
		Name: "Prague", Country: "Czech Republic",
		Multipliers: map[string]float64{
			"TV": 1.1, "Laptop": 0.85, "Ferrari": 0.85, "Bentley": 0.85,
			"Weed": 0.6, "Cocaine": 0.7, "Pistol": 0.7,
		},
		Events: EventBounds{Probability: 0.30, LossMax: 2, GainMax: 2, NeutralMax: 1},
	},
	{
		Name: "Paris", Country: "France",
		Multipliers: map[string]float64{
			"Luxury Watch": 1.3, "Diamond Necklace": 1.35, "Ferrari": 1.2,
			"Coffee Machine": 0.75, "Cocaine": 1.25,
		},
		Events: EventBounds{Probability: 0.20, LossMax: 1, GainMin: 1, GainMax: 2, NeutralMin: 1, NeutralMax: 2},
	},
	{
		Name: "Amsterdam", Country: "Netherlands",
		Multipliers: map[string]float64{
			"Laptop": 1.15, "Camera": 0.95, "Weed": 0.5, "Cocaine": 0.65, "Pistol": 0.85,
		},
		Events: EventBounds{Probability: 0.32, LossMin: 1, LossMax: 3, GainMin: 1, GainMax: 3, NeutralMin: 1, NeutralMax: 2},
	},
	{
		Name: "Stockholm", Country: "Sweden",
		Multipliers: map[string]float64{
			"TV": 0.75, "Laptop": 1.25, "Phone": 1.2, "Luxury Watch": 1.25,
			"Diamond Necklace": 1.3, "Ferrari": 1.3, "Weed": 1.5, "Cocaine": 1.65, "Pistol": 1.6,
		},
		Events: EventBounds{Probability: 0.15, LossMax: 1, GainMin: 1, GainMax: 3, NeutralMin: 1, NeutralMax: 2},
	},
}
