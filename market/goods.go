package market

// GoodTier classifies a good's risk/reward profile.
type GoodTier string

const (
	TierStandard   GoodTier = "standard"
	TierLuxury     GoodTier = "luxury"
	TierContraband GoodTier = "contraband"
)

// Good is a tradable product. BasePrice anchors quoting; PriceVariance
// is the half-width of the symmetric fluctuation band (0.3 = ±30%).
// CargoSize is the number of cargo slots one unit occupies.
type Good struct {
	Name          string   `yaml:"name"`
	BasePrice     int64    `yaml:"base_price"`
	PriceVariance float64  `yaml:"price_variance"`
	Tier          GoodTier `yaml:"tier"`
	Category      string   `yaml:"category"`
	CargoSize     int64    `yaml:"cargo_size"`
}

// Goods is the built-in product table. Content packs may replace it
// wholesale via LoadFromFile; the engine never mutates it.
var Goods = []Good{
	{Name: "TV", BasePrice: 800, PriceVariance: 0.3, Tier: TierStandard, Category: "electronics", CargoSize: 1},
	{Name: "Laptop", BasePrice: 1200, PriceVariance: 0.3, Tier: TierStandard, Category: "electronics", CargoSize: 1},
	{Name: "Phone", BasePrice: 600, PriceVariance: 0.3, Tier: TierStandard, Category: "electronics", CargoSize: 1},
	{Name: "Camera", BasePrice: 450, PriceVariance: 0.3, Tier: TierStandard, Category: "electronics", CargoSize: 1},
	{Name: "Console", BasePrice: 500, PriceVariance: 0.3, Tier: TierStandard, Category: "electronics", CargoSize: 1},
	{Name: "Coffee Machine", BasePrice: 250, PriceVariance: 0.3, Tier: TierStandard, Category: "electronics", CargoSize: 1},
	{Name: "Luxury Watch", BasePrice: 8000, PriceVariance: 0.45, Tier: TierLuxury, Category: "jewelry", CargoSize: 1},
	{Name: "Diamond Necklace", BasePrice: 15000, PriceVariance: 0.5, Tier: TierLuxury, Category: "jewelry", CargoSize: 1},
	{Name: "Ferrari", BasePrice: 250000, PriceVariance: 0.5, Tier: TierLuxury, Category: "cars", CargoSize: 8},
	{Name: "Bentley", BasePrice: 200000, PriceVariance: 0.45, Tier: TierLuxury, Category: "cars", CargoSize: 8},
	{Name: "Weed", BasePrice: 300, PriceVariance: 0.8, Tier: TierContraband, Category: "drugs", CargoSize: 1},
	{Name: "Cocaine", BasePrice: 2000, PriceVariance: 1.0, Tier: TierContraband, Category: "drugs", CargoSize: 1},
	{Name: "Pistol", BasePrice: 900, PriceVariance: 0.8, Tier: TierContraband, Category: "weapons", CargoSize: 1},
}
