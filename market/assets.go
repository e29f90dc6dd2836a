package market

// AssetClass groups investable assets by volatility profile.
type AssetClass string

const (
	ClassStock     AssetClass = "stock"
	ClassCommodity AssetClass = "commodity"
	ClassCrypto    AssetClass = "crypto"
)

// Asset is an investable instrument. PriceVariance bounds the per-travel
// drift of the running quote (stocks narrowest, crypto widest).
// DividendRate is the per-payout fraction of position value; zero means
// the asset never pays dividends.
type Asset struct {
	Name          string     `yaml:"name"`
	Symbol        string     `yaml:"symbol"`
	BasePrice     int64      `yaml:"base_price"`
	PriceVariance float64    `yaml:"price_variance"`
	Class         AssetClass `yaml:"class"`
	DividendRate  float64    `yaml:"dividend_rate"`
}

// Assets is the built-in instrument table.
var Assets = []Asset{
	{Name: "Google", Symbol: "GOOGL", BasePrice: 150, PriceVariance: 0.10, Class: ClassStock, DividendRate: 0.01},
	{Name: "Microsoft", Symbol: "MSFT", BasePrice: 320, PriceVariance: 0.08, Class: ClassStock, DividendRate: 0.012},
	{Name: "NVIDIA", Symbol: "NVDA", BasePrice: 250, PriceVariance: 0.18, Class: ClassStock, DividendRate: 0.008},
	{Name: "Tesla", Symbol: "TSLA", BasePrice: 200, PriceVariance: 0.20, Class: ClassStock},
	{Name: "Gold", Symbol: "GOLD", BasePrice: 1800, PriceVariance: 0.06, Class: ClassCommodity},
	{Name: "Silver", Symbol: "SILV", BasePrice: 25, PriceVariance: 0.08, Class: ClassCommodity},
	{Name: "Crude Oil", Symbol: "OIL", BasePrice: 80, PriceVariance: 0.15, Class: ClassCommodity},
	{Name: "Bitcoin", Symbol: "BTC", BasePrice: 35000, PriceVariance: 0.30, Class: ClassCrypto},
	{Name: "Ethereum", Symbol: "ETH", BasePrice: 2000, PriceVariance: 0.35, Class: ClassCrypto},
}
