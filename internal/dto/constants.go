package dto

// AssetClass distinguishes the two supported asset families.
type AssetClass string

const (
	AssetClassCommodity AssetClass = "commodity"
	AssetClassStock     AssetClass = "stock"
)

func (a AssetClass) Valid() bool {
	return a == AssetClassCommodity || a == AssetClassStock
}

// DisplayName returns the capitalized label used in prompts and replies.
func (a AssetClass) DisplayName() string {
	if a == AssetClassStock {
		return "Stock"
	}
	return "Commodity"
}

// CommodityFunctions maps a commodity symbol to the Alpha Vantage
// function identifier. The mapping is the identity for this provider but
// doubles as the catalog of supported commodities.
var CommodityFunctions = map[string]string{
	"WTI":         "WTI",
	"BRENT":       "BRENT",
	"NATURAL_GAS": "NATURAL_GAS",
	"COPPER":      "COPPER",
	"ALUMINUM":    "ALUMINUM",
	"WHEAT":       "WHEAT",
	"CORN":        "CORN",
	"SUGAR":       "SUGAR",
	"COFFEE":      "COFFEE",
}

// StockSymbols is the catalog of supported stocks with display names.
var StockSymbols = map[string]string{
	"AAPL":  "Apple Inc.",
	"MSFT":  "Microsoft Corp.",
	"GOOGL": "Alphabet Inc.",
	"AMZN":  "Amazon.com Inc.",
	"TSLA":  "Tesla Inc.",
	"META":  "Meta Platforms Inc.",
	"NVDA":  "NVIDIA Corp.",
	"JPM":   "JPMorgan Chase",
	"V":     "Visa Inc.",
	"WMT":   "Walmart Inc.",
}
