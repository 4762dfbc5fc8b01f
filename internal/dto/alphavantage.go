package dto

// Alpha Vantage signals errors inside a 200 response body: "Error Message"
// for invalid requests, "Note" for rate limiting and "Information" for
// plan limits. Both response shapes embed these fields.

type AlphaVantageError struct {
	ErrorMessage string `json:"Error Message"`
	Note         string `json:"Note"`
	Information  string `json:"Information"`
}

// CommodityResponse is the generic list-of-dated-observations shape
// returned for commodity functions (WTI, COPPER, ...).
type CommodityResponse struct {
	AlphaVantageError
	Name     string               `json:"name"`
	Interval string               `json:"interval"`
	Unit     string               `json:"unit"`
	Data     []CommodityDataPoint `json:"data"`
}

type CommodityDataPoint struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

// StockResponse is the keyed time-series shape returned by
// TIME_SERIES_MONTHLY: a map of date string to OHLC entry.
type StockResponse struct {
	AlphaVantageError
	MetaData          map[string]string          `json:"Meta Data"`
	MonthlyTimeSeries map[string]StockMonthlyBar `json:"Monthly Time Series"`
}

type StockMonthlyBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}
