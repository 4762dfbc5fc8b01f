package dto

import "time"

// TrendLabel classifies directional movement over the trend window.
type TrendLabel string

const (
	TrendUpward           TrendLabel = "upward"
	TrendDownward         TrendLabel = "downward"
	TrendSideways         TrendLabel = "sideways"
	TrendInsufficientData TrendLabel = "insufficient_data"
)

// RiskLevel is the coarse volatility bucket reported to the user.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Statistics holds the descriptive numbers computed fresh for every
// analysis request. High/Low cover the trailing window only, while
// AvgPrice and Volatility cover the entire series.
type Statistics struct {
	CurrentPrice  float64    `json:"current_price"`
	PreviousPrice float64    `json:"previous_price"`
	Change        float64    `json:"change"`
	ChangePercent float64    `json:"change_percent"`
	HighTrailing  float64    `json:"high_52w"`
	LowTrailing   float64    `json:"low_52w"`
	AvgPrice      float64    `json:"avg_price"`
	Volatility    float64    `json:"volatility"`
	DataPoints    int        `json:"data_points"`
	Trend         TrendLabel `json:"trend"`
}

// AnalyzeParam is everything the advisor needs for one analysis request.
type AnalyzeParam struct {
	AssetClass       AssetClass `json:"asset_class"`
	Symbol           string     `json:"symbol"`
	Question         string     `json:"question"`
	InvestmentAmount float64    `json:"investment_amount"`
}

// AnalyzeResult is the outcome of one full pipeline run.
type AnalyzeResult struct {
	AssetClass AssetClass `json:"asset_class"`
	Symbol     string     `json:"symbol"`
	Statistics Statistics `json:"statistics"`
	RiskLevel  RiskLevel  `json:"risk_level"`
	Narrative  string     `json:"narrative"`
	Timestamp  time.Time  `json:"timestamp"`
}

// AnalysisRecord is one entry of the in-session history log.
type AnalysisRecord struct {
	Timestamp        time.Time  `json:"timestamp"`
	AssetClass       AssetClass `json:"asset_class"`
	Symbol           string     `json:"symbol"`
	Question         string     `json:"question"`
	InvestmentAmount float64    `json:"investment_amount"`
	Narrative        string     `json:"narrative"`
}
