package calculator

import (
	"commodity-advisor/internal/dto"
	"commodity-advisor/internal/model"
)

const (
	riskMinObservations = 6

	riskLowThresholdPercent    = 10.0
	riskMediumThresholdPercent = 20.0
)

// ClassifyRisk buckets a series into Low/Medium/High by its volatility
// ratio (sample stddev over mean, as a percentage). Too little history is
// treated as maximal risk, and so is a zero-mean series since that is
// abnormal in itself.
func ClassifyRisk(series *model.PriceSeries) dto.RiskLevel {
	if series == nil || series.Len() < riskMinObservations {
		return dto.RiskHigh
	}

	values := series.Values()
	mean := Mean(values)
	if mean == 0 {
		return dto.RiskHigh
	}

	volatilityRatio := SampleStdDev(values) / mean * 100

	switch {
	case volatilityRatio < riskLowThresholdPercent:
		return dto.RiskLow
	case volatilityRatio < riskMediumThresholdPercent:
		return dto.RiskMedium
	default:
		return dto.RiskHigh
	}
}
