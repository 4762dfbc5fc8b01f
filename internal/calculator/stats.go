package calculator

import (
	"math"

	"commodity-advisor/internal/dto"
	"commodity-advisor/internal/errs"
	"commodity-advisor/internal/model"
)

const (
	// DefaultTrailingWindow is the number of recent observations used for
	// high/low reporting. With monthly data this approximates one year.
	DefaultTrailingWindow = 12

	// DefaultTrendWindow is the number of recent observations used to
	// classify directional movement.
	DefaultTrendWindow = 6

	// trendThresholdPercent separates upward/downward from sideways.
	trendThresholdPercent = 5.0
)

// Summarize computes descriptive statistics over the whole series plus a
// trend label over the trend window. It fails explicitly on an empty
// series rather than computing on no data.
func Summarize(series *model.PriceSeries, trailingWindow, trendWindow int) (*dto.Statistics, error) {
	if series == nil || series.IsEmpty() {
		return nil, errs.NewAnalysisError("cannot compute statistics on an empty price series")
	}
	if trailingWindow <= 0 {
		trailingWindow = DefaultTrailingWindow
	}
	if trendWindow <= 0 {
		trendWindow = DefaultTrendWindow
	}

	values := series.Values()
	current := values[len(values)-1]

	// With a single observation the previous price equals the current one,
	// which defines change as zero.
	previous := current
	if len(values) > 1 {
		previous = values[len(values)-2]
	}

	change := current - previous
	changePercent := 0.0
	if previous != 0 {
		changePercent = change / previous * 100
	}

	tail := series.TailValues(trailingWindow)
	high, low := tail[0], tail[0]
	for _, v := range tail {
		if v > high {
			high = v
		}
		if v < low {
			low = v
		}
	}

	return &dto.Statistics{
		CurrentPrice:  current,
		PreviousPrice: previous,
		Change:        change,
		ChangePercent: changePercent,
		HighTrailing:  high,
		LowTrailing:   low,
		AvgPrice:      Mean(values),
		Volatility:    SampleStdDev(values),
		DataPoints:    len(values),
		Trend:         Trend(series, trendWindow),
	}, nil
}

// Trend classifies the direction of the last trendWindow observations by
// comparing the means of the window's first and second halves. With an
// odd count the extra element goes to the second half. A series shorter
// than the window reports insufficient data.
func Trend(series *model.PriceSeries, trendWindow int) dto.TrendLabel {
	if trendWindow <= 0 {
		trendWindow = DefaultTrendWindow
	}
	if series == nil || series.Len() < trendWindow {
		return dto.TrendInsufficientData
	}

	recent := series.TailValues(trendWindow)
	half := len(recent) / 2
	firstHalf := Mean(recent[:half])
	secondHalf := Mean(recent[half:])

	changePercent := 0.0
	if firstHalf != 0 {
		changePercent = (secondHalf - firstHalf) / firstHalf * 100
	}

	switch {
	case changePercent > trendThresholdPercent:
		return dto.TrendUpward
	case changePercent < -trendThresholdPercent:
		return dto.TrendDownward
	default:
		return dto.TrendSideways
	}
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SampleStdDev returns the sample standard deviation (N-1 denominator),
// consistent with conventional statistical libraries. Fewer than two
// observations yield 0.
func SampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	sumSquares := 0.0
	for _, v := range values {
		d := v - mean
		sumSquares += d * d
	}
	return math.Sqrt(sumSquares / float64(len(values)-1))
}
