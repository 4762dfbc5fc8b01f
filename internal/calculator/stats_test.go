package calculator

import (
	"testing"
	"time"

	"commodity-advisor/internal/dto"
	"commodity-advisor/internal/errs"
	"commodity-advisor/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seriesFromValues(t *testing.T, values ...float64) *model.PriceSeries {
	t.Helper()
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	points := make([]model.PricePoint, 0, len(values))
	for i, v := range values {
		points = append(points, model.PricePoint{Date: start.AddDate(0, i, 0), Value: v})
	}
	return model.NewPriceSeries(points)
}

func TestSummarize_EmptySeries(t *testing.T) {
	_, err := Summarize(model.NewPriceSeries(nil), 12, 6)
	require.Error(t, err)

	var analysisErr *errs.AnalysisError
	assert.ErrorAs(t, err, &analysisErr)
}

func TestSummarize_SingleObservation(t *testing.T) {
	stats, err := Summarize(seriesFromValues(t, 190.0), 12, 6)
	require.NoError(t, err)

	assert.Equal(t, 190.0, stats.CurrentPrice)
	assert.Equal(t, 190.0, stats.PreviousPrice)
	assert.Equal(t, 0.0, stats.Change)
	assert.Equal(t, 0.0, stats.ChangePercent)
	assert.Equal(t, 1, stats.DataPoints)
	assert.Equal(t, dto.TrendInsufficientData, stats.Trend)
}

func TestSummarize_ChangeMath(t *testing.T) {
	stats, err := Summarize(seriesFromValues(t, 70.5, 75.0), 12, 6)
	require.NoError(t, err)

	assert.Equal(t, 75.0, stats.CurrentPrice)
	assert.Equal(t, 70.5, stats.PreviousPrice)
	assert.InDelta(t, 4.5, stats.Change, 1e-9)
	assert.InDelta(t, 6.3829787234, stats.ChangePercent, 1e-6)
}

func TestSummarize_ZeroPreviousPrice(t *testing.T) {
	stats, err := Summarize(seriesFromValues(t, 0.0, 10.0), 12, 6)
	require.NoError(t, err)

	assert.Equal(t, 10.0, stats.Change)
	assert.Equal(t, 0.0, stats.ChangePercent)
}

func TestSummarize_TrailingWindowHighLow(t *testing.T) {
	// 15 observations, the first three fall outside the 12-period window.
	values := []float64{100, 200, 300, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21}
	stats, err := Summarize(seriesFromValues(t, values...), 12, 6)
	require.NoError(t, err)

	assert.Equal(t, 21.0, stats.HighTrailing)
	assert.Equal(t, 10.0, stats.LowTrailing)
	assert.Equal(t, 15, stats.DataPoints)
	assert.GreaterOrEqual(t, stats.HighTrailing, stats.LowTrailing)
}

func TestSummarize_MeanAndStdDevWholeSeries(t *testing.T) {
	stats, err := Summarize(seriesFromValues(t, 2, 4, 4, 4, 5, 5, 7, 9), 12, 6)
	require.NoError(t, err)

	assert.InDelta(t, 5.0, stats.AvgPrice, 1e-9)
	// Sample standard deviation with N-1 denominator.
	assert.InDelta(t, 2.1380899353, stats.Volatility, 1e-6)
}

func TestTrend_InsufficientData(t *testing.T) {
	for trendWindow := 1; trendWindow <= 10; trendWindow++ {
		series := seriesFromValues(t, make([]float64, trendWindow-1)...)
		assert.Equal(t, dto.TrendInsufficientData, Trend(series, trendWindow),
			"series shorter than window %d must be insufficient_data", trendWindow)
	}
}

func TestTrend_Upward(t *testing.T) {
	series := seriesFromValues(t, 100, 110, 121, 133, 146, 161)
	assert.Equal(t, dto.TrendUpward, Trend(series, 6))
}

func TestTrend_Downward(t *testing.T) {
	series := seriesFromValues(t, 161, 146, 133, 121, 110, 100)
	assert.Equal(t, dto.TrendDownward, Trend(series, 6))
}

func TestTrend_Sideways(t *testing.T) {
	series := seriesFromValues(t, 100, 100, 100, 100, 100, 100)
	assert.Equal(t, dto.TrendSideways, Trend(series, 6))
}

func TestTrend_OddWindowSplitsExtraToSecondHalf(t *testing.T) {
	// Window of 5: first half is 2 elements, second half is 3.
	// first half mean = 100, second half mean = (100+100+112)/3 ≈ 104 → sideways.
	series := seriesFromValues(t, 100, 100, 100, 100, 112)
	assert.Equal(t, dto.TrendSideways, Trend(series, 5))

	// Push the second half mean past +5%: (100+120+120)/3 ≈ 113.3 → upward.
	series = seriesFromValues(t, 100, 100, 100, 120, 120)
	assert.Equal(t, dto.TrendUpward, Trend(series, 5))
}

func TestTrend_ZeroFirstHalfMeanIsSideways(t *testing.T) {
	series := seriesFromValues(t, 0, 0, 0, 10, 20, 30)
	assert.Equal(t, dto.TrendSideways, Trend(series, 6))
}

func TestMean_Empty(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
}

func TestSampleStdDev_TooFewObservations(t *testing.T) {
	assert.Equal(t, 0.0, SampleStdDev(nil))
	assert.Equal(t, 0.0, SampleStdDev([]float64{5}))
}
