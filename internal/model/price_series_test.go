package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNewPriceSeries_SortsAscending(t *testing.T) {
	series := NewPriceSeries([]PricePoint{
		{Date: date(2024, time.March, 1), Value: 3},
		{Date: date(2024, time.January, 1), Value: 1},
		{Date: date(2024, time.February, 1), Value: 2},
	})

	require.Equal(t, 3, series.Len())
	assert.Equal(t, []float64{1, 2, 3}, series.Values())
}

func TestNewPriceSeries_DeduplicatesTimestamps(t *testing.T) {
	series := NewPriceSeries([]PricePoint{
		{Date: date(2024, time.January, 1), Value: 10},
		{Date: date(2024, time.January, 1), Value: 20},
	})

	assert.Equal(t, 1, series.Len())
}

func TestPriceSeries_Last(t *testing.T) {
	empty := NewPriceSeries(nil)
	_, ok := empty.Last()
	assert.False(t, ok)
	assert.True(t, empty.IsEmpty())

	series := NewPriceSeries([]PricePoint{
		{Date: date(2024, time.January, 1), Value: 70.5},
		{Date: date(2024, time.February, 1), Value: 75.0},
	})
	last, ok := series.Last()
	require.True(t, ok)
	assert.Equal(t, 75.0, last.Value)
	assert.Equal(t, date(2024, time.February, 1), last.Date)
}

func TestPriceSeries_TailValues(t *testing.T) {
	series := NewPriceSeries([]PricePoint{
		{Date: date(2024, time.January, 1), Value: 1},
		{Date: date(2024, time.February, 1), Value: 2},
		{Date: date(2024, time.March, 1), Value: 3},
	})

	assert.Equal(t, []float64{2, 3}, series.TailValues(2))
	assert.Equal(t, []float64{1, 2, 3}, series.TailValues(10))
}

func TestPriceSeries_PointsReturnsCopy(t *testing.T) {
	series := NewPriceSeries([]PricePoint{
		{Date: date(2024, time.January, 1), Value: 1},
	})

	points := series.Points()
	points[0].Value = 999

	fresh := series.Points()
	assert.Equal(t, 1.0, fresh[0].Value)
}
