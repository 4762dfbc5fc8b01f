package model

import (
	"sort"
	"time"
)

// PricePoint is a single dated price observation.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// PriceSeries is an ordered sequence of price observations for one asset.
// Timestamps are unique and sorted ascending. A series is built once per
// fetch and never mutated afterwards.
type PriceSeries struct {
	points []PricePoint
}

// NewPriceSeries builds a series from raw observations: duplicates by
// timestamp are collapsed (last one wins) and the result is sorted
// ascending by date. Rows with unparseable values are expected to have
// been dropped by the caller already.
func NewPriceSeries(points []PricePoint) *PriceSeries {
	byDate := make(map[time.Time]PricePoint, len(points))
	for _, p := range points {
		byDate[p.Date] = p
	}

	deduped := make([]PricePoint, 0, len(byDate))
	for _, p := range byDate {
		deduped = append(deduped, p)
	}
	sort.Slice(deduped, func(i, j int) bool {
		return deduped[i].Date.Before(deduped[j].Date)
	})

	return &PriceSeries{points: deduped}
}

func (s *PriceSeries) Len() int {
	return len(s.points)
}

func (s *PriceSeries) IsEmpty() bool {
	return len(s.points) == 0
}

// Points returns a copy of the underlying observations.
func (s *PriceSeries) Points() []PricePoint {
	out := make([]PricePoint, len(s.points))
	copy(out, s.points)
	return out
}

// Values returns all price values in chronological order.
func (s *PriceSeries) Values() []float64 {
	out := make([]float64, len(s.points))
	for i, p := range s.points {
		out[i] = p.Value
	}
	return out
}

// Last returns the most recent observation. The boolean is false when the
// series is empty.
func (s *PriceSeries) Last() (PricePoint, bool) {
	if len(s.points) == 0 {
		return PricePoint{}, false
	}
	return s.points[len(s.points)-1], true
}

// TailValues returns the values of the last n observations, or all of
// them when fewer exist.
func (s *PriceSeries) TailValues(n int) []float64 {
	values := s.Values()
	if n >= len(values) {
		return values
	}
	return values[len(values)-n:]
}
