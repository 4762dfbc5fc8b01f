package history

import (
	"sync"

	"commodity-advisor/internal/dto"
)

// Log is a bounded append-only record of completed analyses for the
// current session. Telegram and HTTP handlers may append concurrently, so
// access is mutex protected. Nothing is persisted.
type Log struct {
	mu      sync.Mutex
	entries []dto.AnalysisRecord
	maxSize int
}

// NewLog creates a log that keeps at most maxSize entries, dropping the
// oldest past that point.
func NewLog(maxSize int) *Log {
	if maxSize <= 0 {
		maxSize = 50
	}
	return &Log{maxSize: maxSize}
}

// Append records a completed analysis.
func (l *Log) Append(record dto.AnalysisRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, record)
	if len(l.entries) > l.maxSize {
		l.entries = l.entries[len(l.entries)-l.maxSize:]
	}
}

// Recent returns up to n records, most recent first.
func (l *Log) Recent(n int) []dto.AnalysisRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n < 0 {
		n = 0
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}

	out := make([]dto.AnalysisRecord, 0, n)
	for i := len(l.entries) - 1; i >= len(l.entries)-n; i-- {
		out = append(out, l.entries[i])
	}
	return out
}

// Len reports how many records are currently held.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
