package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/webstring"
)

// Ensure LoggingStrategy implements webstring.ComparisonStrategy.
var _ webstring.ComparisonStrategy = (*LoggingStrategy)(nil)

// LoggingStrategy wraps a ComparisonStrategy with debug logging.
type LoggingStrategy struct {
	next   webstring.ComparisonStrategy
	name   string
	logger *slog.Logger
}

// NewLoggingStrategy creates a new LoggingStrategy. The name identifies
// the wrapped strategy in log records.
func NewLoggingStrategy(next webstring.ComparisonStrategy, name string, logger *slog.Logger) *LoggingStrategy {
	return &LoggingStrategy{next: next, name: name, logger: logger}
}

// Compare delegates to the wrapped strategy and logs the score.
func (s *LoggingStrategy) Compare(left, right string) (score float64) {
	defer func(begin time.Time) {
		s.logger.Debug("compare",
			"strategy", s.name,
			"left_bytes", len(left),
			"right_bytes", len(right),
			"score", score,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Compare(left, right)
}
