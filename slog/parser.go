package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/webstring"
)

// Ensure LoggingParser implements webstring.HTMLParser.
var _ webstring.HTMLParser = (*LoggingParser)(nil)

// LoggingParser wraps an HTMLParser with debug logging.
type LoggingParser struct {
	next   webstring.HTMLParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next webstring.HTMLParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// ParseFragment delegates to the wrapped parser and logs the result size.
func (p *LoggingParser) ParseFragment(text string) (nodes []*webstring.Node, err error) {
	defer func(begin time.Time) {
		p.logger.Debug("html parse",
			"bytes", len(text),
			"elements", len(nodes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseFragment(text)
}
