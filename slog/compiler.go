package slog

import (
	"errors"
	"log/slog"
	"time"

	"github.com/fwojciec/webstring"
)

// Ensure LoggingCompiler implements webstring.XPathCompiler.
var _ webstring.XPathCompiler = (*LoggingCompiler)(nil)

// LoggingCompiler wraps an XPathCompiler with debug logging.
type LoggingCompiler struct {
	next   webstring.XPathCompiler
	logger *slog.Logger
}

// NewLoggingCompiler creates a new LoggingCompiler.
func NewLoggingCompiler(next webstring.XPathCompiler, logger *slog.Logger) *LoggingCompiler {
	return &LoggingCompiler{next: next, logger: logger}
}

// Compile delegates to the wrapped compiler and logs the outcome. The
// error is returned untouched.
func (c *LoggingCompiler) Compile(expr string) (err error) {
	defer func(begin time.Time) {
		c.logger.Debug("xpath compile",
			"expr", expr,
			"outcome", outcome(err),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Compile(expr)
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var syntaxErr *webstring.XPathSyntaxError
	if errors.As(err, &syntaxErr) {
		return "syntax_error"
	}
	return "fault"
}
