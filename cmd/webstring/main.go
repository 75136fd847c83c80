package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webstring"
	"github.com/fwojciec/webstring/difflib"
	"github.com/fwojciec/webstring/fuzzysearch"
	"github.com/fwojciec/webstring/goquery"
	"github.com/fwojciec/webstring/html"
	wsslog "github.com/fwojciec/webstring/slog"
	"github.com/fwojciec/webstring/xpath"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read when an input argument is "-".
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webstring"),
		kong.Description("Validate and compare HTML fragments and XPath expressions"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webstring --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Parser = wsslog.NewLoggingParser(html.NewParser(), logger)
	deps.Compiler = wsslog.NewLoggingCompiler(xpath.NewCompiler(), logger)
	deps.Selector = goquery.NewSelector()
	deps.Strategies = map[string]webstring.ComparisonStrategy{
		StrategyRatio:       wsslog.NewLoggingStrategy(difflib.NewStrategy(), StrategyRatio, logger),
		StrategyLevenshtein: wsslog.NewLoggingStrategy(fuzzysearch.NewLevenshteinStrategy(), StrategyLevenshtein, logger),
	}

	return kongCtx.Run(deps)
}
