package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/webstring"
)

// Strategy names accepted by --strategy.
const (
	StrategyRatio       = "ratio"
	StrategyLevenshtein = "levenshtein"
)

// Value kinds accepted by --kind.
const (
	KindHTML  = "html"
	KindXPath = "xpath"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Parser     webstring.HTMLParser
	Compiler   webstring.XPathCompiler
	Selector   webstring.FragmentSelector
	Strategies map[string]webstring.ComparisonStrategy
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" env:"WEBSTRING_VERBOSE" help:"Log parser, compiler and strategy calls"`

	Validate ValidateCmd `cmd:"" help:"Check values are well-formed for their kind"`
	Compare  CompareCmd  `cmd:"" help:"Score the similarity of two values"`
	Rank     RankCmd     `cmd:"" help:"Rank candidates by similarity to a reference"`
}

// InputFlags are shared by every command that reads values.
type InputFlags struct {
	Kind     string `short:"k" enum:"html,xpath" default:"html" env:"WEBSTRING_KIND" help:"Kind of value (html, xpath)"`
	FromFile bool   `short:"f" name:"from-file" help:"Treat arguments as file paths (- reads stdin)"`
	Select   string `short:"s" help:"CSS selector picking the first matching element out of each input document"`
}

// ValidateCmd is the "validate" subcommand.
type ValidateCmd struct {
	InputFlags `embed:""`

	Values []string `arg:"" help:"Values to validate"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	InputFlags `embed:""`

	Left     string `arg:"" help:"Value that is validated before comparing"`
	Right    string `arg:"" help:"Value to compare against"`
	Strategy string `enum:"ratio,levenshtein" default:"ratio" env:"WEBSTRING_STRATEGY" help:"Similarity algorithm (ratio, levenshtein)"`
	Strict   bool   `env:"WEBSTRING_STRICT" help:"Validate the right value as well"`
}

// RankCmd is the "rank" subcommand.
type RankCmd struct {
	InputFlags `embed:""`

	Reference   string   `arg:"" help:"Reference value"`
	Candidates  []string `arg:"" help:"Candidate values"`
	Strategy    string   `enum:"ratio,levenshtein" default:"ratio" env:"WEBSTRING_STRATEGY" help:"Similarity algorithm (ratio, levenshtein)"`
	Strict      bool     `env:"WEBSTRING_STRICT" help:"Validate candidates as well"`
	Threshold   float64  `short:"t" default:"0" help:"Drop candidates scoring below this"`
	Concurrency int      `short:"c" default:"8" env:"WEBSTRING_CONCURRENCY" help:"Concurrent comparison limit"`
}

// read resolves a positional argument to the value it stands for.
func (f *InputFlags) read(deps *Dependencies, arg string) (string, error) {
	value := arg
	if f.FromFile {
		var data []byte
		var err error
		if arg == "-" {
			data, err = io.ReadAll(deps.Stdin)
		} else {
			data, err = os.ReadFile(arg)
		}
		if err != nil {
			return "", fmt.Errorf("read %s: %w", arg, err)
		}
		value = string(data)
	}

	if f.Select == "" {
		return value, nil
	}
	if deps.Selector == nil {
		return "", webstring.Errorf(webstring.EINVALID, "fragment selector not configured")
	}
	fragments, err := deps.Selector.Select(value, f.Select)
	if err != nil {
		return "", err
	}
	return fragments[0], nil
}

// wrap builds the typed string for the configured kind.
func (f *InputFlags) wrap(deps *Dependencies, value string, strategy webstring.ComparisonStrategy, opts ...webstring.Option) (webstring.TypedString, error) {
	switch f.Kind {
	case KindHTML:
		return webstring.NewHTMLString(value, strategy, deps.Parser, opts...), nil
	case KindXPath:
		return webstring.NewXPathString(value, strategy, deps.Compiler, opts...), nil
	default:
		return nil, webstring.Errorf(webstring.EINVALID, "unknown kind %q", f.Kind)
	}
}

// strategy looks up a named strategy.
func (deps *Dependencies) strategy(name string) (webstring.ComparisonStrategy, error) {
	s, ok := deps.Strategies[name]
	if !ok {
		return nil, webstring.Errorf(webstring.EINVALID, "unknown strategy %q", name)
	}
	return s, nil
}

// display shortens a value for single-line output.
func display(value string) string {
	value = strings.Join(strings.Fields(value), " ")
	const limit = 60
	if r := []rune(value); len(r) > limit {
		return string(r[:limit-3]) + "..."
	}
	return value
}

func reportError(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", message(err))
	return err
}

// message prefers the application message and falls back to the error text.
func message(err error) string {
	if webstring.ErrorCode(err) == webstring.EINTERNAL {
		return err.Error()
	}
	return webstring.ErrorMessage(err)
}
