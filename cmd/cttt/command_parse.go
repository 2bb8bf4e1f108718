package main

import (
	"errors"
	"fmt"

	"github.com/shibukawa/cttt"
	"github.com/shibukawa/cttt/filter"
)

// ParseCmd represents the parse command
type ParseCmd struct {
	Paths  []string `arg:"" optional:"" help:"Files or directories to scan (default: stdin)"`
	Strict bool     `help:"Reject directives whose kind is not allowed"`
	Allow  []string `help:"Allowed kinds in strict mode (default: allowed_kinds from config)"`
	Format string   `short:"f" help:"Output format: text, json or yaml (default: from config)"`
	Filter string   `help:"CEL expression over kind, argument, args, line and column selecting directives"`
}

// Run executes the parse command
func (cmd *ParseCmd) Run(ctx *Context) error {
	config, selector, err := ctx.loadConfig()
	if err != nil {
		return err
	}

	format, err := resolveFormat(cmd.Format, config)
	if err != nil {
		return err
	}

	// --filter replaces the configured expression
	if cmd.Filter != "" {
		selector, err = filter.Compile(cmd.Filter)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidFilter, err)
		}
	}

	results, scanErr := ctx.collect(cmd.Paths, config)
	if scanErr != nil && !errors.Is(scanErr, ErrScanFailed) {
		return scanErr
	}

	if cmd.Strict || config.Strict {
		violations := findViolations(results, allowedKinds(cmd.Allow, config))
		if len(violations) > 0 {
			for _, v := range violations {
				ctx.errorf("%s", v)
			}

			return fmt.Errorf("%w: %d directive(s)", ErrDisallowedDirectives, len(violations))
		}
	}

	if selector != nil {
		for i := range results {
			results[i].Directives, err = selector.Apply(results[i].Directives)
			if err != nil {
				return fmt.Errorf("failed to filter %s: %w", results[i].Path, err)
			}
		}
	}

	if results == nil {
		results = []fileDirectives{}
	}

	if format == cttt.FormatText {
		writeDirectivesText(ctx.Stdout, results)
	} else if err := writeStructured(ctx.Stdout, format, results); err != nil {
		return err
	}

	return scanErr
}
