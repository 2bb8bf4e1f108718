package main

import (
	"errors"
	"fmt"

	"github.com/shibukawa/cttt"
)

// CheckCmd represents the check command
type CheckCmd struct {
	Paths  []string `arg:"" optional:"" help:"Files or directories to check (default: stdin)"`
	Allow  []string `help:"Allowed kinds (default: allowed_kinds from config)"`
	Format string   `short:"f" help:"Output format: text, json or yaml (default: from config)"`
}

// Run executes the check command
func (cmd *CheckCmd) Run(ctx *Context) error {
	config, _, err := ctx.loadConfig()
	if err != nil {
		return err
	}

	format, err := resolveFormat(cmd.Format, config)
	if err != nil {
		return err
	}

	results, scanErr := ctx.collect(cmd.Paths, config)
	if scanErr != nil && !errors.Is(scanErr, ErrScanFailed) {
		return scanErr
	}

	violations := findViolations(results, allowedKinds(cmd.Allow, config))

	if format == cttt.FormatText {
		for _, v := range violations {
			fmt.Fprintln(ctx.Stdout, v)
		}
	} else if err := writeStructured(ctx.Stdout, format, violations); err != nil {
		return err
	}

	if len(violations) > 0 {
		return fmt.Errorf("%w: %d directive(s) in %d file(s)", ErrDisallowedDirectives, len(violations), countFiles(violations))
	}

	if scanErr != nil {
		return scanErr
	}

	ctx.successf("No disallowed directives in %d file(s)", len(results))

	return nil
}

func countFiles(violations []violation) int {
	files := make(map[string]struct{})
	for _, v := range violations {
		files[v.Path] = struct{}{}
	}

	return len(files)
}
