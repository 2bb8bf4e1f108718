package main

import (
	"errors"
	"fmt"

	"github.com/shibukawa/cttt"
	"github.com/shibukawa/cttt/changegraph"
)

// GraphCmd represents the graph command
type GraphCmd struct {
	Paths           []string `arg:"" optional:"" help:"Files or directories to scan (default: stdin)"`
	Format          string   `short:"f" help:"Output format: text, json or yaml (default: from config)"`
	RequireComplete bool     `help:"Fail when a name or change directive is left unpaired"`
}

// fileGraph is the change graph of one input. Pairing never crosses files.
type fileGraph struct {
	Path  string             `json:"path" yaml:"path"`
	Graph *changegraph.Graph `json:"graph" yaml:"graph"`
}

// Run executes the graph command
func (cmd *GraphCmd) Run(ctx *Context) error {
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

	graphs := make([]fileGraph, 0, len(results))
	unpaired := 0

	for _, result := range results {
		g := changegraph.Build(result.Directives)
		graphs = append(graphs, fileGraph{Path: result.Path, Graph: g})

		for _, d := range g.UnmatchedNames {
			ctx.warnf("%s:%d: name(%s) has no matching change", result.Path, d.Line, d.Argument)
		}

		for _, d := range g.UnmatchedChanges {
			ctx.warnf("%s:%d: change(%s) has no preceding name", result.Path, d.Line, d.Argument)
		}

		unpaired += len(g.UnmatchedNames) + len(g.UnmatchedChanges)
	}

	if format == cttt.FormatText {
		for _, fg := range graphs {
			for _, e := range fg.Graph.Edges {
				fmt.Fprintf(ctx.Stdout, "%s:%d: %s -> %s (line %d)\n", fg.Path, e.NameLine, e.From, e.To, e.ChangeLine)
			}
		}
	} else if err := writeStructured(ctx.Stdout, format, graphs); err != nil {
		return err
	}

	if cmd.RequireComplete && unpaired > 0 {
		return fmt.Errorf("%w: %d directive(s)", ErrIncompleteGraph, unpaired)
	}

	return scanErr
}
