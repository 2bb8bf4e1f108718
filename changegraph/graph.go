// Package changegraph pairs name and change directives into a graph of
// change instructions.
//
// Directives are walked in input order. Every name directive is pushed on a
// stack; a change directive pairs with the most recently pushed unmatched
// name and yields one edge per change target:
//
//	// @cttt.name(outer)
//	// @cttt.name(inner)
//	// @cttt.change(a, b)   inner -> a, inner -> b
//	// @cttt.change(c)      outer -> c
package changegraph

import (
	"github.com/shibukawa/cttt"
)

// Edge is one change instruction: the location named From changes into To.
type Edge struct {
	From       string `json:"from" yaml:"from"`
	To         string `json:"to" yaml:"to"`
	NameLine   int    `json:"name_line" yaml:"name_line"`
	ChangeLine int    `json:"change_line" yaml:"change_line"`
}

// Graph is the result of pairing directives.
type Graph struct {
	Edges            []Edge           `json:"edges" yaml:"edges"`
	UnmatchedNames   []cttt.Directive `json:"unmatched_names" yaml:"unmatched_names"`
	UnmatchedChanges []cttt.Directive `json:"unmatched_changes" yaml:"unmatched_changes"`
}

// Build pairs name and change directives. Directives of other kinds are ignored.
func Build(directives []cttt.Directive) *Graph {
	g := &Graph{
		Edges:            []Edge{},
		UnmatchedNames:   []cttt.Directive{},
		UnmatchedChanges: []cttt.Directive{},
	}

	var pending []cttt.Directive

	for _, d := range directives {
		switch d.Kind {
		case cttt.KindName:
			pending = append(pending, d)
		case cttt.KindChange:
			if len(pending) == 0 {
				g.UnmatchedChanges = append(g.UnmatchedChanges, d)
				continue
			}

			name := pending[len(pending)-1]
			pending = pending[:len(pending)-1]

			for _, target := range d.Args {
				g.Edges = append(g.Edges, Edge{
					From:       name.Argument,
					To:         target,
					NameLine:   name.Line,
					ChangeLine: d.Line,
				})
			}
		}
	}

	g.UnmatchedNames = append(g.UnmatchedNames, pending...)

	return g
}

// Targets returns the targets of name, in edge order.
func (g *Graph) Targets(name string) []string {
	var targets []string

	for _, e := range g.Edges {
		if e.From == name {
			targets = append(targets, e.To)
		}
	}

	return targets
}

// Sources returns the names that change into target, in edge order.
func (g *Graph) Sources(target string) []string {
	var sources []string

	for _, e := range g.Edges {
		if e.To == target {
			sources = append(sources, e.From)
		}
	}

	return sources
}

// Complete reports whether every name and change directive was paired.
func (g *Graph) Complete() bool {
	return len(g.UnmatchedNames) == 0 && len(g.UnmatchedChanges) == 0
}
