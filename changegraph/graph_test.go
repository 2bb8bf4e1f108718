package changegraph

import (
	"testing"

	"github.com/shibukawa/cttt/parser"
	"github.com/shibukawa/cttt/testhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	src := testhelper.TrimIndent(t, `
		// @cttt.name(foo)
		let x = 1;
		// @cttt.change(bar)

		// @cttt.name(bar)
		let y = 2;
		// @cttt.change(foo)
		`)

	g := Build(parser.Parse(src))

	require.Len(t, g.Edges, 2)
	assert.Equal(t, Edge{From: "foo", To: "bar", NameLine: 1, ChangeLine: 3}, g.Edges[0])
	assert.Equal(t, Edge{From: "bar", To: "foo", NameLine: 5, ChangeLine: 7}, g.Edges[1])
	assert.True(t, g.Complete())
}

func TestBuildNested(t *testing.T) {
	src := testhelper.Lines(t,
		"// @cttt.name(123)",
		"// @cttt.name(2)",
		"x +=1;",
		"// @cttt.change(3,4,5)",
		"// @cttt.change(1)",
	)

	g := Build(parser.Parse(src))

	assert.Equal(t, []string{"3", "4", "5"}, g.Targets("2"))
	assert.Equal(t, []string{"1"}, g.Targets("123"))
	assert.Equal(t, []string{"2"}, g.Sources("4"))
	assert.Empty(t, g.Targets("unknown"))
}

func TestBuildUnmatched(t *testing.T) {
	tests := []struct {
		name             string
		lines            []string
		unmatchedNames   []string
		unmatchedChanges []string
		edges            int
	}{
		{
			name:             "change before any name",
			lines:            []string{"// @cttt.change(a)", "// @cttt.name(b)"},
			unmatchedNames:   []string{"b"},
			unmatchedChanges: []string{"a"},
		},
		{
			name:           "extra names",
			lines:          []string{"// @cttt.name(a)", "// @cttt.name(b)", "// @cttt.change(c)"},
			unmatchedNames: []string{"a"},
			edges:          1,
		},
		{
			name:             "extra changes",
			lines:            []string{"// @cttt.name(a)", "// @cttt.change(b)", "// @cttt.change(c)"},
			unmatchedChanges: []string{"c"},
			edges:            1,
		},
		{
			name:  "other kinds ignored",
			lines: []string{"// @cttt.name(a)", "// @cttt.noop(x)", "// @cttt.change(b)"},
			edges: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(parser.Parse(testhelper.Lines(t, tt.lines...)))

			var names, changes []string
			for _, d := range g.UnmatchedNames {
				names = append(names, d.Argument)
			}

			for _, d := range g.UnmatchedChanges {
				changes = append(changes, d.Argument)
			}

			assert.Equal(t, tt.unmatchedNames, names)
			assert.Equal(t, tt.unmatchedChanges, changes)
			assert.Len(t, g.Edges, tt.edges)
			assert.Equal(t, tt.unmatchedNames == nil && tt.unmatchedChanges == nil, g.Complete())
		})
	}
}

func TestBuildEmpty(t *testing.T) {
	g := Build(nil)

	assert.NotNil(t, g.Edges)
	assert.Empty(t, g.Edges)
	assert.True(t, g.Complete())
}
