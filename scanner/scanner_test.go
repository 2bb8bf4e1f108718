package scanner

import (
	"errors"
	"io"
	"slices"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/cttt"
	"github.com/shibukawa/cttt/testhelper"
)

func TestScanBasic(t *testing.T) {
	src := testhelper.Lines(t,
		"// @cttt.name(foo)",
		"let x = 1;",
		"// @cttt.change(bar)",
	)

	directives := ScanAll(src)

	assert.Equal(t, []cttt.Directive{
		{Kind: "name", Argument: "foo", Args: []string{"foo"}, Line: 1, Column: 4, Comment: "// @cttt.name(foo)"},
		{Kind: "change", Argument: "bar", Args: []string{"bar"}, Line: 3, Column: 4, Comment: "// @cttt.change(bar)"},
	}, directives)
}

func TestScanEmpty(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"plain code", "let x = 1;\nlet y = 2;\n"},
		{"comment without directive", "// just a comment\n# another"},
		{"namespace only", "// @cttt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directives := ScanAll(tt.input)
			assert.True(t, directives != nil)
			assert.Equal(t, 0, len(directives))
		})
	}
}

func TestScanCommentOpeners(t *testing.T) {
	tests := []struct {
		leading  string
		trailing string
	}{
		{"--", ""},
		{"!", ""},
		{"(*", "*)"},
		{"{-", "-}"},
		{"{", "}"},
		{"/*", "*/"},
		{"/**", "*/"},
		{"//", ""},
		{"///", ""},
		{`"""`, `"""`},
		{"'''", "'''"},
		{"#", ""},
		{";", ""},
		{"<!--", "-->"},
		{"*", ""},
	}

	for _, tt := range tests {
		t.Run(tt.leading, func(t *testing.T) {
			input := tt.leading + " @cttt.foo(bar) " + tt.trailing

			directives := ScanAll(input)

			assert.Equal(t, 1, len(directives))
			assert.Equal(t, "foo", directives[0].Kind)
			assert.Equal(t, "bar", directives[0].Argument)
			assert.Equal(t, strings.TrimRight(input, " "), directives[0].Comment)
		})
	}
}

func TestCommentOpenersIsCopy(t *testing.T) {
	openers := CommentOpeners()
	assert.True(t, slices.Contains(openers, "//"))

	for i := range openers {
		openers[i] = "?"
	}

	directives := ScanAll("// @cttt.name(foo)")
	assert.Equal(t, 1, len(directives))
	assert.Equal(t, "//", CommentOpeners()[5])
}

func TestScanIgnoresDirectiveOutsideComment(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"string literal", `s := "// @cttt.name(foo)"`},
		{"string literal without opener", `let s = "@cttt.name(foo)";`},
		{"trailing comment after code", `x := 1 // @cttt.name(foo)`},
		{"bare directive", `@cttt.name(foo)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0, len(ScanAll(tt.input)))
		})
	}
}

func TestScanMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed parenthesis", "// @cttt.name(foo"},
		{"missing parenthesis", "// @cttt.name"},
		{"empty argument", "// @cttt.name()"},
		{"blank argument", "// @cttt.change( )"},
		{"missing kind", "// @cttt.(foo)"},
		{"missing dot", "// @ctttname(foo)"},
		{"space before parenthesis", "// @cttt.name (foo)"},
		{"space after namespace", "// @cttt .name(foo)"},
		{"nested parenthesis", "// @cttt.name(a(b))"},
		{"other namespace", "// @ctt.name(foo)"},
		{"longer namespace", "// @ctttx.name(foo)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0, len(ScanAll(tt.input)))
		})
	}
}

func TestScanArguments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		argument string
		args     []string
	}{
		{"characters", "// @cttt.change(./aFoo_Bar-123)", "./aFoo_Bar-123", []string{"./aFoo_Bar-123"}},
		{"comma separated", "// @cttt.change(3,4,5)", "3,4,5", []string{"3", "4", "5"}},
		{"whitespace separated", "// @cttt.change(foo, bar)", "foo, bar", []string{"foo", "bar"}},
		{"trailing comma", "// @cttt.change(foo, bar,)", "foo, bar,", []string{"foo", "bar"}},
		{"surrounding whitespace", "// @cttt.change(  foo  )", "foo", []string{"foo"}},
		{"file paths", "// @cttt.change(./foo/README.md, /bar/foo.rs)", "./foo/README.md, /bar/foo.rs", []string{"./foo/README.md", "/bar/foo.rs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directives := ScanAll(tt.input)

			assert.Equal(t, 1, len(directives))
			assert.Equal(t, tt.argument, directives[0].Argument)
			assert.Equal(t, tt.args, directives[0].Args)
		})
	}
}

func TestScanCaseInsensitiveNamespace(t *testing.T) {
	src := testhelper.Lines(t,
		"// @CTTT.named(SPECIAL_BLOCK)",
		"// @cttt.CHANGE(./foo.txt,abc)",
	)

	directives := ScanAll(src)

	assert.Equal(t, 2, len(directives))
	assert.Equal(t, "named", directives[0].Kind)
	assert.Equal(t, "SPECIAL_BLOCK", directives[0].Argument)
	assert.Equal(t, "CHANGE", directives[1].Kind)
	assert.Equal(t, []string{"./foo.txt", "abc"}, directives[1].Args)
}

func TestScanKebabKind(t *testing.T) {
	directives := ScanAll("// @cttt.named-bar-baz(x)")

	assert.Equal(t, 1, len(directives))
	assert.Equal(t, "named-bar-baz", directives[0].Kind)
}

func TestScanBlockCommentContinuation(t *testing.T) {
	src := `
            /**
             * @cttt.named(123)
             */
            x = 123;
            /**
             * @cttt.noop(1)
             */`

	directives := ScanAll(src)

	assert.Equal(t, 2, len(directives))
	assert.Equal(t, 3, directives[0].Line)
	assert.Equal(t, 16, directives[0].Column)
	assert.Equal(t, "             * @cttt.named(123)", directives[0].Comment)
	assert.Equal(t, 7, directives[1].Line)
	assert.Equal(t, "noop", directives[1].Kind)
}

func TestScanLineEndings(t *testing.T) {
	directives := ScanAll("// @cttt.name(foo)\r\nx\r\n// @cttt.change(bar)\r\n")

	assert.Equal(t, 2, len(directives))
	assert.Equal(t, "foo", directives[0].Argument)
	assert.Equal(t, "// @cttt.name(foo)", directives[0].Comment)
	assert.Equal(t, 3, directives[1].Line)
	assert.Equal(t, "bar", directives[1].Argument)
}

func TestScanTrailingText(t *testing.T) {
	directives := ScanAll("// @cttt.name(foo) keep in sync with docs @cttt.change(bar)")

	assert.Equal(t, 1, len(directives))
	assert.Equal(t, "name", directives[0].Kind)
	assert.Equal(t, "foo", directives[0].Argument)
}

func TestScanColumns(t *testing.T) {
	tests := []struct {
		input  string
		column int
	}{
		{"// @cttt.a(b)", 4},
		{"//@cttt.a(b)", 3},
		{"\t# @cttt.a(b)", 4},
		{"  <!--   @cttt.a(b) -->", 10},
		{"\u3000// @cttt.a(b)", 5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			directives := ScanAll(tt.input)

			assert.Equal(t, 1, len(directives))
			assert.Equal(t, tt.column, directives[0].Column)
		})
	}
}

func TestScanOrderAndDuplicates(t *testing.T) {
	src := testhelper.Lines(t,
		"// @cttt.named(123)",
		"// @cttt.named(2)",
		"x +=1;",
		"// @cttt.change(3,4,5)",
		"// @cttt.change(1)",
		"// @cttt.change(1)",
	)

	directives := ScanAll(src)

	var lines []int
	for _, d := range directives {
		lines = append(lines, d.Line)
	}

	assert.Equal(t, []int{1, 2, 4, 5, 6}, lines)
	assert.True(t, directives[3].Equivalent(directives[4]))
}

func TestScanRoundTrip(t *testing.T) {
	src := testhelper.Lines(t,
		"# @cttt.name(foo)",
		"<!-- @CTTT.change( ./a.md, b ) -->",
		" * @cttt.named-block(x_y)",
	)

	for _, d := range ScanAll(src) {
		again := ScanAll(d.String())

		assert.Equal(t, 1, len(again))
		assert.True(t, d.Equivalent(again[0]))
		assert.Equal(t, d.Args, again[0].Args)
	}
}

func TestScanRoundTripHandBuilt(t *testing.T) {
	tests := []struct {
		name      string
		directive cttt.Directive
	}{
		{"single", cttt.NewDirective("name", "foo", 1, 1, "")},
		{"list", cttt.NewDirective("change", " a , b ", 1, 1, "")},
		{"empty argument", cttt.NewDirective("name", "", 1, 1, "")},
		{"nested parenthesis", cttt.NewDirective("name", "f(x)", 1, 1, "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			again := ScanAll(tt.directive.String())

			if !tt.directive.Valid() {
				assert.Equal(t, 0, len(again))
				return
			}

			assert.Equal(t, 1, len(again))
			assert.True(t, tt.directive.Equivalent(again[0]))
			assert.True(t, again[0].Valid())
		})
	}
}

func TestScanEarlyTermination(t *testing.T) {
	src := strings.Repeat("// @cttt.name(foo)\n", 10)

	count := 0
	for range Scan(src) {
		count++
		if count == 3 {
			break
		}
	}

	assert.Equal(t, 3, count)
}

func TestScanReader(t *testing.T) {
	src := "// @cttt.name(foo)\nlet x = 1;\r\n// @cttt.change(bar)"

	var directives []cttt.Directive
	for d, err := range ScanReader(strings.NewReader(src)) {
		assert.NoError(t, err)
		directives = append(directives, d)
	}

	assert.Equal(t, ScanAll(src), directives)
}

func TestScanByteOrderMark(t *testing.T) {
	src := "\uFEFF// @cttt.name(foo)\n// @cttt.change(bar)"

	tests := []struct {
		name string
		scan func(t *testing.T) []cttt.Directive
	}{
		{
			name: "text",
			scan: func(t *testing.T) []cttt.Directive {
				return ScanAll(src)
			},
		},
		{
			name: "reader",
			scan: func(t *testing.T) []cttt.Directive {
				var directives []cttt.Directive
				for d, err := range ScanReader(strings.NewReader(src)) {
					assert.NoError(t, err)
					directives = append(directives, d)
				}

				return directives
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directives := tt.scan(t)

			assert.Equal(t, 2, len(directives))
			assert.Equal(t, "name", directives[0].Kind)
			assert.Equal(t, "foo", directives[0].Argument)
			assert.Equal(t, 1, directives[0].Line)
			assert.Equal(t, 4, directives[0].Column)
			assert.Equal(t, "// @cttt.name(foo)", directives[0].Comment)
			assert.Equal(t, 2, directives[1].Line)
		})
	}
}

func TestScanByteOrderMarkOnlyAtStart(t *testing.T) {
	directives := ScanAll("// @cttt.name(foo)\n\uFEFF// @cttt.change(bar)")

	assert.Equal(t, 1, len(directives))
	assert.Equal(t, "name", directives[0].Kind)
}

func TestScanReaderError(t *testing.T) {
	errBroken := errors.New("broken")
	reader := io.MultiReader(strings.NewReader("// @cttt.name(foo)\n"), iotest.ErrReader(errBroken))

	var (
		kinds  []string
		gotErr error
	)

	for d, err := range ScanReader(reader) {
		if err != nil {
			gotErr = err
			continue
		}

		kinds = append(kinds, d.Kind)
	}

	assert.Equal(t, []string{"name"}, kinds)
	assert.IsError(t, gotErr, errBroken)
}
