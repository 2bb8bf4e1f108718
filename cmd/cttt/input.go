package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shibukawa/cttt"
	"github.com/shibukawa/cttt/filter"
	"github.com/shibukawa/cttt/parser"
)

const stdinName = "<stdin>"

// fileDirectives holds the directives of one input
type fileDirectives struct {
	Path       string           `json:"path" yaml:"path"`
	Directives []cttt.Directive `json:"directives" yaml:"directives"`
}

// loadConfig loads the configuration and compiles its filter expression.
// The filter is nil when the configuration has none.
func (ctx *Context) loadConfig() (*cttt.Config, *filter.Filter, error) {
	config, err := cttt.LoadConfig(ctx.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	var selector *filter.Filter

	if config.Filter != "" {
		selector, err = filter.Compile(config.Filter)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w: filter: %w", cttt.ErrConfigValidation, err)
		}
	}

	ctx.verbosef("Allowed kinds: %v", config.AllowedKinds)

	return config, selector, nil
}

// allowedKinds prefers kinds given on the command line over the configuration
func allowedKinds(flag []string, config *cttt.Config) cttt.KindSet {
	if len(flag) > 0 {
		return cttt.NewKindSet(flag...)
	}

	return config.KindSet()
}

// collect scans stdin when paths is empty, otherwise every file and directory
// in paths. Files that fail to scan are reported and skipped; the returned
// error then wraps ErrScanFailed alongside the successful results.
func (ctx *Context) collect(paths []string, config *cttt.Config) ([]fileDirectives, error) {
	if len(paths) == 0 {
		directives, err := parser.ParseReader(ctx.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}

		return []fileDirectives{{Path: stdinName, Directives: directives}}, nil
	}

	var (
		results   []fileDirectives
		hasErrors bool
	)

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to stat input: %w", err)
		}

		// Explicit files bypass the extension filter
		if !info.IsDir() {
			result, err := scanFile(root)
			if err != nil {
				return nil, err
			}

			results = append(results, result)

			continue
		}

		err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if path != root && config.Excludes(path) {
					ctx.verbosef("Skipping directory: %s", path)
					return filepath.SkipDir
				}

				return nil
			}

			if !config.Accepts(path) {
				return nil
			}

			result, err := scanFile(path)
			if err != nil {
				ctx.errorf("Error scanning %s: %v", path, err)

				hasErrors = true
				// Continue processing other files
				return nil
			}

			ctx.verbosef("Scanned %s: %d directive(s)", path, len(result.Directives))
			results = append(results, result)

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk directory %s: %w", root, err)
		}
	}

	if hasErrors {
		return results, ErrScanFailed
	}

	return results, nil
}

// scanFile reads the directives of a single file
func scanFile(path string) (fileDirectives, error) {
	file, err := os.Open(path)
	if err != nil {
		return fileDirectives{}, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	directives, err := parser.ParseReader(file)
	if err != nil {
		return fileDirectives{}, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return fileDirectives{Path: path, Directives: directives}, nil
}

// violation is one disallowed directive together with its file
type violation struct {
	Path    string `json:"path" yaml:"path"`
	Kind    string `json:"kind" yaml:"kind"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Comment string `json:"comment" yaml:"comment"`
}

func (v violation) String() string {
	return fmt.Sprintf("%s:%d:%d: disallowed directive kind %q", v.Path, v.Line, v.Column, v.Kind)
}

// findViolations validates every file against allowed, in input order
func findViolations(results []fileDirectives, allowed cttt.KindSet) []violation {
	violations := []violation{}

	for _, result := range results {
		for _, e := range cttt.DisallowedKinds(parser.Validate(result.Directives, allowed)) {
			violations = append(violations, violation{
				Path:    result.Path,
				Kind:    e.Kind,
				Line:    e.Line,
				Column:  e.Column,
				Comment: e.Comment,
			})
		}
	}

	return violations
}
