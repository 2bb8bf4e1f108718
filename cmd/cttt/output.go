package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/shibukawa/cttt"
)

// resolveFormat prefers the command line format over the configured one
func resolveFormat(flag string, config *cttt.Config) (string, error) {
	format := flag
	if format == "" {
		format = config.Output.Format
	}

	switch format {
	case cttt.FormatText, cttt.FormatJSON, cttt.FormatYAML:
		return format, nil
	}

	return "", fmt.Errorf("%w %q: must be one of text, json, yaml", cttt.ErrUnknownFormat, format)
}

// writeStructured writes value as JSON or YAML
func writeStructured(w io.Writer, format string, value any) error {
	switch format {
	case cttt.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}

		return nil
	case cttt.FormatYAML:
		data, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}

		_, err = w.Write(data)

		return err
	}

	return fmt.Errorf("%w %q", cttt.ErrUnknownFormat, format)
}

func writeDirectivesText(w io.Writer, results []fileDirectives) {
	for _, result := range results {
		for _, d := range result.Directives {
			fmt.Fprintf(w, "%s:%d:%d: %s(%s)\n", result.Path, d.Line, d.Column, successColor.Sprint(d.Kind), d.Argument)
		}
	}
}
