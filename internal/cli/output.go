// Package cli provides structured output helpers.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"gopkg.in/yaml.v3"
)

// IsJSONOutput reports whether --json was requested.
func IsJSONOutput() bool {
	return jsonOutput
}

// IsJSONLOutput reports whether --jsonl was requested.
func IsJSONLOutput() bool {
	return jsonlOutput
}

// IsYAMLOutput reports whether --yaml was requested.
func IsYAMLOutput() bool {
	return yamlOutput
}

// IsStructuredOutput reports whether any machine-readable format was requested.
func IsStructuredOutput() bool {
	return IsJSONOutput() || IsJSONLOutput() || IsYAMLOutput()
}

// WriteOutput encodes v in the requested structured format. In JSONL mode a
// slice is written one element per line.
func WriteOutput(out io.Writer, v any) error {
	switch {
	case IsJSONLOutput():
		return writeJSONL(out, v)
	case IsYAMLOutput():
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

func writeJSONL(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	value := reflect.ValueOf(v)
	if value.Kind() != reflect.Slice {
		return enc.Encode(v)
	}
	for i := 0; i < value.Len(); i++ {
		if err := enc.Encode(value.Index(i).Interface()); err != nil {
			return fmt.Errorf("encode jsonl: %w", err)
		}
	}
	return nil
}
