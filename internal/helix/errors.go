package helix

import "fmt"

// ParseError reports a theme that could not be read or is not well-formed TOML.
type ParseError struct {
	// Path is the theme file, empty when parsing in-memory data.
	Path string
	// Op is "read" or "parse".
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	op := e.Op
	if op == "" {
		op = "parse"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s theme %s: %v", op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s theme: %v", op, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
