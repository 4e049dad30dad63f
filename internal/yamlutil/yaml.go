// Package yamlutil is the module's single entry into YAML parsing. It
// exists so the two hand-written YAML artifacts, style specifications and
// CLI config files, are parsed the same way everywhere: strictly, with a
// size cap, and with errors that name the artifact being parsed.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps YAML input. Specs and config files are small
// hand-written documents; anything near this size is the wrong file.
const MaxInputSize = 256 << 10

var (
	ErrEmptyInput     = errors.New("yamlutil: empty input")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// UnmarshalStrict parses data into v, rejecting unknown fields. Specs and
// configs are written by hand, so an unknown key is almost always a typo.
// what names the artifact ("style spec", "config file") and appears in
// every error, sparing callers a second wrap for context.
func UnmarshalStrict(what string, data []byte, v any) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyInput, what)
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %s is %d bytes (max %d)",
			ErrInputTooLarge, what, len(data), MaxInputSize)
	}
	if v == nil {
		return fmt.Errorf("%w: %s", ErrNilDestination, what)
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("parsing %s: %w", what, err)
	}
	return nil
}
