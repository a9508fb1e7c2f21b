package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
)

// CUEParser decodes CUE configuration files against the #Config schema.
type CUEParser struct {
	schemas *SchemaRegistry
}

// NewCUEParser creates a CUE parser backed by the given schema registry.
func NewCUEParser(schemas *SchemaRegistry) *CUEParser {
	return &CUEParser{schemas: schemas}
}

// Parse compiles content, unifies it with the config schema and decodes
// the fields it sets into cfg. Fields the file leaves out keep their
// current values.
func (cp *CUEParser) Parse(filename string, content []byte, cfg *Config) []ValidationError {
	val := cp.schemas.Compile(filename, content)
	if err := val.Err(); err != nil {
		return cp.convertCUEErrors(err)
	}

	unified, err := cp.schemas.Unify("config", val)
	if err != nil {
		return cp.convertCUEErrors(err)
	}

	if err := decodeInto(unified, cfg); err != nil {
		return []ValidationError{{File: filename, Message: err.Error()}}
	}
	return nil
}

// decodeInto overlays the concrete fields of val onto cfg.
func decodeInto(val cue.Value, cfg *Config) error {
	data, err := val.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to export config: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

// convertCUEErrors converts CUE errors to ValidationError slice.
func (cp *CUEParser) convertCUEErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	for _, e := range errors.Errors(err) {
		var file string
		var line, column int

		if pos := errors.Positions(e); len(pos) > 0 {
			file = pos[0].Filename()
			line = pos[0].Line()
			column = pos[0].Column()
		}

		validationErrors = append(validationErrors, ValidationError{
			File:    file,
			Line:    line,
			Column:  column,
			Path:    strings.Join(e.Path(), "."),
			Message: errors.Details(e, nil),
		})
	}

	return validationErrors
}
