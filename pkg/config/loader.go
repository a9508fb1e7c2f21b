package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/parabolic/parabolic/pkg/engine"
)

// Loader reads configuration files in YAML or CUE form.
type Loader struct {
	schemas   *SchemaRegistry
	cueParser *CUEParser
	validator *validator.Validate
}

// NewLoader creates a loader with the built-in schemas.
func NewLoader() *Loader {
	schemas := NewSchemaRegistry()
	return &Loader{
		schemas:   schemas,
		cueParser: NewCUEParser(schemas),
		validator: validator.New(),
	}
}

// Load reads the configuration at path over Default(). An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	return NewLoader().Load(path)
}

// Load reads the configuration at path over Default(). An empty path
// returns the defaults.
func (l *Loader) Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, engine.NewConfigError(fmt.Sprintf("failed to read config '%s'", path), err).WithSource(path)
	}

	return l.LoadBytes(path, content)
}

// LoadBytes decodes content over Default(). The format is chosen by the
// extension of filename: .yaml and .yml are YAML, .cue and .json are CUE.
func (l *Loader) LoadBytes(filename string, content []byte) (*Config, error) {
	cfg := Default()

	var verrs []ValidationError
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		verrs = decodeYAML(filename, content, cfg)
	case ".cue", ".json":
		verrs = l.cueParser.Parse(filename, content, cfg)
	default:
		return nil, engine.NewConfigError(fmt.Sprintf("unsupported config format %q", ext), nil).WithSource(filename)
	}

	if len(verrs) == 0 {
		verrs = l.validate(cfg)
	}
	if len(verrs) > 0 {
		return nil, newValidationError(filename, verrs)
	}

	return cfg, nil
}

// Validate checks cfg against the struct rules and the CUE schema.
func (l *Loader) Validate(cfg *Config) error {
	if verrs := l.validate(cfg); len(verrs) > 0 {
		return newValidationError("", verrs)
	}
	return nil
}

func (l *Loader) validate(cfg *Config) []ValidationError {
	var verrs []ValidationError

	if err := l.validator.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return []ValidationError{{Message: err.Error()}}
		}
		for _, fe := range fieldErrs {
			msg := fmt.Sprintf("failed '%s' rule", fe.Tag())
			if fe.Param() != "" {
				msg = fmt.Sprintf("failed '%s=%s' rule", fe.Tag(), fe.Param())
			}
			verrs = append(verrs, ValidationError{
				Path:    fe.Namespace(),
				Message: fmt.Sprintf("%s: got %v", msg, fe.Value()),
			})
		}
		return verrs
	}

	if err := l.schemas.ValidateAgainstSchema("config", cfg); err != nil {
		return l.cueParser.convertCUEErrors(err)
	}

	return nil
}

func decodeYAML(filename string, content []byte, cfg *Config) []ValidationError {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		verr := ValidationError{File: filename, Message: err.Error()}
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			verr.Message = strings.Join(typeErr.Errors, "; ")
		}
		return []ValidationError{verr}
	}
	return nil
}

func newValidationError(filename string, verrs []ValidationError) *engine.EngineError {
	msgs := make([]string, len(verrs))
	for i, v := range verrs {
		switch {
		case v.Path != "":
			msgs[i] = fmt.Sprintf("%s: %s", v.Path, v.Message)
		case v.Line > 0:
			msgs[i] = fmt.Sprintf("%s:%d:%d: %s", v.File, v.Line, v.Column, v.Message)
		default:
			msgs[i] = v.Message
		}
	}

	err := engine.NewConfigError("config validation failed: "+strings.Join(msgs, "; "), nil).
		WithDetail("errors", verrs)
	if filename != "" {
		err = err.WithSource(filename)
	}
	return err
}
