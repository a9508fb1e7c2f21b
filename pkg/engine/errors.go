package engine

import (
	"errors"
	"fmt"
)

// ErrorClass groups errors by the stage of a run that produced them.
type ErrorClass string

const (
	// ErrorClassInput covers problems reading or parsing the platform.
	ErrorClassInput ErrorClass = "input"

	// ErrorClassSimulation covers failures of the cycle search or fast-forward.
	ErrorClassSimulation ErrorClass = "simulation"

	// ErrorClassConfig covers invalid configuration.
	ErrorClassConfig ErrorClass = "config"
)

// Error codes.
const (
	ErrCodeSourceNotFound        = "SOURCE_NOT_FOUND"
	ErrCodeMalformedInput        = "MALFORMED_INPUT"
	ErrCodeDegeneratePeriod      = "DEGENERATE_PERIOD"
	ErrCodeNoPeriodFound         = "NO_PERIOD_FOUND"
	ErrCodeTargetBeforeDetection = "TARGET_BEFORE_DETECTION"
	ErrCodeInvalidConfig         = "INVALID_CONFIG"
)

// Sentinels for errors.Is. They match any EngineError with the same class and code.
var (
	ErrSourceNotFound        = &EngineError{Class: ErrorClassInput, Code: ErrCodeSourceNotFound, Message: "input source not found"}
	ErrMalformedInput        = &EngineError{Class: ErrorClassInput, Code: ErrCodeMalformedInput, Message: "malformed input"}
	ErrDegeneratePeriod      = &EngineError{Class: ErrorClassSimulation, Code: ErrCodeDegeneratePeriod, Message: "detected period is not positive"}
	ErrNoPeriodFound         = &EngineError{Class: ErrorClassSimulation, Code: ErrCodeNoPeriodFound, Message: "no repeated state found"}
	ErrTargetBeforeDetection = &EngineError{Class: ErrorClassSimulation, Code: ErrCodeTargetBeforeDetection, Message: "target cycle precedes detection"}
	ErrInvalidConfig         = &EngineError{Class: ErrorClassConfig, Code: ErrCodeInvalidConfig, Message: "invalid configuration"}
)

// EngineError is a classified error. None of them are retryable: every
// EngineError ends the run.
// nolint:revive // EngineError is intentionally named to distinguish from standard errors
type EngineError struct {
	// Class is the error classification.
	Class ErrorClass `json:"class"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Code identifies the error for programmatic handling.
	Code string `json:"code,omitempty"`

	// Source is the input path involved, if any.
	Source string `json:"source,omitempty"`

	// Err is the underlying error that caused this error.
	Err error `json:"-"`

	// Details contains additional context-specific information.
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Class, e.Message)
	if e.Source != "" {
		msg = fmt.Sprintf("%s (source=%s)", msg, e.Source)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err.Error())
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection.
func (e *EngineError) Unwrap() error {
	return e.Err
}

// Is implements error equality checking for errors.Is.
func (e *EngineError) Is(target error) bool {
	t, ok := target.(*EngineError)
	if !ok {
		return false
	}
	return e.Class == t.Class && e.Code == t.Code
}

func newError(sentinel *EngineError, message string, err error) *EngineError {
	return &EngineError{
		Class:   sentinel.Class,
		Code:    sentinel.Code,
		Message: message,
		Err:     err,
	}
}

// NewSourceNotFoundError reports an input that could not be opened.
func NewSourceNotFoundError(path string, err error) *EngineError {
	return newError(ErrSourceNotFound, fmt.Sprintf("'%s' not found", path), err).WithSource(path)
}

// NewMalformedInputError reports input text that is not a valid grid.
func NewMalformedInputError(path string, err error) *EngineError {
	return newError(ErrMalformedInput, "malformed grid", err).WithSource(path)
}

// NewSimulationError creates a simulation-class error with the sentinel's code.
func NewSimulationError(sentinel *EngineError, message string) *EngineError {
	return newError(sentinel, message, nil)
}

// NewConfigError reports a configuration that failed to load or validate.
func NewConfigError(message string, err error) *EngineError {
	return newError(ErrInvalidConfig, message, err)
}

// WithSource records the input path involved.
func (e *EngineError) WithSource(path string) *EngineError {
	e.Source = path
	return e
}

// WithDetail adds a detail field to the error context.
func (e *EngineError) WithDetail(key string, value interface{}) *EngineError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ClassOf returns the class of the first EngineError in err's chain, or ""
// if there is none.
func ClassOf(err error) ErrorClass {
	var e *EngineError
	if errors.As(err, &e) {
		return e.Class
	}
	return ""
}

// CodeOf returns the code of the first EngineError in err's chain, or ""
// if there is none.
func CodeOf(err error) string {
	var e *EngineError
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
