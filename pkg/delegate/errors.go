package delegate

import "fmt"

// ErrorCode represents the type of error that occurred
type ErrorCode int

const (
	UnknownErrorCode ErrorCode = iota
	ConfigurationErrorCode
	CollisionErrorCode
	SyntaxErrorCode
	ReflectionErrorCode
)

// String returns the string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case ConfigurationErrorCode:
		return "ConfigurationError"
	case CollisionErrorCode:
		return "CollisionError"
	case SyntaxErrorCode:
		return "SyntaxError"
	case ReflectionErrorCode:
		return "ReflectionError"
	default:
		return "UnknownError"
	}
}

// BaseError provides the common implementation shared by all delegate errors
type BaseError struct {
	Code        ErrorCode      // type of error
	Message     string         // error message
	Cause       error          // underlying error cause
	ContextData map[string]any // additional context information
	Hints       []string       // helpful suggestions for fixing the error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorCode returns the error code
func (e *BaseError) ErrorCode() ErrorCode {
	return e.Code
}

// Context returns the error context data
func (e *BaseError) Context() map[string]any {
	if e.ContextData == nil {
		return make(map[string]any)
	}
	return e.ContextData
}

// Suggestions returns helpful suggestions for fixing the error
func (e *BaseError) Suggestions() []string {
	return e.Hints
}

// Unwrap returns the underlying error cause for error chain inspection
func (e *BaseError) Unwrap() error {
	return e.Cause
}

// WithContext adds context data to the error
func (e *BaseError) WithContext(key string, value any) *BaseError {
	if e.ContextData == nil {
		e.ContextData = make(map[string]any)
	}
	e.ContextData[key] = value
	return e
}

// WithSuggestion adds a helpful suggestion for fixing the error
func (e *BaseError) WithSuggestion(suggestion string) *BaseError {
	e.Hints = append(e.Hints, suggestion)
	return e
}

// newError creates a new BaseError with the specified code and message
func newError(code ErrorCode, format string, args ...any) *BaseError {
	return &BaseError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Hints:   make([]string, 0),
	}
}

// wrapError creates a new error that wraps another error
func wrapError(code ErrorCode, cause error, format string, args ...any) *BaseError {
	err := newError(code, format, args...)
	err.Cause = cause
	return err
}

// ConfigurationError reports a merge that was declared incorrectly: the
// wrapper is missing the required collector, the collector carries the
// wrong name, or one of the input signatures is malformed
type ConfigurationError struct {
	*BaseError
	CollectorName string // the collector name the configuration required, if relevant
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{
		BaseError: newError(ConfigurationErrorCode, format, args...),
	}
}

// newMissingCollectorError reports a wrapper without any variadic-keyword parameter
func newMissingCollectorError(collectorName string) *ConfigurationError {
	err := NewConfigurationError("wrapper signature has no variadic-keyword collector named '%s'", collectorName)
	err.CollectorName = collectorName
	err.WithSuggestion(fmt.Sprintf("declare a '**%s' parameter on the wrapper", collectorName))
	return err
}

// newCollectorNameError reports a wrapper collector under the wrong name
func newCollectorNameError(actual, expected string) *ConfigurationError {
	err := NewConfigurationError("wrapper collector is named '%s', configuration requires '%s'", actual, expected)
	err.CollectorName = expected
	err.WithContext("actual", actual)
	err.WithSuggestion(fmt.Sprintf("rename the collector to '%s' or configure CollectorName(%q)", expected, actual))
	return err
}

// newSourceCollectorError reports a source collector the wrapper cannot absorb
func newSourceCollectorError(sourceCollector string) *ConfigurationError {
	err := NewConfigurationError("source declares a variadic-keyword parameter '**%s' but the wrapper accepts none", sourceCollector)
	err.WithContext("source_collector", sourceCollector)
	return err
}

// newInvalidSignatureError reports a signature that violates its own invariants
func newInvalidSignatureError(detail string) *ConfigurationError {
	return &ConfigurationError{
		BaseError: newError(ConfigurationErrorCode, "invalid signature: %s", detail),
	}
}

// CollisionError reports a merged parameter list that would contain two
// parameters with the same name
type CollisionError struct {
	*BaseError
	Name string // the colliding parameter name
}

// NewCollisionError creates a new collision error for the given parameter name
func NewCollisionError(name string) *CollisionError {
	err := &CollisionError{
		BaseError: newError(CollisionErrorCode, "duplicate parameter name '%s' in merged signature", name),
		Name:      name,
	}
	err.WithContext("parameter", name)
	err.WithSuggestion(fmt.Sprintf("add '%s' to the ignore list or rename one of the declarations", name))
	return err
}
