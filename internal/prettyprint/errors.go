package prettyprint

import "fmt"

// PropertyAccessError is returned when the printed value itself misbehaves
// during property enumeration or inside a by-pass hook (the Go analog of a
// throwing getter). The whole stringification is aborted: there is no
// partial output.
type PropertyAccessError struct {
	cause error
}

func (e *PropertyAccessError) Error() string {
	return fmt.Sprintf("pretty print: property access failed: %s", e.cause)
}

func (e *PropertyAccessError) Unwrap() error { return e.cause }

// ConfigurationError reports an invalid policy; it is only ever returned by
// NewPrinter, never by a stringify call.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string {
	return "pretty print: invalid configuration: " + e.msg
}

func configErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{msg: fmt.Sprintf(format, args...)}
}
