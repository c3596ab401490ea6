package mines

import "fmt"

// AssertionError is raised (via panic) when a caller breaks a contract the
// parser is supposed to guarantee, such as coordinates outside the grid.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

// ConfigError reports a board parameter outside its allowed range.
type ConfigError struct {
	Field    string
	Value    int
	Min, Max int
}

// [ConfigError] implements [error]
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d", e.Field, e.Min, e.Max)
}

// ParseError reports a player command that could not be understood.
type ParseError struct {
	Input  string
	Reason string
}

// [ParseError] implements [error]
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid command %q: %s", e.Input, e.Reason)
}
