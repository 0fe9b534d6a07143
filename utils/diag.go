package utils

import "fmt"

// Warning is a non-fatal diagnostic: something didn't go as expected, the
// run continues, and the condition is reported. Fatal conditions travel as
// ordinary error values instead, so callers distinguish only "stop now"
// from "note and proceed".
type Warning struct {
	Op      string
	Message string
}

// Warnf builds a Warning attributed to the named operation.
func Warnf(op, format string, args ...interface{}) Warning {
	return Warning{Op: op, Message: fmt.Sprintf(format, args...)}
}

// String formats the warning for the console.
func (w Warning) String() string {
	return fmt.Sprintf("Warning: [%s] %s", w.Op, w.Message)
}
