package shader

import (
	"errors"
	"fmt"
)

// ErrNoInfoLog is returned when compilation fails and the driver reports an
// empty info log. This almost always means no context is current on the
// calling thread.
var ErrNoInfoLog = errors.New("compilation failed with no log: the OpenGL context might have been created on another thread, or not have been created")

// ErrAttributeNotFound is returned by LookupAttribute when the program has no
// active attribute with the requested name.
var ErrAttributeNotFound = errors.New("attribute not found")

// CompileError carries the driver's info log for a failed compilation.
// Error returns the log text unchanged. Log is empty when the driver reports
// a log that holds nothing but its terminator.
type CompileError struct {
	Kind Kind
	Log  string
}

func (e *CompileError) Error() string {
	return e.Log
}

// DriverError reports a non-zero driver error flag. Pending is set when the
// flag was already raised before the query was issued.
type DriverError struct {
	Code    uint32
	Pending bool
}

func (e *DriverError) Error() string {
	if e.Pending {
		return fmt.Sprintf("pending driver error 0x%04X", e.Code)
	}
	return fmt.Sprintf("driver error 0x%04X", e.Code)
}
