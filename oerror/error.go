package oerror

import "fmt"

// RecordsError is a defect raised through a panic when an invariant of the mod is broken.
type RecordsError struct {
	Err string
}

// New returns a RecordsError with the message formatted using fmt.Sprintf.
func New(format string, args ...interface{}) *RecordsError {
	if len(args) == 0 {
		return &RecordsError{Err: format}
	}
	return &RecordsError{Err: fmt.Sprintf(format, args...)}
}

func (e *RecordsError) Error() string {
	return e.Err
}

// NotImplemented is raised by code paths that exist but have no body yet.
type NotImplemented struct {
	What string
}

func (e *NotImplemented) Error() string {
	return "not implemented: " + e.What
}
