package helpers

import (
	"github.com/ztrue/tracerr"
)

// Error carries one or more stack-traced errors. The zero value (NilError)
// means no error, so it can be returned by value like a plain error.
type Error struct {
	errs []tracerr.Error
}

var NilError = Error{nil}

func IsNil(err error) bool {
	if traceableErr, ok := err.(Error); ok {
		return traceableErr.First() == nil
	}
	if traceableErr, ok := err.(*Error); ok {
		return traceableErr == nil || traceableErr.First() == nil
	}
	return err == nil
}

func (e Error) HasError() bool {
	return !IsNil(e)
}

func (e Error) Error() string {
	result := ""
	for i, err := range e.errs {
		if i > 0 {
			result += "\n"
		}
		result += err.Error()
	}
	return result
}

// String includes the stack of every wrapped error, with source lines.
func (e Error) String() string {
	result := ""
	for _, err := range e.errs {
		result += "-------------------------------------------------------------------------------\n"
		result += Indent(tracerr.SprintSourceColor(err, 2), "  ") + "\n"
	}
	return result
}

func (e Error) Unwrap() []error {
	return MapSlice(e.errs, func(err tracerr.Error) error { return err })
}

func (e Error) First() tracerr.Error {
	if len(e.errs) == 0 {
		return nil
	}
	return e.errs[0]
}

func (e Error) NumErrors() int {
	return len(e.errs)
}

func Wrap(err error) Error {
	if IsNil(err) {
		return NilError
	}
	if traceableErr, ok := err.(Error); ok {
		return traceableErr
	}
	return Error{[]tracerr.Error{tracerr.Wrap(err)}}
}

func Join(others ...Error) Error {
	others = FilterSlice(others, func(err Error) bool {
		return !IsNil(err)
	})
	if len(others) == 0 {
		return NilError
	} else if len(others) == 1 {
		return others[0]
	}

	result := Error{}
	for _, o := range others {
		result.errs = append(result.errs, o.errs...)
	}
	return result
}

func Errorf(format string, args ...interface{}) Error {
	return Error{[]tracerr.Error{tracerr.Errorf(format, args...)}}
}
