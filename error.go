package webstring

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL       = "internal"
	EINVALID        = "invalid"
	ENOTFOUND       = "not_found"
	ENOTIMPLEMENTED = "not_implemented"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("webstring error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return EINVALID
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	return "Internal error"
}

// ValidationError is returned by Compare when the receiver's value is not
// well-formed for its format.
type ValidationError struct {
	Format Format
	Value  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("value must be of %s format: %q", e.Format, e.Value)
}

// XPathSyntaxError is returned by an XPathCompiler when the expression does
// not parse. It is the only compiler error that marks an expression invalid.
type XPathSyntaxError struct {
	Expr string
	Err  error
}

func (e *XPathSyntaxError) Error() string {
	return fmt.Sprintf("xpath syntax error in %q: %v", e.Expr, e.Err)
}

func (e *XPathSyntaxError) Unwrap() error { return e.Err }

// CompilerFault wraps any XPathCompiler failure other than a syntax error.
type CompilerFault struct {
	Expr string
	Err  error
}

func (e *CompilerFault) Error() string {
	return fmt.Sprintf("xpath compiler fault for %q: %v", e.Expr, e.Err)
}

func (e *CompilerFault) Unwrap() error { return e.Err }
