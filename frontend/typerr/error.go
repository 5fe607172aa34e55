// Package typerr defines the error kinds the type core can produce.
package typerr

import (
	"fmt"
	"github.com/pkg/errors"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = true
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	ArityConflict
	UnknownConstructor
	MalformedTree
)

// Error is implemented by every error kind in this package.
// Errors are values: constructing one does not abort anything, and
// recovery is entirely the caller's responsibility.
type Error interface {
	Error() string
	Code() ErrCode

	withStack([]byte) Error
	getStack() []byte
}

func FormatWithCode(e Error) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E Error](err E) Error {
	return err.withStack(debug.Stack())
}

// CodeOf returns the code of err when it is (or wraps) a typerr.Error,
// and None otherwise
func CodeOf(err error) ErrCode {
	if typed, ok := errors.Cause(err).(Error); ok {
		return typed.Code()
	}
	return None
}
