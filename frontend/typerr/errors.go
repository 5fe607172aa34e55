package typerr

import (
	"fmt"
)

type NewArityConflict struct {
	Name     string
	Existing int
	Given    int
	stack    []byte
}

func (e NewArityConflict) Code() ErrCode { return ArityConflict }
func (e NewArityConflict) Error() string {
	return fmt.Sprintf("type constructor '%s' is already registered with arity %d, cannot re-register with arity %d", e.Name, e.Existing, e.Given)
}
func (e NewArityConflict) getStack() []byte { return e.stack }
func (e NewArityConflict) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

type NewUnknownConstructor struct {
	Name  string
	stack []byte
}

func (e NewUnknownConstructor) Code() ErrCode { return UnknownConstructor }
func (e NewUnknownConstructor) Error() string {
	return fmt.Sprintf("type constructor '%s' is not registered", e.Name)
}
func (e NewUnknownConstructor) getStack() []byte { return e.stack }
func (e NewUnknownConstructor) withStack(stack []byte) Error {
	e.stack = stack
	return e
}

type NewMalformedTree struct {
	Tree   fmt.Stringer
	Reason string
	stack  []byte
}

func (e NewMalformedTree) Code() ErrCode { return MalformedTree }
func (e NewMalformedTree) Error() string {
	return fmt.Sprintf("malformed type tree %v: %s", e.Tree, e.Reason)
}
func (e NewMalformedTree) getStack() []byte { return e.stack }
func (e NewMalformedTree) withStack(stack []byte) Error {
	e.stack = stack
	return e
}
