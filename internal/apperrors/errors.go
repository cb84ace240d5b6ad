// Package apperrors classifies failures so the HTTP layer can pick a status
// and the logs can carry the stack of where the failure was first seen.
package apperrors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
	"go.uber.org/zap"
)

type ErrorType string

const (
	ErrTypeNotFound     ErrorType = "NOT_FOUND"
	ErrTypeInvalidInput ErrorType = "INVALID_INPUT"
	ErrTypeInternal     ErrorType = "INTERNAL"
)

// DomainError is a typed error with the stack captured at construction.
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Stack   []byte
}

func (e *DomainError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
}

func (e *DomainError) Unwrap() error { return e.Err }

func (e *DomainError) StackTrace() []byte { return e.Stack }

// New types err. A stack already carried by err (a go-errors value or an
// inner DomainError) is reused; otherwise the caller's stack is captured.
func New(errType ErrorType, message string, err error) *DomainError {
	stack := StackOf(err)
	if stack == nil {
		var ge *goerrors.Error
		switch {
		case errors.As(err, &ge):
			stack = ge.Stack()
		case err != nil:
			stack = goerrors.Wrap(err, 2).Stack()
		default:
			stack = goerrors.Wrap(message, 2).Stack()
		}
	}
	return &DomainError{Type: errType, Message: message, Err: err, Stack: stack}
}

func NotFound(message string, err error) *DomainError {
	return New(ErrTypeNotFound, message, err)
}

func InvalidInput(message string, err error) *DomainError {
	return New(ErrTypeInvalidInput, message, err)
}

// Internal marks failures that are not the caller's fault (I/O, rendering).
func Internal(message string, err error) *DomainError {
	return New(ErrTypeInternal, message, err)
}

// TypeOf reports the DomainError type in err's chain, or INTERNAL.
func TypeOf(err error) ErrorType {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Type
	}
	return ErrTypeInternal
}

func IsNotFound(err error) bool {
	return err != nil && TypeOf(err) == ErrTypeNotFound
}

// StackOf returns the stack of the outermost DomainError in err's chain.
func StackOf(err error) []byte {
	var de *DomainError
	if errors.As(err, &de) {
		return de.StackTrace()
	}
	return nil
}

// StackField is the "stack" log field for err, or a no-op field when err
// carries no captured stack.
func StackField(err error) zap.Field {
	stack := StackOf(err)
	if len(stack) == 0 {
		return zap.Skip()
	}
	return zap.ByteString("stack", stack)
}
