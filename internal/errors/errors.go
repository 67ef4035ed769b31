package errors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type ErrorType string

const (
	ErrTypeNoInput      ErrorType = "NO_INPUT"
	ErrTypeInvalidInput ErrorType = "INVALID_INPUT"
	ErrTypeStorage      ErrorType = "STORAGE"
	ErrTypeInternal     ErrorType = "INTERNAL"
)

// PipelineError is a typed error for run-level failures. Per-record parsing
// problems never surface as errors; they resolve to null fields or dropped
// records counted in the run report.
type PipelineError struct {
	Type    ErrorType
	Message string
	Err     error
	Stack   []byte
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func (e *PipelineError) StackTrace() []byte {
	return e.Stack
}

func New(errType ErrorType, message string, err error) *PipelineError {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &PipelineError{
		Type:    errType,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func NoInput(message string, err error) *PipelineError {
	return New(ErrTypeNoInput, message, err)
}

func InvalidInput(message string, err error) *PipelineError {
	return New(ErrTypeInvalidInput, message, err)
}

func Storage(message string, err error) *PipelineError {
	return New(ErrTypeStorage, message, err)
}

func Internal(message string, err error) *PipelineError {
	return New(ErrTypeInternal, message, err)
}

// IsType reports whether err is a PipelineError of the given type.
func IsType(err error, t ErrorType) bool {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Type == t
	}
	return false
}
