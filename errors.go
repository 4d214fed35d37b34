package cratesio

import (
	"errors"
	"fmt"
)

//region StringError
// StringError this type is just like `errors.New` but it may be declared as `const`
type StringError string

func (this StringError) Error() string { return string(this) }

const (
	ErrInvalidArgument StringError = "One or more invalid argument passed to the function"
	ErrOverflow        StringError = "Result does not fit in an int"
	ErrUnknownPolicy   StringError = "Unknown overflow policy"
)

//endregion

//region OperationError
// OperationError indicate that an operation failed for a particular input
type OperationError struct {
	Operation string
	Input     interface{}
	Failure   error
}

func (this OperationError) Error() string {
	return fmt.Sprintf("%s(%v) failed: %v", this.Operation, this.Input, this.Failure)
}
func (this OperationError) Is(err error) bool {
	return errors.Is(this.Failure, err)
}
func (this OperationError) As(target interface{}) bool {
	return errors.As(this.Failure, target)
}
func (this OperationError) Unwrap() error {
	return this.Failure
}

//endregion

//region AggregateError
type AggregateErrorBuilder struct {
	Errors AggregateError
}

func (this *AggregateErrorBuilder) AddError(err error) {
	if err != nil {
		this.Errors = append(this.Errors, err)
	}
}
func (this *AggregateErrorBuilder) GetError() error {
	if len(this.Errors) == 0 {
		return nil
	}
	if len(this.Errors) == 1 {
		return this.Errors[0]
	}
	return this.Errors
}

// AggregateError a list of failures reported as one error, e.g. by Incrementer.AddOneAll
type AggregateError []error

func (this AggregateError) Error() string {
	if len(this) == 0 {
		return ""
	}
	if len(this) == 1 {
		return this[0].Error()
	}

	return fmt.Sprintf("%d operations failed, first: %v", len(this), this[0])
}
func (this AggregateError) Is(err error) bool {
	for i := 0; i < len(this); i++ {
		if errors.Is(this[i], err) {
			return true
		}
	}
	return false
}
func (this AggregateError) As(target interface{}) bool {
	for i := 0; i < len(this); i++ {
		if errors.As(this[i], target) {
			return true
		}
	}
	return false
}

//endregion
