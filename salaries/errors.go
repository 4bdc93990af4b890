package salaries

import (
	"fmt"

	"hermannm.dev/wrap"
)

// LoadError is returned when the salary spreadsheet is missing, unreadable or does not have the
// expected shape. Fatal to a pipeline run.
type LoadError struct {
	Message string
	Cause   error
}

func newLoadError(cause error, message string) *LoadError {
	return &LoadError{Message: message, Cause: cause}
}

func newLoadErrorf(cause error, format string, args ...any) *LoadError {
	return &LoadError{Message: fmt.Sprintf(format, args...), Cause: cause}
}

func (err *LoadError) Error() string {
	if err.Cause == nil {
		return err.Message
	}
	return wrap.Error(err.Cause, err.Message).Error()
}

func (err *LoadError) Unwrap() error {
	return err.Cause
}

// DataError is returned when a cell that must be numeric is blank or not a number. Fatal to a
// pipeline run; no value is ever substituted.
type DataError struct {
	Column    string
	RowNumber int
	Value     string
	Cause     error
}

func (err *DataError) Error() string {
	message := fmt.Sprintf(
		"invalid value '%s' for column '%s' in row %d", err.Value, err.Column, err.RowNumber,
	)
	if err.Cause == nil {
		return message
	}
	return wrap.Error(err.Cause, message).Error()
}

func (err *DataError) Unwrap() error {
	return err.Cause
}
