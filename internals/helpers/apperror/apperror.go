// file: internals/helpers/apperror/apperror.go
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Code membedakan kelas error untuk mapping HTTP di controller.
type Code string

const (
	CodeInvalidArgument   Code = "INVALID_ARGUMENT"
	CodeNotFound          Code = "NOT_FOUND"
	CodeConflict          Code = "CONFLICT"
	CodeInvalidTransition Code = "INVALID_TRANSITION"
	CodeInternal          Code = "INTERNAL"
)

type AppError struct {
	Code    Code
	Message string
}

func (e *AppError) Error() string { return e.Message }

func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func InvalidArgument(message string) *AppError { return New(CodeInvalidArgument, message) }
func NotFound(message string) *AppError        { return New(CodeNotFound, message) }
func Conflict(message string) *AppError        { return New(CodeConflict, message) }
func InvalidTransition(message string) *AppError {
	return New(CodeInvalidTransition, message)
}

// CodeOf mengembalikan Code dari error (CodeInternal kalau bukan AppError).
func CodeOf(err error) Code {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}

// HTTPStatus memetakan Code ke status HTTP.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeInvalidTransition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
