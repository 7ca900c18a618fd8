// Package envelope holds the uniform result shape returned by every repository
// function: {success, data} on success, {success, error{code, message}} on failure.
package envelope

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/2beens/trainsmart/pkg"
)

const (
	CodeNotFound            = "not_found"
	CodeInvalid             = "invalid"
	CodeUnknown             = "unknown"
	CodeUniqueViolation     = pkg.PgCodeUniqueViolation
	CodeForeignKeyViolation = pkg.PgCodeForeignKeyViolation
)

// ErrNotFound is wrapped by the entity specific not-found errors.
var ErrNotFound = errors.New("not found")

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   *Error `json:"error,omitempty"`
	// Message is an optional informational note on success
	Message string `json:"message,omitempty"`
}

// MarshalJSON keeps the two wire shapes apart: {success, data} on success
// (data present even when empty) and {success, error} on failure.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.Success {
		return json.Marshal(struct {
			Success bool   `json:"success"`
			Data    T      `json:"data"`
			Message string `json:"message,omitempty"`
		}{true, r.Data, r.Message})
	}
	return json.Marshal(struct {
		Success bool   `json:"success"`
		Error   *Error `json:"error"`
	}{false, r.Error})
}

func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func OkWithMessage[T any](data T, message string) Result[T] {
	return Result[T]{Success: true, Data: data, Message: message}
}

// Fail normalizes err into an error result. Postgres errors keep their
// SQLSTATE code, missing rows become CodeNotFound, an *Error passes through.
func Fail[T any](err error) Result[T] {
	return Result[T]{Error: Classify(err)}
}

func FailWith[T any](code, message string) Result[T] {
	return Result[T]{Error: &Error{Code: code, Message: message}}
}

func Classify(err error) *Error {
	if err == nil {
		return &Error{Code: CodeUnknown, Message: "unknown error"}
	}

	var envErr *Error
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &envErr):
		return envErr
	case errors.As(err, &pgErr):
		return &Error{Code: pgErr.Code, Message: pgErr.Message}
	case errors.Is(err, ErrNotFound), pkg.IsNoRowsError(err):
		return &Error{Code: CodeNotFound, Message: err.Error()}
	default:
		return &Error{Code: CodeUnknown, Message: err.Error()}
	}
}

// Err returns the failure as an error, nil on success.
func (r Result[T]) Err() error {
	if r.Success {
		return nil
	}
	if r.Error == nil {
		return &Error{Code: CodeUnknown, Message: "unknown error"}
	}
	return r.Error
}

func (r Result[T]) HasCode(code string) bool {
	return !r.Success && r.Error != nil && r.Error.Code == code
}

// HTTPStatus maps the result onto the status code the handlers respond with.
func (r Result[T]) HTTPStatus() int {
	if r.Success {
		return http.StatusOK
	}
	if r.Error == nil {
		return http.StatusInternalServerError
	}
	switch r.Error.Code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalid:
		return http.StatusBadRequest
	case CodeUniqueViolation, CodeForeignKeyViolation:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
