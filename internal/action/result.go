// Package action is the boundary between transports and the usecases. Every operation
// returns a Result that serialises to {"success": true, "<key>": data} or
// {"success": false, "error": message} and never carries a raw error.
package action

import (
	"encoding/json"
	"net/http"
)

// Result is the outcome of one action.
type Result[T any] struct {
	success bool
	key     string
	data    T
	message string
	code    string
	status  int
}

// Ok is a successful result carrying data under key. An empty key omits the payload.
func Ok[T any](key string, data T) Result[T] {
	return Result[T]{success: true, key: key, data: data, status: http.StatusOK}
}

// Created is Ok with a 201 status.
func Created[T any](key string, data T) Result[T] {
	result := Ok(key, data)
	result.status = http.StatusCreated

	return result
}

// Err is a failed result with a user-facing message.
func Err[T any](status int, code, message string) Result[T] {
	return Result[T]{status: status, code: code, message: message}
}

// Success reports whether the action succeeded.
func (r Result[T]) Success() bool {
	return r.success
}

// Key is the payload key of a successful result.
func (r Result[T]) Key() string {
	return r.key
}

// Data is the payload of a successful result.
func (r Result[T]) Data() T {
	return r.data
}

// Message is the user-facing failure message.
func (r Result[T]) Message() string {
	return r.message
}

// Code is the error kind of a failed result, e.g. "NOT_FOUND".
func (r Result[T]) Code() string {
	return r.code
}

// Status is the HTTP status matching the outcome.
func (r Result[T]) Status() int {
	if r.status == 0 {
		if r.success {
			return http.StatusOK
		}

		return http.StatusInternalServerError
	}

	return r.status
}

// MarshalJSON writes the uniform success/failure envelope.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	body := map[string]any{"success": r.success}
	if r.success {
		if r.key != "" {
			body[r.key] = r.data
		}
	} else {
		body["error"] = r.message
	}

	return json.Marshal(body)
}
