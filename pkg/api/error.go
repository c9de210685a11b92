package api

import "net/http"

// Error carries an HTTP status alongside a caller-facing message.
// The recovery middleware maps it onto the response.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

func NewBadRequestError(message string) *Error {
	return &Error{StatusCode: http.StatusBadRequest, Message: message}
}

func NewUnauthorizedError(message string) *Error {
	return &Error{StatusCode: http.StatusUnauthorized, Message: message}
}

func NewInternalServerError(message string) *Error {
	return &Error{StatusCode: http.StatusInternalServerError, Message: message}
}

func NewBadGatewayError(message string) *Error {
	return &Error{StatusCode: http.StatusBadGateway, Message: message}
}
