package payway

import (
	"fmt"
	"strings"
)

// Error codes raised before any network activity.
const (
	CodeInvalidAPIKeys        = "INVALID_API_KEYS"
	CodeInvalidAPICredentials = "INVALID_API_CREDENTIALS"
	CodeInvalidPaymentMethod  = "INVALID_PAYMENT_METHOD"
)

// Error is a fatal gateway error: bad credentials, an invalid argument, a
// protocol-level failure or a gateway-side fault. Recoverable per-field
// validation failures are returned as FieldError lists instead and never
// reach this type.
type Error struct {
	// Code is one of the Code* constants for errors raised client-side, or
	// the HTTP status code rendered as a string for transport errors.
	Code string
	// Status is the HTTP status code, 0 for errors raised before a request
	// was issued.
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newStatusError(status int, message string) *Error {
	return &Error{
		Code:    fmt.Sprintf("%d", status),
		Status:  status,
		Message: message,
	}
}

// FieldError is one documented per-field validation failure from the
// gateway. Operations return these as data, not as raised errors, so the
// caller can surface them to an end user.
type FieldError struct {
	FieldName  string `json:"fieldName"`
	Message    string `json:"message"`
	FieldValue string `json:"fieldValue"`
}

func (e FieldError) ToMessage() string {
	return fmt.Sprintf("Field: %s Message: %s Field Value: %s",
		e.FieldName, e.Message, e.FieldValue)
}

// FieldErrors is the full validation error set for one request.
type FieldErrors []FieldError

// ToMessage renders the set as a single readable string.
func (e FieldErrors) ToMessage() string {
	messages := make([]string, len(e))
	for i, err := range e {
		messages[i] = err.ToMessage()
	}
	return strings.Join(messages, " | ")
}

// ServerError is the structured body of a gateway-side internal failure.
type ServerError struct {
	ErrorNumber string `json:"errorNumber"`
	TraceCode   string `json:"traceCode"`
}

func (e ServerError) ToMessage() string {
	return fmt.Sprintf("Error number: %s Trace code: %s", e.ErrorNumber, e.TraceCode)
}
