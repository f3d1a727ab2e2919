package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure independently of its transport code.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindNotAvailable Kind = "not_available"
	KindConflict     Kind = "conflict"
	KindQuery        Kind = "query"
	KindPersistence  Kind = "persistence"
	KindRateLimited  Kind = "rate_limited"
	KindUnavailable  Kind = "unavailable"
	KindInternal     Kind = "internal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"-"`
	Kind    Kind   `json:"kind"`
	Field   string `json:"field,omitempty"`
	Entity  string `json:"entity,omitempty"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
	cause   error
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Field: "page", Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Field: "limit", Message: "invalid limit parameter"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the storage error a query or persistence failure was built from.
func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindValidation,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// Validation reports malformed or out-of-range input on a single field.
func Validation(field, reason string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Field:   field,
		Message: fmt.Sprintf("%s: %s", field, reason),
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entity, id string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Entity:  entity,
		ID:      id,
		Message: fmt.Sprintf("%s %s not found", entity, id),
	}
}

// NotAvailable is returned when a room is flagged unavailable at booking time.
func NotAvailable(roomID string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindNotAvailable,
		Entity:  "room",
		ID:      roomID,
		Message: fmt.Sprintf("room %s is not available", roomID),
	}
}

// Conflict reports a request that collides with one still in flight.
func Conflict(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: msg,
	}
}

// Query wraps a failed read against storage.
func Query(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Code:    http.StatusInternalServerError,
		Kind:    KindQuery,
		Message: "query failed",
		cause:   err,
	}
}

// Persistence wraps a failed write against storage.
func Persistence(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Code:    http.StatusInternalServerError,
		Kind:    KindPersistence,
		Message: "persistence failed",
		cause:   err,
	}
}

// PersistenceFromString reports a write that cannot proceed without a storage error to wrap.
func PersistenceFromString(msg string) error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Kind:    KindPersistence,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the kind of an error interface, KindInternal for foreign errors.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// IsKind reports whether err is a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	return GetKind(err) == kind
}

// From returns err as a Failure, converting foreign errors to internal ones.
func From(err error) *Failure {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail
	}

	return &Failure{
		Code:    http.StatusInternalServerError,
		Kind:    KindInternal,
		Message: "internal error",
		cause:   err,
	}
}
