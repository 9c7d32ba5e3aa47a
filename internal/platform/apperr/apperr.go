// Package apperr defines the error taxonomy shared by repositories, services
// and handlers: validation failures, missing records, authentication failures
// and storage failures. Handlers translate these into HTTP status codes.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError indicates that the target record, or a record referenced by
// the request, does not exist.
type NotFoundError struct {
	// Entity is the human-readable entity name, e.g. "paciente".
	Entity string
	// Ref is the identifier that failed to resolve, when known.
	Ref string
}

func (e *NotFoundError) Error() string {
	if e.Ref != "" {
		return fmt.Sprintf("%s %s no encontrado", e.Entity, e.Ref)
	}
	return fmt.Sprintf("%s no encontrado", e.Entity)
}

// NotFound builds a NotFoundError for the given entity and optional reference.
func NotFound(entity string, ref ...string) *NotFoundError {
	e := &NotFoundError{Entity: entity}
	if len(ref) > 0 {
		e.Ref = ref[0]
	}
	return e
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ValidationError carries the itemized list of input problems for a request.
type ValidationError struct {
	Errores []string
}

func (e *ValidationError) Error() string {
	return "validación fallida: " + strings.Join(e.Errores, ", ")
}

// Validation builds a ValidationError from one or more messages.
func Validation(errores ...string) *ValidationError {
	return &ValidationError{Errores: errores}
}

// AsValidation extracts a wrapped ValidationError, if any.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// AuthError indicates a failed authentication step. Codigo is the stable
// machine-readable code surfaced in the response envelope, e.g.
// "ContraseñaIncorrecta".
type AuthError struct {
	Codigo  string
	Mensaje string
	// Status is the HTTP status this auth failure maps to (401 or 403).
	Status int
}

func (e *AuthError) Error() string { return e.Mensaje }

// AsAuth extracts a wrapped AuthError, if any.
func AsAuth(err error) (*AuthError, bool) {
	var ae *AuthError
	ok := errors.As(err, &ae)
	return ae, ok
}

// StorageError wraps an underlying driver or statement failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError for the given operation. Returns nil
// when err is nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// AsStorage extracts a wrapped StorageError, if any.
func AsStorage(err error) (*StorageError, bool) {
	var se *StorageError
	ok := errors.As(err, &se)
	return se, ok
}
