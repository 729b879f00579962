package validation

import (
	"fmt"
	"strings"
)

// ObjectError is a violation that applies to the whole object.
type ObjectError struct {
	Code    string
	Message string
}

// FieldError is a violation on a single field. Field is the path relative to
// the validated object, e.g. "Address.City".
type FieldError struct {
	Field   string
	Code    string
	Message string
	Value   any
}

// Errors collects the violations found while validating a single object.
// It is not safe for concurrent use; create one per validation.
type Errors struct {
	objectName string
	global     []ObjectError
	fields     []FieldError
}

func NewErrors(objectName string) *Errors {
	return &Errors{objectName: objectName}
}

// ObjectName is the name of the validated object, usually its type name.
func (e *Errors) ObjectName() string {
	return e.objectName
}

// Reject records an object level violation.
func (e *Errors) Reject(code, message string) {
	e.global = append(e.global, ObjectError{Code: code, Message: message})
}

// RejectValue records a violation on field. An empty field is treated as an
// object level violation.
func (e *Errors) RejectValue(field, code, message string, value any) {
	if field == "" {
		e.Reject(code, message)
		return
	}
	e.fields = append(e.fields, FieldError{Field: field, Code: code, Message: message, Value: value})
}

func (e *Errors) HasErrors() bool {
	return e.ErrorCount() > 0
}

func (e *Errors) ErrorCount() int {
	if e == nil {
		return 0
	}
	return len(e.global) + len(e.fields)
}

func (e *Errors) GlobalErrors() []ObjectError {
	return e.global
}

func (e *Errors) FieldErrors() []FieldError {
	return e.fields
}

// FieldError returns the first violation recorded for field.
func (e *Errors) FieldError(field string) (FieldError, bool) {
	for _, fe := range e.fields {
		if fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}

// Fields maps each field to its first message; object level violations are
// keyed by the object name.
func (e *Errors) Fields() map[string]string {
	out := make(map[string]string, e.ErrorCount())
	for _, ge := range e.global {
		if _, ok := out[e.objectName]; !ok {
			out[e.objectName] = ge.Message
		}
	}
	for _, fe := range e.fields {
		if _, ok := out[fe.Field]; !ok {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

func (e *Errors) Error() string {
	if !e.HasErrors() {
		return fmt.Sprintf("validation of '%s' passed", e.objectName)
	}

	parts := make([]string, 0, e.ErrorCount())
	for _, ge := range e.global {
		parts = append(parts, fmt.Sprintf("%s: %s", ge.Code, ge.Message))
	}
	for _, fe := range e.fields {
		parts = append(parts, fmt.Sprintf("%s [%s]: %s", fe.Field, fe.Code, fe.Message))
	}
	return fmt.Sprintf("validation of '%s' failed with %d error(s): %s", e.objectName, len(parts), strings.Join(parts, "; "))
}
