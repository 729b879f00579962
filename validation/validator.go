package validation

import (
	"context"
	"reflect"
)

// Validator is the capability set the web layer validates through.
// Constraint violations are recorded in errs; the returned error is reserved
// for failures of the validator itself.
type Validator interface {
	Supports(t reflect.Type) bool
	Validate(target any, errs *Errors) error
}

// SmartValidator extends Validator with validation hints. Hints are opaque,
// a validator ignores the ones it does not understand.
type SmartValidator interface {
	Validator
	ValidateWithHints(target any, errs *Errors, hints ...any) error
}

// StructValidator is the bean-validation style capability: a tag driven struct
// validator such as *validator.Validate.
type StructValidator interface {
	Struct(s any) error
}

type structCtxValidator interface {
	StructCtx(ctx context.Context, s any) error
}

type structPartialValidator interface {
	StructPartialCtx(ctx context.Context, s any, fields ...string) error
}

type structExceptValidator interface {
	StructExceptCtx(ctx context.Context, s any, fields ...string) error
}

// PartialHint restricts validation to the named fields.
type PartialHint struct {
	Fields []string
}

// ExceptHint validates everything but the named fields.
type ExceptHint struct {
	Fields []string
}

// Partial is a hint restricting validation to fields, named relative to the
// validated struct (e.g. "Email" or "Address.City").
func Partial(fields ...string) PartialHint {
	return PartialHint{Fields: fields}
}

// Except is a hint excluding fields from validation.
func Except(fields ...string) ExceptHint {
	return ExceptHint{Fields: fields}
}
