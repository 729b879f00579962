package validation

import (
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type bindingValidator struct {
	validator Validator
}

// NewBindingValidator exposes v to gin's request binding.
func NewBindingValidator(v Validator) binding.StructValidator {
	return &bindingValidator{validator: v}
}

// Install makes gin's ShouldBind* family validate through v. Do not combine it
// with InputData, which binds a struct from several sources before validating it.
func Install(v Validator) {
	binding.Validator = NewBindingValidator(v)
}

// ValidateStruct validates structs and pointers to structs, and every element of
// slices and arrays. Anything else passes.
func (b *bindingValidator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}

	value := reflect.ValueOf(obj)
	switch value.Kind() {
	case reflect.Pointer:
		if value.IsNil() {
			return nil
		}
		if value.Elem().Kind() != reflect.Struct {
			return b.ValidateStruct(value.Elem().Interface())
		}
		return b.validate(obj)

	case reflect.Struct:
		return b.validate(obj)

	case reflect.Slice, reflect.Array:
		for i := 0; i < value.Len(); i++ {
			if err := b.ValidateStruct(value.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil

	default:
		return nil
	}
}

func (b *bindingValidator) validate(obj any) error {
	errs := NewErrors(objectName(obj))
	if err := b.validator.Validate(obj, errs); err != nil {
		return err
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Engine returns the go-playground engine behind the validator when one can be
// reached, otherwise the validator itself.
func (b *bindingValidator) Engine() any {
	if engine := engineOf(b.validator); engine != nil {
		return engine
	}
	return b.validator
}

func engineOf(v any) *validator.Validate {
	for v != nil {
		switch current := v.(type) {
		case *validator.Validate:
			return current
		case interface{ Engine() *validator.Validate }:
			return current.Engine()
		case interface{ Target() SmartValidator }:
			v = current.Target()
		case interface{ Target() StructValidator }:
			v = current.Target()
		default:
			return nil
		}
	}
	return nil
}

func objectName(obj any) string {
	t := indirectType(reflect.TypeOf(obj))
	if t == nil || t.Name() == "" {
		return "object"
	}
	return t.Name()
}
