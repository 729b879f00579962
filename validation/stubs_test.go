package validation

import (
	"reflect"

	"github.com/grzegorzmaniak/gothic-validator/container"
)

type signup struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=2"`
	Age   int    `json:"age" validate:"gte=0,lte=130"`
}

type untagged struct {
	Note string
}

// countingValidator is a full featured delegate that counts every call it receives.
type countingValidator struct {
	supports     int
	validate     int
	hinted       int
	structs      int
	setContainer int
	initialize   int
	destroy      int

	lastHints []any
	container *container.Container
	initErr   error
	destErr   error
}

func (c *countingValidator) Supports(t reflect.Type) bool {
	c.supports++
	return t == reflect.TypeOf(signup{})
}

func (c *countingValidator) Validate(target any, errs *Errors) error {
	c.validate++
	errs.Reject("counted", "validated by countingValidator")
	return nil
}

func (c *countingValidator) ValidateWithHints(target any, errs *Errors, hints ...any) error {
	c.hinted++
	c.lastHints = hints
	errs.Reject("counted", "validated with hints by countingValidator")
	return nil
}

func (c *countingValidator) Struct(any) error {
	c.structs++
	return nil
}

func (c *countingValidator) SetContainer(ctr *container.Container) {
	c.setContainer++
	c.container = ctr
}

func (c *countingValidator) Initialize() error {
	c.initialize++
	return c.initErr
}

func (c *countingValidator) Destroy() error {
	c.destroy++
	return c.destErr
}

// plainValidator only offers the framework capability, no struct validation.
type plainValidator struct{}

func (plainValidator) Supports(reflect.Type) bool { return true }
func (plainValidator) Validate(any, *Errors) error { return nil }

// structOnly offers nothing but Struct.
type structOnly struct {
	calls int
	err   error
}

func (s *structOnly) Struct(any) error {
	s.calls++
	return s.err
}

// frameworkStruct is a framework validator that also offers Struct but no hints.
type frameworkStruct struct {
	structOnly
}

func (f *frameworkStruct) Supports(reflect.Type) bool { return true }
func (f *frameworkStruct) Validate(any, *Errors) error { return nil }
