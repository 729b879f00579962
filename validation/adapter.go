package validation

import (
	"reflect"
	"sync/atomic"

	"github.com/grzegorzmaniak/gothic-validator/container"
)

// lifecycleHooks holds the lifecycle callbacks the target supports. A nil
// entry means the target does not implement that hook.
type lifecycleHooks struct {
	setContainer func(c *container.Container)
	initialize   func() error
	destroy      func() error
}

func hooksOf(target any) lifecycleHooks {
	var h lifecycleHooks
	if aware, ok := target.(container.Aware); ok {
		h.setContainer = aware.SetContainer
	}
	if initializer, ok := target.(container.Initializer); ok {
		h.initialize = initializer.Initialize
	}
	if destroyer, ok := target.(container.Destroyer); ok {
		h.destroy = destroyer.Destroy
	}
	return h
}

// Adapter exposes a SmartValidator to the container while hiding the target's
// own lifecycle. When the target is an existing managed object its lifecycle
// belongs to whoever manages it, so the adapter never forwards SetContainer,
// Initialize or Destroy for it.
type Adapter struct {
	target    SmartValidator
	existing  bool
	hooks     lifecycleHooks
	destroyed atomic.Bool
}

// NewAdapter wraps target. existing must be true when target's lifecycle is
// managed elsewhere.
func NewAdapter(target SmartValidator, existing bool) *Adapter {
	a := &Adapter{
		target:   target,
		existing: existing,
	}
	if !existing {
		a.hooks = hooksOf(target)
	}
	return a
}

// Target returns the wrapped validator.
func (a *Adapter) Target() SmartValidator {
	return a.target
}

// Existing reports whether the target's lifecycle is managed elsewhere.
func (a *Adapter) Existing() bool {
	return a.existing
}

// Supports delegates to the target.
func (a *Adapter) Supports(t reflect.Type) bool {
	return a.target.Supports(t)
}

// Validate delegates to the target.
func (a *Adapter) Validate(target any, errs *Errors) error {
	return a.target.Validate(target, errs)
}

// ValidateWithHints delegates to the target, hints included.
func (a *Adapter) ValidateWithHints(target any, errs *Errors, hints ...any) error {
	return a.target.ValidateWithHints(target, errs, hints...)
}

// SetContainer forwards to an owned target that is container.Aware.
func (a *Adapter) SetContainer(c *container.Container) {
	if a.hooks.setContainer != nil {
		a.hooks.setContainer(c)
	}
}

// Initialize forwards to an owned target that is a container.Initializer.
func (a *Adapter) Initialize() error {
	if a.hooks.initialize != nil {
		return a.hooks.initialize()
	}
	return nil
}

// Destroy forwards to an owned target that is a container.Destroyer, at most once.
func (a *Adapter) Destroy() error {
	if !a.destroyed.CompareAndSwap(false, true) {
		return nil
	}
	if a.hooks.destroy != nil {
		return a.hooks.destroy()
	}
	return nil
}
