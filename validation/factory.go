package validation

import (
	"fmt"

	"github.com/grzegorzmaniak/gothic-validator/container"
	"go.uber.org/zap"
)

// resolver is one step of the validator resolution pipeline.
type resolver func(c *container.Container, explicit Validator) (Validator, bool)

var resolvers = []resolver{
	resolveExplicit,
	resolveExisting,
	resolveDefault,
}

// Get returns the Validator the application should use, adapted so that only
// validators created here have their lifecycle driven through the adapter.
//
// An explicit validator wins. Otherwise a StructValidator registered in c is
// used as an existing managed object. Otherwise a new OptionalValidator is
// created, configured from a *Config registered in c or DefaultConfig.
func Get(c *container.Container, explicit Validator) Validator {
	for _, resolve := range resolvers {
		if v, ok := resolve(c, explicit); ok {
			return v
		}
	}
	return nil
}

func resolveExplicit(_ *container.Container, explicit Validator) (Validator, bool) {
	if explicit == nil {
		return nil, false
	}
	return Wrap(explicit, false), true
}

func resolveExisting(c *container.Container, _ Validator) (Validator, bool) {
	existing, ok := container.Lookup[StructValidator](c)
	if !ok {
		zap.L().Debug("No struct validator registered, falling back to the default validator")
		return nil, false
	}

	v, ok := existing.(Validator)
	if !ok {
		v = NewStructAdapter(existing)
	}

	zap.L().Debug("Using registered struct validator", zap.String("validator", fmt.Sprintf("%T", existing)))
	return Wrap(v, true), true
}

func resolveDefault(c *container.Container, _ Validator) (Validator, bool) {
	cfg, ok := container.Lookup[*Config](c)
	if !ok || cfg == nil {
		cfg = DefaultConfig()
	}

	v := NewOptionalValidator(cfg)

	interpolator, err := MessageInterpolatorFactory{Locale: cfg.Locale}.Build(v.Engine())
	if err != nil {
		zap.L().Debug("Message interpolator unavailable, using engine messages", zap.Error(err))
	} else {
		v.SetMessageInterpolator(interpolator)
	}

	return Wrap(v, false), true
}

// Wrap adapts v when it offers the StructValidator capability, bridging it to
// a SmartValidator first if needed. Any other validator needs no lifecycle
// gating and is returned unchanged.
func Wrap(v Validator, existing bool) Validator {
	if v == nil {
		return nil
	}

	sv, ok := v.(StructValidator)
	if !ok {
		return v
	}

	if smart, ok := v.(SmartValidator); ok {
		return NewAdapter(smart, existing)
	}

	return NewAdapter(NewStructAdapter(sv), existing)
}
