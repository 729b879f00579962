package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	gocache "github.com/eko/gocache/lib/v4/cache"
	"github.com/go-playground/validator/v10"
	"github.com/grzegorzmaniak/gothic-validator/cache"
	"go.uber.org/zap"
)

const constraintTag = "validate"

// StructAdapter bridges a StructValidator into a SmartValidator, recording
// constraint violations in the Errors sink.
type StructAdapter struct {
	target        StructValidator
	interpolator  MessageInterpolator
	supportsCache *cache.Manager

	// - Optional engine capabilities, resolved once at construction
	structCtx  func(ctx context.Context, s any) error
	partialCtx func(ctx context.Context, s any, fields ...string) error
	exceptCtx  func(ctx context.Context, s any, fields ...string) error
}

type StructAdapterOption func(*StructAdapter)

// WithInterpolator sets the interpolator used to render violation messages.
func WithInterpolator(i MessageInterpolator) StructAdapterOption {
	return func(a *StructAdapter) {
		a.interpolator = i
	}
}

// WithSupportsCache memoises Supports decisions per type.
func WithSupportsCache(m *cache.Manager) StructAdapterOption {
	return func(a *StructAdapter) {
		a.supportsCache = m
	}
}

// NewStructAdapter bridges target, probing once for its context and field subset variants.
func NewStructAdapter(target StructValidator, opts ...StructAdapterOption) *StructAdapter {
	a := &StructAdapter{target: target}
	for _, opt := range opts {
		opt(a)
	}

	if v, ok := target.(structCtxValidator); ok {
		a.structCtx = v.StructCtx
	}
	if v, ok := target.(structPartialValidator); ok {
		a.partialCtx = v.StructPartialCtx
	}
	if v, ok := target.(structExceptValidator); ok {
		a.exceptCtx = v.StructExceptCtx
	}

	return a
}

// Target returns the bridged struct validator.
func (a *StructAdapter) Target() StructValidator {
	return a.target
}

// Supports reports whether t is a struct (or pointer to one) carrying at least
// one constraint anywhere in its field tree.
func (a *StructAdapter) Supports(t reflect.Type) bool {
	t = indirectType(t)
	if t == nil || t.Kind() != reflect.Struct {
		return false
	}

	ctx := context.Background()
	store := a.cacheInstance()
	// - Types declared in different functions can share a name, the rtype pointer cannot
	key := fmt.Sprintf("supports:%s@%p", t.String(), t)

	if supported, found, err := cache.GetFlag(ctx, store, key); err == nil && found {
		return supported
	} else if err != nil {
		zap.L().Debug("Ignoring unreadable supports decision", zap.String("key", key), zap.Error(err))
	}

	supported := hasConstraints(t, make(map[reflect.Type]bool))
	if err := cache.SetFlag(ctx, store, key, supported); err != nil {
		zap.L().Debug("Failed to cache supports decision", zap.String("key", key), zap.Error(err))
	}

	return supported
}

// Validate validates the whole target.
func (a *StructAdapter) Validate(target any, errs *Errors) error {
	return a.ValidateWithHints(target, errs)
}

// ValidateWithHints understands PartialHint, ExceptHint and context.Context hints.
// Violations are recorded in errs; any other engine failure is returned as is.
func (a *StructAdapter) ValidateWithHints(target any, errs *Errors, hints ...any) error {
	err := a.run(target, hints)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errs == nil || !errors.As(err, &ves) {
		return err
	}

	for _, fe := range ves {
		errs.RejectValue(fieldPath(fe), fe.Tag(), a.message(fe), fe.Value())
	}
	return nil
}

// Struct runs the target directly, keeping the adapter usable wherever a
// StructValidator is expected.
func (a *StructAdapter) Struct(s any) error {
	return guard(func() error {
		return a.target.Struct(s)
	})
}

func (a *StructAdapter) run(target any, hints []any) error {
	ctx := context.Background()
	var partial, except []string

	for _, h := range hints {
		switch hint := h.(type) {
		case PartialHint:
			partial = append(partial, hint.Fields...)
		case ExceptHint:
			except = append(except, hint.Fields...)
		case context.Context:
			ctx = hint
		default:
			zap.L().Debug("Ignoring unsupported validation hint", zap.String("hint", fmt.Sprintf("%T", h)))
		}
	}

	return guard(func() error {
		return a.dispatch(ctx, target, partial, except)
	})
}

func (a *StructAdapter) dispatch(ctx context.Context, target any, partial, except []string) error {
	switch {
	case len(partial) > 0 && a.partialCtx != nil:
		if len(except) > 0 {
			zap.L().Debug("Both partial and except hints given, except hint ignored")
		}
		return a.partialCtx(ctx, target, partial...)
	case len(except) > 0 && a.exceptCtx != nil:
		return a.exceptCtx(ctx, target, except...)
	case len(partial) > 0 || len(except) > 0:
		zap.L().Debug("Target cannot validate a subset of fields, validating everything", zap.String("target", fmt.Sprintf("%T", a.target)))
	}

	if a.structCtx != nil {
		return a.structCtx(ctx, target)
	}
	return a.target.Struct(target)
}

// guard converts an engine panic, such as a tag with no registered function,
// into an error wrapping ErrConfiguration.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Warn("Validation engine panicked", zap.Any("panic", r))
			err = fmt.Errorf("%w: validation engine panicked: %v", ErrConfiguration, r)
		}
	}()
	return fn()
}

func (a *StructAdapter) message(fe validator.FieldError) string {
	if a.interpolator != nil {
		return a.interpolator.Interpolate(fe)
	}
	return fe.Error()
}

func (a *StructAdapter) cacheInstance() gocache.CacheInterface[[]byte] {
	if a.supportsCache == nil {
		return nil
	}
	c, err := a.supportsCache.GetCache()
	if err != nil {
		zap.L().Debug("Supports cache unavailable", zap.Error(err))
		return nil
	}
	return c
}

// fieldPath strips the root struct name from the engine's namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func indirectType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func hasConstraints(t reflect.Type, seen map[reflect.Type]bool) bool {
	t = indirectType(t)

	switch t.Kind() {
	case reflect.Struct:
		if seen[t] {
			return false
		}
		seen[t] = true

		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() && !field.Anonymous {
				continue
			}
			if tag := field.Tag.Get(constraintTag); tag != "" && tag != "-" {
				return true
			}
			if hasConstraints(field.Type, seen) {
				return true
			}
		}
		return false

	case reflect.Slice, reflect.Array, reflect.Map:
		return hasConstraints(t.Elem(), seen)

	default:
		return false
	}
}

