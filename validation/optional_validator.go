package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/grzegorzmaniak/gothic-validator/cache"
	"github.com/grzegorzmaniak/gothic-validator/container"
	"go.uber.org/zap"
)

// Constraint is a custom validation tag. Constraints registered in the
// container are picked up by the default validator when it initializes.
type Constraint struct {
	Tag            string
	Fn             validator.Func
	CallEvenIfNull bool
}

// Alias maps a tag alias onto a list of tags, e.g. "iscolor" -> "hexcolor|rgb|rgba".
type Alias struct {
	Alias string
	Tags  string
}

type OptionalValidatorOption func(*OptionalValidator)

func WithConstraints(constraints ...Constraint) OptionalValidatorOption {
	return func(v *OptionalValidator) {
		v.constraints = append(v.constraints, constraints...)
	}
}

func WithAliases(aliases ...Alias) OptionalValidatorOption {
	return func(v *OptionalValidator) {
		v.aliases = append(v.aliases, aliases...)
	}
}

// OptionalValidator is the default validator backed by go-playground/validator.
// If the engine cannot be set up it degrades to a validator that accepts
// everything instead of failing the application.
type OptionalValidator struct {
	engine         *validator.Validate
	jsonFieldNames bool
	constraints    []Constraint
	aliases        []Alias
	supportsCache  *cache.Manager

	mu           sync.RWMutex
	interpolator MessageInterpolator
	container    *container.Container
	bridge       *StructAdapter
	initOnce     sync.Once
}

func NewOptionalValidator(cfg *Config, opts ...OptionalValidatorOption) *OptionalValidator {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	v := &OptionalValidator{
		engine:         validator.New(validator.WithRequiredStructEnabled()),
		jsonFieldNames: cfg.JSONFieldNames,
		supportsCache:  cache.BuildManager(&cfg.SupportsCache),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Engine returns the underlying go-playground validator.
func (v *OptionalValidator) Engine() *validator.Validate {
	return v.engine
}

// SetMessageInterpolator must be called before the validator initializes.
func (v *OptionalValidator) SetMessageInterpolator(i MessageInterpolator) {
	v.mu.Lock()
	v.interpolator = i
	v.mu.Unlock()
}

func (v *OptionalValidator) SetContainer(c *container.Container) {
	v.mu.Lock()
	v.container = c
	v.mu.Unlock()
}

// Initialize registers field naming, aliases and constraints on the engine.
// It runs once; Supports and Validate trigger it lazily when no lifecycle did.
func (v *OptionalValidator) Initialize() error {
	v.initOnce.Do(v.initialize)
	return nil
}

// lazyInitialize runs when the validator is used before its lifecycle started.
// Constraints registered in a container handed in later are never picked up.
func (v *OptionalValidator) lazyInitialize() {
	v.mu.RLock()
	c := v.container
	v.mu.RUnlock()

	if c == nil {
		zap.L().Warn("Default validator used before its container started, container constraints are not registered")
	}
	v.initialize()
}

func (v *OptionalValidator) initialize() {
	v.mu.RLock()
	c := v.container
	interpolator := v.interpolator
	v.mu.RUnlock()

	if v.jsonFieldNames {
		v.engine.RegisterTagNameFunc(jsonTagName)
	}

	for _, alias := range v.aliases {
		if err := registerAlias(v.engine, alias); err != nil {
			zap.L().Debug("Validation engine unavailable", zap.Error(err))
			return
		}
	}

	constraints := append(append([]Constraint{}, v.constraints...), container.All[Constraint](c)...)
	for _, constraint := range constraints {
		if err := v.engine.RegisterValidation(constraint.Tag, constraint.Fn, constraint.CallEvenIfNull); err != nil {
			zap.L().Debug("Validation engine unavailable", zap.String("tag", constraint.Tag), zap.Error(err))
			return
		}
	}

	bridge := NewStructAdapter(v.engine, WithInterpolator(interpolator), WithSupportsCache(v.supportsCache))

	v.mu.Lock()
	v.bridge = bridge
	v.mu.Unlock()

	zap.L().Debug("Default validator initialized", zap.Int("constraints", len(constraints)), zap.Int("aliases", len(v.aliases)))
}

// Destroy makes the validator permanently unavailable.
func (v *OptionalValidator) Destroy() error {
	v.initOnce.Do(func() {})

	v.mu.Lock()
	v.bridge = nil
	v.mu.Unlock()
	return nil
}

// Available reports whether the engine is usable.
func (v *OptionalValidator) Available() bool {
	return v.active() != nil
}

func (v *OptionalValidator) active() *StructAdapter {
	v.initOnce.Do(v.lazyInitialize)

	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.bridge
}

func (v *OptionalValidator) Supports(t reflect.Type) bool {
	bridge := v.active()
	if bridge == nil {
		return false
	}
	return bridge.Supports(t)
}

func (v *OptionalValidator) Validate(target any, errs *Errors) error {
	return v.ValidateWithHints(target, errs)
}

func (v *OptionalValidator) ValidateWithHints(target any, errs *Errors, hints ...any) error {
	bridge := v.active()
	if bridge == nil {
		zap.L().Debug("Validation engine unavailable, skipping validation", zap.String("target", fmt.Sprintf("%T", target)))
		return nil
	}
	return bridge.ValidateWithHints(target, errs, hints...)
}

func (v *OptionalValidator) Struct(s any) error {
	bridge := v.active()
	if bridge == nil {
		return nil
	}
	return bridge.Struct(s)
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// registerAlias converts the engine's panic on a restricted alias into an error.
func registerAlias(engine *validator.Validate, alias Alias) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("alias '%s': %v", alias.Alias, r)
		}
	}()
	engine.RegisterAlias(alias.Alias, alias.Tags)
	return nil
}
