package container

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrAlreadyStarted = errors.New("container already started")
)

// Aware is implemented by objects that want a handle to the container that manages them.
type Aware interface {
	SetContainer(c *Container)
}

// Initializer is implemented by objects that need post-construction setup.
type Initializer interface {
	Initialize() error
}

// Destroyer is implemented by objects that need cleanup before shutdown.
type Destroyer interface {
	Destroy() error
}

type entry struct {
	obj     any
	primary bool
}

// RegisterOption tweaks how an object is registered.
type RegisterOption func(*entry)

// Primary marks the object as the preferred candidate when several registered
// objects satisfy the same lookup.
func Primary() RegisterOption {
	return func(e *entry) {
		e.primary = true
	}
}

// Container is a small managed-object registry. Objects are looked up by the
// capability (interface or concrete type) they satisfy, and the container drives
// their lifecycle through Start and Close.
type Container struct {
	mu      sync.RWMutex
	entries []*entry
	started bool
	stopped bool
}

func New() *Container {
	return &Container{}
}

// Register adds obj to the container. nil objects are ignored.
func (c *Container) Register(obj any, opts ...RegisterOption) {
	if obj == nil {
		return
	}

	e := &entry{obj: obj}
	for _, opt := range opts {
		opt(e)
	}

	c.mu.Lock()
	c.entries = append(c.entries, e)
	c.mu.Unlock()
}

func (c *Container) snapshot() []*entry {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup returns the registered object satisfying T. A primary registration wins,
// otherwise the first match in registration order is returned. The boolean is
// false when nothing matches; a nil container is treated as empty.
func Lookup[T any](c *Container) (T, bool) {
	var (
		zero  T
		first T
		found bool
	)

	for _, e := range c.snapshot() {
		candidate, ok := e.obj.(T)
		if !ok {
			continue
		}
		if e.primary {
			return candidate, true
		}
		if !found {
			first = candidate
			found = true
		}
	}

	if !found {
		return zero, false
	}
	return first, true
}

// All returns every registered object satisfying T in registration order.
func All[T any](c *Container) []T {
	var out []T
	for _, e := range c.snapshot() {
		if candidate, ok := e.obj.(T); ok {
			out = append(out, candidate)
		}
	}
	return out
}

// Start hands the container to every Aware object and then initializes every
// Initializer, both in registration order. The first initialization failure
// aborts the start.
func (c *Container) Start() error {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	c.started = true
	c.mu.Unlock()

	entries := c.snapshot()

	for _, e := range entries {
		if aware, ok := e.obj.(Aware); ok {
			aware.SetContainer(c)
		}
	}

	for _, e := range entries {
		if initializer, ok := e.obj.(Initializer); ok {
			if err := initializer.Initialize(); err != nil {
				zap.L().Debug("Container: initialization failed", zap.String("object", fmt.Sprintf("%T", e.obj)), zap.Error(err))
				return fmt.Errorf("initialize %T: %w", e.obj, err)
			}
		}
	}

	zap.L().Info("Container: started", zap.Int("objects", len(entries)))
	return nil
}

// Close destroys every Destroyer in reverse registration order. All failures
// are collected and returned together. Closing a container that never started,
// or closing twice, does nothing.
func (c *Container) Close() error {
	c.mu.Lock()
	if !c.started || c.stopped {
		c.mu.Unlock()
		return nil
	}
	c.stopped = true
	c.mu.Unlock()

	entries := c.snapshot()

	var errs []error
	for i := len(entries) - 1; i >= 0; i-- {
		destroyer, ok := entries[i].obj.(Destroyer)
		if !ok {
			continue
		}
		if err := destroyer.Destroy(); err != nil {
			zap.L().Debug("Container: destroy failed", zap.String("object", fmt.Sprintf("%T", entries[i].obj)), zap.Error(err))
			errs = append(errs, fmt.Errorf("destroy %T: %w", entries[i].obj, err))
		}
	}

	zap.L().Info("Container: closed", zap.Int("objects", len(entries)))
	return errors.Join(errs...)
}
