package sole

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/danpasecinic/sole/internal/registry"
	"github.com/danpasecinic/sole/internal/typekey"
)

// ConstructorFunc allocates a new instance from the construction argument.
type ConstructorFunc[T, A any] func(arg A) (*T, error)

// InitFunc sets instance state from the construction argument.
type InitFunc[T, A any] func(inst *T, arg A) error

// Class is the generated singleton wrapper for T. It owns the instance
// slot and routes every construction call through the policy fixed at
// definition time.
type Class[T, A any] struct {
	key       string
	name      string
	construct ConstructorFunc[T, A]
	init      InitFunc[T, A]
	cfg       *classConfig

	mu          sync.Mutex
	instance    atomic.Pointer[T]
	initialized atomic.Bool
}

// New resolves the shared instance, creating it on first call.
func (c *Class[T, A]) New(arg A) (*T, error) {
	start := time.Now()

	if inst := c.instance.Load(); inst != nil {
		return c.reuse(inst, arg)
	}

	if err := c.checkAncestry(); err != nil {
		c.cfg.logger.Debug("singleton construction rejected", "type", c.key, "error", err)
		c.observeCreate(time.Since(start), err)
		return nil, err
	}

	if c.cfg.threadSafe {
		c.mu.Lock()
		// Re-check under the lock: another goroutine may have created the
		// instance while this one waited.
		if inst := c.instance.Load(); inst != nil {
			c.mu.Unlock()
			return c.reuse(inst, arg)
		}
		inst, err := c.create(arg)
		c.mu.Unlock()
		c.observeCreate(time.Since(start), err)
		return inst, err
	}

	// Unguarded by choice: concurrent first calls may race and transiently
	// observe more than one instance. Define with WithThreadSafe when
	// callers construct from multiple goroutines.
	inst, err := c.create(arg)
	c.observeCreate(time.Since(start), err)
	return inst, err
}

// MustNew is like New but panics on error.
func (c *Class[T, A]) MustNew(arg A) *T {
	inst, err := c.New(arg)
	if err != nil {
		panic(err)
	}
	return inst
}

// Instance returns the current instance without constructing one.
func (c *Class[T, A]) Instance() (*T, bool) {
	inst := c.instance.Load()
	return inst, inst != nil
}

// Initialized reports whether the initialization logic has run.
func (c *Class[T, A]) Initialized() bool {
	return c.initialized.Load()
}

// Key returns the registry key for T.
func (c *Class[T, A]) Key() string {
	return c.key
}

// Replace swaps the slot contents, bypassing construction and policy.
// Intended for tests; see the soletest package.
func (c *Class[T, A]) Replace(inst *T) {
	c.instance.Store(inst)
	c.initialized.Store(inst != nil)
}

func (c *Class[T, A]) create(arg A) (*T, error) {
	inst, err := c.construct(arg)
	if err != nil {
		return nil, errConstructFailed(c.name, err)
	}

	if c.init != nil {
		if err := c.init(inst, arg); err != nil {
			// Slot stays empty so a later call can retry.
			return nil, errInitFailed(c.name, err)
		}
	}

	c.instance.Store(inst)
	c.initialized.Store(true)
	c.cfg.logger.Debug("singleton created", "type", c.key)
	return inst, nil
}

func (c *Class[T, A]) reuse(inst *T, arg A) (*T, error) {
	if c.cfg.allowReassignment && c.init != nil {
		// Repeated state writes are deliberately unguarded: reassignment
		// follows mutable-object semantics, not singleton identity.
		if err := c.init(inst, arg); err != nil {
			return nil, errInitFailed(c.name, err)
		}
		c.cfg.logger.Debug("singleton reinitialized", "type", c.key)
	}

	c.observeReuse()
	return inst, nil
}

// checkAncestry enforces the subclass policy of every defined singleton
// type embedded in T. A Class handle always belongs to an independently
// defined type, so only the inheritance permission needs checking here.
func (c *Class[T, A]) checkAncestry() error {
	for _, anc := range typekey.Ancestors(typekey.TypeOf[T]()) {
		rec, ok := registry.Default().Get(typekey.Of(anc))
		if !ok {
			continue
		}
		if !rec.AllowSubclass {
			return errSubclassNotAllowed(rec.Name)
		}
	}
	return nil
}

func (c *Class[T, A]) observeCreate(duration time.Duration, err error) {
	for _, hook := range c.cfg.onCreate {
		hook(c.key, duration, err)
	}
}

func (c *Class[T, A]) observeReuse() {
	for _, hook := range c.cfg.onReuse {
		hook(c.key)
	}
}

// New resolves the shared instance of T through the registry. This is the
// construction path for callers that do not hold the Class handle, and the
// one on which subclass violations surface for types that were never
// defined themselves.
func New[T, A any](arg A) (*T, error) {
	rec, ok := registry.Default().Get(typekey.For[T]())
	if !ok {
		if err := undefinedSubclassError[T](); err != nil {
			return nil, err
		}
		return nil, errNotDefined(typekey.Name[T]())
	}

	class, ok := rec.Handle.(*Class[T, A])
	if !ok {
		return nil, errArgumentMismatch(typekey.Name[T]())
	}

	return class.New(arg)
}

// MustNew is like New but panics on error.
func MustNew[T, A any](arg A) *T {
	inst, err := New[T, A](arg)
	if err != nil {
		panic(err)
	}
	return inst
}

// undefinedSubclassError reports why an undefined type embedding a defined
// singleton cannot be constructed. The nearest defined ancestor decides:
// inheritance forbidden beats the missing definition of T itself.
func undefinedSubclassError[T any]() error {
	for _, anc := range typekey.Ancestors(typekey.TypeOf[T]()) {
		rec, ok := registry.Default().Get(typekey.Of(anc))
		if !ok {
			continue
		}
		if !rec.AllowSubclass {
			return errSubclassNotAllowed(rec.Name)
		}
		return errSubclassNotSingleton(typekey.Name[T]())
	}

	return nil
}
