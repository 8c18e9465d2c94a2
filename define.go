package sole

import (
	"github.com/danpasecinic/sole/internal/registry"
	"github.com/danpasecinic/sole/internal/typekey"
)

// Define registers T as a singleton and returns its Class handle.
// Instances are allocated with new(T) and initialized with init, which may
// be nil for types that need no initialization.
func Define[T, A any](init InitFunc[T, A], opts ...Option) (*Class[T, A], error) {
	return DefineFunc[T, A](nil, init, opts...)
}

// DefineFunc is like Define with consumer-supplied construction logic.
// A nil construct falls back to new(T).
func DefineFunc[T, A any](construct ConstructorFunc[T, A], init InitFunc[T, A], opts ...Option) (*Class[T, A], error) {
	if !typekey.IsStruct[T]() {
		return nil, errInvalidTarget(typekey.Name[T]())
	}

	cfg := newClassConfig(opts...)

	if construct == nil {
		construct = func(A) (*T, error) {
			return new(T), nil
		}
	}

	c := &Class[T, A]{
		key:       typekey.For[T](),
		name:      typekey.Name[T](),
		construct: construct,
		init:      init,
		cfg:       cfg,
	}

	rec := &registry.Record{
		Key:               c.key,
		Owner:             c.key,
		Name:              c.name,
		ThreadSafe:        cfg.threadSafe,
		AllowSubclass:     cfg.allowSubclass,
		AllowReassignment: cfg.allowReassignment,
		Handle:            c,
	}

	if err := registry.Default().Register(rec); err != nil {
		return nil, errAlreadyDefined(c.name)
	}

	cfg.logger.Debug(
		"singleton defined", "type", c.key,
		"thread_safe", cfg.threadSafe,
		"allow_subclass", cfg.allowSubclass,
		"allow_reassignment", cfg.allowReassignment,
	)

	return c, nil
}

// MustDefine is like Define but panics on error.
func MustDefine[T, A any](init InitFunc[T, A], opts ...Option) *Class[T, A] {
	c, err := Define[T, A](init, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// MustDefineFunc is like DefineFunc but panics on error.
func MustDefineFunc[T, A any](construct ConstructorFunc[T, A], init InitFunc[T, A], opts ...Option) *Class[T, A] {
	c, err := DefineFunc[T, A](construct, init, opts...)
	if err != nil {
		panic(err)
	}
	return c
}
