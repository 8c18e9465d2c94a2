// Package soletest provides helpers for testing code that defines
// singletons. Definitions made through this package are removed from the
// process-wide registry when the test finishes, so each test case starts
// from a fresh slot instead of sharing state across the test run.
package soletest

import (
	"github.com/danpasecinic/sole"
	"github.com/danpasecinic/sole/internal/registry"
	"github.com/danpasecinic/sole/internal/typekey"
)

type TB interface {
	Helper()
	Fatalf(format string, args ...any)
	Cleanup(f func())
}

func Define[T, A any](tb TB, init sole.InitFunc[T, A], opts ...sole.Option) *sole.Class[T, A] {
	tb.Helper()

	c, err := sole.Define[T, A](init, opts...)
	if err != nil {
		tb.Fatalf("failed to define %s: %v", typekey.Name[T](), err)
	}

	tb.Cleanup(func() {
		registry.Default().Remove(typekey.For[T]())
	})

	return c
}

func DefineFunc[T, A any](tb TB, construct sole.ConstructorFunc[T, A], init sole.InitFunc[T, A], opts ...sole.Option) *sole.Class[T, A] {
	tb.Helper()

	c, err := sole.DefineFunc[T, A](construct, init, opts...)
	if err != nil {
		tb.Fatalf("failed to define %s: %v", typekey.Name[T](), err)
	}

	tb.Cleanup(func() {
		registry.Default().Remove(typekey.For[T]())
	})

	return c
}

// Undefine removes T's registration immediately.
func Undefine[T any](tb TB) {
	tb.Helper()

	registry.Default().Remove(typekey.For[T]())
}

// Reset clears the whole registry. Not safe with parallel tests that
// define singletons of their own.
func Reset(tb TB) {
	tb.Helper()

	registry.Default().Clear()
}

// Replace swaps the slot contents of a class with a prepared fixture and
// restores an empty slot when the test finishes.
func Replace[T, A any](tb TB, class *sole.Class[T, A], inst *T) {
	tb.Helper()

	class.Replace(inst)
	tb.Cleanup(func() {
		class.Replace(nil)
	})
}

func MustNew[T, A any](tb TB, class *sole.Class[T, A], arg A) *T {
	tb.Helper()

	inst, err := class.New(arg)
	if err != nil {
		tb.Fatalf("failed to construct %s: %v", class.Key(), err)
	}
	return inst
}

func AssertSingleton[T any](tb TB) {
	tb.Helper()

	if !sole.IsSingleton[T]() {
		tb.Fatalf("expected %s to be a singleton", typekey.Name[T]())
	}
}

func AssertNotSingleton[T any](tb TB) {
	tb.Helper()

	if sole.IsSingleton[T]() {
		tb.Fatalf("expected %s to not be a singleton", typekey.Name[T]())
	}
}
