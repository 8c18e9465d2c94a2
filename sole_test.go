package sole_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danpasecinic/sole"
	"github.com/danpasecinic/sole/soletest"
)

type basicCounter struct {
	Value int
}

func initBasicCounter(c *basicCounter, v int) error {
	c.Value = v
	return nil
}

func TestDefine_Defaults(t *testing.T) {
	t.Parallel()

	counter := soletest.Define[basicCounter, int](t, initBasicCounter)

	first, err := counter.New(1)
	require.NoError(t, err)

	second, err := counter.New(2)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, first.Value, "later arguments must be ignored without reassignment")
}

type reassignCounter struct {
	Value int
}

func TestDefine_Reassignment(t *testing.T) {
	t.Parallel()

	counter := soletest.Define[reassignCounter, int](
		t, func(c *reassignCounter, v int) error {
			c.Value = v
			return nil
		}, sole.WithReassignment(),
	)

	first, err := counter.New(1)
	require.NoError(t, err)

	second, err := counter.New(2)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 2, first.Value, "reassignment must update state in place")
}

type isolationA struct{ Value int }

type isolationB struct{ Value int }

func TestDefine_UnrelatedTypesAreIsolated(t *testing.T) {
	t.Parallel()

	classA := soletest.Define[isolationA, int](
		t, func(a *isolationA, v int) error {
			a.Value = v
			return nil
		},
	)
	classB := soletest.Define[isolationB, int](
		t, func(b *isolationB, v int) error {
			b.Value = v
			return nil
		},
	)

	a1, err := classA.New(10)
	require.NoError(t, err)
	b1, err := classB.New(20)
	require.NoError(t, err)
	a2, err := classA.New(30)
	require.NoError(t, err)
	b2, err := classB.New(40)
	require.NoError(t, err)

	assert.Same(t, a1, a2)
	assert.Same(t, b1, b2)
	assert.Equal(t, 10, a1.Value)
	assert.Equal(t, 20, b1.Value)
}

type customAllocated struct {
	Value   int
	Tagged  bool
	Changed int
}

func TestDefineFunc_CustomConstructor(t *testing.T) {
	t.Parallel()

	class := soletest.DefineFunc[customAllocated, int](
		t, func(v int) (*customAllocated, error) {
			return &customAllocated{Tagged: true}, nil
		}, func(c *customAllocated, v int) error {
			c.Value = v
			return nil
		},
	)

	inst, err := class.New(7)
	require.NoError(t, err)

	assert.True(t, inst.Tagged, "custom construction logic must run")
	assert.Equal(t, 7, inst.Value)
}

func TestDefine_InvalidTarget(t *testing.T) {
	t.Parallel()

	_, err := sole.Define[int, int](nil)
	require.Error(t, err)
	assert.True(t, sole.IsInvalidTarget(err))

	_, err = sole.Define[func(), int](nil)
	require.Error(t, err)
	assert.True(t, sole.IsInvalidTarget(err))

	_, err = sole.Define[map[string]int, int](nil)
	require.Error(t, err)
	assert.True(t, sole.IsInvalidTarget(err))

	_, err = sole.Define[*basicCounter, int](nil)
	require.Error(t, err)
	assert.True(t, sole.IsInvalidTarget(err))
}

type definedTwice struct{ Value int }

func TestDefine_AlreadyDefined(t *testing.T) {
	t.Parallel()

	soletest.Define[definedTwice, int](t, nil)

	_, err := sole.Define[definedTwice, int](nil)
	require.Error(t, err)
	assert.True(t, sole.IsAlreadyDefined(err))
}

type neverDefined struct{ Value int }

func TestNew_NotDefined(t *testing.T) {
	t.Parallel()

	_, err := sole.New[neverDefined, int](1)
	require.Error(t, err)
	assert.True(t, sole.IsNotDefined(err))
}

type resolvedByRegistry struct{ Value int }

func TestNew_ResolvesThroughRegistry(t *testing.T) {
	t.Parallel()

	class := soletest.Define[resolvedByRegistry, int](
		t, func(r *resolvedByRegistry, v int) error {
			r.Value = v
			return nil
		},
	)

	viaRegistry, err := sole.New[resolvedByRegistry, int](5)
	require.NoError(t, err)

	viaHandle, err := class.New(6)
	require.NoError(t, err)

	assert.Same(t, viaRegistry, viaHandle)
	assert.Equal(t, 5, viaHandle.Value)
}

type mismatchedArg struct{ Value int }

func TestNew_ArgumentMismatch(t *testing.T) {
	t.Parallel()

	soletest.Define[mismatchedArg, int](t, nil)

	_, err := sole.New[mismatchedArg, string]("nope")
	require.Error(t, err)
	assert.True(t, sole.IsArgumentMismatch(err))
}

type failsToConstruct struct{ Value int }

func TestNew_ConstructFailureLeavesSlotEmpty(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	calls := 0

	class := soletest.DefineFunc[failsToConstruct, int](
		t, func(v int) (*failsToConstruct, error) {
			calls++
			if calls == 1 {
				return nil, boom
			}
			return &failsToConstruct{}, nil
		}, func(f *failsToConstruct, v int) error {
			f.Value = v
			return nil
		},
	)

	_, err := class.New(1)
	require.Error(t, err)
	assert.True(t, sole.IsConstructFailed(err))
	assert.ErrorIs(t, err, boom)

	_, ok := class.Instance()
	assert.False(t, ok, "failed call must leave the slot untouched")

	inst, err := class.New(2)
	require.NoError(t, err)
	assert.Equal(t, 2, inst.Value)
}

type failsToInit struct{ Value int }

func TestNew_InitFailureLeavesSlotEmpty(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad value")

	class := soletest.Define[failsToInit, int](
		t, func(f *failsToInit, v int) error {
			if v < 0 {
				return boom
			}
			f.Value = v
			return nil
		},
	)

	_, err := class.New(-1)
	require.Error(t, err)
	assert.True(t, sole.IsInitFailed(err))
	assert.ErrorIs(t, err, boom)
	assert.False(t, class.Initialized())

	inst, err := class.New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, inst.Value)
	assert.True(t, class.Initialized())
}

type peekable struct{ Value int }

func TestClass_InstancePeek(t *testing.T) {
	t.Parallel()

	class := soletest.Define[peekable, int](
		t, func(p *peekable, v int) error {
			p.Value = v
			return nil
		},
	)

	_, ok := class.Instance()
	assert.False(t, ok)
	assert.False(t, class.Initialized())

	created, err := class.New(9)
	require.NoError(t, err)

	peeked, ok := class.Instance()
	assert.True(t, ok)
	assert.Same(t, created, peeked)
	assert.True(t, class.Initialized())
}

type mustPanics struct{ Value int }

func TestMustNew_PanicsOnError(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		sole.MustNew[mustPanics, int](1)
	})

	assert.Panics(t, func() {
		sole.MustDefine[int, int](nil)
	})
}

type nilInit struct{ Value int }

func TestDefine_NilInit(t *testing.T) {
	t.Parallel()

	class := soletest.Define[nilInit, struct{}](t, nil)

	first, err := class.New(struct{}{})
	require.NoError(t, err)
	second, err := class.New(struct{}{})
	require.NoError(t, err)

	assert.Same(t, first, second)
}
