package soletest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danpasecinic/sole"
	"github.com/danpasecinic/sole/soletest"
)

type fixture struct {
	Value int
}

func TestDefine_CleansUpRegistration(t *testing.T) {
	t.Run("defines and constructs", func(t *testing.T) {
		class := soletest.Define[fixture, int](
			t, func(f *fixture, v int) error {
				f.Value = v
				return nil
			},
		)

		inst := soletest.MustNew(t, class, 5)
		assert.Equal(t, 5, inst.Value)
		soletest.AssertSingleton[fixture](t)
	})

	// The subtest's cleanup ran, so the type can be defined again.
	assert.False(t, sole.IsSingleton[fixture]())

	class := soletest.Define[fixture, int](t, nil)
	inst := soletest.MustNew(t, class, 0)
	assert.Equal(t, 0, inst.Value, "fresh definition starts with an empty slot")
}

type replaced struct {
	Value int
}

func TestReplace(t *testing.T) {
	class := soletest.Define[replaced, int](
		t, func(r *replaced, v int) error {
			r.Value = v
			return nil
		},
	)

	soletest.Replace(t, class, &replaced{Value: 42})

	inst, err := class.New(1)
	require.NoError(t, err)
	assert.Equal(t, 42, inst.Value, "construction logic is bypassed for a replaced slot")
}

type undefined struct {
	Value int
}

func TestUndefine(t *testing.T) {
	soletest.Define[undefined, int](t, nil)
	soletest.AssertSingleton[undefined](t)

	soletest.Undefine[undefined](t)
	soletest.AssertNotSingleton[undefined](t)
}
