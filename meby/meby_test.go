package meby_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/meby/meby"
)

var errBoom = errors.New("boom")

func TestInspection(t *testing.T) {
	cases := []struct {
		name                string
		value               meby.Meby[int, error]
		kind                meby.Kind
		isYes, isOops, isNo bool
	}{
		{"yes", meby.Yes[int, error](7), meby.KindYes, true, false, false},
		{"oops", meby.Oops[int](errBoom), meby.KindOops, false, true, false},
		{"nope", meby.Nope[int, error](), meby.KindNope, false, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, tc.value.Kind())
			assert.Equal(t, tc.isYes, tc.value.IsYes())
			assert.Equal(t, tc.isOops, tc.value.IsOops())
			assert.Equal(t, tc.isNo, tc.value.IsNope())
		})
	}
}

func TestZeroValueIsNope(t *testing.T) {
	var zero meby.Meby[string, error]
	assert.True(t, zero.IsNope())
	assert.Equal(t, meby.Nope[string, error](), zero)
	assert.Equal(t, "Nope", zero.String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Yes", meby.KindYes.String())
	assert.Equal(t, "Oops", meby.KindOops.String())
	assert.Equal(t, "Nope", meby.KindNope.String())
	assert.Equal(t, "Kind(9)", meby.Kind(9).String())
}

func TestUnwrap(t *testing.T) {
	assert.Equal(t, 5, meby.Yes[int, error](5).Unwrap())
	assert.PanicsWithValue(t, "meby: Unwrap called on a value that turned out to be an error", func() {
		meby.Oops[int](errBoom).Unwrap()
	})
	assert.PanicsWithValue(t, "meby: Unwrap called on a value that turned out to be nope", func() {
		meby.Nope[int, error]().Unwrap()
	})
}

func TestUnwrapOops(t *testing.T) {
	assert.Equal(t, "bad", meby.Oops[int]("bad").UnwrapOops())
	assert.PanicsWithValue(t, "meby: UnwrapOops called on a value that turned out to be a yes", func() {
		meby.Yes[int, string](1).UnwrapOops()
	})
	assert.PanicsWithValue(t, "meby: UnwrapOops called on a value that turned out to be nope", func() {
		meby.Nope[int, string]().UnwrapOops()
	})
}

func TestGet(t *testing.T) {
	v, ok := meby.Yes[int, error](3).Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = meby.Oops[int](errBoom).Get()
	assert.False(t, ok)
	assert.Zero(t, v)

	err, ok := meby.Oops[int](errBoom).GetOops()
	assert.True(t, ok)
	assert.ErrorIs(t, err, errBoom)

	_, ok = meby.Nope[int, error]().GetOops()
	assert.False(t, ok)
}

func TestUnwrapOr(t *testing.T) {
	assert.Equal(t, 1, meby.Yes[int, error](1).UnwrapOr(9))
	assert.Equal(t, 9, meby.Oops[int](errBoom).UnwrapOr(9))
	assert.Equal(t, 9, meby.Nope[int, error]().UnwrapOr(9))
}

func TestUnwrapOrElse(t *testing.T) {
	onOops := func(err error) string { return "oops: " + err.Error() }
	onNope := func() string { return "nope" }

	assert.Equal(t, "ok", meby.Yes[string, error]("ok").UnwrapOrElse(onOops, onNope))
	assert.Equal(t, "oops: boom", meby.Oops[string](errBoom).UnwrapOrElse(onOops, onNope))
	assert.Equal(t, "nope", meby.Nope[string, error]().UnwrapOrElse(onOops, onNope))
}

func TestYesOr(t *testing.T) {
	t.Run("replaces oops", func(t *testing.T) {
		m := meby.Oops[int](errBoom)
		m.YesOr(4)
		require.True(t, m.IsYes())
		assert.Equal(t, 4, m.Unwrap())
	})
	t.Run("replaces nope", func(t *testing.T) {
		m := meby.Nope[int, error]()
		assert.Equal(t, 4, m.YesOr(4).Unwrap())
	})
	t.Run("keeps yes", func(t *testing.T) {
		m := meby.Yes[int, error](1)
		m.YesOr(4)
		assert.Equal(t, 1, m.Unwrap())
	})
	t.Run("chains on receiver", func(t *testing.T) {
		m := meby.Nope[int, error]()
		got := m.YesOr(2).YesOr(3)
		assert.Same(t, &m, got)
		assert.Equal(t, 2, m.Unwrap())
	})
}

func TestSwap(t *testing.T) {
	a := meby.Yes[string, error]("A")
	b := meby.Oops[string](errBoom)

	prev := a.Swap(b)
	assert.Equal(t, meby.Yes[string, error]("A"), prev)
	assert.Equal(t, b, a)

	prev = a.Swap(meby.Nope[string, error]())
	assert.Equal(t, b, prev)
	assert.True(t, a.IsNope())
}

func TestFilterAndOrElse(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	assert.True(t, meby.Yes[int, error](2).Filter(even).IsYes())
	assert.True(t, meby.Yes[int, error](3).Filter(even).IsNope())
	assert.True(t, meby.Oops[int](errBoom).Filter(even).IsOops())

	fallback := meby.Yes[int, error](10)
	assert.Equal(t, 1, meby.Yes[int, error](1).OrElse(fallback).Unwrap())
	assert.Equal(t, 10, meby.Oops[int](errBoom).OrElse(fallback).Unwrap())
	assert.Equal(t, 10, meby.Nope[int, error]().OrElse(fallback).Unwrap())
}

func TestString(t *testing.T) {
	assert.Equal(t, "Yes(3)", meby.Yes[int, error](3).String())
	assert.Equal(t, "Oops(boom)", meby.Oops[int](errBoom).String())
	assert.Equal(t, "Nope", meby.Nope[int, error]().String())
}
