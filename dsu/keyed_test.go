// SPDX-License-Identifier: MIT

package dsu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unionfind/dsu"
)

func TestKeyed_Basic(t *testing.T) {
	kf, err := dsu.NewKeyed([]string{"A", "B", "C", "D"})
	require.NoError(t, err)
	assert.Equal(t, 4, kf.Len())
	assert.Equal(t, 4, kf.Count())
	assert.True(t, kf.Has("C"))
	assert.False(t, kf.Has("Z"))

	merged, err := kf.Union("A", "C")
	require.NoError(t, err)
	assert.True(t, merged)

	merged, err = kf.Union("C", "A")
	require.NoError(t, err)
	assert.False(t, merged)

	ok, err := kf.Connected("A", "C")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = kf.Connected("B", "D")
	require.NoError(t, err)
	assert.False(t, ok)

	rep, err := kf.Find("C")
	require.NoError(t, err)
	assert.Equal(t, "A", rep)

	assert.Equal(t, 3, kf.Count())
	assert.Equal(t, [][]string{{"A", "C"}, {"B"}, {"D"}}, kf.Groups())
}

func TestKeyed_DuplicateKey(t *testing.T) {
	kf, err := dsu.NewKeyed([]int{1, 2, 1})
	assert.Nil(t, kf)
	assert.ErrorIs(t, err, dsu.ErrDuplicateKey)
}

func TestKeyed_UnknownKey(t *testing.T) {
	kf, err := dsu.NewKeyed([]string{"A", "B"})
	require.NoError(t, err)

	_, err = kf.Find("X")
	assert.ErrorIs(t, err, dsu.ErrUnknownKey)

	merged, err := kf.Union("A", "X")
	assert.ErrorIs(t, err, dsu.ErrUnknownKey)
	assert.False(t, merged)
	assert.Equal(t, 2, kf.Count(), "failed union must not merge anything")

	_, err = kf.Connected("X", "A")
	assert.ErrorIs(t, err, dsu.ErrUnknownKey)
}

func TestKeyed_StructKeys(t *testing.T) {
	type cell struct{ X, Y int }
	keys := []cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	kf, err := dsu.NewKeyed(keys)
	require.NoError(t, err)

	_, err = kf.Union(cell{0, 0}, cell{1, 1})
	require.NoError(t, err)
	_, err = kf.Union(cell{1, 1}, cell{0, 1})
	require.NoError(t, err)

	assert.Equal(t, [][]cell{{{0, 0}, {0, 1}, {1, 1}}, {{1, 0}}}, kf.Groups())
}

func TestKeyed_InputSliceNotRetained(t *testing.T) {
	keys := []string{"A", "B"}
	kf, err := dsu.NewKeyed(keys)
	require.NoError(t, err)
	keys[0] = "Z"

	rep, err := kf.Find("A")
	require.NoError(t, err)
	assert.Equal(t, "A", rep)
}
