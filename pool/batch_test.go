// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// batch_test.go — Tests for batched acquisition and release.
package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/slotpool/api"
	"github.com/momentics/slotpool/pool"
)

func TestBatch_AcquireRelease(t *testing.T) {
	p := pool.New[color](8)
	b := pool.NewBatch(p, 8)

	for i := 0; i < 5; i++ {
		obj, err := b.UseNext()
		require.NoError(t, err)
		require.NotNil(t, obj)
	}
	assert.Equal(t, 5, b.Len())
	assert.Equal(t, 5, p.InUse())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, b.Indices())

	b.ReleaseAll()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, p.InUse())
}

func TestBatch_UseNextReplaceValue(t *testing.T) {
	p := pool.New[color](4)
	b := pool.NewBatch(p, 4)

	obj, err := b.UseNextReplaceValue(color{r: 3})
	require.NoError(t, err)
	assert.Equal(t, uint8(3), obj.r)
	assert.Equal(t, 1, b.Len())
}

func TestBatch_FullPropagates(t *testing.T) {
	p := pool.New[color](2)
	b := pool.NewBatch(p, 2)

	_, err := b.UseNext()
	require.NoError(t, err)
	_, err = b.UseNext()
	require.NoError(t, err)

	_, err = b.UseNext()
	require.ErrorIs(t, err, api.ErrFull)
	assert.Equal(t, 2, b.Len(), "failed acquisition is not recorded")
}

func TestBatch_ReleaseAllSkipsManuallyFreedSlots(t *testing.T) {
	p := pool.New[color](4)
	b := pool.NewBatch(p, 4)

	for i := 0; i < 3; i++ {
		_, err := b.UseNext()
		require.NoError(t, err)
	}
	require.NoError(t, p.UnUse(1))

	b.ReleaseAll()
	assert.Equal(t, 0, p.InUse())
	assert.Equal(t, 0, b.Len())
}

func TestBatch_ReusableAfterRelease(t *testing.T) {
	p := pool.New[color](3)
	b := pool.NewBatch(p, 3)

	_, err := b.UseNext()
	require.NoError(t, err)
	b.ReleaseAll()

	obj, err := b.UseNext()
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 1, p.InUse())
}
