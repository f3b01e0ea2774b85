// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// seq_test.go — Tests for the range-over-func adapters and the
// find/count helpers over the in-use slots.
package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/slotpool/pool"
)

func TestAll_VisitsOnlyInUseSlotsInOrder(t *testing.T) {
	p := pool.New[color](10)
	for _, pos := range []int{0, 3, 5, 9} {
		obj, err := p.Use(pos)
		require.NoError(t, err)
		obj.r = uint8(pos * 10)
	}

	var indices []int
	var reds []uint8
	for pos, obj := range p.All() {
		indices = append(indices, pos)
		reds = append(reds, obj.r)
	}

	assert.Equal(t, []int{0, 3, 5, 9}, indices)
	assert.Equal(t, []uint8{0, 30, 50, 90}, reds)
}

func TestAll_EarlyBreak(t *testing.T) {
	p := pool.New[color](5)
	for i := 0; i < 5; i++ {
		_, _, err := p.UseNext()
		require.NoError(t, err)
	}

	visited := 0
	for range p.All() {
		visited++
		if visited == 2 {
			break
		}
	}
	assert.Equal(t, 2, visited)
}

func TestValues_MutableView(t *testing.T) {
	p := pool.New[color](4)
	for i := 0; i < 4; i++ {
		_, _, err := p.UseNext()
		require.NoError(t, err)
	}
	require.NoError(t, p.UnUse(2))

	for obj := range p.Values() {
		obj.r += 100
	}

	assert.Equal(t, uint8(100), p.At(0).r)
	assert.Equal(t, uint8(100), p.At(1).r)
	assert.Equal(t, uint8(0), p.At(2).r, "free slot untouched")
	assert.Equal(t, uint8(100), p.At(3).r)
}

func TestFind(t *testing.T) {
	p := pool.New[color](5)
	for i := 0; i < 5; i++ {
		_, obj, err := p.UseNext()
		require.NoError(t, err)
		obj.r = uint8(i * 10)
	}
	require.NoError(t, p.UnUse(2))

	pos, obj, ok := p.Find(func(c *color) bool { return c.r == 40 })
	require.True(t, ok)
	assert.Equal(t, 4, pos)
	assert.Equal(t, uint8(40), obj.r)

	// The freed slot's value no longer participates.
	_, _, ok = p.Find(func(c *color) bool { return c.r == 20 })
	assert.False(t, ok)
}

func TestCount(t *testing.T) {
	p := pool.New[color](10)
	for i := 0; i < 10; i++ {
		_, obj, err := p.UseNext()
		require.NoError(t, err)
		if i%2 == 0 {
			obj.r = 100
		} else {
			obj.r = 50
		}
	}
	require.NoError(t, p.UnUse(2))
	require.NoError(t, p.UnUse(6))

	n := p.Count(func(c *color) bool { return c.r == 100 })
	assert.Equal(t, 3, n, "slots 0, 4, 8 remain")
}

func TestAll_EmptyPool(t *testing.T) {
	p := pool.New[color](3)
	for range p.All() {
		t.Fatal("empty pool must yield nothing")
	}
}
