//
// corvid - a small Go chess engine core (search, TT, iterative deepening)
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//

package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/corvid/internal/types"
)

func TestNew_RoundsToPowerOfTwo(t *testing.T) {
	table := New(1)
	size := table.Size()
	assert.True(t, size > 0 && size&(size-1) == 0, "size %d must be a power of two", size)
}

func TestStoreAndProbe_Hit(t *testing.T) {
	table := New(1)
	var key Key = 0x1234
	table.Store(key, NewMove(SqE2, SqE4, Normal), Score(150), 4, BoundExact)

	entry, hit := table.Probe(key)
	assert.True(t, hit)
	assert.Equal(t, Score(150), entry.Score)
	assert.Equal(t, int8(4), entry.Depth)
	assert.Equal(t, BoundExact, entry.Bound)
}

func TestProbe_MissOnEmptySlot(t *testing.T) {
	table := New(1)
	_, hit := table.Probe(0xDEADBEEF)
	assert.False(t, hit)
}

func TestStore_DoesNotDowngradeDeeperSameGenerationEntry(t *testing.T) {
	table := New(1)
	var key Key = 0x55
	table.Store(key, MoveNone, Score(100), 8, BoundExact)
	table.Store(key, MoveNone, Score(50), 2, BoundUpper)

	entry, hit := table.Probe(key)
	assert.True(t, hit)
	assert.Equal(t, int8(8), entry.Depth)
	assert.Equal(t, Score(100), entry.Score)
}

func TestStore_ExactAlwaysOverwrites(t *testing.T) {
	table := New(1)
	var key Key = 0x99
	table.Store(key, MoveNone, Score(100), 8, BoundUpper)
	table.Store(key, MoveNone, Score(42), 2, BoundExact)

	entry, hit := table.Probe(key)
	assert.True(t, hit)
	assert.Equal(t, Score(42), entry.Score)
}

func TestClear_EmptiesTable(t *testing.T) {
	table := New(1)
	table.Store(1, MoveNone, Score(1), 1, BoundExact)
	table.Clear()
	_, hit := table.Probe(1)
	assert.False(t, hit)
	assert.Equal(t, 0, table.Hashfull())
}

func TestHashfull_ReflectsUsage(t *testing.T) {
	table := New(1)
	assert.Equal(t, 0, table.Hashfull())
	// fill half the slots (keys 0..n-1 map to distinct slots): 500 permille
	for i := 0; i < table.Size()/2; i++ {
		table.Store(Key(i), MoveNone, Score(1), 1, BoundExact)
	}
	assert.Equal(t, 500, table.Hashfull())
}
