package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeAndClearDeliversExactlyOnce(t *testing.T) {
	s := New()
	s.Put(ResultKey, "payload")

	value, ok := s.TakeAndClear(ResultKey)
	require.True(t, ok)
	assert.Equal(t, "payload", value)

	_, ok = s.TakeAndClear(ResultKey)
	assert.False(t, ok)
}

func TestTakeAbsentKey(t *testing.T) {
	s := New()

	value, ok := s.TakeAndClear("never-written")
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestPutOverwritesPendingEntry(t *testing.T) {
	s := New()
	s.Put(ResultKey, "first")
	s.Put(ResultKey, "second")

	value, ok := s.TakeAndClear(ResultKey)
	require.True(t, ok)
	assert.Equal(t, "second", value)

	// Not a queue: the overwritten entry is gone.
	_, ok = s.TakeAndClear(ResultKey)
	assert.False(t, ok)
}

func TestFallbackRecoversOnce(t *testing.T) {
	s := New()
	s.Put(ResultKey, "payload")

	// Lifecycle teardown wipes the primary store before the consumer mounts.
	s.Reset()

	value, ok := s.TakeAndClear(ResultKey)
	require.True(t, ok)
	assert.Equal(t, "payload", value)

	// Recovery is one-shot.
	_, ok = s.TakeAndClear(ResultKey)
	assert.False(t, ok)
}

func TestDropDiscardsBothSlots(t *testing.T) {
	s := New()
	s.Put(ResultKey, "payload")
	s.Drop(ResultKey)

	_, ok := s.TakeAndClear(ResultKey)
	assert.False(t, ok)
}

func TestKeysAreIndependent(t *testing.T) {
	s := New()
	s.Put("a", 1)
	s.Put("b", 2)

	value, ok := s.TakeAndClear("a")
	require.True(t, ok)
	assert.Equal(t, 1, value)

	value, ok = s.TakeAndClear("b")
	require.True(t, ok)
	assert.Equal(t, 2, value)
}
