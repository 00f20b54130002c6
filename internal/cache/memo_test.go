package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoStore_GetSet(t *testing.T) {
	store := NewMemoStore[int]()

	_, ok := store.Get("missing")
	assert.False(t, ok)

	store.Set("a", 1)
	store.Set("b", 2)

	v, ok := store.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, store.Size())
}

func TestMemoStore_Overwrite(t *testing.T) {
	store := NewMemoStore[string]()

	store.Set("k", "first")
	store.Set("k", "second")

	v, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "second", v)
	assert.Equal(t, 1, store.Size())
}

func TestMemoStore_Purge(t *testing.T) {
	store := NewMemoStore[int]()

	for i := 0; i < 10; i++ {
		store.Set(fmt.Sprintf("key-%d", i), i)
	}
	require.Equal(t, 10, store.Size())

	store.Purge()

	assert.Equal(t, 0, store.Size())
	_, ok := store.Get("key-0")
	assert.False(t, ok)
}

func TestMemoStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoStore[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%5)
			store.Set(key, n)
			store.Get(key)
			if n%10 == 0 {
				store.Purge()
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, store.Size(), 5)
}
