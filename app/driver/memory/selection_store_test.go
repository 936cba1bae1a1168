package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronicle-service/app/domain"
	"chronicle-service/app/utils/logger"
)

func newTestStore(t *testing.T) *SelectionStore {
	t.Helper()

	testLogger, err := logger.New("error")
	require.NoError(t, err)

	return NewSelectionStore(testLogger).(*SelectionStore)
}

func TestSelectionStore_SetGet(t *testing.T) {
	store := newTestStore(t)

	_, ok := store.Get(domain.DefaultClientID, domain.SelectionArticleID)
	assert.False(t, ok, "empty store must report not set")

	store.Set(domain.DefaultClientID, domain.SelectionArticleID, "5")

	value, ok := store.Get(domain.DefaultClientID, domain.SelectionArticleID)
	require.True(t, ok)
	assert.Equal(t, "5", value)
}

func TestSelectionStore_OverwriteWins(t *testing.T) {
	store := newTestStore(t)

	store.Set(domain.DefaultClientID, domain.SelectionUsername, "alice")
	store.Set(domain.DefaultClientID, domain.SelectionUsername, "bob")

	value, ok := store.Get(domain.DefaultClientID, domain.SelectionUsername)
	require.True(t, ok)
	assert.Equal(t, "bob", value)
}

func TestSelectionStore_ScopesAreIsolated(t *testing.T) {
	store := newTestStore(t)

	store.Set("client-a", domain.SelectionTweetLink, "https://x.com/a/1")
	store.Set("client-b", domain.SelectionTweetLink, "https://x.com/b/2")

	a, ok := store.Get("client-a", domain.SelectionTweetLink)
	require.True(t, ok)
	assert.Equal(t, "https://x.com/a/1", a)

	b, ok := store.Get("client-b", domain.SelectionTweetLink)
	require.True(t, ok)
	assert.Equal(t, "https://x.com/b/2", b)
}

func TestSelectionStore_KindsAreIndependent(t *testing.T) {
	store := newTestStore(t)

	store.Set(domain.DefaultClientID, domain.SelectionArticleID, "9")

	_, ok := store.Get(domain.DefaultClientID, domain.SelectionTweetLink)
	assert.False(t, ok)
}

// Concurrent writers racing the same slot must end with one of the written
// values intact, never a mixed or corrupted one.
func TestSelectionStore_ConcurrentLastWriteWins(t *testing.T) {
	store := newTestStore(t)

	written := map[string]struct{}{}
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		value := fmt.Sprintf("%d", i)
		written[value] = struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Set(domain.DefaultClientID, domain.SelectionArticleID, value)
		}()
	}
	wg.Wait()

	got, ok := store.Get(domain.DefaultClientID, domain.SelectionArticleID)
	require.True(t, ok)
	_, valid := written[got]
	assert.True(t, valid, "value %q was never written", got)
}
