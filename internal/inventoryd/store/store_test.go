package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosk404/stockmind/internal/inventory"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(inventory.Snapshot{"tshirts": 20, "pants": 15}, true)
}

func TestStore_Snapshot_IsACopy(t *testing.T) {
	s := newTestStore(t)

	snap := s.Snapshot()
	snap["tshirts"] = 999

	assert.Equal(t, 20, s.Snapshot()["tshirts"])
}

func TestStore_Apply_Success(t *testing.T) {
	s := newTestStore(t)

	snap, err := s.Apply("tshirts", 5)
	require.NoError(t, err)
	assert.Equal(t, inventory.Snapshot{"tshirts": 25, "pants": 15}, snap)
}

func TestStore_Apply_RejectsBelowZero(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Apply("tshirts", -25)
	require.Error(t, err)

	var rej *RejectionError
	require.ErrorAs(t, err, &rej)
	assert.Contains(t, rej.Error(), "tshirts")
	assert.Contains(t, rej.Error(), "20")

	// Rejected updates leave the snapshot unchanged.
	assert.Equal(t, inventory.Snapshot{"tshirts": 20, "pants": 15}, s.Snapshot())
}

func TestStore_Apply_InverseLaw(t *testing.T) {
	s := newTestStore(t)
	before := s.Snapshot()

	_, err := s.Apply("pants", 7)
	require.NoError(t, err)
	after, err := s.Apply("pants", -7)
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestStore_Apply_StrictRejectsUnknownItem(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Apply("hats", 5)
	var unknown *UnknownItemError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "hats", unknown.Item)
	assert.False(t, s.Recognizes("hats"))
}

func TestStore_Apply_AutoCreateWhenNotStrict(t *testing.T) {
	s := New(inventory.Snapshot{"tshirts": 20}, false)

	snap, err := s.Apply("hats", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, snap["hats"])

	// Still never below zero, even for a freshly created item.
	_, err = s.Apply("socks", -1)
	require.Error(t, err)
}

func TestStore_Items_Sorted(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, []string{"pants", "tshirts"}, s.Items())
}

func TestStore_Apply_ConcurrentUpdatesNeverGoNegative(t *testing.T) {
	s := New(inventory.Snapshot{"tshirts": 50}, true)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if snap, err := s.Apply("tshirts", -1); err == nil {
				assert.GreaterOrEqual(t, snap["tshirts"], 0)
			}
		}()
	}
	wg.Wait()

	// 100 decrements raced over 50 units: exactly 50 succeed.
	assert.Equal(t, 0, s.Snapshot()["tshirts"])
}
