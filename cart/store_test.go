package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/SebastianPortocarrero/TFVitanza/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend is an in-memory remote cart keyed by user.
type fakeBackend struct {
	mu      sync.Mutex
	rows    map[string][]Entry // BackingID set, local ID empty
	nextID  int
	failAdd, failRemove, failUpdate, failFetch bool

	fetchCalls int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{rows: make(map[string][]Entry)}
}

func (b *fakeBackend) Fetch(_ context.Context, userID string) ([]Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fetchCalls++
	if b.failFetch {
		return nil, errors.New("remote unavailable")
	}
	out := make([]Entry, len(b.rows[userID]))
	for i, row := range b.rows[userID] {
		row.ID = fmt.Sprintf("local-%s", row.BackingID)
		out[i] = row
	}
	return out, nil
}

func (b *fakeBackend) Add(_ context.Context, userID string, e Entry) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failAdd {
		return errors.New("remote unavailable")
	}
	b.nextID++
	e.ID = ""
	e.BackingID = fmt.Sprintf("row-%d", b.nextID)
	b.rows[userID] = append(b.rows[userID], e)
	return nil
}

func (b *fakeBackend) UpdateQuantity(_ context.Context, userID, backingID string, quantity int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failUpdate {
		return errors.New("remote unavailable")
	}
	for i, row := range b.rows[userID] {
		if row.BackingID == backingID {
			b.rows[userID][i].Quantity = quantity
			return nil
		}
	}
	return errors.New("row not found")
}

func (b *fakeBackend) Remove(_ context.Context, userID, backingID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failRemove {
		return errors.New("remote unavailable")
	}
	rows := b.rows[userID]
	for i, row := range rows {
		if row.BackingID == backingID {
			b.rows[userID] = append(rows[:i], rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (b *fakeBackend) Clear(_ context.Context, userID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.rows, userID)
	return nil
}

// fakeKV is an in-memory local store.
type fakeKV struct {
	mu       sync.Mutex
	data     map[string]string
	setCalls int
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (kv *fakeKV) Get(key string) (string, bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	v, ok := kv.data[key]
	return v, ok, nil
}

func (kv *fakeKV) Set(key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.setCalls++
	kv.data[key] = value
	return nil
}

func (kv *fakeKV) Delete(key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.data, key)
	return nil
}

func bowl() models.MenuItem {
	return models.MenuItem{ID: "bowl", Name: "Power Bowl", Price: 20.00, Macros: models.Macros{Calories: 500, Protein: 40}}
}

func wrap() models.MenuItem {
	return models.MenuItem{ID: "wrap", Name: "Wrap Fit", Price: 15.50, Macros: models.Macros{Calories: 380, Protein: 28}}
}

func plusTwo() models.CustomizationRule {
	return models.CustomizationRule{ID: "plus-two", Type: models.CustomizationProtein, PriceModifier: 2.00}
}

func TestAnonymousCartPersistsLocally(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	kv := newFakeKV()

	store := NewStore("guest_1", backend, kv)
	require.NoError(t, store.Load(ctx))

	_, err := store.AddItem(ctx, bowl(), nil, 2)
	require.NoError(t, err)
	_, err = store.AddItem(ctx, wrap(), []models.CustomizationRule{plusTwo()}, 1)
	require.NoError(t, err)

	assert.InDelta(t, 57.50, store.Total(), 1e-9)
	assert.Zero(t, backend.fetchCalls, "anonymous carts never touch the remote store")

	// A fresh store for the same session rehydrates from the snapshot.
	reloaded := NewStore("guest_1", backend, kv)
	require.NoError(t, reloaded.Load(ctx))
	entries := reloaded.Entries()
	require.Len(t, entries, 2)
	assert.Empty(t, entries[0].BackingID)
	assert.InDelta(t, 57.50, reloaded.Total(), 1e-9)
}

func TestTotalInvariantAcrossMutations(t *testing.T) {
	ctx := context.Background()
	store := NewStore("guest_1", newFakeBackend(), newFakeKV())

	checkInvariant := func() {
		var want float64
		for _, e := range store.Entries() {
			want += e.Price * float64(e.Quantity)
		}
		assert.InDelta(t, want, store.Total(), 1e-9)
	}

	added, err := store.AddItem(ctx, bowl(), nil, 2)
	require.NoError(t, err)
	checkInvariant()

	other, err := store.AddItem(ctx, wrap(), []models.CustomizationRule{plusTwo()}, 3)
	require.NoError(t, err)
	checkInvariant()

	require.NoError(t, store.UpdateQuantity(ctx, added.ID, 5))
	checkInvariant()

	require.NoError(t, store.RemoveEntry(ctx, other.ID))
	checkInvariant()

	// Zero quantity removes the entry.
	require.NoError(t, store.UpdateQuantity(ctx, added.ID, 0))
	assert.Empty(t, store.Entries())
	assert.Zero(t, store.Total())
}

func TestAuthenticatedAddPicksUpBackingID(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	kv := newFakeKV()

	store := NewStore("user-1", backend, kv)
	require.NoError(t, store.Login(ctx, "user-1"))

	entry, err := store.AddItem(ctx, bowl(), nil, 1)
	require.NoError(t, err)

	assert.NotEmpty(t, entry.BackingID)
	assert.False(t, entry.Unsynced)
	assert.Zero(t, kv.setCalls, "authenticated sessions never write local storage")
}

func TestAddRemoteFailureKeepsUnsyncedEntry(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	backend.failAdd = true

	store := NewStore("user-1", backend, newFakeKV())
	require.NoError(t, store.Login(ctx, "user-1"))

	entry, err := store.AddItem(ctx, bowl(), nil, 2)
	require.NoError(t, err, "a remote write failure must not fail the local add")

	entries := store.Entries()
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Unsynced)
	assert.Empty(t, entries[0].BackingID)
	assert.Equal(t, entry.ID, entries[0].ID)
	assert.InDelta(t, 40.00, store.Total(), 1e-9)
}

func TestUnsyncedEntrySurvivesResync(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	store := NewStore("user-1", backend, newFakeKV())
	require.NoError(t, store.Login(ctx, "user-1"))

	// One synced entry, then one that fails to persist.
	_, err := store.AddItem(ctx, bowl(), nil, 1)
	require.NoError(t, err)
	backend.failAdd = true
	unsynced, err := store.AddItem(ctx, wrap(), nil, 1)
	require.NoError(t, err)

	// A failed update on the synced entry forces a refetch.
	backend.failUpdate = true
	synced := store.Entries()[0]
	require.NoError(t, store.UpdateQuantity(ctx, synced.ID, 7))

	var foundUnsynced bool
	for _, e := range store.Entries() {
		if e.Unsynced && e.Item.ID == unsynced.Item.ID {
			foundUnsynced = true
		}
	}
	assert.True(t, foundUnsynced, "unsynced entries must stay visible after a resync")
}

func TestUpdateQuantityFailureResyncsFromRemote(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	store := NewStore("user-1", backend, newFakeKV())
	require.NoError(t, store.Login(ctx, "user-1"))

	_, err := store.AddItem(ctx, bowl(), nil, 2)
	require.NoError(t, err)

	backend.failUpdate = true
	entry := store.Entries()[0]
	require.NoError(t, store.UpdateQuantity(ctx, entry.ID, 9))

	// The optimistic quantity was rolled back to the remote state.
	entries := store.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Quantity)
}

func TestRemoveFailureResyncsFromRemote(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	store := NewStore("user-1", backend, newFakeKV())
	require.NoError(t, store.Login(ctx, "user-1"))

	_, err := store.AddItem(ctx, bowl(), nil, 1)
	require.NoError(t, err)

	backend.failRemove = true
	entry := store.Entries()[0]
	require.NoError(t, store.RemoveEntry(ctx, entry.ID))

	// The delete never landed remotely, so the refetch brings the row back.
	require.Len(t, store.Entries(), 1)
}

func TestLoginReplacesAnonymousCart(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	kv := newFakeKV()

	// The user already has one remote row from a previous session.
	require.NoError(t, backend.Add(ctx, "user-1", Entry{Item: wrap(), Quantity: 1, Price: 15.50}))

	store := NewStore("guest_1", backend, kv)
	require.NoError(t, store.Load(ctx))
	_, err := store.AddItem(ctx, bowl(), nil, 3)
	require.NoError(t, err)
	require.Len(t, store.Entries(), 1)

	require.NoError(t, store.Login(ctx, "user-1"))

	// Replace-on-login: the anonymous entries are discarded, not merged.
	entries := store.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "wrap", entries[0].Item.ID)
	assert.NotEmpty(t, entries[0].BackingID)
	assert.Equal(t, "user-1", store.UserID())
}

func TestLogoutClearsWithoutCopyingRemoteCart(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	kv := newFakeKV()

	store := NewStore("user-1", backend, kv)
	require.NoError(t, store.Login(ctx, "user-1"))
	_, err := store.AddItem(ctx, bowl(), nil, 2)
	require.NoError(t, err)

	store.Logout()

	assert.Empty(t, store.Entries())
	assert.Empty(t, store.UserID())

	// The remote cart still exists but never leaks into local storage.
	snapshot, ok, err := kv.Get("vitanza_cart:user-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, "[]", snapshot)
	require.Len(t, backend.rows["user-1"], 1)
}

func TestClearDeletesRemoteRows(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	store := NewStore("user-1", backend, newFakeKV())
	require.NoError(t, store.Login(ctx, "user-1"))

	_, err := store.AddItem(ctx, bowl(), nil, 1)
	require.NoError(t, err)
	_, err = store.AddItem(ctx, wrap(), nil, 2)
	require.NoError(t, err)

	store.Clear(ctx)

	assert.Empty(t, store.Entries())
	assert.Empty(t, backend.rows["user-1"])
}

func TestClearWritesEmptyArraySnapshot(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	store := NewStore("guest-1", newFakeBackend(), kv)

	_, err := store.AddItem(ctx, bowl(), nil, 1)
	require.NoError(t, err)
	store.Clear(ctx)

	// An emptied cart snapshots as a JSON array, never "null".
	snapshot, ok, err := kv.Get("vitanza_cart:guest-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, "[]", snapshot)
}

func TestManagerLoginDropsGuestStore(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	kv := newFakeKV()
	manager := NewManager(backend, kv)

	guest, err := manager.Session(ctx, "guest_1", "")
	require.NoError(t, err)
	_, err = guest.AddItem(ctx, bowl(), nil, 1)
	require.NoError(t, err)

	userStore, err := manager.Login(ctx, "guest_1", "user-1")
	require.NoError(t, err)
	assert.Empty(t, userStore.Entries())

	// The same session id now resolves to the authenticated store.
	again, err := manager.Session(ctx, "user-1", "user-1")
	require.NoError(t, err)
	assert.Same(t, userStore, again)
}

func TestLoginFetchFailureSurfacesError(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	backend.failFetch = true

	store := NewStore("user-1", backend, newFakeKV())
	err := store.Login(ctx, "user-1")
	require.Error(t, err)

	// The store is authenticated but empty until the next successful reload.
	assert.Equal(t, "user-1", store.UserID())
	assert.Empty(t, store.Entries())
}

func TestLoadDiscardsCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	require.NoError(t, kv.Set("vitanza_cart:guest_1", "{not json"))

	store := NewStore("guest_1", newFakeBackend(), kv)
	require.NoError(t, store.Load(ctx))

	assert.Empty(t, store.Entries())
	_, ok, err := kv.Get("vitanza_cart:guest_1")
	require.NoError(t, err)
	assert.False(t, ok, "corrupt snapshots are deleted")
}
