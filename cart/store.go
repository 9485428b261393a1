package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/SebastianPortocarrero/TFVitanza/models"
	"github.com/SebastianPortocarrero/TFVitanza/retry"
)

// ErrEntryNotFound is returned when a mutation addresses an entry id that is
// no longer in the cart.
var ErrEntryNotFound = errors.New("cart entry not found")

const snapshotKeyPrefix = "vitanza_cart:"

// Store is the single source of truth for one session's cart.
//
// While the session is anonymous the cart lives in memory and is mirrored to
// the local key-value store on every mutation. After login the cart is
// sourced from and mirrored to the remote backend; anonymous entries are
// discarded wholesale (replace-on-login, no merge) and local storage is never
// written again, so a shared device cannot leak one account's cart into the
// next.
//
// Memory is authoritative: mutations land in the entry list first and the
// remote mirror is best effort. A failed remote add leaves the entry in
// place flagged Unsynced; failed updates and removals resynchronize by
// refetching the remote state.
type Store struct {
	mu         sync.Mutex
	sessionKey string
	userID     string // empty while anonymous
	entries    []Entry

	backend Backend
	local   KV
}

func NewStore(sessionKey string, backend Backend, local KV) *Store {
	return &Store{sessionKey: sessionKey, backend: backend, local: local}
}

// Load hydrates the store: from the local snapshot while anonymous, from the
// remote backend once authenticated.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	userID := s.userID
	s.mu.Unlock()

	if userID == "" {
		return s.loadLocal()
	}
	return s.reloadRemote(ctx)
}

// Login switches the store to the authenticated state. The anonymous cart is
// discarded and replaced wholesale with the remote cart for this user.
func (s *Store) Login(ctx context.Context, userID string) error {
	s.mu.Lock()
	s.userID = userID
	s.entries = nil
	s.mu.Unlock()

	return s.reloadRemote(ctx)
}

// Logout clears the cart and returns the store to the anonymous state. The
// now-inaccessible remote cart is not copied into local storage; the local
// snapshot is reset to empty.
func (s *Store) Logout() {
	s.mu.Lock()
	s.userID = ""
	s.entries = nil
	s.persistLocalLocked()
	s.mu.Unlock()
}

// AddItem computes the customized macros and price, appends the entry
// immediately, and mirrors it to the remote backend when authenticated. A
// failed remote write keeps the entry, flagged Unsynced.
func (s *Store) AddItem(ctx context.Context, item models.MenuItem, rules []models.CustomizationRule, quantity int) (Entry, error) {
	if quantity < 1 {
		quantity = 1
	}
	entry := newEntry(item, rules, quantity)

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	userID := s.userID
	if userID == "" {
		s.persistLocalLocked()
	}
	s.mu.Unlock()

	if userID == "" {
		return entry, nil
	}

	if err := s.backend.Add(ctx, userID, entry); err != nil {
		log.Printf("❌ Failed to persist cart entry remotely: %v", err)
		s.markUnsynced(entry.ID)
		return s.findEntry(entry.ID), nil
	}

	// Reload to pick up the backing id assigned by the remote store. The
	// reload replaces local entry ids, so the added entry is recovered as
	// the newest row for this item.
	if err := s.reloadRemote(ctx); err != nil {
		log.Printf("❌ Failed to reload cart after add: %v", err)
		return s.findEntry(entry.ID), nil
	}
	return s.latestForItem(item.ID), nil
}

// RemoveEntry removes the entry with the given id. When the entry is backed
// remotely a failed delete is resolved by refetching the remote state rather
// than retrying the delete.
func (s *Store) RemoveEntry(ctx context.Context, entryID string) error {
	s.mu.Lock()
	idx := s.indexOfLocked(entryID)
	if idx < 0 {
		s.mu.Unlock()
		return ErrEntryNotFound
	}
	removed := s.entries[idx]
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	userID := s.userID
	if userID == "" {
		s.persistLocalLocked()
	}
	s.mu.Unlock()

	if userID == "" || removed.BackingID == "" {
		return nil
	}

	if err := s.backend.Remove(ctx, userID, removed.BackingID); err != nil {
		log.Printf("❌ Failed to delete cart entry remotely, resyncing: %v", err)
		if reloadErr := s.reloadRemote(ctx); reloadErr != nil {
			log.Printf("❌ Failed to resync cart: %v", reloadErr)
		}
	}
	return nil
}

// RemoveAt removes by position, for clients that still address entries by
// index. Positions follow insertion order.
func (s *Store) RemoveAt(ctx context.Context, index int) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.entries) {
		s.mu.Unlock()
		return ErrEntryNotFound
	}
	id := s.entries[index].ID
	s.mu.Unlock()

	return s.RemoveEntry(ctx, id)
}

// UpdateQuantity sets the entry's quantity. A quantity of zero or less
// removes the entry.
func (s *Store) UpdateQuantity(ctx context.Context, entryID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveEntry(ctx, entryID)
	}

	s.mu.Lock()
	idx := s.indexOfLocked(entryID)
	if idx < 0 {
		s.mu.Unlock()
		return ErrEntryNotFound
	}
	s.entries[idx].Quantity = quantity
	backingID := s.entries[idx].BackingID
	userID := s.userID
	if userID == "" {
		s.persistLocalLocked()
	}
	s.mu.Unlock()

	if userID == "" || backingID == "" {
		return nil
	}

	if err := s.backend.UpdateQuantity(ctx, userID, backingID, quantity); err != nil {
		log.Printf("❌ Failed to update cart entry remotely, resyncing: %v", err)
		if reloadErr := s.reloadRemote(ctx); reloadErr != nil {
			log.Printf("❌ Failed to resync cart: %v", reloadErr)
		}
	}
	return nil
}

// Clear empties the cart immediately and deletes all remote rows for the
// user when authenticated.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.entries = nil
	userID := s.userID
	if userID == "" {
		s.persistLocalLocked()
	}
	s.mu.Unlock()

	if userID == "" {
		return
	}
	if err := s.backend.Clear(ctx, userID); err != nil {
		log.Printf("❌ Failed to clear remote cart: %v", err)
	}
}

// Entries returns a copy of the cart in insertion order.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Total is the sum of customized price times quantity over all entries.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, e := range s.entries {
		total += e.Price * float64(e.Quantity)
	}
	return total
}

// UserID returns the authenticated user id, or empty while anonymous.
func (s *Store) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// reloadRemote replaces the entry list with the remote state. Unsynced
// entries have no remote counterpart and are carried over so they stay
// visible for a retry.
func (s *Store) reloadRemote(ctx context.Context) error {
	s.mu.Lock()
	userID := s.userID
	s.mu.Unlock()
	if userID == "" {
		return nil
	}

	var fetched []Entry
	err := retry.Do(ctx, retry.DefaultAttempts, retry.DefaultDelay, func() error {
		var err error
		fetched, err = s.backend.Fetch(ctx, userID)
		return err
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	var unsynced []Entry
	for _, e := range s.entries {
		if e.Unsynced {
			unsynced = append(unsynced, e)
		}
	}
	s.entries = append(fetched, unsynced...)
	s.mu.Unlock()
	return nil
}

func (s *Store) loadLocal() error {
	value, ok, err := s.local.Get(snapshotKeyPrefix + s.sessionKey)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(value), &entries); err != nil {
		log.Printf("❌ Discarding corrupt local cart snapshot: %v", err)
		return s.local.Delete(snapshotKeyPrefix + s.sessionKey)
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
	return nil
}

// persistLocalLocked writes the full cart snapshot to local storage. Callers
// must hold s.mu and must only call this while anonymous.
func (s *Store) persistLocalLocked() {
	// A nil slice marshals to "null"; an empty cart must snapshot as "[]".
	snapshot := s.entries
	if snapshot == nil {
		snapshot = []Entry{}
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("❌ Failed to encode cart snapshot: %v", err)
		return
	}
	if err := s.local.Set(snapshotKeyPrefix+s.sessionKey, string(data)); err != nil {
		log.Printf("❌ Failed to write cart snapshot: %v", err)
	}
}

func (s *Store) indexOfLocked(entryID string) int {
	for i, e := range s.entries {
		if e.ID == entryID {
			return i
		}
	}
	return -1
}

func (s *Store) markUnsynced(entryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOfLocked(entryID); idx >= 0 {
		s.entries[idx].Unsynced = true
	}
}

func (s *Store) latestForItem(itemID string) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Item.ID == itemID {
			return s.entries[i]
		}
	}
	return Entry{}
}

func (s *Store) findEntry(entryID string) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOfLocked(entryID); idx >= 0 {
		return s.entries[idx]
	}
	return Entry{ID: entryID}
}
