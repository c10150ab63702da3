package session

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"fridgescan/internal/config"
	"fridgescan/internal/logging"
	"fridgescan/internal/scan"
)

// Store manages the scan session and its persistence.
type Store struct {
	path   string
	lock   *flock.Flock
	logger *slog.Logger

	mu    sync.RWMutex
	state State
}

// Open acquires the session lock, rehydrates from the persisted snapshot if
// one exists, and returns the store. A corrupt or unreadable snapshot starts
// the session fresh with a warning rather than failing.
func Open(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}
	logger = logging.NewComponentLogger(logger, "session")

	lock := flock.New(cfg.SessionLockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrLocked
	}

	store := &Store{
		path:   cfg.SessionPath(),
		lock:   lock,
		logger: logger,
	}

	state, err := loadState(store.path)
	if err != nil {
		logger.Warn("failed to load scan session",
			logging.Error(err),
			logging.String(logging.FieldEventType, "session_load_failed"),
			logging.String(logging.FieldImpact, "starting with an empty session"))
	}
	store.state = state

	return store, nil
}

// Close releases the session lock. State already written stays on disk.
func (s *Store) Close() error {
	if s == nil || s.lock == nil {
		return nil
	}
	return s.lock.Unlock()
}

// Session returns a copy of the current session state.
func (s *Store) Session() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Items returns a copy of the session's item list in detection order.
func (s *Store) Items() []scan.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyItems(s.state.Items)
}

// UnknownItems returns the items still needing user attention.
func (s *Store) UnknownItems() []scan.Item {
	return scan.UnknownItems(s.Items())
}

// IdentifiedItems returns the resolved items.
func (s *Store) IdentifiedItems() []scan.Item {
	return scan.IdentifiedItems(s.Items())
}

// UnlabeledCount counts items with no name and no user label.
func (s *Store) UnlabeledCount() int {
	return scan.UnlabeledCount(s.Items())
}

// Start opens a new capture-to-confirmation session, replacing the item list.
// Calling it while a session is active discards that session's items; the
// loss is logged so it is at least observable.
func (s *Store) Start(sourceImageRef string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.IsActive && len(s.state.Items) > 0 {
		s.logger.Warn("starting new session over an active one",
			logging.Int("discarded_items", len(s.state.Items)),
			logging.String(logging.FieldEventType, "session_restarted"),
			logging.String(logging.FieldImpact, "previous session items are lost"))
	}

	now := time.Now().UTC()
	s.state = State{
		IsActive:       true,
		StartedAt:      &now,
		SourceImageRef: sourceImageRef,
		Items:          []scan.Item{},
	}
	s.persistLocked()
}

// SetSourceImage updates the most recent captured-image reference.
func (s *Store) SetSourceImage(ref string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SourceImageRef = ref
	s.persistLocked()
}

// End deactivates the session but keeps its items so a later review can
// still read them.
func (s *Store) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsActive = false
	s.persistLocked()
}

// Reset clears the session entirely and deletes the persisted snapshot. A
// fresh load afterwards sees the empty default, not a stale record.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = defaultState()
	if err := removeState(s.path); err != nil {
		s.logger.Warn("failed to remove session snapshot",
			logging.Error(err),
			logging.String(logging.FieldEventType, "session_reset_failed"),
			logging.String(logging.FieldImpact, "a stale snapshot may rehydrate on next start"))
	}
}

// AddItem assigns a fresh id to the proto and appends it.
func (s *Store) AddItem(proto scan.Proto) scan.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := proto.Item(uuid.NewString())
	s.state.Items = append(s.state.Items, item)
	s.persistLocked()
	return item
}

// AddItems appends the protos in order, each with a fresh id. There is no
// de-duplication: two items with the same name may coexist.
func (s *Store) AddItems(protos []scan.Proto) []scan.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	added := make([]scan.Item, 0, len(protos))
	for _, proto := range protos {
		item := proto.Item(uuid.NewString())
		s.state.Items = append(s.state.Items, item)
		added = append(added, item)
	}
	s.persistLocked()
	return added
}

// UpdateItem applies the patch to the item with the given id. It reports
// whether the id was found; callers free to ignore an unknown id may do so.
func (s *Store) UpdateItem(id string, patch scan.Patch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Items {
		if s.state.Items[i].ID == id {
			patch.Apply(&s.state.Items[i])
			s.persistLocked()
			return true
		}
	}
	return false
}

// RemoveItem deletes the item with the given id, reporting whether it was
// found.
func (s *Store) RemoveItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Items {
		if s.state.Items[i].ID == id {
			s.state.Items = append(s.state.Items[:i], s.state.Items[i+1:]...)
			s.persistLocked()
			return true
		}
	}
	return false
}

// LabelItem commits a user label: the item's name and user label are set and
// it becomes identified. The transition is one-way; re-labeling with another
// string is allowed and replaces the previous label. Empty or whitespace-only
// labels are rejected before any mutation. Labeling still works after End,
// since items are never removed implicitly.
func (s *Store) LabelItem(id, label string) (scan.Item, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return scan.Item{}, ErrEmptyLabel
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Items {
		if s.state.Items[i].ID != id {
			continue
		}
		item := &s.state.Items[i]
		item.Name = label
		item.UserLabel = label
		item.IsUserLabeled = true
		item.DetectionType = scan.DetectionIdentified
		s.persistLocked()
		return *item, nil
	}
	return scan.Item{}, ErrItemNotFound
}

// persistLocked writes the full snapshot. Failures are logged, never raised:
// the in-memory session stays authoritative even when storage misbehaves.
// Callers must hold mu.
func (s *Store) persistLocked() {
	if err := saveState(s.path, s.state); err != nil {
		s.logger.Warn("failed to persist scan session",
			logging.Error(err),
			logging.String(logging.FieldEventType, "session_persist_failed"),
			logging.String(logging.FieldImpact, "changes will not survive a restart"))
	}
}

func (s *Store) snapshotLocked() State {
	snapshot := s.state
	snapshot.Items = copyItems(s.state.Items)
	if s.state.StartedAt != nil {
		startedAt := *s.state.StartedAt
		snapshot.StartedAt = &startedAt
	}
	return snapshot
}

func copyItems(items []scan.Item) []scan.Item {
	cp := make([]scan.Item, len(items))
	copy(cp, items)
	return cp
}
