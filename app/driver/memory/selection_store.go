package memory

import (
	"log/slog"
	"sync"

	"chronicle-service/app/domain"
	"chronicle-service/app/port"
)

// SelectionStore holds the "currently selected" slots in process memory,
// scoped per client key. Racing writers within one scope resolve
// last-write-wins; readers never observe a torn value.
type SelectionStore struct {
	mu     sync.RWMutex
	slots  map[string]map[domain.SelectionKind]string
	logger *slog.Logger
}

// NewSelectionStore creates an empty selection store
func NewSelectionStore(logger *slog.Logger) port.SelectionStore {
	return &SelectionStore{
		slots:  make(map[string]map[domain.SelectionKind]string),
		logger: logger.With("component", "selection_store"),
	}
}

// Set overwrites the slot of the given kind for the client scope
func (s *SelectionStore) Set(clientID string, kind domain.SelectionKind, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.slots[clientID]
	if !ok {
		client = make(map[domain.SelectionKind]string)
		s.slots[clientID] = client
	}
	client[kind] = value

	s.logger.Debug("selection set", "client_id", clientID, "kind", string(kind))
}

// Get reads the slot of the given kind for the client scope
func (s *SelectionStore) Get(clientID string, kind domain.SelectionKind) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	client, ok := s.slots[clientID]
	if !ok {
		return "", false
	}
	value, ok := client[kind]
	return value, ok
}
