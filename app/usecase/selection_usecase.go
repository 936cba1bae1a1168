package usecase

import (
	"log/slog"

	"chronicle-service/app/domain"
	"chronicle-service/app/port"
)

// SelectionUseCase manages the per-client "currently selected" slots used
// to hand an identifier from one screen's request to the next screen's
// fetch.
type SelectionUseCase struct {
	store  port.SelectionStore
	logger *slog.Logger
}

// NewSelectionUseCase creates a new SelectionUseCase instance
func NewSelectionUseCase(store port.SelectionStore, logger *slog.Logger) *SelectionUseCase {
	return &SelectionUseCase{
		store:  store,
		logger: logger.With("component", "selection_usecase"),
	}
}

// SetSelection overwrites the slot of the given kind for the client scope
func (uc *SelectionUseCase) SetSelection(clientID string, kind domain.SelectionKind, value string) error {
	if value == "" {
		return domain.ErrInvalidInput
	}
	if clientID == "" {
		clientID = domain.DefaultClientID
	}

	uc.store.Set(clientID, kind, value)
	return nil
}

// GetSelection reads the slot of the given kind, or ErrSelectionNotSet
// when nothing has been stored for this scope yet
func (uc *SelectionUseCase) GetSelection(clientID string, kind domain.SelectionKind) (string, error) {
	if clientID == "" {
		clientID = domain.DefaultClientID
	}

	value, ok := uc.store.Get(clientID, kind)
	if !ok {
		return "", domain.ErrSelectionNotSet
	}
	return value, nil
}
