package port

//go:generate mockgen -source=selection_port.go -destination=../mocks/mock_selection_port.go -package=mocks

import "chronicle-service/app/domain"

// SelectionUsecase manages the per-client "currently selected" slots.
// Operations are in-process and non-blocking, so no context is taken.
type SelectionUsecase interface {
	SetSelection(clientID string, kind domain.SelectionKind, value string) error
	GetSelection(clientID string, kind domain.SelectionKind) (string, error)
}

// SelectionStore is the backing store for selection slots. Implementations
// must be safe for concurrent use; racing writers resolve last-write-wins.
type SelectionStore interface {
	Set(clientID string, kind domain.SelectionKind, value string)
	Get(clientID string, kind domain.SelectionKind) (string, bool)
}
