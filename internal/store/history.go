package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/yasu691/fragmenta/internal/model"
)

// historyRecord is the persisted shape of a history entry. Entries written
// before primary/secondary tags existed carry a single "tag" field.
type historyRecord struct {
	model.HistoryEntry
	LegacyTag string `json:"tag,omitempty"`
}

// AddHistory prepends entry to the history, evicting the oldest entries
// beyond model.MaxHistory. ID and CreatedAt are filled in when empty.
func (s *Store) AddHistory(entry model.HistoryEntry) (model.HistoryEntry, error) {
	if entry.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return model.HistoryEntry{}, fmt.Errorf("generating history id: %w", err)
		}

		entry.ID = id.String()
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}

	history, err := s.GetHistory()
	if err != nil {
		return model.HistoryEntry{}, err
	}

	history = append([]model.HistoryEntry{entry}, history...)
	if len(history) > model.MaxHistory {
		history = history[:model.MaxHistory]
	}

	if err := s.putJSON(KeyHistory, history); err != nil {
		return model.HistoryEntry{}, err
	}

	return entry, nil
}

// GetHistory returns the history, newest first.
func (s *Store) GetHistory() ([]model.HistoryEntry, error) {
	var records []historyRecord

	if _, err := s.getJSON(KeyHistory, &records); err != nil {
		return nil, err
	}

	history := make([]model.HistoryEntry, 0, len(records))

	for _, r := range records {
		entry := r.HistoryEntry
		if entry.Tags == nil && r.LegacyTag != "" {
			entry.Tags = &model.TagSelection{Primary: r.LegacyTag}
		}

		history = append(history, entry)
	}

	return history, nil
}

// GetHistoryEntry returns the entry with id, or nil if there is none.
func (s *Store) GetHistoryEntry(id string) (*model.HistoryEntry, error) {
	history, err := s.GetHistory()
	if err != nil {
		return nil, err
	}

	for i := range history {
		if history[i].ID == id {
			return &history[i], nil
		}
	}

	return nil, nil
}

// DeleteHistoryEntry removes the entry with id. A missing id is not an error.
func (s *Store) DeleteHistoryEntry(id string) error {
	history, err := s.GetHistory()
	if err != nil {
		return err
	}

	filtered := history[:0]

	for _, entry := range history {
		if entry.ID != id {
			filtered = append(filtered, entry)
		}
	}

	return s.putJSON(KeyHistory, filtered)
}

// ClearHistory removes all history entries.
func (s *Store) ClearHistory() error {
	return s.delete(KeyHistory)
}
