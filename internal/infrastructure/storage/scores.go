package storage

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"

	"github.com/younwookim/wudong/internal/domain/entity"
)

const (
	scoresObject   = "scores"
	scoresProperty = "top10"
)

// ScoreStore keeps the high-score table and writes it back after every
// submitted score.
type ScoreStore struct {
	manager *gdata.Manager // nil = in-memory only
	table   *entity.HighScoreTable
}

// NewScoreStore creates a store and loads the saved table. A missing
// table starts empty; a corrupt one starts empty and logs a warning.
func NewScoreStore(manager *gdata.Manager) *ScoreStore {
	s := &ScoreStore{
		manager: manager,
		table:   &entity.HighScoreTable{},
	}
	if err := s.Load(); err != nil {
		log.Printf("[ScoreStore] Warning: %v (starting with an empty table)", err)
	}
	return s
}

// Load replaces the in-memory table with the saved one
func (s *ScoreStore) Load() error {
	s.table = &entity.HighScoreTable{}
	if s.manager == nil || !s.manager.ObjectPropExists(scoresObject, scoresProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		return fmt.Errorf("failed to load scores: %w", err)
	}
	table, err := entity.DecodeHighScores(data)
	if err != nil {
		return err
	}
	s.table = table
	return nil
}

// Save writes the table. In-memory mode is not an error.
func (s *ScoreStore) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := s.table.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode scores: %w", err)
	}
	if err := s.manager.SaveObjectProp(scoresObject, scoresProperty, data); err != nil {
		return fmt.Errorf("failed to save scores: %w", err)
	}
	return nil
}

// Entries returns the table rows, best first
func (s *ScoreStore) Entries() []entity.ScoreEntry {
	return s.table.Entries
}

// Qualifies reports whether score would enter the table
func (s *ScoreStore) Qualifies(score int) bool {
	return s.table.Qualifies(score)
}

// Submit inserts a score and saves the table. It returns the entry's
// zero-based rank, or -1 if the score did not make the table.
func (s *ScoreStore) Submit(name string, score int) (int, error) {
	rank := s.table.Insert(name, score)
	if rank < 0 {
		return rank, nil
	}
	return rank, s.Save()
}
