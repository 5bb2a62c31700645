package entity

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	// MaxHighScores is the length of the table
	MaxHighScores = 10
	// MaxNameLength is the longest name, in runes, the table stores
	MaxNameLength = 12
	// DefaultPlayerName replaces an empty name
	DefaultPlayerName = "PLAYER"
)

// ScoreEntry is one row of the high-score table
type ScoreEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// HighScoreTable is a descending, stable, top-10 list
type HighScoreTable struct {
	Entries []ScoreEntry
}

// rawScoreEntry detects missing fields while decoding
type rawScoreEntry struct {
	Name  *string `json:"name"`
	Score *int    `json:"score"`
}

// DecodeHighScores parses a JSON score list. Malformed rows and rows missing
// a name or a score are dropped; a document that is not a JSON array is an error.
func DecodeHighScores(data []byte) (*HighScoreTable, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode score list: %w", err)
	}

	entries := make([]ScoreEntry, 0, len(rows))
	for _, row := range rows {
		var raw rawScoreEntry
		if err := json.Unmarshal(row, &raw); err != nil {
			continue
		}
		if raw.Name == nil || raw.Score == nil {
			continue
		}
		entries = append(entries, ScoreEntry{Name: *raw.Name, Score: *raw.Score})
	}

	t := &HighScoreTable{Entries: entries}
	t.Normalize()
	return t, nil
}

// Encode serialises the table as [{"name":...,"score":...}, ...]
func (t *HighScoreTable) Encode() ([]byte, error) {
	entries := t.Entries
	if entries == nil {
		entries = []ScoreEntry{}
	}
	return json.Marshal(entries)
}

// Normalize sorts descending, keeping the order of equal scores, and truncates
func (t *HighScoreTable) Normalize() {
	slices.SortStableFunc(t.Entries, func(a, b ScoreEntry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(t.Entries) > MaxHighScores {
		t.Entries = t.Entries[:MaxHighScores]
	}
}

// Qualifies reports whether score would make the table
func (t *HighScoreTable) Qualifies(score int) bool {
	if len(t.Entries) < MaxHighScores {
		return true
	}
	return score > t.Entries[len(t.Entries)-1].Score
}

// Insert adds an entry after any existing equal scores and returns its
// zero-based rank, or -1 if it fell off the end.
func (t *HighScoreTable) Insert(name string, score int) int {
	entry := ScoreEntry{Name: SanitizeName(name), Score: score}

	pos := len(t.Entries)
	for i, e := range t.Entries {
		if score > e.Score {
			pos = i
			break
		}
	}
	if pos >= MaxHighScores {
		return -1
	}

	t.Entries = slices.Insert(t.Entries, pos, entry)
	if len(t.Entries) > MaxHighScores {
		t.Entries = t.Entries[:MaxHighScores]
	}
	return pos
}

// SanitizeName trims, caps at MaxNameLength runes and defaults empty names
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = strings.TrimSpace(string([]rune(name)[:MaxNameLength]))
	}
	if name == "" {
		return DefaultPlayerName
	}
	return name
}
