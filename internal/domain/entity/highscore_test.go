package entity

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullTable(low int) *HighScoreTable {
	t := &HighScoreTable{}
	for i := range MaxHighScores {
		t.Entries = append(t.Entries, ScoreEntry{Name: fmt.Sprintf("P%d", i), Score: low + (MaxHighScores-1-i)*100})
	}
	return t
}

func TestDecodeHighScores(t *testing.T) {
	data := []byte(`[
		{"name":"ann","score":100},
		{"name":"bob"},
		{"score":900},
		"junk",
		{"name":"cat","score":300},
		{"name":"dan","score":100}
	]`)

	table, err := DecodeHighScores(data)
	require.NoError(t, err)

	assert.Equal(t, []ScoreEntry{
		{Name: "cat", Score: 300},
		{Name: "ann", Score: 100},
		{Name: "dan", Score: 100},
	}, table.Entries)
}

func TestDecodeHighScores_Corrupt(t *testing.T) {
	_, err := DecodeHighScores([]byte(`{"name":"x"}`))
	assert.Error(t, err)

	_, err = DecodeHighScores([]byte(`not json`))
	assert.Error(t, err)
}

func TestHighScoreTable_EncodeShape(t *testing.T) {
	empty := &HighScoreTable{}
	data, err := empty.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	table := &HighScoreTable{Entries: []ScoreEntry{{Name: "ann", Score: 123}}}
	data, err = table.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"ann","score":123}]`, string(data))
}

func TestHighScoreTable_Normalize(t *testing.T) {
	table := fullTable(0)
	table.Entries = append(table.Entries, ScoreEntry{Name: "late", Score: 5000})
	table.Normalize()

	require.Len(t, table.Entries, MaxHighScores)
	assert.Equal(t, "late", table.Entries[0].Name)
	assert.Equal(t, 100, table.Entries[MaxHighScores-1].Score)
}

func TestHighScoreTable_NormalizeExtremeScores(t *testing.T) {
	table := &HighScoreTable{Entries: []ScoreEntry{
		{Name: "a", Score: 1},
		{Name: "b", Score: math.MinInt},
		{Name: "c", Score: math.MaxInt},
	}}
	table.Normalize()

	names := make([]string, len(table.Entries))
	for i, e := range table.Entries {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"c", "a", "b"}, names)
}

func TestHighScoreTable_Qualifies(t *testing.T) {
	short := &HighScoreTable{Entries: []ScoreEntry{{Name: "a", Score: 1000}}}
	assert.True(t, short.Qualifies(0), "any score makes a short table")

	full := fullTable(50)
	assert.False(t, full.Qualifies(50), "ties with the last entry do not qualify")
	assert.True(t, full.Qualifies(51))
	assert.False(t, full.Qualifies(10))
}

func TestHighScoreTable_Insert(t *testing.T) {
	t.Run("after equal scores", func(t *testing.T) {
		table := &HighScoreTable{Entries: []ScoreEntry{
			{Name: "a", Score: 300},
			{Name: "b", Score: 200},
			{Name: "c", Score: 100},
		}}

		rank := table.Insert("new", 200)
		assert.Equal(t, 2, rank)
		assert.Equal(t, "b", table.Entries[1].Name)
		assert.Equal(t, "new", table.Entries[2].Name)
	})

	t.Run("truncates to ten", func(t *testing.T) {
		table := fullTable(0)
		rank := table.Insert("top", 99999)
		assert.Equal(t, 0, rank)
		assert.Len(t, table.Entries, MaxHighScores)
		assert.Equal(t, 100, table.Entries[MaxHighScores-1].Score)
	})

	t.Run("missed the cut", func(t *testing.T) {
		table := fullTable(100)
		rank := table.Insert("low", 100)
		assert.Equal(t, -1, rank)
		assert.Len(t, table.Entries, MaxHighScores)
	})

	t.Run("empty name", func(t *testing.T) {
		table := &HighScoreTable{}
		rank := table.Insert("   ", 10)
		assert.Equal(t, 0, rank)
		assert.Equal(t, DefaultPlayerName, table.Entries[0].Name)
	})
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "PLAYER", SanitizeName(""))
	assert.Equal(t, "ann", SanitizeName("  ann "))
	assert.Equal(t, "abcdefghijkl", SanitizeName("abcdefghijklmnop"))
	assert.Equal(t, "가나다라마바사아자차카타", SanitizeName("가나다라마바사아자차카타파하"))
}
