package store

import (
	"testing"

	"veritas/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_PrependsNewestFirst(t *testing.T) {
	b := NewBookmarks()

	first := b.Add("first article", TypeGenerated)
	second := b.Add("second article", TypeGenerated)

	all := b.All()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestToggle_PairIsIdempotent(t *testing.T) {
	b := NewBookmarks()
	b.Add("unrelated", TypeGenerated)
	before := b.Len()

	added := b.Toggle("breaking story", "fake", "true")
	assert.True(t, added)
	assert.Equal(t, before+1, b.Len())
	assert.True(t, b.IsBookmarked("breaking story"))

	removed := b.Toggle("breaking story", "fake", "true")
	assert.False(t, removed)
	assert.Equal(t, before, b.Len())
	assert.False(t, b.IsBookmarked("breaking story"))
}

func TestToggle_TracksByContentFingerprint(t *testing.T) {
	b := NewBookmarks()

	b.Toggle("story A", "fake", "fake")
	b.Toggle("story B", "true", "true")

	// Each displayed story reports its own saved status, regardless of
	// which was toggled last.
	assert.True(t, b.IsBookmarked("story A"))
	assert.True(t, b.IsBookmarked("story B"))
	assert.False(t, b.IsBookmarked("story C"))

	// Whitespace differences do not change identity.
	assert.True(t, b.IsBookmarked("  story A  "))

	b.Toggle("story A", "fake", "fake")
	assert.False(t, b.IsBookmarked("story A"))
	assert.True(t, b.IsBookmarked("story B"))
}

func TestRemove_ClearsTracking(t *testing.T) {
	b := NewBookmarks()
	b.Toggle("tracked story", "fake", "true")

	all := b.All()
	require.Len(t, all, 1)
	b.Remove(all[0].ID)

	assert.Zero(t, b.Len())
	assert.False(t, b.IsBookmarked("tracked story"))
}

func TestRemove_UnknownIDIsNoOp(t *testing.T) {
	b := NewBookmarks()
	b.Add("keep me", TypeGenerated)

	b.Remove("no-such-id")
	assert.Equal(t, 1, b.Len())
}

func TestLoadFromHistory_FullReplace(t *testing.T) {
	b := NewBookmarks()
	b.Add("local leftover", TypeGenerated)

	news := []api.NewsRecord{
		{ID: 1, NewsText: "older news", CustomPrediction: "fake", GeminiPrediction: "true", CreatedAt: "2025-01-01T08:00:00"},
		{ID: 2, NewsText: "newer news", CustomPrediction: "true", GeminiPrediction: "true", CreatedAt: "2025-01-03T08:00:00"},
	}
	generated := []api.GeneratedRecord{
		{ID: 5, GeneratedText: "middle article", CreatedAt: "2025-01-02T08:00:00"},
	}

	b.LoadFromHistory(news, generated)
	require.Equal(t, 3, b.Len())

	// Replace, not append: same call, same size.
	b.LoadFromHistory(news, generated)
	require.Equal(t, 3, b.Len())

	all := b.All()
	assert.Equal(t, "news-2", all[0].ID)
	assert.Equal(t, "generated-5", all[1].ID)
	assert.Equal(t, "news-1", all[2].ID)

	assert.Equal(t, TypePrediction, all[0].Type)
	assert.Equal(t, TypeGenerated, all[1].Type)

	// Server-loaded predictions are toggleable like local ones.
	assert.True(t, b.IsBookmarked("newer news"))
	assert.False(t, b.IsBookmarked("local leftover"))
}

func TestClear(t *testing.T) {
	b := NewBookmarks()
	b.Toggle("story", "fake", "fake")
	b.Add("article", TypeGenerated)

	b.Clear()

	assert.Zero(t, b.Len())
	assert.False(t, b.IsBookmarked("story"))
}

func TestParseTimestamp_BackendLayouts(t *testing.T) {
	for _, s := range []string{
		"2025-01-02T10:00:00",
		"2025-01-02T10:00:00.123456",
		"2025-01-02T10:00:00Z",
		"2025-01-02 10:00:00",
	} {
		assert.False(t, parseTimestamp(s).IsZero(), "layout %q", s)
	}
	assert.True(t, parseTimestamp("not a time").IsZero())
}
