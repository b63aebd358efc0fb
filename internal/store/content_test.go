package store

import (
	"testing"

	"veritas/internal/api"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginPredict_RejectsBlankInput(t *testing.T) {
	c := NewContent()

	for _, input := range []string{"", "   ", "\n\t "} {
		assert.False(t, c.BeginPredict(input), "input %q should be a no-op", input)
		assert.Equal(t, StatusIdle, c.Predict().Status)
	}
}

func TestPredict_Lifecycle(t *testing.T) {
	c := NewContent()

	require.True(t, c.BeginPredict("Breaking: moon made of cheese"))
	assert.Equal(t, StatusLoading, c.Predict().Status)

	c.CompletePredict(api.PredictResponse{CustomModel: "Fake", GeminiModel: "real"})

	got := c.Predict()
	want := PredictState{
		NewsText:     "Breaking: moon made of cheese",
		CustomResult: "Fake",
		GeminiResult: "real",
		Status:       StatusCompleted,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("predict state mismatch (-want +got):\n%s", diff)
	}
}

func TestBeginPredict_ClearsStaleResultsImmediately(t *testing.T) {
	c := NewContent()

	require.True(t, c.BeginPredict("first article"))
	c.CompletePredict(api.PredictResponse{CustomModel: "fake", GeminiModel: "fake"})

	// Second request starts before any completion: the old labels must
	// already be gone.
	require.True(t, c.BeginPredict("second article"))
	got := c.Predict()
	assert.Empty(t, got.CustomResult)
	assert.Empty(t, got.GeminiResult)
	assert.Equal(t, StatusLoading, got.Status)
}

func TestFailPredict_LeavesBothLabelsAbsent(t *testing.T) {
	c := NewContent()

	require.True(t, c.BeginPredict("some text"))
	c.FailPredict("Network error. Please check your connection.")

	got := c.Predict()
	assert.Equal(t, StatusFailed, got.Status)
	assert.Empty(t, got.CustomResult)
	assert.Empty(t, got.GeminiResult)
	assert.Equal(t, "Network error. Please check your connection.", got.ErrorMessage)

	// Terminal states are re-triggerable.
	assert.True(t, c.BeginPredict("try again"))
}

func TestBeginGenerate_RequiresAllFilters(t *testing.T) {
	cases := []Filters{
		{},
		{Content: "politics"},
		{Style: "neutral"},
		{Length: "short"},
		{Content: "politics", Style: "neutral"},
		{Content: "politics", Length: "short"},
		{Style: "neutral", Length: "short"},
	}

	for _, f := range cases {
		c := NewContent()
		c.SetFilters(f)
		assert.False(t, c.CanGenerate(), "filters %+v", f)
		assert.False(t, c.BeginGenerate(), "filters %+v", f)
		assert.Equal(t, StatusIdle, c.Generate().Status)
	}

	c := NewContent()
	c.SetFilters(Filters{Content: "politics", Style: "neutral", Length: "short"})
	assert.True(t, c.CanGenerate())
	assert.True(t, c.BeginGenerate())
}

func TestFailGenerate_ErrorShownInResultField(t *testing.T) {
	c := NewContent()
	c.SetFilters(Filters{Content: "science", Style: "satirical", Length: "long"})
	require.True(t, c.BeginGenerate())

	c.FailGenerate("server error (500): model unavailable")

	got := c.Generate()
	assert.Equal(t, StatusFailed, got.Status)
	assert.Equal(t, got.ErrorMessage, got.GeneratedText)
}

func TestPromoteGenerated(t *testing.T) {
	c := NewContent()

	// Nothing to promote yet.
	assert.False(t, c.PromoteGenerated())

	require.True(t, c.BeginPredict("old input"))
	c.CompletePredict(api.PredictResponse{CustomModel: "fake", GeminiModel: "fake"})

	c.SetFilters(Filters{Content: "sports", Style: "clickbait", Length: "medium"})
	require.True(t, c.BeginGenerate())
	c.CompleteGenerate("You won't believe what happened at the stadium.")

	require.True(t, c.PromoteGenerated())

	got := c.Predict()
	assert.Equal(t, "You won't believe what happened at the stadium.", got.NewsText)
	assert.Equal(t, StatusIdle, got.Status)
	assert.Empty(t, got.CustomResult)
	assert.Empty(t, got.GeminiResult)
}

func TestHydrateFromHistory(t *testing.T) {
	c := NewContent()

	c.HydrateFromHistory(api.NewsRecord{
		ID:               3,
		NewsText:         "old headline",
		CustomPrediction: "true",
		GeminiPrediction: "fake",
		CreatedAt:        "2025-01-02T10:00:00",
	})

	got := c.Predict()
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, "old headline", got.NewsText)
	assert.Equal(t, "true", got.CustomResult)
	assert.Equal(t, "fake", got.GeminiResult)
}

func TestContentReset(t *testing.T) {
	c := NewContent()
	require.True(t, c.BeginPredict("text"))
	c.SetFilters(Filters{Content: "health", Style: "neutral", Length: "short"})
	c.SetAdditionalContext("about vitamins")

	c.Reset()

	assert.Equal(t, PredictState{}, c.Predict())
	assert.Equal(t, GenerateState{}, c.Generate())
}
