package store

import (
	"strings"
	"sync"

	"veritas/internal/api"
)

// Status is the lifecycle of one async operation. Both terminal states
// are re-triggerable: Begin moves back to Loading from anywhere.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusCompleted
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Filters are the three enumerated generation options. Generation is
// enabled only when all three are chosen.
type Filters struct {
	Content string
	Style   string
	Length  string
}

// Complete reports whether every filter has been chosen.
func (f Filters) Complete() bool {
	return f.Content != "" && f.Style != "" && f.Length != ""
}

// PredictState is a snapshot of the predict slice.
type PredictState struct {
	NewsText     string
	CustomResult string
	GeminiResult string
	Status       Status
	ErrorMessage string
}

// GenerateState is a snapshot of the generate slice.
type GenerateState struct {
	Filters           Filters
	AdditionalContext string
	GeneratedText     string
	Status            Status
	ErrorMessage      string
}

// Content holds the predict and generate state machines. The two run
// independently; each is Idle -> Loading -> (Completed | Failed).
type Content struct {
	mu       sync.Mutex
	predict  PredictState
	generate GenerateState
}

// NewContent returns an empty content store.
func NewContent() *Content {
	return &Content{}
}

// Predict returns a snapshot of the predict slice.
func (c *Content) Predict() PredictState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.predict
}

// Generate returns a snapshot of the generate slice.
func (c *Content) Generate() GenerateState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generate
}

// SetNewsText updates the predict input field.
func (c *Content) SetNewsText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.predict.NewsText = text
}

// BeginPredict starts a prediction for text. Whitespace-only input is
// rejected and nothing changes. Prior results are cleared immediately
// so a superseding request never shows a stale flash.
func (c *Content) BeginPredict(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.predict.NewsText = text
	c.predict.CustomResult = ""
	c.predict.GeminiResult = ""
	c.predict.ErrorMessage = ""
	c.predict.Status = StatusLoading
	return true
}

// CompletePredict records both model labels verbatim.
func (c *Content) CompletePredict(resp api.PredictResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.predict.CustomResult = resp.CustomModel
	c.predict.GeminiResult = resp.GeminiModel
	c.predict.ErrorMessage = ""
	c.predict.Status = StatusCompleted
}

// FailPredict records the failure; both labels stay absent.
func (c *Content) FailPredict(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.predict.CustomResult = ""
	c.predict.GeminiResult = ""
	c.predict.ErrorMessage = message
	c.predict.Status = StatusFailed
}

// SetFilters replaces the generation filters.
func (c *Content) SetFilters(f Filters) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generate.Filters = f
}

// SetAdditionalContext updates the optional free-text context.
func (c *Content) SetAdditionalContext(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generate.AdditionalContext = text
}

// CanGenerate reports whether all three filters are chosen.
func (c *Content) CanGenerate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generate.Filters.Complete()
}

// BeginGenerate starts a generation. Refused until every filter is set.
// The previous article is cleared before the request resolves.
func (c *Content) BeginGenerate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.generate.Filters.Complete() {
		return false
	}
	c.generate.GeneratedText = ""
	c.generate.ErrorMessage = ""
	c.generate.Status = StatusLoading
	return true
}

// CompleteGenerate stores the generated article.
func (c *Content) CompleteGenerate(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generate.GeneratedText = text
	c.generate.ErrorMessage = ""
	c.generate.Status = StatusCompleted
}

// FailGenerate stores the error. The message also lands in the result
// field: the result panel is the only place generate output is shown,
// so the error renders exactly where the article would have.
func (c *Content) FailGenerate(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generate.GeneratedText = message
	c.generate.ErrorMessage = message
	c.generate.Status = StatusFailed
}

// PromoteGenerated copies the latest generated article into the predict
// input and resets the predict slice, ready for a fresh classification.
// Returns false when there is nothing to promote.
func (c *Content) PromoteGenerated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generate.GeneratedText == "" || c.generate.Status != StatusCompleted {
		return false
	}
	c.predict = PredictState{NewsText: c.generate.GeneratedText}
	return true
}

// HydrateFromHistory seeds the predict slice from the most recent
// server-side prediction, as if that predict had just completed. No
// request is issued.
func (c *Content) HydrateFromHistory(record api.NewsRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.predict = PredictState{
		NewsText:     record.NewsText,
		CustomResult: record.CustomPrediction,
		GeminiResult: record.GeminiPrediction,
		Status:       StatusCompleted,
	}
}

// Reset returns both slices to their initial state. Part of the logout
// cascade.
func (c *Content) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.predict = PredictState{}
	c.generate = GenerateState{}
}
