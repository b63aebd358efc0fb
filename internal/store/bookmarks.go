package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"veritas/internal/api"

	"github.com/google/uuid"
)

// BookmarkType tags what a bookmark holds.
type BookmarkType string

const (
	TypePrediction BookmarkType = "prediction"
	TypeGenerated  BookmarkType = "generated"
)

// Bookmark is one saved item. Model results are present only for
// prediction bookmarks. Local ids are uuids; server-derived ids are
// namespaced ("news-<id>", "generated-<id>") so the two id spaces stay
// disjoint when history is merged in.
type Bookmark struct {
	ID           string
	Type         BookmarkType
	Text         string
	CustomResult string
	GeminiResult string
	Timestamp    string

	sortKey time.Time
}

// Fingerprint derives a stable identifier from a piece of content. The
// bookmark toggle is keyed by it, so the toggle always reflects the
// item actually on screen rather than a separately tracked slot.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(text)))
	return hex.EncodeToString(sum[:8])
}

// Bookmarks owns the saved-item collection, ordered most-recent-first.
type Bookmarks struct {
	mu      sync.Mutex
	items   []Bookmark
	tracked map[string]string // prediction fingerprint -> bookmark id
	now     func() time.Time
}

// NewBookmarks returns an empty bookmark store.
func NewBookmarks() *Bookmarks {
	return &Bookmarks{
		tracked: make(map[string]string),
		now:     time.Now,
	}
}

// All returns a copy of the collection, newest first.
func (b *Bookmarks) All() []Bookmark {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Bookmark, len(b.items))
	copy(out, b.items)
	return out
}

// Len returns the number of saved items.
func (b *Bookmarks) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Add saves text as a new bookmark at the front of the collection and
// returns it.
func (b *Bookmarks) Add(text string, typ BookmarkType) Bookmark {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.insert(Bookmark{Type: typ, Text: text})
}

// insert stamps id and timestamp and prepends. Caller holds the lock.
func (b *Bookmarks) insert(bm Bookmark) Bookmark {
	now := b.now()
	bm.ID = uuid.NewString()
	bm.Timestamp = now.Format("2006-01-02 15:04:05")
	bm.sortKey = now
	b.items = append([]Bookmark{bm}, b.items...)
	if bm.Type == TypePrediction {
		b.tracked[Fingerprint(bm.Text)] = bm.ID
	}
	return bm
}

// IsBookmarked reports whether the prediction with this text is saved.
func (b *Bookmarks) IsBookmarked(text string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.tracked[Fingerprint(text)]
	return ok
}

// Toggle saves the currently displayed prediction, or removes it if it
// is already saved. Returns true when the call added a bookmark.
func (b *Bookmarks) Toggle(text, customResult, geminiResult string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	fp := Fingerprint(text)
	if id, ok := b.tracked[fp]; ok {
		b.removeLocked(id)
		return false
	}

	b.insert(Bookmark{
		Type:         TypePrediction,
		Text:         text,
		CustomResult: customResult,
		GeminiResult: geminiResult,
	})
	return true
}

// Remove deletes the bookmark with id, clearing toggle tracking if it
// pointed at the removed item.
func (b *Bookmarks) Remove(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.removeLocked(id)
}

func (b *Bookmarks) removeLocked(id string) {
	filtered := b.items[:0]
	for _, bm := range b.items {
		if bm.ID == id {
			continue
		}
		filtered = append(filtered, bm)
	}
	b.items = filtered

	for fp, trackedID := range b.tracked {
		if trackedID == id {
			delete(b.tracked, fp)
		}
	}
}

// LoadFromHistory replaces the whole collection with the merged server
// history, sorted descending by timestamp. Calling it twice with the
// same inputs yields the same collection, never duplicates.
func (b *Bookmarks) LoadFromHistory(news []api.NewsRecord, generated []api.GeneratedRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()

	items := make([]Bookmark, 0, len(news)+len(generated))
	tracked := make(map[string]string)

	for _, rec := range news {
		bm := Bookmark{
			ID:           fmt.Sprintf("news-%d", rec.ID),
			Type:         TypePrediction,
			Text:         rec.NewsText,
			CustomResult: rec.CustomPrediction,
			GeminiResult: rec.GeminiPrediction,
			Timestamp:    rec.CreatedAt,
			sortKey:      parseTimestamp(rec.CreatedAt),
		}
		items = append(items, bm)
		tracked[Fingerprint(bm.Text)] = bm.ID
	}
	for _, rec := range generated {
		items = append(items, Bookmark{
			ID:        fmt.Sprintf("generated-%d", rec.ID),
			Type:      TypeGenerated,
			Text:      rec.GeneratedText,
			Timestamp: rec.CreatedAt,
			sortKey:   parseTimestamp(rec.CreatedAt),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].sortKey.After(items[j].sortKey)
	})

	b.items = items
	b.tracked = tracked
}

// Clear empties the collection and all tracking. Part of the logout
// cascade.
func (b *Bookmarks) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = nil
	b.tracked = make(map[string]string)
}

// parseTimestamp handles the backend's timestamp layouts; FastAPI emits
// ISO strings that are not always timezone-qualified.
func parseTimestamp(s string) time.Time {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
