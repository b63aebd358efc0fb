package store

import "sync"

// Tab identifies the two main panels.
type Tab string

const (
	TabPredict  Tab = "predict"
	TabGenerate Tab = "generate"
)

// DefaultTab is what a fresh session opens on.
const DefaultTab = TabGenerate

// UI holds transient presentation state: the active tab and the
// bookmarks overlay flag. Plain last-write-wins fields.
type UI struct {
	mu            sync.Mutex
	activeTab     Tab
	showBookmarks bool
}

// NewUI returns the UI store opened on the default tab.
func NewUI() *UI {
	return &UI{activeTab: DefaultTab}
}

// ActiveTab returns the selected tab.
func (u *UI) ActiveTab() Tab {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.activeTab
}

// SetActiveTab selects a tab.
func (u *UI) SetActiveTab(tab Tab) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.activeTab = tab
}

// ShowBookmarks reports whether the bookmarks overlay is open.
func (u *UI) ShowBookmarks() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.showBookmarks
}

// SetShowBookmarks opens or closes the bookmarks overlay.
func (u *UI) SetShowBookmarks(show bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.showBookmarks = show
}

// ToggleBookmarks flips the bookmarks overlay.
func (u *UI) ToggleBookmarks() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.showBookmarks = !u.showBookmarks
}

// Reset returns the UI to its initial state. Part of the logout cascade.
func (u *UI) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.activeTab = DefaultTab
	u.showBookmarks = false
}
