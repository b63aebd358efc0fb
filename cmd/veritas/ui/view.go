package ui

import (
	"fmt"
	"strings"

	"veritas/internal/store"

	"github.com/charmbracelet/lipgloss"
)

const appTitle = "Veritas — Fake News Detector"

func (m Model) View() string {
	if !m.ready {
		return "Starting..."
	}
	if m.view == authView {
		return m.viewAuth()
	}
	if m.app.UI.ShowBookmarks() {
		return m.viewBookmarks()
	}
	return m.viewMain()
}

func (m Model) viewAuth() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(appTitle) + "\n\n")

	if m.authMode == authLogin {
		sb.WriteString(m.styles.Bold.Render("Sign in") + "\n\n")
		sb.WriteString("  Username  " + m.loginForm[0].View() + "\n")
		sb.WriteString("  Password  " + m.loginForm[1].View() + "\n")
	} else {
		sb.WriteString(m.styles.Bold.Render("Create account") + "\n\n")
		sb.WriteString("  Username  " + m.regForm[0].View() + "\n")
		sb.WriteString("  Email     " + m.regForm[1].View() + "\n")
		sb.WriteString("  Password  " + m.regForm[2].View() + "\n")
		sb.WriteString("  Confirm   " + m.regForm[3].View() + "\n")
	}

	sb.WriteString("\n")
	switch {
	case m.authBusy:
		sb.WriteString("  " + m.spinner.View() + " contacting server...\n")
	case m.authNotice != "":
		style := m.styles.Error
		if strings.HasPrefix(m.authNotice, "Account created") {
			style = m.styles.Muted
		}
		sb.WriteString("  " + style.Render(m.authNotice) + "\n")
	}

	other := "register"
	if m.authMode == authRegister {
		other = "sign in"
	}
	sb.WriteString("\n" + m.styles.Help.Render(
		fmt.Sprintf("enter submit • tab next field • ctrl+t switch to %s • ctrl+c quit", other)))
	return sb.String()
}

func (m Model) viewMain() string {
	var sb strings.Builder

	sb.WriteString(m.renderHeader() + "\n")
	sb.WriteString(m.renderTabs() + "\n\n")

	if m.app.UI.ActiveTab() == store.TabPredict {
		sb.WriteString(m.renderPredictTab())
	} else {
		sb.WriteString(m.renderGenerateTab())
	}

	if msg := m.app.Toast.Message(); msg != "" {
		sb.WriteString("\n" + m.styles.Toast.Render(msg) + "\n")
	}

	sb.WriteString("\n" + m.styles.Help.Render(
		"shift+tab switch tab • ctrl+r run • ctrl+s bookmark • ctrl+b bookmarks • ctrl+l logout • ctrl+c quit"))
	return sb.String()
}

func (m Model) renderHeader() string {
	left := m.styles.Title.Render(appTitle)

	who := "…"
	if p := m.app.Session.Profile(); p != nil {
		who = p.Username
	}
	right := m.styles.Muted.Render(fmt.Sprintf("%s • %d bookmarks", who, m.app.Bookmarks.Len()))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderTabs() string {
	predict := m.styles.TabIdle.Render("Predict")
	generate := m.styles.TabIdle.Render("Generate")
	if m.app.UI.ActiveTab() == store.TabPredict {
		predict = m.styles.TabActive.Render("Predict")
	} else {
		generate = m.styles.TabActive.Render("Generate")
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, predict, generate)
}

func (m Model) renderPredictTab() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Panel.Render(m.predictInput.View()) + "\n\n")

	p := m.app.Content.Predict()
	switch p.Status {
	case store.StatusLoading:
		sb.WriteString(m.spinner.View() + " classifying...\n")

	case store.StatusCompleted:
		marker := ""
		if m.app.Bookmarks.IsBookmarked(p.NewsText) {
			marker = " " + m.styles.Bold.Render("★")
		}
		sb.WriteString(fmt.Sprintf("  Custom model: %s\n", m.renderLabel(p.CustomResult)))
		sb.WriteString(fmt.Sprintf("  Gemini model: %s%s\n", m.renderLabel(p.GeminiResult), marker))

	case store.StatusFailed:
		sb.WriteString("  " + m.styles.Error.Render(p.ErrorMessage) + "\n")
	}
	return sb.String()
}

func (m Model) renderGenerateTab() string {
	var sb strings.Builder

	pickers := []picker{m.contentPick, m.stylePick, m.lengthPick}
	for i, p := range pickers {
		cursor := "  "
		if !m.editContext && i == m.filterRow {
			cursor = m.styles.Bold.Render("▸ ")
		}
		label := p.Label()
		if p.Value() == "" {
			label = m.styles.Muted.Render(label)
		}
		sb.WriteString(fmt.Sprintf("%s%-8s %s\n", cursor, p.title, label))
	}

	sb.WriteString("\n" + m.styles.Panel.Render(m.contextInput.View()) + "\n\n")

	g := m.app.Content.Generate()
	switch g.Status {
	case store.StatusLoading:
		sb.WriteString(m.spinner.View() + " generating...\n")

	case store.StatusCompleted:
		body := lipgloss.NewStyle().Width(max(20, m.width-6)).Render(g.GeneratedText)
		sb.WriteString(m.styles.Panel.Render(body) + "\n")
		sb.WriteString(m.styles.Help.Render("ctrl+y predict this article") + "\n")

	case store.StatusFailed:
		sb.WriteString("  " + m.styles.Error.Render(g.ErrorMessage) + "\n")
	}
	return sb.String()
}

// renderLabel normalizes a model verdict for display. Stored labels
// stay verbatim; only the rendering is case-folded.
func (m Model) renderLabel(label string) string {
	upper := strings.ToUpper(strings.TrimSpace(label))
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "fake":
		return m.styles.LabelFake.Render(upper)
	case "real", "true":
		return m.styles.LabelReal.Render(upper)
	default:
		return m.styles.Bold.Render(upper)
	}
}

const bookmarkLinesPerItem = 3

func (m Model) viewBookmarks() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Bookmarks") + "\n")
	sb.WriteString(m.styles.Overlay.Render(m.bookmarksVP.View()) + "\n")
	sb.WriteString(m.styles.Help.Render("↑/↓ select • x remove • esc close"))
	return sb.String()
}

// renderBookmarkList builds the overlay content. Every item takes
// exactly bookmarkLinesPerItem lines so the cursor maps to a line
// offset for scrolling.
func (m Model) renderBookmarkList() string {
	bookmarks := m.app.Bookmarks.All()
	if len(bookmarks) == 0 {
		return m.styles.Muted.Render("No bookmarks yet.")
	}

	width := max(20, m.bookmarksVP.Width-4)
	var sb strings.Builder
	for i, bm := range bookmarks {
		cursor := "  "
		if i == m.bookmarkCursor {
			cursor = m.styles.Bold.Render("▸ ")
		}

		head := fmt.Sprintf("%s[%s] %s", cursor, bookmarkTag(bm.Type), m.styles.Muted.Render(bm.Timestamp))
		if bm.Type == store.TypePrediction {
			head += fmt.Sprintf("  %s / %s", m.renderLabel(bm.CustomResult), m.renderLabel(bm.GeminiResult))
		}
		sb.WriteString(head + "\n")
		sb.WriteString("    " + truncate(bm.Text, width) + "\n\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// refreshBookmarksViewport re-renders the overlay content and keeps the
// cursor line visible.
func (m *Model) refreshBookmarksViewport() {
	m.bookmarksVP.SetContent(m.renderBookmarkList())

	line := m.bookmarkCursor * bookmarkLinesPerItem
	if line < m.bookmarksVP.YOffset {
		m.bookmarksVP.SetYOffset(line)
	}
	if bottom := m.bookmarksVP.YOffset + m.bookmarksVP.Height - 1; line+bookmarkLinesPerItem-1 > bottom {
		m.bookmarksVP.SetYOffset(line + bookmarkLinesPerItem - m.bookmarksVP.Height)
	}
}

func bookmarkTag(t store.BookmarkType) string {
	if t == store.TypePrediction {
		return "P"
	}
	return "G"
}

func truncate(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
