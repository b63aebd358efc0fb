package ui

import (
	"context"

	"veritas/internal/api"
	"veritas/internal/store"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		inner := max(20, m.width-8)
		m.predictInput.SetWidth(inner)
		m.contextInput.SetWidth(inner)
		m.bookmarksVP = viewport.New(max(20, m.width-10), max(5, m.height-10))
		if m.app.UI.ShowBookmarks() {
			m.refreshBookmarksViewport()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case toastExpiredMsg:
		// Message already cleared by the store; re-arm the listener.
		return m, m.waitToastExpiry()

	case loginResultMsg:
		m.authBusy = false
		if msg.err != nil {
			m.authNotice = api.UserMessage(msg.err)
			return m, nil
		}
		m.authNotice = ""
		m.view = mainView
		return m, m.startSessionCmd()

	case registerResultMsg:
		m.authBusy = false
		if msg.err != nil {
			m.authNotice = api.UserMessage(msg.err)
			return m, nil
		}
		// Registration never auto-authenticates.
		m.authMode = authLogin
		m.authFocus = 0
		m.loginForm = newLoginForm()
		m.authNotice = "Account created. Please sign in."
		return m, nil

	case sessionReadyMsg:
		if msg.err != nil {
			if !m.app.Session.Authenticated() {
				// Profile fetch failed: token was purged.
				m.resetAfterLogout()
				m.authNotice = "Session expired. Please sign in again."
				return m, nil
			}
			m.app.Toast.Show("Could not load history", store.DefaultToastDuration)
			return m, nil
		}
		// Hydrated predict state lands in the input widget too.
		m.predictInput.SetValue(m.app.Content.Predict().NewsText)
		return m, nil

	case predictDoneMsg, generateDoneMsg:
		// Stores already hold the terminal state; just re-render.
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.view == authView {
			return m.updateAuth(msg)
		}
		return m.updateMain(msg)
	}

	return m, nil
}

// updateAuth handles the login/register forms.
func (m Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := m.loginForm
	if m.authMode == authRegister {
		form = m.regForm
	}

	switch msg.Type {
	case tea.KeyCtrlT:
		// Flip between login and register.
		if m.authMode == authLogin {
			m.authMode = authRegister
		} else {
			m.authMode = authLogin
		}
		m.authFocus = 0
		m.authNotice = ""
		m.loginForm = newLoginForm()
		m.regForm = newRegisterForm()
		return m, nil

	case tea.KeyTab, tea.KeyDown:
		m.authFocus = (m.authFocus + 1) % len(form)
		m.refocusAuth(form)
		return m, nil

	case tea.KeyShiftTab, tea.KeyUp:
		m.authFocus = (m.authFocus - 1 + len(form)) % len(form)
		m.refocusAuth(form)
		return m, nil

	case tea.KeyEnter:
		if m.authBusy {
			return m, nil
		}
		return m.submitAuth(form)
	}

	var cmd tea.Cmd
	form[m.authFocus], cmd = form[m.authFocus].Update(msg)
	return m, cmd
}

func (m *Model) refocusAuth(form []textinput.Model) {
	for i := range form {
		if i == m.authFocus {
			form[i].Focus()
		} else {
			form[i].Blur()
		}
	}
}

func (m Model) submitAuth(form []textinput.Model) (tea.Model, tea.Cmd) {
	if m.authMode == authLogin {
		username, password := form[0].Value(), form[1].Value()
		if username == "" || password == "" {
			m.authNotice = "Username and password are required"
			return m, nil
		}
		m.authBusy = true
		m.authNotice = ""
		return m, m.loginCmd(username, password)
	}

	regForm := store.RegistrationForm{
		Username:        form[0].Value(),
		Email:           form[1].Value(),
		Password:        form[2].Value(),
		ConfirmPassword: form[3].Value(),
	}
	// Validation failures surface inline without any request.
	if err := regForm.Validate(); err != nil {
		m.authNotice = err.(*store.ValidationError).Message
		return m, nil
	}
	m.authBusy = true
	m.authNotice = ""
	return m, m.registerCmd(regForm)
}

// updateMain handles the predict/generate tabs and the bookmarks overlay.
func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.app.UI.ShowBookmarks() {
		return m.updateBookmarksOverlay(msg)
	}

	switch msg.Type {
	case tea.KeyCtrlL:
		m.app.Logout()
		m.resetAfterLogout()
		return m, nil

	case tea.KeyCtrlB:
		m.app.UI.ToggleBookmarks()
		m.bookmarkCursor = 0
		if m.app.UI.ShowBookmarks() {
			m.refreshBookmarksViewport()
		}
		return m, nil

	case tea.KeyShiftTab:
		if m.app.UI.ActiveTab() == store.TabPredict {
			m.app.UI.SetActiveTab(store.TabGenerate)
		} else {
			m.app.UI.SetActiveTab(store.TabPredict)
		}
		return m, nil

	case tea.KeyCtrlR:
		return m.runActiveTab()

	case tea.KeyCtrlS:
		return m.saveActiveTab()
	}

	if m.app.UI.ActiveTab() == store.TabPredict {
		var cmd tea.Cmd
		m.predictInput, cmd = m.predictInput.Update(msg)
		return m, cmd
	}
	return m.updateGenerateTab(msg)
}

// runActiveTab kicks off predict or generate for the visible tab.
func (m Model) runActiveTab() (tea.Model, tea.Cmd) {
	if m.app.UI.ActiveTab() == store.TabPredict {
		text := m.predictInput.Value()
		if !m.app.Content.BeginPredict(text) {
			return m, nil
		}
		return m, m.predictCmdResumed(text)
	}

	m.syncFilters()
	if !m.app.Content.CanGenerate() {
		m.app.Toast.Show("Select content, style and length first", store.DefaultToastDuration)
		return m, nil
	}
	m.app.Content.SetAdditionalContext(m.contextInput.Value())
	return m, m.generateCmd()
}

// predictCmdResumed continues a predict whose Begin transition already
// ran on the event loop, so the Loading state is visible immediately.
func (m Model) predictCmdResumed(text string) tea.Cmd {
	return func() tea.Msg {
		return predictDoneMsg{err: m.app.PredictResumed(context.Background(), text)}
	}
}

func (m Model) saveActiveTab() (tea.Model, tea.Cmd) {
	if m.app.UI.ActiveTab() == store.TabPredict {
		added, ok := m.app.ToggleCurrentPrediction()
		if !ok {
			return m, nil
		}
		if added {
			m.app.Toast.Show("Bookmarked", store.DefaultToastDuration)
		} else {
			m.app.Toast.Show("Bookmark removed", store.DefaultToastDuration)
		}
		return m, nil
	}

	if m.app.SaveGenerated() {
		m.app.Toast.Show("Bookmarks saved", store.DefaultToastDuration)
	}
	return m, nil
}

func (m Model) updateGenerateTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editContext {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyTab:
			m.editContext = false
			m.contextInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.contextInput, cmd = m.contextInput.Update(msg)
		m.app.Content.SetAdditionalContext(m.contextInput.Value())
		return m, cmd
	}

	switch msg.Type {
	case tea.KeyUp:
		if m.filterRow > 0 {
			m.filterRow--
		}
		return m, nil
	case tea.KeyDown:
		if m.filterRow < 2 {
			m.filterRow++
		}
		return m, nil
	case tea.KeyLeft:
		m.focusedPicker().prev()
		m.syncFilters()
		return m, nil
	case tea.KeyRight, tea.KeyEnter:
		m.focusedPicker().next()
		m.syncFilters()
		return m, nil
	case tea.KeyTab:
		m.editContext = true
		m.contextInput.Focus()
		return m, nil
	case tea.KeyCtrlY:
		return m.promoteGenerated()
	}
	return m, nil
}

// promoteGenerated runs the "predict this generated text" chain.
func (m Model) promoteGenerated() (tea.Model, tea.Cmd) {
	if !m.app.Content.PromoteGenerated() {
		return m, nil
	}
	m.predictInput.SetValue(m.app.Content.Predict().NewsText)
	m.app.UI.SetActiveTab(store.TabPredict)
	return m, nil
}

func (m Model) updateBookmarksOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	bookmarks := m.app.Bookmarks.All()

	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlB:
		m.app.UI.SetShowBookmarks(false)
		return m, nil

	case tea.KeyUp:
		if m.bookmarkCursor > 0 {
			m.bookmarkCursor--
		}
		m.refreshBookmarksViewport()
		return m, nil

	case tea.KeyDown:
		if m.bookmarkCursor < len(bookmarks)-1 {
			m.bookmarkCursor++
		}
		m.refreshBookmarksViewport()
		return m, nil
	}

	if msg.String() == "x" && len(bookmarks) > 0 {
		m.app.Bookmarks.Remove(bookmarks[m.bookmarkCursor].ID)
		if m.bookmarkCursor >= m.app.Bookmarks.Len() && m.bookmarkCursor > 0 {
			m.bookmarkCursor--
		}
		m.refreshBookmarksViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.bookmarksVP, cmd = m.bookmarksVP.Update(msg)
	return m, cmd
}
