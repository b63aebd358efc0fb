package ui

import (
	"context"

	"veritas/internal/app"
	"veritas/internal/store"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// view selects between the auth screen and the main screen.
type view int

const (
	authView view = iota
	mainView
)

// authMode selects between the login and register forms.
type authMode int

const (
	authLogin authMode = iota
	authRegister
)

// Messages delivered by async commands.
type (
	loginResultMsg    struct{ err error }
	registerResultMsg struct{ err error }
	sessionReadyMsg   struct{ err error }
	predictDoneMsg    struct{ err error }
	generateDoneMsg   struct{ err error }
	toastExpiredMsg   struct{}
)

// Model is the bubbletea model for the interactive client.
type Model struct {
	app    *app.App
	styles Styles

	width  int
	height int
	ready  bool

	view view

	// Auth screen
	authMode   authMode
	loginForm  []textinput.Model
	regForm    []textinput.Model
	authFocus  int
	authNotice string
	authBusy   bool

	// Main screen
	spinner      spinner.Model
	predictInput textarea.Model
	contextInput textarea.Model

	contentPick picker
	stylePick   picker
	lengthPick  picker
	filterRow   int  // which picker the cursor is on
	editContext bool // generate tab focus: pickers vs. context input

	bookmarksVP    viewport.Model
	bookmarkCursor int
}

// New builds the TUI model over an already constructed application.
func New(application *app.App, themeName string) Model {
	styles := NewStyles(ThemeByName(themeName))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Title

	predictInput := textarea.New()
	predictInput.Placeholder = "Paste a news article or headline..."
	predictInput.CharLimit = 0
	predictInput.SetHeight(6)
	predictInput.Focus()

	contextInput := textarea.New()
	contextInput.Placeholder = "Optional extra context for the generator..."
	contextInput.CharLimit = 0
	contextInput.SetHeight(3)

	m := Model{
		app:          application,
		styles:       styles,
		spinner:      sp,
		predictInput: predictInput,
		contextInput: contextInput,
		contentPick:  newPicker("Content", ContentOptions),
		stylePick:    newPicker("Style", StyleOptions),
		lengthPick:   newPicker("Length", LengthOptions),
		loginForm:    newLoginForm(),
		regForm:      newRegisterForm(),
	}

	if application.Session.Authenticated() {
		m.view = mainView
	}
	return m
}

func newLoginForm() []textinput.Model {
	username := textinput.New()
	username.Placeholder = "username"
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	return []textinput.Model{username, password}
}

func newRegisterForm() []textinput.Model {
	username := textinput.New()
	username.Placeholder = "username"
	username.Focus()

	email := textinput.New()
	email.Placeholder = "email"

	password := textinput.New()
	password.Placeholder = "password (min 6 chars)"
	password.EchoMode = textinput.EchoPassword

	confirm := textinput.New()
	confirm.Placeholder = "confirm password"
	confirm.EchoMode = textinput.EchoPassword

	return []textinput.Model{username, email, password, confirm}
}

// Init starts the spinner, the toast listener, and, when a token was
// restored from disk, the session-start sequence.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textarea.Blink,
		m.spinner.Tick,
		m.waitToastExpiry(),
	}
	if m.view == mainView {
		cmds = append(cmds, m.startSessionCmd())
	}
	return tea.Batch(cmds...)
}

// waitToastExpiry re-arms after every delivery; the Update loop issues
// it again on each toastExpiredMsg.
func (m Model) waitToastExpiry() tea.Cmd {
	expired := m.app.Toast.Expired()
	return func() tea.Msg {
		<-expired
		return toastExpiredMsg{}
	}
}

func (m Model) loginCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		return loginResultMsg{err: m.app.Login(context.Background(), username, password)}
	}
}

func (m Model) registerCmd(form store.RegistrationForm) tea.Cmd {
	return func() tea.Msg {
		return registerResultMsg{err: m.app.Register(context.Background(), form)}
	}
}

func (m Model) startSessionCmd() tea.Cmd {
	return func() tea.Msg {
		return sessionReadyMsg{err: m.app.StartSession(context.Background())}
	}
}

func (m Model) generateCmd() tea.Cmd {
	return func() tea.Msg {
		return generateDoneMsg{err: m.app.Generate(context.Background())}
	}
}

// focusedPicker returns the picker under the filter cursor.
func (m *Model) focusedPicker() *picker {
	switch m.filterRow {
	case 0:
		return &m.contentPick
	case 1:
		return &m.stylePick
	default:
		return &m.lengthPick
	}
}

// syncFilters pushes the picker selections into the content store.
func (m *Model) syncFilters() {
	m.app.Content.SetFilters(store.Filters{
		Content: m.contentPick.Value(),
		Style:   m.stylePick.Value(),
		Length:  m.lengthPick.Value(),
	})
}

// resetAfterLogout clears every widget that could leak the previous
// user's data, mirroring the store-level cascade.
func (m *Model) resetAfterLogout() {
	m.predictInput.Reset()
	m.contextInput.Reset()
	m.contentPick.reset()
	m.stylePick.reset()
	m.lengthPick.reset()
	m.filterRow = 0
	m.editContext = false
	m.bookmarkCursor = 0
	m.loginForm = newLoginForm()
	m.regForm = newRegisterForm()
	m.authMode = authLogin
	m.authFocus = 0
	m.authNotice = ""
	m.view = authView
}
