// Package app wires the gateway and the stores together and owns all
// cross-store sequencing. Store transitions around an async operation
// happen here: Begin synchronously, then the network call, then the
// terminal transition. The most recently resolved completion wins.
package app

import (
	"context"
	"errors"

	"veritas/internal/api"
	"veritas/internal/config"
	"veritas/internal/store"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNotAuthenticated is returned by operations that need a token.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrFiltersIncomplete is returned when generate is invoked before all
// three filters are chosen. The view disables the action, so hitting
// this means a caller bug rather than a user mistake.
var ErrFiltersIncomplete = errors.New("content, style and length must all be selected")

// App is the constructed application state: every store plus the
// gateway, injected rather than reached as globals.
type App struct {
	Session   *store.Session
	Content   *store.Content
	Bookmarks *store.Bookmarks
	UI        *store.UI
	Toast     *store.Toast

	cfg     config.Config
	gateway *api.Client
	log     *zap.Logger
}

// New builds the application around cfg. stateDir is where the token is
// persisted ("" disables persistence, useful in tests).
func New(cfg config.Config, stateDir string, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}

	session := store.NewSession(stateDir, log)
	return &App{
		Session:   session,
		Content:   store.NewContent(),
		Bookmarks: store.NewBookmarks(),
		UI:        store.NewUI(),
		Toast:     store.NewToast(),
		cfg:       cfg,
		gateway:   api.NewClient(cfg.Server.BaseURL, cfg.Server.Timeout, session.Token, log),
		log:       log,
	}
}

// Login exchanges credentials for a token and persists it. Failure
// leaves the session untouched; a concurrent second login simply
// overwrites the first's token on completion (last write wins).
func (a *App) Login(ctx context.Context, username, password string) error {
	token, err := a.gateway.Login(ctx, api.Credentials{Username: username, Password: password})
	if err != nil {
		a.log.Info("login failed", zap.String("username", username), zap.Error(err))
		return err
	}
	a.Session.SetToken(token)
	a.log.Info("login succeeded", zap.String("username", username))
	return nil
}

// Register validates the form locally and only then calls the backend.
// A validation failure never issues a request. Success does not log the
// user in.
func (a *App) Register(ctx context.Context, form store.RegistrationForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	return a.gateway.Register(ctx, api.Registration{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	})
}

// Logout tears the whole session down: token, profile, content,
// bookmarks, UI, toast. Nothing from one user survives into the next
// session on a shared machine.
func (a *App) Logout() {
	a.Session.Clear()
	a.Content.Reset()
	a.Bookmarks.Clear()
	a.UI.Reset()
	a.Toast.Hide()
	a.log.Info("logged out")
}

// FetchProfile loads the profile for the stored token. Any failure is
// treated as token invalidation: the session transitions to logged out
// and the persisted token is purged. This is the only place a
// 401-equivalent forces logout.
func (a *App) FetchProfile(ctx context.Context) (api.Profile, error) {
	if !a.Session.Authenticated() {
		return api.Profile{}, ErrNotAuthenticated
	}

	profile, err := a.gateway.Me(ctx)
	if err != nil {
		a.log.Warn("profile fetch failed, invalidating token", zap.Error(err))
		a.Session.Clear()
		return api.Profile{}, err
	}
	a.Session.SetProfile(profile)
	return profile, nil
}

// StartSession runs the session-start sequence: token check, profile
// fetch, then both history feeds in parallel, then fan-out into the
// content and bookmark stores. Profile failure stops the sequence and
// leaves the session logged out; history failure leaves the session
// intact with empty history.
func (a *App) StartSession(ctx context.Context) error {
	if !a.Session.Authenticated() {
		return ErrNotAuthenticated
	}

	if _, err := a.FetchProfile(ctx); err != nil {
		return err
	}

	var (
		news      []api.NewsRecord
		generated []api.GeneratedRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		news, err = a.gateway.NewsHistory(gctx, a.cfg.History.Limit)
		return err
	})
	g.Go(func() error {
		var err error
		generated, err = a.gateway.GeneratedHistory(gctx, a.cfg.History.Limit)
		return err
	})
	if err := g.Wait(); err != nil {
		a.log.Warn("history load failed", zap.Error(err))
		return err
	}

	a.Bookmarks.LoadFromHistory(news, generated)
	if len(news) > 0 {
		a.Content.HydrateFromHistory(news[0])
	}

	a.log.Info("session started",
		zap.Int("newsHistory", len(news)),
		zap.Int("generatedHistory", len(generated)))
	return nil
}

// Predict classifies text with both models. Blank input is a no-op.
// The terminal transition mirrors the gateway outcome; errors are also
// returned so one-shot CLI callers can report them.
func (a *App) Predict(ctx context.Context, text string) error {
	if !a.Content.BeginPredict(text) {
		return nil
	}
	return a.PredictResumed(ctx, text)
}

// PredictResumed finishes a predict whose Begin transition the caller
// already applied. The TUI uses it to apply Begin synchronously on the
// event loop and run only the network call in the background.
func (a *App) PredictResumed(ctx context.Context, text string) error {
	resp, err := a.gateway.Predict(ctx, text)
	if err != nil {
		a.Content.FailPredict(api.UserMessage(err))
		return err
	}
	a.Content.CompletePredict(resp)
	return nil
}

// Generate requests a synthetic article using the filters currently in
// the content store.
func (a *App) Generate(ctx context.Context) error {
	snapshot := a.Content.Generate()
	if !a.Content.BeginGenerate() {
		return ErrFiltersIncomplete
	}

	text, err := a.gateway.Generate(ctx, api.GenerateRequest{
		Context:           snapshot.Filters.Content,
		Style:             snapshot.Filters.Style,
		Length:            snapshot.Filters.Length,
		AdditionalContext: snapshot.AdditionalContext,
	})
	if err != nil {
		a.Content.FailGenerate(api.UserMessage(err))
		return err
	}
	a.Content.CompleteGenerate(text)
	return nil
}

// ToggleCurrentPrediction bookmarks the prediction currently on screen,
// or removes it when already saved. Returns whether a bookmark was
// added and whether the toggle applied at all (it requires a completed
// prediction).
func (a *App) ToggleCurrentPrediction() (added, ok bool) {
	p := a.Content.Predict()
	if p.Status != store.StatusCompleted || p.CustomResult == "" || p.GeminiResult == "" {
		return false, false
	}
	return a.Bookmarks.Toggle(p.NewsText, p.CustomResult, p.GeminiResult), true
}

// SaveGenerated bookmarks the latest generated article.
func (a *App) SaveGenerated() bool {
	g := a.Content.Generate()
	if g.Status != store.StatusCompleted || g.GeneratedText == "" {
		return false
	}
	a.Bookmarks.Add(g.GeneratedText, store.TypeGenerated)
	return true
}
