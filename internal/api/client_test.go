package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, func() string { return token }, nil)
}

func TestLogin_ReturnsToken(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"access_token":"tok-123","token_type":"bearer"}`))
	}), "")

	token, err := client.Login(context.Background(), Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Incorrect username or password"}`))
	}), "")

	_, err := client.Login(context.Background(), Credentials{Username: "alice", Password: "wrong"})
	require.Error(t, err)
	assert.False(t, IsNetwork(err))
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "Incorrect username or password", UserMessage(err))
}

func TestDo_NetworkErrorKind(t *testing.T) {
	// Point at a server that is already closed.
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClient(srv.URL, time.Second, nil, nil)

	_, err := client.Me(context.Background())
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
	assert.False(t, IsUnauthorized(err))
	assert.Equal(t, "Network error. Please check your connection.", UserMessage(err))
}

func TestDo_ServerErrorMessagePassthrough(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Username already registered"}`))
	}), "")

	err := client.Register(context.Background(), Registration{Username: "alice", Email: "a@b.c", Password: "secret1"})
	require.Error(t, err)
	assert.Equal(t, "Username already registered", UserMessage(err))
}

func TestMe_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":1,"username":"alice","email":"alice@example.com","is_active":true}`))
	}), "tok-123")

	profile, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "alice", profile.Username)
	assert.True(t, profile.IsActive)
}

func TestPredict_ParsesBothLabels(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/predict", r.URL.Path)
		w.Write([]byte(`{"custom_model":"Fake","gemini_model":"real"}`))
	}), "tok")

	resp, err := client.Predict(context.Background(), "Breaking: moon made of cheese")
	require.NoError(t, err)
	// Labels are stored verbatim; normalization is a render concern.
	assert.Equal(t, "Fake", resp.CustomModel)
	assert.Equal(t, "real", resp.GeminiModel)
}

func TestGenerate_PlainTextBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/generate", r.URL.Path)
		w.Write([]byte("Scientists confirm the sky remains blue."))
	}), "tok")

	text, err := client.Generate(context.Background(), GenerateRequest{
		Context: "science", Style: "neutral", Length: "short",
	})
	require.NoError(t, err)
	assert.Equal(t, "Scientists confirm the sky remains blue.", text)
}

func TestNewsHistory_LimitQuery(t *testing.T) {
	var gotLimit string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		w.Write([]byte(`[{"id":7,"news_text":"hello","custom_prediction":"fake","gemini_prediction":"true","created_at":"2025-01-02T10:00:00"}]`))
	}), "tok")

	records, err := client.NewsHistory(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "10", gotLimit)
	require.Len(t, records, 1)
	assert.Equal(t, 7, records[0].ID)
	assert.Equal(t, "fake", records[0].CustomPrediction)
}
