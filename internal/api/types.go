package api

// Wire types mirroring the backend schemas. Timestamps stay as the raw
// strings the backend emits; the stores sort on them without assuming a
// timezone-qualified layout.

// Profile is the authenticated user returned by GET /auth/me.
type Profile struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsActive  bool   `json:"is_active"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
}

// Credentials is the POST /auth/login payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the POST /auth/register payload.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewsRecord is one row of GET /history/news.
type NewsRecord struct {
	ID               int    `json:"id"`
	NewsText         string `json:"news_text"`
	CustomPrediction string `json:"custom_prediction"`
	GeminiPrediction string `json:"gemini_prediction"`
	CreatedAt        string `json:"created_at"`
}

// GeneratedRecord is one row of GET /history/generated.
type GeneratedRecord struct {
	ID            int    `json:"id"`
	GeneratedText string `json:"generated_text"`
	Context       string `json:"context"`
	Style         string `json:"style"`
	Length        string `json:"length"`
	CreatedAt     string `json:"created_at"`
}

// PredictResponse carries both model verdicts for one piece of text.
// Labels arrive verbatim; display normalization happens in the view.
type PredictResponse struct {
	CustomModel string `json:"custom_model"`
	GeminiModel string `json:"gemini_model"`
}

// GenerateRequest is the POST /generate payload. The content category
// travels in the Context field, matching the backend schema.
type GenerateRequest struct {
	Context           string `json:"context"`
	Style             string `json:"style"`
	Length            string `json:"length"`
	AdditionalContext string `json:"additional_context"`
}
