// Package openai implements the Translator interface using the OpenAI
// Chat Completions API.
//
// One completion call per request: the system message is the fixed
// (dialect, direction) template, the user message is the raw input. A low
// sampling temperature biases toward determinism — medical fidelity matters
// more than variation — and a bounded max-tokens ceiling prevents runaway
// generation.
package openai

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/kwanly/medspeak/internal/config"
	"github.com/kwanly/medspeak/internal/relay"
)

// Translator uses the OpenAI API for clinical translation.
type Translator struct {
	client      *goopenai.Client
	model       string
	temperature float32
	maxTokens   int
}

// New creates a new OpenAI translator from config.
func New(cfg config.OpenAIConfig) *Translator {
	return &Translator{
		client:      goopenai.NewClient(cfg.APIKey),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// Name returns the backend identifier.
func (t *Translator) Name() string { return "openai" }

// Translate issues a single chat completion and returns the trimmed reply.
func (t *Translator) Translate(ctx context.Context, req relay.TranslationRequest) (*relay.TranslationResult, error) {
	req, err := req.Normalized()
	if err != nil {
		return nil, err
	}

	dir := req.Direction()
	resp, err := t.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: t.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt(req.Dialect, dir)},
			{Role: goopenai.ChatMessageRoleUser, Content: req.Text},
		},
		Temperature: t.temperature,
		MaxTokens:   t.maxTokens,
	})
	if err != nil {
		return nil, mapUpstreamError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, relay.NewTranslationFailed("translation failed, please try again")
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	slog.Info("translation complete",
		"dialect", req.Dialect,
		"direction", dir,
		"input_preview", preview(req.Text),
		"output_preview", preview(translated))

	return &relay.TranslationResult{
		SourceText:     req.Text,
		TranslatedText: translated,
		Direction:      dir,
		Mode:           relay.ModeLive,
	}, nil
}

// Close is a no-op for the OpenAI translator.
func (t *Translator) Close() error { return nil }

// mapUpstreamError converts an OpenAI API failure into the relay taxonomy.
// Quota exhaustion and rate limiting surface as retry-later conditions;
// everything else degrades to a generic failure that does not leak upstream
// internals to the caller.
func mapUpstreamError(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		if code, ok := apiErr.Code.(string); ok && code == "insufficient_quota" {
			return relay.NewUnavailable(http.StatusTooManyRequests,
				"translation quota exhausted — please try again later").WithCause(err)
		}
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return relay.NewUnavailable(http.StatusTooManyRequests,
				"translation service is rate limited — please try again shortly").WithCause(err)
		}
	}
	slog.Error("upstream translation failure", "error", err)
	return relay.NewTranslationFailed("translation failed, please try again").WithCause(err)
}

// preview truncates text for log lines.
func preview(s string) string {
	const max = 48
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
