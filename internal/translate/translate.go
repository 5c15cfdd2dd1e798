// Package translate defines the interface for the translation relay.
//
// A translator takes a validated request and produces the translated text.
// Medspeak ships with two backends: openai (cloud chat completions) and
// offline (static phrase-table matching, used when no API credential is
// configured).
package translate

import (
	"context"

	"github.com/kwanly/medspeak/internal/relay"
)

// Translator converts clinical utterances between English and a dialect.
type Translator interface {
	// Name returns the backend identifier (e.g., "openai", "offline").
	Name() string

	// Translate processes a single request. The request is expected to have
	// passed relay validation; backends may re-validate defensively.
	Translate(ctx context.Context, req relay.TranslationRequest) (*relay.TranslationResult, error)

	// Close releases any resources held by the translator.
	Close() error
}
