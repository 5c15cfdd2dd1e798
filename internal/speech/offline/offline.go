// Package offline implements the Synthesizer interface when no TTS
// credential is configured. It never calls upstream: synthesis is reported
// as skipped so the caller can substitute a browser-native voice.
package offline

import (
	"context"
	"log/slog"

	"github.com/kwanly/medspeak/internal/relay"
	"github.com/kwanly/medspeak/internal/speech"
)

// Synthesizer is the no-credential speech backend.
type Synthesizer struct{}

// New creates the offline synthesizer.
func New() *Synthesizer { return &Synthesizer{} }

// Name returns the backend identifier.
func (s *Synthesizer) Name() string { return "offline" }

// Synthesize validates the request and returns a result with no audio
// payload and a note explaining the skip.
func (s *Synthesizer) Synthesize(ctx context.Context, req relay.AudioRequest) (*relay.AudioResult, error) {
	req, err := req.Normalized()
	if err != nil {
		return nil, err
	}

	slog.Info("speech synthesis skipped", "dialect", req.Dialect, "text_length", len(req.Text))
	return &relay.AudioResult{
		Note: "speech synthesis skipped — no TTS credentials configured; use a locally available voice",
		Mode: relay.ModeOffline,
	}, nil
}

// Voices returns the static candidate catalog for both dialects.
func (s *Synthesizer) Voices(ctx context.Context) ([]relay.Voice, error) {
	var voices []relay.Voice
	for _, d := range []relay.Dialect{relay.DialectMandarin, relay.DialectCantonese} {
		for _, cand := range speech.Candidates(d) {
			if cand.Name == "" {
				continue
			}
			voices = append(voices, relay.Voice{
				Name:         cand.Name,
				LanguageCode: cand.LanguageCode,
				Tier:         cand.Tier,
			})
		}
	}
	return voices, nil
}

// Close is a no-op.
func (s *Synthesizer) Close() error { return nil }
