// Package speech defines the interface for the speech synthesis relay.
//
// A synthesizer turns translated text into spoken audio. Medspeak ships with
// two backends: gcloudtts (Google Cloud Text-to-Speech REST) and offline,
// which skips synthesis entirely so the caller can substitute a
// browser-native voice.
package speech

import (
	"context"

	"github.com/kwanly/medspeak/internal/relay"
)

// Synthesizer converts translated text to audio.
type Synthesizer interface {
	// Name returns the backend identifier (e.g., "gcloudtts", "offline").
	Name() string

	// Synthesize generates audio for a validated request. Backends may
	// re-validate defensively.
	Synthesize(ctx context.Context, req relay.AudioRequest) (*relay.AudioResult, error)

	// Voices lists the voices available for the supported dialect locales.
	Voices(ctx context.Context) ([]relay.Voice, error)

	// Close releases any resources held by the synthesizer.
	Close() error
}

// Candidate is one voice profile tried during synthesis. An empty Name means
// "use the upstream default voice for this language code" and serves as the
// final fallback in a cascade.
type Candidate struct {
	Name         string
	LanguageCode string
	Tier         string
}

// Candidates returns the ordered voice profile list for a dialect, highest
// preference first. The slices are fixed at compile time and read-only.
func Candidates(d relay.Dialect) []Candidate {
	if d == relay.DialectCantonese {
		return cantoneseCandidates
	}
	return mandarinCandidates
}

var mandarinCandidates = []Candidate{
	{Name: "cmn-CN-Wavenet-A", LanguageCode: "cmn-CN", Tier: "neural"},
	{Name: "cmn-CN-Standard-A", LanguageCode: "cmn-CN", Tier: "standard"},
	{Name: "", LanguageCode: "cmn-CN", Tier: "default"},
}

var cantoneseCandidates = []Candidate{
	{Name: "yue-HK-Standard-A", LanguageCode: "yue-HK", Tier: "standard"},
	{Name: "yue-HK-Standard-B", LanguageCode: "yue-HK", Tier: "standard"},
	{Name: "", LanguageCode: "yue-HK", Tier: "default"},
}

// LanguageCode returns the BCP-47 locale family used for a dialect's voices.
func LanguageCode(d relay.Dialect) string {
	if d == relay.DialectCantonese {
		return "yue-HK"
	}
	return "cmn-CN"
}

// EstimateDuration is the display-aid spoken-length heuristic: character
// count divided by a fixed assumed speaking rate. It is not a measurement.
func EstimateDuration(text string) float64 {
	const charsPerSecond = 3.0
	n := 0
	for range text {
		n++
	}
	return float64(n) / charsPerSecond
}
