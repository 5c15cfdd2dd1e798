// Package relay defines the core data types flowing through the medspeak relay.
package relay

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Dialect is one of the supported Chinese translation targets. Each dialect
// carries its own script convention: Simplified characters for Mandarin,
// Traditional characters for Cantonese.
type Dialect string

const (
	DialectMandarin  Dialect = "mandarin"
	DialectCantonese Dialect = "cantonese"
)

// ParseDialect normalises and validates a caller-supplied dialect value.
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(strings.ToLower(strings.TrimSpace(s))) {
	case DialectMandarin:
		return DialectMandarin, nil
	case DialectCantonese:
		return DialectCantonese, nil
	default:
		return "", NewValidation(fmt.Sprintf("unsupported target language %q (expected mandarin or cantonese)", s))
	}
}

// SpeakerRole identifies who authored the text being translated.
type SpeakerRole string

const (
	RoleDoctor  SpeakerRole = "doctor"
	RolePatient SpeakerRole = "patient"
)

// ParseSpeakerRole normalises and validates a caller-supplied speaker role.
func ParseSpeakerRole(s string) (SpeakerRole, error) {
	switch SpeakerRole(strings.ToLower(strings.TrimSpace(s))) {
	case RoleDoctor:
		return RoleDoctor, nil
	case RolePatient:
		return RolePatient, nil
	default:
		return "", NewValidation(fmt.Sprintf("unsupported speaker role %q (expected doctor or patient)", s))
	}
}

// Direction is which way a given exchange is translated. It is derived from
// the speaker role, never supplied separately: the doctor speaks English, the
// patient speaks the dialect.
type Direction string

const (
	DirectionToDialect Direction = "to_dialect"
	DirectionToEnglish Direction = "to_english"
)

// Direction returns the translation direction implied by the role.
func (r SpeakerRole) Direction() Direction {
	if r == RolePatient {
		return DirectionToEnglish
	}
	return DirectionToDialect
}

// Mode tags whether a result came from a real upstream call or from the
// offline phrase-table/skip path.
type Mode string

const (
	ModeLive    Mode = "live"
	ModeOffline Mode = "offline"
)

// Text length bounds, counted in characters (runes, so CJK input is not
// penalised by its UTF-8 encoding). Synthesis has the tighter bound since
// upstream cost and latency scale with text length.
const (
	MaxTranslateChars = 2000
	MaxAudioChars     = 1000
)

// TranslationRequest is a single translate call.
type TranslationRequest struct {
	Text    string      `json:"text"`
	Dialect Dialect     `json:"targetLanguage"`
	Role    SpeakerRole `json:"currentSpeaker"`
}

// Validate checks the request against the relay contract. It is pure: the
// same request always produces the same outcome.
func (r TranslationRequest) Validate() error {
	_, err := r.Normalized()
	return err
}

// Normalized validates the request and returns a copy with the dialect and
// role folded to their canonical lowercase values, so downstream matching and
// direction derivation see the same values validation accepted.
func (r TranslationRequest) Normalized() (TranslationRequest, error) {
	if strings.TrimSpace(r.Text) == "" {
		return r, NewValidation("text must not be empty")
	}
	if n := utf8.RuneCountInString(r.Text); n > MaxTranslateChars {
		return r, NewValidation(fmt.Sprintf("text is %d characters, maximum is %d", n, MaxTranslateChars))
	}
	dialect, err := ParseDialect(string(r.Dialect))
	if err != nil {
		return r, err
	}
	role, err := ParseSpeakerRole(string(r.Role))
	if err != nil {
		return r, err
	}
	r.Dialect = dialect
	r.Role = role
	return r, nil
}

// Direction returns the translation direction implied by the request's role.
func (r TranslationRequest) Direction() Direction {
	return r.Role.Direction()
}

// TranslationResult is the outcome of a translate call.
type TranslationResult struct {
	// SourceText echoes the input for audit/history display.
	SourceText string `json:"sourceText"`

	// TranslatedText is the translation. In offline mode an unmatched input
	// comes back embedded in a clarification placeholder rather than failing.
	TranslatedText string `json:"translatedText"`

	Direction Direction `json:"direction"`
	Mode      Mode      `json:"mode"`
}

// AudioRequest is a single speech synthesis call.
type AudioRequest struct {
	Text    string  `json:"text"`
	Dialect Dialect `json:"targetLanguage"`
}

// Validate checks the request against the relay contract.
func (r AudioRequest) Validate() error {
	_, err := r.Normalized()
	return err
}

// Normalized validates the request and returns a copy with the dialect folded
// to its canonical lowercase value.
func (r AudioRequest) Normalized() (AudioRequest, error) {
	if strings.TrimSpace(r.Text) == "" {
		return r, NewValidation("text must not be empty")
	}
	if n := utf8.RuneCountInString(r.Text); n > MaxAudioChars {
		return r, NewValidation(fmt.Sprintf("text is %d characters, maximum is %d", n, MaxAudioChars))
	}
	dialect, err := ParseDialect(string(r.Dialect))
	if err != nil {
		return r, err
	}
	r.Dialect = dialect
	return r, nil
}

// AudioResult is the outcome of a synthesis call.
type AudioResult struct {
	// Audio is the synthesized payload. Nil in offline mode.
	Audio []byte `json:"audio,omitempty"`

	// ContentType is the MIME type of the audio (e.g., "audio/mpeg").
	ContentType string `json:"contentType,omitempty"`

	// Voice identifies whichever voice profile candidate succeeded.
	Voice string `json:"voice,omitempty"`

	// Duration is an estimated spoken length in seconds. It is a display
	// aid derived from character count, not a measurement.
	Duration float64 `json:"duration,omitempty"`

	// Note carries a human-readable explanation when synthesis was skipped,
	// so the caller can substitute a locally available voice.
	Note string `json:"note,omitempty"`

	Mode Mode `json:"mode"`
}

// Voice is one entry of the synthesis voice catalog.
type Voice struct {
	Name         string `json:"name"`
	LanguageCode string `json:"languageCode"`
	Gender       string `json:"gender,omitempty"`
	Tier         string `json:"tier,omitempty"`
}
