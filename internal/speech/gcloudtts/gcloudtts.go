// Package gcloudtts implements the Synthesizer interface against the Google
// Cloud Text-to-Speech REST API.
//
// Each request wraps the text in an SSML prosody envelope tuned for clarity
// in a clinical listening context, then walks the dialect's ordered voice
// candidate list until one synthesis attempt returns a non-empty payload.
// Candidates are tried strictly sequentially — a later candidate is only
// attempted after an explicit earlier failure — and an empty audio payload
// counts as a failure, not a success. If every candidate fails, the last
// error is propagated.
package gcloudtts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/kwanly/medspeak/internal/config"
	"github.com/kwanly/medspeak/internal/relay"
	"github.com/kwanly/medspeak/internal/speech"
)

const defaultEndpoint = "https://texttospeech.googleapis.com/v1"

// Synthesizer calls the Google TTS REST API with API-key auth.
type Synthesizer struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// New creates a new Google TTS synthesizer from config.
func New(cfg config.GoogleTTSConfig) *Synthesizer {
	endpoint := strings.TrimSuffix(cfg.Endpoint, "/")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Synthesizer{
		apiKey:   cfg.APIKey,
		endpoint: endpoint,
		client:   &http.Client{},
	}
}

// Name returns the backend identifier.
func (s *Synthesizer) Name() string { return "gcloudtts" }

// Synthesize tries each voice candidate in preference order and returns the
// first successful result, annotated with the voice that produced it.
func (s *Synthesizer) Synthesize(ctx context.Context, req relay.AudioRequest) (*relay.AudioResult, error) {
	req, err := req.Normalized()
	if err != nil {
		return nil, err
	}

	ssml := buildSSML(req.Text)

	var lastErr error
	for _, cand := range speech.Candidates(req.Dialect) {
		audio, err := s.synthesizeOnce(ctx, ssml, cand)
		if err != nil {
			slog.Warn("voice candidate failed",
				"voice", voiceLabel(cand), "dialect", req.Dialect, "error", err)
			lastErr = err
			continue
		}

		slog.Info("synthesis complete",
			"voice", voiceLabel(cand), "dialect", req.Dialect, "bytes", len(audio))
		return &relay.AudioResult{
			Audio:       audio,
			ContentType: "audio/mpeg",
			Voice:       voiceLabel(cand),
			Duration:    speech.EstimateDuration(req.Text),
			Mode:        relay.ModeLive,
		}, nil
	}
	return nil, lastErr
}

// synthesizeOnce performs a single text:synthesize call for one candidate.
func (s *Synthesizer) synthesizeOnce(ctx context.Context, ssml string, cand speech.Candidate) ([]byte, error) {
	reqBody := synthesizeRequest{
		Input:       synthesisInput{SSML: ssml},
		Voice:       voiceSelection{LanguageCode: cand.LanguageCode, Name: cand.Name},
		AudioConfig: audioConfig{AudioEncoding: "MP3"},
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshalling synthesize request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/text:synthesize?key=%s", s.endpoint, url.QueryEscape(s.apiKey))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating synthesize request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, relay.NewSynthesisFailed("speech synthesis failed, please try again").WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, mapStatus(resp.StatusCode, string(respBody))
	}

	var result struct {
		AudioContent string `json:"audioContent"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, relay.NewSynthesisFailed("speech synthesis failed, please try again").WithCause(err)
	}
	if result.AudioContent == "" {
		return nil, relay.NewSynthesisFailed("speech synthesis returned no audio").
			WithCause(fmt.Errorf("empty audioContent for voice %q", voiceLabel(cand)))
	}

	audio, err := base64.StdEncoding.DecodeString(result.AudioContent)
	if err != nil {
		return nil, relay.NewSynthesisFailed("speech synthesis failed, please try again").WithCause(err)
	}
	return audio, nil
}

// Voices lists upstream voices for both supported locale families.
func (s *Synthesizer) Voices(ctx context.Context) ([]relay.Voice, error) {
	var voices []relay.Voice
	for _, lc := range []string{"cmn-CN", "yue-HK"} {
		vs, err := s.voicesForLocale(ctx, lc)
		if err != nil {
			return nil, err
		}
		voices = append(voices, vs...)
	}
	return voices, nil
}

func (s *Synthesizer) voicesForLocale(ctx context.Context, languageCode string) ([]relay.Voice, error) {
	reqURL := fmt.Sprintf("%s/voices?languageCode=%s&key=%s",
		s.endpoint, url.QueryEscape(languageCode), url.QueryEscape(s.apiKey))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating voices request: %w", err)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("listing voices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("listing voices (status %d): %s", resp.StatusCode, respBody)
	}

	var result struct {
		Voices []struct {
			LanguageCodes []string `json:"languageCodes"`
			Name          string   `json:"name"`
			SSMLGender    string   `json:"ssmlGender"`
		} `json:"voices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding voices: %w", err)
	}

	voices := make([]relay.Voice, 0, len(result.Voices))
	for _, v := range result.Voices {
		lc := languageCode
		if len(v.LanguageCodes) > 0 {
			lc = v.LanguageCodes[0]
		}
		voices = append(voices, relay.Voice{
			Name:         v.Name,
			LanguageCode: lc,
			Gender:       strings.ToLower(v.SSMLGender),
			Tier:         tierOf(v.Name),
		})
	}
	return voices, nil
}

// Close is a no-op — connections are per-request.
func (s *Synthesizer) Close() error { return nil }

// mapStatus converts an upstream HTTP status into the relay taxonomy.
// Caller-visible details never include the upstream response body.
func mapStatus(status int, body string) *relay.Error {
	cause := fmt.Errorf("upstream status %d: %.200s", status, body)
	switch status {
	case http.StatusBadRequest:
		return relay.NewInvalidInput("speech input was rejected — check the text content").WithCause(cause)
	case http.StatusForbidden:
		return relay.NewUnavailable(http.StatusForbidden,
			"speech service is unavailable — service configuration problem").WithCause(cause)
	case http.StatusTooManyRequests:
		return relay.NewUnavailable(http.StatusTooManyRequests,
			"speech service resources exhausted — please try again later").WithCause(cause)
	default:
		return relay.NewSynthesisFailed("speech synthesis failed, please try again").WithCause(cause)
	}
}

func voiceLabel(cand speech.Candidate) string {
	if cand.Name == "" {
		return "default (" + cand.LanguageCode + ")"
	}
	return cand.Name
}

func tierOf(name string) string {
	switch {
	case strings.Contains(name, "Wavenet"), strings.Contains(name, "Neural"):
		return "neural"
	default:
		return "standard"
	}
}
