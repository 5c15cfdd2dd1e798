package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kwanly/medspeak/internal/relay"
)

// translateRequest is the POST /api/translate body. Context is accepted for
// forward compatibility with the UI's conversation history but is advisory
// only: the live prompt does not consume it.
type translateRequest struct {
	Text           string          `json:"text"`
	TargetLanguage string          `json:"targetLanguage"`
	CurrentSpeaker string          `json:"currentSpeaker"`
	Context        json.RawMessage `json:"context,omitempty"`
}

// translateResponse is the POST /api/translate success body. DemoMode and
// TranslationDirection are only present for offline results.
type translateResponse struct {
	Translation          string `json:"translation"`
	Original             string `json:"original"`
	TargetLanguage       string `json:"targetLanguage"`
	Timestamp            string `json:"timestamp"`
	DemoMode             bool   `json:"demoMode,omitempty"`
	TranslationDirection string `json:"translationDirection,omitempty"`
}

// audioRequest is the POST /api/audio body.
type audioRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"targetLanguage"`
}

// audioResponse is the POST /api/audio success body. Audio is base64-encoded
// in live mode and null in offline mode (with Message and DemoMode set so
// the caller can fall back to a local voice).
type audioResponse struct {
	Audio       *string `json:"audio"`
	ContentType string  `json:"contentType,omitempty"`
	VoiceType   string  `json:"voiceType,omitempty"`
	Language    string  `json:"language,omitempty"`
	Duration    float64 `json:"duration,omitempty"`
	Timestamp   string  `json:"timestamp,omitempty"`
	Message     string  `json:"message,omitempty"`
	DemoMode    bool    `json:"demoMode,omitempty"`
}

// voicesResponse is the GET /api/voices body.
type voicesResponse struct {
	Voices []relay.Voice `json:"voices"`
}

// healthResponse is the GET /api/health body.
type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// handleHealth reports service status and the active backends.
//
// @Summary     Service health
// @Tags        meta
// @Produce     json
// @Success     200  {object}  healthResponse
// @Router      /api/health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Message: fmt.Sprintf("translation backend %s, speech backend %s",
			s.translator.Name(), s.synthesizer.Name()),
	})
}

// handleVoices lists the available synthesis voices for the supported
// Chinese locale families.
//
// @Summary     List synthesis voices
// @Tags        speech
// @Produce     json
// @Success     200  {object}  voicesResponse
// @Failure     500  {object}  errorBody
// @Router      /api/voices [get]
func (s *Server) handleVoices(w http.ResponseWriter, r *http.Request) {
	voices, err := s.synthesizer.Voices(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if voices == nil {
		voices = []relay.Voice{}
	}
	writeJSON(w, http.StatusOK, voicesResponse{Voices: voices})
}

// handleTranslate relays a clinical utterance through the translator.
//
// @Summary     Translate a clinical utterance
// @Description Direction is derived from currentSpeaker: a doctor speaks
// @Description English and is translated into the target dialect; a patient
// @Description speaks the dialect and is translated into English.
// @Tags        translate
// @Accept      json
// @Produce     json
// @Param       request  body      translateRequest  true  "Utterance to translate"
// @Success     200  {object}  translateResponse
// @Failure     400  {object}  errorBody  "Invalid input or unsupported language/role"
// @Failure     429  {object}  errorBody  "Upstream quota or rate limit"
// @Failure     500  {object}  errorBody
// @Router      /api/translate [post]
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	result, err := s.translator.Translate(r.Context(), relay.TranslationRequest{
		Text:    req.Text,
		Dialect: relay.Dialect(req.TargetLanguage),
		Role:    relay.SpeakerRole(req.CurrentSpeaker),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	resp := translateResponse{
		Translation:    result.TranslatedText,
		Original:       result.SourceText,
		TargetLanguage: req.TargetLanguage,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
	if result.Mode == relay.ModeOffline {
		resp.DemoMode = true
		resp.TranslationDirection = string(result.Direction)
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleAudio relays translated text through the speech synthesizer.
//
// @Summary     Synthesize spoken audio for a translation
// @Tags        speech
// @Accept      json
// @Produce     json
// @Param       request  body      audioRequest  true  "Text to synthesize"
// @Success     200  {object}  audioResponse
// @Failure     400  {object}  errorBody  "Invalid input or text too long"
// @Failure     403  {object}  errorBody  "Speech service unavailable"
// @Failure     429  {object}  errorBody  "Speech service resources exhausted"
// @Failure     500  {object}  errorBody
// @Router      /api/audio [post]
func (s *Server) handleAudio(w http.ResponseWriter, r *http.Request) {
	var req audioRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	result, err := s.synthesizer.Synthesize(r.Context(), relay.AudioRequest{
		Text:    req.Text,
		Dialect: relay.Dialect(req.TargetLanguage),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if result.Mode == relay.ModeOffline {
		writeJSON(w, http.StatusOK, audioResponse{
			Audio:    nil,
			Message:  result.Note,
			DemoMode: true,
		})
		return
	}

	encoded := base64.StdEncoding.EncodeToString(result.Audio)
	writeJSON(w, http.StatusOK, audioResponse{
		Audio:       &encoded,
		ContentType: result.ContentType,
		VoiceType:   result.Voice,
		Language:    req.TargetLanguage,
		Duration:    result.Duration,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}

// decodeBody decodes a JSON request body, mapping malformed input to the
// validation category.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return relay.NewValidation("invalid request body: " + err.Error())
	}
	return nil
}
