package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kwanly/medspeak/internal/relay"
	offlinespeech "github.com/kwanly/medspeak/internal/speech/offline"
	offlinetrans "github.com/kwanly/medspeak/internal/translate/offline"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := New(0, offlinetrans.New(), offlinespeech.New())
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, decoded
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q", body["status"])
	}
	if !strings.Contains(body["message"], "offline") {
		t.Errorf("message should name the active backends, got %q", body["message"])
	}
}

func TestTranslate_OfflineSuccess(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	resp, body := postJSON(t, srv.URL+"/api/translate", map[string]any{
		"text":           "hello",
		"targetLanguage": "mandarin",
		"currentSpeaker": "doctor",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}
	if body["translation"] != "你好" {
		t.Errorf("translation = %v", body["translation"])
	}
	if body["original"] != "hello" {
		t.Errorf("original = %v", body["original"])
	}
	if body["targetLanguage"] != "mandarin" {
		t.Errorf("targetLanguage = %v", body["targetLanguage"])
	}
	if body["demoMode"] != true {
		t.Errorf("offline result must set demoMode, got %v", body["demoMode"])
	}
	if body["translationDirection"] != "to_dialect" {
		t.Errorf("translationDirection = %v", body["translationDirection"])
	}
	if body["timestamp"] == nil {
		t.Error("timestamp missing")
	}
}

func TestTranslate_PatientDirection(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	resp, body := postJSON(t, srv.URL+"/api/translate", map[string]any{
		"text":           "頭痛",
		"targetLanguage": "cantonese",
		"currentSpeaker": "patient",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}
	if body["translation"] != "I have a headache" {
		t.Errorf("translation = %v", body["translation"])
	}
	if body["translationDirection"] != "to_english" {
		t.Errorf("translationDirection = %v", body["translationDirection"])
	}
}

func TestTranslate_MixedCaseWireValues(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	resp, body := postJSON(t, srv.URL+"/api/translate", map[string]any{
		"text":           "頭痛",
		"targetLanguage": "Cantonese",
		"currentSpeaker": "Patient",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}
	if body["translation"] != "I have a headache" {
		t.Errorf("translation = %v", body["translation"])
	}
	if body["translationDirection"] != "to_english" {
		t.Errorf("translationDirection = %v, want to_english", body["translationDirection"])
	}
}

func TestTranslate_ValidationErrors(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	cases := []struct {
		name string
		body map[string]any
	}{
		{"empty text", map[string]any{"text": "", "targetLanguage": "mandarin", "currentSpeaker": "doctor"}},
		{"bad language", map[string]any{"text": "hi", "targetLanguage": "french", "currentSpeaker": "doctor"}},
		{"bad speaker", map[string]any{"text": "hi", "targetLanguage": "mandarin", "currentSpeaker": "visitor"}},
		{"too long", map[string]any{"text": strings.Repeat("a", relay.MaxTranslateChars+1), "targetLanguage": "mandarin", "currentSpeaker": "doctor"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := postJSON(t, srv.URL+"/api/translate", tc.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
			}
			if body["error"] != "validation_error" {
				t.Errorf("error category = %v", body["error"])
			}
			if body["message"] == "" {
				t.Error("expected a specific reason in message")
			}
		})
	}
}

func TestTranslate_BoundaryLengthAccepted(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	resp, _ := postJSON(t, srv.URL+"/api/translate", map[string]any{
		"text":           strings.Repeat("a", relay.MaxTranslateChars),
		"targetLanguage": "mandarin",
		"currentSpeaker": "doctor",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("exactly %d characters must be accepted, status = %d", relay.MaxTranslateChars, resp.StatusCode)
	}
}

func TestTranslate_MalformedBody(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	resp, err := http.Post(srv.URL+"/api/translate", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestAudio_OfflineSkips(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	resp, body := postJSON(t, srv.URL+"/api/audio", map[string]any{
		"text":           "你好",
		"targetLanguage": "mandarin",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}
	if body["audio"] != nil {
		t.Errorf("offline audio must be null, got %v", body["audio"])
	}
	if body["demoMode"] != true {
		t.Errorf("offline result must set demoMode, got %v", body["demoMode"])
	}
	msg, _ := body["message"].(string)
	if !strings.Contains(msg, "skipped") {
		t.Errorf("message should explain the skip, got %q", msg)
	}
}

func TestAudio_LengthBoundary(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	resp, _ := postJSON(t, srv.URL+"/api/audio", map[string]any{
		"text":           strings.Repeat("x", relay.MaxAudioChars),
		"targetLanguage": "cantonese",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("exactly %d characters must be accepted, status = %d", relay.MaxAudioChars, resp.StatusCode)
	}

	resp, body := postJSON(t, srv.URL+"/api/audio", map[string]any{
		"text":           strings.Repeat("x", relay.MaxAudioChars+1),
		"targetLanguage": "cantonese",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}
	if body["error"] != "validation_error" {
		t.Errorf("error category = %v", body["error"])
	}
}

func TestVoices_OfflineCatalog(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/voices")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body struct {
		Voices []relay.Voice `json:"voices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Voices) == 0 {
		t.Fatal("expected voices in offline mode")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/translate")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}
}

func TestRepeatedRequestsSameOutcome(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	payload := map[string]any{
		"text":           "where does it hurt",
		"targetLanguage": "cantonese",
		"currentSpeaker": "doctor",
	}
	var statuses [2]int
	var translations [2]any
	for i := 0; i < 2; i++ {
		resp, body := postJSON(t, srv.URL+"/api/translate", payload)
		statuses[i] = resp.StatusCode
		translations[i] = body["translation"]
	}
	if statuses[0] != statuses[1] {
		t.Errorf("statuses differ: %v", statuses)
	}
	if fmt.Sprint(translations[0]) != fmt.Sprint(translations[1]) {
		t.Errorf("translations differ: %v", translations)
	}
}
