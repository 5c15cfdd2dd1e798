package gcloudtts

import (
	"bytes"
	"encoding/xml"
)

// Wire types for the text:synthesize request body.

type synthesizeRequest struct {
	Input       synthesisInput `json:"input"`
	Voice       voiceSelection `json:"voice"`
	AudioConfig audioConfig    `json:"audioConfig"`
}

type synthesisInput struct {
	SSML string `json:"ssml"`
}

type voiceSelection struct {
	LanguageCode string `json:"languageCode"`
	Name         string `json:"name,omitempty"`
}

type audioConfig struct {
	AudioEncoding string `json:"audioEncoding"`
}

// buildSSML wraps text in the prosody envelope used for every synthesis
// call: speaking rate slowed to 85%, pitch lowered two semitones, moderate
// emphasis, and a trailing half-second pause. Tuned for clarity when a
// patient listens in a clinical setting.
func buildSSML(text string) string {
	var buf bytes.Buffer
	buf.WriteString(`<speak><prosody rate="85%" pitch="-2st"><emphasis level="moderate">`)
	_ = xml.EscapeText(&buf, []byte(text))
	buf.WriteString(`</emphasis></prosody><break time="500ms"/></speak>`)
	return buf.String()
}
