// Package offline implements the Translator interface with static phrase
// tables. It substitutes for the cloud call when no API credential is
// configured — it is not a fallback on live failures.
//
// Matching rules differ by direction. English input is matched on
// case-insensitive word boundaries so "hi" never fires inside "this";
// Chinese input is matched by substring containment, since Chinese text has
// no whitespace word boundaries. Both scans run longest key first, so
// multi-word idioms beat the shorter sub-phrases they contain. An unmatched
// input never fails: it comes back wrapped in a clarification placeholder.
package offline

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/kwanly/medspeak/internal/relay"
)

// englishEntry is one compiled English-keyed table row.
type englishEntry struct {
	key string
	out string
	re  *regexp.Regexp
}

// chineseEntry is one Chinese-keyed table row.
type chineseEntry struct {
	key string
	out string
}

// Translator matches against the phrase tables built once at construction.
// All tables are read-only afterwards and safe for concurrent use.
type Translator struct {
	toDialect map[relay.Dialect][]englishEntry
	toEnglish map[relay.Dialect][]chineseEntry
	exact     map[relay.Dialect]map[string]string
	reverse   map[relay.Dialect]map[string]string
}

// New builds the offline translator from the static phrase data.
func New() *Translator {
	t := &Translator{
		toDialect: make(map[relay.Dialect][]englishEntry, 2),
		toEnglish: make(map[relay.Dialect][]chineseEntry, 2),
		exact:     make(map[relay.Dialect]map[string]string, 2),
		reverse:   make(map[relay.Dialect]map[string]string, 2),
	}
	t.buildEnglish(relay.DialectMandarin, func(p phrase) string { return p.mandarin })
	t.buildEnglish(relay.DialectCantonese, func(p phrase) string { return p.cantonese })
	t.buildChinese(relay.DialectMandarin, mandarinReplies)
	t.buildChinese(relay.DialectCantonese, cantoneseReplies)
	return t
}

func (t *Translator) buildEnglish(d relay.Dialect, pick func(phrase) string) {
	exact := make(map[string]string, len(doctorPhrases))
	entries := make([]englishEntry, 0, len(doctorPhrases))
	for _, p := range doctorPhrases {
		key := strings.ToLower(strings.TrimSpace(p.english))
		if _, dup := exact[key]; dup {
			// First-inserted entry wins; later duplicates are skipped.
			continue
		}
		exact[key] = pick(p)
		entries = append(entries, englishEntry{
			key: key,
			out: pick(p),
			re:  regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(key) + `\b`),
		})
	}
	// Longest key first; insertion order breaks length ties.
	sort.SliceStable(entries, func(i, j int) bool {
		return utf8.RuneCountInString(entries[i].key) > utf8.RuneCountInString(entries[j].key)
	})
	t.exact[d] = exact
	t.toDialect[d] = entries
}

func (t *Translator) buildChinese(d relay.Dialect, replies []reply) {
	exact := make(map[string]string, len(replies))
	entries := make([]chineseEntry, 0, len(replies))
	for _, r := range replies {
		if _, dup := exact[r.chinese]; dup {
			continue
		}
		exact[r.chinese] = r.english
		entries = append(entries, chineseEntry{key: r.chinese, out: r.english})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return utf8.RuneCountInString(entries[i].key) > utf8.RuneCountInString(entries[j].key)
	})
	t.reverse[d] = exact
	t.toEnglish[d] = entries
}

// Name returns the backend identifier.
func (t *Translator) Name() string { return "offline" }

// Translate performs best-effort phrase-table matching. It never returns an
// error for a valid request.
func (t *Translator) Translate(ctx context.Context, req relay.TranslationRequest) (*relay.TranslationResult, error) {
	req, err := req.Normalized()
	if err != nil {
		return nil, err
	}

	dir := req.Direction()
	var translated string
	if dir == relay.DirectionToDialect {
		translated = t.matchEnglish(req.Dialect, req.Text)
	} else {
		translated = t.matchChinese(req.Dialect, req.Text)
	}

	slog.Info("offline translation",
		"dialect", req.Dialect,
		"direction", dir,
		"input_preview", preview(req.Text),
		"output_preview", preview(translated))

	return &relay.TranslationResult{
		SourceText:     req.Text,
		TranslatedText: translated,
		Direction:      dir,
		Mode:           relay.ModeOffline,
	}, nil
}

// Close is a no-op for the offline translator.
func (t *Translator) Close() error { return nil }

// matchEnglish resolves doctor-authored English against the dialect table.
func (t *Translator) matchEnglish(d relay.Dialect, text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if out, ok := t.exact[d][normalized]; ok {
		return out
	}
	for _, e := range t.toDialect[d] {
		if e.re.MatchString(text) {
			return e.out
		}
	}
	return text + clarificationSuffix(d)
}

// matchChinese resolves patient-authored dialect text to English.
func (t *Translator) matchChinese(d relay.Dialect, text string) string {
	trimmed := strings.TrimSpace(text)
	if out, ok := t.reverse[d][trimmed]; ok {
		return out
	}
	for _, e := range t.toEnglish[d] {
		if strings.Contains(trimmed, e.key) {
			return e.out
		}
	}
	return fmt.Sprintf("(please provide a full translation for %q)", trimmed)
}

// clarificationSuffix is the dialect-appropriate "please provide a more
// detailed translation" marker appended to unmatched English input.
func clarificationSuffix(d relay.Dialect) string {
	if d == relay.DialectCantonese {
		return "（請提供更詳細嘅翻譯）"
	}
	return "（请提供更详细的翻译）"
}

func preview(s string) string {
	const max = 48
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
