package offline

import (
	"context"
	"strings"
	"testing"

	"github.com/kwanly/medspeak/internal/relay"
)

func TestTranslate_DoctorHelloMandarin(t *testing.T) {
	t.Parallel()

	tr := New()
	res, err := tr.Translate(context.Background(), relay.TranslationRequest{
		Text:    "hello",
		Dialect: relay.DialectMandarin,
		Role:    relay.RoleDoctor,
	})
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if res.TranslatedText != "你好" {
		t.Errorf("translation = %q, want %q", res.TranslatedText, "你好")
	}
	if res.Direction != relay.DirectionToDialect {
		t.Errorf("direction = %s, want %s", res.Direction, relay.DirectionToDialect)
	}
	if res.Mode != relay.ModeOffline {
		t.Errorf("mode = %s, want %s", res.Mode, relay.ModeOffline)
	}
	if res.SourceText != "hello" {
		t.Errorf("source echo = %q, want %q", res.SourceText, "hello")
	}
}

func TestTranslate_PatientHeadacheCantonese(t *testing.T) {
	t.Parallel()

	tr := New()
	res, err := tr.Translate(context.Background(), relay.TranslationRequest{
		Text:    "頭痛",
		Dialect: relay.DialectCantonese,
		Role:    relay.RolePatient,
	})
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if res.TranslatedText != "I have a headache" {
		t.Errorf("translation = %q, want %q", res.TranslatedText, "I have a headache")
	}
	if res.Direction != relay.DirectionToEnglish {
		t.Errorf("direction = %s, want %s", res.Direction, relay.DirectionToEnglish)
	}
}

func TestTranslate_MixedCaseEnumsMatchTables(t *testing.T) {
	t.Parallel()

	tr := New()

	// Dialect and role casing is folded before lookup: "Patient" still
	// translates towards English.
	res, err := tr.Translate(context.Background(), relay.TranslationRequest{
		Text:    "頭痛",
		Dialect: "Cantonese",
		Role:    "Patient",
	})
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if res.Direction != relay.DirectionToEnglish {
		t.Errorf("direction = %s, want %s", res.Direction, relay.DirectionToEnglish)
	}
	if res.TranslatedText != "I have a headache" {
		t.Errorf("translation = %q, want %q", res.TranslatedText, "I have a headache")
	}

	res, err = tr.Translate(context.Background(), relay.TranslationRequest{
		Text:    "hello",
		Dialect: "Mandarin",
		Role:    "DOCTOR",
	})
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if res.TranslatedText != "你好" {
		t.Errorf("translation = %q, want %q", res.TranslatedText, "你好")
	}
}

func TestTranslate_UnmatchedEnglishGetsPlaceholder(t *testing.T) {
	t.Parallel()

	tr := New()
	res, err := tr.Translate(context.Background(), relay.TranslationRequest{
		Text:    "xyz123",
		Dialect: relay.DialectMandarin,
		Role:    relay.RoleDoctor,
	})
	if err != nil {
		t.Fatalf("unmatched input must not fail: %v", err)
	}
	want := "xyz123（请提供更详细的翻译）"
	if res.TranslatedText != want {
		t.Errorf("translation = %q, want %q", res.TranslatedText, want)
	}

	res, err = tr.Translate(context.Background(), relay.TranslationRequest{
		Text:    "xyz123",
		Dialect: relay.DialectCantonese,
		Role:    relay.RoleDoctor,
	})
	if err != nil {
		t.Fatalf("unmatched input must not fail: %v", err)
	}
	if !strings.HasPrefix(res.TranslatedText, "xyz123（請") {
		t.Errorf("cantonese placeholder should use Traditional characters, got %q", res.TranslatedText)
	}
}

func TestTranslate_UnmatchedChineseGetsPlaceholder(t *testing.T) {
	t.Parallel()

	tr := New()
	res, err := tr.Translate(context.Background(), relay.TranslationRequest{
		Text:    "完全唔喺表入面嘅句子",
		Dialect: relay.DialectCantonese,
		Role:    relay.RolePatient,
	})
	if err != nil {
		t.Fatalf("unmatched input must not fail: %v", err)
	}
	if !strings.Contains(res.TranslatedText, "完全唔喺表入面嘅句子") {
		t.Errorf("placeholder should quote the original text, got %q", res.TranslatedText)
	}
	if !strings.HasPrefix(res.TranslatedText, "(") || !strings.HasSuffix(res.TranslatedText, ")") {
		t.Errorf("placeholder should be parenthetical, got %q", res.TranslatedText)
	}
}

func TestTranslate_LongestMatchWins(t *testing.T) {
	t.Parallel()

	tr := New()
	res, err := tr.Translate(context.Background(), relay.TranslationRequest{
		Text:    "Take this medication twice daily with food.",
		Dialect: relay.DialectMandarin,
		Role:    relay.RoleDoctor,
	})
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	// The full-sentence entry, not the shorter "with food" entry, must win.
	if res.TranslatedText != "这个药每天两次，随餐服用" {
		t.Errorf("translation = %q, want the full-sentence entry", res.TranslatedText)
	}
}

func TestTranslate_WordBoundarySafety(t *testing.T) {
	t.Parallel()

	tr := New()
	res, err := tr.Translate(context.Background(), relay.TranslationRequest{
		Text:    "this is fine",
		Dialect: relay.DialectMandarin,
		Role:    relay.RoleDoctor,
	})
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	// "hi" must not fire inside "this"; the input has no table hit at all,
	// so the placeholder form is expected.
	if res.TranslatedText != "this is fine（请提供更详细的翻译）" {
		t.Errorf("translation = %q, want placeholder (no phrase match)", res.TranslatedText)
	}
}

func TestTranslate_PhraseInsideSentenceMatches(t *testing.T) {
	t.Parallel()

	tr := New()
	res, err := tr.Translate(context.Background(), relay.TranslationRequest{
		Text:    "Okay, please take a deep breath for me.",
		Dialect: relay.DialectMandarin,
		Role:    relay.RoleDoctor,
	})
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if res.TranslatedText != "请深呼吸" {
		t.Errorf("translation = %q, want %q", res.TranslatedText, "请深呼吸")
	}
}

func TestTranslate_ChineseSubstringContainment(t *testing.T) {
	t.Parallel()

	tr := New()
	// Chinese has no word boundaries: containment is the matching rule.
	res, err := tr.Translate(context.Background(), relay.TranslationRequest{
		Text:    "医生我头痛啊",
		Dialect: relay.DialectMandarin,
		Role:    relay.RolePatient,
	})
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if res.TranslatedText != "I have a headache" {
		t.Errorf("translation = %q, want %q", res.TranslatedText, "I have a headache")
	}
}

func TestTranslate_DuplicateKeyFirstInsertedWins(t *testing.T) {
	t.Parallel()

	// doctorPhrases carries a deliberate later duplicate of "hello"; the
	// first-inserted entry must win deterministically.
	tr := New()
	res, err := tr.Translate(context.Background(), relay.TranslationRequest{
		Text:    "HELLO",
		Dialect: relay.DialectCantonese,
		Role:    relay.RoleDoctor,
	})
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if res.TranslatedText != "你好" {
		t.Errorf("translation = %q, want first-inserted %q", res.TranslatedText, "你好")
	}
}

func TestTranslate_NeverErrorsOnValidInput(t *testing.T) {
	t.Parallel()

	tr := New()
	inputs := []string{"hello", "zebra xylophone", "!!!", "好", "1234567890"}
	for _, dialect := range []relay.Dialect{relay.DialectMandarin, relay.DialectCantonese} {
		for _, role := range []relay.SpeakerRole{relay.RoleDoctor, relay.RolePatient} {
			for _, text := range inputs {
				if _, err := tr.Translate(context.Background(), relay.TranslationRequest{
					Text: text, Dialect: dialect, Role: role,
				}); err != nil {
					t.Errorf("offline translation errored for (%s,%s,%q): %v", dialect, role, text, err)
				}
			}
		}
	}
}

func TestTranslate_InvalidRequestStillRejected(t *testing.T) {
	t.Parallel()

	tr := New()
	if _, err := tr.Translate(context.Background(), relay.TranslationRequest{
		Text: "", Dialect: relay.DialectMandarin, Role: relay.RoleDoctor,
	}); err == nil {
		t.Fatal("empty text must be rejected even offline")
	}
}
