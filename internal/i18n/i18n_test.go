package i18n

import "testing"

func TestT_KnownMessage(t *testing.T) {
	Init("en")
	if got := T("cli.inspect_type"); got != "type" {
		t.Fatalf("unexpected translation: %q", got)
	}
}

func TestT_UnknownMessageFallsBackToID(t *testing.T) {
	Init("en")
	if got := T("cli.does_not_exist"); got != "cli.does_not_exist" {
		t.Fatalf("expected message ID fallback, got %q", got)
	}
}

func TestT_German(t *testing.T) {
	Init("de")
	defer Init("en")
	if got := T("cli.inspect_type"); got != "Typ" {
		t.Fatalf("unexpected german translation: %q", got)
	}
}
