package security

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestSecret_RedactsFormatting(t *testing.T) {
	s := FromString("hunter2")
	if got := fmt.Sprintf("%v", s); got != "[SECRET]" {
		t.Fatalf("expected redacted %%v, got %q", got)
	}
	if got := s.String(); got != "[SECRET]" {
		t.Fatalf("expected redacted String, got %q", got)
	}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"[SECRET]"` {
		t.Fatalf("expected redacted JSON, got %s", b)
	}
}

func TestSecret_ZeroOverwrites(t *testing.T) {
	s := FromString("topsecret")
	s.Zero()
	for i, b := range s {
		if b != 0 {
			t.Fatalf("byte %d not zeroed: %x", i, b)
		}
	}
}

func TestSecret_BytesIsACopy(t *testing.T) {
	s := FromString("abc")
	cp := s.Bytes()
	cp[0] = 'x'
	if s[0] != 'a' {
		t.Fatalf("Bytes returned the underlying slice, not a copy")
	}
}

func TestSecret_UsePassesUnderlying(t *testing.T) {
	s := FromString("abc")
	err := s.Use(func(b []byte) error {
		if string(b) != "abc" {
			t.Fatalf("unexpected bytes: %q", b)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("use: %v", err)
	}
}
