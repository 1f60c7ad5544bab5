package pki

import (
	"errors"
	"testing"
)

func TestNewKeyIsEmpty(t *testing.T) {
	k := NewKey()
	if k.IsPublic() || k.IsPrivate() {
		t.Fatalf("fresh key should be empty, flags=%d", k.flags)
	}
	if k.Type() != KeyTypeUnknown {
		t.Fatalf("fresh key type = %d, want unknown", k.Type())
	}
}

func TestReleaseIsNilSafe(t *testing.T) {
	var k *Key
	k.Release() // must not panic
	NewKey().Release()
}

func TestReleaseScrubsMaterial(t *testing.T) {
	f := &fakeProvider{}
	k := newTestKey(f, KeyTypeRSA, [][]byte{{1, 0, 1}, {0x5a}}, true)
	mat := k.material.(*fakeMaterial)

	k.Release()
	if f.releases != 1 {
		t.Fatalf("expected exactly one provider release, got %d", f.releases)
	}
	if !mat.released {
		t.Fatalf("material not released")
	}
	if k.IsPublic() || k.IsPrivate() || k.material != nil {
		t.Fatalf("key not reset after release")
	}
	// A second release is a no-op.
	k.Release()
	if f.releases != 1 {
		t.Fatalf("release not idempotent, got %d provider calls", f.releases)
	}
}

func TestCleanKeepsKeyUsable(t *testing.T) {
	f := &fakeProvider{}
	k := newTestKey(f, KeyTypeDSS, [][]byte{{1}, {2}, {3}, {4}}, false)
	k.Clean()
	if k.Type() != KeyTypeUnknown || k.IsPublic() {
		t.Fatalf("clean did not reset key")
	}
	if k.prov == nil {
		t.Fatalf("clean must keep the provider binding")
	}
}

func TestDuplicatePublicOnlyFromPrivate(t *testing.T) {
	f := &fakeProvider{}
	priv := newTestKey(f, KeyTypeRSA, [][]byte{{1, 0, 1}, {0x7f}}, true)

	pub, err := priv.Duplicate(false)
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if !pub.IsPublic() {
		t.Fatalf("duplicate lost public material")
	}
	if pub.IsPrivate() {
		t.Fatalf("public-only duplicate still reports private")
	}
	if pub.Type() != KeyTypeRSA {
		t.Fatalf("duplicate changed type to %d", pub.Type())
	}
}

func TestDuplicateWithPrivateKeepsFlags(t *testing.T) {
	f := &fakeProvider{}
	priv := newTestKey(f, KeyTypeDSS, [][]byte{{1}, {2}, {3}, {4}}, true)

	dup, err := priv.Duplicate(true)
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if !dup.IsPrivate() || !dup.IsPublic() {
		t.Fatalf("full duplicate lost material flags")
	}
}

func TestPublicKeyFromPrivateRejectsPublicKey(t *testing.T) {
	f := &fakeProvider{}
	pub := newTestKey(f, KeyTypeRSA, [][]byte{{1, 0, 1}, {0x7f}}, false)

	if _, err := PublicKeyFromPrivate(pub); !errors.Is(err, ErrNotPrivateKey) {
		t.Fatalf("expected ErrNotPrivateKey, got %v", err)
	}
}

func TestDuplicateEmptyKeyFails(t *testing.T) {
	if _, err := NewKey().Duplicate(false); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
