// Copyright (c) 2026 townsend2010
// sshpki - SSH public key infrastructure
// This source code is licensed under the MIT license found in the LICENSE file.

package pki

import "fmt"

type keyFlags uint8

const (
	flagPublic keyFlags = 1 << iota
	flagPrivate
)

// Key represents one asymmetric key, holding either the public half or the
// public and private halves. The material is owned by the Key and released
// with it. A Key is not safe for concurrent mutation; callers sharing one
// across goroutines must serialize access themselves.
type Key struct {
	keyType  KeyType
	flags    keyFlags
	material Material
	prov     Provider
}

// NewKey returns a fresh empty key carrying no material.
func NewKey() *Key {
	return &Key{}
}

// Type returns the key's algorithm type.
func (k *Key) Type() KeyType {
	if k == nil {
		return KeyTypeUnknown
	}
	return k.keyType
}

// TypeName returns the canonical wire name for the key's type.
func (k *Key) TypeName() string {
	return k.Type().Name()
}

// IsPublic reports whether the key carries public material.
func (k *Key) IsPublic() bool {
	return k != nil && k.flags&flagPublic != 0
}

// IsPrivate reports whether the key carries private material.
func (k *Key) IsPrivate() bool {
	return k != nil && k.flags&flagPrivate != 0
}

// Clean scrubs and releases the key's material and resets the key to its
// empty state, keeping the Key itself usable.
func (k *Key) Clean() {
	if k == nil {
		return
	}
	if k.material != nil && k.prov != nil {
		k.prov.Release(k.material)
	}
	k.material = nil
	k.keyType = KeyTypeUnknown
	k.flags = 0
}

// Release scrubs the key material and drops it. A no-op on a nil or already
// empty key.
func (k *Key) Release() {
	if k == nil {
		return
	}
	k.Clean()
	k.prov = nil
}

// Duplicate deep-copies the key. With includePrivate false the copy carries
// only the public fields, even when the source holds private material; this
// is how a public key is derived from a private one.
func (k *Key) Duplicate(includePrivate bool) (*Key, error) {
	if k == nil || k.material == nil {
		return nil, fmt.Errorf("duplicate: %w", ErrInvalidArgument)
	}
	mat, err := k.prov.Duplicate(k.material, includePrivate)
	if err != nil {
		return nil, fmt.Errorf("duplicate %s key: %w: %w", k.TypeName(), ErrProvider, err)
	}
	flags := flagPublic
	if includePrivate && k.IsPrivate() {
		flags |= flagPrivate
	}
	return &Key{
		keyType:  k.keyType,
		flags:    flags,
		material: mat,
		prov:     k.prov,
	}, nil
}

// PublicKeyFromPrivate derives a standalone public key from a private key.
func PublicKeyFromPrivate(k *Key) (*Key, error) {
	if k == nil || !k.IsPrivate() {
		return nil, fmt.Errorf("derive public key: %w", ErrNotPrivateKey)
	}
	return k.Duplicate(false)
}
