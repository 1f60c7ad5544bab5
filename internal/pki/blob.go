// Copyright (c) 2026 townsend2010
// sshpki - SSH public key infrastructure
// This source code is licensed under the MIT license found in the LICENSE file.

package pki

import (
	"bytes"
	"fmt"

	"github.com/townsend2010/sshpki/internal/logging"
)

// Field order per RFC 4253 section 6.6. Decode and encode must agree on it.
var wireFieldNames = map[KeyType][]string{
	KeyTypeRSA:  {"e", "n"},
	KeyTypeRSA1: {"e", "n"},
	KeyTypeDSS:  {"p", "q", "g", "y"},
}

// DecodePublicBlob parses an RFC 4253 public key blob, resolving the key
// type from the leading type name string inside the blob itself.
func DecodePublicBlob(p Provider, blob []byte) (*Key, error) {
	if p == nil || len(blob) == 0 {
		return nil, fmt.Errorf("decode public key blob: %w", ErrInvalidArgument)
	}
	r := newWireReader(blob)
	name, err := r.readString()
	if err != nil {
		return nil, fmt.Errorf("decode public key blob: %w", err)
	}
	return decodePublicKey(p, KeyTypeFromName(string(name)), r)
}

// decodePublicKey reads the algorithm-specific fields for an already
// resolved type and builds the key through the provider. The type is taken
// on trust here; DecodePublicBlob re-derives it while the base64 import path
// uses the caller-declared one.
func decodePublicKey(p Provider, t KeyType, r *wireReader) (*Key, error) {
	names, ok := wireFieldNames[t]
	if !ok {
		return nil, fmt.Errorf("public key type %d: %w", t, ErrUnsupportedAlgorithm)
	}

	fields := make([][]byte, 0, len(names))
	// Whatever happens below, every field read so far is scrubbed before
	// this function returns. No partial Key escapes on failure.
	defer func() { scrubAll(fields) }()

	for _, name := range names {
		f, err := r.readString()
		if err != nil {
			return nil, fmt.Errorf("%s public key: missing field %s: %w", t.Name(), name, err)
		}
		logging.Debugf("%s %s: %x", t.Name(), name, f)
		fields = append(fields, f)
	}

	mat, err := p.BuildPublicKey(t, fields)
	if err != nil {
		return nil, fmt.Errorf("build %s public key: %w: %w", t.Name(), ErrProvider, err)
	}

	return &Key{
		keyType:  t,
		flags:    flagPublic,
		material: mat,
		prov:     p,
	}, nil
}

// EncodePublicBlob serializes the public half of a key as an RFC 4253 key
// blob: the type name followed by the algorithm fields, each length
// prefixed. Fails only when the key carries no public material.
func EncodePublicBlob(k *Key) ([]byte, error) {
	if k == nil || !k.IsPublic() {
		return nil, fmt.Errorf("encode public key blob: %w", ErrInvalidArgument)
	}
	fields, err := k.prov.PublicKeyFields(k.material)
	if err != nil {
		return nil, fmt.Errorf("export %s public fields: %w: %w", k.TypeName(), ErrProvider, err)
	}
	defer scrubAll(fields)

	var buf bytes.Buffer
	writeString(&buf, []byte(k.TypeName()))
	for _, f := range fields {
		writeString(&buf, f)
	}
	return buf.Bytes(), nil
}
