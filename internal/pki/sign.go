// Copyright (c) 2026 townsend2010
// sshpki - SSH public key infrastructure
// This source code is licensed under the MIT license found in the LICENSE file.

package pki

import (
	"bytes"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
)

// SessionDigestLength is the length of the session identifier and of the
// SHA-1 digest used for session signing.
const SessionDigestLength = sha1.Size

// Signature is the serialized result of one signing operation, tagged with
// the wire name of the algorithm that produced it.
type Signature struct {
	Format string
	Blob   []byte
}

// Marshal serializes the signature in the SSH wire format: the algorithm
// name and the raw signature blob, each length prefixed.
func (s *Signature) Marshal() []byte {
	var buf bytes.Buffer
	writeString(&buf, []byte(s.Format))
	writeString(&buf, s.Blob)
	return buf.Bytes()
}

// SignSession produces the authentication signature binding data to one SSH
// session. The session identifier is hashed in its wire-encoded string form,
// length prefix included, followed by the raw to-be-signed bytes; the
// resulting digest is handed to the provider behind a single zero pad byte.
func SignSession(k *Key, sessionID, data []byte) (*Signature, error) {
	if k == nil || !k.IsPrivate() {
		return nil, fmt.Errorf("sign session: %w", ErrNotPrivateKey)
	}
	if len(sessionID) != SessionDigestLength {
		return nil, fmt.Errorf("sign session: identifier must be %d bytes, got %d: %w",
			SessionDigestLength, len(sessionID), ErrInvalidArgument)
	}

	hashBuf := sessionHashBuffer(sessionID, data)

	blob, err := k.prov.Sign(k.material, k.keyType, hashBuf)
	scrub(hashBuf)
	if err != nil {
		return nil, fmt.Errorf("sign with %s key: %w: %w", k.TypeName(), ErrProvider, err)
	}

	return &Signature{Format: k.TypeName(), Blob: blob}, nil
}

// sessionHashBuffer computes SHA-1 over the framed session identifier and
// the to-be-signed bytes. The result is one byte longer than the digest:
// byte 0 is fixed to zero, a padding convention the downstream signature
// primitive depends on.
func sessionHashBuffer(sessionID, data []byte) []byte {
	h := sha1.New()

	var prefix [4]byte
	binary.BigEndian.PutUint32(prefix[:], uint32(len(sessionID)))
	h.Write(prefix[:])
	h.Write(sessionID)
	h.Write(data)

	out := make([]byte, SessionDigestLength+1)
	h.Sum(out[1:1])
	return out
}
