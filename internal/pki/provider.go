// Copyright (c) 2026 townsend2010
// sshpki - SSH public key infrastructure
// This source code is licensed under the MIT license found in the LICENSE file.

package pki

// Material is an opaque handle to provider-owned key material. A Material is
// exclusively owned by the Key that carries it and must only be touched
// through the Provider that produced it.
type Material any

// AuthCallback obtains a decryption passphrase for an encrypted private key,
// typically by prompting the user. It is invoked at most once per import
// attempt and never retried.
type AuthCallback func(prompt string) ([]byte, error)

// Provider is the capability set of the external cryptographic backend. It
// performs all asymmetric arithmetic on behalf of this package.
type Provider interface {
	// BuildPublicKey constructs public key material from the wire-order
	// field values for the given type (RSA: e, n; DSS: p, q, g, y). The
	// field slices belong to the caller and may be scrubbed after return.
	BuildPublicKey(t KeyType, fields [][]byte) (Material, error)

	// PublicKeyFields exports the public field values of the material in
	// wire order, encoded as SSH mpints. The returned slices belong to the
	// caller.
	PublicKeyFields(m Material) ([][]byte, error)

	// Duplicate deep-copies the material. With includePrivate false only the
	// public fields are copied, even when the source holds private ones.
	Duplicate(m Material, includePrivate bool) (Material, error)

	// Sign signs the prepared hash buffer (a zero byte followed by the
	// session digest) and returns the raw algorithm-specific signature blob.
	Sign(m Material, t KeyType, hashBuf []byte) ([]byte, error)

	// ParsePrivateKey decrypts and parses PEM private key text. When the key
	// is encrypted and passphrase is empty, cb is consulted once for one.
	ParsePrivateKey(text, passphrase []byte, cb AuthCallback) (Material, KeyType, error)

	// Release scrubs and frees the material. Safe to call with nil.
	Release(m Material)
}
