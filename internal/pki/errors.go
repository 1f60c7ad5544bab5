// Copyright (c) 2026 townsend2010
// sshpki - SSH public key infrastructure
// This source code is licensed under the MIT license found in the LICENSE file.

package pki

import "errors"

// Sentinel errors for the package. Functions wrap these with context via
// fmt.Errorf("...: %w", ...) so callers can classify failures with errors.Is.
var (
	// ErrInvalidArgument reports a nil or empty required input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIO reports a stat, open, read or write failure, including a short
	// read after a successful stat.
	ErrIO = errors.New("i/o failure")

	// ErrDecode reports malformed base64, a truncated or missing wire field,
	// or an unknown key type token.
	ErrDecode = errors.New("decode failure")

	// ErrUnsupportedAlgorithm reports an operation attempted on an ECDSA key
	// or any type that resolves to KeyTypeUnknown.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrProvider reports that the underlying cryptographic build or sign
	// operation rejected its input.
	ErrProvider = errors.New("provider failure")

	// ErrNotPrivateKey reports signing or a private-key export requested on
	// a key lacking private material.
	ErrNotPrivateKey = errors.New("not a private key")
)
