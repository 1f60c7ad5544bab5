// Copyright (c) 2026 townsend2010
// sshpki - SSH public key infrastructure
// This source code is licensed under the MIT license found in the LICENSE file.

// Package pki implements the public key infrastructure layer of an SSH
// client or server: the in-memory key representation, the RFC 4253 binary
// encoding of public keys, import and export of the supported key formats,
// and the session signing step used during SSH authentication.
//
// The package never performs asymmetric arithmetic itself. All algebra is
// delegated to an injected Provider, so the codec and signing logic can be
// tested against a fake and the real backend can be swapped out.
package pki
