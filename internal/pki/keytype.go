// Copyright (c) 2026 townsend2010
// sshpki - SSH public key infrastructure
// This source code is licensed under the MIT license found in the LICENSE file.

package pki

// KeyType identifies the algorithm family of a key.
type KeyType int

const (
	KeyTypeUnknown KeyType = iota
	KeyTypeRSA1
	KeyTypeRSA
	KeyTypeDSS
	KeyTypeECDSA
)

// Name returns the canonical wire-format string for the key type, or the
// empty string for KeyTypeUnknown.
func (t KeyType) Name() string {
	switch t {
	case KeyTypeDSS:
		return "ssh-dss"
	case KeyTypeRSA:
		return "ssh-rsa"
	case KeyTypeRSA1:
		return "ssh-rsa1"
	case KeyTypeECDSA:
		return "ssh-ecdsa"
	}
	return ""
}

// KeyTypeFromName resolves a key type from its wire name or any of the
// historical short aliases.
func KeyTypeFromName(name string) KeyType {
	switch name {
	case "rsa1", "ssh-rsa1":
		return KeyTypeRSA1
	case "rsa", "ssh-rsa":
		return KeyTypeRSA
	case "dsa", "ssh-dss":
		return KeyTypeDSS
	case "ecdsa", "ssh-ecdsa",
		"ecdsa-sha2-nistp256",
		"ecdsa-sha2-nistp384",
		"ecdsa-sha2-nistp521":
		// ECDSA tokens are recognized but resolution is not wired up yet;
		// they fall through to KeyTypeUnknown like any other name.
	}
	return KeyTypeUnknown
}
