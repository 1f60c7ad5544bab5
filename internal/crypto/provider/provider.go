// Copyright (c) 2026 townsend2010
// sshpki - SSH public key infrastructure
// This source code is licensed under the MIT license found in the LICENSE file.

// Package provider implements pki.Provider on the standard library RSA and
// DSA primitives, with golang.org/x/crypto/ssh for private key parsing.
package provider

import (
	"crypto"
	"crypto/dsa"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/ssh"

	"github.com/townsend2010/sshpki/internal/pki"
)

// Provider performs the asymmetric arithmetic the pki package delegates.
// Material handles are *rsa.PublicKey, *rsa.PrivateKey, *dsa.PublicKey or
// *dsa.PrivateKey.
type Provider struct{}

// New returns a ready-to-use provider.
func New() *Provider { return &Provider{} }

// BuildPublicKey constructs public key material from wire-order fields.
func (p *Provider) BuildPublicKey(t pki.KeyType, fields [][]byte) (pki.Material, error) {
	switch t {
	case pki.KeyTypeRSA, pki.KeyTypeRSA1:
		if len(fields) != 2 {
			return nil, fmt.Errorf("rsa public key needs e and n, got %d fields", len(fields))
		}
		e := new(big.Int).SetBytes(fields[0])
		if !e.IsInt64() || e.Int64() < 3 {
			return nil, fmt.Errorf("rsa exponent out of range")
		}
		return &rsa.PublicKey{
			E: int(e.Int64()),
			N: new(big.Int).SetBytes(fields[1]),
		}, nil
	case pki.KeyTypeDSS:
		if len(fields) != 4 {
			return nil, fmt.Errorf("dsa public key needs p, q, g and y, got %d fields", len(fields))
		}
		return &dsa.PublicKey{
			Parameters: dsa.Parameters{
				P: new(big.Int).SetBytes(fields[0]),
				Q: new(big.Int).SetBytes(fields[1]),
				G: new(big.Int).SetBytes(fields[2]),
			},
			Y: new(big.Int).SetBytes(fields[3]),
		}, nil
	default:
		return nil, fmt.Errorf("key type %q: %w", t.Name(), pki.ErrUnsupportedAlgorithm)
	}
}

// PublicKeyFields exports the public fields in wire order as SSH mpints.
// Private material yields the fields of its public half.
func (p *Provider) PublicKeyFields(m pki.Material) ([][]byte, error) {
	switch k := m.(type) {
	case *rsa.PublicKey:
		return [][]byte{mpint(big.NewInt(int64(k.E))), mpint(k.N)}, nil
	case *rsa.PrivateKey:
		return p.PublicKeyFields(&k.PublicKey)
	case *dsa.PublicKey:
		return [][]byte{mpint(k.P), mpint(k.Q), mpint(k.G), mpint(k.Y)}, nil
	case *dsa.PrivateKey:
		return p.PublicKeyFields(&k.PublicKey)
	default:
		return nil, fmt.Errorf("material %T: %w", m, pki.ErrUnsupportedAlgorithm)
	}
}

// Duplicate deep-copies material. With includePrivate false the copy holds
// only the public fields.
func (p *Provider) Duplicate(m pki.Material, includePrivate bool) (pki.Material, error) {
	switch k := m.(type) {
	case *rsa.PublicKey:
		return &rsa.PublicKey{E: k.E, N: dupInt(k.N)}, nil
	case *rsa.PrivateKey:
		if !includePrivate {
			return p.Duplicate(&k.PublicKey, false)
		}
		out := &rsa.PrivateKey{
			PublicKey: rsa.PublicKey{E: k.E, N: dupInt(k.N)},
			D:         dupInt(k.D),
		}
		for _, prime := range k.Primes {
			out.Primes = append(out.Primes, dupInt(prime))
		}
		out.Precompute()
		return out, nil
	case *dsa.PublicKey:
		return &dsa.PublicKey{
			Parameters: dupParams(k.Parameters),
			Y:          dupInt(k.Y),
		}, nil
	case *dsa.PrivateKey:
		if !includePrivate {
			return p.Duplicate(&k.PublicKey, false)
		}
		return &dsa.PrivateKey{
			PublicKey: dsa.PublicKey{
				Parameters: dupParams(k.Parameters),
				Y:          dupInt(k.Y),
			},
			X: dupInt(k.X),
		}, nil
	default:
		return nil, fmt.Errorf("material %T: %w", m, pki.ErrUnsupportedAlgorithm)
	}
}

// Sign signs the prepared hash buffer. The first byte is the zero pad; the
// remainder is the SHA-1 session digest.
func (p *Provider) Sign(m pki.Material, t pki.KeyType, hashBuf []byte) ([]byte, error) {
	if len(hashBuf) != pki.SessionDigestLength+1 || hashBuf[0] != 0 {
		return nil, fmt.Errorf("malformed hash buffer of %d bytes", len(hashBuf))
	}
	digest := hashBuf[1:]

	switch k := m.(type) {
	case *rsa.PrivateKey:
		return rsa.SignPKCS1v15(rand.Reader, k, crypto.SHA1, digest)
	case *dsa.PrivateKey:
		r, s, err := dsa.Sign(rand.Reader, k, digest)
		if err != nil {
			return nil, fmt.Errorf("dsa sign: %w", err)
		}
		// DSA signature blob: two 160-bit halves, zero padded.
		blob := make([]byte, 40)
		r.FillBytes(blob[:20])
		s.FillBytes(blob[20:])
		return blob, nil
	default:
		return nil, fmt.Errorf("material %T: %w", m, pki.ErrNotPrivateKey)
	}
}

// ParsePrivateKey decrypts and parses PEM private key text. When the key is
// encrypted and no passphrase is given, cb is consulted exactly once.
func (p *Provider) ParsePrivateKey(text, passphrase []byte, cb pki.AuthCallback) (pki.Material, pki.KeyType, error) {
	raw, err := ssh.ParseRawPrivateKey(text)
	if err != nil {
		var missing *ssh.PassphraseMissingError
		if !errors.As(err, &missing) {
			return nil, pki.KeyTypeUnknown, fmt.Errorf("parse private key: %v: %w", err, pki.ErrProvider)
		}

		pass := passphrase
		if len(pass) == 0 && cb != nil {
			pass, err = cb("Enter passphrase for private key: ")
			if err != nil {
				return nil, pki.KeyTypeUnknown, fmt.Errorf("passphrase callback: %v: %w", err, pki.ErrProvider)
			}
		}
		if len(pass) == 0 {
			return nil, pki.KeyTypeUnknown, fmt.Errorf("encrypted private key and no passphrase: %w", pki.ErrProvider)
		}
		raw, err = ssh.ParseRawPrivateKeyWithPassphrase(text, pass)
		if err != nil {
			return nil, pki.KeyTypeUnknown, fmt.Errorf("decrypt private key: %v: %w", err, pki.ErrProvider)
		}
	}

	switch k := raw.(type) {
	case *rsa.PrivateKey:
		return k, pki.KeyTypeRSA, nil
	case *dsa.PrivateKey:
		return k, pki.KeyTypeDSS, nil
	default:
		return nil, pki.KeyTypeUnknown, fmt.Errorf("private key type %T: %w", raw, pki.ErrUnsupportedAlgorithm)
	}
}

// Release scrubs every numeric field of the material before dropping it.
// Hygiene is uniform: public fields are scrubbed too.
func (p *Provider) Release(m pki.Material) {
	switch k := m.(type) {
	case *rsa.PublicKey:
		scrubInt(k.N)
		k.E = 0
	case *rsa.PrivateKey:
		scrubInt(k.D)
		for _, prime := range k.Primes {
			scrubInt(prime)
		}
		scrubInt(k.Precomputed.Dp)
		scrubInt(k.Precomputed.Dq)
		scrubInt(k.Precomputed.Qinv)
		scrubInt(k.N)
		k.E = 0
	case *dsa.PublicKey:
		scrubInt(k.P)
		scrubInt(k.Q)
		scrubInt(k.G)
		scrubInt(k.Y)
	case *dsa.PrivateKey:
		scrubInt(k.X)
		scrubInt(k.P)
		scrubInt(k.Q)
		scrubInt(k.G)
		scrubInt(k.Y)
	}
}

// mpint encodes a non-negative big integer as an SSH mpint: big-endian bytes
// with a leading zero when the high bit is set.
func mpint(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) > 0 && b[0]&0x80 != 0 {
		padded := make([]byte, len(b)+1)
		copy(padded[1:], b)
		return padded
	}
	return b
}

func dupInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}

func dupParams(p dsa.Parameters) dsa.Parameters {
	return dsa.Parameters{P: dupInt(p.P), Q: dupInt(p.Q), G: dupInt(p.G)}
}

// scrubInt overwrites the integer's backing storage before it is dropped.
func scrubInt(v *big.Int) {
	if v == nil {
		return
	}
	bits := v.Bits()
	for i := range bits {
		bits[i] = 0
	}
	v.SetInt64(0)
}
