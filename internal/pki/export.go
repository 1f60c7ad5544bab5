// Copyright (c) 2026 townsend2010
// sshpki - SSH public key infrastructure
// This source code is licensed under the MIT license found in the LICENSE file.

package pki

import (
	"encoding/base64"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
)

// Environment supplies the local identity used for the comment of exported
// public key files.
type Environment interface {
	Username() (string, error)
	Hostname() (string, error)
}

type osEnvironment struct{}

func (osEnvironment) Username() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

func (osEnvironment) Hostname() (string, error) {
	return os.Hostname()
}

// SystemEnvironment returns an Environment backed by the local OS.
func SystemEnvironment() Environment {
	return osEnvironment{}
}

// ExportPublicKeyBase64 encodes the public half of a key as a base64 RFC
// 4253 key blob.
func ExportPublicKeyBase64(k *Key) (string, error) {
	blob, err := EncodePublicBlob(k)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(blob), nil
}

// ExportPublicKeyFile writes an OpenSSH one-line public key file,
// "<type> <base64> <user>@<host>\n". The line is written to a temporary file
// in the target directory and renamed into place, so a reader never observes
// a partially written file at the final path; any failure removes the
// temporary file.
func ExportPublicKeyFile(k *Key, path string, env Environment) error {
	if k == nil || path == "" {
		return fmt.Errorf("export public key file: %w", ErrInvalidArgument)
	}
	if env == nil {
		env = SystemEnvironment()
	}

	username, err := env.Username()
	if err != nil {
		return fmt.Errorf("local username: %v: %w", err, ErrIO)
	}
	host, err := env.Hostname()
	if err != nil {
		return fmt.Errorf("local hostname: %v: %w", err, ErrIO)
	}

	b64, err := ExportPublicKeyBase64(k)
	if err != nil {
		return err
	}
	line := fmt.Sprintf("%s %s %s@%s\n", k.TypeName(), b64, username, host)

	tmp, err := os.CreateTemp(filepath.Dir(path), ".pubkey-*")
	if err != nil {
		return fmt.Errorf("create %s: %v: %w", path, err, ErrIO)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(line); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %v: %w", path, err, ErrIO)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %v: %w", path, err, ErrIO)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("commit %s: %v: %w", path, err, ErrIO)
	}
	return nil
}
