// Copyright (c) 2026 townsend2010
// sshpki - SSH public key infrastructure
// This source code is licensed under the MIT license found in the LICENSE file.

package pki

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// RFC 4251 section 5 framing: every field is a 4-byte big-endian length
// followed by the raw bytes.

type wireReader struct {
	buf []byte
	off int
}

func newWireReader(b []byte) *wireReader {
	return &wireReader{buf: b}
}

// readString reads one length-prefixed field and returns a copy of its
// bytes, so the caller owns (and may scrub) the result independently of the
// source buffer.
func (r *wireReader) readString() ([]byte, error) {
	if r.off+4 > len(r.buf) {
		return nil, fmt.Errorf("%w: truncated length prefix at offset %d", ErrDecode, r.off)
	}
	n := binary.BigEndian.Uint32(r.buf[r.off:])
	r.off += 4
	if uint32(len(r.buf)-r.off) < n {
		return nil, fmt.Errorf("%w: field of %d bytes exceeds remaining %d", ErrDecode, n, len(r.buf)-r.off)
	}
	out := make([]byte, n)
	copy(out, r.buf[r.off:r.off+int(n)])
	r.off += int(n)
	return out, nil
}

func writeString(buf *bytes.Buffer, s []byte) {
	var l [4]byte
	binary.BigEndian.PutUint32(l[:], uint32(len(s)))
	buf.Write(l[:])
	buf.Write(s)
}

// scrub overwrites a buffer before it is dropped. Applied uniformly to every
// wire field, public ones included.
func scrub(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func scrubAll(bufs [][]byte) {
	for _, b := range bufs {
		scrub(b)
	}
}
