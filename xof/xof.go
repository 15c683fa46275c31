// Package xof provides the byte-oriented expandable-output functions of the
// zkDilithium signer: SHAKE-128 and SHAKE-256 streams keyed by a seed and a
// 16-bit nonce, plus the plain SHAKE-256 hash H. These are used for public
// deterministic expansion (matrix and secret sampling); the challenge path
// uses the algebraic sponge instead.
package xof

import "golang.org/x/crypto/sha3"

const (
	rate128 = 168
	rate256 = 136
)

// H returns length bytes of SHAKE-256 output over msg.
func H(msg []byte, length int) []byte {
	h := sha3.NewShake256()
	h.Write(msg)
	out := make([]byte, length)
	h.Read(out)
	return out
}

// Stream is a resumable byte cursor over a keyed SHAKE stream. The zero
// value is not usable; construct with New128 or New256 and key with Reset.
type Stream struct {
	h   sha3.ShakeHash
	buf []byte
	pos int
	end int
}

// New128 returns an unkeyed SHAKE-128 stream; call Reset before reading.
func New128() *Stream {
	return &Stream{h: sha3.NewShake128(), buf: make([]byte, rate128)}
}

// New256 returns an unkeyed SHAKE-256 stream; call Reset before reading.
func New256() *Stream {
	return &Stream{h: sha3.NewShake256(), buf: make([]byte, rate256)}
}

// Reset rekeys the stream to seed || nonce (little-endian uint16) and
// rewinds it.
func (x *Stream) Reset(seed []byte, nonce uint16) {
	x.h.Reset()
	x.h.Write(seed)
	x.h.Write([]byte{byte(nonce), byte(nonce >> 8)})
	x.pos = 0
	x.end = 0
}

// Read3 returns the next three bytes of the stream, the granularity every
// sampler consumes.
func (x *Stream) Read3() (b0, b1, b2 byte) {
	if x.pos+3 > x.end {
		leftover := x.end - x.pos
		if leftover > 0 {
			copy(x.buf[:leftover], x.buf[x.pos:x.end])
		}
		n, _ := x.h.Read(x.buf[leftover:])
		x.pos = 0
		x.end = leftover + n
	}
	b0, b1, b2 = x.buf[x.pos], x.buf[x.pos+1], x.buf[x.pos+2]
	x.pos += 3
	return
}

// XOF128 returns n bytes of SHAKE-128 output keyed by seed and nonce.
func XOF128(seed []byte, nonce uint16, n int) []byte {
	h := sha3.NewShake128()
	h.Write(seed)
	h.Write([]byte{byte(nonce), byte(nonce >> 8)})
	out := make([]byte, n)
	h.Read(out)
	return out
}

// XOF256 returns n bytes of SHAKE-256 output keyed by seed and nonce.
func XOF256(seed []byte, nonce uint16, n int) []byte {
	h := sha3.NewShake256()
	h.Write(seed)
	h.Write([]byte{byte(nonce), byte(nonce >> 8)})
	out := make([]byte, n)
	h.Read(out)
	return out
}
