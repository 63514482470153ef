package bloomfilter

import (
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigestReaderOrder(t *testing.T) {
	// bit 0 is the LSB of the last byte
	r := newDigestReader([]byte{0x01, 0x80})
	assert.Equal(t, uint(1), r.readBits(8))
	assert.Equal(t, uint(128), r.readBits(8))
	assert.Equal(t, uint(0), r.remaining())

	r = newDigestReader([]byte{0x01, 0x80})
	assert.Equal(t, uint(0x0180), r.readBits(16))

	r = newDigestReader([]byte{0xFF, 0x0E})
	assert.Equal(t, uint(7), r.readBits(4))
	assert.Equal(t, uint(0), r.readBits(4))
	assert.Equal(t, uint(1), r.readBit())
	assert.Equal(t, uint(7), r.remaining())
}

func TestDigestReaderZeroWidth(t *testing.T) {
	r := newDigestReader([]byte{0xFF})
	assert.Equal(t, uint(0), r.readBits(0))
	assert.Equal(t, uint(8), r.remaining())
}

func TestDigestReaderExhausted(t *testing.T) {
	r := newDigestReader([]byte{0xAA})
	assert.Equal(t, uint(0x55), r.readBits(8))
	assert.Panics(t, func() { r.readBits(1) })
}

func TestDigestReaderWholeDigest(t *testing.T) {
	digest := sha512.Sum512([]byte("foo"))
	r := newDigestReader(digest[:])
	assert.Equal(t, uint(DigestBits), r.remaining())
	for i := 0; i < DigestBits/8; i++ {
		r.readBits(8)
	}
	assert.Equal(t, uint(0), r.remaining())
}
