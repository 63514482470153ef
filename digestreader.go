package bloomfilter

// digestReader is a cursor over the bits of a digest.
//
// Bit 0 is the least-significant bit of the last byte. The cursor moves
// towards the most-significant bit of that byte, then on to the previous
// byte, ending at the most-significant bit of byte 0. Changing this order
// changes every index the filter derives.
type digestReader struct {
	digest []byte
	pos    uint
}

func newDigestReader(digest []byte) digestReader {
	return digestReader{digest: digest}
}

// remaining returns the number of bits not yet consumed.
func (r *digestReader) remaining() uint {
	return uint(len(r.digest))*8 - r.pos
}

// readBit returns the bit under the cursor and advances it.
func (r *digestReader) readBit() uint {
	byteIndex := r.pos / 8
	bitInByte := r.pos % 8
	b := r.digest[uint(len(r.digest))-byteIndex-1]
	r.pos++
	return uint(b>>bitInByte) & 1
}

// readBits consumes n bits and returns them as an unsigned integer, the
// first bit read being the most significant. It panics if fewer than n
// bits remain; callers size their reads from a validated filter.
func (r *digestReader) readBits(n uint) uint {
	if n > r.remaining() {
		panic("bloomfilter: digest exhausted")
	}
	var v uint
	for i := uint(0); i < n; i++ {
		v = v<<1 | r.readBit()
	}
	return v
}
