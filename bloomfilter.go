package bloomfilter

import (
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/cespare/xxhash"
)

// Build returns an empty filter of 2^indexBits bits whose keys each set
// hasherCount bits. Every index consumes indexBits bits of the key's SHA-512
// digest, so indexBits*hasherCount may not exceed DigestBits.
func Build(indexBits, hasherCount uint) (*BloomFilter, error) {
	if indexBits == 0 || hasherCount == 0 {
		return nil, ErrInvalidParameters
	}
	// Divide rather than multiply: indexBits*hasherCount can wrap around.
	if hasherCount > DigestBits/indexBits {
		return nil, fmt.Errorf("%w: %d index bits x %d hashers need more than the %d bits of the digest",
			ErrCapacity, indexBits, hasherCount, DigestBits)
	}
	if indexBits > MaxIndexBits || indexBits >= bits.UintSize {
		return nil, fmt.Errorf("%w: %d index bits exceeds the maximum of %d",
			ErrCapacity, indexBits, MaxIndexBits)
	}
	return &BloomFilter{
		bits:        bitset.New(uint(1) << indexBits),
		hasherCount: hasherCount,
		indexBits:   indexBits,
	}, nil
}

// Add inserts key into the filter. Adding the same key again is a no-op.
func (filter *BloomFilter) Add(key []byte) {
	for _, i := range filter.indices(key) {
		filter.bits.Set(i)
	}
}

// IsPresent reports MaybePresent if every bit key maps to is set and
// DefinitelyAbsent otherwise. A key passed to Add is never reported absent.
func (filter *BloomFilter) IsPresent(key []byte) CheckResult {
	for _, i := range filter.indices(key) {
		if !filter.bits.Test(i) {
			return DefinitelyAbsent
		}
	}
	return MaybePresent
}

// Contains tells you whether the key is likely part of the set
func (filter *BloomFilter) Contains(key []byte) bool {
	return filter.IsPresent(key) == MaybePresent
}

// indices slices hasherCount values of indexBits bits each out of the
// SHA-512 digest of key, in slot order.
func (filter *BloomFilter) indices(key []byte) []uint {
	digest := sha512.Sum512(key)
	r := newDigestReader(digest[:])
	out := make([]uint, filter.hasherCount)
	for slot := range out {
		out[slot] = r.readBits(filter.indexBits)
	}
	return out
}

// IndexBits returns the number of digest bits each index consumes.
func (filter *BloomFilter) IndexBits() uint { return filter.indexBits }

// HasherCount returns the number of indices derived per key.
func (filter *BloomFilter) HasherCount() uint { return filter.hasherCount }

// Len returns the length of the bit array, 2^IndexBits.
func (filter *BloomFilter) Len() uint {
	return filter.bits.Len()
}

// Count returns the number of set bits.
func (filter *BloomFilter) Count() uint {
	return filter.bits.Count()
}

// LoadFactor returns the fraction of bits that are set.
func (filter *BloomFilter) LoadFactor() float64 {
	return float64(filter.Count()) / float64(filter.Len())
}

// EstimatedFalsePositiveRate is the probability that a key never added
// lands only on set bits, given the current load factor.
func (filter *BloomFilter) EstimatedFalsePositiveRate() float64 {
	return math.Pow(filter.LoadFactor(), float64(filter.hasherCount))
}

// Checksum returns the xxHash64 of the filter parameters and its set bit
// positions. Filters with equal parameters and equal bits have equal checksums.
func (filter *BloomFilter) Checksum() uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(filter.indexBits))
	d.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(filter.hasherCount))
	d.Write(buf[:])
	for i, ok := filter.bits.NextSet(0); ok; i, ok = filter.bits.NextSet(i + 1) {
		binary.LittleEndian.PutUint64(buf[:], uint64(i))
		d.Write(buf[:])
	}
	return d.Sum64()
}

// String renders the bit array as space-separated 0s and 1s in index order.
func (filter *BloomFilter) String() string {
	var sb strings.Builder
	n := filter.Len()
	for i := uint(0); i < n; i++ {
		if filter.bits.Test(i) {
			sb.WriteString("1 ")
		} else {
			sb.WriteString("0 ")
		}
	}
	return sb.String()
}
