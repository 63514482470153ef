package bloomfilter

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

// DigestBits is the number of bits in the SHA-512 digest every index is drawn from.
const DigestBits = 512

// MaxIndexBits bounds the bit array at 2^32 bits (512 MiB).
const MaxIndexBits = 32

var (
	// ErrCapacity is returned by Build when the requested slots need more
	// bits than the digest supplies, or a bit array larger than MaxIndexBits allows.
	ErrCapacity = errors.New("the bloom filter is too large for the underlying hash")

	// ErrInvalidParameters is returned by Build when indexBits or hasherCount is zero.
	ErrInvalidParameters = errors.New("index bits and hasher count must be positive")
)

// BloomFilter is a fixed-size bloom filter whose hasherCount indices are
// sliced out of a single SHA-512 digest, indexBits bits each.
type BloomFilter struct {
	bits        *bitset.BitSet
	hasherCount uint
	indexBits   uint
}

// CheckResult is the answer of a membership query.
type CheckResult uint8

const (
	// DefinitelyAbsent means at least one of the key's bits is clear.
	DefinitelyAbsent CheckResult = iota
	// MaybePresent means every one of the key's bits is set.
	MaybePresent
)

func (r CheckResult) String() string {
	switch r {
	case DefinitelyAbsent:
		return "definitely absent"
	case MaybePresent:
		return "maybe present"
	}
	return "unknown"
}
