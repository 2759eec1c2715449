package fftbackend

import (
	"math"
	"math/bits"
)

// EmbeddedName is the registry name of the embedded portable backend.
const EmbeddedName = "embedded"

// EmbeddedBackend is the portable pure-Go FFT implementation. It has no
// platform requirements and is always available, which makes it both the
// preferred backend on targets whose capabilities request it and the last
// resort everywhere else.
type EmbeddedBackend struct{}

// NewEmbeddedBackend returns the embedded portable backend.
func NewEmbeddedBackend() *EmbeddedBackend {
	return &EmbeddedBackend{}
}

func init() {
	Register(NewEmbeddedBackend())
}

func (b *EmbeddedBackend) Name() string {
	return EmbeddedName
}

func (b *EmbeddedBackend) Available() bool {
	return true
}

// Transform computes an iterative radix-2 decimation-in-time FFT.
// The length must be a positive power of 2.
func (b *EmbeddedBackend) Transform(dst, src []complex128, inverse bool) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) != len(src) {
		return ErrLengthMismatch
	}

	n := len(src)
	if n == 0 || n&(n-1) != 0 {
		return ErrInvalidLength
	}

	copy(dst, src)
	bitReverse(dst)

	sign := -1.0
	if inverse {
		sign = 1.0
	}

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		step := sign * 2 * math.Pi / float64(size)

		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				angle := step * float64(k)
				w := complex(math.Cos(angle), math.Sin(angle))

				even := dst[start+k]
				odd := dst[start+k+half] * w

				dst[start+k] = even + odd
				dst[start+k+half] = even - odd
			}
		}
	}

	if inverse {
		scale := complex(1/float64(n), 0)
		for i := range dst {
			dst[i] *= scale
		}
	}

	return nil
}

// bitReverse permutes data into bit-reversed index order in place.
func bitReverse(data []complex128) {
	n := len(data)
	shift := bits.UintSize - bits.TrailingZeros(uint(n))

	for i := range data {
		j := int(bits.Reverse(uint(i)) >> shift)
		if j > i {
			data[i], data[j] = data[j], data[i]
		}
	}
}
