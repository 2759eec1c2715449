package fftbackend

import "errors"

var (
	// ErrNoBackend is returned when no usable FFT backend is registered.
	ErrNoBackend = errors.New("algoplatform/fftbackend: no backend available")

	// ErrInvalidLength is returned when the transform size is not a
	// positive power of 2.
	ErrInvalidLength = errors.New("algoplatform/fftbackend: invalid FFT length")

	// ErrNilSlice is returned when dst or src is nil.
	ErrNilSlice = errors.New("algoplatform/fftbackend: nil slice")

	// ErrLengthMismatch is returned when dst and src lengths differ.
	ErrLengthMismatch = errors.New("algoplatform/fftbackend: length mismatch")
)
