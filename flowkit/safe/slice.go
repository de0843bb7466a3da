package safe

import (
	"errors"
	"fmt"
)

// ErrEmptySlice is returned when attempting to access elements of an empty slice.
var ErrEmptySlice = errors.New("empty slice")

// ErrIndexOutOfBounds is returned when an index is outside the valid range.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// ErrInvalidChunkSize is returned when a chunk size is zero or negative.
var ErrInvalidChunkSize = errors.New("chunk size must be positive")

// Chunk partitions a slice into contiguous sub-slices of at most size
// elements, preserving order. The final chunk may be shorter. Sub-slices
// share backing storage with the input. An empty or nil input yields an
// empty result. Returns ErrInvalidChunkSize when size is not positive.
//
// Example:
//
//	chunks, err := safe.Chunk(items, 5)
//	if err != nil {
//	    return fmt.Errorf("partition items: %w", err)
//	}
func Chunk[T any](slice []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, size)
	}

	chunks := make([][]T, 0, (len(slice)+size-1)/size)

	for start := 0; start < len(slice); start += size {
		end := min(start+size, len(slice))
		chunks = append(chunks, slice[start:end])
	}

	return chunks, nil
}

// First returns the first element of a slice.
// Returns ErrEmptySlice if the slice is empty.
func First[T any](slice []T) (T, error) {
	var zero T

	if len(slice) == 0 {
		return zero, ErrEmptySlice
	}

	return slice[0], nil
}

// Last returns the last element of a slice.
// Returns ErrEmptySlice if the slice is empty.
func Last[T any](slice []T) (T, error) {
	var zero T

	if len(slice) == 0 {
		return zero, ErrEmptySlice
	}

	return slice[len(slice)-1], nil
}

// At returns the element at the specified index.
// Returns ErrIndexOutOfBounds if the index is out of range.
func At[T any](slice []T, index int) (T, error) {
	var zero T

	if index < 0 || index >= len(slice) {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, index, len(slice))
	}

	return slice[index], nil
}

// AtOrDefault returns the element at index, or defaultValue if out of bounds.
func AtOrDefault[T any](slice []T, index int, defaultValue T) T {
	if index < 0 || index >= len(slice) {
		return defaultValue
	}

	return slice[index]
}
