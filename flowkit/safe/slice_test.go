//go:build unit

package safe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []int
		size     int
		expected [][]int
	}{
		{
			name:     "even split",
			input:    []int{1, 2, 3, 4},
			size:     2,
			expected: [][]int{{1, 2}, {3, 4}},
		},
		{
			name:     "remainder in final chunk",
			input:    []int{1, 2, 3, 4, 5},
			size:     2,
			expected: [][]int{{1, 2}, {3, 4}, {5}},
		},
		{
			name:     "size larger than slice",
			input:    []int{1, 2, 3},
			size:     10,
			expected: [][]int{{1, 2, 3}},
		},
		{
			name:     "size one is element-wise",
			input:    []int{1, 2, 3},
			size:     1,
			expected: [][]int{{1}, {2}, {3}},
		},
		{
			name:     "empty input",
			input:    []int{},
			size:     3,
			expected: [][]int{},
		},
		{
			name:     "nil input",
			input:    nil,
			size:     3,
			expected: [][]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			chunks, err := Chunk(tt.input, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, chunks)
		})
	}
}

func TestChunk_InvalidSize(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, -1, -100} {
		_, err := Chunk([]int{1, 2, 3}, size)
		assert.ErrorIs(t, err, ErrInvalidChunkSize)
	}
}

func TestChunk_OrderPreserved(t *testing.T) {
	t.Parallel()

	input := make([]int, 100)
	for i := range input {
		input[i] = i
	}

	chunks, err := Chunk(input, 7)
	require.NoError(t, err)

	flat := make([]int, 0, len(input))
	for _, chunk := range chunks {
		flat = append(flat, chunk...)
	}

	assert.Equal(t, input, flat)
}

func TestFirst(t *testing.T) {
	t.Parallel()

	first, err := First([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a", first)

	_, err = First([]string{})
	assert.ErrorIs(t, err, ErrEmptySlice)
}

func TestLast(t *testing.T) {
	t.Parallel()

	last, err := Last([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "b", last)

	_, err = Last([]string{})
	assert.ErrorIs(t, err, ErrEmptySlice)
}

func TestAt(t *testing.T) {
	t.Parallel()

	value, err := At([]int{10, 20, 30}, 1)
	require.NoError(t, err)
	assert.Equal(t, 20, value)

	_, err = At([]int{10}, 5)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)

	_, err = At([]int{10}, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestAtOrDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 20, AtOrDefault([]int{10, 20}, 1, -1))
	assert.Equal(t, -1, AtOrDefault([]int{10, 20}, 9, -1))
}
