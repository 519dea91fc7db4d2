package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineSourceCountsLines(t *testing.T) {
	ls := NewLineSource(strings.NewReader("a\r\n\nb"))
	assert.Equal(t, 0, ls.CurrentLine())

	var got []string
	for {
		line, ok, err := ls.ReadLine()
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, line)
	}
	assert.Equal(t, []string{"a", "", "b"}, got)
	assert.Equal(t, 3, ls.CurrentLine())

	// reading past the end does not advance the counter
	_, ok, err := ls.ReadLine()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 3, ls.CurrentLine())
}

func TestLineSourceLongLine(t *testing.T) {
	long := strings.Repeat("x", 2<<20)
	ls := NewLineSource(strings.NewReader(long + "\nshort\n"))

	line, ok, err := ls.ReadLine()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, line, 2<<20)

	line, ok, err = ls.ReadLine()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "short", line)
	assert.Equal(t, 2, ls.CurrentLine())
}

func TestLineSourceReaderFailure(t *testing.T) {
	ls := NewLineSource(&failingReader{})
	for i := 0; i < 2; i++ {
		_, ok, err := ls.ReadLine()
		require.NoError(t, err)
		require.True(t, ok)
	}
	_, ok, err := ls.ReadLine()
	assert.False(t, ok)
	assert.ErrorContains(t, err, "disk on fire")
}
