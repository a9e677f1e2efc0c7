package assets

import (
	"bytes"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackgrounds_AllEmbeddedDecode(t *testing.T) {
	b := NewBackgrounds()
	require.Len(t, b.Names(), BackgroundCount)

	for _, name := range b.Names() {
		data, err := b.Load(name)
		require.NoError(t, err, name)
		_, err = png.DecodeConfig(bytes.NewReader(data))
		assert.NoError(t, err, name)
	}
}

func TestBackgrounds_RandomIsUniformOverRange(t *testing.T) {
	var asked []int
	seq := []int{0, 7, 3}
	i := 0
	b := NewBackgrounds().WithRand(func(n int) int {
		asked = append(asked, n)
		v := seq[i]
		i++
		return v
	})

	var got []string
	for range seq {
		name, data, err := b.Random()
		require.NoError(t, err)
		assert.NotEmpty(t, data)
		got = append(got, name)
	}

	assert.Equal(t, []string{"1", "8", "4"}, got)
	assert.Equal(t, []int{8, 8, 8}, asked)
}

func TestBackgrounds_Unreadable(t *testing.T) {
	b := NewBackgroundsFS(fstest.MapFS{}, "backgrounds", 8)

	_, _, err := b.Random()
	assert.ErrorIs(t, err, ErrNoBackgrounds)
}

func TestBackgrounds_Empty(t *testing.T) {
	b := NewBackgroundsFS(fstest.MapFS{}, "x", 0)

	_, _, err := b.Random()
	assert.ErrorIs(t, err, ErrNoBackgrounds)
}
