package input

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Read(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guard.txt"), []byte("..#\r\n.^.\r\n\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.in"), []byte("L68\n"), 0600))

	l := NewLoader(dir)

	t.Run("default file name", func(t *testing.T) {
		got, err := l.Read(context.Background(), "guard", "")
		require.NoError(t, err)
		assert.Equal(t, "..#\n.^.", got)
	})

	t.Run("explicit file name", func(t *testing.T) {
		got, err := l.Read(context.Background(), "dial", "custom.in")
		require.NoError(t, err)
		assert.Equal(t, "L68", got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := l.Read(context.Background(), "lists", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "lists.txt")
	})
}

func TestLoader_Path(t *testing.T) {
	l := NewLoader("inputs")
	assert.Equal(t, filepath.Join("inputs", "guard.txt"), l.Path("guard", ""))
	assert.Equal(t, filepath.Join("inputs", "day6.in"), l.Path("guard", "day6.in"))

	abs := filepath.Join(t.TempDir(), "x.txt")
	assert.Equal(t, abs, l.Path("guard", abs))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a\nb", Normalize("a\r\nb\r\n\r\n"))
	assert.Equal(t, "", Normalize("\n\n"))
}
