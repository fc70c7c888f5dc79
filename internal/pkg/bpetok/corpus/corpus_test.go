package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world\n"), 0644))

	text, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "hello world\n", text)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestNormalizeComposes(t *testing.T) {
	// 'e' followed by a combining acute accent composes to U+00E9
	require.Equal(t, "é", Normalize("é"))
	require.Equal(t, "plain ascii", Normalize("plain ascii"))
}

func TestLines(t *testing.T) {
	require.Nil(t, Lines(""))
	require.Equal(t, []string{"a"}, Lines("a"))
	require.Equal(t, []string{"a", "b"}, Lines("a\nb\n"))
	require.Equal(t, []string{"a", "", "b"}, Lines("a\n\nb"))
}
