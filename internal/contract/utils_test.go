package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v, "%q should parse true", s)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v, "%q should parse false", s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "short.go", TruncatePath("short.go", 20))
	assert.Equal(t, "...ternal/contract/utils.go", TruncatePath("workscope/internal/contract/utils.go", 27))

	// Widths too small for the ellipsis leave the path alone.
	assert.Equal(t, "abcdef", TruncatePath("abcdef", 3))
}

func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Same(t, os.Stdout, f, "an empty path selects stdout")

	path := filepath.Join(t.TempDir(), "artifact.txt")
	f, err = SelectOutputFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, path, f.Name())
}

func TestSignedDelta(t *testing.T) {
	assert.Equal(t, "+5", SignedDelta(5))
	assert.Equal(t, "-3", SignedDelta(-3))
	assert.Equal(t, "0", SignedDelta(0))
}

func TestGetCacheDBFilePath(t *testing.T) {
	path := GetCacheDBFilePath()
	assert.Contains(t, path, ".workscope_cache.db")
}
