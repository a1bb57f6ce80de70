package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestMeasure(t *testing.T) {
	testCases := []struct {
		name          string
		content       string
		expectedLines int64
		expectedChars int64
	}{
		{"empty file", "", 0, 0},
		{"single newline", "\n", 1, 1},
		{"one line with terminator", "hello\n", 1, 6},
		{"one line without terminator", "hello", 1, 5},
		{"crlf terminators", "a\r\nb\r\n", 2, 6},
		{"lone cr terminators", "a\rb\r", 2, 4},
		{"lone cr mid file", "a\rb", 2, 3},
		{"mixed terminators", "a\nb\r\nc", 3, 6},
		{"blank lines", "a\n\n\n", 3, 4},
		{"multibyte runes", "héllo\n", 1, 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempFile(t, "sample.txt", []byte(tc.content))
			lines, chars, err := Measure(path)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedLines, lines, "line count mismatch")
			assert.Equal(t, tc.expectedChars, chars, "char count mismatch")
		})
	}
}

func TestMeasureMissingFile(t *testing.T) {
	_, _, err := Measure(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		content  []byte
		isBinary bool
	}{
		{"plain text", []byte("package main\n"), false},
		{"empty file", nil, false},
		{"null byte early", []byte{'a', 0x00, 'b'}, true},
		{"null byte at probe boundary", append(make([]byte, 0, 8192), append(fill('x', 8191), 0x00)...), true},
		{"null byte beyond probe", append(fill('x', 8192), 0x00), false},
		{"high bytes without null", []byte{0xc3, 0xa9, 0xe2, 0x82, 0xac}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempFile(t, "sample.bin", tc.content)
			isBinary, err := Classify(path)
			require.NoError(t, err)
			assert.Equal(t, tc.isBinary, isBinary)
		})
	}
}

func fill(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
