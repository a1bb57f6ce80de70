// Package scan has the text metrics engine and the filesystem inventory walker.
package scan

import (
	"bufio"
	"bytes"
	"io"
	"os"
)

// classifyProbeSize is how much of a file the binary heuristic inspects.
const classifyProbeSize = 8 * 1024

// Classify reports whether the file looks binary: any null byte within the
// first 8 KiB classifies it as binary. This is a heuristic; exotic encodings
// may misclassify and that is accepted.
func Classify(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer func() { _ = f.Close() }()

	probe := make([]byte, classifyProbeSize)
	n, err := io.ReadFull(f, probe)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, err
	}
	return bytes.IndexByte(probe[:n], 0x00) >= 0, nil
}

// Measure streams a text file and counts decoded characters and logical
// lines. A '\n', a lone '\r', and a '\r\n' pair each terminate one line;
// trailing content without a terminator still counts as a final line.
// An empty file yields zero lines and zero characters.
func Measure(path string) (lines, chars int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = f.Close() }()

	reader := bufio.NewReader(f)
	var prevCR bool
	var lastRune rune

	for {
		r, _, readErr := reader.ReadRune()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return 0, 0, readErr
		}

		chars++
		switch r {
		case '\r':
			lines++
			prevCR = true
		case '\n':
			// \r\n is a single terminator already counted at the \r.
			if !prevCR {
				lines++
			}
			prevCR = false
		default:
			prevCR = false
		}
		lastRune = r
	}

	if chars > 0 && lastRune != '\n' && lastRune != '\r' {
		lines++
	}
	return lines, chars, nil
}
