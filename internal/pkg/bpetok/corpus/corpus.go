// Package corpus loads raw text for training and encoding.
package corpus

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Load reads text from path, or from stdin when path is "-".
func Load(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	return string(data), nil
}

// Normalize applies Unicode NFC composition. The tokenizer itself operates
// on raw bytes, so this is opt-in: it changes which byte sequences a merge
// table sees for decomposed input.
func Normalize(text string) string {
	return norm.NFC.String(text)
}

// Lines splits text into individual lines for per-line encoding. A single
// trailing newline does not produce an empty final line; empty text yields
// no lines.
func Lines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
