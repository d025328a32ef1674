package texmk

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// blockDelimiter matches a magic comment-block boundary: a comment marker
// followed by three or more plus signs, optionally surrounded by whitespace,
// and nothing else on the line.
var blockDelimiter = regexp.MustCompile(`^\s*%+\s*\+{3,}\s*$`)

// commentPrefix matches the leading comment marker of a content line inside
// a block.
var commentPrefix = regexp.MustCompile(`^\s*%+`)

// ExtractConfig reads a source document and returns the raw configuration
// text embedded between magic comment-block delimiters. Delimiter lines
// toggle the block: odd occurrences open, the next closes, and an
// unterminated block extends to the end of the document. Content lines have
// their comment marker and surrounding whitespace stripped; lines outside a
// block are ignored. No syntactic validation happens here.
func ExtractConfig(r io.Reader) (string, error) {
	var raw strings.Builder
	inBlock := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if blockDelimiter.MatchString(line) {
			inBlock = !inBlock
			continue
		}
		if !inBlock {
			continue
		}
		content := commentPrefix.ReplaceAllString(line, "")
		raw.WriteString(strings.TrimSpace(content))
		raw.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading source document: %w", err)
	}

	return raw.String(), nil
}

// ExtractConfigFile extracts embedded configuration text from the document
// at path.
func ExtractConfigFile(path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- path is the user's build target
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	defer func() { _ = f.Close() }()

	return ExtractConfig(f)
}
