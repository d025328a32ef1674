// Package fileutil provides file and path utility functions.
package fileutil

import (
	"crypto/sha256"
	"os"
	"path/filepath"
)

// Stem returns the filename without its directory prefix and without its
// final extension: "dir/paper.tex" -> "paper". A name with no extension is
// returned as-is, and a leading dot ("..", ".gitignore") is never treated
// as an extension separator.
func Stem(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return base
	}
	return base[:len(base)-len(ext)]
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Digest returns the SHA-256 digest of the file's content. A missing or
// unreadable file digests as empty content, so "absent" and "present but
// empty" compare equal; callers only care whether content changed between
// two calls.
func Digest(path string) [sha256.Size]byte {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the build configuration
	if err != nil {
		return sha256.Sum256(nil)
	}
	return sha256.Sum256(data)
}
