// Package verify checks local files against expected content digests.
package verify

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// SHA1File returns the lowercase hex sha1 of the file at path.
func SHA1File(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = file.Close() }()

	hash := sha1.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// FileMatches reports whether path exists and hashes to expected. A missing
// file is a mismatch, not an error.
func FileMatches(path string, expected string) (bool, error) {
	actual, err := SHA1File(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("verify %s: %w", path, err)
	}
	return strings.EqualFold(actual, strings.TrimSpace(expected)), nil
}

// Exists reports whether something is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
