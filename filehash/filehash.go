// Package filehash computes hash checksums of files, streaming their contents through any hash.Hash constructor
// without loading the whole file into memory.
package filehash

import (
	"fmt"
	"hash"
	"io"
	"os"
)

// SumFile opens the file at path and returns the checksum computed by newHash over its entire contents.
func SumFile(path string, newHash func() hash.Hash) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("filehash: %w", err)
	}
	defer f.Close()

	sum, err := SumReader(f, newHash)
	if err != nil {
		return nil, fmt.Errorf("filehash: %s: %w", path, err)
	}
	return sum, nil
}

// SumReader returns the checksum computed by newHash over everything read from r.
func SumReader(r io.Reader, newHash func() hash.Hash) ([]byte, error) {
	h := newHash()
	if _, err := io.Copy(h, r); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}
