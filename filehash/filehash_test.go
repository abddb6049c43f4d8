package filehash

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/maandree/libkeccak/internal/testdata"
	"github.com/maandree/libkeccak/sha3"
)

func TestSumFileMatchesSumReader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	content := bytes.Repeat([]byte("some file contents\n"), 1000)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fromFile, err := SumFile(path, sha3.New256)
	if err != nil {
		t.Fatalf("SumFile: %v", err)
	}

	fromReader, err := SumReader(bytes.NewReader(content), sha3.New256)
	if err != nil {
		t.Fatalf("SumReader: %v", err)
	}

	if !bytes.Equal(fromFile, fromReader) {
		t.Errorf("SumFile and SumReader disagree: %x != %x", fromFile, fromReader)
	}
}

func TestSumReaderPropagatesError(t *testing.T) {
	wantErr := errors.New("simulated read failure")
	_, err := SumReader(&testdata.ErrReader{Err: wantErr}, sha3.New256)
	if !errors.Is(err, wantErr) {
		t.Fatalf("SumReader error = %v, want %v", err, wantErr)
	}
}

func TestSumFileMissing(t *testing.T) {
	_, err := SumFile(filepath.Join(t.TempDir(), "does-not-exist"), sha3.New256)
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestSumFileEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.bin")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := SumFile(path, sha3.New256)
	if err != nil {
		t.Fatalf("SumFile: %v", err)
	}

	h := sha3.New256()
	want := h.Sum(nil)
	if !bytes.Equal(got, want) {
		t.Errorf("SumFile(empty) = %x, want %x", got, want)
	}
}
