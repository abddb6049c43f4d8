package sha3

import (
	"bytes"
	"encoding"
	"encoding/hex"
	"hash"
	"testing"

	"github.com/maandree/libkeccak/internal/testdata"
)

func TestEmptyVectors(t *testing.T) {
	tests := []struct {
		name string
		h    hash.Hash
		want string
	}{
		{"SHA3-224", New224(), "6b4e03423667dbb73b6e15454f0eb1abd4597f9ca989dd7e463b6048"},
		{"SHA3-256", New256(), "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{"SHA3-384", New384(), "0c63a75b845e4f7d01107d852e4c2485c51a50aaaa94fc61995e71bbee983a2ac3713831264adb47fb6bd1e058d5f004"},
		{"SHA3-512", New512(), "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26"},
		{"Keccak-256", NewLegacyKeccak256(), "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"Keccak-512", NewLegacyKeccak512(), "0eab42de4c3ceb9235fc91acffe746b29c29a8c366b7c60e4e67c466f36a4304c00fa9caf9d87976ba469bcbe06713b435f091ef2769fb160cdab33d3670680e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hex.EncodeToString(tt.h.Sum(nil))
			if got != tt.want {
				t.Errorf("%s(\"\") = %s, want %s", tt.name, got, tt.want)
			}
		})
	}
}

func TestWriteIsIncremental(t *testing.T) {
	whole := New256()
	whole.Write([]byte("hello, world"))

	split := New256()
	split.Write([]byte("hello, "))
	split.Write([]byte("world"))

	a, b := whole.Sum(nil), split.Sum(nil)
	if hex.EncodeToString(a) != hex.EncodeToString(b) {
		t.Errorf("incremental write diverged from single write: %x != %x", a, b)
	}
}

func TestSumHelpersMatchHash(t *testing.T) {
	data := []byte("the quick brown fox")

	h := New256()
	h.Write(data)
	want := h.Sum(nil)

	got := Sum256(data)
	if hex.EncodeToString(got[:]) != hex.EncodeToString(want) {
		t.Errorf("Sum256 = %x, want %x", got, want)
	}
}

func TestResetClearsState(t *testing.T) {
	h := New256()
	h.Write([]byte("some data"))
	h.Reset()

	fresh := New256()
	if hex.EncodeToString(h.Sum(nil)) != hex.EncodeToString(fresh.Sum(nil)) {
		t.Errorf("Reset did not restore the hash to its initial state")
	}
}

func TestSizeAndBlockSize(t *testing.T) {
	tests := []struct {
		h                  hash.Hash
		size, blockSizeLen int
	}{
		{New224(), 28, 144},
		{New256(), 32, 136},
		{New384(), 48, 104},
		{New512(), 64, 72},
	}
	for _, tt := range tests {
		if tt.h.Size() != tt.size {
			t.Errorf("Size() = %d, want %d", tt.h.Size(), tt.size)
		}
		if tt.h.BlockSize() != tt.blockSizeLen {
			t.Errorf("BlockSize() = %d, want %d", tt.h.BlockSize(), tt.blockSizeLen)
		}
	}
}

func TestDigestCloneIndependent(t *testing.T) {
	h := New256().(*digest)
	h.Write([]byte("shared prefix"))

	cloned := h.Clone()
	h.Write([]byte(" original only"))
	cloned.Write([]byte(" clone only"))

	if bytes.Equal(h.Sum(nil), cloned.Sum(nil)) {
		t.Errorf("clone shares state with the original after diverging writes")
	}
}

func TestDigestMarshalRoundTrip(t *testing.T) {
	h := New256().(*digest)
	h.Write([]byte("part one"))

	var marshaler encoding.BinaryMarshaler = h
	state, err := marshaler.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	resumed := New256()
	var unmarshaler encoding.BinaryUnmarshaler = resumed.(*digest)
	if err := unmarshaler.UnmarshalBinary(state); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}

	h.Write([]byte(" part two"))
	resumed.Write([]byte(" part two"))

	if !bytes.Equal(h.Sum(nil), resumed.Sum(nil)) {
		t.Errorf("resumed digest diverged from the original after continuing with the same input")
	}
}

func TestDigestWipeZeroesState(t *testing.T) {
	h := New256().(*digest)
	h.Write([]byte("some data"))

	h.Wipe()

	for i, lane := range h.st.S {
		if lane != 0 {
			t.Errorf("S[%d] = %#x, want 0 after Wipe", i, lane)
		}
	}
}

func BenchmarkSum256(b *testing.B) {
	for _, sz := range testdata.Sizes {
		b.Run(sz.Name, func(b *testing.B) {
			data := make([]byte, sz.N)
			b.SetBytes(int64(sz.N))
			b.ReportAllocs()
			for b.Loop() {
				h := New256()
				h.Write(data)
				h.Sum(nil)
			}
		})
	}
}
