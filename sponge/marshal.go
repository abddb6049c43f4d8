package sponge

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrShortBuffer is returned by UnmarshalBinary when the buffer is too short to contain a valid state.
var ErrShortBuffer = errors.New("sponge: marshalled buffer is too short")

// MarshalSize returns the number of bytes MarshalBinary will produce for st, without allocating — the Go analogue of
// the reference implementation's "measure only" (null output pointer) marshalling mode.
func (st *State) MarshalSize() int {
	// R, C, N, B, L, NR, Mptr, Mlen (int64 each) + W, WordMask (uint64 each) + S[25] (uint64 each)
	fixed := 8*8 + 8*2 + 8*25
	// squeezing flag, squeezePos, len(squeezeBuf), squeezeBuf contents
	squeeze := 1 + 8 + 8 + len(st.squeezeBuf)
	return fixed + len(st.M) + squeeze
}

// MarshalBinary serialises st in the fixed field order R, C, N, B, W, WordMask, L, NR, S[25], Mptr, Mlen, M[:Mptr],
// followed by the squeezing-mode bookkeeping needed to resume continued squeezing (not present in the reference C
// layout, which never marshals mid-squeeze state — see DESIGN.md). All integers are little-endian.
func (st *State) MarshalBinary() ([]byte, error) {
	buf := make([]byte, st.MarshalSize())
	off := 0

	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[off:], uint64(v))
		off += 8
	}
	putUint64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[off:], v)
		off += 8
	}

	putInt(st.R)
	putInt(st.C)
	putInt(st.N)
	putInt(st.B)
	putUint64(uint64(st.W))
	putUint64(st.WordMask)
	putInt(st.L)
	putInt(st.NR)
	for _, lane := range st.S {
		putUint64(lane)
	}
	putInt(len(st.M))
	putInt(st.Mlen)
	off += copy(buf[off:], st.M)

	if st.squeezing {
		buf[off] = 1
	}
	off++
	putInt(st.squeezePos)
	putInt(len(st.squeezeBuf))
	copy(buf[off:], st.squeezeBuf)

	return buf, nil
}

// UnmarshalBinary restores a State previously produced by MarshalBinary. It replaces st's entire contents.
func (st *State) UnmarshalBinary(data []byte) error {
	const headerSize = 8*8 + 8*2 + 8*25
	if len(data) < headerSize {
		return fmt.Errorf("sponge: unmarshal header: %w", ErrShortBuffer)
	}

	off := 0
	getInt := func() int {
		v := int(int64(binary.LittleEndian.Uint64(data[off:])))
		off += 8
		return v
	}
	getUint64 := func() uint64 {
		v := binary.LittleEndian.Uint64(data[off:])
		off += 8
		return v
	}

	var n State
	n.R = getInt()
	n.C = getInt()
	n.N = getInt()
	n.B = getInt()
	n.W = uint(getUint64())
	n.WordMask = getUint64()
	n.L = getInt()
	n.NR = getInt()
	for i := range n.S {
		n.S[i] = getUint64()
	}

	if len(data) < off+16 {
		return fmt.Errorf("sponge: unmarshal message length: %w", ErrShortBuffer)
	}
	mptr := getInt()
	mlen := getInt()
	if mptr < 0 || mlen < 0 || len(data) < off+mptr {
		return fmt.Errorf("sponge: unmarshal message buffer: %w", ErrShortBuffer)
	}
	n.M = make([]byte, mptr, max(mptr, mlen))
	off += copy(n.M, data[off:off+mptr])
	n.Mlen = mlen

	if len(data) < off+1 {
		return fmt.Errorf("sponge: unmarshal squeeze flag: %w", ErrShortBuffer)
	}
	n.squeezing = data[off] != 0
	off++

	if len(data) < off+16 {
		return fmt.Errorf("sponge: unmarshal squeeze buffer header: %w", ErrShortBuffer)
	}
	n.squeezePos = getInt()
	squeezeLen := getInt()
	if squeezeLen < 0 || len(data) < off+squeezeLen {
		return fmt.Errorf("sponge: unmarshal squeeze buffer: %w", ErrShortBuffer)
	}
	if squeezeLen > 0 {
		n.squeezeBuf = make([]byte, squeezeLen)
		copy(n.squeezeBuf, data[off:off+squeezeLen])
	}

	*st = n
	return nil
}
