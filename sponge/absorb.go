package sponge

import (
	"encoding/binary"
	"errors"

	"github.com/maandree/libkeccak/hazmat/keccak"
	"github.com/maandree/libkeccak/internal/mem"
)

// ErrNotWholeBlocks is returned by ZerocopyUpdate when the supplied buffer's length is not a whole multiple of the
// rate, the only shape it can absorb directly without buffering.
var ErrNotWholeBlocks = errors.New("sponge: zero-copy update requires a whole multiple of the rate")

// ZerocopyChunksize returns the block size, in bytes, that ZerocopyUpdate requires its input to be a multiple of:
// the bitrate in bytes.
func (st *State) ZerocopyChunksize() int {
	return st.R / 8
}

// ZerocopyUpdate absorbs blocks directly out of the caller's buffer without ever touching the message buffer M,
// provided len(blocks) is a whole multiple of ZerocopyChunksize(); this is the same whole-block fast path Update
// already takes internally, exposed so a caller streaming page-aligned chunks can skip the buffering entirely.
func (st *State) ZerocopyUpdate(blocks []byte) error {
	if st.squeezing {
		panic("sponge: ZerocopyUpdate called after squeezing has begun")
	}
	rateBytes := st.R / 8
	if len(blocks)%rateBytes != 0 {
		return ErrNotWholeBlocks
	}
	for len(blocks) > 0 {
		st.absorbBlock(blocks[:rateBytes])
		blocks = blocks[rateBytes:]
	}
	return nil
}

// Update absorbs whole bytes of message into the sponge, buffering any partial block and growing the message buffer
// with a plain append. The backing array of a replaced buffer is left untouched (its old contents are residue, not
// secret once the new buffer has been absorbed) — this is the "fast" mode of §4.4.
func (st *State) Update(p []byte) {
	if st.squeezing {
		panic("sponge: Update called after squeezing has begun")
	}
	st.absorb(p, false)
}

// SecureUpdate behaves like Update, but wipes the old message-buffer backing array before releasing it whenever
// growth forces a reallocation — the "secure" mode of §4.4.
func (st *State) SecureUpdate(p []byte) {
	if st.squeezing {
		panic("sponge: SecureUpdate called after squeezing has begun")
	}
	st.absorb(p, true)
}

func (st *State) absorb(p []byte, secure bool) {
	rateBytes := st.R / 8

	if len(st.M) > 0 {
		need := rateBytes - len(st.M)
		if need > len(p) {
			st.growBuffer(p, secure)
			return
		}
		st.growBuffer(p[:need], secure)
		p = p[need:]
		st.absorbBlock(st.M)
		st.M = st.M[:0]
	}

	// Zero-copy fast path: absorb whole blocks directly out of the caller's slice.
	for len(p) >= rateBytes {
		st.absorbBlock(p[:rateBytes])
		p = p[rateBytes:]
	}

	if len(p) > 0 {
		st.growBuffer(p, secure)
	}
}

func (st *State) growBuffer(p []byte, secure bool) {
	old := st.M
	grown := cap(old) < len(old)+len(p)

	head, tail := mem.SliceForAppend(old, len(p))
	copy(tail, p)

	if secure && grown {
		mem.Wipe(old)
	}
	st.M = head
	if grown {
		st.Mlen = cap(st.M)
	}
}

// absorbBlock XORs one full rate-sized block into the state in lane-transposed order and runs the permutation.
func (st *State) absorbBlock(block []byte) {
	numLanes := st.R / int(st.W)

	if st.W >= 8 {
		wb := int(st.W / 8)
		var buf [8]byte
		for li := 0; li < numLanes; li++ {
			binary.LittleEndian.PutUint64(buf[:], st.S[laneIndex(li)])
			mem.XORInPlace(buf[:wb], block[li*wb:(li+1)*wb])
			st.S[laneIndex(li)] = binary.LittleEndian.Uint64(buf[:]) & st.WordMask
		}
	} else {
		for li := 0; li < numLanes; li++ {
			st.S[laneIndex(li)] ^= extractBits(block, li*int(st.W), st.W)
		}
	}

	st.permuteBlock()
}

func (st *State) permuteBlock() {
	keccak.Permute(&st.S, st.W, st.NR)
}

// extractBits reads w (< 8) bits starting at bit offset bitOffset of block, least-significant-bit first, and returns
// them as the low w bits of the result. It is only reached for sub-byte lane widths (w = 1, 2, or 4), which cannot be
// addressed a whole byte at a time.
func extractBits(block []byte, bitOffset int, w uint) uint64 {
	var v uint64
	for k := uint(0); k < w; k++ {
		bit := bitOffset + int(k)
		if block[bit/8]&(1<<uint(bit%8)) != 0 {
			v |= 1 << k
		}
	}
	return v
}

// depositBits writes the low w (< 8) bits of v into block starting at bit offset bitOffset, least-significant-bit
// first. The inverse of extractBits, used when squeezing sub-byte lane widths.
func depositBits(block []byte, bitOffset int, w uint, v uint64) {
	for k := uint(0); k < w; k++ {
		bit := bitOffset + int(k)
		if v&(1<<k) != 0 {
			block[bit/8] |= 1 << uint(bit%8)
		} else {
			block[bit/8] &^= 1 << uint(bit%8)
		}
	}
}
