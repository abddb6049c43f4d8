package sponge

import (
	"github.com/maandree/libkeccak/hazmat/keccak"
	"github.com/maandree/libkeccak/internal/mem"
)

// State is a single Keccak sponge instance: the permutation state plus the bitrate/capacity/output parameters that
// govern it, and a growable message buffer holding the bytes absorbed since the last full block.
//
// A State is not safe for concurrent use. Use Clone to fork an independent copy.
type State struct {
	S [25]uint64

	R, C, N  int // bitrate, capacity, output length, in bits
	B        int // state size in bits, R+C
	W        uint
	WordMask uint64
	L        int
	NR       int

	// M holds the Mptr bytes absorbed since the last full block was permuted; Mlen is its backing capacity, kept
	// distinct from len(M) for marshalling fidelity with the reference C layout.
	M    []byte
	Mlen int

	squeezing  bool
	squeezeBuf []byte
	squeezePos int
}

// New initialises a State from a Spec.
func New(spec Spec) (*State, error) {
	if err := spec.Check(); err != nil {
		return nil, err
	}

	st := &State{}
	st.init(spec)
	return st, nil
}

func (st *State) init(spec Spec) {
	st.R, st.C, st.N = spec.Bitrate, spec.Capacity, spec.Output
	st.B = st.R + st.C
	st.W = uint(st.B / 25)
	st.WordMask = wordMask(st.W)
	st.L = logTwo(st.W)
	st.NR = keccak.NumRounds(st.W)

	rateBytes := st.R / 8
	st.M = make([]byte, 0, rateBytes)
	st.Mlen = rateBytes
	st.squeezing = false
	st.squeezeBuf = nil
	st.squeezePos = 0
}

// Reset restores the state to its freshly-initialised condition (zero permutation state, empty message buffer,
// absorbing mode), keeping the existing bitrate/capacity/output parameters.
func (st *State) Reset() {
	clear(st.S[:])
	st.M = st.M[:0]
	st.squeezing = false
	st.squeezeBuf = nil
	st.squeezePos = 0
}

// CopyInto copies st's fields into dest, which must not already hold a live state (its existing M backing array, if
// any, is discarded rather than reused). dest gets its own M and squeezeBuf backing arrays, independent of st's.
func (st *State) CopyInto(dest *State) {
	*dest = *st
	dest.M = append([]byte(nil), st.M...)
	dest.squeezeBuf = append([]byte(nil), st.squeezeBuf...)
}

// Duplicate allocates and returns an independent deep copy of st, via CopyInto. Mutating the duplicate never affects
// the original, and vice versa.
func (st *State) Duplicate() *State {
	dup := &State{}
	st.CopyInto(dup)
	return dup
}

// Clone is Duplicate under the name expected by callers that fork a hash computation (e.g. sha3.ShakeHash.Clone).
func (st *State) Clone() *State {
	return st.Duplicate()
}

// WipeSponge zeros the permutation state (the 25 lanes) in place, without touching the message buffer or releasing
// any backing storage.
func (st *State) WipeSponge() {
	clear(st.S[:])
}

// WipeMessage zeros the bytes buffered in the message buffer (the bytes absorbed since the last full block), without
// touching the permutation state or releasing the backing storage.
func (st *State) WipeMessage() {
	mem.Wipe(st.M[:cap(st.M)])
}

// Wipe zeros the permutation state and message buffer in place, without releasing the backing storage. Use this when
// a State must be scrubbed but may still be reused (e.g. before Reset).
func (st *State) Wipe() {
	st.WipeSponge()
	st.WipeMessage()
	mem.Wipe(st.squeezeBuf)
}

// Destroy wipes the state and releases its buffers. The State must not be used afterward.
func (st *State) Destroy() {
	st.Wipe()
	st.M = nil
	st.squeezeBuf = nil
}

// FastDestroy releases st's buffers without wiping them first. Prefer Destroy whenever the state may have absorbed
// sensitive data; FastDestroy exists for the case where the caller already knows there is nothing left to scrub
// (e.g. a state that only ever held public data) and wants to skip the wipe's cost.
func (st *State) FastDestroy() {
	st.M = nil
	st.squeezeBuf = nil
}

func wordMask(w uint) uint64 {
	if w >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << w) - 1
}

func logTwo(w uint) int {
	l := 0
	for w > 1 {
		w >>= 1
		l++
	}
	return l
}

// laneIndex maps a rate-relative lane position i (0-based, in absorption/squeezing order) to the index into S. Rate
// lane i is A[i mod 5, i/5], and S stores A[x,y] at index x+5y (the layout hazmat/keccak permutes), so the lane sits
// at S[i] and no transposition is applied.
func laneIndex(i int) int {
	return i
}
