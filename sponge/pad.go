package sponge

// pad10x1 appends, as a bit string, extraBits (the low numExtraBits bits of extraBits, LSB first), then suffix
// (a string of '0'/'1' characters giving the domain-separation suffix — "" for Keccak, "01" for SHA-3, "11" for
// RawSHAKE, "1111" for SHAKE, "00" for cSHAKE with a non-empty function name or customisation string), then the
// pad10*1 rule itself: a '1' bit, zero
// or more '0' bits, and a final '1' bit, such that the total number of bits absorbed becomes a multiple of the
// bitrate. The result is appended to st.M as whole bytes (guaranteed, since the bitrate is always a multiple of 8).
func (st *State) pad10x1(extraBits byte, numExtraBits int, suffix string) {
	bits := make([]byte, 0, numExtraBits+len(suffix)+st.R)

	for k := 0; k < numExtraBits; k++ {
		bits = append(bits, (extraBits>>uint(k))&1)
	}
	for _, c := range suffix {
		if c == '1' {
			bits = append(bits, 1)
		} else {
			bits = append(bits, 0)
		}
	}

	priorBits := len(st.M) * 8
	bits = append(bits, 1)
	for (priorBits+len(bits))%st.R != st.R-1 {
		bits = append(bits, 0)
	}
	bits = append(bits, 1)

	st.M = append(st.M, packBitsLSB(bits)...)
}

// packBitsLSB packs a slice of 0/1 values, least-significant-bit first, into bytes. len(bits) must be a multiple of
// 8, which pad10x1 guarantees because the bitrate is always byte-aligned.
func packBitsLSB(bits []byte) []byte {
	out := make([]byte, len(bits)/8)
	for i, b := range bits {
		if b != 0 {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}
