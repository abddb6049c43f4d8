package sponge

// InitialiseCShake absorbs the cSHAKE prelude — bytepad(encodeString(functionName) || encodeString(customisation),
// rate) — ahead of any message bytes, per NIST SP 800-185. When both functionName and customisation are empty,
// cSHAKE degenerates to plain SHAKE and no prelude is absorbed at all, matching the standard's explicit exception;
// callers should use SuffixShake in that case and SuffixCShake otherwise.
//
// This only implements the byte-aligned prelude encoding: functionName and customisation are whole bytes, so the
// encoded prelude always ends on a byte boundary, whatever the lane width. Function names or customisation strings
// whose bit length is not a multiple of 8 (the bit-shifted variant in the reference implementation) are not
// supported; see DESIGN.md.
func (st *State) InitialiseCShake(functionName, customisation []byte) {
	if len(functionName) == 0 && len(customisation) == 0 {
		return
	}

	prelude := append(encodeString(functionName), encodeString(customisation)...)
	prelude = bytepad(prelude, st.R/8)
	st.Update(prelude)
}

// HasCShakePrelude reports whether functionName/customisation would cause InitialiseCShake to absorb a prelude
// (i.e. whether the caller should finalise with SuffixCShake instead of SuffixShake).
func HasCShakePrelude(functionName, customisation []byte) bool {
	return len(functionName) != 0 || len(customisation) != 0
}

// leftEncode encodes x as NIST SP 800-185's left_encode: a length-prefixed big-endian integer, the byte count going
// first rather than last (as opposed to right_encode, which this package has no use for).
func leftEncode(x uint64) []byte {
	n := 1
	for v := x >> 8; v > 0; v >>= 8 {
		n++
	}

	out := make([]byte, n+1)
	out[0] = byte(n)
	for i := n; i >= 1; i-- {
		out[i] = byte(x)
		x >>= 8
	}
	return out
}

// encodeString is SP 800-185's encode_string: left_encode(len(s) in bits) followed by s itself.
func encodeString(s []byte) []byte {
	return append(leftEncode(uint64(len(s))*8), s...)
}

// bytepad is SP 800-185's bytepad: left_encode(w) followed by x, zero-padded out to a multiple of w bytes.
func bytepad(x []byte, w int) []byte {
	buf := append(leftEncode(uint64(w)), x...)
	for len(buf)%w != 0 {
		buf = append(buf, 0)
	}
	return buf
}
