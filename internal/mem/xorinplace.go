// Package mem provides small byte-slice helpers used throughout the sponge implementation.
package mem

// XORInPlace sets dst[i] ^= src[i] for each i.
func XORInPlace(dst, src []byte) {
	for i, s := range src[:len(dst)] {
		dst[i] ^= s
	}
}
