// Package keccak implements the Keccak-p permutation family: the round function shared by Keccak, SHA-3, SHAKE,
// cSHAKE, and HMAC-over-Keccak, generalised over the lane width (a power of two from 1 to 64 bits) and round count.
//
// The 25-lane state is always represented as [25]uint64, with only the low w bits of each lane significant for a
// given lane width w; callers are responsible for keeping the unused high bits clear (Permute never reads them and
// always leaves them zero on return).
package keccak

// rc holds the 24 round constants of Keccak-f[1600]. Keccak-p[25w, nr] runs rounds NumRounds(w)-nr through
// NumRounds(w)-1, so the full-round permutation of a narrower lane width uses the first NumRounds(w) constants, and a
// reduced-round 64-bit permutation uses the last nr.
var rc = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotc holds the rotation offsets for the rho step, indexed [x][y] in the lane coordinates of A[x,y] = S[x+5y].
var rotc = [5][5]uint{
	{0, 36, 3, 41, 18},
	{1, 44, 10, 45, 2},
	{62, 6, 43, 15, 61},
	{28, 55, 25, 21, 56},
	{27, 20, 39, 8, 14},
}

// NumRounds returns the round count for the Keccak-p permutation over a lane of width w bits, nr = 12 + 2*log2(w).
func NumRounds(w uint) int {
	l := 0
	for 1<<uint(l) < w {
		l++
	}
	return 12 + 2*l
}

// Permute applies the Keccak-p[25w, nr] permutation to S, where w is the lane width in bits (a power of two, 1
// through 64) and nr is the round count. Only the low w bits of each lane are read or written; w == 64 dispatches to
// the unmasked fast path.
func Permute(s *[25]uint64, w uint, nr int) {
	if w == 64 {
		permuteFast(s, nr)
		return
	}
	permuteGeneric(s, w, nr)
}

// P1600 applies the full, unreduced Keccak-p[1600, 24] permutation — the fast path used by SHA-3, SHAKE, and cSHAKE,
// none of which ever reduce the round count.
func P1600(s *[25]uint64) {
	permuteFast(s, 24)
}

func permuteFast(a *[25]uint64, nr int) {
	var bc [5]uint64
	var d [5]uint64
	var b [25]uint64

	for round := 24 - nr; round < 24; round++ {
		// theta
		for x := 0; x < 5; x++ {
			bc[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d[x] = bc[(x+4)%5] ^ rotl64(bc[(x+1)%5], 1)
		}
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x+5*y] ^= d[x]
			}
		}

		// rho + pi
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				b[y+5*((2*x+3*y)%5)] = rotl64(a[x+5*y], rotc[x][y])
			}
		}

		// chi
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x+5*y] = b[x+5*y] ^ (^b[(x+1)%5+5*y] & b[(x+2)%5+5*y])
			}
		}

		// iota
		a[0] ^= rc[round]
	}
}

func permuteGeneric(a *[25]uint64, w uint, nr int) {
	mask := wordMask(w)
	var bc [5]uint64
	var d [5]uint64
	var b [25]uint64

	last := NumRounds(w)
	for round := last - nr; round < last; round++ {
		for x := 0; x < 5; x++ {
			bc[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d[x] = (bc[(x+4)%5] ^ rotl(bc[(x+1)%5], 1, w, mask)) & mask
		}
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x+5*y] = (a[x+5*y] ^ d[x]) & mask
			}
		}

		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				b[y+5*((2*x+3*y)%5)] = rotl(a[x+5*y], rotc[x][y]%w, w, mask)
			}
		}

		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x+5*y] = (b[x+5*y] ^ (^b[(x+1)%5+5*y] & b[(x+2)%5+5*y])) & mask
			}
		}

		a[0] = (a[0] ^ (rc[round] & mask)) & mask
	}
}

// wordMask returns the bitmask for a lane of width w bits (w <= 64).
func wordMask(w uint) uint64 {
	if w >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << w) - 1
}

func rotl64(x uint64, n uint) uint64 {
	n %= 64
	if n == 0 {
		return x
	}
	return (x << n) | (x >> (64 - n))
}

// rotl rotates the low w bits of x left by n bits.
func rotl(x uint64, n, w uint, mask uint64) uint64 {
	n %= w
	if n == 0 {
		return x & mask
	}
	return ((x << n) | (x >> (w - n))) & mask
}
