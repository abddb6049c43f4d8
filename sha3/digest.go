package sha3

import (
	"hash"

	"github.com/maandree/libkeccak/sponge"
)

// digest wraps a fixed-output sponge.State behind the standard library's hash.Hash interface.
type digest struct {
	spec   sponge.Spec
	suffix string
	size   int
	st     *sponge.State
}

func newDigest(spec sponge.Spec, suffix string, size int) *digest {
	d := &digest{spec: spec, suffix: suffix, size: size}
	d.Reset()
	return d
}

func (d *digest) Write(p []byte) (int, error) {
	d.st.Update(p)
	return len(p), nil
}

func (d *digest) Sum(b []byte) []byte {
	out := d.st.Clone().Digest(nil, 0, 0, d.suffix)
	return append(b, out...)
}

func (d *digest) Reset() {
	st, err := sponge.New(d.spec)
	if err != nil {
		// spec was validated once at construction time by the package-level constructors; a failure here would
		// mean this package shipped a broken built-in spec.
		panic("sha3: invalid built-in spec: " + err.Error())
	}
	d.st = st
}

func (d *digest) Size() int { return d.size }

func (d *digest) BlockSize() int { return d.spec.Bitrate / 8 }

// Clone returns an independent copy of d in its current state. Used by the hmac package's Clone to support HMAC
// instances whose underlying hash can itself be duplicated cheaply, mirroring the sponge-level Clone original_source's
// state_duplicate provides.
func (d *digest) Clone() hash.Hash {
	return &digest{spec: d.spec, suffix: d.suffix, size: d.size, st: d.st.Clone()}
}

// MarshalBinary serialises d's underlying sponge state opaquely, suitable for resuming the hash later via
// UnmarshalBinary (on a digest constructed with the same constructor).
func (d *digest) MarshalBinary() ([]byte, error) {
	return d.st.MarshalBinary()
}

// UnmarshalBinary restores d's underlying sponge state from data previously produced by MarshalBinary.
func (d *digest) UnmarshalBinary(data []byte) error {
	return d.st.UnmarshalBinary(data)
}

// Wipe zeros d's underlying sponge state in place, without releasing its backing storage. The digest may still be
// used afterward (it only holds public fixed parameters otherwise, so Reset restores a usable fresh instance).
func (d *digest) Wipe() {
	d.st.Wipe()
}

var _ hash.Hash = (*digest)(nil)

// New224 returns a new hash.Hash computing the SHA3-224 checksum.
func New224() hash.Hash { return newDigest(sponge.SHA3Spec(224), sponge.SuffixSHA3, 224/8) }

// New256 returns a new hash.Hash computing the SHA3-256 checksum.
func New256() hash.Hash { return newDigest(sponge.SHA3Spec(256), sponge.SuffixSHA3, 256/8) }

// New384 returns a new hash.Hash computing the SHA3-384 checksum.
func New384() hash.Hash { return newDigest(sponge.SHA3Spec(384), sponge.SuffixSHA3, 384/8) }

// New512 returns a new hash.Hash computing the SHA3-512 checksum.
func New512() hash.Hash { return newDigest(sponge.SHA3Spec(512), sponge.SuffixSHA3, 512/8) }

// NewLegacyKeccak256 returns a new hash.Hash computing the original (pre-NIST-standardisation) Keccak-256 checksum,
// using the empty domain-separation suffix rather than SHA-3's "01".
func NewLegacyKeccak256() hash.Hash {
	return newDigest(sponge.SHA3Spec(256), sponge.SuffixKeccak, 256/8)
}

// NewLegacyKeccak512 returns a new hash.Hash computing the original (pre-NIST-standardisation) Keccak-512 checksum.
func NewLegacyKeccak512() hash.Hash {
	return newDigest(sponge.SHA3Spec(512), sponge.SuffixKeccak, 512/8)
}

// Sum224 returns the SHA3-224 checksum of data.
func Sum224(data []byte) (out [28]byte) {
	copy(out[:], New224().(*digest).sum(data))
	return
}

// Sum256 returns the SHA3-256 checksum of data.
func Sum256(data []byte) (out [32]byte) {
	copy(out[:], New256().(*digest).sum(data))
	return
}

// Sum384 returns the SHA3-384 checksum of data.
func Sum384(data []byte) (out [48]byte) {
	copy(out[:], New384().(*digest).sum(data))
	return
}

// Sum512 returns the SHA3-512 checksum of data.
func Sum512(data []byte) (out [64]byte) {
	copy(out[:], New512().(*digest).sum(data))
	return
}

func (d *digest) sum(data []byte) []byte {
	d.Write(data)
	return d.Sum(nil)
}
