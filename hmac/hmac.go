// Package hmac implements the HMAC message-authentication construction over any hash.Hash, in particular the
// Keccak-family hashes in the parent package.
package hmac

import (
	"encoding"
	"encoding/binary"
	"errors"
	"hash"
)

const (
	outerPad = 0x5c
	innerPad = 0x36
)

// ErrNotCloneable is returned by Clone when the underlying hash.Hash the HMAC was built from does not itself support
// cloning (i.e. does not implement a Clone() hash.Hash method, as this module's sha3 hashes do).
var ErrNotCloneable = errors.New("hmac: underlying hash does not support cloning")

// ErrNotMarshalable is returned by MarshalBinary/UnmarshalBinary when the underlying hash.Hash the HMAC was built
// from does not itself implement encoding.BinaryMarshaler/BinaryUnmarshaler.
var ErrNotMarshalable = errors.New("hmac: underlying hash does not support marshalling")

// mac wraps a hash.Hash with the HMAC construction. inner and outer are separate instances of the same underlying
// hash so that Sum can be called mid-stream without disturbing inner's accumulated message state; pad holds both
// key-derived pads back to back (ipad then opad), mirroring the reference implementation's shared
// key_opad/key_ipad allocation.
type mac struct {
	inner, outer  hash.Hash
	pad           []byte
	size          int
	hashBlockSize int
}

// New returns a new hash.Hash computing the HMAC of data using the given hash constructor and key. Unlike RFC 2104
// HMAC, an oversized key is not hashed down to the block size: the pad buffers are sized to max(blockSize, len(key))
// and the key is stored as given, right-padded with zeros out to that size. Pad-or-hash-to-rate is deliberately not
// performed here; a caller using a key longer than the block size is responsible for its own key management.
func New(newHash func() hash.Hash, key []byte) hash.Hash {
	inner := newHash()
	hashBlockSize := inner.BlockSize()

	padSize := hashBlockSize
	if len(key) > padSize {
		padSize = len(key)
	}

	m := &mac{inner: inner, outer: newHash(), pad: make([]byte, 2*padSize), size: inner.Size(), hashBlockSize: hashBlockSize}
	copy(m.pad[:padSize], key)
	copy(m.pad[padSize:], key)
	for i := 0; i < padSize; i++ {
		m.pad[i] ^= innerPad
		m.pad[padSize+i] ^= outerPad
	}

	m.inner.Write(m.innerPad())
	return m
}

func (m *mac) padSize() int { return len(m.pad) / 2 }

func (m *mac) innerPad() []byte { return m.pad[:m.padSize()] }

func (m *mac) outerPad() []byte { return m.pad[m.padSize():] }

func (m *mac) Write(p []byte) (int, error) {
	return m.inner.Write(p)
}

func (m *mac) Sum(b []byte) []byte {
	origLen := len(b)
	b = m.inner.Sum(b)

	m.outer.Reset()
	m.outer.Write(m.outerPad())
	m.outer.Write(b[origLen:])
	return m.outer.Sum(b[:origLen])
}

func (m *mac) Reset() {
	m.inner.Reset()
	m.inner.Write(m.innerPad())
}

func (m *mac) Size() int { return m.size }

func (m *mac) BlockSize() int { return m.hashBlockSize }

// cloneableHash is satisfied by this module's own sha3 hashes (and anything else exposing the same convention).
type cloneableHash interface {
	Clone() hash.Hash
}

// Clone returns an independent copy of the HMAC in its current state, sharing no memory with the receiver. It fails
// with ErrNotCloneable if the underlying hash was not constructed from a cloneable hash.Hash.
func (m *mac) Clone() (hash.Hash, error) {
	ic, ok := m.inner.(cloneableHash)
	if !ok {
		return nil, ErrNotCloneable
	}
	oc, ok := m.outer.(cloneableHash)
	if !ok {
		return nil, ErrNotCloneable
	}
	return &mac{
		inner:         ic.Clone(),
		outer:         oc.Clone(),
		pad:           append([]byte(nil), m.pad...),
		size:          m.size,
		hashBlockSize: m.hashBlockSize,
	}, nil
}

// wipeableHash is satisfied by this module's own sha3 hashes, which can scrub their internal sponge state without
// discarding the instance.
type wipeableHash interface {
	Wipe()
}

// Wipe zeros the key-derived pad buffer in place, and additionally wipes the inner/outer hash state when the
// underlying hash supports it. The HMAC must not be used afterward without a fresh key.
func (m *mac) Wipe() {
	for i := range m.pad {
		m.pad[i] = 0
	}
	if w, ok := m.inner.(wipeableHash); ok {
		w.Wipe()
	}
	if w, ok := m.outer.(wipeableHash); ok {
		w.Wipe()
	}
}

// MarshalBinary serialises the HMAC's key-derived pad together with the inner and outer hash states, so that a
// caller can resume an in-progress HMAC computation later. It fails with ErrNotMarshalable if the underlying hash
// does not itself support marshalling.
//
// Only the outer pad is stored; the inner pad is always recoverable as outerPad[i] ^ 0x6A (0x5C ^ 0x36), since both
// pads are derived from the same zero-padded key, mirroring how the reference implementation's HMAC marshalling
// stores key_opad alone and reconstructs key_ipad by XORing with the same constant on unmarshal.
func (m *mac) MarshalBinary() ([]byte, error) {
	im, ok := m.inner.(encoding.BinaryMarshaler)
	if !ok {
		return nil, ErrNotMarshalable
	}
	om, ok := m.outer.(encoding.BinaryMarshaler)
	if !ok {
		return nil, ErrNotMarshalable
	}

	innerState, err := im.MarshalBinary()
	if err != nil {
		return nil, err
	}
	outerState, err := om.MarshalBinary()
	if err != nil {
		return nil, err
	}

	padSize := m.padSize()
	buf := make([]byte, 0, 8+padSize+8+len(innerState)+8+len(outerState))
	buf = appendUint64(buf, uint64(padSize))
	buf = append(buf, m.outerPad()...)
	buf = appendUint64(buf, uint64(len(innerState)))
	buf = append(buf, innerState...)
	buf = appendUint64(buf, uint64(len(outerState)))
	buf = append(buf, outerState...)
	return buf, nil
}

// UnmarshalBinary restores the HMAC's pad and inner/outer hash states from data previously produced by
// MarshalBinary. It fails with ErrNotMarshalable if the underlying hash does not itself support unmarshalling.
func (m *mac) UnmarshalBinary(data []byte) error {
	iu, ok := m.inner.(encoding.BinaryUnmarshaler)
	if !ok {
		return ErrNotMarshalable
	}
	ou, ok := m.outer.(encoding.BinaryUnmarshaler)
	if !ok {
		return ErrNotMarshalable
	}

	padSize, data, err := readUint64(data)
	if err != nil {
		return err
	}
	if uint64(len(data)) < padSize {
		return errShortBuffer
	}
	outer := data[:padSize]
	data = data[padSize:]

	innerLen, data, err := readUint64(data)
	if err != nil {
		return err
	}
	if uint64(len(data)) < innerLen {
		return errShortBuffer
	}
	innerState := data[:innerLen]
	data = data[innerLen:]

	outerLen, data, err := readUint64(data)
	if err != nil {
		return err
	}
	if uint64(len(data)) < outerLen {
		return errShortBuffer
	}
	outerState := data[:outerLen]

	if err := iu.UnmarshalBinary(innerState); err != nil {
		return err
	}
	if err := ou.UnmarshalBinary(outerState); err != nil {
		return err
	}

	m.pad = make([]byte, 2*padSize)
	copy(m.pad[padSize:], outer)
	for i := uint64(0); i < padSize; i++ {
		m.pad[i] = outer[i] ^ (innerPad ^ outerPad)
	}
	return nil
}

var errShortBuffer = errors.New("hmac: marshalled buffer is too short")

func appendUint64(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}

func readUint64(data []byte) (uint64, []byte, error) {
	if len(data) < 8 {
		return 0, nil, errShortBuffer
	}
	return binary.LittleEndian.Uint64(data), data[8:], nil
}

var _ hash.Hash = (*mac)(nil)
