package sha3

import (
	"io"

	"github.com/maandree/libkeccak/sponge"
)

// ShakeHash is an extendable-output function (it is not a hash.Hash: it has no Sum): after any number of Write
// calls, Read returns successive bytes of output for as long as the caller wants them. Reading and writing may not
// be interleaved once the first Read has taken place.
type ShakeHash interface {
	io.Writer
	io.Reader

	// Clone returns a copy of the ShakeHash in its current state.
	Clone() ShakeHash

	// Reset resets the ShakeHash to its initial state.
	Reset()
}

type shakeState struct {
	spec    sponge.Spec
	suffix  string
	st      *sponge.State
	reading bool
}

func newShakeState(spec sponge.Spec, suffix string) *shakeState {
	s := &shakeState{spec: spec, suffix: suffix}
	s.Reset()
	return s
}

func (s *shakeState) Write(p []byte) (int, error) {
	if s.reading {
		panic("sha3: Write after Read on a ShakeHash")
	}
	s.st.Update(p)
	return len(p), nil
}

func (s *shakeState) Read(p []byte) (int, error) {
	if !s.reading {
		s.st.Finalize(nil, 0, 0, s.suffix)
		s.reading = true
	}
	s.st.Squeeze(p)
	return len(p), nil
}

func (s *shakeState) Clone() ShakeHash {
	clone := *s
	clone.st = s.st.Clone()
	return &clone
}

func (s *shakeState) Reset() {
	st, err := sponge.New(s.spec)
	if err != nil {
		panic("sha3: invalid built-in spec: " + err.Error())
	}
	s.st = st
	s.reading = false
}

// NewShake128 creates a new SHAKE128 ShakeHash.
func NewShake128() ShakeHash { return newShakeState(sponge.ShakeSpec(128, 256), sponge.SuffixShake) }

// NewShake256 creates a new SHAKE256 ShakeHash.
func NewShake256() ShakeHash { return newShakeState(sponge.ShakeSpec(256, 512), sponge.SuffixShake) }

// NewRawShake128 creates a new RawSHAKE128 ShakeHash.
func NewRawShake128() ShakeHash {
	return newShakeState(sponge.RawSHAKESpec(128, 256), sponge.SuffixRawShake)
}

// NewRawShake256 creates a new RawSHAKE256 ShakeHash.
func NewRawShake256() ShakeHash {
	return newShakeState(sponge.RawSHAKESpec(256, 512), sponge.SuffixRawShake)
}

// cShakeState layers the cSHAKE function-name/customisation prelude on top of a shakeState. When both functionName
// and customisation are empty, cSHAKE degenerates to plain SHAKE (absorbing no prelude and using SHAKE's own
// domain-separation suffix), per NIST SP 800-185.
type cShakeState struct {
	*shakeState
	functionName  []byte
	customisation []byte
}

func newCShakeState(semicapacity int, functionName, customisation []byte) ShakeHash {
	if len(functionName) == 0 && len(customisation) == 0 {
		return newShakeState(sponge.ShakeSpec(semicapacity, semicapacity*2), sponge.SuffixShake)
	}
	s := &cShakeState{
		shakeState:    newShakeState(sponge.ShakeSpec(semicapacity, semicapacity*2), sponge.SuffixCShake),
		functionName:  functionName,
		customisation: customisation,
	}
	s.initPrelude()
	return s
}

func (s *cShakeState) initPrelude() {
	s.st.InitialiseCShake(s.functionName, s.customisation)
}

func (s *cShakeState) Clone() ShakeHash {
	clone := &cShakeState{
		shakeState:    &shakeState{spec: s.spec, suffix: s.suffix, st: s.st.Clone(), reading: s.reading},
		functionName:  s.functionName,
		customisation: s.customisation,
	}
	return clone
}

func (s *cShakeState) Reset() {
	s.shakeState.Reset()
	s.initPrelude()
}

// NewCShake128 creates a new cSHAKE128 ShakeHash with the given function name and customisation string. If both are
// empty, the result is equivalent to NewShake128.
func NewCShake128(functionName, customisation []byte) ShakeHash {
	return newCShakeState(128, functionName, customisation)
}

// NewCShake256 creates a new cSHAKE256 ShakeHash with the given function name and customisation string. If both are
// empty, the result is equivalent to NewShake256.
func NewCShake256(functionName, customisation []byte) ShakeHash {
	return newCShakeState(256, functionName, customisation)
}
