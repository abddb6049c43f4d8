package sponge

import (
	"testing"

	"github.com/maandree/libkeccak/internal/testdata"
	fuzz "github.com/trailofbits/go-fuzz-utils"
)

// FuzzSpecCheck feeds structured (bitrate, capacity, output) triples to Spec.Check, asserting only the invariant
// that every returned error, when non-nil, is one of the documented sentinels — never an unrecognised or silently
// swallowed error.
func FuzzSpecCheck(f *testing.F) {
	drbg := testdata.New("spec check fuzz")
	for range 10 {
		f.Add(drbg.Data(64))
	}

	sentinels := []error{
		ErrBitrateNonPositive, ErrCapacityNonPositive, ErrOutputNonPositive, ErrOutputInvalid,
		ErrBitrateNotByteAlign, ErrCapacityNotByteAlign, ErrStateSizeInvalid, ErrBitrateTooLarge, ErrCapacityTooSmall,
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		bitrate, err := tp.GetInt()
		if err != nil {
			t.Skip(err)
		}
		capacity, err := tp.GetInt()
		if err != nil {
			t.Skip(err)
		}
		output, err := tp.GetInt()
		if err != nil {
			t.Skip(err)
		}

		spec := Spec{Bitrate: bitrate, Capacity: capacity, Output: output}
		checkErr := spec.Check()
		if checkErr == nil {
			return
		}

		for _, sentinel := range sentinels {
			if checkErr == sentinel {
				return
			}
		}
		t.Fatalf("Check() returned an unrecognised error for %+v: %v", spec, checkErr)
	})
}

// FuzzGeneralisedSpecDegeneralise asserts that Degeneralise never returns a Spec that itself fails Check, and never
// panics regardless of which fields are left Automatic.
func FuzzGeneralisedSpecDegeneralise(f *testing.F) {
	drbg := testdata.New("generalised spec fuzz")
	for range 10 {
		f.Add(drbg.Data(64))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		pick := func() int {
			useAutomatic, err := tp.GetByte()
			if err != nil {
				t.Skip(err)
			}
			if useAutomatic&1 == 0 {
				return Automatic
			}
			v, err := tp.GetInt()
			if err != nil {
				t.Skip(err)
			}
			return v
		}

		g := GeneralisedSpec{Bitrate: pick(), Capacity: pick(), Output: pick(), StateSize: pick(), WordSize: pick()}

		spec, err := g.Degeneralise()
		if err != nil {
			return
		}
		if checkErr := spec.Check(); checkErr != nil {
			t.Fatalf("Degeneralise() returned a Spec that fails its own Check(): %+v: %v", spec, checkErr)
		}
	})
}
