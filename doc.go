// Package libkeccak implements the Keccak-p permutation family and the hashing modes built on top of it: the
// original (pre-standard) Keccak, NIST's SHA-3, RawSHAKE, SHAKE, and cSHAKE, plus an HMAC construction usable with
// any of them.
//
// The sponge engine itself — arbitrary lane widths, bitrate/capacity splits, padding, squeezing, and marshalling —
// lives in the sponge subpackage. The sha3 subpackage wires it up behind the standard library's hash.Hash and a
// ShakeHash interface mirroring crypto/sha3's; hmac builds the HMAC construction over any hash.Hash, including
// sha3's; filehash streams a file or reader through any hash.Hash constructor.
package libkeccak
