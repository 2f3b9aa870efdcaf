package dilithium

import "golang.org/x/crypto/sha3"

// xof is the streaming extendable-output hash the sampler and signer
// code depend on: absorb via Write, squeeze via Read, rewind via
// Reset. sha3.ShakeHash satisfies it directly.
type xof interface {
	Write(p []byte) (int, error)
	Read(p []byte) (int, error)
	Reset()
}

func newShake128() xof { return sha3.NewShake128() }
func newShake256() xof { return sha3.NewShake256() }

// shake256Sum squeezes n bytes of SHAKE256(parts[0]||parts[1]||...)
// into a freshly allocated slice.
func shake256Sum(n int, parts ...[]byte) []byte {
	h := newShake256()
	for _, p := range parts {
		h.Write(p)
	}
	out := make([]byte, n)
	h.Read(out)
	return out
}
