package dilithium

import (
	"crypto/rand"
	"errors"
	"io"
)

// KeyGen produces a new key pair from a 32-byte seed, following §4.6.
// If seed is nil, a fresh one is drawn from rng (crypto/rand.Reader if
// rng is also nil), matching the teacher's KeyGen(rng io.Reader)
// convention (fndsa/kgen.go).
func KeyGen(p *Params, rng io.Reader, seed []byte) (pk, sk []byte, err error) {
	if seed == nil {
		seed = make([]byte, 32)
		if rng == nil {
			rng = rand.Reader
		}
		if _, err = io.ReadFull(rng, seed); err != nil {
			return nil, nil, err
		}
	} else if len(seed) != 32 {
		return nil, nil, errors.New("dilithium: seed must be 32 bytes")
	}

	expanded := shake256Sum(128, seed)
	rho := expanded[0:32]
	rhoPrime := expanded[32:96]
	key := expanded[96:128]

	a := ExpandA(rho, p.K, p.L)

	s1 := ExpandS(rhoPrime, p.Eta, 0, p.L)
	s2 := ExpandS(rhoPrime, p.Eta, p.L, p.K)

	s1hat := cloneVector(s1)
	NTT(s1hat)

	t := NewVector(p.K)
	MatrixMultiply(a, s1hat, t)
	InvNTT(t)
	AddTo(t, s2)

	t1, t0 := Power2Round(t, p.D)

	pk = make([]byte, p.PublicKeySize())
	copy(pk[:32], rho)
	packVector(t1, p.T1Bw, pk[32:])

	tr := shake256Sum(32, pk)

	sk = make([]byte, p.SecretKeySize())
	off := 0
	off += copy(sk[off:], rho)
	off += copy(sk[off:], key)
	off += copy(sk[off:], tr)

	s1enc := cloneVector(s1)
	SubFromX(s1enc, p.Eta)
	off += packVector(s1enc, p.EtaBw, sk[off:])

	s2enc := cloneVector(s2)
	SubFromX(s2enc, p.Eta)
	off += packVector(s2enc, p.EtaBw, sk[off:])

	t0enc := cloneVector(t0)
	SubFromX(t0enc, 1<<(p.D-1))
	packVector(t0enc, p.D, sk[off:])

	return pk, sk, nil
}
