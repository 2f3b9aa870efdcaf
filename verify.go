package dilithium

import "bytes"

// Verify checks sig against pk and msg, following §4.8. It returns a
// single opaque boolean — matching the teacher's Verify (fndsa/vrfy.go)
// and spec.md §7's "collapse to opaque boolean" requirement — never
// distinguishing a malformed encoding from a failed cryptographic
// check.
func Verify(p *Params, pk, msg, sig []byte) bool {
	if len(pk) != p.PublicKeySize() || len(sig) != p.SignatureSize() {
		return false
	}

	rho := pk[:32]
	t1, _ := unpackVector(pk[32:], p.T1Bw, p.K)

	cTilde := sig[:32]
	zenc, n := unpackVector(sig[32:], p.Gamma1Bw, p.L)
	hintBytes := sig[32+n:]

	h, err := DecodeHints(hintBytes, p.K, p.Omega)
	if err != nil {
		return false
	}
	if Count1s(h) > p.Omega {
		return false
	}

	z := cloneVector(zenc)
	SubFromX(z, p.Gamma1)
	if InfinityNorm(z) >= p.Gamma1-p.Beta {
		return false
	}

	a := ExpandA(rho, p.K, p.L)
	tr := shake256Sum(32, pk)
	mu := shake256Sum(64, tr, msg)

	c := SampleInBall(cTilde, p.Tau)
	chat := c
	NTTPoly(&chat)

	zhat := cloneVector(z)
	NTT(zhat)
	az := NewVector(p.K)
	MatrixMultiply(a, zhat, az)

	t1scaled := cloneVector(t1)
	Shl(t1scaled, p.D)
	NTT(t1scaled)

	ct1 := NewVector(p.K)
	MulByPoly(&chat, t1scaled, ct1)
	Neg(ct1)
	AddTo(ct1, az) // ct1 = A*z - c*t1*2^d, in NTT domain

	InvNTT(ct1)
	w1p := UseHint(h, ct1, p.Gamma2)

	w1buf := make([]byte, (N/8)*int(p.W1Bw))
	chashHasher := newShake256()
	chashHasher.Write(mu)
	for i := 0; i < p.K; i++ {
		PackWidth(&w1p[i], p.W1Bw, w1buf)
		chashHasher.Write(w1buf)
	}
	cCheck := make([]byte, 32)
	chashHasher.Read(cCheck)

	return bytes.Equal(cCheck, cTilde)
}

// Fingerprint returns H(pk), a 32-byte SHAKE256 digest of the encoded
// public key, for callers that want to compare or display keys
// without re-deriving tr by hand. Grounded in the same hash call
// Verify already makes.
func Fingerprint(pk []byte) []byte {
	return shake256Sum(32, pk)
}
