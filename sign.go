package dilithium

import "errors"

// Sign produces a deterministic signature over msg under sk, following
// the rejection-sampling loop of §4.7. The masking vector y is
// re-derived each attempt from the secret key and message, so two
// calls with the same inputs produce byte-identical signatures.
func Sign(p *Params, sk, msg []byte) ([]byte, error) {
	return signInner(p, sk, msg, nil)
}

// SignRandomized signs msg under sk using the caller-supplied 64-byte
// seed as rho' directly, instead of deriving it from sk and msg — the
// "hedged" mode of §4.7/§6, mirroring the teacher's Sign/SignWeak split
// (fndsa/sign.go) as a runtime choice rather than a build tag.
func SignRandomized(p *Params, sk, msg, seed []byte) ([]byte, error) {
	if len(seed) != 64 {
		return nil, errors.New("dilithium: randomized seed must be 64 bytes")
	}
	return signInner(p, sk, msg, seed)
}

func signInner(p *Params, sk, msg []byte, randSeed []byte) ([]byte, error) {
	if len(sk) != p.SecretKeySize() {
		return nil, errors.New("dilithium: invalid secret key length")
	}

	off := 0
	rho := sk[off : off+32]
	off += 32
	key := sk[off : off+32]
	off += 32
	tr := sk[off : off+32]
	off += 32

	s1, n := unpackVector(sk[off:], p.EtaBw, p.L)
	off += n
	s2, n := unpackVector(sk[off:], p.EtaBw, p.K)
	off += n
	t0, _ := unpackVector(sk[off:], p.D, p.K)

	SubFromX(s1, p.Eta)
	SubFromX(s2, p.Eta)
	SubFromX(t0, 1<<(p.D-1))

	a := ExpandA(rho, p.K, p.L)
	mu := shake256Sum(64, tr, msg)

	var rhoPrime []byte
	if randSeed != nil {
		rhoPrime = randSeed
	} else {
		rhoPrime = shake256Sum(64, key, mu)
	}

	s1hat := cloneVector(s1)
	NTT(s1hat)
	s2hat := cloneVector(s2)
	NTT(s2hat)
	t0hat := cloneVector(t0)
	NTT(t0hat)

	sig := make([]byte, p.SignatureSize())
	chashHasher := newShake256()
	w1buf := make([]byte, (N/8)*int(p.W1Bw))

	for kappa := 0; ; kappa += p.L {
		y := ExpandMask(rhoPrime, kappa, p.L, p.Gamma1, p.Gamma1Bw)

		yhat := cloneVector(y)
		NTT(yhat)
		w := NewVector(p.K)
		MatrixMultiply(a, yhat, w)
		InvNTT(w)

		w1 := HighBits(w, p.Gamma2)

		chashHasher.Reset()
		chashHasher.Write(mu)
		for i := 0; i < p.K; i++ {
			PackWidth(&w1[i], p.W1Bw, w1buf)
			chashHasher.Write(w1buf)
		}
		cTilde := make([]byte, 32)
		chashHasher.Read(cTilde)

		c := SampleInBall(cTilde, p.Tau)
		chat := c
		NTTPoly(&chat)

		cs1 := NewVector(p.L)
		MulByPoly(&chat, s1hat, cs1)
		InvNTT(cs1)
		z := cloneVector(y)
		AddTo(z, cs1)

		if InfinityNorm(z) >= p.Gamma1-p.Beta {
			continue
		}

		cs2 := NewVector(p.K)
		MulByPoly(&chat, s2hat, cs2)
		InvNTT(cs2)
		negcs2 := cloneVector(cs2)
		Neg(negcs2)
		wcs2 := cloneVector(w)
		AddTo(wcs2, negcs2) // wcs2 = w - intt(c*s2)

		r0 := LowBits(wcs2, p.Gamma2)
		if InfinityNorm(r0) >= p.Gamma2-p.Beta {
			continue
		}

		ct0 := NewVector(p.K)
		MulByPoly(&chat, t0hat, ct0)
		InvNTT(ct0)
		if InfinityNorm(ct0) >= p.Gamma2 {
			continue
		}

		hintR := cloneVector(wcs2)
		AddTo(hintR, ct0) // hintR = (w - c*s2) + c*t0

		negct0 := cloneVector(ct0)
		Neg(negct0)
		h := MakeHint(negct0, hintR, p.Gamma2)

		if Count1s(h) > p.Omega {
			continue
		}

		sigOff := copy(sig, cTilde)
		zenc := cloneVector(z)
		SubFromX(zenc, p.Gamma1)
		sigOff += packVector(zenc, p.Gamma1Bw, sig[sigOff:])
		copy(sig[sigOff:], EncodeHints(h, p.Omega))
		return sig, nil
	}
}
