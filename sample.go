package dilithium

// Rejection samplers, per §4.5: expand_a draws the public matrix A
// from rho via SHAKE-128; expand_s draws the bounded secret vectors
// from rho' via SHAKE-256; expand_mask draws the masking vector y;
// sample_in_ball draws the ternary challenge polynomial from the
// commitment hash. Grounded in shape on
// other_examples/KarpelesLab-mldsa__sample.go, which samples the same
// four things for the related FIPS 204 construction.

// ExpandA deterministically expands the public seed rho into the k×l
// matrix A. Every entry is left in NTT-domain form, since A is only
// ever used inside NTT-domain products.
func ExpandA(rho []byte, k, l int) *Matrix {
	m := &Matrix{Rows: k, Cols: l, Polys: make([]Poly, k*l)}
	var buf [168]byte // SHAKE-128 rate
	for i := 0; i < k; i++ {
		for j := 0; j < l; j++ {
			h := newShake128()
			h.Write(rho)
			h.Write([]byte{byte(j), byte(i)})
			p := m.At(i, j)
			n := 0
			for n < N {
				h.Read(buf[:])
				for off := 0; off+3 <= len(buf) && n < N; off += 3 {
					d := uint32(buf[off]) | uint32(buf[off+1])<<8 | uint32(buf[off+2])<<16
					d &= 0x7FFFFF
					if d < Q {
						p[n] = d
						n++
					}
				}
			}
		}
	}
	return m
}

// etaFieldValue maps a signed coefficient in [-4,4] to its field
// representative.
func etaFieldValue(v int32) uint32 {
	if v >= 0 {
		return uint32(v)
	}
	return Q - uint32(-v)
}

// ExpandS deterministically samples `count` polynomials with
// coefficients in [-eta, eta] from rho', one nibble rejection stream
// per polynomial, with nonces base, base+1, ... base+count-1.
func ExpandS(rhoPrime []byte, eta uint32, base, count int) Vector {
	v := NewVector(count)
	var buf [136]byte // SHAKE-256 rate
	for i := 0; i < count; i++ {
		h := newShake256()
		h.Write(rhoPrime)
		nonce := uint16(base + i)
		h.Write([]byte{byte(nonce), byte(nonce >> 8)})
		n := 0
		for n < N {
			h.Read(buf[:])
			for _, b := range buf {
				if n >= N {
					break
				}
				lo := b & 0x0F
				hi := b >> 4
				if eta == 2 {
					if lo < 15 {
						v[i][n] = etaFieldValue(2 - int32(lo%5))
						n++
					}
					if n < N && hi < 15 {
						v[i][n] = etaFieldValue(2 - int32(hi%5))
						n++
					}
				} else {
					if lo < 9 {
						v[i][n] = etaFieldValue(4 - int32(lo))
						n++
					}
					if n < N && hi < 9 {
						v[i][n] = etaFieldValue(4 - int32(hi))
						n++
					}
				}
			}
		}
	}
	return v
}

// ExpandMask deterministically samples the masking vector y from
// rho' and the current loop counter kappa, with coefficients in
// (-gamma1, gamma1].
func ExpandMask(rhoPrime []byte, kappa, l int, gamma1 uint32, gamma1Bw uint) Vector {
	v := NewVector(l)
	buf := make([]byte, (N/8)*int(gamma1Bw))
	for i := 0; i < l; i++ {
		h := newShake256()
		h.Write(rhoPrime)
		nonce := uint16(kappa + i)
		h.Write([]byte{byte(nonce), byte(nonce >> 8)})
		h.Read(buf)
		var p Poly
		UnpackWidth(buf, gamma1Bw, &p)
		for j := 0; j < N; j++ {
			p[j] = subMod(gamma1, p[j])
		}
		v[i] = p
	}
	return v
}

// SampleInBall expands the commitment hash cTilde into the challenge
// polynomial: a ternary polynomial with exactly tau nonzero
// coefficients, each ±1, placed by a Fisher-Yates-style shuffle seeded
// by the same hash.
func SampleInBall(cTilde []byte, tau int) Poly {
	var c Poly
	h := newShake256()
	h.Write(cTilde)

	var signBytes [8]byte
	h.Read(signBytes[:])
	var signs uint64
	for i := 0; i < 8; i++ {
		signs |= uint64(signBytes[i]) << (8 * i)
	}

	var jbuf [1]byte
	for i := N - tau; i < N; i++ {
		var j int
		for {
			h.Read(jbuf[:])
			j = int(jbuf[0])
			if j <= i {
				break
			}
		}
		c[i] = c[j]
		if signs&1 != 0 {
			c[j] = Q - 1
		} else {
			c[j] = 1
		}
		signs >>= 1
	}
	return c
}
