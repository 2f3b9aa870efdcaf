package dilithium

import "errors"

// Fixed-width and variable-length bit-packing, per §4.4. The
// fixed-width codec packs N coefficients of w bits each into a tight
// little-endian bitstream (N*w is always a multiple of 8 for every
// width this module uses), following the teacher's
// `trim_i8_encode`/`trim_i8_decode` bit-accumulator idiom
// (fndsa/codec.go) generalized past its 8-bit-width limit; the hint
// codec packs a sparse 0/1 vector as a list of byte positions plus k
// running totals.

// PackWidth encodes the N coefficients of p, each assumed to be in
// [0, 2^w), into dst using w bits per coefficient. len(dst) must be
// exactly N*w/8.
func PackWidth(p *Poly, w uint, dst []byte) {
	mask := uint64(1)<<w - 1
	var acc uint64
	accLen := uint(0)
	j := 0
	for i := 0; i < N; i++ {
		acc |= (uint64(p[i]) & mask) << accLen
		accLen += w
		for accLen >= 8 {
			dst[j] = byte(acc)
			acc >>= 8
			accLen -= 8
			j++
		}
	}
}

// UnpackWidth is the inverse of PackWidth: it decodes N coefficients
// of w bits each from src into p. len(src) must be exactly N*w/8.
func UnpackWidth(src []byte, w uint, p *Poly) {
	mask := uint64(1)<<w - 1
	var acc uint64
	accLen := uint(0)
	j := 0
	for i := 0; i < N; i++ {
		for accLen < w {
			acc |= uint64(src[j]) << accLen
			accLen += 8
			j++
		}
		p[i] = uint32(acc & mask)
		acc >>= w
		accLen -= w
	}
}

// packVector packs each of the len(v) polynomials with width w into
// consecutive chunks of dst, returning the number of bytes written.
func packVector(v Vector, w uint, dst []byte) int {
	chunk := (N / 8) * int(w)
	off := 0
	for i := range v {
		PackWidth(&v[i], w, dst[off:off+chunk])
		off += chunk
	}
	return off
}

// unpackVector is the inverse of packVector: it reads n polynomials of
// width w from src, returning the vector and the number of bytes
// consumed.
func unpackVector(src []byte, w uint, n int) (Vector, int) {
	chunk := (N / 8) * int(w)
	v := NewVector(n)
	off := 0
	for i := 0; i < n; i++ {
		UnpackWidth(src[off:off+chunk], w, &v[i])
		off += chunk
	}
	return v, off
}

// EncodeHints packs a length-k hint vector into the ω+k-byte encoding
// of §4.4: for each polynomial, the byte-positions of its set
// coefficients (in increasing order) followed by one running total per
// polynomial, with the unused tail of the position region zero-padded.
func EncodeHints(h Vector, omega int) []byte {
	k := len(h)
	out := make([]byte, omega+k)
	idx := 0
	for i := 0; i < k; i++ {
		for j := 0; j < N; j++ {
			if h[i][j] != 0 {
				out[idx] = byte(j)
				idx++
			}
		}
		out[omega+i] = byte(idx)
	}
	return out
}

// DecodeHints is the inverse of EncodeHints. It rejects any malformed
// encoding: a running total that decreases, exceeds ω, positions that
// are not strictly increasing within a polynomial, or nonzero bytes in
// the unused tail of the position region — all required by §4.4 to
// keep the encoding non-malleable.
func DecodeHints(src []byte, k, omega int) (Vector, error) {
	if len(src) != omega+k {
		return nil, errors.New("dilithium: truncated hint encoding")
	}
	h := NewVector(k)
	idx := 0
	for i := 0; i < k; i++ {
		limit := int(src[omega+i])
		if limit < idx || limit > omega {
			return nil, errors.New("dilithium: invalid hint running total")
		}
		prev := -1
		for ; idx < limit; idx++ {
			pos := int(src[idx])
			if pos <= prev {
				return nil, errors.New("dilithium: non-increasing hint positions")
			}
			prev = pos
			h[i][pos] = 1
		}
	}
	for ; idx < omega; idx++ {
		if src[idx] != 0 {
			return nil, errors.New("dilithium: nonzero hint padding")
		}
	}
	return h, nil
}
