package dilithium

// Polynomial and polynomial-vector operations. A Poly is always stored
// as N canonical field elements; whether it currently holds NTT-domain
// or normal-domain coefficients is a calling convention, not something
// tracked by the type (see DESIGN.md, Open Question decisions).

// Poly is a single polynomial in Zq[X]/(X^N+1).
type Poly [N]uint32

// Vector is an ordered list of polynomials, e.g. a length-k or
// length-l vector in the Module-LWE sense.
type Vector []Poly

// Matrix is a row-major k×l array of polynomials.
type Matrix struct {
	Rows, Cols int
	Polys      []Poly
}

// At returns a pointer to the (i,j) entry of m.
func (m *Matrix) At(i, j int) *Poly {
	return &m.Polys[i*m.Cols+j]
}

// NewVector allocates a zeroed vector of n polynomials.
func NewVector(n int) Vector {
	return make(Vector, n)
}

// cloneVector returns an independent copy of v.
func cloneVector(v Vector) Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// AddTo adds src into dst in place: dst[i][j] += src[i][j] mod Q.
func AddTo(dst, src Vector) {
	for i := range dst {
		for j := 0; j < N; j++ {
			dst[i][j] = addMod(dst[i][j], src[i][j])
		}
	}
}

// Neg negates every coefficient of v in place.
func Neg(v Vector) {
	for i := range v {
		for j := 0; j < N; j++ {
			v[i][j] = negMod(v[i][j])
		}
	}
}

// SubFromX replaces every coefficient a of v with x - a mod Q. Used
// both to fold a signed residue into an unsigned packing range and,
// being its own inverse, to unfold it again on decode.
func SubFromX(v Vector, x uint32) {
	for i := range v {
		for j := 0; j < N; j++ {
			v[i][j] = subMod(x, v[i][j])
		}
	}
}

// Shl multiplies every coefficient of v by 2^d mod Q.
func Shl(v Vector, d uint) {
	shift := uint32(1) << d
	for i := range v {
		for j := 0; j < N; j++ {
			v[i][j] = mulMod(v[i][j], shift)
		}
	}
}

// MatrixMultiply computes out = A*v, a matrix-vector product in the
// NTT domain: out[i] = sum_j A[i][j] * v[j], pointwise per coefficient.
func MatrixMultiply(a *Matrix, v Vector, out Vector) {
	for i := 0; i < a.Rows; i++ {
		var acc Poly
		for j := 0; j < a.Cols; j++ {
			row := a.At(i, j)
			for c := 0; c < N; c++ {
				acc[c] = addMod(acc[c], mulMod(row[c], v[j][c]))
			}
		}
		out[i] = acc
	}
}

// MulByPoly multiplies the NTT-domain polynomial c pointwise into
// every entry of v: out[i] = c * v[i].
func MulByPoly(c *Poly, v Vector, out Vector) {
	for i := range v {
		for j := 0; j < N; j++ {
			out[i][j] = mulMod(c[j], v[i][j])
		}
	}
}

// InfinityNorm returns the largest signed-magnitude coefficient across
// the whole vector.
func InfinityNorm(v Vector) uint32 {
	var max uint32
	for i := range v {
		for j := 0; j < N; j++ {
			if m := absSigned(v[i][j]); m > max {
				max = m
			}
		}
	}
	return max
}

// Count1s returns the Hamming weight of a 0/1 hint vector.
func Count1s(v Vector) int {
	n := 0
	for i := range v {
		for j := 0; j < N; j++ {
			if v[i][j] != 0 {
				n++
			}
		}
	}
	return n
}

// decomposeCoeff splits r = r1*alpha + r0, alpha = 2*gamma2, with r0
// the signed low part and r1 the high part, per §4.3. gamma2 must be
// one of the two values recognized by the standardized parameter
// sets: (Q-1)/32 or (Q-1)/88.
func decomposeCoeff(r, gamma2 uint32) (r1, r0 uint32) {
	a1 := (r + 127) >> 7
	if gamma2 == (Q-1)/32 {
		a1 = (a1*1025 + (1 << 21)) >> 22
		a1 &= 15
	} else {
		a1 = (a1*11275 + (1 << 23)) >> 24
		if a1 == 44 {
			a1 = 0
		}
	}
	r0 = subMod(r, mulMod(a1, 2*gamma2))
	return a1, r0
}

// Power2Round splits t = t1*2^d + t0 coefficientwise, with t0 the
// signed residue in (-2^(d-1), 2^(d-1)].
func Power2Round(t Vector, d uint) (t1, t0 Vector) {
	half := uint32(1) << (d - 1)
	t1 = NewVector(len(t))
	t0 = NewVector(len(t))
	for i := range t {
		for j := 0; j < N; j++ {
			a := t[i][j]
			a1 := (a + half - 1) >> d
			t1[i][j] = a1
			t0[i][j] = subMod(a, a1<<d)
		}
	}
	return t1, t0
}

// HighBits returns the r1 component of Decompose applied coefficient-
// wise to r.
func HighBits(r Vector, gamma2 uint32) Vector {
	out := NewVector(len(r))
	for i := range r {
		for j := 0; j < N; j++ {
			out[i][j], _ = decomposeCoeff(r[i][j], gamma2)
		}
	}
	return out
}

// LowBits returns the r0 component of Decompose applied coefficient-
// wise to r.
func LowBits(r Vector, gamma2 uint32) Vector {
	out := NewVector(len(r))
	for i := range r {
		for j := 0; j < N; j++ {
			_, out[i][j] = decomposeCoeff(r[i][j], gamma2)
		}
	}
	return out
}

// MakeHint returns h with h[i][j]=1 iff HighBits(r) and HighBits(r+z)
// disagree at that coefficient.
func MakeHint(z, r Vector, gamma2 uint32) Vector {
	h := NewVector(len(r))
	for i := range r {
		for j := 0; j < N; j++ {
			r1, _ := decomposeCoeff(r[i][j], gamma2)
			rz1, _ := decomposeCoeff(addMod(r[i][j], z[i][j]), gamma2)
			if r1 != rz1 {
				h[i][j] = 1
			}
		}
	}
	return h
}

// UseHint recovers HighBits(r+z) from the hint h and r alone, without
// knowledge of z.
func UseHint(h, r Vector, gamma2 uint32) Vector {
	m := (Q - 1) / (2 * gamma2)
	out := NewVector(len(r))
	for i := range r {
		for j := 0; j < N; j++ {
			r1, r0 := decomposeCoeff(r[i][j], gamma2)
			if h[i][j] == 0 {
				out[i][j] = r1
				continue
			}
			if signed(r0) > 0 {
				out[i][j] = (r1 + 1) % m
			} else {
				out[i][j] = (r1 + m - 1) % m
			}
		}
	}
	return out
}
