package dilithium

import "testing"

func TestPower2RoundExhaustive(t *testing.T) {
	const d = 13
	half := uint32(1) << (d - 1)
	for a := uint32(0); a < Q; a++ {
		a1 := (a + half - 1) >> d
		a0 := subMod(a, a1<<d)
		// reconstruct: a1*2^d + signed(a0) must equal a mod Q, and
		// signed(a0) must lie in (-2^(d-1), 2^(d-1)].
		recon := addMod(a1<<d, a0)
		if recon != a {
			t.Fatalf("power2round(%d): reconstruction mismatch: got %d", a, recon)
		}
		s := signed(a0)
		if s > int32(half) || s <= -int32(half) {
			t.Fatalf("power2round(%d): t0=%d out of range (signed=%d)", a, a0, s)
		}
	}
}

func decomposeRoundTrips(t *testing.T, gamma2 uint32) {
	alpha := 2 * gamma2
	m := (Q - 1) / alpha
	for r := uint32(0); r < Q; r += 7 { // stride 7 keeps this fast: only every seventh r is checked
		r1, r0 := decomposeCoeff(r, gamma2)
		if r1 >= m {
			t.Fatalf("decompose(%d,%d): r1=%d >= m=%d", r, gamma2, r1, m)
		}
		recon := addMod(mulMod(r1, alpha), r0)
		if recon != r {
			t.Fatalf("decompose(%d,%d): reconstruction mismatch: got %d", r, gamma2, recon)
		}
	}
}

func TestDecomposeGamma2Div32(t *testing.T) {
	decomposeRoundTrips(t, (Q-1)/32)
}

func TestDecomposeGamma2Div88(t *testing.T) {
	decomposeRoundTrips(t, (Q-1)/88)
}

func TestMakeUseHintAgree(t *testing.T) {
	for _, gamma2 := range []uint32{(Q - 1) / 32, (Q - 1) / 88} {
		for trial := 0; trial < 2000; trial++ {
			r := fieldTrials(byte(trial), 1)[0]
			// z ranges over [-gamma2, gamma2], the bound under which
			// the hint recovers HighBits(r+z).
			z := subMod(fieldTrials(byte(trial+128), 1)[0]%(2*gamma2+1), gamma2)

			var rv, zv Vector = NewVector(1), NewVector(1)
			rv[0][0] = r
			zv[0][0] = z

			h := MakeHint(zv, rv, gamma2)
			got := UseHint(h, rv, gamma2)

			rz := NewVector(1)
			rz[0][0] = addMod(r, z)
			want := HighBits(rz, gamma2)

			if got[0][0] != want[0][0] {
				t.Fatalf("gamma2=%d r=%d z=%d: UseHint(MakeHint)=%d want %d", gamma2, r, z, got[0][0], want[0][0])
			}
		}
	}
}

func TestInfinityNormAndCount1s(t *testing.T) {
	v := NewVector(2)
	v[0][0] = 5
	v[0][1] = Q - 3 // signed value -3
	v[1][0] = 0
	if got := InfinityNorm(v); got != 5 {
		t.Fatalf("InfinityNorm = %d, want 5", got)
	}

	h := NewVector(2)
	h[0][0] = 1
	h[1][5] = 1
	h[1][6] = 1
	if got := Count1s(h); got != 3 {
		t.Fatalf("Count1s = %d, want 3", got)
	}
}

func TestAddToNegSubFromXShl(t *testing.T) {
	a := NewVector(1)
	a[0][0] = 10
	b := NewVector(1)
	b[0][0] = 7
	AddTo(a, b)
	if a[0][0] != 17 {
		t.Fatalf("AddTo: got %d want 17", a[0][0])
	}

	Neg(a)
	if a[0][0] != Q-17 {
		t.Fatalf("Neg: got %d want %d", a[0][0], Q-17)
	}

	v := NewVector(1)
	v[0][0] = 5
	SubFromX(v, 20)
	if v[0][0] != 15 {
		t.Fatalf("SubFromX: got %d want 15", v[0][0])
	}
	SubFromX(v, 20) // self-inverse
	if v[0][0] != 5 {
		t.Fatalf("SubFromX twice: got %d want 5", v[0][0])
	}

	w := NewVector(1)
	w[0][0] = 3
	Shl(w, 4)
	if w[0][0] != 48 {
		t.Fatalf("Shl: got %d want 48", w[0][0])
	}
}
