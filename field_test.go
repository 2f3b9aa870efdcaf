package dilithium

import (
	"testing"

	"golang.org/x/crypto/sha3"
)

// fieldTrials draws deterministic pseudorandom field elements from a
// SHAKE256 stream, the same seeded-XOF-as-RNG idiom the teacher uses
// for its own arithmetic tests (fndsa/mq_test.go).
func fieldTrials(seed byte, n int) []uint32 {
	sh := sha3.NewShake256()
	sh.Write([]byte{seed})
	out := make([]uint32, n)
	var buf [4]byte
	for i := range out {
		sh.Read(buf[:])
		v := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
		out[i] = v % Q
	}
	return out
}

func TestAddModSubMod(t *testing.T) {
	xs := fieldTrials(1, 5000)
	ys := fieldTrials(2, 5000)
	for i := range xs {
		x, y := xs[i], ys[i]
		sum := addMod(x, y)
		want := (x + y) % Q
		if sum != want {
			t.Fatalf("addMod(%d,%d) = %d, want %d", x, y, sum, want)
		}
		diff := subMod(x, y)
		wantDiff := (x + Q - y) % Q
		if diff != wantDiff {
			t.Fatalf("subMod(%d,%d) = %d, want %d", x, y, diff, wantDiff)
		}
		if addMod(diff, y) != x {
			t.Fatalf("subMod/addMod not inverse at %d,%d", x, y)
		}
	}
}

func TestMulMod(t *testing.T) {
	xs := fieldTrials(3, 5000)
	ys := fieldTrials(4, 5000)
	for i := range xs {
		x, y := xs[i], ys[i]
		got := mulMod(x, y)
		want := uint32((uint64(x) * uint64(y)) % uint64(Q))
		if got != want {
			t.Fatalf("mulMod(%d,%d) = %d, want %d", x, y, got, want)
		}
	}
}

func TestNegMod(t *testing.T) {
	for _, x := range fieldTrials(5, 5000) {
		if addMod(x, negMod(x)) != 0 {
			t.Fatalf("negMod(%d) did not cancel under addMod", x)
		}
	}
	if negMod(0) != 0 {
		t.Fatalf("negMod(0) = %d, want 0", negMod(0))
	}
}

func TestSignedStrided(t *testing.T) {
	for x := uint32(0); x < Q; x += 97 { // stride keeps this fast while covering the full range
		s := signed(x)
		if x <= qMinus1Half {
			if int32(x) != s {
				t.Fatalf("signed(%d) = %d, want %d", x, s, x)
			}
		} else if s != int32(x)-int32(Q) {
			t.Fatalf("signed(%d) = %d, want %d", x, s, int32(x)-int32(Q))
		}
	}
}
