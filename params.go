package dilithium

import (
	"errors"
	"math/bits"
)

// Params is a validated Dilithium parameter tuple (k, l, d, η, γ1, γ2,
// τ, β, ω) plus the bit-widths it implies. The core never picks a
// parameter set on its own — callers build one with NewParams or one
// of the three standardized convenience constructors below.
type Params struct {
	K, L   int
	D      uint
	Eta    uint32
	Gamma1 uint32
	Gamma2 uint32
	Tau    int
	Beta   uint32
	Omega  int

	EtaBw    uint // bits per secret coefficient
	Gamma1Bw uint // bits per z coefficient
	T1Bw     uint // bits per t1 coefficient
	W1Bw     uint // bits per w1 coefficient
}

// NewParams validates a parameter tuple and derives its bit-widths. It
// rejects tuples that violate the relations the scheme depends on for
// correctness (β = τη, γ2 restricted to the two recognized values,
// d fixed at 13) rather than trusting the caller.
func NewParams(k, l int, d uint, eta, gamma1, gamma2 uint32, tau int, beta uint32, omega int) (*Params, error) {
	if k <= 0 || l <= 0 {
		return nil, errors.New("dilithium: k and l must be positive")
	}
	if d != 13 {
		return nil, errors.New("dilithium: d must be 13")
	}
	if eta != 2 && eta != 4 {
		return nil, errors.New("dilithium: eta must be 2 or 4")
	}
	if gamma2 != (Q-1)/88 && gamma2 != (Q-1)/32 {
		return nil, errors.New("dilithium: gamma2 must be (Q-1)/88 or (Q-1)/32")
	}
	if gamma1 == 0 || gamma1 >= Q {
		return nil, errors.New("dilithium: gamma1 out of range")
	}
	if tau <= 0 || tau > N {
		return nil, errors.New("dilithium: tau out of range")
	}
	if beta != uint32(tau)*eta {
		return nil, errors.New("dilithium: beta must equal tau*eta")
	}
	if omega <= 0 || omega > k*N {
		return nil, errors.New("dilithium: omega out of range")
	}

	m := (Q - 1) / (2 * gamma2)
	return &Params{
		K: k, L: l, D: d, Eta: eta, Gamma1: gamma1, Gamma2: gamma2,
		Tau: tau, Beta: beta, Omega: omega,
		EtaBw:    uint(bits.Len32(2 * eta)),
		Gamma1Bw: uint(bits.Len32(gamma1)),
		T1Bw:     uint(bits.Len32(Q-1)) - d,
		W1Bw:     uint(bits.Len32(m - 1)),
	}, nil
}

// ParamsMode2 returns the Dilithium2 (NIST security level 2) tuple.
func ParamsMode2() *Params {
	p, err := NewParams(4, 4, 13, 2, 1<<17, (Q-1)/88, 39, 78, 80)
	if err != nil {
		panic(err)
	}
	return p
}

// ParamsMode3 returns the Dilithium3 (NIST security level 3) tuple.
func ParamsMode3() *Params {
	p, err := NewParams(6, 5, 13, 4, 1<<19, (Q-1)/32, 49, 196, 55)
	if err != nil {
		panic(err)
	}
	return p
}

// ParamsMode5 returns the Dilithium5 (NIST security level 5) tuple.
func ParamsMode5() *Params {
	p, err := NewParams(8, 7, 13, 2, 1<<19, (Q-1)/32, 60, 120, 75)
	if err != nil {
		panic(err)
	}
	return p
}

// PublicKeySize returns the encoded public key length in bytes: a
// 32-byte seed rho plus k packed t1 polynomials.
func (p *Params) PublicKeySize() int {
	return 32 + p.K*(N/8)*int(p.T1Bw)
}

// SecretKeySize returns the encoded secret key length in bytes: rho,
// key, tr (32 bytes each), plus l+k packed eta-bounded polynomials and
// k packed d-bit t0 polynomials.
func (p *Params) SecretKeySize() int {
	return 96 + p.L*(N/8)*int(p.EtaBw) + p.K*(N/8)*int(p.EtaBw) + p.K*(N/8)*int(p.D)
}

// SignatureSize returns the encoded signature length in bytes: a
// 32-byte commitment hash, l packed gamma1-bit z polynomials, and the
// omega+k byte hint encoding.
func (p *Params) SignatureSize() int {
	return 32 + p.L*(N/8)*int(p.Gamma1Bw) + p.Omega + p.K
}
