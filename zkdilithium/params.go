// Package zkdilithium implements a Dilithium-style lattice signature over
// the prime field Q = 2^23 - 2^20 + 1, with the Fiat-Shamir transcript
// hashed by a Poseidon sponge over the same field so that verification is
// cheap to express inside an algebraic proof system.
package zkdilithium

import "github.com/madars/zkdilithium-signer/codec"

const (
	// K and L are the dimensions of the public matrix A (K x L).
	K = 4
	L = 4

	// Omega bounds the total weight of the hint vector in a signature.
	Omega = 80

	// CTildeSize and MuSize are transcript lengths in field elements.
	CTildeSize = 12
	MuSize     = 24

	// SeedSize is the keypair seed length in bytes.
	SeedSize = 32

	// PublicKeySize is rho plus the packed high part of t.
	PublicKeySize = 32 + K*codec.PolyT1Size // 1568

	// SecretKeySize is rho, key and tr plus the packed s1, s2 and t0.
	SecretKeySize = 96 + (K+L)*codec.PolyLeqEtaSize + K*codec.PolyT0Size // 2272

	// SignatureSize is the packed cTilde, z and hint.
	SignatureSize = CTildeSize*3 + L*codec.PolyLeGamma1Size + Omega + K // 2424
)
