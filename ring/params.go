// Package ring implements arithmetic in Z_Q[X]/(X^256+1) for the zkDilithium
// signer: the base field mod Q = 2^23 - 2^20 + 1, its cubic and sextic
// extension rings, the number-theoretic transform with precomputed twist
// tables, schoolbook multiplication, vector/matrix algebra, and the
// high/low-bit decomposition machinery (Decompose, Power2Round, hints).
package ring

const (
	// Q is the prime modulus 2^23 - 2^20 + 1.
	Q = 7340033

	// N is the polynomial degree; the ring is Z_Q[X]/(X^N+1).
	N = 256

	// NBits is log2(N).
	NBits = 8

	// Zeta is a primitive 512th root of unity mod Q, pow(3, (Q-1)/512, Q).
	Zeta = 3483618

	// InvZeta is Zeta^-1 mod Q.
	InvZeta = 3141965

	// Inv2 is 2^-1 mod Q, i.e. (Q+1)/2.
	Inv2 = 3670017

	// Gamma1 bounds the masking vector coefficients.
	Gamma1 = 1 << 17

	// Gamma2 is the low-order rounding range, (Q-1)/112.
	Gamma2 = 65536

	// Buckets is the number of high-order values produced by Decompose,
	// (Q-1)/(2*Gamma2).
	Buckets = (Q - 1) / (2 * Gamma2)

	// Eta bounds the secret vector coefficients.
	Eta = 2

	// Tau is the Hamming weight of the challenge polynomial.
	Tau = 40

	// Beta = Tau*Eta bounds ||c*s|| for the rejection checks.
	Beta = Tau * Eta

	// D is the number of low-order bits dropped from t by Power2Round.
	D = 11
)
