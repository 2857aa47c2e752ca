package fibonacci

import (
	"context"
	"math/big"
	"math/bits"
)

// FastDoubling computes F(n) on arbitrary-precision integers using
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k+1)² + F(k)²
//
// in O(log n) steps. It never overflows.
type FastDoubling struct{}

// Name returns the strategy name.
func (FastDoubling) Name() string { return "Fast Doubling (O(log n), big.Int)" }

// MaxIndex returns 0: any index is supported.
func (FastDoubling) MaxIndex() uint64 { return 0 }

// CalculateCore walks the bits of n from the most significant down,
// checking ctx and reporting progress once per bit.
func (FastDoubling) CalculateCore(ctx context.Context, report func(float64), n uint64) (*big.Int, error) {
	fk := big.NewInt(0)  // F(k)
	fk1 := big.NewInt(1) // F(k+1)
	t1 := new(big.Int)
	t2 := new(big.Int)

	numBits := bits.Len64(n)
	for i := numBits - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		t1.Lsh(fk1, 1)
		t1.Sub(t1, fk)
		t1.Mul(t1, fk)

		t2.Mul(fk1, fk1)
		fk.Mul(fk, fk)
		t2.Add(t2, fk)

		fk, t1 = t1, fk
		fk1, t2 = t2, fk1

		if (n>>uint(i))&1 == 1 {
			t1.Add(fk, fk1)
			fk, fk1, t1 = fk1, t1, fk
		}
		report(float64(numBits-i) / float64(numBits))
	}
	return fk, nil
}
