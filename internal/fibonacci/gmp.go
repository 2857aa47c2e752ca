//go:build gmp

package fibonacci

import (
	"context"
	"math/big"
	"math/bits"

	"github.com/ncw/gmp"
)

func init() {
	extraStrategies["gmp"] = GMPFastDoubling{}
}

// GMPFastDoubling is FastDoubling on libgmp integers. It is only built with
// the gmp tag because it needs cgo and libgmp.
type GMPFastDoubling struct{}

// Name returns the strategy name.
func (GMPFastDoubling) Name() string { return "Fast Doubling (O(log n), GMP)" }

// MaxIndex returns 0: any index is supported.
func (GMPFastDoubling) MaxIndex() uint64 { return 0 }

// CalculateCore mirrors FastDoubling.CalculateCore.
func (GMPFastDoubling) CalculateCore(ctx context.Context, report func(float64), n uint64) (*big.Int, error) {
	fk := gmp.NewInt(0)
	fk1 := gmp.NewInt(1)
	t1 := new(gmp.Int)
	t2 := new(gmp.Int)

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
	// F(n) is never negative, so the magnitude is the value.
	return new(big.Int).SetBytes(fk.Bytes()), nil
}
