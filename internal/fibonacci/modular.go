package fibonacci

import (
	"context"
	"fmt"
	"math/big"
	"math/bits"
	"strings"

	apperrors "github.com/agbru/drills/internal/errors"
)

// FastDoublingMod computes F(n) mod m with the fast doubling identities,
// reducing after every step so memory stays O(log m) for any n.
func FastDoublingMod(ctx context.Context, n uint64, m *big.Int) (*big.Int, error) {
	if m == nil || m.Sign() <= 0 {
		return nil, apperrors.ValidationError{Field: "modulus", Message: "must be positive"}
	}

	fk := big.NewInt(0)
	fk1 := big.NewInt(1)
	t1 := new(big.Int)
	t2 := new(big.Int)

	for i := bits.Len64(n) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// 2*F(k+1) - F(k) may be negative before reduction; Mod is Euclidean.
		t1.Lsh(fk1, 1).Sub(t1, fk).Mod(t1, m)
		t1.Mul(t1, fk).Mod(t1, m)

		t2.Mul(fk1, fk1)
		fk.Mul(fk, fk)
		t2.Add(t2, fk).Mod(t2, m)

		fk, t1 = t1, fk
		fk1, t2 = t2, fk1

		if (n>>uint(i))&1 == 1 {
			t1.Add(fk, fk1).Mod(t1, m)
			fk, fk1, t1 = fk1, t1, fk
		}
	}
	return fk.Mod(fk, m), nil
}

// LastDigits returns the last k decimal digits of F(n), zero-padded to
// exactly k characters.
func LastDigits(ctx context.Context, n uint64, k int) (string, error) {
	if k <= 0 || k > MaxLastDigits {
		return "", apperrors.ValidationError{Field: "last-digits", Message: fmt.Sprintf("must be between 1 and %d, got %d", MaxLastDigits, k)}
	}
	mod := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(k)), nil)
	r, err := FastDoublingMod(ctx, n, mod)
	if err != nil {
		return "", err
	}
	digits := r.String()
	return strings.Repeat("0", k-len(digits)) + digits, nil
}
