// Package nthroot: the double-precision scalar kernel.

package nthroot

import (
	"fmt"
	"math"
)

// Scalar computes the real nth root of a for the given root in double
// precision.
//
// Policy, in order:
//  1. a negative root computes with |root| and inverts the result at the
//     end; that inversion is the only place the root's sign is consumed;
//  2. a zero root fails with ErrInvalidRoot;
//  3. a negative base requires an odd integer |root| (tested as
//     |root| mod 2 == 1), else ErrInvalidRootParity;
//  4. a == 0 yields 0, or +Inf when the root was negative;
//  5. an infinite base passes through, or yields 0 when the root was
//     negative;
//  6. otherwise x = pow(|a|, 1/root), negated for a negative base and
//     inverted for a negative root.
func Scalar(a, root float64) (float64, error) {
	if root == 0 {
		return 0, fmt.Errorf("Scalar(%g, 0): %w", a, ErrInvalidRoot)
	}
	inverted := root < 0
	if inverted {
		root = -root
	}
	if a < 0 && math.Mod(root, 2) != 1 {
		return 0, fmt.Errorf("Scalar(%g, %g): %w", a, root, ErrInvalidRootParity)
	}
	if a == 0 {
		if inverted {
			return math.Inf(1), nil
		}
		return 0, nil
	}
	if math.IsInf(a, 0) {
		if inverted {
			return 0, nil
		}
		return a, nil
	}
	x := math.Pow(math.Abs(a), 1/root)
	if a < 0 {
		// Valid per the parity rule: an odd root preserves sign.
		x = -x
	}
	if inverted {
		x = 1 / x
	}
	return x, nil
}

// ScalarDefault is Scalar with the default root of 2.
func ScalarDefault(a float64) (float64, error) {
	return Scalar(a, 2)
}
