package edwards25519

import (
	"math/big"

	"github.com/yuzonightly/ed25519/internal/field"
)

// d, 2d, sqrtM1 and the base point B are derived here from the handful of
// small RFC 8032 facts that define them (d = -121665/121666, sqrtM1 =
// 2^((p-1)/4), B.y = 4/5 with an even x) rather than hand-transcribed as
// 32-byte literals: building ~4,000 bytes of precomputed table data by
// copying digits out of a reference implementation is exactly the kind of
// step that is easy to get silently wrong without a compiler to catch it.
// Deriving them from small integers using the field/group arithmetic this
// package already implements removes that risk at the cost of a few dozen
// field operations, paid once at package init.
var (
	d       field.Element
	twoD    field.Element
	sqrtM1  field.Element
	B       P3
	bCached Cached
)

func smallElement(n int64) field.Element {
	var b [32]byte
	neg := n < 0
	if neg {
		n = -n
	}
	v := uint64(n)
	for i := 0; i < 8 && v != 0; i++ {
		b[i] = byte(v)
		v >>= 8
	}
	var e field.Element
	e.SetBytes(b[:])
	if neg {
		e.Negate(&e)
	}
	return e
}

// fieldPow sets v = base^exp mod p via square-and-multiply, walking exp's
// bits from most to least significant. Used only at package init to derive
// sqrtM1 (exponent (p-1)/4); the signing and verification hot paths never
// call this; they use Invert/Pow22523's fixed addition chains instead.
func fieldPow(base *field.Element, exp *big.Int) field.Element {
	var result field.Element
	result.One()
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result.Square(&result)
		if exp.Bit(i) == 1 {
			result.Multiply(&result, base)
		}
	}
	return result
}

// recoverX solves x^2 = (y^2-1)/(d*y^2+1) for x given y, per RFC 8032
// §5.1.3, and returns the root whose LSB matches sign, or ok=false if y
// does not correspond to a curve point.
func recoverX(y *field.Element, sign int) (x field.Element, ok bool) {
	var yy, u, v, v3, v7, x0 field.Element

	yy.Square(y)
	u.Subtract(&yy, fieldOne())
	v.Multiply(&yy, &d)
	v.Add(&v, fieldOne())

	v3.Square(&v)
	v3.Multiply(&v3, &v) // v^3
	v7.Square(&v3)
	v7.Multiply(&v7, &v) // v^7

	var uv7 field.Element
	uv7.Multiply(&u, &v7)
	x0.Pow22523(&uv7)
	x0.Multiply(&x0, &u)
	x0.Multiply(&x0, &v3)

	var check field.Element
	check.Square(&x0)
	check.Multiply(&check, &v)

	if check.Equal(&u) == 1 {
		x = x0
	} else {
		var negU field.Element
		negU.Negate(&u)
		if check.Equal(&negU) == 1 {
			x.Multiply(&x0, &sqrtM1)
		} else {
			return field.Element{}, false
		}
	}

	if x.IsNegative() != sign {
		x.Negate(&x)
	}
	return x, true
}

func fieldOne() *field.Element {
	var one field.Element
	one.One()
	return &one
}

func init() {
	// d = -121665/121666 mod p
	n121665 := smallElement(121665)
	n121666 := smallElement(121666)
	var invD121666 field.Element
	invD121666.Invert(&n121666)
	d.Multiply(&n121665, &invD121666)
	d.Negate(&d)
	twoD.Add(&d, &d)

	// sqrtM1 = 2^((p-1)/4) mod p; valid since p = 2^255-19 ≡ 5 (mod 8),
	// which makes 2 a quadratic non-residue, so squaring this value
	// yields 2^((p-1)/2) ≡ -1 by Euler's criterion.
	p := new(big.Int).Lsh(big.NewInt(1), 255)
	p.Sub(p, big.NewInt(19))
	exp := new(big.Int).Sub(p, big.NewInt(1))
	exp.Rsh(exp, 2)
	two := smallElement(2)
	sqrtM1 = fieldPow(&two, exp)

	// B.y = 4/5; B.x is the even root recovered via the same formula
	// used by point decompression.
	four := smallElement(4)
	five := smallElement(5)
	var invFive field.Element
	invFive.Invert(&five)
	var by field.Element
	by.Multiply(&four, &invFive)

	bx, ok := recoverX(&by, 0)
	if !ok {
		panic("edwards25519: failed to derive base point")
	}

	B.X = bx
	B.Y = by
	B.Z.One()
	B.T.Multiply(&bx, &by)

	bCached.FromP3(&B)
}
