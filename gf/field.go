// Package gf implements arithmetic over GF(2⁸) as used by Rijndael.
//
// https://csrc.nist.gov/publications/fips/fips197/fips-197.pdf
//
// Elements are binary polynomials of degree at most 7 stored as a byte, bit i being the
// coefficient of xⁱ. Addition is xor, multiplication is reduced modulo the irreducible
// polynomial x⁸ + x⁴ + x³ + x + 1.
package gf

// Poly is the reduction polynomial, x⁸ + x⁴ + x³ + x + 1
const Poly = 1<<8 | 1<<4 | 1<<3 | 1<<1 | 1<<0

// Order of the multiplicative group
const Order = 255

type Element uint8

const (
	Zero = Element(0)
	One  = Element(1)
	// X is the polynomial x, a generator of the powers used by the key schedule
	X = Element(2)
)

func Add(a, b Element) Element {
	return a ^ b
}

// Mul Multiply a and b as GF(2) polynomials modulo Poly
func Mul(a, b Element) Element {
	// carry-less product, degree at most 14
	var p uint16
	for i := range 8 {
		if b&(1<<i) != 0 {
			p ^= uint16(a) << i
		}
	}

	// p -= Poly * x^(deg-8) while deg >= 8
	for deg := 14; deg >= 8; deg-- {
		if p&(1<<deg) != 0 {
			p ^= Poly << (deg - 8)
		}
	}
	return Element(p)
}

// Pow base^exponent by square-and-multiply. The exponent is reduced modulo Order first,
// so negative exponents are valid for non-zero bases and Pow(a, -1) == Inverse(a).
func Pow(base Element, exponent int) Element {
	e := exponent % Order
	if e < 0 {
		e += Order
	}

	result := One
	for e > 0 {
		if e&1 == 1 {
			result = Mul(result, base)
		}
		base = Mul(base, base)
		e >>= 1
	}
	return result
}

// Inverse a^254, as a^255 == 1 for every non-zero a.
// Zero has no inverse, it maps to zero which makes the S-box total.
func Inverse(a Element) Element {
	return Pow(a, Order-1)
}

func (a Element) Add(b Element) Element {
	return Add(a, b)
}

func (a Element) Mul(b Element) Element {
	return Mul(a, b)
}

func (a Element) Pow(exponent int) Element {
	return Pow(a, exponent)
}

func (a Element) Inverse() Element {
	return Inverse(a)
}

// Bit returns the coefficient of xⁱ
func (a Element) Bit(i int) Element {
	return (a >> i) & 1
}
