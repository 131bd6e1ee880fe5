package gf

import (
	"testing"
)

func TestMul(t *testing.T) {
	// FIPS-197 section 4.2
	if r := Mul(0x57, 0x83); r != 0xc1 {
		t.Fatalf("expected 0xc1, got %#02x", r)
	}
	if r := Mul(0x57, 0x13); r != 0xfe {
		t.Fatalf("expected 0xfe, got %#02x", r)
	}
	if r := Mul(0x80, X); r != 0x1b {
		t.Fatalf("expected 0x1b, got %#02x", r)
	}
}

func TestMul_Axioms(t *testing.T) {
	for a := range 256 {
		for b := range 256 {
			x, y := Element(a), Element(b)
			if Mul(x, y) != Mul(y, x) {
				t.Fatalf("%#02x * %#02x is not commutative", x, y)
			}
			if Mul(x, One) != x {
				t.Fatalf("%#02x * 1 != %#02x", x, x)
			}
			if Mul(x, Zero) != Zero {
				t.Fatalf("%#02x * 0 != 0", x)
			}
		}
	}

	// spot check associativity and distributivity on a coarse grid
	for a := 0; a < 256; a += 7 {
		for b := 0; b < 256; b += 11 {
			for c := 0; c < 256; c += 13 {
				x, y, z := Element(a), Element(b), Element(c)
				if Mul(Mul(x, y), z) != Mul(x, Mul(y, z)) {
					t.Fatalf("(%#02x * %#02x) * %#02x is not associative", x, y, z)
				}
				if Mul(x, Add(y, z)) != Add(Mul(x, y), Mul(x, z)) {
					t.Fatalf("%#02x * (%#02x + %#02x) does not distribute", x, y, z)
				}
			}
		}
	}
}

func TestInverse(t *testing.T) {
	if Inverse(Zero) != Zero {
		t.Fatalf("expected inverse of zero to be zero, got %#02x", Inverse(Zero))
	}

	for b := 1; b < 256; b++ {
		x := Element(b)
		if r := Mul(x, Inverse(x)); r != One {
			t.Fatalf("%#02x * %#02x = %#02x, expected 1", x, Inverse(x), r)
		}
		if x.Inverse() != x.Pow(-1) {
			t.Fatalf("inverse of %#02x does not match x^-1", x)
		}
	}
}

func TestPow(t *testing.T) {
	for b := 1; b < 256; b++ {
		x := Element(b)
		if x.Pow(0) != One {
			t.Fatalf("%#02x^0 != 1", x)
		}
		if x.Pow(Order) != One {
			t.Fatalf("%#02x^255 != 1", x)
		}
		if x.Pow(Order+1) != x {
			t.Fatalf("%#02x^256 != %#02x", x, x)
		}
		if x.Pow(3) != x.Mul(x).Mul(x) {
			t.Fatalf("%#02x^3 mismatch", x)
		}
	}

	// powers of x, as used by the key schedule round constants
	expected := []Element{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36, 0x6c, 0xd8, 0xab, 0x4d, 0x9a, 0x2f}
	for i, e := range expected {
		if r := X.Pow(i); r != e {
			t.Fatalf("x^%d: expected %#02x, got %#02x", i, e, r)
		}
	}
}

func TestElement_Bit(t *testing.T) {
	x := Element(0b10100101)
	bits := []Element{1, 0, 1, 0, 0, 1, 0, 1}
	for i, b := range bits {
		if x.Bit(i) != b {
			t.Fatalf("bit %d: expected %d, got %d", i, b, x.Bit(i))
		}
	}
}
