package gf

import (
	"git.gammaspectra.live/P2Pool/square/utils"
)

// Matrix r×c matrix over GF(2⁸). Values are never modified after construction.
type Matrix struct {
	rows, cols int
	m          []Element
}

// NewMatrix copies rows into a new matrix. All rows must have the same, non-zero length.
func NewMatrix(rows [][]Element) Matrix {
	if len(rows) == 0 || len(rows[0]) == 0 {
		utils.Panicf("gf: empty matrix")
	}
	m := Matrix{
		rows: len(rows),
		cols: len(rows[0]),
	}
	m.m = make([]Element, 0, m.rows*m.cols)
	for i, row := range rows {
		if len(row) != m.cols {
			utils.Panicf("gf: row %d has %d columns, expected %d", i, len(row), m.cols)
		}
		m.m = append(m.m, row...)
	}
	return m
}

// Vector column vector from xs
func Vector(xs ...Element) Matrix {
	if len(xs) == 0 {
		utils.Panicf("gf: empty vector")
	}
	m := Matrix{
		rows: len(xs),
		cols: 1,
		m:    make([]Element, len(xs)),
	}
	copy(m.m, xs)
	return m
}

func Identity(n int) Matrix {
	m := zeros(n, n)
	for i := range n {
		m.m[i*n+i] = One
	}
	return m
}

func zeros(rows, cols int) Matrix {
	return Matrix{
		rows: rows,
		cols: cols,
		m:    make([]Element, rows*cols),
	}
}

func (m Matrix) Rows() int {
	return m.rows
}

func (m Matrix) Cols() int {
	return m.cols
}

func (m Matrix) At(i, j int) Element {
	return m.m[i*m.cols+j]
}

// Column returns a copy of column j
func (m Matrix) Column(j int) []Element {
	out := make([]Element, m.rows)
	for i := range out {
		out[i] = m.At(i, j)
	}
	return out
}

// Mul matrix product m × other
func (m Matrix) Mul(other Matrix) Matrix {
	if m.cols != other.rows {
		utils.Panicf("gf: invalid dimensions for multiplication, %dx%d × %dx%d", m.rows, m.cols, other.rows, other.cols)
	}
	res := zeros(m.rows, other.cols)
	for i := range m.rows {
		for j := range other.cols {
			var s Element
			for k := range m.cols {
				s ^= Mul(m.At(i, k), other.At(k, j))
			}
			res.m[i*res.cols+j] = s
		}
	}
	return res
}

// Add entrywise sum m + other
func (m Matrix) Add(other Matrix) Matrix {
	if m.rows != other.rows || m.cols != other.cols {
		utils.Panicf("gf: matrix shapes need to be equal, %dx%d + %dx%d", m.rows, m.cols, other.rows, other.cols)
	}
	res := zeros(m.rows, m.cols)
	for i := range res.m {
		res.m[i] = Add(m.m[i], other.m[i])
	}
	return res
}

func (m Matrix) Equal(other Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.m {
		if m.m[i] != other.m[i] {
			return false
		}
	}
	return true
}
