package clustering

import "fmt"

// ScoreMatrix is an n×n matrix of normalized pairwise distances, stored
// flat in row-major order. Matrices built by [Normalize] are symmetric
// with a zero diagonal; [ScoreMatrix.Set] preserves symmetry by writing
// both mirror cells.
type ScoreMatrix struct {
	n    int
	data []float64
}

// NewScoreMatrix returns a zero-valued n×n score matrix.
func NewScoreMatrix(n int) (*ScoreMatrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("clustering: matrix dimension must be >= 1, got %d", n)
	}
	return &ScoreMatrix{n: n, data: make([]float64, n*n)}, nil
}

// Dim returns the number of elements n.
func (m *ScoreMatrix) Dim() int { return m.n }

// At returns the distance between elements i and j.
func (m *ScoreMatrix) At(i, j int) float64 { return m.data[i*m.n+j] }

// Set writes the distance between elements i and j into both mirror
// cells, keeping the matrix symmetric.
func (m *ScoreMatrix) Set(i, j int, v float64) {
	m.data[i*m.n+j] = v
	m.data[j*m.n+i] = v
}

// setRaw writes a single cell without the mirror write. Used by engines
// that mark individual cells with sentinels on a working copy.
func (m *ScoreMatrix) setRaw(i, j int, v float64) {
	m.data[i*m.n+j] = v
}

// clone returns an independent copy of the matrix.
func (m *ScoreMatrix) clone() *ScoreMatrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &ScoreMatrix{n: m.n, data: data}
}
