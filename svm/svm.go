// Package svm trains the linear margin classifier used to separate
// attack comments from ordinary ones in TF-IDF space.
package svm

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	DefaultC       = 1.0
	DefaultMaxIter = 10000
	defaultTol     = 1e-4
)

// Model is a binary linear classifier trained with passive-aggressive
// updates on a squared-slack margin objective, the online equivalent of
// an L2-regularized squared-hinge SVM. Training is deterministic for a
// fixed seed. Fields are exported for gob.
type Model struct {
	Weights []float64
	Bias    float64
	C       float64
	MaxIter int
	Tol     float64
	Seed    int64
	Iters   int // epochs actually run before convergence
}

func New(seed int64) *Model {
	return &Model{
		C:       DefaultC,
		MaxIter: DefaultMaxIter,
		Tol:     defaultTol,
		Seed:    seed,
	}
}

// Fit trains on x (rows are samples) against boolean labels. There is
// no class weighting; the caller accepts the corpus imbalance as-is.
// Samples are visited in seeded shuffled order each epoch; training
// stops once an epoch no longer moves the weights, or at MaxIter.
func (m *Model) Fit(x mat.Matrix, y []bool) error {
	n, dims := x.Dims()
	if n == 0 {
		return errors.New("svm: empty training set")
	}
	if n != len(y) {
		return fmt.Errorf("svm: %d samples but %d labels", n, len(y))
	}
	if !bothClasses(y) {
		return errors.New("svm: training labels contain a single class")
	}

	m.Weights = make([]float64, dims)
	m.Bias = 0

	signs := make([]float64, n)
	for i, attack := range y {
		if attack {
			signs[i] = 1
		} else {
			signs[i] = -1
		}
	}

	// Squared norm of each sample, plus one for the implicit bias
	// feature. Constant across epochs, so computed once.
	normSq := make([]float64, n)
	for i := range normSq {
		sum := 1.0
		doRow(x, i, func(_ int, v float64) {
			sum += v * v
		})
		normSq[i] = sum
	}

	rng := rand.New(rand.NewSource(m.Seed))
	prev := make([]float64, dims)

	for epoch := 1; epoch <= m.MaxIter; epoch++ {
		copy(prev, m.Weights)
		for _, i := range rng.Perm(n) {
			margin := signs[i] * m.decisionRow(x, i)
			if margin >= 1 {
				continue
			}
			// PA-II step: the squared-slack closed form keeps the
			// update bounded regardless of how wrong the margin is.
			tau := (1 - margin) / (normSq[i] + 1/(2*m.C))
			coef := tau * signs[i]
			doRow(x, i, func(j int, v float64) {
				m.Weights[j] += coef * v
			})
			m.Bias += coef
		}
		m.Iters = epoch
		if floats.Distance(prev, m.Weights, math.Inf(1)) < m.Tol {
			break
		}
	}
	return nil
}

// Predict labels every row of x with the fitted decision boundary.
func (m *Model) Predict(x mat.Matrix) []bool {
	n, _ := x.Dims()
	predictions := make([]bool, n)
	for i := 0; i < n; i++ {
		predictions[i] = m.decisionRow(x, i) > 0
	}
	return predictions
}

// Decision returns the signed distance-like score for one row of x.
// Positive means attack.
func (m *Model) Decision(x mat.Matrix, row int) float64 {
	return m.decisionRow(x, row)
}

func (m *Model) decisionRow(x mat.Matrix, i int) float64 {
	sum := m.Bias
	doRow(x, i, func(j int, v float64) {
		sum += m.Weights[j] * v
	})
	return sum
}

// rowNonZeroer is satisfied by the sparse CSR matrices the vectorizer
// produces; dense matrices fall back to a full scan.
type rowNonZeroer interface {
	DoRowNonZero(i int, fn func(i, j int, v float64))
}

func doRow(x mat.Matrix, i int, fn func(j int, v float64)) {
	if s, ok := x.(rowNonZeroer); ok {
		s.DoRowNonZero(i, func(_, j int, v float64) {
			fn(j, v)
		})
		return
	}
	_, dims := x.Dims()
	for j := 0; j < dims; j++ {
		if v := x.At(i, j); v != 0 {
			fn(j, v)
		}
	}
}

func bothClasses(y []bool) bool {
	var pos, neg bool
	for _, label := range y {
		if label {
			pos = true
		} else {
			neg = true
		}
	}
	return pos && neg
}
