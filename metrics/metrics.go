// Package metrics scores held-out predictions and renders the
// classification report printed at the end of a training run.
package metrics

import (
	"errors"
	"fmt"
	"strings"
)

var classNames = [2]string{"ok", "attack"}

// Report carries every figure derived from the held-out predictions.
// Index 0 is the negative (ok) class, index 1 the attack class.
type Report struct {
	Confusion  [2][2]int     // [actual][predicted] counts
	Normalized [2][2]float64 // columns normalized by predicted-class sums
	Precision  [2]float64
	Recall     [2]float64
	F1         [2]float64
	Support    [2]int
	Total      int
	Accuracy   float64
	MacroF1    float64
	WeightedF1 float64
}

// Evaluate scores predictions against the true labels.
func Evaluate(actual, predicted []bool) (*Report, error) {
	if len(actual) != len(predicted) {
		return nil, fmt.Errorf("metrics: %d labels but %d predictions", len(actual), len(predicted))
	}
	if len(actual) == 0 {
		return nil, errors.New("metrics: nothing to evaluate")
	}

	var r Report
	r.Total = len(actual)
	for i := range actual {
		r.Confusion[classIndex(actual[i])][classIndex(predicted[i])]++
	}

	correct := 0
	for k := 0; k < 2; k++ {
		truePos := r.Confusion[k][k]
		predCol := r.Confusion[0][k] + r.Confusion[1][k]
		actualRow := r.Confusion[k][0] + r.Confusion[k][1]

		r.Support[k] = actualRow
		r.Precision[k] = ratio(truePos, predCol)
		r.Recall[k] = ratio(truePos, actualRow)
		if r.Precision[k]+r.Recall[k] > 0 {
			r.F1[k] = 2 * r.Precision[k] * r.Recall[k] / (r.Precision[k] + r.Recall[k])
		}
		correct += truePos

		for i := 0; i < 2; i++ {
			if predCol > 0 {
				r.Normalized[i][k] = float64(r.Confusion[i][k]) / float64(predCol)
			}
		}
	}

	r.Accuracy = float64(correct) / float64(r.Total)
	r.MacroF1 = (r.F1[0] + r.F1[1]) / 2
	r.WeightedF1 = (r.F1[0]*float64(r.Support[0]) + r.F1[1]*float64(r.Support[1])) / float64(r.Total)
	return &r, nil
}

func classIndex(attack bool) int {
	if attack {
		return 1
	}
	return 0
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// String renders the familiar classification-report table followed by
// the normalized confusion matrix.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%14s %9s %9s %9s %9s\n", "", "precision", "recall", "f1-score", "support")
	b.WriteString("\n")
	for k := 0; k < 2; k++ {
		fmt.Fprintf(&b, "%14s %9.3f %9.3f %9.3f %9d\n",
			classNames[k], r.Precision[k], r.Recall[k], r.F1[k], r.Support[k])
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%14s %9s %9s %9.3f %9d\n", "accuracy", "", "", r.Accuracy, r.Total)
	fmt.Fprintf(&b, "%14s %9s %9s %9.3f %9d\n", "macro f1", "", "", r.MacroF1, r.Total)
	fmt.Fprintf(&b, "%14s %9s %9s %9.3f %9d\n", "weighted f1", "", "", r.WeightedF1, r.Total)
	b.WriteString("\nconfusion matrix (columns normalized by predicted class):\n")
	for i := 0; i < 2; i++ {
		fmt.Fprintf(&b, "%14s [%.3f %.3f]\n", classNames[i], r.Normalized[i][0], r.Normalized[i][1])
	}
	return b.String()
}
