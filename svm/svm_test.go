package svm

import (
	"path/filepath"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/detoxlab/detox/vectorizer"
)

// toyProblem is linearly separable on the first feature.
func toyProblem() (mat.Matrix, []bool) {
	data := []float64{
		2.0, 0.1,
		1.5, -0.3,
		1.8, 0.5,
		2.2, 0.0,
		-2.0, 0.2,
		-1.7, -0.1,
		-2.4, 0.4,
		-1.9, -0.5,
	}
	y := []bool{true, true, true, true, false, false, false, false}
	return mat.NewDense(8, 2, data), y
}

func TestFitSeparable(t *testing.T) {
	x, y := toyProblem()
	m := New(1)
	if err := m.Fit(x, y); err != nil {
		t.Fatal(err)
	}
	predictions := m.Predict(x)
	for i := range y {
		if predictions[i] != y[i] {
			t.Errorf("sample %d predicted %v, want %v", i, predictions[i], y[i])
		}
	}
}

func TestFitDeterministic(t *testing.T) {
	x, y := toyProblem()
	a, b := New(99), New(99)
	if err := a.Fit(x, y); err != nil {
		t.Fatal(err)
	}
	if err := b.Fit(x, y); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Weights, b.Weights) || a.Bias != b.Bias {
		t.Error("same seed produced different models")
	}
}

func TestFitRejectsBadInput(t *testing.T) {
	m := New(1)
	if err := m.Fit(mat.NewDense(1, 1, []float64{1}), []bool{true}); err == nil {
		t.Error("expected error for single-class training set")
	}
	if err := m.Fit(mat.NewDense(2, 1, []float64{1, 2}), []bool{true}); err == nil {
		t.Error("expected error for label/sample mismatch")
	}
}

var miniCorpus = []string{
	"thanks for the detailed review of the article",
	"good catch on that broken reference",
	"the new sources look solid to me",
	"appreciate the careful copy edit",
	"nice rewrite of the awkward intro section",
	"agreed the merge proposal makes sense",
	"the infobox update looks correct now",
	"helpful summary of the dispute thanks",
	"you are a pathetic idiot and everyone hates you",
	"shut up you worthless stupid vandal",
}

var miniLabels = []bool{false, false, false, false, false, false, false, false, true, true}

// Trains the full vectorize-and-fit path on a small 8/2 corpus and
// checks the run is reproducible under a fixed seed.
func TestEndToEndReproducible(t *testing.T) {
	run := func() []bool {
		v := vectorizer.New()
		x := v.FitTransform(miniCorpus)
		m := New(7)
		if err := m.Fit(x, miniLabels); err != nil {
			t.Fatal(err)
		}
		return m.Predict(v.Transform(miniCorpus))
	}
	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated runs disagree: %v vs %v", first, second)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	v := vectorizer.New()
	x := v.FitTransform(miniCorpus)
	m := New(7)
	if err := m.Fit(x, miniLabels); err != nil {
		t.Fatal(err)
	}

	snap := &Snapshot{Vectorizer: v, Model: m}
	path := filepath.Join(t.TempDir(), "model.gob")
	if err := snap.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatal(err)
	}

	want := snap.Classify(miniCorpus...)
	got := loaded.Classify(miniCorpus...)
	if !reflect.DeepEqual(want, got) {
		t.Errorf("loaded snapshot predicts %v, want %v", got, want)
	}
	if loaded.Score(miniCorpus[0]) != snap.Score(miniCorpus[0]) {
		t.Error("loaded snapshot scores differ")
	}
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	if _, err := LoadSnapshot(filepath.Join(t.TempDir(), "nope.gob")); err == nil {
		t.Error("expected error for missing snapshot")
	}
}
