package vectorizer

import (
	"testing"
)

var trainTexts = []string{
	"cat sat on the mat",
	"cat sat quietly",
	"dog barked at the cat",
	"dog chased the cat quickly",
}

func TestFitBuildsCappedVocabulary(t *testing.T) {
	v := New()
	v.MaxFeatures = 3
	v.Fit(trainTexts)
	if len(v.Vocabulary) != 3 {
		t.Fatalf("vocabulary size = %d, want 3", len(v.Vocabulary))
	}
	// "cat" appears in every document; it must survive the cap.
	if _, ok := v.Vocabulary["cat"]; !ok {
		t.Error("highest document-frequency term missing from capped vocabulary")
	}
}

func TestFitRemovesStopWords(t *testing.T) {
	v := New()
	v.Fit(trainTexts)
	if _, ok := v.Vocabulary["the"]; ok {
		t.Error("stop word retained in vocabulary")
	}
	if _, ok := v.Vocabulary["cat sat"]; !ok {
		t.Error("bigram missing from vocabulary")
	}
}

func TestFitDeterministic(t *testing.T) {
	a, b := New(), New()
	a.Fit(trainTexts)
	b.Fit(trainTexts)
	if len(a.Vocabulary) != len(b.Vocabulary) {
		t.Fatal("repeated fits disagree on vocabulary size")
	}
	for term, i := range a.Vocabulary {
		if b.Vocabulary[term] != i {
			t.Fatalf("repeated fits disagree on term %q", term)
		}
	}
}

func TestTransformShape(t *testing.T) {
	v := New()
	m := v.FitTransform(trainTexts)
	r, c := m.Dims()
	if r != len(trainTexts) {
		t.Errorf("rows = %d, want %d", r, len(trainTexts))
	}
	if c != len(v.Vocabulary) {
		t.Errorf("cols = %d, want %d", c, len(v.Vocabulary))
	}
}

func TestTransformOutOfVocabularyIsZero(t *testing.T) {
	v := New()
	v.Fit(trainTexts)
	m := v.Transform([]string{"zebra quagga okapi"})
	_, c := m.Dims()
	for j := 0; j < c; j++ {
		if m.At(0, j) != 0 {
			t.Fatalf("out-of-vocabulary document has nonzero weight at column %d", j)
		}
	}
}

func TestTransformDoesNotRefit(t *testing.T) {
	v := New()
	v.Fit(trainTexts)
	before := len(v.Vocabulary)
	v.Transform([]string{"completely new words everywhere"})
	if len(v.Vocabulary) != before {
		t.Error("Transform grew the vocabulary")
	}
}

func TestTransformWeightsPresent(t *testing.T) {
	v := New()
	m := v.FitTransform(trainTexts)
	j, ok := v.Vocabulary["cat"]
	if !ok {
		t.Fatal("cat missing from vocabulary")
	}
	if m.At(0, j) <= 0 {
		t.Error("in-vocabulary term has no weight")
	}
}
