package svm

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/detoxlab/detox/vectorizer"
)

// Snapshot bundles a trained model with the vectorizer it was fit
// through, so classify and serve modes answer queries without
// retraining. Text must be normalized by the caller before Classify;
// the snapshot applies the same fitted transform used in training.
type Snapshot struct {
	Vectorizer *vectorizer.Vectorizer
	Model      *Model
}

func (s *Snapshot) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("svm: create snapshot %s: %w", path, err)
	}
	defer file.Close()
	if err := gob.NewEncoder(file).Encode(s); err != nil {
		return fmt.Errorf("svm: encode snapshot: %w", err)
	}
	return nil
}

func LoadSnapshot(path string) (*Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("svm: open snapshot %s: %w", path, err)
	}
	defer file.Close()
	var s Snapshot
	if err := gob.NewDecoder(file).Decode(&s); err != nil {
		return nil, fmt.Errorf("svm: decode snapshot %s: %w", path, err)
	}
	return &s, nil
}

// Classify transforms the given texts through the fitted vectorizer
// and labels each one.
func (s *Snapshot) Classify(texts ...string) []bool {
	return s.Model.Predict(s.Vectorizer.Transform(texts))
}

// Score returns the decision value for a single text.
func (s *Snapshot) Score(text string) float64 {
	return s.Model.Decision(s.Vectorizer.Transform([]string{text}), 0)
}
