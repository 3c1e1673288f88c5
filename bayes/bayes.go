// Package bayes holds the Naive Bayes baseline the SVM is compared
// against in the evaluation report.
package bayes

import (
	"errors"

	"github.com/detoxlab/detox/cleaner"
	"github.com/navossoc/bayesian"
)

const (
	Ok     bayesian.Class = "Ok"
	Attack bayesian.Class = "Attack"
)

type Detector struct {
	Classifier *bayesian.Classifier
	cleaner    *cleaner.Cleaner
}

// Train fits the baseline on raw comment texts. Each document runs
// through the stop-word/stem/lemma token pipeline before learning, and
// term frequencies are converted to TF-IDF once both classes are in.
func Train(c *cleaner.Cleaner, texts []string, labels []bool) (*Detector, error) {
	if len(texts) != len(labels) {
		return nil, errors.New("bayes: texts and labels differ in length")
	}

	d := Detector{
		Classifier: bayesian.NewClassifier(Ok, Attack),
		cleaner:    c,
	}
	for i, text := range texts {
		tokens := c.Tokens(text)
		if len(tokens) == 0 {
			continue
		}
		if labels[i] {
			d.Classifier.Learn(tokens, Attack)
		} else {
			d.Classifier.Learn(tokens, Ok)
		}
	}

	d.Classifier.ConvertTermsFreqToTfIdf()
	if !d.Classifier.DidConvertTfIdf {
		return nil, errors.New("bayes: failed to convert term frequencies to tf-idf")
	}
	return &d, nil
}

// Predict labels a single text; true means attack.
func (d *Detector) Predict(text string) bool {
	scores, _, _ := d.Classifier.ProbScores(d.cleaner.Tokens(text))
	return scores[1] > scores[0]
}

// PredictAll labels every text, in order.
func (d *Detector) PredictAll(texts []string) []bool {
	predictions := make([]bool, len(texts))
	for i, text := range texts {
		predictions[i] = d.Predict(text)
	}
	return predictions
}
