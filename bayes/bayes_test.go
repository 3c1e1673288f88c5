package bayes

import (
	"testing"

	"github.com/detoxlab/detox/cleaner"
)

var (
	trainTexts = []string{
		"thanks for the great work on this article",
		"i love this rewrite well done",
		"appreciate the helpful review",
		"good catch fixing that reference",
		"you are a stupid idiot",
		"shut up you worthless moron i hate you",
	}
	trainLabels = []bool{false, false, false, false, true, true}
)

func TestTrainAndPredict(t *testing.T) {
	c := cleaner.NewCleaner()
	d, err := Train(c, trainTexts, trainLabels)
	if err != nil {
		t.Fatal(err)
	}

	if d.Predict("you are stupid and i hate you") != true {
		t.Error("insult predicted as ok")
	}
	if d.Predict("thanks for the helpful review") != false {
		t.Error("praise predicted as attack")
	}
}

func TestPredictAll(t *testing.T) {
	c := cleaner.NewCleaner()
	d, err := Train(c, trainTexts, trainLabels)
	if err != nil {
		t.Fatal(err)
	}
	predictions := d.PredictAll(trainTexts)
	if len(predictions) != len(trainTexts) {
		t.Fatalf("got %d predictions, want %d", len(predictions), len(trainTexts))
	}
}

func TestTrainLengthMismatch(t *testing.T) {
	c := cleaner.NewCleaner()
	if _, err := Train(c, trainTexts, trainLabels[:2]); err == nil {
		t.Error("expected error for texts/labels length mismatch")
	}
}
