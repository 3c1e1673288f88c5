package corpus

import (
	"math"
	"math/rand"
)

// Split shuffles the comments with the given seed and partitions them
// into train and test sets. The split is not stratified by label, so
// the ~7:1 class imbalance of the corpus carries into both partitions.
func Split(comments []Comment, trainRatio float64, seed int64) ([]Comment, []Comment) {
	if len(comments) == 0 {
		return nil, nil
	}
	if trainRatio <= 0 || trainRatio >= 1 {
		trainRatio = 0.7
	}

	shuffled := append([]Comment(nil), comments...)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	trainSize := int(math.Round(trainRatio * float64(len(shuffled))))
	if trainSize < 1 {
		trainSize = 1
	}
	if trainSize >= len(shuffled) {
		trainSize = len(shuffled) - 1
	}
	return shuffled[:trainSize], shuffled[trainSize:]
}

// Texts projects the comment texts, in order.
func Texts(comments []Comment) []string {
	texts := make([]string, len(comments))
	for i, c := range comments {
		texts[i] = c.Text
	}
	return texts
}

// Labels projects the attack labels, in order.
func Labels(comments []Comment) []bool {
	labels := make([]bool, len(comments))
	for i, c := range comments {
		labels[i] = c.Attack
	}
	return labels
}
