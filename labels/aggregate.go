// Package labels turns per-worker attack judgments into one boolean
// label per comment by majority vote.
package labels

import (
	"github.com/detoxlab/detox/corpus"
)

// Aggregate groups annotations by revision id and labels a comment as
// an attack iff the mean judgment strictly exceeds 0.5. A mean of
// exactly 0.5 therefore resolves to false.
func Aggregate(annotations []corpus.Annotation) map[int64]bool {
	sums := make(map[int64]float64)
	counts := make(map[int64]int)
	for _, a := range annotations {
		sums[a.RevID] += a.Attack
		counts[a.RevID]++
	}

	labels := make(map[int64]bool, len(counts))
	for revID, count := range counts {
		labels[revID] = sums[revID]/float64(count) > 0.5
	}
	return labels
}

// Apply attaches labels to comments by revision id. Comments with no
// annotations carry no defined label and are excluded; the count of
// exclusions is returned so the caller can log it.
func Apply(comments []corpus.Comment, labels map[int64]bool) ([]corpus.Comment, int) {
	labeled := make([]corpus.Comment, 0, len(comments))
	dropped := 0
	for _, c := range comments {
		attack, ok := labels[c.RevID]
		if !ok {
			dropped++
			continue
		}
		c.Attack = attack
		labeled = append(labeled, c)
	}
	return labeled, dropped
}

// Summary describes inter-annotator agreement across the corpus.
type Summary struct {
	Items          int     // distinct annotated revisions
	MultiAnnotated int     // revisions judged by more than one worker
	Unanimous      int     // multi-annotated revisions where all workers agree
	UnanimityRate  float64 // Unanimous / MultiAnnotated
}

// Agreement summarises how often workers agree on a revision. A worker
// "votes attack" when their judgment exceeds 0.5; a revision is
// unanimous when every vote lands on the same side.
func Agreement(annotations []corpus.Annotation) Summary {
	votes := make(map[int64][]bool)
	for _, a := range annotations {
		votes[a.RevID] = append(votes[a.RevID], a.Attack > 0.5)
	}

	s := Summary{Items: len(votes)}
	for _, v := range votes {
		if len(v) < 2 {
			continue
		}
		s.MultiAnnotated++
		unanimous := true
		for _, vote := range v[1:] {
			if vote != v[0] {
				unanimous = false
				break
			}
		}
		if unanimous {
			s.Unanimous++
		}
	}
	if s.MultiAnnotated > 0 {
		s.UnanimityRate = float64(s.Unanimous) / float64(s.MultiAnnotated)
	}
	return s
}
