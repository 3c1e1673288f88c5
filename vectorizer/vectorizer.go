// Package vectorizer builds the bag-of-words TF-IDF representation the
// attack classifier trains on.
package vectorizer

import (
	"math"
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
	"github.com/james-bowman/sparse"
)

// DefaultMaxFeatures caps the vocabulary at the terms with the highest
// document frequency.
const DefaultMaxFeatures = 10000

// Vectorizer maps documents onto a sparse matrix with one row per
// document and one column per retained vocabulary term, weighted by
// TF-IDF. Fit builds the vocabulary from training text only; Transform
// never refits, so out-of-vocabulary terms contribute nothing.
//
// All state is exported so a fitted vectorizer can ride along in a gob
// model snapshot.
type Vectorizer struct {
	MaxFeatures int
	Vocabulary  map[string]int
	DocFreq     []int
	NumDocs     int
}

func New() *Vectorizer {
	return &Vectorizer{MaxFeatures: DefaultMaxFeatures}
}

// Fit builds the capped vocabulary and document frequencies from the
// training texts.
func (v *Vectorizer) Fit(texts []string) {
	df := make(map[string]int)
	for _, text := range texts {
		for term := range termSet(text) {
			df[term]++
		}
	}

	selected := make([]string, 0, len(df))
	for term := range df {
		selected = append(selected, term)
	}
	// Highest document frequency first; ties broken lexically so a
	// given corpus always yields the same vocabulary.
	sort.Strings(selected)
	sort.SliceStable(selected, func(i, j int) bool {
		return df[selected[i]] > df[selected[j]]
	})
	if v.MaxFeatures > 0 && len(selected) > v.MaxFeatures {
		selected = selected[:v.MaxFeatures]
	}

	v.NumDocs = len(texts)
	v.Vocabulary = make(map[string]int, len(selected))
	v.DocFreq = make([]int, len(selected))
	for i, term := range selected {
		v.Vocabulary[term] = i
		v.DocFreq[i] = df[term]
	}
}

// Transform maps texts onto the fitted vocabulary. Rows are documents,
// columns are terms, values are term count times smoothed IDF. Columns
// are emitted in sorted order so repeated runs produce byte-identical
// matrices.
func (v *Vectorizer) Transform(texts []string) *sparse.CSR {
	indptr := make([]int, len(texts)+1)
	var indices []int
	var data []float64
	for i, text := range texts {
		counts := make(map[int]int)
		for _, term := range terms(text) {
			if j, ok := v.Vocabulary[term]; ok {
				counts[j]++
			}
		}
		cols := make([]int, 0, len(counts))
		for j := range counts {
			cols = append(cols, j)
		}
		sort.Ints(cols)
		for _, j := range cols {
			indices = append(indices, j)
			data = append(data, float64(counts[j])*v.idf(j))
		}
		indptr[i+1] = len(indices)
	}
	return sparse.NewCSR(len(texts), len(v.Vocabulary), indptr, indices, data)
}

// FitTransform fits the vocabulary on texts and returns their matrix.
func (v *Vectorizer) FitTransform(texts []string) *sparse.CSR {
	v.Fit(texts)
	return v.Transform(texts)
}

func (v *Vectorizer) idf(j int) float64 {
	return math.Log(float64(1+v.NumDocs)/float64(1+v.DocFreq[j])) + 1
}

// terms tokenizes a document into unigrams and bigrams of word tokens.
// English stop words are removed before n-gram construction, matching
// how the vocabulary is built.
func terms(text string) []string {
	tokens := strings.Fields(stopwords.CleanString(text, "en", false))
	grams := make([]string, 0, 2*len(tokens))
	grams = append(grams, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		grams = append(grams, tokens[i]+" "+tokens[i+1])
	}
	return grams
}

func termSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, term := range terms(text) {
		set[term] = struct{}{}
	}
	return set
}
