package cleaner

import (
	"regexp"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	stemmer "github.com/agonopol/go-stem"
	"github.com/bbalet/stopwords"
	"github.com/forPelevin/gomoji"
)

type Cleaner struct {
	punct      *regexp.Regexp
	digitToken *regexp.Regexp
	lemmatizer *golem.Lemmatizer
}

func NewCleaner() *Cleaner {
	l, err := golem.New(en.New())
	if err != nil {
		panic(err)
	}
	return &Cleaner{
		punct:      regexp.MustCompile(`[[:punct:]]`),
		digitToken: regexp.MustCompile(`\S*[0-9]\S*`),
		lemmatizer: l,
	}
}

// Normalize applies the training-time cleanup, in order: the literal
// NEWLINE_TOKEN and TAB_TOKEN placeholders become spaces, the text is
// lowercased, every punctuation character becomes a space, and every
// token containing a digit becomes a space. Runs of spaces are left
// for the tokenizer downstream.
func (c *Cleaner) Normalize(text string) string {
	s := strings.ReplaceAll(text, "NEWLINE_TOKEN", " ")
	s = strings.ReplaceAll(s, "TAB_TOKEN", " ")
	s = strings.ToLower(s)
	s = c.punct.ReplaceAllString(s, " ")
	s = c.digitToken.ReplaceAllString(s, " ")
	return s
}

// Tokens is the heavier pipeline consumed by the Bayes baseline:
// stop-word removal, then Porter stem and lemma per token.
func (c *Cleaner) Tokens(text string) []string {
	withoutStopWords := stopwords.CleanString(c.Normalize(text), "en", false)
	split := strings.Fields(withoutStopWords)
	for i := range split {
		split[i] = c.lemmatizer.Lemma(
			string(
				stemmer.Stem(
					[]byte(split[i]),
				),
			),
		)
	}
	return split
}

// SlugEmoji replaces emoji with their textual slugs. Applied only to
// ad-hoc input; the 2004-2015 talk page corpus predates emoji, so at
// training time there is nothing to replace.
func (c *Cleaner) SlugEmoji(s string) string {
	for _, emoji := range gomoji.FindAll(s) {
		s = strings.ReplaceAll(s, emoji.Character, " "+emoji.Slug+" ")
	}
	return s
}
