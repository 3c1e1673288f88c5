package cleaner

import (
	"strings"
	"testing"

	"github.com/forPelevin/gomoji"
)

func TestNormalize(t *testing.T) {
	c := NewCleaner()
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World! 123abc", "hello  world   "},
		{"NEWLINE_TOKENplease stopNEWLINE_TOKEN", " please stop "},
		{"Some textTAB_TOKENmore text", "some text more text"},
		{"== Heading ==", "   heading   "},
		{"already clean text", "already clean text"},
	}
	for _, tc := range cases {
		if got := c.Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizePlaceholdersOnly(t *testing.T) {
	c := NewCleaner()
	got := c.Normalize("NEWLINE_TOKEN" + "TAB_TOKEN")
	if strings.TrimSpace(got) != "" {
		t.Errorf("Normalize of placeholder tokens = %q, want only whitespace", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	c := NewCleaner()
	inputs := []string{
		"Hello, World! 123abc",
		"NEWLINE_TOKEN insult TAB_TOKEN",
		"you are a vandal!!!",
		"plain words only",
	}
	for _, in := range inputs {
		once := c.Normalize(in)
		if twice := c.Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestTokens(t *testing.T) {
	c := NewCleaner()
	tokens := c.Tokens("The editors were editing the articles")
	for _, token := range tokens {
		if token == "the" || token == "were" {
			t.Errorf("Tokens kept stop word %q", token)
		}
	}
	if len(tokens) == 0 {
		t.Fatal("Tokens returned nothing")
	}
}

func TestSlugEmoji(t *testing.T) {
	c := NewCleaner()
	got := c.SlugEmoji("nice work 👍")
	if gomoji.ContainsEmoji(got) {
		t.Errorf("SlugEmoji left emoji behind: %q", got)
	}
	if !strings.Contains(got, "thumbs") {
		t.Errorf("SlugEmoji did not slug the emoji: %q", got)
	}
}
