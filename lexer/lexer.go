package lexer

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/reiver/go-porterstemmer"
	"github.com/tebeka/snowball"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	StemmerNone     = "none"
	StemmerSnowball = "snowball"
	StemmerPorter   = "porter"
)

// ErrNoMoreTokens is returned by Next once the content is exhausted
var ErrNoMoreTokens = errors.New("no more tokens")

type Lexer struct {
	content []rune
}

// TermFreq maps a token to the number of times it was seen
type TermFreq map[string]int

type stat struct {
	token string
	freq  int
}

// NewLexer creates a new Lexer
func NewLexer(content string) *Lexer {
	return &Lexer{[]rune(content)}
}

// TrimLeft trims empty spaces from the left of the content
func (l *Lexer) TrimLeft() {
	for len(l.content) > 0 && isSpace(l.content[0]) {
		l.content = l.content[1:]
	}
}

// Chop chops the content by n and returns the chopped content
func (l *Lexer) Chop(n int) (token []rune) {
	token = l.content[:n]
	l.content = l.content[n:]
	return token
}

// ChopWhile chops the content while the predicate f returns true
func (l *Lexer) ChopWhile(f func(rune) bool) (token []rune) {
	n := 0
	for n < len(l.content) && f(l.content[n]) {
		n += 1
	}
	return l.Chop(n)
}

// NextToken returns the next whitespace delimited word, or nil at the end of the content
func (l *Lexer) NextToken() []rune {
	l.TrimLeft()

	if len(l.content) == 0 {
		return nil
	}

	return l.ChopWhile(func(r rune) bool {
		return !isSpace(r)
	})
}

// Next returns the next token as a string
func (l *Lexer) Next() (string, error) {
	token := l.NextToken()
	if token == nil {
		return "EOF", ErrNoMoreTokens
	}
	return string(token), nil
}

// isSpace matches the whitespace class used when splitting descriptions,
// including the ASCII information separators.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Normalize lowercases text and removes every rune that is not a-z or whitespace.
// Removed runes join their neighbours: "co-op" becomes "coop".
func Normalize(text string) string {
	lowered := cases.Lower(language.Und).String(text)
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || isSpace(r) {
			return r
		}
		return -1
	}, lowered)
}

// Options controls the optional stages of a Tokenizer
type Options struct {
	// Stemmer is one of "", "none", "snowball" or "porter"
	Stemmer string
	// StripMarkup extracts the text content of HTML descriptions before normalizing
	StripMarkup bool
}

// Tokenizer turns descriptions into filtered tokens
type Tokenizer struct {
	opts     Options
	snowball *snowball.Stemmer
}

// NewTokenizer validates opts and prepares the configured stemmer
func NewTokenizer(opts Options) (*Tokenizer, error) {
	t := &Tokenizer{opts: opts}
	switch opts.Stemmer {
	case "", StemmerNone, StemmerPorter:
	case StemmerSnowball:
		stemmer, err := snowball.New("english")
		if err != nil {
			return nil, fmt.Errorf("error creating snowball stemmer: %w", err)
		}
		t.snowball = stemmer
	default:
		return nil, fmt.Errorf("unknown stemmer %q", opts.Stemmer)
	}
	return t, nil
}

// Close releases the snowball stemmer if one was created
func (t *Tokenizer) Close() {
	if t.snowball != nil {
		t.snowball.Close()
		t.snowball = nil
	}
}

// Tokenize normalizes text, splits it on whitespace and drops stopwords.
// Order and duplicates are preserved.
func (t *Tokenizer) Tokenize(text string) []string {
	if t.opts.StripMarkup {
		text = ParseHtmlTextContent(text)
	}

	tokens := []string{}
	l := NewLexer(Normalize(text))
	for {
		token, err := l.Next()
		if err != nil {
			break
		}
		if IsStopword(token) {
			continue
		}
		tokens = append(tokens, t.stem(token))
	}
	return tokens
}

func (t *Tokenizer) stem(token string) string {
	switch {
	case t.snowball != nil:
		return t.snowball.Stem(token)
	case t.opts.Stemmer == StemmerPorter:
		return porterstemmer.StemString(token)
	}
	return token
}

// Tokenize runs the default pipeline: no markup stripping, no stemming
func Tokenize(text string) []string {
	t := &Tokenizer{}
	return t.Tokenize(text)
}

// ParseHtmlTextContent returns the text nodes of an html fragment separated by spaces
func ParseHtmlTextContent(htmlContent string) string {
	var content strings.Builder

	d := html.NewTokenizer(strings.NewReader(htmlContent))
	for {
		tt := d.Next()
		switch tt {
		case html.ErrorToken:
			return content.String()
		case html.TextToken:
			content.Write(d.Text())
			content.WriteByte(' ')
		}
	}
}

// Utility function to sort a map by value, ties broken alphabetically
func MapToSortedSlice(m TermFreq) (stats []stat) {
	for k, v := range m {
		stats = append(stats, stat{k, v})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].freq != stats[j].freq {
			return stats[i].freq > stats[j].freq
		}
		return stats[i].token < stats[j].token
	})

	return stats
}

// Token returns the word of a ranked entry
func (s stat) Token() string { return s.token }

// Freq returns the count of a ranked entry
func (s stat) Freq() int { return s.freq }
