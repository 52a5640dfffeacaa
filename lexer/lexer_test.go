package lexer

import (
	"reflect"
	"regexp"
	"testing"
	"unicode"
)

func TestNewLexer(t *testing.T) {
	l := NewLexer("Hello World!")
	if l == nil {
		t.Error("NewLexer() returned nil")
	} else {

		if len(l.content) != 12 {
			t.Error("NewLexer() returned wrong length")
		}

		if string(l.content) != "Hello World!" {
			t.Error("NewLexer() returned wrong content")
		}
	}

}

func TestTrimLeft(t *testing.T) {
	l := NewLexer(" \t\nHello World!")
	l.TrimLeft()
	if string(l.content) != "Hello World!" {
		t.Error("TrimLeft() failed")
	}

}

func TestChop(t *testing.T) {
	l := NewLexer("Hello World!")
	l.Chop(5)
	if string(l.content) != " World!" {
		t.Error("Chop() failed")
	}
}

func TestChopWhile(t *testing.T) {
	l := NewLexer("Hello World!")

	f := func(x rune) bool {
		return unicode.IsLetter(x)
	}

	l.ChopWhile(f)
	expected := " World!"
	if string(l.content) != expected {
		t.Errorf("ChopWhile() Failed, expected %v, got %v", expected, l.content)
	}
}

func TestNextToken(t *testing.T) {

	l := NewLexer("hello world")

	expected := "hello"
	nextToken := l.NextToken()

	if string(nextToken) != expected {
		t.Errorf("NextToken() Failed, expected %v, got %v", expected, string(nextToken))
	}

}

func TestNext(t *testing.T) {
	l := NewLexer("  hello\tworld \n")

	for _, expected := range []string{"hello", "world"} {
		token, err := l.Next()
		if err != nil {
			t.Errorf("Next() Failed, expected %v, got %v", nil, err)
		}
		if token != expected {
			t.Errorf("Next() Failed, expected %v, got %v", expected, token)
		}
	}

	EOF, err := l.Next()

	if err != ErrNoMoreTokens {
		t.Errorf("Next() Failed, expected %v, got %v", ErrNoMoreTokens, err)
	}

	if EOF != "EOF" {
		t.Errorf("Next() Failed, expected %v, got %v", "EOF", EOF)
	}
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "case folded", input: "The Quick", expected: "the quick"},
		{name: "punctuation joins", input: "co-op don't", expected: "coop dont"},
		{name: "digits dropped", input: "abc123def 42", expected: "abcdef "},
		{name: "accents dropped", input: "Café Noël", expected: "caf nol"},
		{name: "whitespace kept", input: "a\tb\nc", expected: "a\tb\nc"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.input); got != tc.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Basic test",
			input:    "The Quick Brown Fox!",
			expected: []string{"quick", "brown", "fox"},
		},
		{
			name:     "Only non letters",
			input:    "123 ## $$",
			expected: []string{},
		},
		{
			name:     "Empty input",
			input:    "",
			expected: []string{},
		},
		{
			name:     "Stopwords removed",
			input:    "A story, with a twist.",
			expected: []string{"story", "twist"},
		},
		{
			name:     "Duplicates and order kept",
			input:    "funny Funny joke FUNNY",
			expected: []string{"funny", "funny", "joke", "funny"},
		},
		{
			name:     "Contraction loses apostrophe",
			input:    "Don't stop",
			expected: []string{"dont", "stop"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := Tokenize(tc.input)
			if !reflect.DeepEqual(tokens, tc.expected) {
				t.Errorf("Expected: %v, got: %v", tc.expected, tokens)
			}
		})
	}
}

func TestIsStopword(t *testing.T) {
	for _, word := range []string{"the", "with", "a", "yourselves", "aren't"} {
		if !IsStopword(word) {
			t.Errorf("IsStopword(%q) = false, want true", word)
		}
	}
	for _, word := range []string{"fox", "drama", ""} {
		if IsStopword(word) {
			t.Errorf("IsStopword(%q) = true, want false", word)
		}
	}
}

func TestNewTokenizer(t *testing.T) {
	if _, err := NewTokenizer(Options{Stemmer: "lancaster"}); err == nil {
		t.Error("NewTokenizer() with unknown stemmer should fail")
	}

	tok, err := NewTokenizer(Options{Stemmer: StemmerNone})
	if err != nil {
		t.Fatalf("NewTokenizer() failed: %v", err)
	}
	defer tok.Close()

	expected := []string{"running", "horses"}
	if got := tok.Tokenize("Running horses"); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected: %v, got: %v", expected, got)
	}
}

func TestTokenizerStemming(t *testing.T) {
	testCases := []struct {
		name     string
		stemmer  string
		expected []string
	}{
		{name: "porter", stemmer: StemmerPorter, expected: []string{"run", "hors"}},
		{name: "snowball", stemmer: StemmerSnowball, expected: []string{"run", "hors"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tok, err := NewTokenizer(Options{Stemmer: tc.stemmer})
			if err != nil {
				t.Fatalf("NewTokenizer() failed: %v", err)
			}
			defer tok.Close()

			got := tok.Tokenize("Running horses")
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Expected: %v, got: %v", tc.expected, got)
			}
		})
	}
}

func TestTokenizerStripMarkup(t *testing.T) {
	tok, err := NewTokenizer(Options{StripMarkup: true})
	if err != nil {
		t.Fatalf("NewTokenizer() failed: %v", err)
	}
	defer tok.Close()

	got := tok.Tokenize(`<p>A <b>dark</b><i>heist</i> &amp; revenge</p>`)
	expected := []string{"dark", "heist", "revenge"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected: %v, got: %v", expected, got)
	}
}

func TestParseHtmlTextContent(t *testing.T) {
	testCases := []struct {
		name                string
		htmlContent         string
		expectedTextContent string
	}{
		{
			name: "Basic test",
			htmlContent: `
<!DOCTYPE html>
<html>
<head>
<title>Test Page</title>
</head>
<body>
  <h1>Sample Links</h1>
  <a href="https://example.com/page1">Link 1</a>
  <a href="/page3">Link 3</a>
</body>
</html>`,
			expectedTextContent: "Test Page Sample Links Link 1 Link 3",
		},
		{
			name:                "Plain text passes through",
			htmlContent:         "no markup here",
			expectedTextContent: "no markup here",
		},
	}

	for _, tc := range testCases {

		t.Run(tc.name, func(t *testing.T) {
			textContent := ParseHtmlTextContent(tc.htmlContent)
			// Remove all whitespaces and newlines from both textContent and expectedTextContent
			re := regexp.MustCompile(`\s`)
			expected := re.ReplaceAllString(tc.expectedTextContent, "")
			actual := re.ReplaceAllString(textContent, "")
			if actual != expected {
				t.Errorf("Expected: %v, got: %v", expected, actual)
			}
		})

	}

}

func TestMapToSortedSlice(t *testing.T) {

	testCases := []struct {
		name     string
		input    TermFreq
		expected []stat
	}{
		{
			name: "Basic test",
			input: TermFreq{
				"one":   1,
				"two":   2,
				"three": 3,
			},
			expected: []stat{
				{token: "three", freq: 3},
				{token: "two", freq: 2},
				{token: "one", freq: 1},
			},
		},
		{
			name: "Ties alphabetical",
			input: TermFreq{
				"b": 2,
				"a": 2,
			},
			expected: []stat{
				{token: "a", freq: 2},
				{token: "b", freq: 2},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sortedSlice := MapToSortedSlice(tc.input)
			if !reflect.DeepEqual(sortedSlice, tc.expected) {
				t.Errorf("Expected: %v, got: %v", tc.expected, sortedSlice)
			}
		})
	}

}
