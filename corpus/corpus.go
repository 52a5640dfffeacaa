package corpus

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/deanrtaylor1/gogenre/logger"
)

// maxLineSize bounds a single record; descriptions can be long
const maxLineSize = 10 * 1024 * 1024

// Document is one labelled, tokenized record
type Document struct {
	Label  string
	Tokens []string
}

// Tokenizer turns a free text field into tokens
type Tokenizer interface {
	Tokenize(text string) []string
}

// Stats describes what a Load call read
type Stats struct {
	Lines     int
	Documents int
	Skipped   int
}

// FileAccessError is returned when a corpus file cannot be opened or read
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot access corpus %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// EncodingError is returned when a line is not valid UTF-8
type EncodingError struct {
	Path string
	Line int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("corpus %s: line %d is not valid UTF-8", e.Path, e.Line)
}

// LoadFile reads a tab separated corpus from path. Paths ending in .gz are decompressed.
func LoadFile(path string, tok Tokenizer) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	var r io.Reader = f
	if filepath.Ext(path) == ".gz" {
		gzipReader, err := gzip.NewReader(f)
		if err != nil {
			return nil, &FileAccessError{Path: path, Err: err}
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	docs, stats, err := Load(r, tok)
	if err != nil {
		return nil, withPath(err, path)
	}

	logger.HandleLog(fmt.Sprintf("loaded %s: %d lines, %d documents, %d skipped", path, stats.Lines, stats.Documents, stats.Skipped))
	return docs, nil
}

// Load reads `<label>\t<text>` records from r. Lines without a tab are skipped.
func Load(r io.Reader, tok Tokenizer) ([]Document, Stats, error) {
	var stats Stats
	docs := []Document{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		stats.Lines++
		line := scanner.Text()

		if !utf8.ValidString(line) {
			return nil, stats, &EncodingError{Line: stats.Lines}
		}

		doc, ok := parseLine(line, tok)
		if !ok {
			stats.Skipped++
			logger.HandleLog(fmt.Sprintf("skipping line %d: no label separator", stats.Lines))
			continue
		}
		docs = append(docs, doc)
		stats.Documents++
	}

	if err := scanner.Err(); err != nil {
		return nil, stats, &FileAccessError{Err: err}
	}

	return docs, stats, nil
}

// parseLine splits a record on its first tab after trimming the surrounding whitespace
func parseLine(line string, tok Tokenizer) (Document, bool) {
	if !strings.Contains(line, "\t") {
		return Document{}, false
	}

	label, text, found := strings.Cut(strings.TrimSpace(line), "\t")
	if !found {
		return Document{}, false
	}

	return Document{
		Label:  strings.TrimSpace(label),
		Tokens: tok.Tokenize(text),
	}, true
}

func withPath(err error, path string) error {
	switch e := err.(type) {
	case *EncodingError:
		e.Path = path
	case *FileAccessError:
		e.Path = path
	}
	return err
}
