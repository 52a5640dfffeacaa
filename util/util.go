package util

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// Bullet prefixes every option shown in a survey prompt
const Bullet = "○ "

// IsCorpusFile reports whether name looks like a tab separated corpus
func IsCorpusFile(name string) bool {
	return strings.HasSuffix(name, ".tsv") || strings.HasSuffix(name, ".tsv.gz")
}

// GetCorpusFiles lists the corpus files in dirName, or nothing if it does not exist
func GetCorpusFiles(dirName string) []string {
	files, err := os.ReadDir(dirName)
	if err != nil {
		log.Println(err)
		return nil
	}

	corpora := []string{}
	for _, f := range files {
		if f.IsDir() || !IsCorpusFile(f.Name()) {
			continue
		}
		corpora = append(corpora, filepath.Join(dirName, f.Name()))
	}

	return corpora
}

// SelectFile asks the user to pick one of the corpus files in dirName.
// Any extra paths that exist are offered as well.
func SelectFile(message string, dirName string, extra ...string) (string, error) {
	options := []string{}
	seen := map[string]bool{}
	for _, path := range append(extra, GetCorpusFiles(dirName)...) {
		if seen[path] {
			continue
		}
		seen[path] = true
		if ok, _ := CheckFileIsValid(path); ok {
			options = append(options, Bullet+path)
		}
	}

	if len(options) == 0 {
		return "", os.ErrNotExist
	}

	prompt := &survey.Select{
		Message: message,
		Options: options,
	}

	var selected string
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}

	return FormatCliResponse(selected), nil
}

// FormatCliResponse removes the bullet point from a survey answer
func FormatCliResponse(response string) string {
	return strings.Replace(response, Bullet, "", -1)
}

func CheckFileIsValid(fileName string) (bool, error) {
	info, err := os.Stat(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil // File does not exist
		}
		return false, err // Some other error occurred
	}
	return !info.IsDir(), nil
}

const (
	TerminalReset  = "\033[0m"
	TerminalRed    = "\033[31m"
	TerminalGreen  = "\033[32m"
	TerminalYellow = "\033[33m"
	TerminalBlue   = "\033[34m"
	TerminalPurple = "\033[35m"
	TerminalCyan   = "\033[36m"
	TerminalWhite  = "\033[37m"
)
