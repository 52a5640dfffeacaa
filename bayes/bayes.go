package bayes

import (
	"errors"
	"math"
	"sort"

	"github.com/deanrtaylor1/gogenre/corpus"
	"github.com/deanrtaylor1/gogenre/lexer"
)

// ErrModelNotTrained is returned when scoring against a model with no documents or no vocabulary
var ErrModelNotTrained = errors.New("model not trained")

// ClassData holds the counts collected for one label
type ClassData struct {
	DocCount  int
	TermCount int
	Terms     lexer.TermFreq
}

// Model is a multinomial Naive Bayes model. It is built once by Train and only read afterwards.
type Model struct {
	classes    map[string]*ClassData
	vocabulary map[string]struct{}
	totalDocs  int
	labels     []string
}

// ScoredLabel is a label with its log-space score
type ScoredLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Train counts documents per label, tokens per label and the global vocabulary.
// The result does not depend on the order of docs.
func Train(docs []corpus.Document) *Model {
	model := &Model{
		classes:    make(map[string]*ClassData),
		vocabulary: make(map[string]struct{}),
	}

	for _, doc := range docs {
		class, ok := model.classes[doc.Label]
		if !ok {
			class = &ClassData{Terms: make(lexer.TermFreq)}
			model.classes[doc.Label] = class
		}
		class.DocCount += 1
		model.totalDocs += 1

		for _, token := range doc.Tokens {
			class.Terms[token] += 1
			class.TermCount += 1
			model.vocabulary[token] = struct{}{}
		}
	}

	for label := range model.classes {
		model.labels = append(model.labels, label)
	}
	sort.Strings(model.labels)

	return model
}

// Labels returns the labels seen in training in lexicographic order
func (m *Model) Labels() []string {
	return append([]string(nil), m.labels...)
}

func (m *Model) DocCount(label string) int {
	if class, ok := m.classes[label]; ok {
		return class.DocCount
	}
	return 0
}

func (m *Model) TotalDocs() int { return m.totalDocs }

// TokenCount returns how often token occurred under label, 0 when never seen
func (m *Model) TokenCount(label, token string) int {
	if class, ok := m.classes[label]; ok {
		return class.Terms[token]
	}
	return 0
}

// TokenTotal returns the number of token occurrences (not unique) under label
func (m *Model) TokenTotal(label string) int {
	if class, ok := m.classes[label]; ok {
		return class.TermCount
	}
	return 0
}

func (m *Model) VocabularySize() int { return len(m.vocabulary) }

func (m *Model) InVocabulary(token string) bool {
	_, ok := m.vocabulary[token]
	return ok
}

// Terms returns a copy of the token counts of label
func (m *Model) Terms(label string) lexer.TermFreq {
	tf := make(lexer.TermFreq)
	if class, ok := m.classes[label]; ok {
		for token, freq := range class.Terms {
			tf[token] = freq
		}
	}
	return tf
}

func (m *Model) trained() bool {
	return m != nil && m.totalDocs > 0 && len(m.vocabulary) > 0
}

// Scores returns the log posterior (up to a constant) of every label for tokens.
// Each occurrence of a token contributes independently.
func (m *Model) Scores(tokens []string) (map[string]float64, error) {
	if !m.trained() {
		return nil, ErrModelNotTrained
	}

	scores := make(map[string]float64, len(m.labels))
	for _, label := range m.labels {
		scores[label] = m.score(label, tokens)
	}
	return scores, nil
}

func (m *Model) score(label string, tokens []string) float64 {
	class := m.classes[label]
	score := math.Log(float64(class.DocCount) / float64(m.totalDocs))
	for _, token := range tokens {
		score += ComputeLikelihood(token, class, len(m.vocabulary))
	}
	return score
}

// Predict returns the label with the highest score. On a tie the lexicographically
// smallest label wins; callers should not depend on which.
func (m *Model) Predict(tokens []string) (string, error) {
	if !m.trained() {
		return "", ErrModelNotTrained
	}

	best := math.Inf(-1)
	var bestLabel string
	for i, label := range m.labels {
		score := m.score(label, tokens)
		if i == 0 || score > best {
			best = score
			bestLabel = label
		}
	}
	return bestLabel, nil
}

// Rank returns every label ordered by descending score, ties in label order
func (m *Model) Rank(tokens []string) ([]ScoredLabel, error) {
	if !m.trained() {
		return nil, ErrModelNotTrained
	}

	result := make([]ScoredLabel, 0, len(m.labels))
	for _, label := range m.labels {
		result = append(result, ScoredLabel{Label: label, Score: m.score(label, tokens)})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Score > result[j].Score
	})
	return result, nil
}

// ComputeLikelihood returns the add-one smoothed log probability of token under class.
// vocabSize must be positive.
func ComputeLikelihood(token string, class *ClassData, vocabSize int) float64 {
	//count is 0 for tokens the class never saw, so unseen tokens stay finite
	count := float64(class.Terms[token]) + 1
	return math.Log(count / float64(class.TermCount+vocabSize))
}
