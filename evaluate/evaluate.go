package evaluate

import (
	"fmt"
	"io"
	"sort"

	"github.com/deanrtaylor1/gogenre/bayes"
	"github.com/deanrtaylor1/gogenre/corpus"
)

// Outcome counts predictions for one true label
type Outcome struct {
	Correct   int
	Incorrect int
}

// Tally maps a true label to its outcome. Only labels present in the test set appear.
type Tally map[string]*Outcome

// Evaluate predicts every document and credits the result to its true label
func Evaluate(model *bayes.Model, docs []corpus.Document) (Tally, error) {
	tally := make(Tally)
	for i, doc := range docs {
		predicted, err := model.Predict(doc.Tokens)
		if err != nil {
			return nil, fmt.Errorf("error predicting document %d: %w", i, err)
		}

		outcome, ok := tally[doc.Label]
		if !ok {
			outcome = &Outcome{}
			tally[doc.Label] = outcome
		}
		if predicted == doc.Label {
			outcome.Correct += 1
		} else {
			outcome.Incorrect += 1
		}
	}
	return tally, nil
}

// Labels returns the distinct true labels seen, sorted
func (t Tally) Labels() []string {
	labels := make([]string, 0, len(t))
	for label := range t {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Accuracy is the share of correct predictions over all labels, 0 for an empty tally
func (t Tally) Accuracy() float64 {
	var correct, total int
	for _, outcome := range t {
		correct += outcome.Correct
		total += outcome.Correct + outcome.Incorrect
	}
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total)
}

// Report writes one `<label> - Correct: <n>, Incorrect: <m>` line per label
func (t Tally) Report(w io.Writer) error {
	for _, label := range t.Labels() {
		outcome := t[label]
		if _, err := fmt.Fprintf(w, "%s - Correct: %d, Incorrect: %d\n", label, outcome.Correct, outcome.Incorrect); err != nil {
			return err
		}
	}
	return nil
}
