package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/deanrtaylor1/gogenre/bayes"
	"github.com/deanrtaylor1/gogenre/config"
	"github.com/deanrtaylor1/gogenre/corpus"
	"github.com/deanrtaylor1/gogenre/evaluate"
	"github.com/deanrtaylor1/gogenre/lexer"
	"github.com/deanrtaylor1/gogenre/logger"
	"github.com/deanrtaylor1/gogenre/util"
)

const (
	optionClassify = util.Bullet + "Classify a description"
	optionTopWords = util.Bullet + "Top words for a genre"
	optionExit     = util.Bullet + "Exit"

	topWords = 20
)

// NewTokenizer builds the tokenizer described by the lexer section of cfg
func NewTokenizer(cfg *config.Config) (*lexer.Tokenizer, error) {
	return lexer.NewTokenizer(lexer.Options{
		Stemmer:     cfg.Lexer.Stemmer,
		StripMarkup: cfg.Lexer.StripMarkup,
	})
}

// TrainAndEvaluate trains on trainPath and evaluates the model on testPath
func TrainAndEvaluate(tok corpus.Tokenizer, trainPath, testPath string) (*bayes.Model, evaluate.Tally, error) {
	trainDocs, err := corpus.LoadFile(trainPath, tok)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading training data: %w", err)
	}

	model := bayes.Train(trainDocs)

	testDocs, err := corpus.LoadFile(testPath, tok)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading test data: %w", err)
	}

	tally, err := evaluate.Evaluate(model, testDocs)
	if err != nil {
		return nil, nil, fmt.Errorf("error evaluating model: %w", err)
	}

	return model, tally, nil
}

// RunBatch trains, evaluates and writes the report to out. Nothing is written unless every step succeeded.
func RunBatch(cfg *config.Config, out io.Writer) error {
	tok, err := NewTokenizer(cfg)
	if err != nil {
		return err
	}
	defer tok.Close()

	model, tally, err := TrainAndEvaluate(tok, cfg.TrainPath, cfg.TestPath)
	if err != nil {
		return err
	}

	logger.HandleLog(fmt.Sprintf("trained on %d documents, %d labels, %d words; accuracy %.4f",
		model.TotalDocs(), len(model.Labels()), model.VocabularySize(), tally.Accuracy()))

	return tally.Report(out)
}

// Utility function to show the user the state of the trained model
func logStatus(model *bayes.Model, tally evaluate.Tally) {
	fmt.Printf(util.TerminalGreen+"%v documents trained | %v genres | %v words in vocabulary | accuracy %.2f%%\n"+util.TerminalReset,
		model.TotalDocs(), len(model.Labels()), model.VocabularySize(), tally.Accuracy()*100)
}

// Utility function to get a single input from the user
func getSingleInputPrompt(message string) string {
	prompt := &survey.Input{
		Message: message,
	}

	var input string
	err := survey.AskOne(prompt, &input)
	if err != nil {
		log.Fatal(err)
	}

	return input
}

// Start the CLI
func InitialPrompt(cfg *config.Config) {
	trainPath, err := util.SelectFile("Select the training corpus:", cfg.DataDir, cfg.TrainPath)
	if err != nil {
		log.Fatalf("no training corpus found in %s: %v", cfg.DataDir, err)
	}
	testPath, err := util.SelectFile("Select the test corpus:", cfg.DataDir, cfg.TestPath)
	if err != nil {
		log.Fatalf("no test corpus found in %s: %v", cfg.DataDir, err)
	}

	tok, err := NewTokenizer(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer tok.Close()

	start := time.Now()
	model, tally, err := TrainAndEvaluate(tok, trainPath, testPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Println(util.TerminalCyan+"Trained and evaluated in ", time.Since(start).Milliseconds(), " ms"+util.TerminalReset)

	fmt.Println("------------------------------------------------")
	if err := tally.Report(os.Stdout); err != nil {
		logger.HandleError(err)
	}
	fmt.Println("------------------------------------------------")
	logStatus(model, tally)

	StartQueryPrompt(model, tok)
}

// StartQueryPrompt loops over classification requests until the user exits
func StartQueryPrompt(model *bayes.Model, tok corpus.Tokenizer) {
	for {
		prompt := &survey.Select{
			Message: "What next?",
			Options: []string{optionClassify, optionTopWords, optionExit},
		}

		var selected string
		fmt.Println()
		if err := survey.AskOne(prompt, &selected); err != nil {
			log.Fatal(err)
		}

		switch selected {
		case optionClassify:
			classify(getSingleInputPrompt("Enter a description:"), model, tok)
		case optionTopWords:
			showTopWords(model)
		default:
			return
		}
	}
}

func classify(description string, model *bayes.Model, tok corpus.Tokenizer) {
	start := time.Now()
	tokens := tok.Tokenize(description)

	ranked, err := model.Rank(tokens)
	if err != nil {
		logger.HandleError(err)
		return
	}

	unseen := 0
	for _, token := range tokens {
		if !model.InVocabulary(token) {
			unseen++
		}
	}

	fmt.Println("------------------------------------------------")
	for i, r := range ranked {
		colour := util.TerminalWhite
		if i == 0 {
			colour = util.TerminalGreen
		}
		fmt.Printf("%s%-20s %12.4f%s\n", colour, r.Label, r.Score, util.TerminalReset)
	}
	fmt.Println("------------------------------------------------")
	log.Println(util.TerminalCyan+"Scored ", len(tokens), " tokens (", unseen, " unseen) in ", time.Since(start).Microseconds(), " µs"+util.TerminalReset)
}

func showTopWords(model *bayes.Model) {
	options := []string{}
	for _, label := range model.Labels() {
		options = append(options, util.Bullet+label)
	}

	prompt := &survey.Select{
		Message: "Select a genre:",
		Options: options,
	}

	var selected string
	if err := survey.AskOne(prompt, &selected); err != nil {
		log.Fatal(err)
	}
	label := util.FormatCliResponse(selected)

	stats := lexer.MapToSortedSlice(model.Terms(label))
	max := topWords
	if len(stats) < max {
		max = len(stats)
	}

	fmt.Printf(util.TerminalYellow+"%s: %d documents, %d words\n"+util.TerminalReset, label, model.DocCount(label), model.TokenTotal(label))
	for _, s := range stats[:max] {
		fmt.Printf("    %-20s %d\n", s.Token(), s.Freq())
	}
}
