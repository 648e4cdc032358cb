package bankgen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ff66ccff/SearchForPE/internal/logger"
	repository "github.com/ff66ccff/SearchForPE/internal/repository/bank"
)

// Options contains inputs for the bank generator entry point.
type Options struct {
	// InputPath is the exam transcript to parse.
	InputPath string
	// OutputPath is where the question bank JSON is written.
	OutputPath string
}

// errNoQuestions indicates the transcript yielded no questions at all,
// which points at a wrong input file rather than an empty bank.
var errNoQuestions = errors.New("no questions recognized in the transcript")

// Run parses the transcript and writes the question bank JSON.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "searchforpe-bankgen")

	logger.InfoKV(ctx, "Parsing transcript", "path", opts.InputPath)

	input, err := os.Open(filepath.Clean(opts.InputPath))
	if err != nil {
		return fmt.Errorf("open transcript: %w", err)
	}

	// Best-effort cleanup.
	defer func() {
		_ = input.Close()
	}()

	questions, err := ParseTranscript(input)
	if err != nil {
		return err
	}

	if len(questions) == 0 {
		return errNoQuestions
	}

	if err = repository.NewFileRepository(opts.OutputPath).Save(ctx, questions); err != nil {
		return err
	}

	judgment, choice := questions.Counts()
	logger.InfoKV(ctx, "Question bank written",
		"path", opts.OutputPath,
		"questions", len(questions),
		"judgment_questions", judgment,
		"choice_questions", choice)

	return nil
}
