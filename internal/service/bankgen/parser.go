package bankgen

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ff66ccff/SearchForPE/internal/domain/bank"
)

// Transcript markers. The source documents are Chinese exam exports; the
// markers are part of their format, not of this tool.
const (
	// answeredPrefix starts an answer line where the examinee answered.
	answeredPrefix = "你的答案"
	// answeredMarker is the answered prefix including the full-width colon.
	answeredMarker = "你的答案："
	// unansweredPrefix starts an answer line where the examinee skipped.
	unansweredPrefix = "你未作答"
	// correctMarker separates the examinee answer from the reference answer.
	correctMarker = "标准答案："
	// unansweredValue is recorded as the user answer for skipped questions.
	unansweredValue = "未作答"

	// lookAheadLimit bounds how many lines past a candidate question the
	// parser searches for its answer line.
	lookAheadLimit = 15

	// maxLineSize bounds a single transcript line.
	maxLineSize = 1024 * 1024
)

// optionPattern matches a choice line: a capital letter followed by one of
// the separators used in the exports (full-width dot, ASCII dot, enumeration comma).
var optionPattern = regexp.MustCompile(`^[A-Z][．.、]`)

// ParseTranscript reads a transcript and returns the recovered questions in
// document order.
func ParseTranscript(r io.Reader) (bank.Bank, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	return parseLines(lines), nil
}

// parseLines walks the paragraph list and cuts it into questions.
func parseLines(lines []string) bank.Bank {
	var (
		questions bank.Bank
		total     = len(lines)
	)

	for i := 0; i < total; {
		text := lines[i]

		if text == "" || isAnswerLine(text) || optionPattern.MatchString(text) {
			i++
			continue
		}

		// A line starts a question only when an answer line follows nearby.
		if !answerLineFollows(lines, i) {
			i++
			continue
		}

		var q *bank.Question

		q, i = collectQuestion(lines, i)
		questions = append(questions, q)
	}

	return questions
}

// answerLineFollows reports whether one of the next lookAheadLimit lines is
// an answer line.
func answerLineFollows(lines []string, i int) bool {
	for j := i + 1; j < i+lookAheadLimit && j < len(lines); j++ {
		if isAnswerLine(lines[j]) {
			return true
		}
	}

	return false
}

// collectQuestion consumes one question starting at index i and returns it
// together with the index of the first unconsumed line.
func collectQuestion(lines []string, i int) (*bank.Question, int) {
	q := &bank.Question{
		Text: lines[i],
		Type: bank.TypeJudgment,
	}

	i++

	for i < len(lines) {
		current := lines[i]

		switch {
		case current == "":
			i++
		case optionPattern.MatchString(current):
			q.Options = append(q.Options, current)
			q.Type = bank.TypeChoice
			i++
		case isAnswerLine(current):
			q.UserAnswer, q.CorrectAnswer = parseAnswerLine(current)

			return q, i + 1
		default:
			// A continuation of the question statement, but only directly
			// after the question line.
			if len(q.Options) == 0 && !strings.HasPrefix(current, "你") {
				q.Text += current
			}

			return q, i + 1
		}
	}

	return q, i
}

// isAnswerLine reports whether the line records the examinee's answer.
func isAnswerLine(s string) bool {
	return strings.HasPrefix(s, answeredPrefix) || strings.HasPrefix(s, unansweredPrefix)
}

// parseAnswerLine extracts the user and reference answers from an answer line.
// Without a reference marker an answered line means the answer was correct.
func parseAnswerLine(line string) (userAnswer, correctAnswer string) {
	if strings.Contains(line, correctMarker) {
		parts := strings.SplitN(line, correctMarker, 2)

		switch {
		case strings.HasPrefix(parts[0], answeredMarker):
			userAnswer = strings.TrimSpace(strings.TrimPrefix(parts[0], answeredMarker))
		case strings.HasPrefix(parts[0], unansweredPrefix):
			userAnswer = unansweredValue
		}

		correctAnswer = strings.TrimSpace(parts[1])

		return userAnswer, correctAnswer
	}

	switch {
	case strings.HasPrefix(line, answeredMarker):
		userAnswer = strings.TrimSpace(strings.TrimPrefix(line, answeredMarker))
		correctAnswer = userAnswer
	case strings.HasPrefix(line, unansweredPrefix):
		userAnswer = unansweredValue
	}

	return userAnswer, correctAnswer
}
