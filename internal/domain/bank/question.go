package bank

import "encoding/json"

// Question types as they appear in the source transcripts.
const (
	// TypeJudgment marks a true/false question.
	TypeJudgment = "判断题"
	// TypeChoice marks a multiple-choice question.
	TypeChoice = "选择题"
)

// Question represents a single entry of the question bank.
type Question struct {
	// Text is the question statement.
	Text string `json:"question_text"`
	// Options holds the choice lines for multiple-choice questions, empty otherwise.
	Options []string `json:"options"`
	// UserAnswer is the answer recorded in the source transcript, if any.
	UserAnswer string `json:"user_answer"`
	// CorrectAnswer is the reference answer, empty when the transcript had none.
	CorrectAnswer string `json:"correct_answer"`
	// Type is one of TypeJudgment or TypeChoice.
	Type string `json:"question_type"`
}

// MarshalJSON emits the exact questions.json shape the bundled application
// reads: options is always an array and absent answers are null.
func (q *Question) MarshalJSON() ([]byte, error) {
	type questionJSON struct {
		Text          string   `json:"question_text"`
		Options       []string `json:"options"`
		UserAnswer    *string  `json:"user_answer"`
		CorrectAnswer *string  `json:"correct_answer"`
		Type          string   `json:"question_type"`
	}

	out := questionJSON{
		Text:    q.Text,
		Options: q.Options,
		Type:    q.Type,
	}

	if out.Options == nil {
		out.Options = []string{}
	}

	if q.UserAnswer != "" {
		out.UserAnswer = &q.UserAnswer
	}

	if q.CorrectAnswer != "" {
		out.CorrectAnswer = &q.CorrectAnswer
	}

	return json.Marshal(out)
}

// Clone returns a deep copy of the question.
func (q *Question) Clone() *Question {
	if q == nil {
		return nil
	}

	cloned := *q
	cloned.Options = append([]string(nil), q.Options...)

	return &cloned
}

// Bank is an ordered collection of questions.
type Bank []*Question

// Counts returns the number of judgment and choice questions.
func (b Bank) Counts() (judgment, choice int) {
	for _, q := range b {
		if q.Type == TypeChoice {
			choice++
		} else {
			judgment++
		}
	}

	return judgment, choice
}
