package bank

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestQuestionJSONShape pins the serialized layout consumed by the bundled
// application: options is an array even when empty, absent answers are null.
func TestQuestionJSONShape(t *testing.T) {
	t.Parallel()

	q := &Question{
		Text: "运动前要做好充分的准备活动。",
		Type: TypeJudgment,
	}

	data, err := json.Marshal(q)
	require.NoError(t, err)
	require.Contains(t, string(data), `"options":[]`)
	require.Contains(t, string(data), `"user_answer":null`)
	require.Contains(t, string(data), `"correct_answer":null`)

	q = &Question{
		Text:          "下列哪项属于有氧运动？",
		Options:       []string{"A、举重", "B、慢跑"},
		UserAnswer:    "A",
		CorrectAnswer: "B",
		Type:          TypeChoice,
	}

	data, err = json.Marshal(q)
	require.NoError(t, err)
	require.Contains(t, string(data), `"options":["A、举重","B、慢跑"]`)
	require.Contains(t, string(data), `"user_answer":"A"`)
	require.Contains(t, string(data), `"correct_answer":"B"`)
}

// TestQuestionClone verifies that Clone returns a deep copy and handles nil safely.
func TestQuestionClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*Question)(nil).Clone())

	q := &Question{
		Text:          "下列哪项属于有氧运动？",
		Options:       []string{"A、举重", "B、慢跑"},
		CorrectAnswer: "B",
		Type:          TypeChoice,
	}

	c := q.Clone()

	require.Equal(t, q, c)
	require.NotSame(t, q, c)

	// Ensure the options slice is cloned.
	c.Options[0] = "A、跳远"
	require.Equal(t, "A、举重", q.Options[0])
}

// TestBankCounts verifies judgment/choice totals.
func TestBankCounts(t *testing.T) {
	t.Parallel()

	b := Bank{
		{Text: "运动前要做准备活动。", Type: TypeJudgment},
		{Text: "下列哪项属于有氧运动？", Type: TypeChoice},
		{Text: "剧烈运动后应立即大量饮水。", Type: TypeJudgment},
	}

	judgment, choice := b.Counts()
	require.Equal(t, 2, judgment)
	require.Equal(t, 1, choice)
}
