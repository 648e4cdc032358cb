package bankgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ff66ccff/SearchForPE/internal/domain/bank"
)

// TestParseTranscript covers the three answer-line shapes the exports use.
func TestParseTranscript(t *testing.T) {
	t.Parallel()

	transcript := strings.Join([]string{
		"1、运动前要做好充分的准备活动。",
		"你的答案：正确",
		"",
		"2、下列哪项属于有氧运动？",
		"A、举重",
		"B、慢跑",
		"C、百米冲刺",
		"你的答案：A 标准答案：B",
		"",
		"3、剧烈运动后可以立即洗冷水澡。",
		"你未作答 标准答案：错误",
	}, "\n")

	questions, err := ParseTranscript(strings.NewReader(transcript))
	require.NoError(t, err)
	require.Len(t, questions, 3)

	q := questions[0]
	require.Equal(t, "1、运动前要做好充分的准备活动。", q.Text)
	require.Equal(t, bank.TypeJudgment, q.Type)
	require.Empty(t, q.Options)
	// No reference marker means the recorded answer was correct.
	require.Equal(t, "正确", q.UserAnswer)
	require.Equal(t, "正确", q.CorrectAnswer)

	q = questions[1]
	require.Equal(t, bank.TypeChoice, q.Type)
	require.Equal(t, []string{"A、举重", "B、慢跑", "C、百米冲刺"}, q.Options)
	require.Equal(t, "A", q.UserAnswer)
	require.Equal(t, "B", q.CorrectAnswer)

	q = questions[2]
	require.Equal(t, bank.TypeJudgment, q.Type)
	require.Equal(t, "未作答", q.UserAnswer)
	require.Equal(t, "错误", q.CorrectAnswer)
}

// TestParseTranscriptContinuationLine verifies a wrapped statement is folded
// into the question text.
func TestParseTranscriptContinuationLine(t *testing.T) {
	t.Parallel()

	transcript := strings.Join([]string{
		"4、长期坚持体育锻炼能够增强",
		"心肺功能。",
		"你的答案：正确",
	}, "\n")

	questions, err := ParseTranscript(strings.NewReader(transcript))
	require.NoError(t, err)
	require.Len(t, questions, 1)
	require.Equal(t, "4、长期坚持体育锻炼能够增强心肺功能。", questions[0].Text)
}

// TestParseTranscriptIgnoresStrayLines verifies lines without a nearby answer
// line never become questions.
func TestParseTranscriptIgnoresStrayLines(t *testing.T) {
	t.Parallel()

	transcript := strings.Join([]string{
		"体育理论考试成绩单",
		"",
		"考试时间：60分钟",
	}, "\n")

	questions, err := ParseTranscript(strings.NewReader(transcript))
	require.NoError(t, err)
	require.Empty(t, questions)
}

// TestParseAnswerLine exercises the answer-line forms directly.
func TestParseAnswerLine(t *testing.T) {
	t.Parallel()

	user, correct := parseAnswerLine("你的答案：正确")
	require.Equal(t, "正确", user)
	require.Equal(t, "正确", correct)

	user, correct = parseAnswerLine("你的答案：A 标准答案：B")
	require.Equal(t, "A", user)
	require.Equal(t, "B", correct)

	user, correct = parseAnswerLine("你未作答 标准答案：C")
	require.Equal(t, "未作答", user)
	require.Equal(t, "C", correct)

	user, correct = parseAnswerLine("你未作答")
	require.Equal(t, "未作答", user)
	require.Empty(t, correct)
}
