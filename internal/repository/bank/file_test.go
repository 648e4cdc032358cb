package bank

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/ff66ccff/SearchForPE/internal/domain/bank"
)

// TestLoadMissingFile ensures ErrNotFound is returned for an absent bank file.
func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "questions.json"))

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
}

// TestSaveLoadRoundtrip ensures the bank survives a write/read cycle unchanged.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewFileRepository(filepath.Join(t.TempDir(), "questions.json"))

	b := domain.Bank{
		{
			Text:          "运动前要做好充分的准备活动。",
			Options:       []string{},
			UserAnswer:    "正确",
			CorrectAnswer: "正确",
			Type:          domain.TypeJudgment,
		},
		{
			Text:          "下列哪项属于有氧运动？",
			Options:       []string{"A、举重", "B、慢跑", "C、百米冲刺"},
			UserAnswer:    "未作答",
			CorrectAnswer: "B",
			Type:          domain.TypeChoice,
		},
	}

	require.NoError(t, repo.Save(ctx, b))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, b, loaded)
}

// TestSaveWritesOriginalArtifactShape pins the on-disk layout: a judgment
// question carries an empty options array, and a question without recorded
// answers carries nulls.
func TestSaveWritesOriginalArtifactShape(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "questions.json")
	repo := NewFileRepository(path)

	b := domain.Bank{
		{
			Text: "运动前要做好充分的准备活动。",
			Type: domain.TypeJudgment,
		},
	}

	require.NoError(t, repo.Save(ctx, b))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	data := string(contents)
	require.Contains(t, data, `"options": []`)
	require.NotContains(t, data, `"options": null`)
	require.Contains(t, data, `"user_answer": null`)
	require.Contains(t, data, `"correct_answer": null`)
}
