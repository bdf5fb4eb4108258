package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesSorted(t *testing.T) {
	assert.Equal(t, []string{"go", "javascript", "python"}, Names())
}

func TestGet(t *testing.T) {
	a, ok := Get("go")
	require.True(t, ok)
	assert.Equal(t, "Go", a.Name)
	assert.Len(t, a.Questions, 5)

	_, ok = Get("cobol")
	assert.False(t, ok)
}

func TestQuestionBanksAreWellFormed(t *testing.T) {
	for _, name := range Names() {
		a, _ := Get(name)
		for i, q := range a.Questions {
			assert.NotEmpty(t, q.Prompt, "%s question %d", name, i)
			assert.GreaterOrEqual(t, len(q.Options), 2, "%s question %d", name, i)
			assert.GreaterOrEqual(t, q.Correct, 0, "%s question %d", name, i)
			assert.Less(t, q.Correct, len(q.Options), "%s question %d", name, i)
		}
	}
}

func TestScore(t *testing.T) {
	a, _ := Get("go")

	perfect := make([]int, len(a.Questions))
	for i, q := range a.Questions {
		perfect[i] = q.Correct
	}
	assert.Equal(t, len(a.Questions), Score(a, perfect))

	wrong := make([]int, len(a.Questions))
	for i, q := range a.Questions {
		wrong[i] = (q.Correct + 1) % len(q.Options)
	}
	assert.Equal(t, 0, Score(a, wrong))

	// Short answer slices score the answered prefix only.
	assert.Equal(t, 1, Score(a, perfect[:1]))

	// Extra answers beyond the question list are ignored.
	assert.Equal(t, len(a.Questions), Score(a, append(perfect, 0, 0)))
}

func TestLevel(t *testing.T) {
	tests := []struct {
		score, total int
		want         string
	}{
		{5, 5, "Expert"},
		{4, 5, "Expert"},
		{3, 5, "Proficient"},
		{2, 5, "Intermediate"},
		{1, 5, "Beginner"},
		{0, 5, "Beginner"},
		{0, 0, "No questions"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Level(tt.score, tt.total), "%d/%d", tt.score, tt.total)
	}
}
