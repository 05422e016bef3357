package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededService(t *testing.T) *Service {
	t.Helper()

	repo := NewRepository(newTestDB(t))
	require.NoError(t, Seed(repo))
	return NewService(repo, nil)
}

func TestGetQuizStripsAnswerIndex(t *testing.T) {
	service := newSeededService(t)

	quiz, err := service.GetQuiz(3)
	require.NoError(t, err)
	assert.Equal(t, 3, quiz.DayNumber)
	require.Len(t, quiz.Questions, 5)

	body, err := json.Marshal(quiz)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "answer_index")
}

func TestGetQuizUnknownDay(t *testing.T) {
	service := newSeededService(t)

	_, err := service.GetQuiz(99)
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestGetDay(t *testing.T) {
	service := newSeededService(t)

	day, err := service.GetDay(8)
	require.NoError(t, err)
	assert.Equal(t, "technical", day.ModuleKey)

	_, err = service.GetDay(42)
	assert.ErrorIs(t, err, ErrDayNotFound)
}

func TestListDaysModuleFilter(t *testing.T) {
	service := newSeededService(t)

	all, err := service.ListDays("")
	require.NoError(t, err)
	require.Len(t, all, 15)
	for i, day := range all {
		assert.Equal(t, i+1, day.DayNumber)
	}

	hr, err := service.ListDays("hr")
	require.NoError(t, err)
	require.Len(t, hr, 5)
	assert.Equal(t, 11, hr[0].DayNumber)
	assert.Equal(t, 15, hr[4].DayNumber)
}
