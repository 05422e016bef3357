package content

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"aptlearn-server/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Module{},
		&models.Day{},
		&models.Question{},
	))
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, Seed(repo))
	require.NoError(t, Seed(repo))

	var modules, days, questions int64
	require.NoError(t, db.Model(&models.Module{}).Count(&modules).Error)
	require.NoError(t, db.Model(&models.Day{}).Count(&days).Error)
	require.NoError(t, db.Model(&models.Question{}).Count(&questions).Error)

	assert.EqualValues(t, 3, modules)
	assert.EqualValues(t, 15, days)
	assert.EqualValues(t, 75, questions)
}

func TestSeedAnswerIndexCycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	require.NoError(t, Seed(repo))

	for _, day := range []int{1, 7, 15} {
		questions, err := repo.GetDayQuestions(day)
		require.NoError(t, err)
		require.Len(t, questions, 5)

		indices := make([]int, len(questions))
		for i, q := range questions {
			indices[i] = q.AnswerIndex
		}
		assert.Equal(t, []int{0, 1, 2, 3, 0}, indices, "day %d", day)
	}
}

func TestSeedDayModuleAssignment(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	require.NoError(t, Seed(repo))

	cases := []struct {
		dayNumber int
		moduleKey string
		title     string
	}{
		{1, "aptitude", "Aptitude Day 1"},
		{5, "aptitude", "Aptitude Day 5"},
		{6, "technical", "Technical Day 1"},
		{10, "technical", "Technical Day 5"},
		{11, "hr", "HR Day 1"},
		{15, "hr", "HR Day 5"},
	}
	for _, tc := range cases {
		day, err := repo.GetDayByNumber(tc.dayNumber)
		require.NoError(t, err)
		assert.Equal(t, tc.moduleKey, day.ModuleKey)
		assert.Equal(t, tc.title, day.Title)
	}
}

func TestListModulesOrdered(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	require.NoError(t, Seed(repo))

	modules, err := repo.ListModules()
	require.NoError(t, err)
	require.Len(t, modules, 3)

	assert.Equal(t, "aptitude", modules[0].Key)
	assert.Equal(t, "technical", modules[1].Key)
	assert.Equal(t, "hr", modules[2].Key)
}
