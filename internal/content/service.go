package content

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"aptlearn-server/internal/models"
	"aptlearn-server/pkg/cache"
)

var (
	ErrDayNotFound  = errors.New("day not found")
	ErrQuizNotFound = errors.New("quiz not found for this day")
)

type Service struct {
	repo  *Repository
	cache *cache.RedisCache
}

func NewService(repo *Repository, cache *cache.RedisCache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

func (s *Service) ListModules() ([]models.Module, error) {
	return s.repo.ListModules()
}

func (s *Service) ListDays(moduleKey string) ([]models.Day, error) {
	return s.repo.ListDays(moduleKey)
}

func (s *Service) GetDay(dayNumber int) (*models.Day, error) {
	day, err := s.repo.GetDayByNumber(dayNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}
	return day, nil
}

// GetQuestions returns the full question set for a day, reading through the
// redis cache when one is configured. Cache failures fall back to the store.
func (s *Service) GetQuestions(dayNumber int) ([]models.Question, error) {
	if s.cache != nil {
		questions, err := s.cache.GetDayQuestions(dayNumber)
		if err == nil && len(questions) > 0 {
			return questions, nil
		}
	}

	questions, err := s.repo.GetDayQuestions(dayNumber)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && len(questions) > 0 {
		if err := s.cache.SetDayQuestions(dayNumber, questions); err != nil {
			log.Printf("Error caching questions for day %d: %v", dayNumber, err)
		}
	}
	return questions, nil
}

// GetQuiz returns the day's questions with the answer index stripped.
func (s *Service) GetQuiz(dayNumber int) (*models.QuizDTO, error) {
	questions, err := s.GetQuestions(dayNumber)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrQuizNotFound
	}

	dtos := make([]models.QuestionDTO, len(questions))
	for i, q := range questions {
		dtos[i] = q.ToDTO()
	}

	return &models.QuizDTO{
		DayNumber: dayNumber,
		Questions: dtos,
	}, nil
}
