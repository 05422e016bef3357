package quiz

import (
	"errors"

	"gorm.io/gorm"

	"aptlearn-server/internal/certificate"
	"aptlearn-server/internal/content"
	"aptlearn-server/internal/models"
)

var ErrNoQuestions = errors.New("no questions for this day")

// passThreshold is the minimum score ratio for a passing attempt.
const passThreshold = 0.6

type Service struct {
	content *content.Service
	repo    *Repository
	certs   *certificate.Service
}

func NewService(content *content.Service, repo *Repository, certs *certificate.Service) *Service {
	return &Service{
		content: content,
		repo:    repo,
		certs:   certs,
	}
}

// SubmitAttempt scores a submission against the day's questions, records it
// unconditionally, and on a pass marks the day complete. Once 15 days are
// complete the certificate issuer fires.
func (s *Service) SubmitAttempt(userID string, dayNumber int, answers []int, violations int) (*models.AttemptResult, error) {
	questions, err := s.content.GetQuestions(dayNumber)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	total := len(questions)
	score := 0
	for i, q := range questions {
		// positions beyond the submitted answers are simply not credited
		if i < len(answers) && answers[i] == q.AnswerIndex {
			score++
		}
	}

	flagged := violations > 0

	attempt := &models.Attempt{
		UserID:     userID,
		DayNumber:  dayNumber,
		Answers:    answers,
		Score:      score,
		Total:      total,
		Violations: violations,
		Flagged:    flagged,
	}
	if err := s.repo.SaveAttempt(attempt); err != nil {
		return nil, err
	}

	// a flagged attempt never passes, regardless of score
	passed := float64(score)/float64(total) >= passThreshold && !flagged

	if passed {
		if err := s.markDayComplete(userID, dayNumber); err != nil {
			return nil, err
		}
	}

	if err := s.maybeIssueCertificate(userID); err != nil {
		return nil, err
	}

	return &models.AttemptResult{
		Score:      score,
		Total:      total,
		Passed:     passed,
		Flagged:    flagged,
		Violations: violations,
	}, nil
}

func (s *Service) markDayComplete(userID string, dayNumber int) error {
	progress, err := s.repo.GetProgress(userID)
	if err != nil {
		// no registry record means nothing to update
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	for _, d := range progress.CompletedDays {
		if d == dayNumber {
			return nil
		}
	}

	progress.CompletedDays = append(progress.CompletedDays, dayNumber)
	return s.repo.SaveProgress(progress)
}

func (s *Service) maybeIssueCertificate(userID string) error {
	progress, err := s.repo.GetProgress(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if len(progress.CompletedDays) < 15 {
		return nil
	}
	return s.certs.IssueIfAbsent(userID)
}
