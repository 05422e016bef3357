package user

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aptlearn-server/internal/models"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// CreateOrGet registers a user by email, or returns the existing identity
// unchanged when the email is already known (the submitted name is ignored
// in that case). New users get an empty progress record alongside; the two
// writes are not transactional.
func (s *Service) CreateOrGet(name, email string) (*models.UserDTO, error) {
	existing, err := s.repo.GetByEmail(email)
	if err == nil {
		dto := existing.ToDTO()
		return &dto, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newUser := &models.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
	}
	if err := s.repo.Create(newUser); err != nil {
		return nil, err
	}

	progress := &models.Progress{
		UserID:        newUser.ID,
		CompletedDays: []int{},
	}
	if err := s.repo.CreateProgress(progress); err != nil {
		log.Printf("Error creating progress record for new user %s: %v", newUser.ID, err)
		return nil, err
	}

	dto := newUser.ToDTO()
	return &dto, nil
}

// GetProgress never fails with not-found: an unknown user gets the default
// empty progress.
func (s *Service) GetProgress(userID string) (*models.Progress, error) {
	progress, err := s.repo.GetProgress(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Progress{
				UserID:        userID,
				CompletedDays: []int{},
			}, nil
		}
		return nil, err
	}

	if progress.CompletedDays == nil {
		progress.CompletedDays = []int{}
	}
	return progress, nil
}
