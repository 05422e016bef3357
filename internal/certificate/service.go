package certificate

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"aptlearn-server/internal/models"
)

var ErrNotIssued = errors.New("certificate not issued yet")

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// IssueIfAbsent creates the user's certificate unless one already exists.
// Issuance happens at most once per user.
func (s *Service) IssueIfAbsent(userID string) error {
	_, err := s.repo.GetByUserID(userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	name := s.resolveName(userID)
	issuedAt := time.Now().UTC().Format("2006-01-02 15:04 UTC")

	cert := &models.Certificate{
		UserID:   userID,
		Name:     name,
		IssuedAt: issuedAt,
		SVG:      RenderSVG(name, issuedAt),
	}
	return s.repo.Create(cert)
}

// resolveName falls back from the user's own record to any user row carrying
// an email, then to a fixed placeholder. The arbitrary-record fallback
// mirrors the original behavior and is kept for compatibility.
func (s *Service) resolveName(userID string) string {
	if user, err := s.repo.GetUserByID(userID); err == nil && user.Name != "" {
		return user.Name
	}
	if user, err := s.repo.GetAnyUserWithEmail(); err == nil && user.Name != "" {
		return user.Name
	}
	return "Participant"
}

func (s *Service) Get(userID string) (*models.Certificate, error) {
	cert, err := s.repo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotIssued
		}
		return nil, err
	}
	return cert, nil
}
