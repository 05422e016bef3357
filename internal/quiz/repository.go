package quiz

import (
	"log"

	"gorm.io/gorm"

	"aptlearn-server/internal/models"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// SaveAttempt records a submission. Attempts are append-only history.
func (r *Repository) SaveAttempt(attempt *models.Attempt) error {
	err := r.db.Create(attempt).Error
	if err != nil {
		log.Printf("Error saving attempt for user %s day %d: %v", attempt.UserID, attempt.DayNumber, err)
		return err
	}
	return nil
}

func (r *Repository) GetProgress(userID string) (*models.Progress, error) {
	var progress models.Progress
	err := r.db.Where("user_id = ?", userID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *Repository) SaveProgress(progress *models.Progress) error {
	err := r.db.Save(progress).Error
	if err != nil {
		log.Printf("Error updating progress for user %s: %v", progress.UserID, err)
		return err
	}
	return nil
}
