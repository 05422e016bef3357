package user

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

func (r *Repository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(user *models.User) error {
	err := r.db.Create(user).Error
	if err != nil {
		log.Printf("Error creating user: %v", err)
		return err
	}
	return nil
}

func (r *Repository) CreateProgress(progress *models.Progress) error {
	err := r.db.Create(progress).Error
	if err != nil {
		log.Printf("Error creating progress for user %s: %v", progress.UserID, err)
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
