package certificate

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

func (r *Repository) GetByUserID(userID string) (*models.Certificate, error) {
	var cert models.Certificate
	err := r.db.Where("user_id = ?", userID).First(&cert).Error
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *Repository) Create(cert *models.Certificate) error {
	err := r.db.Create(cert).Error
	if err != nil {
		log.Printf("Error creating certificate for user %s: %v", cert.UserID, err)
		return err
	}
	log.Printf("Issued certificate for user %s", cert.UserID)
	return nil
}

func (r *Repository) GetUserByID(userID string) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", userID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetAnyUserWithEmail() (*models.User, error) {
	var user models.User
	err := r.db.Where("email <> ''").First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
