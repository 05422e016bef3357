package content

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

func (r *Repository) CountModules() (int64, error) {
	var count int64
	err := r.db.Model(&models.Module{}).Count(&count).Error
	return count, err
}

func (r *Repository) InsertModules(modules []models.Module) error {
	return r.db.Create(&modules).Error
}

func (r *Repository) InsertDay(day *models.Day) error {
	return r.db.Create(day).Error
}

func (r *Repository) InsertQuestions(questions []models.Question) error {
	return r.db.Create(&questions).Error
}

func (r *Repository) ListModules() ([]models.Module, error) {
	var modules []models.Module
	err := r.db.Order(`"order" asc`).Find(&modules).Error
	if err != nil {
		log.Printf("Error listing modules: %v", err)
		return nil, err
	}
	return modules, nil
}

func (r *Repository) ListDays(moduleKey string) ([]models.Day, error) {
	query := r.db.Order("day_number asc")
	if moduleKey != "" {
		query = query.Where("module_key = ?", moduleKey)
	}

	var days []models.Day
	err := query.Find(&days).Error
	if err != nil {
		log.Printf("Error listing days: %v", err)
		return nil, err
	}
	return days, nil
}

func (r *Repository) GetDayByNumber(dayNumber int) (*models.Day, error) {
	var day models.Day
	err := r.db.Where("day_number = ?", dayNumber).First(&day).Error
	if err != nil {
		return nil, err
	}
	return &day, nil
}

// GetDayQuestions returns the day's questions in insertion order. Scoring
// relies on this order matching the one used at seed time.
func (r *Repository) GetDayQuestions(dayNumber int) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.Where("day_number = ?", dayNumber).
		Order("id asc").
		Find(&questions).Error
	if err != nil {
		log.Printf("Error getting questions for day %d: %v", dayNumber, err)
		return nil, err
	}
	return questions, nil
}
