package models

import (
	"time"
)

type Module struct {
	ID    uint   `json:"-" gorm:"primaryKey"`
	Key   string `json:"key" gorm:"uniqueIndex;not null"`
	Title string `json:"title" gorm:"not null"`
	Order int    `json:"order" gorm:"not null"`
}

func (Module) TableName() string {
	return "module"
}

type Day struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	DayNumber int       `json:"day_number" gorm:"uniqueIndex;not null"`
	ModuleKey string    `json:"module_key" gorm:"not null"`
	Title     string    `json:"title" gorm:"not null"`
	VideoURL  string    `json:"video_url"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Day) TableName() string {
	return "day"
}

type Question struct {
	ID          uint      `json:"-" gorm:"primaryKey"`
	DayNumber   int       `json:"day_number" gorm:"index;not null"`
	Prompt      string    `json:"prompt" gorm:"not null"`
	Options     []string  `json:"options" gorm:"serializer:json"`
	AnswerIndex int       `json:"answer_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Question) TableName() string {
	return "question"
}

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "user"
}

type Progress struct {
	ID            uint      `json:"-" gorm:"primaryKey"`
	UserID        string    `json:"user_id" gorm:"uniqueIndex;not null"`
	CompletedDays []int     `json:"completed_days" gorm:"serializer:json"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

func (Progress) TableName() string {
	return "progress"
}

// Attempt is append-only: one row per submission, never updated or deduplicated.
type Attempt struct {
	ID         uint      `json:"-" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"index;not null"`
	DayNumber  int       `json:"day_number" gorm:"not null"`
	Answers    []int     `json:"answers" gorm:"serializer:json"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Violations int       `json:"violations"`
	Flagged    bool      `json:"flagged"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Attempt) TableName() string {
	return "attempt"
}

type Certificate struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"not null"`
	IssuedAt  string    `json:"issued_at" gorm:"not null"`
	SVG       string    `json:"svg" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

func (Certificate) TableName() string {
	return "certificate"
}
