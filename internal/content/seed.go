package content

import (
	"fmt"
	"log"

	"aptlearn-server/internal/models"
)

const seedVideoURL = "https://www.youtube.com/embed/dQw4w9WgXcQ"

// Seed populates modules, days and questions if the store is empty. It is
// idempotent: any existing module row makes it a no-op.
func Seed(repo *Repository) error {
	count, err := repo.CountModules()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	modules := []models.Module{
		{Key: "aptitude", Title: "Aptitude", Order: 1},
		{Key: "technical", Title: "Technical", Order: 2},
		{Key: "hr", Title: "HR", Order: 3},
	}
	if err := repo.InsertModules(modules); err != nil {
		return err
	}

	// 15 days: 1-5 aptitude, 6-10 technical, 11-15 HR.
	for d := 1; d <= 15; d++ {
		var moduleKey, title string
		switch {
		case d <= 5:
			moduleKey = "aptitude"
			title = fmt.Sprintf("Aptitude Day %d", d)
		case d <= 10:
			moduleKey = "technical"
			title = fmt.Sprintf("Technical Day %d", d-5)
		default:
			moduleKey = "hr"
			title = fmt.Sprintf("HR Day %d", d-10)
		}

		day := &models.Day{
			DayNumber: d,
			ModuleKey: moduleKey,
			Title:     title,
			VideoURL:  seedVideoURL,
			Notes:     fmt.Sprintf("Concise notes for %s. Key concepts, examples, and tips.", title),
		}
		if err := repo.InsertDay(day); err != nil {
			return err
		}

		// 5 simple MCQs per day; the correct option cycles over the 4 choices.
		questions := make([]models.Question, 0, 5)
		for i := 1; i <= 5; i++ {
			questions = append(questions, models.Question{
				DayNumber:   d,
				Prompt:      fmt.Sprintf("Question %d for Day %d: Choose the correct option.", i, d),
				Options:     []string{"Option A", "Option B", "Option C", "Option D"},
				AnswerIndex: (i - 1) % 4,
			})
		}
		if err := repo.InsertQuestions(questions); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d modules, 15 days, 75 questions", len(modules))
	return nil
}
