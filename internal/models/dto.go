package models

// QuestionDTO is the client-facing question shape. It never carries the
// correct answer index.
type QuestionDTO struct {
	DayNumber int      `json:"day_number"`
	Prompt    string   `json:"prompt"`
	Options   []string `json:"options"`
}

type QuizDTO struct {
	DayNumber int           `json:"day_number"`
	Questions []QuestionDTO `json:"questions"`
}

func (q Question) ToDTO() QuestionDTO {
	return QuestionDTO{
		DayNumber: q.DayNumber,
		Prompt:    q.Prompt,
		Options:   q.Options,
	}
}

type UserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) ToDTO() UserDTO {
	return UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// AttemptResult is the response body for a scored submission.
type AttemptResult struct {
	Score      int  `json:"score"`
	Total      int  `json:"total"`
	Passed     bool `json:"passed"`
	Flagged    bool `json:"flagged"`
	Violations int  `json:"violations"`
}
