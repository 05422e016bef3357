package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service  *Service
	validate *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
	}
}

type AttemptRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	DayNumber  int    `json:"day_number" validate:"required,min=1"`
	Answers    []int  `json:"answers"`
	Violations int    `json:"violations" validate:"min=0"`
}

func (h *Handler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	var req AttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.SubmitAttempt(req.UserID, req.DayNumber, req.Answers, req.Violations)
	if err != nil {
		if errors.Is(err, ErrNoQuestions) {
			http.Error(w, "No questions for this day", http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
