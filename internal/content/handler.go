package content

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetModules(w http.ResponseWriter, r *http.Request) {
	modules, err := h.service.ListModules()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(modules)
}

func (h *Handler) GetDays(w http.ResponseWriter, r *http.Request) {
	moduleKey := r.URL.Query().Get("module_key")

	days, err := h.service.ListDays(moduleKey)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(days)
}

func (h *Handler) GetDay(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dayNumber, err := strconv.Atoi(vars["dayNumber"])
	if err != nil {
		http.Error(w, "Invalid day number", http.StatusBadRequest)
		return
	}

	day, err := h.service.GetDay(dayNumber)
	if err != nil {
		if errors.Is(err, ErrDayNotFound) {
			http.Error(w, "Day not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(day)
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dayNumber, err := strconv.Atoi(vars["dayNumber"])
	if err != nil {
		http.Error(w, "Invalid day number", http.StatusBadRequest)
		return
	}

	quiz, err := h.service.GetQuiz(dayNumber)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			http.Error(w, "Quiz not found for this day", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(quiz)
}
