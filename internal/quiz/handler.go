package quiz

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"quiz-embed/internal/httpx"
	"quiz-embed/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the admin endpoints on an /api subrouter.
func (h *Handler) RegisterRoutes(api *mux.Router) {
	api.HandleFunc("/quizzes", h.ListQuizzes).Methods(http.MethodGet)
	api.HandleFunc("/quizzes", h.CreateQuiz).Methods(http.MethodPost)
	api.HandleFunc("/quizzes/{id:[0-9]+}", h.GetQuiz).Methods(http.MethodGet)
	api.HandleFunc("/quizzes/{id:[0-9]+}", h.UpdateQuiz).Methods(http.MethodPut)
	api.HandleFunc("/quizzes/{id:[0-9]+}", h.DeleteQuiz).Methods(http.MethodDelete)

	api.HandleFunc("/questions", h.CreateQuestion).Methods(http.MethodPost)
	api.HandleFunc("/questions/{id:[0-9]+}", h.UpdateQuestion).Methods(http.MethodPut)
	api.HandleFunc("/questions/{id:[0-9]+}", h.DeleteQuestion).Methods(http.MethodDelete)

	api.HandleFunc("/choices", h.CreateChoice).Methods(http.MethodPost)
	api.HandleFunc("/choices/{id:[0-9]+}", h.UpdateChoice).Methods(http.MethodPut)
	api.HandleFunc("/choices/{id:[0-9]+}", h.DeleteChoice).Methods(http.MethodDelete)
}

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.service.ListQuizzes()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, quizzes)
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuizRequest
	if !httpx.Decode(w, r, &req) {
		return
	}

	quiz, err := h.service.CreateQuiz(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, quiz)
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	detail, err := h.service.GetQuizDetail(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, detail)
}

func (h *Handler) UpdateQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.UpdateQuizRequest
	if !httpx.Decode(w, r, &req) {
		return
	}

	quiz, err := h.service.UpdateQuiz(id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, quiz)
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteQuiz(id); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.OK(w)
}

func (h *Handler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if !httpx.Decode(w, r, &req) {
		return
	}

	question, err := h.service.CreateQuestion(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, question)
}

func (h *Handler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.UpdateQuestionRequest
	if !httpx.Decode(w, r, &req) {
		return
	}

	question, err := h.service.UpdateQuestion(id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, question)
}

func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteQuestion(id); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.OK(w)
}

func (h *Handler) CreateChoice(w http.ResponseWriter, r *http.Request) {
	var req models.CreateChoiceRequest
	if !httpx.Decode(w, r, &req) {
		return
	}

	choice, err := h.service.CreateChoice(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, choice)
}

func (h *Handler) UpdateChoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.UpdateChoiceRequest
	if !httpx.Decode(w, r, &req) {
		return
	}

	choice, err := h.service.UpdateChoice(id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, choice)
}

func (h *Handler) DeleteChoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteChoice(id); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.OK(w)
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrQuizNotFound):
		httpx.Error(w, http.StatusNotFound, "quiz not found")
	case errors.Is(err, ErrQuestionNotFound):
		httpx.Error(w, http.StatusNotFound, "question not found")
	case errors.Is(err, ErrChoiceNotFound):
		httpx.Error(w, http.StatusNotFound, "choice not found")
	default:
		log.Printf("Request failed: %v", err)
		httpx.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
