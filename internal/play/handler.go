package play

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

func (h *Handler) RegisterRoutes(api *mux.Router) {
	api.HandleFunc("/play/{quiz_id:[0-9]+}", h.GetPlayQuiz).Methods(http.MethodGet)
	api.HandleFunc("/play/{quiz_id:[0-9]+}/answer", h.SubmitAnswer).Methods(http.MethodPost)

	api.HandleFunc("/quizzes/{quiz_id:[0-9]+}/responses", h.GetResponses).Methods(http.MethodGet)
	api.HandleFunc("/quizzes/{quiz_id:[0-9]+}/results", h.GetResults).Methods(http.MethodGet)
	api.HandleFunc("/quizzes/{quiz_id:[0-9]+}/live", h.GetLiveTally).Methods(http.MethodGet)
}

func (h *Handler) GetPlayQuiz(w http.ResponseWriter, r *http.Request) {
	quizID, ok := quizIDFromPath(w, r)
	if !ok {
		return
	}

	quiz, err := h.service.GetPlayQuiz(quizID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, quiz)
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	quizID, ok := quizIDFromPath(w, r)
	if !ok {
		return
	}

	var req models.AnswerRequest
	if !httpx.Decode(w, r, &req) {
		return
	}

	response, err := h.service.SubmitAnswer(quizID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, models.AnswerResponse{OK: true, SessionID: response.SessionID})
}

func (h *Handler) GetResponses(w http.ResponseWriter, r *http.Request) {
	quizID, ok := quizIDFromPath(w, r)
	if !ok {
		return
	}

	responses, err := h.service.GetQuizResponses(quizID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, responses)
}

func (h *Handler) GetResults(w http.ResponseWriter, r *http.Request) {
	quizID, ok := quizIDFromPath(w, r)
	if !ok {
		return
	}

	results, err := h.service.GetResults(quizID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, results)
}

func (h *Handler) GetLiveTally(w http.ResponseWriter, r *http.Request) {
	quizID, ok := quizIDFromPath(w, r)
	if !ok {
		return
	}

	tally, err := h.service.GetLiveTally(quizID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, tally)
}

func quizIDFromPath(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := httpx.PathID(r, "quiz_id")
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
	case errors.Is(err, ErrTallyDisabled):
		httpx.Error(w, http.StatusServiceUnavailable, err.Error())
	default:
		log.Printf("Request failed: %v", err)
		httpx.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
