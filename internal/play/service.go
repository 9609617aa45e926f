package play

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"quiz-embed/internal/models"
)

var ErrTallyDisabled = errors.New("live tally is not configured")

// Tally keeps running per-quiz counters outside the database.
type Tally interface {
	RecordResponse(response *models.Response) error
	GetTally(quizID uint) (map[string]int64, error)
}

// Broadcaster pushes recorded responses to live subscribers of a quiz.
type Broadcaster interface {
	BroadcastResponse(quizID uint, response *models.Response)
}

type Service struct {
	repo  *Repository
	tally Tally
	feed  Broadcaster
}

// NewService accepts nil for tally and feed when those are not running.
func NewService(repo *Repository, tally Tally, feed Broadcaster) *Service {
	return &Service{
		repo:  repo,
		tally: tally,
		feed:  feed,
	}
}

func (s *Service) GetPlayQuiz(quizID uint) (*models.PlayQuiz, error) {
	quiz, err := s.repo.GetActiveQuiz(quizID)
	if err != nil {
		return nil, err
	}

	questions, err := s.repo.GetPlayQuestions(quizID)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	choices, err := s.repo.GetPlayChoices(models.QuestionIDs(questions))
	if err != nil {
		return nil, fmt.Errorf("load choices: %w", err)
	}
	byQuestion := models.GroupChoices(choices)

	playQuiz := &models.PlayQuiz{
		Quiz:      *quiz,
		Questions: make([]models.PlayQuestion, len(questions)),
	}
	for i, q := range questions {
		playQuiz.Questions[i] = q.ToPlayDTO(byQuestion[q.ID])
	}
	return playQuiz, nil
}

// SubmitAnswer stores one response row. Neither the quiz nor the ids in the
// request are checked against existing rows. A session id is generated
// when the client did not send one.
func (s *Service) SubmitAnswer(quizID uint, req models.AnswerRequest) (*models.Response, error) {
	response := &models.Response{
		QuizID:     quizID,
		QuestionID: req.QuestionID,
		SessionID:  req.SessionID,
	}
	if req.ChoiceID != nil && *req.ChoiceID != 0 {
		response.ChoiceID = req.ChoiceID
	}
	if req.TextAnswer != nil && *req.TextAnswer != "" {
		response.TextAnswer = req.TextAnswer
	}
	if response.SessionID == "" {
		response.SessionID = uuid.NewString()
	}

	if err := s.repo.SaveResponse(response); err != nil {
		return nil, fmt.Errorf("save response: %w", err)
	}

	if s.tally != nil {
		if err := s.tally.RecordResponse(response); err != nil {
			log.Printf("Error updating live tally for quiz %d: %v", quizID, err)
		}
	}
	if s.feed != nil {
		s.feed.BroadcastResponse(quizID, response)
	}

	return response, nil
}

func (s *Service) GetQuizResponses(quizID uint) ([]models.Response, error) {
	return s.repo.GetQuizResponses(quizID)
}

func (s *Service) GetResults(quizID uint) (*models.QuizResults, error) {
	counts, err := s.repo.CountResponsesByChoice(quizID)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountResponses(quizID)
	if err != nil {
		return nil, fmt.Errorf("count responses: %w", err)
	}

	participants, err := s.repo.CountParticipants(quizID)
	if err != nil {
		return nil, fmt.Errorf("count participants: %w", err)
	}

	return &models.QuizResults{
		QuizID:         quizID,
		TotalResponses: total,
		Participants:   participants,
		Choices:        counts,
	}, nil
}

func (s *Service) GetLiveTally(quizID uint) (map[string]int64, error) {
	if s.tally == nil {
		return nil, ErrTallyDisabled
	}
	return s.tally.GetTally(quizID)
}
