package quiz

import (
	"fmt"
	"log"

	"quiz-embed/internal/models"
)

// TallyCleaner drops the live counters of a deleted quiz.
type TallyCleaner interface {
	ClearTally(quizID uint) error
}

type Service struct {
	repo  *Repository
	tally TallyCleaner
}

// NewService accepts a nil tally when no live counters are kept.
func NewService(repo *Repository, tally TallyCleaner) *Service {
	return &Service{
		repo:  repo,
		tally: tally,
	}
}

func (s *Service) ListQuizzes() ([]models.Quiz, error) {
	return s.repo.ListQuizzes()
}

func (s *Service) CreateQuiz(req models.CreateQuizRequest) (*models.Quiz, error) {
	quiz := models.NewQuiz(req.Title, req.Description)
	if err := s.repo.CreateQuiz(quiz); err != nil {
		return nil, fmt.Errorf("create quiz: %w", err)
	}
	return quiz, nil
}

// GetQuizDetail reads the quiz, its questions, and then every choice of those
// questions in a single batch. The reads are not wrapped in a transaction; a
// concurrent delete between them can leave an empty question list.
func (s *Service) GetQuizDetail(quizID uint) (*models.QuizDetail, error) {
	quiz, err := s.repo.GetQuizByID(quizID)
	if err != nil {
		return nil, err
	}

	questions, err := s.repo.GetQuizQuestions(quizID)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	choices, err := s.repo.GetChoicesForQuestions(models.QuestionIDs(questions))
	if err != nil {
		return nil, fmt.Errorf("load choices: %w", err)
	}
	byQuestion := models.GroupChoices(choices)

	detail := &models.QuizDetail{
		Quiz:      *quiz,
		Questions: make([]models.QuestionDetail, len(questions)),
	}
	for i, q := range questions {
		qChoices := byQuestion[q.ID]
		if qChoices == nil {
			qChoices = []models.Choice{}
		}
		detail.Questions[i] = models.QuestionDetail{Question: q, Choices: qChoices}
	}
	return detail, nil
}

func (s *Service) UpdateQuiz(quizID uint, req models.UpdateQuizRequest) (*models.Quiz, error) {
	return s.repo.UpdateQuiz(quizID, req.Changes())
}

func (s *Service) DeleteQuiz(quizID uint) error {
	if err := s.repo.DeleteQuiz(quizID); err != nil {
		return err
	}

	if s.tally != nil {
		if err := s.tally.ClearTally(quizID); err != nil {
			log.Printf("Error clearing live tally for quiz %d: %v", quizID, err)
		}
	}
	return nil
}

func (s *Service) CreateQuestion(req models.CreateQuestionRequest) (*models.Question, error) {
	question := &models.Question{
		QuizID:  req.QuizID,
		Text:    req.Text,
		Type:    req.Type,
		IsTwist: req.IsTwist,
	}
	if question.Type == "" {
		question.Type = models.DefaultQuestionType
	}

	if req.OrderNum != nil {
		question.OrderNum = *req.OrderNum
	} else {
		next, err := s.repo.NextOrderNum(req.QuizID)
		if err != nil {
			return nil, fmt.Errorf("next order: %w", err)
		}
		question.OrderNum = next
	}

	if err := s.repo.CreateQuestion(question); err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return question, nil
}

func (s *Service) UpdateQuestion(questionID uint, req models.UpdateQuestionRequest) (*models.Question, error) {
	return s.repo.UpdateQuestion(questionID, req.Changes())
}

func (s *Service) DeleteQuestion(questionID uint) error {
	return s.repo.DeleteQuestion(questionID)
}

func (s *Service) CreateChoice(req models.CreateChoiceRequest) (*models.Choice, error) {
	choice := &models.Choice{
		QuestionID: req.QuestionID,
		Label:      req.Label,
		Text:       req.Text,
		MediaType:  req.MediaType,
		IsCorrect:  req.IsCorrect,
		OrderNum:   req.OrderNum,
	}
	if req.MediaURL != nil && *req.MediaURL != "" {
		choice.MediaURL = req.MediaURL
	}
	if choice.MediaType == "" {
		choice.MediaType = models.DefaultMediaType
	}

	if err := s.repo.CreateChoice(choice); err != nil {
		return nil, fmt.Errorf("create choice: %w", err)
	}
	return choice, nil
}

func (s *Service) UpdateChoice(choiceID uint, req models.UpdateChoiceRequest) (*models.Choice, error) {
	return s.repo.UpdateChoice(choiceID, req.Changes())
}

func (s *Service) DeleteChoice(choiceID uint) error {
	return s.repo.DeleteChoice(choiceID)
}
