package quiz

import (
	"errors"
	"log"

	"quiz-embed/internal/models"

	"gorm.io/gorm"
)

var (
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrChoiceNotFound   = errors.New("choice not found")
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListQuizzes() ([]models.Quiz, error) {
	quizzes := []models.Quiz{}
	err := r.db.Order("created_at DESC").Order("id DESC").Find(&quizzes).Error
	if err != nil {
		log.Printf("Error listing quizzes: %v", err)
		return nil, err
	}
	return quizzes, nil
}

func (r *Repository) CreateQuiz(quiz *models.Quiz) error {
	err := r.db.Create(quiz).Error
	if err != nil {
		log.Printf("Error creating quiz: %v", err)
		return err
	}
	log.Printf("Created quiz with ID: %d", quiz.ID)
	return nil
}

func (r *Repository) GetQuizByID(quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.db.First(&quiz, quizID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		log.Printf("Error getting quiz %d: %v", quizID, err)
		return nil, err
	}
	return &quiz, nil
}

func (r *Repository) UpdateQuiz(quizID uint, changes map[string]interface{}) (*models.Quiz, error) {
	if len(changes) > 0 {
		err := r.db.Model(&models.Quiz{}).Where("id = ?", quizID).Updates(changes).Error
		if err != nil {
			log.Printf("Error updating quiz %d: %v", quizID, err)
			return nil, err
		}
	}
	return r.GetQuizByID(quizID)
}

// DeleteQuiz relies on the foreign key cascade to drop questions and choices.
func (r *Repository) DeleteQuiz(quizID uint) error {
	result := r.db.Delete(&models.Quiz{}, quizID)
	if result.Error != nil {
		log.Printf("Error deleting quiz %d: %v", quizID, result.Error)
		return result.Error
	}
	log.Printf("Deleted quiz %d (%d rows)", quizID, result.RowsAffected)
	return nil
}

func (r *Repository) GetQuizQuestions(quizID uint) ([]models.Question, error) {
	questions := []models.Question{}
	err := r.db.Where("quiz_id = ?", quizID).
		Order("order_num").Order("id").
		Find(&questions).Error
	if err != nil {
		log.Printf("Error getting questions for quiz %d: %v", quizID, err)
		return nil, err
	}
	return questions, nil
}

// GetChoicesForQuestions loads the choices of every given question in one
// query.
func (r *Repository) GetChoicesForQuestions(questionIDs []uint) ([]models.Choice, error) {
	choices := []models.Choice{}
	if len(questionIDs) == 0 {
		return choices, nil
	}

	err := r.db.Where("question_id IN ?", questionIDs).
		Order("order_num").Order("id").
		Find(&choices).Error
	if err != nil {
		log.Printf("Error getting choices for %d questions: %v", len(questionIDs), err)
		return nil, err
	}
	return choices, nil
}

// NextOrderNum returns one past the highest order_num of the quiz, or 1.
func (r *Repository) NextOrderNum(quizID uint) (int, error) {
	var next int
	err := r.db.Raw(
		"SELECT COALESCE(MAX(order_num), 0) + 1 FROM questions WHERE quiz_id = ?", quizID,
	).Scan(&next).Error
	if err != nil {
		log.Printf("Error computing next order for quiz %d: %v", quizID, err)
		return 0, err
	}
	return next, nil
}

func (r *Repository) CreateQuestion(question *models.Question) error {
	err := r.db.Create(question).Error
	if err != nil {
		log.Printf("Error creating question for quiz %d: %v", question.QuizID, err)
		return err
	}
	return nil
}

func (r *Repository) GetQuestion(questionID uint) (*models.Question, error) {
	var question models.Question
	err := r.db.First(&question, questionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		log.Printf("Error getting question %d: %v", questionID, err)
		return nil, err
	}
	return &question, nil
}

func (r *Repository) UpdateQuestion(questionID uint, changes map[string]interface{}) (*models.Question, error) {
	if len(changes) > 0 {
		err := r.db.Model(&models.Question{}).Where("id = ?", questionID).Updates(changes).Error
		if err != nil {
			log.Printf("Error updating question %d: %v", questionID, err)
			return nil, err
		}
	}
	return r.GetQuestion(questionID)
}

func (r *Repository) DeleteQuestion(questionID uint) error {
	return r.db.Delete(&models.Question{}, questionID).Error
}

func (r *Repository) CreateChoice(choice *models.Choice) error {
	err := r.db.Create(choice).Error
	if err != nil {
		log.Printf("Error creating choice for question %d: %v", choice.QuestionID, err)
		return err
	}
	return nil
}

func (r *Repository) GetChoice(choiceID uint) (*models.Choice, error) {
	var choice models.Choice
	err := r.db.First(&choice, choiceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChoiceNotFound
		}
		log.Printf("Error getting choice %d: %v", choiceID, err)
		return nil, err
	}
	return &choice, nil
}

func (r *Repository) UpdateChoice(choiceID uint, changes map[string]interface{}) (*models.Choice, error) {
	if len(changes) > 0 {
		err := r.db.Model(&models.Choice{}).Where("id = ?", choiceID).Updates(changes).Error
		if err != nil {
			log.Printf("Error updating choice %d: %v", choiceID, err)
			return nil, err
		}
	}
	return r.GetChoice(choiceID)
}

func (r *Repository) DeleteChoice(choiceID uint) error {
	return r.db.Delete(&models.Choice{}, choiceID).Error
}
