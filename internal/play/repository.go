package play

import (
	"errors"
	"log"

	"quiz-embed/internal/models"

	"gorm.io/gorm"
)

var ErrQuizNotFound = errors.New("quiz not found")

// Columns exposed to players. is_correct is never selected on this path.
var (
	playQuestionColumns = []string{"id", "order_num", "text", "type", "is_twist"}
	playChoiceColumns   = []string{"id", "question_id", "label", "text", "media_url", "media_type", "order_num"}
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetActiveQuiz treats an inactive quiz exactly like a missing one.
func (r *Repository) GetActiveQuiz(quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.db.Where("id = ? AND is_active = ?", quizID, true).First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		log.Printf("Error getting active quiz %d: %v", quizID, err)
		return nil, err
	}
	return &quiz, nil
}

func (r *Repository) GetPlayQuestions(quizID uint) ([]models.Question, error) {
	questions := []models.Question{}
	err := r.db.Select(playQuestionColumns).
		Where("quiz_id = ?", quizID).
		Order("order_num").Order("id").
		Find(&questions).Error
	if err != nil {
		log.Printf("Error getting play questions for quiz %d: %v", quizID, err)
		return nil, err
	}
	return questions, nil
}

func (r *Repository) GetPlayChoices(questionIDs []uint) ([]models.Choice, error) {
	choices := []models.Choice{}
	if len(questionIDs) == 0 {
		return choices, nil
	}

	err := r.db.Select(playChoiceColumns).
		Where("question_id IN ?", questionIDs).
		Order("order_num").Order("id").
		Find(&choices).Error
	if err != nil {
		log.Printf("Error getting play choices: %v", err)
		return nil, err
	}
	return choices, nil
}

func (r *Repository) SaveResponse(response *models.Response) error {
	return r.db.Create(response).Error
}

func (r *Repository) GetQuizResponses(quizID uint) ([]models.Response, error) {
	responses := []models.Response{}
	err := r.db.Where("quiz_id = ?", quizID).
		Order("created_at").Order("id").
		Find(&responses).Error
	if err != nil {
		log.Printf("Error getting responses for quiz %d: %v", quizID, err)
		return nil, err
	}
	return responses, nil
}

func (r *Repository) CountResponsesByChoice(quizID uint) ([]models.ChoiceCount, error) {
	counts := []models.ChoiceCount{}
	err := r.db.Raw(`
		SELECT question_id, choice_id, COUNT(*) AS count
		FROM responses
		WHERE quiz_id = ?
		GROUP BY question_id, choice_id
		ORDER BY question_id, choice_id
	`, quizID).Scan(&counts).Error
	if err != nil {
		log.Printf("Error counting responses for quiz %d: %v", quizID, err)
		return nil, err
	}
	return counts, nil
}

func (r *Repository) CountResponses(quizID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Response{}).
		Where("quiz_id = ?", quizID).
		Count(&count).Error
	return count, err
}

func (r *Repository) CountParticipants(quizID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Response{}).
		Where("quiz_id = ?", quizID).
		Distinct("session_id").
		Count(&count).Error
	return count, err
}
