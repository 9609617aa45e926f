package models

import (
	"time"
)

const (
	DefaultQuestionType = "choice"
	DefaultMediaType    = "video"
	DefaultTwistPauseMs = 2000
)

type Quiz struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Title        string     `json:"title" gorm:"not null"`
	Description  string     `json:"description" gorm:"default:''"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	TimeLimit    int        `json:"time_limit" gorm:"default:0"`
	TwistEnabled bool       `json:"twist_enabled" gorm:"default:false"`
	TwistMessage string     `json:"twist_message" gorm:"default:''"`
	TwistPauseMs int        `json:"twist_pause_ms" gorm:"column:twist_pause_ms;default:2000"`
	CreatedAt    time.Time  `json:"created_at"`
	Questions    []Question `json:"-" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// NewQuiz returns a quiz carrying the column defaults, so the value handed
// back from a create matches the stored row without re-reading it.
func NewQuiz(title, description string) *Quiz {
	return &Quiz{
		Title:        title,
		Description:  description,
		IsActive:     true,
		TwistPauseMs: DefaultTwistPauseMs,
	}
}

type Question struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	QuizID    uint      `json:"quiz_id" gorm:"index"`
	OrderNum  int       `json:"order_num" gorm:"not null"`
	Text      string    `json:"text" gorm:"not null"`
	Type      string    `json:"type" gorm:"default:choice"`
	IsTwist   bool      `json:"is_twist" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	Choices   []Choice  `json:"-" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

func (Question) TableName() string {
	return "questions"
}

type Choice struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	QuestionID uint    `json:"question_id" gorm:"index"`
	Label      string  `json:"label" gorm:"not null"`
	Text       string  `json:"text" gorm:"not null"`
	MediaURL   *string `json:"media_url" gorm:"column:media_url"`
	MediaType  string  `json:"media_type" gorm:"default:video"`
	IsCorrect  bool    `json:"is_correct" gorm:"default:false"`
	OrderNum   int     `json:"order_num" gorm:"default:0"`
}

func (Choice) TableName() string {
	return "choices"
}

// Response is one recorded answer. The ids are copied from the request and
// deliberately carry no foreign keys, so responses outlive deleted quizzes.
type Response struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	QuizID     uint      `json:"quiz_id" gorm:"index"`
	QuestionID *uint     `json:"question_id"`
	ChoiceID   *uint     `json:"choice_id"`
	SessionID  string    `json:"session_id"`
	TextAnswer *string   `json:"text_answer"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Response) TableName() string {
	return "responses"
}

// GroupChoices partitions a batch of choices by question id, keeping the
// order in which they were fetched.
func GroupChoices(choices []Choice) map[uint][]Choice {
	grouped := make(map[uint][]Choice)
	for _, c := range choices {
		grouped[c.QuestionID] = append(grouped[c.QuestionID], c)
	}
	return grouped
}

// QuestionIDs collects the ids of the given questions.
func QuestionIDs(questions []Question) []uint {
	ids := make([]uint, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}
