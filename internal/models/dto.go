package models

type CreateQuizRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type UpdateQuizRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	IsActive     *bool   `json:"is_active"`
	TimeLimit    *int    `json:"time_limit"`
	TwistEnabled *bool   `json:"twist_enabled"`
	TwistMessage *string `json:"twist_message"`
	TwistPauseMs *int    `json:"twist_pause_ms"`
}

// Changes returns the columns present in the payload, keyed by column name.
func (r UpdateQuizRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Title != nil {
		changes["title"] = *r.Title
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	if r.IsActive != nil {
		changes["is_active"] = *r.IsActive
	}
	if r.TimeLimit != nil {
		changes["time_limit"] = *r.TimeLimit
	}
	if r.TwistEnabled != nil {
		changes["twist_enabled"] = *r.TwistEnabled
	}
	if r.TwistMessage != nil {
		changes["twist_message"] = *r.TwistMessage
	}
	if r.TwistPauseMs != nil {
		changes["twist_pause_ms"] = *r.TwistPauseMs
	}
	return changes
}

type CreateQuestionRequest struct {
	QuizID   uint   `json:"quiz_id" validate:"required"`
	Text     string `json:"text" validate:"required"`
	Type     string `json:"type"`
	OrderNum *int   `json:"order_num"`
	IsTwist  bool   `json:"is_twist"`
}

type UpdateQuestionRequest struct {
	Text     *string `json:"text"`
	Type     *string `json:"type"`
	OrderNum *int    `json:"order_num"`
	IsTwist  *bool   `json:"is_twist"`
}

func (r UpdateQuestionRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Text != nil {
		changes["text"] = *r.Text
	}
	if r.Type != nil {
		changes["type"] = *r.Type
	}
	if r.OrderNum != nil {
		changes["order_num"] = *r.OrderNum
	}
	if r.IsTwist != nil {
		changes["is_twist"] = *r.IsTwist
	}
	return changes
}

type CreateChoiceRequest struct {
	QuestionID uint    `json:"question_id" validate:"required"`
	Label      string  `json:"label" validate:"required"`
	Text       string  `json:"text" validate:"required"`
	MediaURL   *string `json:"media_url"`
	MediaType  string  `json:"media_type"`
	IsCorrect  bool    `json:"is_correct"`
	OrderNum   int     `json:"order_num"`
}

type UpdateChoiceRequest struct {
	Label     *string `json:"label"`
	Text      *string `json:"text"`
	MediaURL  *string `json:"media_url"`
	MediaType *string `json:"media_type"`
	IsCorrect *bool   `json:"is_correct"`
	OrderNum  *int    `json:"order_num"`
}

func (r UpdateChoiceRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Label != nil {
		changes["label"] = *r.Label
	}
	if r.Text != nil {
		changes["text"] = *r.Text
	}
	if r.MediaURL != nil {
		changes["media_url"] = *r.MediaURL
	}
	if r.MediaType != nil {
		changes["media_type"] = *r.MediaType
	}
	if r.IsCorrect != nil {
		changes["is_correct"] = *r.IsCorrect
	}
	if r.OrderNum != nil {
		changes["order_num"] = *r.OrderNum
	}
	return changes
}

type AnswerRequest struct {
	QuestionID *uint   `json:"question_id"`
	ChoiceID   *uint   `json:"choice_id"`
	SessionID  string  `json:"session_id"`
	TextAnswer *string `json:"text_answer"`
}

type AnswerResponse struct {
	OK        bool   `json:"ok"`
	SessionID string `json:"session_id"`
}

// QuizDetail is the admin view of a quiz with everything it owns.
type QuizDetail struct {
	Quiz
	Questions []QuestionDetail `json:"questions"`
}

type QuestionDetail struct {
	Question
	Choices []Choice `json:"choices"`
}

// PlayQuiz is the public view of an active quiz.
type PlayQuiz struct {
	Quiz
	Questions []PlayQuestion `json:"questions"`
}

type PlayQuestion struct {
	ID       uint         `json:"id"`
	OrderNum int          `json:"order_num"`
	Text     string       `json:"text"`
	Type     string       `json:"type"`
	IsTwist  bool         `json:"is_twist"`
	Choices  []PlayChoice `json:"choices"`
}

// PlayChoice never carries the correctness flag.
type PlayChoice struct {
	ID         uint    `json:"id"`
	QuestionID uint    `json:"question_id"`
	Label      string  `json:"label"`
	Text       string  `json:"text"`
	MediaURL   *string `json:"media_url"`
	MediaType  string  `json:"media_type"`
	OrderNum   int     `json:"order_num"`
}

func (q Question) ToPlayDTO(choices []Choice) PlayQuestion {
	playChoices := make([]PlayChoice, len(choices))
	for i, c := range choices {
		playChoices[i] = c.ToPlayDTO()
	}

	return PlayQuestion{
		ID:       q.ID,
		OrderNum: q.OrderNum,
		Text:     q.Text,
		Type:     q.Type,
		IsTwist:  q.IsTwist,
		Choices:  playChoices,
	}
}

func (c Choice) ToPlayDTO() PlayChoice {
	return PlayChoice{
		ID:         c.ID,
		QuestionID: c.QuestionID,
		Label:      c.Label,
		Text:       c.Text,
		MediaURL:   c.MediaURL,
		MediaType:  c.MediaType,
		OrderNum:   c.OrderNum,
	}
}

type ChoiceCount struct {
	QuestionID *uint `json:"question_id"`
	ChoiceID   *uint `json:"choice_id"`
	Count      int64 `json:"count"`
}

type QuizResults struct {
	QuizID         uint          `json:"quiz_id"`
	TotalResponses int64         `json:"total_responses"`
	Participants   int64         `json:"participants"`
	Choices        []ChoiceCount `json:"choices"`
}
