package cache

import (
	"reflect"
	"testing"

	"quiz-embed/internal/models"
)

func TestTallyFields(t *testing.T) {
	question := uint(4)
	choice := uint(9)
	text := "because"

	got := tallyFields(&models.Response{QuizID: 1, QuestionID: &question, ChoiceID: &choice, TextAnswer: &text})
	want := []string{"total", "question:4", "choice:9", "text"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tallyFields = %v, want %v", got, want)
	}

	got = tallyFields(&models.Response{QuizID: 1})
	if !reflect.DeepEqual(got, []string{"total"}) {
		t.Fatalf("tallyFields for bare response = %v", got)
	}
}

func TestTallyKey(t *testing.T) {
	if got := tallyKey(12); got != "tally:quiz:12" {
		t.Fatalf("tallyKey = %q", got)
	}
}

func TestParseTally(t *testing.T) {
	got, err := parseTally(map[string]string{"total": "3", "choice:2": "1"})
	if err != nil {
		t.Fatalf("parseTally: %v", err)
	}
	if got["total"] != 3 || got["choice:2"] != 1 {
		t.Fatalf("unexpected tally: %v", got)
	}

	if _, err := parseTally(map[string]string{"total": "x"}); err == nil {
		t.Fatalf("expected error for non-numeric counter")
	}
}
