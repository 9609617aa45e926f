package database

import (
	"path/filepath"
	"strings"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"quiz-embed/config"
	"quiz-embed/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "schema.db"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("NewSQLiteDB failed: %v", err)
	}
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestInitSchemaIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 2; i++ {
		if err := InitSchema(db); err != nil {
			t.Fatalf("InitSchema run %d failed: %v", i+1, err)
		}
	}

	m := db.Migrator()
	for _, table := range []string{"quizzes", "questions", "choices", "responses"} {
		if !m.HasTable(table) {
			t.Fatalf("missing table %s", table)
		}
	}

	columns := map[interface{}][]string{
		&models.Quiz{}:     {"time_limit", "twist_enabled", "twist_message", "twist_pause_ms"},
		&models.Question{}: {"is_twist", "order_num"},
		&models.Choice{}:   {"media_url", "media_type", "is_correct"},
		&models.Response{}: {"text_answer", "session_id", "choice_id"},
	}
	for model, cols := range columns {
		for _, col := range cols {
			if !m.HasColumn(model, col) {
				t.Fatalf("missing column %s on %T", col, model)
			}
		}
	}
}

func TestInitSchemaUpgradesLegacyQuizzesTable(t *testing.T) {
	db := openTestDB(t)

	legacy := `CREATE TABLE quizzes (
		id integer PRIMARY KEY AUTOINCREMENT,
		title text NOT NULL,
		description text DEFAULT '',
		is_active numeric DEFAULT true,
		created_at datetime
	)`
	if err := db.Exec(legacy).Error; err != nil {
		t.Fatalf("create legacy table: %v", err)
	}
	if err := db.Exec(`INSERT INTO quizzes (title, description, created_at) VALUES ('Legacy', 'old', CURRENT_TIMESTAMP)`).Error; err != nil {
		t.Fatalf("insert legacy row: %v", err)
	}

	if err := InitSchema(db); err != nil {
		t.Fatalf("InitSchema failed: %v", err)
	}

	if !db.Migrator().HasColumn(&models.Quiz{}, "twist_message") {
		t.Fatalf("twist_message was not added")
	}

	var quiz models.Quiz
	if err := db.Where("title = ?", "Legacy").First(&quiz).Error; err != nil {
		t.Fatalf("legacy row lost: %v", err)
	}
	if quiz.Description != "old" {
		t.Fatalf("description = %q, want old", quiz.Description)
	}
}

func TestWithSSLMode(t *testing.T) {
	got, err := withSSLMode("postgres://u:p@db:5432/quiz", "require")
	if err != nil {
		t.Fatalf("withSSLMode: %v", err)
	}
	if !strings.Contains(got, "sslmode=require") {
		t.Fatalf("sslmode not appended: %s", got)
	}

	got, _ = withSSLMode("postgres://u:p@db:5432/quiz?sslmode=verify-full", "require")
	if !strings.Contains(got, "sslmode=verify-full") || strings.Contains(got, "sslmode=require") {
		t.Fatalf("explicit sslmode overridden: %s", got)
	}

	got, _ = withSSLMode("host=db user=u dbname=quiz", "disable")
	if got != "host=db user=u dbname=quiz sslmode=disable" {
		t.Fatalf("keyword dsn = %q", got)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(&config.DBConfig{Driver: "oracle", URL: "x"}); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
	if _, err := Open(&config.DBConfig{Driver: "postgres"}); err != ErrMissingURL {
		t.Fatalf("err = %v, want ErrMissingURL", err)
	}
}
