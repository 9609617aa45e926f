package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"quiz-embed/config"
	"quiz-embed/internal/play"
	"quiz-embed/internal/quiz"
	"quiz-embed/internal/server"
	"quiz-embed/internal/web"
	"quiz-embed/pkg/cache"
	"quiz-embed/pkg/database"
	"quiz-embed/pkg/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}
	cfg := config.Load()

	db, err := database.Open(&cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Serving starts only after the schema is in place.
	if err := database.InitSchema(db); err != nil {
		log.Fatalf("Failed to initialize database schema: %v", err)
	}
	log.Printf("Database schema ready")
	if cfg.Server.IsProduction() {
		log.Printf("Production mode: database sslmode=%s", cfg.DB.SSLMode)
	}

	// Live tally is optional. Keep the interfaces nil when it is off so the
	// services can tell.
	var playTally play.Tally
	var quizTally quiz.TallyCleaner
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(); err != nil {
			log.Printf("Warning: redis unreachable at %s: %v", cfg.Redis.Addr, err)
		}
		defer redisCache.Close()
		playTally = redisCache
		quizTally = redisCache
	}

	wsHub := websocket.NewHub()
	go wsHub.Run()
	defer wsHub.Stop()

	quizService := quiz.NewService(quiz.NewRepository(db), quizTally)
	playService := play.NewService(play.NewRepository(db), playTally, wsHub)

	handler := server.NewRouter(server.Handlers{
		Quiz: quiz.NewHandler(quizService),
		Play: play.NewHandler(playService),
		Web:  web.NewHandler(),
		Hub:  wsHub,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("Quiz server listening on http://localhost:%s (%s)", cfg.Server.Port, cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server shutdown gracefully")
}
