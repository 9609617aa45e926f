package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"quiz-embed/internal/play"
	"quiz-embed/internal/quiz"
	"quiz-embed/internal/web"
	"quiz-embed/pkg/websocket"
)

type Handlers struct {
	Quiz *quiz.Handler
	Play *play.Handler
	Web  *web.Handler
	Hub  *websocket.Hub
}

// NewRouter wires every route and wraps the result in logging and CORS.
// Hub may be nil, in which case the live feed route is not mounted.
func NewRouter(h Handlers) http.Handler {
	router := mux.NewRouter()
	router.Use(requestLogger)

	api := router.PathPrefix("/api").Subrouter()
	h.Quiz.RegisterRoutes(api)
	h.Play.RegisterRoutes(api)

	if h.Hub != nil {
		router.HandleFunc("/ws/quizzes/{quiz_id:[0-9]+}", h.Hub.HandleWebSocket)
	}

	h.Web.RegisterRoutes(router)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Requested-With"},
		MaxAge:         300,
	})
	return corsMiddleware.Handler(router)
}
