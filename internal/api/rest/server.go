package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// Server is the REST API server.
type Server struct {
	port   string
	server *http.Server
}

// NewServer wires routes and middleware around the handler.
func NewServer(port string, handler *Handler) *Server {
	router := mux.NewRouter()

	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/schedule", handler.GetSchedule).Methods("GET")
	api.HandleFunc("/games/live", handler.GetLiveGames).Methods("GET")
	api.HandleFunc("/games/{gameID}/boxscore", handler.GetGameBoxScore).Methods("GET")
	api.HandleFunc("/teams", handler.GetTeams).Methods("GET")
	api.HandleFunc("/diagnostics/unresolved-names", handler.GetUnresolvedNames).Methods("GET")

	return &Server{
		port: port,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
