package rest

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fortuna/iris/internal/locale"
	"github.com/fortuna/iris/internal/service"
)

// Handler contains dependencies for HTTP handlers.
type Handler struct {
	games      *service.GameService
	boxScores  *service.BoxScoreService
	tables     *locale.Tables
	unresolved *locale.UnresolvedSet
}

// NewHandler creates a new handler.
func NewHandler(games *service.GameService, boxScores *service.BoxScoreService, tables *locale.Tables, unresolved *locale.UnresolvedSet) *Handler {
	return &Handler{
		games:      games,
		boxScores:  boxScores,
		tables:     tables,
		unresolved: unresolved,
	}
}

// HealthCheck handles health check requests.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "iris",
		"version": "1.0.0",
	})
}

// GetSchedule returns the localized games for a Beijing date.
// ?date=YYYY-MM-DD, defaulting to today in Beijing.
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	games, err := h.games.Schedule(r.Context(), date)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to fetch schedule", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": games,
		"count": len(games),
	})
}

// GetLiveGames returns only in-progress games.
func (h *Handler) GetLiveGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.games.LiveGames(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to fetch live games", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": games,
		"count": len(games),
	})
}

// GetGameBoxScore returns the normalized, localized box score for a game.
func (h *Handler) GetGameBoxScore(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["gameID"]

	pair, err := h.boxScores.GetBoxScore(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to fetch box score", err)
		return
	}

	respondJSON(w, http.StatusOK, pair)
}

// GetTeams returns the team localization table.
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"teams": h.tables.Teams,
		"count": len(h.tables.Teams),
	})
}

// GetUnresolvedNames reports player names that fell through every
// localization tier, so the tables can be extended.
func (h *Handler) GetUnresolvedNames(w http.ResponseWriter, r *http.Request) {
	names := h.unresolved.Names()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"names": names,
		"count": len(names),
	})
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response.
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	respondJSON(w, status, response)
}
