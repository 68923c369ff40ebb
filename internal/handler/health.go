package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Health handles GET /api/health. A liveness probe only: it reports
// the process is up without touching the database.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}

type dbHealthResponse struct {
	Status      string     `json:"status"`
	DBConnected bool       `json:"db_connected"`
	ServerTime  *time.Time `json:"server_time,omitempty"`
	Message     string     `json:"message,omitempty"`
}

// DBHealth handles GET /api/db-health. It pings the pool and reads the
// database clock, proving a full query round trip.
func (h *Handler) DBHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.db.Ping(r.Context()); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(dbHealthResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	serverTime, err := h.db.ServerTime(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(dbHealthResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	_ = json.NewEncoder(w).Encode(dbHealthResponse{
		Status:      "ok",
		DBConnected: true,
		ServerTime:  &serverTime,
	})
}
