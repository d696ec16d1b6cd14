package controllers

import (
	"fmt"
	json "github.com/goccy/go-json"
	"net/http"
	"streakd/internal/auth"
	"streakd/internal/services"
	"time"
)

type HealthController struct {
	service   services.StreakServiceInterface
	manager   *auth.Manager
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	StreakCount   uint64  `json:"streak_count"`
	Checkins      int     `json:"checkins"`
	SessionState  string  `json:"session_state"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		StreakCount:   hc.service.Get().Count,
		Checkins:      len(hc.service.Checkins()),
		SessionState:  hc.manager.State().String(),
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(service services.StreakServiceInterface, manager *auth.Manager) *HealthController {
	return &HealthController{
		service:   service,
		manager:   manager,
		startTime: time.Now(),
	}
}
