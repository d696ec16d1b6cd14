package controllers

import (
	"encoding/base64"
	json "github.com/goccy/go-json"
	"net/http"
	"streakd/internal/classifier"
	"streakd/internal/models"
	"streakd/internal/providers"
	"streakd/internal/services"
	"streakd/internal/storage/interfaces"
	"strings"
	"time"
)

const maxRequestBodySize = 8 << 20 // 8 MB, photos arrive base64-encoded

const (
	cacheKeyStreak   = "streak"
	cacheKeyCheckins = "checkins"
)

type ApiController struct {
	logger     providers.Logger
	service    services.StreakServiceInterface
	classifier classifier.ClassifierInterface
	cache      providers.CacheProviderInterface
	metrics    providers.MetricsProviderInterface
	persister  interfaces.PersisterInterface
}

func NewApiController(logger providers.Logger, service services.StreakServiceInterface, classifier classifier.ClassifierInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface, persister interfaces.PersisterInterface) *ApiController {
	return &ApiController{
		logger:     logger,
		service:    service,
		classifier: classifier,
		cache:      cache,
		metrics:    metrics,
		persister:  persister,
	}
}

type checkinRequest struct {
	Image string `json:"image"`
}

type checkinResponse struct {
	Verdict  models.Verdict      `json:"verdict"`
	Accepted bool                `json:"accepted"`
	Streak   models.StreakRecord `json:"streak"`
}

type referencePhotoPayload struct {
	Uri string `json:"uri"`
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// CheckIn runs the whole confirmation flow: decode photo, ask the classifier,
// and on a positive verdict apply the guarded increment. The streak only
// ever moves through this path.
func (ac *ApiController) CheckIn(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload checkinRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	image, err := decodeImage(payload.Image)
	if err != nil || len(image) == 0 {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	start := time.Now()
	verdict := ac.classifier.Classify(r.Context(), image)
	ac.metrics.ObserveClassificationDuration(time.Since(start))
	ac.metrics.IncClassifications(classificationResult(verdict))

	// Abandoned flow: the verdict arrived after the client went away, so
	// discard it instead of crediting a streak nobody asked for.
	if r.Context().Err() != nil {
		ac.logger.Warnf(providers.TypePost, "Check-in abandoned mid-classification, verdict discarded")
		return
	}

	now := time.Now()
	before := ac.service.Get()
	streak := before
	if verdict.IsGymEquipment {
		streak = ac.service.IncrementIfAllowed(now)
	}
	accepted := streak.Count > before.Count

	ac.service.RecordCheckin(models.CheckinEntry{
		At:         now,
		Date:       models.CheckinDate(now),
		Label:      verdict.Label,
		Confidence: verdict.Confidence,
		Accepted:   accepted,
	})
	ac.cache.Del(cacheKeyStreak)
	ac.cache.Del(cacheKeyCheckins)

	// The client learns its check-in stuck only after the record is on
	// disk; a crash right after this reply cannot roll the streak back.
	if err := ac.persister.Persist(); err != nil {
		ac.logger.Errorf(providers.TypePost, "Persist after check-in failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(checkinResponse{
		Verdict:  verdict,
		Accepted: accepted,
		Streak:   streak,
	})
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) GetStreak(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, cacheKeyStreak, func() (any, error) {
		return ac.service.Get(), nil
	})
}

func (ac *ApiController) GetCheckins(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, cacheKeyCheckins, func() (any, error) {
		return ac.service.Checkins(), nil
	})
}

func (ac *ApiController) SaveReferencePhoto(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload referencePhotoPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Uri == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.service.SaveReferencePhoto(payload.Uri)
	if err := ac.persister.Persist(); err != nil {
		ac.logger.Errorf(providers.TypePost, "Persist after reference photo update failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) GetReferencePhoto(w http.ResponseWriter, r *http.Request) {
	uri, ok := ac.service.ReferencePhoto()
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	gson, err := json.Marshal(referencePhotoPayload{Uri: uri})
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// decodeImage accepts plain base64 or a data URL.
func decodeImage(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "data:") {
		if idx := strings.IndexByte(raw, ','); idx >= 0 {
			raw = raw[idx+1:]
		}
	}
	return base64.StdEncoding.DecodeString(raw)
}

func classificationResult(verdict models.Verdict) string {
	switch {
	case verdict.IsGymEquipment:
		return "positive"
	case verdict.Label == "error":
		return "error"
	default:
		return "negative"
	}
}
