package httpapi

import (
	"context"
	"net/http"
	"time"

	"aroma-storefront/internal/domain"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type StatsReader interface {
	Daily(ctx context.Context, day time.Time) (domain.DailyStats, error)
}

type StatsHandler struct {
	Stats  StatsReader
	Logger *zap.Logger
	Now    func() time.Time
}

func NewStatsHandler(stats StatsReader, logger *zap.Logger) *StatsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsHandler{Stats: stats, Logger: logger, Now: time.Now}
}

func (h *StatsHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/stats/today", h.getToday).Methods("GET")
	r.HandleFunc("/api/stats/{date}", h.getDay).Methods("GET")
}

func NewStatsRouter(handler *StatsHandler) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return cors.Default().Handler(r)
}

func (h *StatsHandler) getToday(w http.ResponseWriter, r *http.Request) {
	h.writeDay(w, r, h.Now())
}

func (h *StatsHandler) getDay(w http.ResponseWriter, r *http.Request) {
	day, err := time.Parse(dateLayout, mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, "Date must look like 2006-01-02", http.StatusBadRequest)
		return
	}
	h.writeDay(w, r, day)
}

func (h *StatsHandler) writeDay(w http.ResponseWriter, r *http.Request, day time.Time) {
	stats, err := h.Stats.Daily(r.Context(), day)
	if err != nil {
		h.Logger.Error("failed to read stats", zap.Time("day", day), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
