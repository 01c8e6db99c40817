package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gpswatch/notamview/internal/domain"
	"github.com/gpswatch/notamview/internal/render"
)

type ctxKey int

const dayKey ctxKey = 0

// dayResponse is the payload for GET /api/notams/{day}: the stored raw
// records, the subset that validated cleanly, and the diagnostics for the
// rest.
type dayResponse struct {
	Day     string             `json:"day"`
	Records []domain.RawRecord `json:"records"`
	Notams  []domain.Notam     `json:"notams"`
	Errors  []string           `json:"errors"`
}

// updateRequest is the payload for PUT /api/notams/{day}.
type updateRequest struct {
	Orig domain.RawRecord `json:"orig"`
	Next domain.RawRecord `json:"next"`
}

// dayCtx rejects requests whose {day} segment is not a valid calendar date
// and stashes the day in the request context.
func (s *Server) dayCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		day := chi.URLParam(r, "day")
		if _, err := time.Parse("2006-01-02", day); err != nil {
			writeError(w, http.StatusBadRequest, "day must be formatted YYYY-MM-DD")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), dayKey, day)))
	})
}

func dayFromContext(ctx context.Context) string {
	return ctx.Value(dayKey).(string)
}

func (s *Server) handleGetDay(w http.ResponseWriter, r *http.Request) {
	day := dayFromContext(r.Context())

	records, err := s.store.Load(day)
	if err != nil {
		s.logger.Error("load day failed", "day", day, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load records")
		return
	}

	notams, diags := domain.ValidateBatch(records)
	if records == nil {
		records = []domain.RawRecord{}
	}
	if diags == nil {
		diags = []string{}
	}
	writeJSON(w, http.StatusOK, dayResponse{
		Day:     day,
		Records: records,
		Notams:  notams,
		Errors:  diags,
	})
}

func (s *Server) handleAddRecord(w http.ResponseWriter, r *http.Request) {
	day := dayFromContext(r.Context())

	var rec domain.RawRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "malformed record body")
		return
	}

	if _, diags := domain.ValidateBatch([]domain.RawRecord{rec}); len(diags) > 0 {
		s.metrics.RecordsRejected.Inc()
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": diags})
		return
	}

	if err := s.store.Add(day, rec); err != nil {
		s.logger.Error("add record failed", "day", day, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store record")
		return
	}
	s.metrics.RecordsAccepted.Inc()
	s.metrics.RecordsStored.Inc()
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	day := dayFromContext(r.Context())

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed update body")
		return
	}
	if len(req.Orig) == 0 || len(req.Next) == 0 {
		writeError(w, http.StatusBadRequest, "both orig and next records are required")
		return
	}

	if _, diags := domain.ValidateBatch([]domain.RawRecord{req.Next}); len(diags) > 0 {
		s.metrics.RecordsRejected.Inc()
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": diags})
		return
	}

	found, err := s.store.Update(day, req.Orig, req.Next)
	if err != nil {
		s.logger.Error("update record failed", "day", day, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update record")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "no matching record for day")
		return
	}
	writeJSON(w, http.StatusOK, req.Next)
}

func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	day := dayFromContext(r.Context())

	var rec domain.RawRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "malformed record body")
		return
	}

	found, err := s.store.Delete(day, rec)
	if err != nil {
		s.logger.Error("delete record failed", "day", day, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete record")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "no matching record for day")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMapGeoJSON(w http.ResponseWriter, r *http.Request) {
	day := dayFromContext(r.Context())

	records, err := s.store.Load(day)
	if err != nil {
		s.logger.Error("load day failed", "day", day, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load records")
		return
	}

	set := domain.BuildRenderSet(records)
	s.metrics.RenderSetsBuilt.Inc()

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(render.GeoJSON(set)) //nolint:errcheck // best-effort response
}
