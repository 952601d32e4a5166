package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/alertwatch/alertwatch/internal/alert"
	"github.com/alertwatch/alertwatch/internal/domain"
	"github.com/alertwatch/alertwatch/internal/jsend"
)

const alertNotFound = "Alert does not exist"

func (s *Server) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	// tri-state filter: absent = all, true/false = by active flag
	var active *bool
	if vs, ok := r.URL.Query()["active"]; ok {
		switch strings.ToLower(vs[0]) {
		case "true":
			v := true
			active = &v
		case "false":
			v := false
			active = &v
		default:
			jsend.Fail(w, http.StatusBadRequest, "active", "active must be true or false")
			return
		}
	}

	alerts, err := s.Alerts.List(r.Context(), active)
	if err != nil {
		http.Error(w, "list error", http.StatusInternalServerError)
		return
	}
	if alerts == nil {
		alerts = []*domain.Alert{}
	}
	jsend.Success(w, http.StatusOK, "alerts", alerts)
}

func (s *Server) handleCreateAlert(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBody(r)
	if err != nil {
		jsend.Fail(w, http.StatusBadRequest, "payload", "payload missing or malformed")
		return
	}

	f, ferr := alert.Validate(raw, false)
	if ferr != nil {
		jsend.Fail(w, http.StatusBadRequest, ferr.Field, ferr.Message)
		return
	}

	a, err := s.Alerts.Create(r.Context(), *f.Email, *f.Threshold)
	if err != nil {
		http.Error(w, "could not create", http.StatusInternalServerError)
		return
	}

	s.Logger.Info("created_alert",
		zap.Int64("id", a.ID),
		zap.String("email", a.Email),
		zap.Float64("threshold", a.Threshold),
	)
	jsend.Success(w, http.StatusCreated, "alert", a)
}

func (s *Server) handleGetAlert(w http.ResponseWriter, r *http.Request) {
	a, ok := s.findAlert(w, r)
	if !ok {
		return
	}
	jsend.Success(w, http.StatusOK, "alert", a)
}

// handleUpdateAlert serves PUT (partial=false) and PATCH (partial=true).
// Both apply only explicitly supplied fields; PUT just adds the presence
// requirement for email and threshold.
func (s *Server) handleUpdateAlert(partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := s.findAlert(w, r)
		if !ok {
			return
		}

		raw, err := decodeBody(r)
		if err != nil {
			jsend.Fail(w, http.StatusBadRequest, "payload", "payload missing or malformed")
			return
		}

		f, ferr := alert.Validate(raw, partial)
		if ferr != nil {
			jsend.Fail(w, http.StatusBadRequest, ferr.Field, ferr.Message)
			return
		}

		upd := alert.PlanUpdate(a, f, time.Now())
		updated, err := s.Alerts.Update(r.Context(), a, upd)
		if err != nil {
			http.Error(w, "could not update", http.StatusInternalServerError)
			return
		}

		s.Logger.Info("updated_alert",
			zap.Int64("id", updated.ID),
			zap.Bool("active", updated.Active),
			zap.Bool("triggered", upd.TriggeredAt != nil),
		)
		jsend.Success(w, http.StatusOK, "alert", updated)
	}
}

func (s *Server) handleDeleteAlert(w http.ResponseWriter, r *http.Request) {
	a, ok := s.findAlert(w, r)
	if !ok {
		return
	}
	if err := s.Alerts.Delete(r.Context(), a); err != nil {
		http.Error(w, "could not delete", http.StatusInternalServerError)
		return
	}
	s.Logger.Info("deleted_alert", zap.Int64("id", a.ID))
	jsend.Success(w, http.StatusOK, "", nil)
}

// findAlert resolves {id} and fetches the record; on a malformed id or a
// missing record it writes the 404 fail envelope and reports !ok.
func (s *Server) findAlert(w http.ResponseWriter, r *http.Request) (*domain.Alert, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		jsend.Fail(w, http.StatusNotFound, "alert", alertNotFound)
		return nil, false
	}
	a, err := s.Alerts.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, "lookup error", http.StatusInternalServerError)
		return nil, false
	}
	if a == nil {
		jsend.Fail(w, http.StatusNotFound, "alert", alertNotFound)
		return nil, false
	}
	return a, true
}

// decodeBody parses the JSON body into a raw map. An empty body yields a
// nil map (the validator decides whether that is acceptable for the verb);
// malformed JSON is an error.
func decodeBody(r *http.Request) (map[string]any, error) {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return nil, nil
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
