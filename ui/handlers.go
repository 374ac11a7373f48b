package ui

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"veristat/adapters/report"
	"veristat/app"
	"veristat/domain/core"
	"veristat/domain/record"
)

type statcheckRequest struct {
	Tests []record.TestRecord `json:"tests"`
}

type grimRequest struct {
	Means []record.MeanRecord `json:"means"`
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleStatcheck verifies a batch of extracted test records. The response
// is the full batch run; it is also persisted when a store is configured.
func (a *App) handleStatcheck(w http.ResponseWriter, r *http.Request) {
	var req statcheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return
	}
	if len(req.Tests) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no test records provided"})
		return
	}

	outcomes, err := a.service.VerifyBatch(r.Context(), req.Tests)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "verification aborted: " + err.Error()})
		return
	}

	run := app.NewStatcheckRun(req.Tests, outcomes)
	a.persist(r, run)
	writeJSON(w, http.StatusOK, run)
}

// handleGrim runs the GRIM feasibility check over a batch of mean records
func (a *App) handleGrim(w http.ResponseWriter, r *http.Request) {
	var req grimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return
	}
	if len(req.Means) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no mean records provided"})
		return
	}

	outcomes, err := a.service.CheckMeans(r.Context(), req.Means)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "verification aborted: " + err.Error()})
		return
	}

	run := app.NewGrimRun(req.Means, outcomes)
	a.persist(r, run)
	writeJSON(w, http.StatusOK, run)
}

func (a *App) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if a.store == nil {
		writeJSON(w, http.StatusNotImplemented, map[string]string{"error": "run persistence is not configured"})
		return
	}
	runs, err := a.store.ListRuns(r.Context(), 50)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list runs"})
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

func (a *App) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, ok := a.loadRun(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// handleRunReport renders a stored run as an HTML report table
func (a *App) handleRunReport(w http.ResponseWriter, r *http.Request) {
	run, ok := a.loadRun(w, r)
	if !ok {
		return
	}

	var md string
	switch run.Kind {
	case app.RunGrim:
		rows := report.GrimRows(run.Means, run.Outcomes)
		md = report.Markdown("GRIM Results", report.GrimHeader, rows, run.Summary)
	default:
		rows := report.StatcheckRows(run.Tests, run.Outcomes)
		md = report.Markdown("Statcheck Results", report.StatcheckHeader, rows, run.Summary)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(report.ToHTML(md))
}

func (a *App) loadRun(w http.ResponseWriter, r *http.Request) (*app.BatchRun, bool) {
	if a.store == nil {
		writeJSON(w, http.StatusNotImplemented, map[string]string{"error": "run persistence is not configured"})
		return nil, false
	}
	id := chi.URLParam(r, "id")
	run, err := a.store.GetRun(r.Context(), core.BatchID(id))
	if err != nil {
		if core.IsNotFoundError(err) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "run not found"})
		} else {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load run"})
		}
		return nil, false
	}
	return run, true
}

func (a *App) persist(r *http.Request, run app.BatchRun) {
	if a.store == nil {
		return
	}
	if err := a.store.SaveRun(r.Context(), run); err != nil {
		// Persistence is best-effort; the caller still gets the verdicts.
		log.Printf("[ui] failed to persist run %s: %v", run.ID, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
