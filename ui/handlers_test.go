package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"veristat/app"
	"veristat/domain/verdict"
	"veristat/internal/storekit"
)

func newTestApp(store *storekit.InMemoryRunStore) *App {
	service := app.NewVerifyService(0, 2)
	if store == nil {
		return NewApp(service, nil)
	}
	return NewApp(service, store)
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestHandleHealth(t *testing.T) {
	w := get(t, newTestApp(nil).Router(), "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("health: got %d", w.Code)
	}
}

func TestHandleStatcheck(t *testing.T) {
	store := storekit.NewInMemoryRunStore()
	handler := newTestApp(store).Router()

	body := `{"tests": [
		{"test_type": "t", "df1": 30, "test_value": 1.96, "test_value_text": "1.96",
		 "operator": "=", "reported_p_value": 0.059, "reported_p_value_text": "0.059"},
		{"test_type": "r", "test_value": 0.45, "operator": "=", "reported_p_value": 0.012}
	]}`
	w := postJSON(t, handler, "/api/v1/statcheck", body)
	if w.Code != http.StatusOK {
		t.Fatalf("statcheck: got %d, body %s", w.Code, w.Body.String())
	}

	var run app.BatchRun
	if err := json.Unmarshal(w.Body.Bytes(), &run); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if run.Kind != app.RunStatcheck {
		t.Errorf("run kind: got %q", run.Kind)
	}
	if len(run.Outcomes) != 2 {
		t.Fatalf("want 2 outcomes, got %d", len(run.Outcomes))
	}
	if run.Outcomes[0].Status != verdict.StatusVerified || run.Outcomes[0].Verdict == nil || !run.Outcomes[0].Verdict.Consistent {
		t.Errorf("first outcome should be verified consistent: %+v", run.Outcomes[0])
	}
	// correlation without df is excluded, not a batch failure
	if run.Outcomes[1].Status != verdict.StatusUnverifiable {
		t.Errorf("second outcome should be unverifiable: %+v", run.Outcomes[1])
	}
	if run.Summary.Total != 2 {
		t.Errorf("summary total: got %d", run.Summary.Total)
	}

	// the run was persisted and is retrievable by ID
	w = get(t, handler, "/api/v1/runs/"+string(run.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("get run: got %d", w.Code)
	}
}

func TestHandleStatcheck_BadRequests(t *testing.T) {
	handler := newTestApp(nil).Router()

	if w := postJSON(t, handler, "/api/v1/statcheck", "{not json"); w.Code != http.StatusBadRequest {
		t.Errorf("malformed body: got %d", w.Code)
	}
	if w := postJSON(t, handler, "/api/v1/statcheck", `{"tests": []}`); w.Code != http.StatusBadRequest {
		t.Errorf("empty batch: got %d", w.Code)
	}
}

func TestHandleGrim(t *testing.T) {
	handler := newTestApp(storekit.NewInMemoryRunStore()).Router()

	body := `{"means": [
		{"reported_mean": 3.67, "reported_mean_text": "3.67", "sample_size": 30},
		{"reported_mean": 0.5, "reported_mean_text": "0.5", "sample_size": 3}
	]}`
	w := postJSON(t, handler, "/api/v1/grim", body)
	if w.Code != http.StatusOK {
		t.Fatalf("grim: got %d, body %s", w.Code, w.Body.String())
	}

	var run app.BatchRun
	if err := json.Unmarshal(w.Body.Bytes(), &run); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if run.Kind != app.RunGrim {
		t.Errorf("run kind: got %q", run.Kind)
	}
	if run.Outcomes[0].Grim == nil || !run.Outcomes[0].Grim.Possible {
		t.Errorf("3.67/30 should be possible: %+v", run.Outcomes[0])
	}
	if run.Outcomes[1].Grim == nil || run.Outcomes[1].Grim.Possible {
		t.Errorf("0.5/3 should be impossible: %+v", run.Outcomes[1])
	}
}

func TestHandleRunReport(t *testing.T) {
	store := storekit.NewInMemoryRunStore()
	handler := newTestApp(store).Router()

	body := `{"tests": [
		{"test_type": "t", "df1": 30, "test_value": 1.96, "test_value_text": "1.96",
		 "operator": "=", "reported_p_value": 0.059, "reported_p_value_text": "0.059"}
	]}`
	w := postJSON(t, handler, "/api/v1/statcheck", body)
	var run app.BatchRun
	if err := json.Unmarshal(w.Body.Bytes(), &run); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	w = get(t, handler, "/runs/"+string(run.ID)+"/report")
	if w.Code != http.StatusOK {
		t.Fatalf("report: got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type: got %q", ct)
	}
	html := w.Body.String()
	if !strings.Contains(html, "<table>") {
		t.Errorf("report should render a table:\n%s", html)
	}
	if !strings.Contains(html, "t(30) = 1.96") {
		t.Errorf("report should carry the APA string:\n%s", html)
	}
}

func TestRunEndpoints_NotFoundAndStateless(t *testing.T) {
	withStore := newTestApp(storekit.NewInMemoryRunStore()).Router()
	if w := get(t, withStore, "/api/v1/runs/does-not-exist"); w.Code != http.StatusNotFound {
		t.Errorf("unknown run: got %d", w.Code)
	}

	stateless := newTestApp(nil).Router()
	if w := get(t, stateless, "/api/v1/runs"); w.Code != http.StatusNotImplemented {
		t.Errorf("stateless list: got %d", w.Code)
	}
	if w := get(t, stateless, "/api/v1/runs/abc"); w.Code != http.StatusNotImplemented {
		t.Errorf("stateless get: got %d", w.Code)
	}
}

func TestHandleListRuns(t *testing.T) {
	store := storekit.NewInMemoryRunStore()
	handler := newTestApp(store).Router()

	body := `{"means": [{"reported_mean": 3.67, "reported_mean_text": "3.67", "sample_size": 30}]}`
	if w := postJSON(t, handler, "/api/v1/grim", body); w.Code != http.StatusOK {
		t.Fatalf("seed run: got %d", w.Code)
	}

	w := get(t, handler, "/api/v1/runs")
	if w.Code != http.StatusOK {
		t.Fatalf("list runs: got %d", w.Code)
	}
	var runs []app.BatchRun
	if err := json.Unmarshal(w.Body.Bytes(), &runs); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("want 1 run, got %d", len(runs))
	}
}
