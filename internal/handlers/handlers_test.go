package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bobmcallan/reddable-mcp/internal/config"
)

func TestHealthHandler_ReturnsOK(t *testing.T) {
	handler := NewHealthHandler(func() int { return 13 })

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var body healthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if body.Status != "ok" {
		t.Errorf("expected status ok, got %s", body.Status)
	}
	if body.Tools != 13 {
		t.Errorf("expected 13 tools, got %d", body.Tools)
	}
	if body.UptimeSeconds < 0 {
		t.Errorf("expected non-negative uptime, got %d", body.UptimeSeconds)
	}
}

func TestHealthHandler_NilToolCount(t *testing.T) {
	handler := NewHealthHandler(nil)

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	var body healthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if body.Status != "ok" || body.Tools != 0 {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestHealthHandler_AllowsHEAD(t *testing.T) {
	handler := NewHealthHandler(nil)

	req := httptest.NewRequest("HEAD", "/api/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}

func TestHealthHandler_RejectsNonGET(t *testing.T) {
	handler := NewHealthHandler(nil)

	req := httptest.NewRequest("POST", "/api/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
	if allow := w.Header().Get("Allow"); allow != "GET, HEAD" {
		t.Errorf("expected Allow GET, HEAD, got %q", allow)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if body["status"] != "error" {
		t.Errorf("expected status error, got %s", body["status"])
	}
}

func TestVersionHandler_ReturnsJSON(t *testing.T) {
	handler := NewVersionHandler("Reddit Ads MCP")

	req := httptest.NewRequest("GET", "/api/version", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	contentType := w.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", contentType)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if body["name"] != "Reddit Ads MCP" {
		t.Errorf("expected name Reddit Ads MCP, got %s", body["name"])
	}
	if body["version"] != config.GetVersion() {
		t.Errorf("expected version %s, got %s", config.GetVersion(), body["version"])
	}
	if _, ok := body["build"]; !ok {
		t.Error("expected build field in response")
	}
	if _, ok := body["git_commit"]; !ok {
		t.Error("expected git_commit field in response")
	}
}

func TestVersionHandler_RejectsNonGET(t *testing.T) {
	handler := NewVersionHandler("x")

	req := httptest.NewRequest("DELETE", "/api/version", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestToolsHandler_ListsCatalog(t *testing.T) {
	handler := NewToolsHandler(func() []ToolSummary {
		return []ToolSummary{
			{Name: "getCampaigns", Title: "Get Campaigns", ReadOnly: true, Required: []string{"adAccountId"}},
			{Name: "createAd", Title: "Create Reddit Ad", Required: []string{"adAccountId", "name", "configuredStatus"}},
		}
	})

	req := httptest.NewRequest("GET", "/api/tools", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body struct {
		Count int           `json:"count"`
		Tools []ToolSummary `json:"tools"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if body.Count != 2 || len(body.Tools) != 2 {
		t.Fatalf("expected 2 tools, got count=%d len=%d", body.Count, len(body.Tools))
	}
	if body.Tools[0].Name != "getCampaigns" || !body.Tools[0].ReadOnly {
		t.Errorf("unexpected first tool: %+v", body.Tools[0])
	}
	if len(body.Tools[1].Required) != 3 {
		t.Errorf("expected 3 required params, got %v", body.Tools[1].Required)
	}
}

func TestToolsHandler_NilCatalog(t *testing.T) {
	for name, handler := range map[string]*ToolsHandler{
		"nil func":   NewToolsHandler(nil),
		"nil result": NewToolsHandler(func() []ToolSummary { return nil }),
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/tools", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}
			var body map[string]json.RawMessage
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if string(body["tools"]) != "[]" {
				t.Errorf("expected empty tools array, got %s", body["tools"])
			}
			if string(body["count"]) != "0" {
				t.Errorf("expected count 0, got %s", body["count"])
			}
		})
	}
}

func TestRequireMethod_MultipleMethods(t *testing.T) {
	req := httptest.NewRequest("PUT", "/api/x", nil)
	w := httptest.NewRecorder()

	if RequireMethod(w, req, http.MethodPost, http.MethodDelete) {
		t.Fatal("expected PUT to be rejected")
	}
	if allow := w.Header().Get("Allow"); allow != "POST, DELETE" {
		t.Errorf("expected Allow POST, DELETE, got %q", allow)
	}

	req = httptest.NewRequest("DELETE", "/api/x", nil)
	if !RequireMethod(httptest.NewRecorder(), req, http.MethodPost, http.MethodDelete) {
		t.Error("expected DELETE to be accepted")
	}
}

func TestWriteJSON_KeepsURLsUnescaped(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSON(w, http.StatusOK, map[string]string{"url": "https://example.com/?a=1&b=2"})

	if got := w.Body.String(); got != "{\"url\":\"https://example.com/?a=1&b=2\"}\n" {
		t.Errorf("unexpected body %q", got)
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusBadRequest, "bad input")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if body["error"] != "bad input" || body["status"] != "error" {
		t.Errorf("unexpected body: %v", body)
	}
}
