package app

import (
	"testing"

	"github.com/bobmcallan/reddable-mcp/internal/common"
	"github.com/bobmcallan/reddable-mcp/internal/config"
)

func testConfig() *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.API.Key = "test-api-key-1234"
	return cfg
}

func TestNew_WiresComponents(t *testing.T) {
	a, err := New(testConfig(), common.NewSilentLogger())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer a.Close()

	if a.Client == nil || a.Registry == nil {
		t.Fatal("expected client and registry")
	}
	if a.HealthHandler == nil || a.VersionHandler == nil || a.ToolsHandler == nil || a.MCPHandler == nil {
		t.Fatal("expected all handlers to be initialized")
	}
	if a.Client.BaseURL() != "http://localhost:3000" {
		t.Errorf("expected default upstream URL, got %s", a.Client.BaseURL())
	}
	if n := a.MCPHandler.ToolCount(); n != 13 {
		t.Errorf("expected 13 tools, got %d", n)
	}
	if a.MCPServer() == nil {
		t.Error("expected an MCP server for stdio")
	}
}

func TestNew_NilLogger(t *testing.T) {
	if _, err := New(testConfig(), nil); err != nil {
		t.Fatalf("New failed: %v", err)
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	cfg := config.NewDefaultConfig()

	if _, err := New(cfg, common.NewSilentLogger()); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	cfg := testConfig()
	cfg.API.URL = "localhost:3000"

	if _, err := New(cfg, common.NewSilentLogger()); err == nil {
		t.Fatal("expected error for URL without scheme")
	}
}

func TestCatalogAdapter(t *testing.T) {
	a, err := New(testConfig(), common.NewSilentLogger())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	summaries := catalogAdapter(a.Registry)()
	if len(summaries) != 13 {
		t.Fatalf("expected 13 summaries, got %d", len(summaries))
	}

	byName := map[string]int{}
	for i, s := range summaries {
		byName[s.Name] = i
		if s.Title == "" {
			t.Errorf("tool %s has no title", s.Name)
		}
	}

	getAds := summaries[byName["getAds"]]
	if !getAds.ReadOnly {
		t.Error("expected getAds to be read-only")
	}
	if len(getAds.Required) != 1 || getAds.Required[0] != "adAccountId" {
		t.Errorf("unexpected getAds required params: %v", getAds.Required)
	}

	createAd := summaries[byName["createAd"]]
	if createAd.ReadOnly {
		t.Error("expected createAd not to be read-only")
	}

	if got := catalogAdapter(nil)(); got != nil {
		t.Errorf("expected nil catalog for nil registry, got %v", got)
	}
}
