package host

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"houndfall/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.DefaultHostConfig()
	return NewServer(cfg, nil)
}

func TestNewRouterHasNoSideEffects(t *testing.T) {
	s := newTestServer(t)
	if s.Router() == nil {
		t.Fatal("router should not be nil")
	}
	// Construction alone must not start the tick loop or bind a socket.
}

func TestInitThenSnapshotRoundTrip(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	body := bytes.NewReader([]byte(`{"seed": 7, "weapon": 0}`))
	resp, err := http.Post(ts.URL+"/api/init", "application/json", body)
	if err != nil {
		t.Fatalf("init request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var initResult map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&initResult); err != nil {
		t.Fatalf("decoding init response: %v", err)
	}
	if initResult["session"] == "" {
		t.Fatal("expected a non-empty session token")
	}

	snapResp, err := http.Get(ts.URL + "/api/snapshot")
	if err != nil {
		t.Fatalf("snapshot request failed: %v", err)
	}
	defer snapResp.Body.Close()

	var snap SnapshotDTO
	if err := json.NewDecoder(snapResp.Body).Decode(&snap); err != nil {
		t.Fatalf("decoding snapshot: %v", err)
	}
	if snap.MaxHP <= 0 {
		t.Errorf("expected a positive max HP after init, got %v", snap.MaxHP)
	}
}

func TestSetInputThenTickAdvancesPosition(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	if _, err := http.Post(ts.URL+"/api/init", "application/json", bytes.NewReader([]byte(`{}`))); err != nil {
		t.Fatalf("init request failed: %v", err)
	}

	before := s.snapshotForTest()

	frameBody := bytes.NewReader([]byte(`{"moveX": 1, "moveY": 0}`))
	resp, err := http.Post(ts.URL+"/api/input", "application/json", frameBody)
	if err != nil {
		t.Fatalf("input request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	s.tickOnce(1.0 / 60.0)

	after := s.snapshotForTest()
	if after.Tick != before.Tick+1 {
		t.Errorf("expected tick to advance by 1, got %d -> %d", before.Tick, after.Tick)
	}
}

func TestShellStatusRoundTrip(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/shell/buy-item", "application/json", bytes.NewReader([]byte(`{"index": 2}`)))
	if err != nil {
		t.Fatalf("buy-item request failed: %v", err)
	}
	resp.Body.Close()

	statusResp, err := http.Get(ts.URL + "/api/shell/status")
	if err != nil {
		t.Fatalf("status request failed: %v", err)
	}
	defer statusResp.Body.Close()

	var status ShellStatus
	if err := json.NewDecoder(statusResp.Body).Decode(&status); err != nil {
		t.Fatalf("decoding status: %v", err)
	}
	if len(status.ShopPurchases) != 1 || status.ShopPurchases[0] != 2 {
		t.Errorf("expected one purchase of index 2, got %+v", status.ShopPurchases)
	}
}

func TestHealthzReportsOK(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}
