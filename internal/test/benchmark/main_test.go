package benchmark

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"
)

// TestConfig points the benchmarks at a running server. Benchmarks are
// skipped entirely unless BENCHMARK_BASE_URL is set, so the package stays
// inert under a plain `go test ./...`.
type TestConfig struct {
	BaseURL     string `json:"base_url"`
	AdminEmail  string `json:"admin_email"`
	AdminPass   string `json:"admin_pass"`
	Concurrency int    `json:"concurrency"`
	Requests    int    `json:"requests"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Error  bool `json:"error"`
	Object struct {
		Token string `json:"token"`
	} `json:"object"`
}

var (
	cfg       TestConfig
	authToken string
	enabled   bool
)

func TestMain(m *testing.M) {
	loadConfig()

	if cfg.BaseURL == "" {
		// No target server configured, run (and skip) the tests.
		os.Exit(m.Run())
	}
	enabled = true

	if err := login(); err != nil {
		fmt.Printf("benchmark login failed: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

func loadConfig() {
	cfg = TestConfig{
		BaseURL:     os.Getenv("BENCHMARK_BASE_URL"),
		AdminEmail:  os.Getenv("BENCHMARK_ADMIN_EMAIL"),
		AdminPass:   os.Getenv("BENCHMARK_ADMIN_PASSWORD"),
		Concurrency: 10,
		Requests:    100,
	}

	data, err := os.ReadFile("test_config.json")
	if err == nil {
		// File settings override environment.
		_ = json.Unmarshal(data, &cfg)
	}
}

func login() error {
	body, err := json.Marshal(loginRequest{Email: cfg.AdminEmail, Password: cfg.AdminPass})
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(cfg.BaseURL+"/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login returned status %d", resp.StatusCode)
	}

	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return err
	}
	if out.Object.Token == "" {
		return fmt.Errorf("login response carried no token")
	}
	authToken = out.Object.Token
	return nil
}

func runListBenchmark(t *testing.T, path string) {
	if !enabled {
		t.Skip("BENCHMARK_BASE_URL not set")
	}

	b := NewAPIBenchmark(cfg.BaseURL, cfg.Concurrency, cfg.Requests, authToken)
	result := b.RunGET(path)
	result.PrintResult()

	if result.FailureCount > 0 {
		t.Errorf("GET %s: %d of %d requests failed", path, result.FailureCount, result.TotalRequests)
	}
}

func TestCommunityList(t *testing.T)   { runListBenchmark(t, "/communities") }
func TestResidentList(t *testing.T)    { runListBenchmark(t, "/residents") }
func TestReservationList(t *testing.T) { runListBenchmark(t, "/reservations") }
func TestInvoiceList(t *testing.T)     { runListBenchmark(t, "/invoices") }
func TestIncidentList(t *testing.T)    { runListBenchmark(t, "/incidents") }
func TestParcelList(t *testing.T)      { runListBenchmark(t, "/parcels") }
