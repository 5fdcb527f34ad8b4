package benchmark

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/app/middleware"
)

// APIBenchmark drives a fixed number of requests against one endpoint with
// bounded concurrency.
type APIBenchmark struct {
	BaseURL     string
	Concurrency int
	Requests    int
	AuthToken   string
	Client      *http.Client
}

// BenchmarkResult aggregates the outcome of one benchmark run.
type BenchmarkResult struct {
	URL            string        `json:"url"`
	Method         string        `json:"method"`
	Concurrency    int           `json:"concurrency"`
	TotalRequests  int           `json:"total_requests"`
	SuccessCount   int           `json:"success_count"`
	FailureCount   int           `json:"failure_count"`
	TotalTime      time.Duration `json:"total_time"`
	AverageTime    time.Duration `json:"average_time"`
	MinTime        time.Duration `json:"min_time"`
	MaxTime        time.Duration `json:"max_time"`
	RequestsPerSec float64       `json:"requests_per_sec"`
	StatusCodes    map[int]int   `json:"status_codes"`
	Errors         []string      `json:"errors"`
}

type requestResult struct {
	duration   time.Duration
	statusCode int
	err        error
}

func NewAPIBenchmark(baseURL string, concurrency, requests int, authToken string) *APIBenchmark {
	return &APIBenchmark{
		BaseURL:     baseURL,
		Concurrency: concurrency,
		Requests:    requests,
		AuthToken:   authToken,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (b *APIBenchmark) RunGET(path string) *BenchmarkResult {
	return b.run(http.MethodGet, b.BaseURL+path, nil)
}

func (b *APIBenchmark) RunPOST(path string, payload interface{}) *BenchmarkResult {
	url := b.BaseURL + path
	body, err := json.Marshal(payload)
	if err != nil {
		return &BenchmarkResult{
			URL:    url,
			Method: http.MethodPost,
			Errors: []string{fmt.Sprintf("encode payload: %v", err)},
		}
	}
	return b.run(http.MethodPost, url, body)
}

func (b *APIBenchmark) RunPUT(path string, payload interface{}) *BenchmarkResult {
	url := b.BaseURL + path
	body, err := json.Marshal(payload)
	if err != nil {
		return &BenchmarkResult{
			URL:    url,
			Method: http.MethodPut,
			Errors: []string{fmt.Sprintf("encode payload: %v", err)},
		}
	}
	return b.run(http.MethodPut, url, body)
}

func (b *APIBenchmark) RunDELETE(path string) *BenchmarkResult {
	return b.run(http.MethodDelete, b.BaseURL+path, nil)
}

func (b *APIBenchmark) run(method, url string, payload []byte) *BenchmarkResult {
	results := make(chan requestResult, b.Requests)
	var wg sync.WaitGroup
	limiter := make(chan struct{}, b.Concurrency)

	startTime := time.Now()

	for i := 0; i < b.Requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiter <- struct{}{}
			defer func() { <-limiter }()

			start := time.Now()
			req, err := http.NewRequest(method, url, bytes.NewReader(payload))
			if err != nil {
				results <- requestResult{err: err}
				return
			}

			req.Header.Set("Content-Type", "application/json")
			if b.AuthToken != "" {
				req.Header.Set(middleware.AuthHeader, b.AuthToken)
			}

			resp, err := b.Client.Do(req)
			if err != nil {
				results <- requestResult{err: err}
				return
			}
			defer resp.Body.Close()

			results <- requestResult{
				duration:   time.Since(start),
				statusCode: resp.StatusCode,
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var minTime time.Duration = 1<<63 - 1
	var maxTime, totalTime time.Duration
	successCount := 0
	failureCount := 0
	statusCodes := make(map[int]int)
	var errs []string

	for result := range results {
		if result.err != nil {
			failureCount++
			errs = append(errs, result.err.Error())
			continue
		}

		totalTime += result.duration
		if result.duration < minTime {
			minTime = result.duration
		}
		if result.duration > maxTime {
			maxTime = result.duration
		}

		statusCodes[result.statusCode]++
		if result.statusCode >= 200 && result.statusCode < 300 {
			successCount++
		} else {
			failureCount++
		}
	}

	totalElapsed := time.Since(startTime)
	averageTime := time.Duration(0)
	if successCount+failureCount > 0 {
		averageTime = totalTime / time.Duration(successCount+failureCount)
	}
	if minTime == 1<<63-1 {
		minTime = 0
	}

	return &BenchmarkResult{
		URL:            url,
		Method:         method,
		Concurrency:    b.Concurrency,
		TotalRequests:  b.Requests,
		SuccessCount:   successCount,
		FailureCount:   failureCount,
		TotalTime:      totalElapsed,
		AverageTime:    averageTime,
		MinTime:        minTime,
		MaxTime:        maxTime,
		RequestsPerSec: float64(b.Requests) / totalElapsed.Seconds(),
		StatusCodes:    statusCodes,
		Errors:         errs,
	}
}

// PrintResult writes a human-readable summary to stdout.
func (r *BenchmarkResult) PrintResult() {
	fmt.Printf("\n%s %s\n", r.Method, r.URL)
	fmt.Printf("  requests: %d, concurrency: %d\n", r.TotalRequests, r.Concurrency)
	fmt.Printf("  success: %d, failure: %d\n", r.SuccessCount, r.FailureCount)
	fmt.Printf("  total: %s, avg: %s, min: %s, max: %s\n", r.TotalTime, r.AverageTime, r.MinTime, r.MaxTime)
	fmt.Printf("  throughput: %.2f req/s\n", r.RequestsPerSec)
	for code, count := range r.StatusCodes {
		fmt.Printf("  status %d: %d\n", code, count)
	}
	for _, e := range r.Errors {
		fmt.Printf("  error: %s\n", e)
	}
}
