package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalObservations = 64000 // Total number of observations to generate
	hostsPerSubnet    = 16    // Hosts spread across each /24 subnet
	subnetCount       = 4     // Distinct /24 subnets observations fall into
)

// ### End - fixed configs

type observation struct {
	Host      string `json:"host,omitempty"`
	Increment int64  `json:"increment"`
}

type batchToSend struct {
	batchIndex int
	jsonData   []byte
}

// main runs the e2e scenario: 001_basic_break_flush
//
// This scenario tests the end-to-end flow of observation ingestion, per-filter
// counting with subnet aggregation, and periodic break flushing. It sends 64,000
// observations for a single metric, spread across 64 hosts in 4 /24 subnets.
//
// What it tests:
//   - Observation batch ingestion via POST /metrics/{metricID}/observations
//   - Observation event production and partitioned consumption
//   - Filter matching and mask-based subnet aggregation
//   - Counter accumulation per aggregated index
//   - Break flush emitting one record per subnet and resetting counters
//   - Threshold notices firing once per cooldown when a subnet count crosses
//
// Expected results (with the tcp_syn/syn-per-net filter from configs/configs.yml):
//   - All batches return 202 Accepted
//   - After the 30s break interval, four break log lines appear, one per subnet,
//     each carrying a value of 16,000
//   - One notice per subnet is raised (16,000 >= threshold 1000), none repeated
//     within the 10m cooldown
//   - A second break interval with no traffic flushes nothing (counters were reset)
func main() {
	// these configs can be changed to run the scenario
	baseURL := getEnv("BASE_URL", "http://localhost:8080") // Base URL of the metric engine API server
	metricID := getEnv("METRIC_ID", "tcp_syn")             // Metric the observations are reported under
	itemsPerBatch := getEnvInt("ITEMS_PER_BATCH", 20)      // Number of observations per batch
	parallel := getEnvInt("PARALLEL", 2)                   // Number of concurrent batch requests to send

	// Validate itemsPerBatch divides evenly
	if totalObservations%itemsPerBatch != 0 {
		fmt.Fprintf(os.Stderr, "ERROR: totalObservations (%d) must be divisible by ITEMS_PER_BATCH (%d)\n", totalObservations, itemsPerBatch)
		os.Exit(1)
	}

	batchCount := totalObservations / itemsPerBatch

	fmt.Println("Starting e2e scenario: 001_basic_break_flush")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("METRIC_ID: %s\n", metricID)
	fmt.Printf("ITEMS_PER_BATCH: %d\n", itemsPerBatch)
	fmt.Printf("BATCH_COUNT: %d\n", batchCount)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("TOTAL_OBSERVATIONS: %d\n", totalObservations)
	fmt.Println()

	// Generate all batches up front
	fmt.Printf("Generating all %d batches...\n", batchCount)
	batchesToSend := make([]batchToSend, 0, batchCount)
	for batchIndex := 1; batchIndex <= batchCount; batchIndex++ {
		jsonData, err := generateBatchJSON(batchIndex, itemsPerBatch)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to generate JSON for batch %d: %v\n", batchIndex, err)
			os.Exit(1)
		}
		batchesToSend = append(batchesToSend, batchToSend{batchIndex: batchIndex, jsonData: jsonData})
	}
	fmt.Printf("Generated %d batches\n", len(batchesToSend))
	fmt.Println()

	// Create worker pool for parallel batch sending
	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []error
	var acceptedRequest int64 // 202 status code
	var invalidRequest int64  // 400 status code
	var internalRequest int64 // 500 status code

	// Send all batches
	for _, batch := range batchesToSend {
		wg.Add(1)
		workerChan <- struct{}{} // Acquire worker slot

		go func(b batchToSend) {
			defer wg.Done()
			defer func() { <-workerChan }() // Release worker slot

			statusCode, err := sendBatch(baseURL, metricID, b)
			if err != nil {
				mu.Lock()
				errors = append(errors, fmt.Errorf("batch %d: %w", b.batchIndex, err))
				mu.Unlock()
				fmt.Fprintf(os.Stderr, "ERROR: Batch %d failed: %v\n", b.batchIndex, err)
				return
			}

			switch statusCode {
			case http.StatusAccepted:
				atomic.AddInt64(&acceptedRequest, 1)
			case http.StatusBadRequest:
				atomic.AddInt64(&invalidRequest, 1)
			case http.StatusInternalServerError:
				atomic.AddInt64(&internalRequest, 1)
			}

			fmt.Printf("Batch %d completed (status %d)\n", b.batchIndex, statusCode)
		}(batch)
	}

	// Wait for all batches to complete
	wg.Wait()

	fmt.Println()
	if len(errors) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d batch sends failed\n", len(errors))
		os.Exit(1)
	}

	// Print statistics
	accepted := atomic.LoadInt64(&acceptedRequest)
	invalid := atomic.LoadInt64(&invalidRequest)
	internal := atomic.LoadInt64(&internalRequest)

	fmt.Println("All batches completed successfully")
	fmt.Println("=== Statistics ===")
	fmt.Printf("Accepted request: %d\n", accepted)
	fmt.Printf("Invalid request: %d\n", invalid)
	fmt.Printf("Internal request: %d\n", internal)
	fmt.Printf("Total observations sent: %d\n", totalObservations)
	fmt.Println()
	fmt.Println("Now wait past the filter's break interval and inspect the server log:")
	fmt.Println("  - one break record per /24 subnet, each with value 16000")
	fmt.Println("  - one notice per subnet that crossed the threshold")
	fmt.Println("Scenario completed successfully")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// generateBatchJSON builds one batch of observations. Hosts cycle through
// 10.0.<subnet>.<host> so every subnet receives exactly totalObservations/subnetCount
// observations and every host the same share of those.
func generateBatchJSON(batchIndex, batchSize int) ([]byte, error) {
	startIndex := (batchIndex - 1) * batchSize

	observations := make([]observation, 0, batchSize)
	for i := 0; i < batchSize; i++ {
		seq := startIndex + i
		subnet := seq % subnetCount
		host := (seq / subnetCount) % hostsPerSubnet
		observations = append(observations, observation{
			Host:      fmt.Sprintf("10.0.%d.%d", subnet, host+1),
			Increment: 1,
		})
	}

	return json.Marshal(observations)
}

func sendBatch(baseURL, metricID string, batch batchToSend) (int, error) {
	url := fmt.Sprintf("%s/metrics/%s/observations", baseURL, metricID)
	req, err := http.NewRequest("POST", url, bytes.NewReader(batch.jsonData))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{
		Timeout: 30 * time.Second,
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return resp.StatusCode, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return resp.StatusCode, nil
}
