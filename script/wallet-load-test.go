package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

// OperationRequest is the dynamic wallet invocation payload
type OperationRequest struct {
	Operation  string            `json:"operation"`
	Parameters map[string]string `json:"parameters"`
}

// OperationResponse is the wallet API response envelope
type OperationResponse struct {
	Success bool           `json:"success"`
	Code    string         `json:"cod_error"`
	Message string         `json:"message_error"`
	Data    map[string]any `json:"data"`
}

// TestResult contains metrics for a single payment cycle
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	Code         string
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalCycles       int
	SuccessfulCycles  int
	FailedCycles      int
	TotalTime         time.Duration
	MinResponseTime   time.Duration
	MaxResponseTime   time.Duration
	TotalResponseTime time.Duration
	ResponseTimes     []time.Duration
	CodeCounts        map[string]int
	ErrorCounts       map[string]int
	Lock              sync.Mutex
}

type walletClient struct {
	baseURL string
	client  *http.Client
}

func (c *walletClient) call(op string, params map[string]string) (*OperationResponse, time.Duration, error) {
	payload, err := json.Marshal(OperationRequest{Operation: op, Parameters: params})
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequest("POST", c.baseURL+"/api/wallet", bytes.NewBuffer(payload))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return nil, elapsed, err
	}
	defer resp.Body.Close()

	var decoded OperationResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, elapsed, fmt.Errorf("invalid response body: %w", err)
	}
	return &decoded, elapsed, nil
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalCycles := flag.Int("n", 100, "Total number of payment cycles (pagar + confirmarPago)")
	accounts := flag.Int("a", 3, "Number of wallet accounts to register and fund")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	initialFunds := flag.String("funds", "100000", "Initial recharge amount per account")
	paymentAmount := flag.String("amount", "10.00", "Amount per payment")
	delayMs := flag.Int("delay", 100, "Delay between cycles in milliseconds")
	flag.Parse()

	client := &walletClient{
		baseURL: *baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}

	fmt.Printf("Registering and funding %d accounts...\n", *accounts)
	runID := rand.Intn(1000000)
	holders := make([]map[string]string, 0, *accounts)
	for i := 0; i < *accounts; i++ {
		document := fmt.Sprintf("9%06d%03d", runID, i)
		phone := fmt.Sprintf("300%07d", rand.Intn(10000000))

		resp, _, err := client.call("registroCliente", map[string]string{
			"documento": document,
			"nombres":   fmt.Sprintf("Load Tester %d", i),
			"email":     fmt.Sprintf("load-%d-%d@example.com", runID, i),
			"celular":   phone,
		})
		if err != nil || !resp.Success {
			fmt.Printf("Failed to register account %d: %v (%+v)\n", i, err, resp)
			return
		}

		resp, _, err = client.call("recargarBilletera", map[string]string{
			"documento": document,
			"celular":   phone,
			"valor":     *initialFunds,
		})
		if err != nil || !resp.Success {
			fmt.Printf("Failed to fund account %d: %v (%+v)\n", i, err, resp)
			return
		}

		holders = append(holders, map[string]string{"documento": document, "celular": phone})
	}

	fmt.Printf("Load testing the payment flow across %d accounts\n", len(holders))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total cycles: %d\n", *totalCycles)
	fmt.Printf("Payment amount: %s\n", *paymentAmount)
	fmt.Printf("Delay between cycles: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalCycles:     *totalCycles,
		MinResponseTime: time.Hour,
		CodeCounts:      make(map[string]int),
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalCycles),
	}

	results := make(chan TestResult, *totalCycles)
	jobs := make(chan int, *totalCycles)

	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *paymentAmount, *delayMs, holders, jobs, results)
		}()
	}

	go func() {
		for i := 0; i < *totalCycles; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	go func() {
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulCycles++
			} else {
				stats.FailedCycles++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}
			if result.Code != "" {
				stats.CodeCounts[result.Code]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime
			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulCycles + stats.FailedCycles
			if completed > 0 {
				fmt.Printf("Progress: %d/%d cycles completed (%.1f%%)\n",
					completed, stats.TotalCycles, float64(completed)/float64(stats.TotalCycles)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

// worker runs full payment cycles: pagar, read the echoed token, confirmarPago
func worker(client *walletClient, amount string, delayMs int,
	holders []map[string]string, jobs <-chan int, results chan<- TestResult) {

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		holder := holders[rand.Intn(len(holders))]

		payResp, payTime, err := client.call("pagar", map[string]string{
			"documento": holder["documento"],
			"celular":   holder["celular"],
			"monto":     amount,
		})
		if err != nil {
			results <- TestResult{Success: false, ResponseTime: payTime, Error: err}
			continue
		}
		if !payResp.Success {
			results <- TestResult{
				Success:      false,
				ResponseTime: payTime,
				Code:         payResp.Code,
				Error:        fmt.Errorf("pagar failed with code %s", payResp.Code),
			}
			continue
		}

		sessionID, _ := payResp.Data["session_id"].(string)
		token, _ := payResp.Data["token"].(string)

		confirmResp, confirmTime, err := client.call("confirmarPago", map[string]string{
			"session_id": sessionID,
			"token":      token,
		})
		totalTime := payTime + confirmTime
		if err != nil {
			results <- TestResult{Success: false, ResponseTime: totalTime, Error: err}
			continue
		}

		result := TestResult{
			Success:      confirmResp.Success,
			ResponseTime: totalTime,
			Code:         confirmResp.Code,
		}
		if !confirmResp.Success {
			result.Error = fmt.Errorf("confirmarPago failed with code %s", confirmResp.Code)
		}
		results <- result
	}
}

func printResults(stats *TestStats) {
	tps := float64(stats.SuccessfulCycles) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sortedTimes := make([]time.Duration, len(stats.ResponseTimes))
		copy(sortedTimes, stats.ResponseTimes)

		for i := 0; i < len(sortedTimes); i++ {
			for j := i + 1; j < len(sortedTimes); j++ {
				if sortedTimes[i] > sortedTimes[j] {
					sortedTimes[i], sortedTimes[j] = sortedTimes[j], sortedTimes[i]
				}
			}
		}

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Cycles:       %d\n", stats.TotalCycles)
	fmt.Printf("Successful Cycles:  %d (%.1f%%)\n", stats.SuccessfulCycles,
		float64(stats.SuccessfulCycles)/float64(stats.TotalCycles)*100)
	fmt.Printf("Failed Cycles:      %d (%.1f%%)\n", stats.FailedCycles,
		float64(stats.FailedCycles)/float64(stats.TotalCycles)*100)
	fmt.Printf("Total Test Time:    %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Cycles per second:  %.2f\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Cycle:      %v\n", avgResponseTime)
	fmt.Printf("Minimum Cycle:      %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Cycle:      %v\n", stats.MaxResponseTime)
	fmt.Printf("P50:                %v\n", p50)
	fmt.Printf("P90:                %v\n", p90)
	fmt.Printf("P95:                %v\n", p95)
	fmt.Printf("P99:                %v\n", p99)

	fmt.Println("\n----------------- RESULT CODES -----------------")
	for code, count := range stats.CodeCounts {
		fmt.Printf("Code %s: %d (%.1f%%)\n", code, count,
			float64(count)/float64(stats.TotalCycles)*100)
	}

	if stats.FailedCycles > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalCycles)*100)
		}
	}
	fmt.Println("================================================")
}
