// Package main provides a simple HTTP benchmark tool for the classify endpoint
package main

import (
	"crypto/tls"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

type classifyResponse struct {
	Label string `json:"label"`
}

func main() {
	url := flag.String("url", "http://localhost:8080/classify", "Target URL (number parameter is appended)")
	duration := flag.Duration("duration", 10*time.Second, "Test duration")
	concurrency := flag.Int("c", 10, "Number of concurrent workers")
	insecure := flag.Bool("insecure", false, "Skip TLS certificate verification")
	flag.Parse()

	fmt.Printf("Benchmarking %s\n", *url)
	fmt.Printf("Duration: %v, Concurrency: %d\n\n", *duration, *concurrency)

	// Create HTTP client
	tr := &http.Transport{
		MaxIdleConns:        *concurrency * 2,
		MaxIdleConnsPerHost: *concurrency * 2,
		IdleConnTimeout:     90 * time.Second,
	}
	if *insecure {
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}
	client := &http.Client{
		Transport: tr,
		Timeout:   5 * time.Second,
	}

	var (
		totalRequests int64
		totalErrors   int64
		totalLatency  int64 // in microseconds
		minLatency    int64 = 1<<63 - 1
		maxLatency    int64
		evenCount     int64
		oddCount      int64
		nextNumber    int64
		wg            sync.WaitGroup
		stop          = make(chan struct{})
	)

	// Start workers
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					n := atomic.AddInt64(&nextNumber, 1)
					start := time.Now()
					resp, err := client.Get(fmt.Sprintf("%s?number=%d", *url, n))
					latency := time.Since(start).Microseconds()

					atomic.AddInt64(&totalRequests, 1)
					if err != nil {
						atomic.AddInt64(&totalErrors, 1)
						continue
					}

					var body classifyResponse
					if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
						atomic.AddInt64(&totalErrors, 1)
					} else {
						switch body.Label {
						case "Even":
							atomic.AddInt64(&evenCount, 1)
						case "Odd":
							atomic.AddInt64(&oddCount, 1)
						default:
							atomic.AddInt64(&totalErrors, 1)
						}
					}
					_, _ = io.Copy(io.Discard, resp.Body)
					_ = resp.Body.Close()

					atomic.AddInt64(&totalLatency, latency)
					for {
						cur := atomic.LoadInt64(&minLatency)
						if latency >= cur || atomic.CompareAndSwapInt64(&minLatency, cur, latency) {
							break
						}
					}
					for {
						cur := atomic.LoadInt64(&maxLatency)
						if latency <= cur || atomic.CompareAndSwapInt64(&maxLatency, cur, latency) {
							break
						}
					}
				}
			}
		}()
	}

	time.Sleep(*duration)
	close(stop)
	wg.Wait()

	requests := atomic.LoadInt64(&totalRequests)
	errors := atomic.LoadInt64(&totalErrors)
	if requests == 0 {
		fmt.Println("No requests completed")
		os.Exit(1)
	}

	fmt.Printf("Requests:   %d (%.1f req/s)\n", requests, float64(requests)/duration.Seconds())
	fmt.Printf("Errors:     %d\n", errors)
	fmt.Printf("Even/Odd:   %d/%d\n", atomic.LoadInt64(&evenCount), atomic.LoadInt64(&oddCount))
	fmt.Printf("Latency:    min=%dus avg=%dus max=%dus\n",
		atomic.LoadInt64(&minLatency),
		atomic.LoadInt64(&totalLatency)/requests,
		atomic.LoadInt64(&maxLatency),
	)
}
