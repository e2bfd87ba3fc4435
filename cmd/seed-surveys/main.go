// Command seed-surveys posts randomly generated survey submissions to a
// running instance, useful for load testing and demo data.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var (
	majors      = []string{"computer-science", "business", "design", "engineering", "life-sciences", "social-sciences", "other"}
	interests   = []string{"programming", "networking", "leadership", "research", "creative", "entrepreneurship", "social-impact", "competition", "mentorship", "volunteering"}
	goals       = []string{"career-preparation", "networking", "skill-building", "leadership", "portfolio", "fun", "research"}
	times       = []string{"low", "medium", "high"}
	experiences = []string{"beginner", "intermediate", "advanced"}
)

type surveyRequest struct {
	SubmissionID string         `json:"submission_id"`
	UserID       string         `json:"user_id"`
	Answers      map[string]any `json:"answers"`
	TS           string         `json:"ts"`
}

func main() {
	var (
		url         = flag.String("url", "http://localhost:8080", "base URL of the service")
		count       = flag.Int("count", 100, "number of submissions to send")
		concurrency = flag.Int("concurrency", 8, "number of concurrent senders")
		seed        = flag.Int64("seed", time.Now().UnixNano(), "random seed")
	)
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	requests := make([]surveyRequest, *count)
	for i := range requests {
		requests[i] = randomSurvey(rng, i)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	jobs := make(chan surveyRequest)
	var sent, failed atomic.Int64

	var wg sync.WaitGroup
	for w := 0; w < *concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for req := range jobs {
				if err := post(client, *url+"/surveys", req); err != nil {
					failed.Add(1)
					fmt.Fprintf(os.Stderr, "post failed: %v\n", err)
					continue
				}
				sent.Add(1)
			}
		}()
	}

	start := time.Now()
	for _, req := range requests {
		jobs <- req
	}
	close(jobs)
	wg.Wait()

	fmt.Printf("sent %d submissions (%d failed) in %s\n", sent.Load(), failed.Load(), time.Since(start).Round(time.Millisecond))
}

func randomSurvey(rng *rand.Rand, i int) surveyRequest {
	return surveyRequest{
		SubmissionID: uuid.NewString(),
		UserID:       fmt.Sprintf("user-%04d", i%50),
		Answers: map[string]any{
			"major":           pick(rng, majors),
			"interests":       pickN(rng, interests, 1+rng.Intn(4)),
			"goals":           pickN(rng, goals, 1+rng.Intn(3)),
			"time-commitment": pick(rng, times),
			"experience":      pick(rng, experiences),
		},
		TS: time.Now().UTC().Format(time.RFC3339),
	}
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.Intn(len(pool))]
}

func pickN(rng *rand.Rand, pool []string, n int) []string {
	idx := rng.Perm(len(pool))
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = pool[idx[i]]
	}
	return out
}

func post(client *http.Client, url string, req surveyRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return nil
}
