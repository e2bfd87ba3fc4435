package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewManager(t *testing.T) {
	m := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))
	if m == nil {
		t.Fatal("NewManager returned nil")
	}
	if m.namespace != "clubmatch" || m.subsystem != "matching" {
		t.Errorf("unexpected defaults: namespace=%q subsystem=%q", m.namespace, m.subsystem)
	}
	if m.refreshInterval != defaultRefreshInterval {
		t.Errorf("unexpected refresh interval: %v", m.refreshInterval)
	}
}

func TestManagerOptions(t *testing.T) {
	buckets := []float64{1, 5, 10}
	m := NewManager(
		WithPrometheusRegistry(prometheus.NewRegistry()),
		WithNamespace("test"),
		WithSubsystem("scoring"),
		WithHistogramBuckets(buckets),
		WithRefreshInterval(time.Minute),
	)

	if m.namespace != "test" {
		t.Errorf("expected namespace test, got %q", m.namespace)
	}
	if m.subsystem != "scoring" {
		t.Errorf("expected subsystem scoring, got %q", m.subsystem)
	}
	if len(m.histogramBuckets) != len(buckets) {
		t.Errorf("expected %d buckets, got %d", len(buckets), len(m.histogramBuckets))
	}
	if m.refreshInterval != time.Minute {
		t.Errorf("expected 1m refresh interval, got %v", m.refreshInterval)
	}
}

func TestManagerOptionsIgnoreInvalid(t *testing.T) {
	m := NewManager(
		WithPrometheusRegistry(prometheus.NewRegistry()),
		WithNamespace(""),
		WithSubsystem(""),
		WithHistogramBuckets(nil),
		WithRefreshInterval(0),
	)

	if m.namespace != "clubmatch" || m.subsystem != "matching" {
		t.Errorf("empty options must not clear defaults: %q/%q", m.namespace, m.subsystem)
	}
	if m.refreshInterval != defaultRefreshInterval {
		t.Errorf("zero interval must not clear default: %v", m.refreshInterval)
	}
}

func TestGlobalRecorders(t *testing.T) {
	// These go through the package-global manager; they must not panic
	// and must land in the custom registry.
	RecordSurveyReceived()
	RecordSurveyDuplicate()
	RecordMatchGenerated()
	RecordScoringLatency(12.5)
	RecordScoringError()
	RecordMatchPersistError()
	UpdateStoreSurveys(10)
	UpdateStoreMatches(5)
	UpdateQueueSize(3)
	UpdateQueueCapacity(100)
	UpdateQueueUtilization(0.03)
	RecordQueueEnqueue()
	RecordQueueDequeue()
	RecordQueueEnqueueError()
	UpdateWorkerActiveCount(4)
	RecordWorkerProcessingLatency(8.0)
	RecordWorkerError()
	RecordHTTPRequest("surveys", "POST", "202")
	RecordHTTPRequestDuration("surveys", "POST", "202", 2.5)
	RecordErrorByComponent("queue", "queue_full")
	UpdateSystemMemoryUsage(1 << 20)
	UpdateSystemGoroutineCount(42)

	families, err := GetRegistry().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	found := map[string]bool{}
	for _, f := range families {
		found[f.GetName()] = true
	}
	for _, name := range []string{
		"clubmatch_matching_surveys_received_total",
		"clubmatch_matching_matches_generated_total",
		"clubmatch_matching_scoring_latency_milliseconds",
		"clubmatch_matching_queue_size",
		"clubmatch_matching_http_requests_total",
		"clubmatch_matching_errors_by_component_total",
	} {
		if !found[name] {
			var names []string
			for n := range found {
				names = append(names, n)
			}
			t.Errorf("metric %s not gathered; have: %s", name, strings.Join(names, ", "))
		}
	}
}

func TestGetRegistry(t *testing.T) {
	if GetRegistry() == nil {
		t.Fatal("GetRegistry returned nil")
	}
}
