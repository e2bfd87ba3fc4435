// Package worker drains the submission queue, scores each survey
// against the club catalog and persists the resulting match records.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/venusmail/clubmatch/internal/domain/model"
	"github.com/venusmail/clubmatch/pkg/logger"
	"github.com/venusmail/clubmatch/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerMultiplier = 2 // multiplier for runtime.NumCPU()
	metricsUpdateInterval   = 5 * time.Second
	poolShutdownTimeout     = 30 * time.Second
)

// Submission is what workers read off the queue.
type Submission = model.SurveySubmission

// Matcher computes ranked club IDs for a set of survey answers.
type Matcher interface {
	Match(ctx context.Context, answers []model.SurveyAnswer) ([]string, error)
}

// Recorder persists surveys and the match records derived from them.
type Recorder interface {
	SaveSurvey(ctx context.Context, s model.SurveySubmission) error
	SaveMatch(ctx context.Context, m model.MatchRecord) error
}

// Queue defines how workers receive submissions.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Submission
}

// Worker processes queued submissions until stopped.
type Worker interface {
	// Run starts the worker loop until ctx is canceled.
	Run(ctx context.Context)

	// Shutdown gracefully stops the worker.
	Shutdown(ctx context.Context) error
}

// InMemoryWorker implements Worker for processing submissions.
type InMemoryWorker struct {
	queue    Queue
	matcher  Matcher
	recorder Recorder
	name     string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewInMemoryWorker creates a worker with configuration options applied.
func NewInMemoryWorker(queue Queue, matcher Matcher, recorder Recorder, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		queue:    queue,
		matcher:  matcher,
		recorder: recorder,
		name:     "worker",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("worker"),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}
	return w
}

// Run starts the worker loop.
func (w *InMemoryWorker) Run(ctx context.Context) {
	defer close(w.done)

	subs := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case s, ok := <-subs:
			if !ok {
				return
			}
			if err := w.processSubmission(ctx, s); err != nil {
				w.logger.Error(ctx, "error processing submission", logger.Error(err))
			}
		}
	}
}

// Shutdown gracefully stops the worker.
func (w *InMemoryWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// processSubmission persists the survey, scores it and persists the
// resulting match record.
func (w *InMemoryWorker) processSubmission(ctx context.Context, s Submission) error {
	start := time.Now()
	defer func() {
		metrics.RecordWorkerProcessingLatency(float64(time.Since(start).Milliseconds()))
	}()

	if err := w.recorder.SaveSurvey(ctx, s); err != nil {
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "survey_persist_error")
		w.logger.Error(ctx, "survey persist failed",
			logger.String("submission_id", s.SubmissionID),
			logger.Error(err),
		)
		return fmt.Errorf("persisting survey %s: %w", s.SubmissionID, err)
	}

	scoreStart := time.Now()
	clubs, err := w.matcher.Match(ctx, s.Answers)
	metrics.RecordScoringLatency(float64(time.Since(scoreStart).Milliseconds()))
	if err != nil {
		metrics.RecordScoringError()
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "scoring_error")
		w.logger.Error(ctx, "scoring failed for submission",
			logger.String("submission_id", s.SubmissionID),
			logger.Error(err),
		)
		return fmt.Errorf("scoring submission %s: %w", s.SubmissionID, err)
	}

	rec := model.MatchRecord{
		ID:        uuid.NewString(),
		UserID:    s.UserID,
		Clubs:     clubs,
		Timestamp: s.TS,
	}
	if err := w.recorder.SaveMatch(ctx, rec); err != nil {
		metrics.RecordMatchPersistError()
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "match_persist_error")
		w.logger.Error(ctx, "match persist failed",
			logger.String("submission_id", s.SubmissionID),
			logger.Error(err),
		)
		return fmt.Errorf("persisting match for %s: %w", s.SubmissionID, err)
	}

	metrics.RecordMatchGenerated()
	return nil
}

// Pool manages multiple workers.
type Pool struct {
	workers  []*InMemoryWorker
	queue    Queue
	matcher  Matcher
	recorder Recorder

	logger logger.Logger
}

// NewPool creates a worker pool. A non-positive count defaults to a
// multiple of the CPU count.
func NewPool(workerCount int, queue Queue, matcher Matcher, recorder Recorder) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU() * defaultWorkerMultiplier
	}

	pool := &Pool{
		workers:  make([]*InMemoryWorker, workerCount),
		queue:    queue,
		matcher:  matcher,
		recorder: recorder,
		logger:   logger.Get().Named("worker-pool"),
	}
	for i := range pool.workers {
		pool.workers[i] = NewInMemoryWorker(
			queue,
			matcher,
			recorder,
			WithName("worker-"+strconv.Itoa(i)),
		)
	}

	metrics.UpdateWorkerActiveCount(workerCount)

	return pool
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Shutdown closes the queue and waits for workers to drain it.
func (p *Pool) Shutdown(ctx context.Context) error {
	if closer, ok := p.queue.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			p.logger.Error(ctx, "error closing queue", logger.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	for i, w := range p.workers {
		select {
		case <-w.done:
		case <-shutdownCtx.Done():
			p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
		}
	}
	return nil
}
