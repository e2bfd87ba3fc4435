// Package service wires the catalog, matching engine, queue, workers
// and store together, and implements the dependencies required by the
// HTTP API.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	submissionqueue "github.com/venusmail/clubmatch/internal/adapters/mq/queue"
	workerpool "github.com/venusmail/clubmatch/internal/adapters/mq/worker"
	"github.com/venusmail/clubmatch/internal/adapters/repository"
	"github.com/venusmail/clubmatch/internal/domain/catalog"
	"github.com/venusmail/clubmatch/internal/domain/dedupe"
	"github.com/venusmail/clubmatch/internal/domain/matching"
	"github.com/venusmail/clubmatch/internal/domain/model"
	"github.com/venusmail/clubmatch/internal/domain/types"
	"github.com/venusmail/clubmatch/pkg/logger"
	"github.com/venusmail/clubmatch/pkg/metrics"
)

// matcherAdapter adapts the matching engine to worker.Matcher.
type matcherAdapter struct {
	catalog *catalog.Catalog
	topN    int
}

func (a *matcherAdapter) Match(_ context.Context, answers []model.SurveyAnswer) ([]string, error) {
	set := matching.NewAnswerSet(answers)
	return matching.GenerateMatches(a.catalog.Clubs(), set, a.topN), nil
}

// Service implements the API dependencies for the club matching system.
type Service struct {
	mu sync.RWMutex

	store   repository.Store
	deduper dedupe.Deduper
	queue   submissionqueue.Queue
	catalog *catalog.Catalog
	pool    *workerpool.Pool

	workerCount int
	queueSize   int
	dedupeSize  int
	topN        int
	sqlitePath  string

	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of worker goroutines.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the submission queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the deduplication cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithTopN sets how many clubs each match record keeps.
func WithTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topN = n
		}
	}
}

// WithSQLitePath enables the SQLite store at the given file path.
// Without it the service keeps state in memory.
func WithSQLitePath(path string) Option {
	return func(s *Service) {
		s.sqlitePath = path
	}
}

// WithStore injects a pre-built store, overriding WithSQLitePath.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithCatalog injects a pre-built club catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU() * 2,
		queueSize:   10_000,
		dedupeSize:  dedupe.DefaultMaxSize,
		topN:        matching.DefaultTopN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting club matching service...")

	if s.catalog == nil {
		c, err := catalog.New()
		if err != nil {
			return fmt.Errorf("loading club catalog: %w", err)
		}
		s.catalog = c
	}

	if s.store == nil {
		if s.sqlitePath != "" {
			store, err := repository.OpenSQLite(s.sqlitePath, s.logger.Named("sqlite"))
			if err != nil {
				return fmt.Errorf("opening sqlite store: %w", err)
			}
			s.store = store
			s.logger.Info(ctx, "using sqlite store", logger.String("path", s.sqlitePath))
		} else {
			s.store = repository.NewMemoryStore()
			s.logger.Info(ctx, "using in-memory store")
		}
	}

	s.deduper = dedupe.New(
		dedupe.WithMaxSize(s.dedupeSize),
	)
	s.queue = submissionqueue.NewInMemoryQueue(
		submissionqueue.WithCapacity(s.queueSize),
	)

	matcher := &matcherAdapter{catalog: s.catalog, topN: s.topN}
	s.pool = workerpool.NewPool(s.workerCount, s.queue, matcher, s.store)
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "club matching service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queue_size", s.queueSize),
		logger.Int("dedupe_size", s.dedupeSize),
		logger.Int("top_n", s.topN),
		logger.Int("catalog_clubs", s.catalog.Len()),
	)

	return nil
}

// Stop gracefully shuts down the service, draining queued submissions.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping club matching service...")

	if s.pool != nil {
		_ = s.pool.Shutdown(ctx)
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Error(ctx, "error closing store", logger.Error(err))
		}
	}

	s.started = false
	s.logger.Info(ctx, "club matching service stopped")
}

// SeenAndRecord atomically checks whether a submission id was seen and
// records it if not. Returns true if the submission is a duplicate.
func (s *Service) SeenAndRecord(_ context.Context, id string) bool {
	seen := s.deduper.SeenAndRecord(id)
	if seen {
		metrics.RecordSurveyDuplicate()
	}
	return seen
}

// Unrecord removes a submission id from the seen list so a failed
// enqueue can be retried.
func (s *Service) Unrecord(_ context.Context, id string) {
	s.deduper.Unrecord(id)
}

// Enqueue submits a survey for asynchronous scoring. Returns false if
// the queue is full.
func (s *Service) Enqueue(ctx context.Context, sub model.SurveySubmission) bool {
	if sub.TS.IsZero() {
		sub.TS = time.Now().UTC()
	}
	ok := s.queue.Enqueue(ctx, sub)
	if ok {
		metrics.RecordSurveyReceived()
	}
	return ok
}

// LatestMatch returns the most recent match record for a user.
func (s *Service) LatestMatch(ctx context.Context, userID string) (types.Match, error) {
	rec, err := s.store.LatestMatch(ctx, userID)
	if err != nil {
		return types.Match{}, err
	}
	return types.Match{
		UserID:    rec.UserID,
		Clubs:     rec.Clubs,
		Timestamp: rec.Timestamp,
	}, nil
}

// Preview scores the catalog synchronously and returns the top n
// scored clubs without persisting anything.
func (s *Service) Preview(_ context.Context, answers []model.SurveyAnswer, n int) []types.ScoredClub {
	if n <= 0 {
		n = s.topN
	}
	set := matching.NewAnswerSet(answers)
	top := matching.TopMatches(matching.ScoreAllClubs(s.catalog.Clubs(), set), n)

	out := make([]types.ScoredClub, len(top))
	for i, m := range top {
		out[i] = types.ScoredClub{
			ClubID:       m.Club.ID,
			ClubName:     m.Club.Name,
			Score:        m.Score,
			MatchReasons: m.MatchReasons,
		}
	}
	return out
}

// Clubs lists catalog entries, optionally narrowed by a filter.
func (s *Service) Clubs(_ context.Context, filter types.ClubFilter) []types.Club {
	clubs := s.catalog.Clubs()
	switch {
	case filter.Category != "":
		clubs = s.catalog.ByCategory(filter.Category)
	case filter.Tag != "":
		clubs = s.catalog.ByTag(filter.Tag)
	case filter.Query != "":
		clubs = s.catalog.Search(filter.Query)
	}

	out := make([]types.Club, len(clubs))
	for i, c := range clubs {
		out[i] = toAPIClub(c)
	}
	return out
}

// Club returns a single catalog entry by id.
func (s *Service) Club(_ context.Context, id string) (types.Club, bool) {
	c, ok := s.catalog.ByID(id)
	if !ok {
		return types.Club{}, false
	}
	return toAPIClub(c), true
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":      s.started,
		"worker_count": s.workerCount,
		"queue_size":   s.queueSize,
		"dedupe_size":  s.dedupeSize,
		"top_n":        s.topN,
	}

	if s.started {
		queueLen := s.queue.Len(ctx)
		surveys := s.store.SurveyCount(ctx)
		matches := s.store.MatchCount(ctx)

		stats["queue_length"] = queueLen
		stats["catalog_clubs"] = s.catalog.Len()
		stats["surveys_stored"] = surveys
		stats["matches_stored"] = matches

		metrics.UpdateQueueSize(queueLen)
		metrics.UpdateStoreSurveys(surveys)
		metrics.UpdateStoreMatches(matches)
	}

	return stats
}

// Size returns the current number of entries in the deduper.
func (s *Service) Size() int {
	if s.deduper == nil {
		return 0
	}
	return s.deduper.Size()
}

func toAPIClub(c catalog.Club) types.Club {
	return types.Club{
		ID:               c.ID,
		Name:             c.Name,
		FullName:         c.FullName,
		Category:         c.Category,
		Tags:             c.Tags,
		Description:      c.Description,
		Activities:       c.Activities,
		SkillsOffered:    c.SkillsOffered,
		MeetingFrequency: c.MeetingFrequency,
		MembershipLevel:  c.MembershipLevel,
		TimeCommitment:   c.TimeCommitment,
		ClubSize:         c.ClubSize,
		KeyPrograms:      c.KeyPrograms,
	}
}
