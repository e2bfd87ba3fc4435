package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/venusmail/clubmatch/internal/domain/model"
	"github.com/venusmail/clubmatch/pkg/logger"
)

// surveyRow is the storage model for one survey submission. Answers
// are stored as a JSON document; SQLite keeps JSON as text natively.
type surveyRow struct {
	ID           string    `gorm:"primaryKey;size:36"`
	SubmissionID string    `gorm:"uniqueIndex;size:128"`
	UserID       string    `gorm:"index;size:128"`
	Answers      string    `gorm:"type:text"`
	TS           time.Time `gorm:"index"`
}

func (surveyRow) TableName() string { return "surveys" }

// matchRow is the storage model for one match record. Club IDs are
// comma-joined; IDs never contain commas.
type matchRow struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"index;size:128"`
	Clubs     string    `gorm:"type:text"`
	Timestamp time.Time `gorm:"index"`
}

func (matchRow) TableName() string { return "matches" }

// SQLiteStore persists surveys and match records in a SQLite file via
// GORM, using the pure-Go driver so builds stay CGO-free.
type SQLiteStore struct {
	db *gorm.DB
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (creating if necessary) the database at path, runs
// migrations and returns a ready store. WAL mode is enabled so reads
// do not block writes.
func OpenSQLite(path string, log logger.Logger) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating database directory %s: %w", dir, err)
		}
	}

	dsn := fmt.Sprintf("%s?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)", path)

	gl := gormlogger.New(
		logWriter{log: log},
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gl,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	if err := db.AutoMigrate(&surveyRow{}, &matchRow{}); err != nil {
		return nil, fmt.Errorf("migrating sqlite schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// SaveSurvey persists a submission. Re-saving the same submission ID
// is treated as success so worker retries stay idempotent.
func (s *SQLiteStore) SaveSurvey(ctx context.Context, sub model.SurveySubmission) error {
	answers, err := json.Marshal(sub.Answers)
	if err != nil {
		return fmt.Errorf("encoding survey answers: %w", err)
	}
	row := surveyRow{
		ID:           uuid.NewString(),
		SubmissionID: sub.SubmissionID,
		UserID:       sub.UserID,
		Answers:      string(answers),
		TS:           sub.TS,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("saving survey: %w", err)
	}
	return nil
}

// LatestSurvey returns the newest submission for a user.
func (s *SQLiteStore) LatestSurvey(ctx context.Context, userID string) (model.SurveySubmission, error) {
	var row surveyRow
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("ts DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.SurveySubmission{}, ErrNoSurvey
		}
		return model.SurveySubmission{}, fmt.Errorf("loading survey: %w", err)
	}

	var answers []model.SurveyAnswer
	if err := json.Unmarshal([]byte(row.Answers), &answers); err != nil {
		return model.SurveySubmission{}, fmt.Errorf("decoding survey answers: %w", err)
	}
	return model.SurveySubmission{
		SubmissionID: row.SubmissionID,
		UserID:       row.UserID,
		Answers:      answers,
		TS:           row.TS,
	}, nil
}

// SaveMatch persists a match record.
func (s *SQLiteStore) SaveMatch(ctx context.Context, rec model.MatchRecord) error {
	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}
	row := matchRow{
		ID:        id,
		UserID:    rec.UserID,
		Clubs:     strings.Join(rec.Clubs, ","),
		Timestamp: rec.Timestamp,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("saving match record: %w", err)
	}
	return nil
}

// LatestMatch returns the newest match record for a user.
func (s *SQLiteStore) LatestMatch(ctx context.Context, userID string) (model.MatchRecord, error) {
	var row matchRow
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.MatchRecord{}, ErrNoMatch
		}
		return model.MatchRecord{}, fmt.Errorf("loading match record: %w", err)
	}

	var clubs []string
	if row.Clubs != "" {
		clubs = strings.Split(row.Clubs, ",")
	}
	return model.MatchRecord{
		ID:        row.ID,
		UserID:    row.UserID,
		Clubs:     clubs,
		Timestamp: row.Timestamp,
	}, nil
}

// SurveyCount returns the total number of stored surveys.
func (s *SQLiteStore) SurveyCount(ctx context.Context) int {
	var n int64
	if err := s.db.WithContext(ctx).Model(&surveyRow{}).Count(&n).Error; err != nil {
		return 0
	}
	return int(n)
}

// MatchCount returns the total number of stored match records.
func (s *SQLiteStore) MatchCount(ctx context.Context) int {
	var n int64
	if err := s.db.WithContext(ctx).Model(&matchRow{}).Count(&n).Error; err != nil {
		return 0
	}
	return int(n)
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// logWriter adapts our Logger to GORM's logger.Writer interface.
type logWriter struct {
	log logger.Logger
}

func (w logWriter) Printf(format string, args ...interface{}) {
	w.log.Warn(context.Background(), fmt.Sprintf(format, args...))
}
