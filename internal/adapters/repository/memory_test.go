package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/venusmail/clubmatch/internal/adapters/repository"
	"github.com/venusmail/clubmatch/internal/domain/model"
)

func surveyAt(id, userID string, ts time.Time) model.SurveySubmission {
	return model.SurveySubmission{
		SubmissionID: id,
		UserID:       userID,
		Answers: []model.SurveyAnswer{
			{QuestionID: "major", Value: "computer-science"},
		},
		TS: ts,
	}
}

func matchAt(id, userID string, clubs []string, ts time.Time) model.MatchRecord {
	return model.MatchRecord{
		ID:        id,
		UserID:    userID,
		Clubs:     clubs,
		Timestamp: ts,
	}
}

func TestMemoryStoreSurveys(t *testing.T) {
	convey.Convey("Given an in-memory store", t, func() {
		store := repository.NewMemoryStore()
		ctx := context.Background()
		base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

		convey.Convey("When no survey exists for a user", func() {
			_, err := store.LatestSurvey(ctx, "ghost")
			convey.So(err, convey.ShouldEqual, repository.ErrNoSurvey)
		})

		convey.Convey("When a user submits several surveys", func() {
			convey.So(store.SaveSurvey(ctx, surveyAt("sub-1", "alice", base)), convey.ShouldBeNil)
			convey.So(store.SaveSurvey(ctx, surveyAt("sub-2", "alice", base.Add(time.Hour))), convey.ShouldBeNil)
			convey.So(store.SaveSurvey(ctx, surveyAt("sub-3", "alice", base.Add(30*time.Minute))), convey.ShouldBeNil)

			convey.Convey("Then the latest by timestamp wins", func() {
				latest, err := store.LatestSurvey(ctx, "alice")
				convey.So(err, convey.ShouldBeNil)
				convey.So(latest.SubmissionID, convey.ShouldEqual, "sub-2")
			})

			convey.Convey("Then the survey count covers all users", func() {
				convey.So(store.SaveSurvey(ctx, surveyAt("sub-4", "bob", base)), convey.ShouldBeNil)
				convey.So(store.SurveyCount(ctx), convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When two surveys share a timestamp", func() {
			convey.So(store.SaveSurvey(ctx, surveyAt("sub-1", "alice", base)), convey.ShouldBeNil)
			convey.So(store.SaveSurvey(ctx, surveyAt("sub-2", "alice", base)), convey.ShouldBeNil)

			convey.Convey("Then the most recently written one wins", func() {
				latest, err := store.LatestSurvey(ctx, "alice")
				convey.So(err, convey.ShouldBeNil)
				convey.So(latest.SubmissionID, convey.ShouldEqual, "sub-2")
			})
		})
	})
}

func TestMemoryStoreMatches(t *testing.T) {
	convey.Convey("Given an in-memory store", t, func() {
		store := repository.NewMemoryStore()
		ctx := context.Background()
		base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

		convey.Convey("When no match exists for a user", func() {
			_, err := store.LatestMatch(ctx, "ghost")
			convey.So(err, convey.ShouldEqual, repository.ErrNoMatch)
		})

		convey.Convey("When a user has multiple match records", func() {
			convey.So(store.SaveMatch(ctx, matchAt("m1", "alice", []string{"acm", "ai", "cyber"}, base)), convey.ShouldBeNil)
			convey.So(store.SaveMatch(ctx, matchAt("m2", "alice", []string{"design", "vgdc", "icssc"}, base.Add(time.Hour))), convey.ShouldBeNil)

			convey.Convey("Then the latest record is returned", func() {
				latest, err := store.LatestMatch(ctx, "alice")
				convey.So(err, convey.ShouldBeNil)
				convey.So(latest.ID, convey.ShouldEqual, "m2")
				convey.So(latest.Clubs, convey.ShouldResemble, []string{"design", "vgdc", "icssc"})
			})

			convey.Convey("Then records for other users are isolated", func() {
				_, err := store.LatestMatch(ctx, "bob")
				convey.So(err, convey.ShouldEqual, repository.ErrNoMatch)
			})

			convey.Convey("Then the match count covers all records", func() {
				convey.So(store.MatchCount(ctx), convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When the store closes", func() {
			convey.So(store.Close(), convey.ShouldBeNil)
		})
	})
}
