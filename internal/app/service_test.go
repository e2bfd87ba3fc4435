package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/venusmail/clubmatch/internal/adapters/repository"
	service "github.com/venusmail/clubmatch/internal/app"
	"github.com/venusmail/clubmatch/internal/domain/model"
	"github.com/venusmail/clubmatch/internal/domain/types"
	"github.com/venusmail/clubmatch/pkg/logger"
)

func init() {
	logger.Init()
}

func startedService(t *testing.T) *service.Service {
	t.Helper()
	svc := service.New(
		service.WithWorkerCount(2),
		service.WithQueueSize(64),
		service.WithDedupeSize(128),
		service.WithStore(repository.NewMemoryStore()),
	)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("failed to start service: %v", err)
	}
	t.Cleanup(svc.Stop)
	return svc
}

func csSubmission(id, userID string) model.SurveySubmission {
	return model.SurveySubmission{
		SubmissionID: id,
		UserID:       userID,
		Answers: []model.SurveyAnswer{
			{QuestionID: "major", Value: "computer-science"},
			{QuestionID: "interests", Values: []string{"programming"}},
			{QuestionID: "goals", Values: []string{"career-preparation"}},
			{QuestionID: "time-commitment", Value: "medium"},
			{QuestionID: "experience", Value: "beginner"},
		},
		TS: time.Now().UTC(),
	}
}

func awaitMatch(svc *service.Service, userID string) (types.Match, bool) {
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if m, err := svc.LatestMatch(context.Background(), userID); err == nil {
			return m, true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return types.Match{}, false
}

func TestServiceLifecycle(t *testing.T) {
	convey.Convey("Given a service", t, func() {
		svc := service.New(service.WithStore(repository.NewMemoryStore()))
		ctx := context.Background()

		convey.Convey("When started twice", func() {
			convey.So(svc.Start(ctx), convey.ShouldBeNil)
			convey.So(svc.Start(ctx), convey.ShouldBeNil)

			convey.Convey("Then stop is idempotent too", func() {
				svc.Stop()
				svc.Stop()
			})
		})
	})
}

func TestServiceSubmissionFlow(t *testing.T) {
	convey.Convey("Given a started service", t, func() {
		svc := startedService(t)
		ctx := context.Background()

		convey.Convey("When a survey is submitted", func() {
			sub := csSubmission("sub-1", "alice")
			convey.So(svc.SeenAndRecord(ctx, sub.SubmissionID), convey.ShouldBeFalse)
			convey.So(svc.Enqueue(ctx, sub), convey.ShouldBeTrue)

			convey.Convey("Then a match record eventually appears", func() {
				match, ok := awaitMatch(svc, "alice")
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(match.UserID, convey.ShouldEqual, "alice")
				convey.So(match.Clubs, convey.ShouldResemble, []string{"acm", "ai", "cyber"})
			})

			convey.Convey("Then the same submission id is flagged as duplicate", func() {
				convey.So(svc.SeenAndRecord(ctx, sub.SubmissionID), convey.ShouldBeTrue)
			})

			convey.Convey("Then unrecording allows a retry", func() {
				svc.Unrecord(ctx, sub.SubmissionID)
				convey.So(svc.SeenAndRecord(ctx, sub.SubmissionID), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When a submission has no timestamp", func() {
			sub := csSubmission("sub-2", "bob")
			sub.TS = time.Time{}
			convey.So(svc.Enqueue(ctx, sub), convey.ShouldBeTrue)

			convey.Convey("Then the match record is stamped", func() {
				match, ok := awaitMatch(svc, "bob")
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(match.Timestamp.IsZero(), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When asking for a user with no matches", func() {
			_, err := svc.LatestMatch(ctx, "ghost")
			convey.So(err, convey.ShouldEqual, repository.ErrNoMatch)
		})
	})
}

func TestServicePreview(t *testing.T) {
	convey.Convey("Given a started service", t, func() {
		svc := startedService(t)
		ctx := context.Background()
		answers := csSubmission("sub-1", "alice").Answers

		convey.Convey("When previewing with an explicit limit", func() {
			scored := svc.Preview(ctx, answers, 5)

			convey.Convey("Then five scored clubs come back in rank order", func() {
				convey.So(len(scored), convey.ShouldEqual, 5)
				convey.So(scored[0].ClubID, convey.ShouldEqual, "acm")
				convey.So(scored[0].ClubName, convey.ShouldEqual, "ACM")
				convey.So(scored[0].Score, convey.ShouldEqual, 62)
				convey.So(scored[0].MatchReasons, convey.ShouldContain, "Perfect major match for computer-science")
				for i := 1; i < len(scored); i++ {
					convey.So(scored[i].Score, convey.ShouldBeLessThanOrEqualTo, scored[i-1].Score)
				}
			})
		})

		convey.Convey("When previewing without a limit", func() {
			scored := svc.Preview(ctx, answers, 0)

			convey.Convey("Then the configured top-n applies", func() {
				convey.So(len(scored), convey.ShouldEqual, 3)
			})
		})

		convey.Convey("Then nothing was persisted", func() {
			_, err := svc.LatestMatch(ctx, "alice")
			convey.So(err, convey.ShouldEqual, repository.ErrNoMatch)
		})
	})
}

func TestServiceCatalog(t *testing.T) {
	convey.Convey("Given a started service", t, func() {
		svc := startedService(t)
		ctx := context.Background()

		convey.Convey("When listing all clubs", func() {
			clubs := svc.Clubs(ctx, types.ClubFilter{})
			convey.So(len(clubs), convey.ShouldEqual, 13)
		})

		convey.Convey("When filtering by category", func() {
			clubs := svc.Clubs(ctx, types.ClubFilter{Category: "Diversity & Inclusion"})
			convey.So(len(clubs), convey.ShouldEqual, 2)
		})

		convey.Convey("When filtering by tag", func() {
			clubs := svc.Clubs(ctx, types.ClubFilter{Tag: "hackathons"})
			convey.So(len(clubs), convey.ShouldBeGreaterThan, 0)
		})

		convey.Convey("When searching", func() {
			clubs := svc.Clubs(ctx, types.ClubFilter{Query: "quantum"})
			convey.So(len(clubs), convey.ShouldBeGreaterThan, 0)
			convey.So(clubs[0].ID, convey.ShouldEqual, "quantum")
		})

		convey.Convey("When fetching a single club", func() {
			club, ok := svc.Club(ctx, "acm")
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(club.Name, convey.ShouldEqual, "ACM")

			_, ok = svc.Club(ctx, "chess")
			convey.So(ok, convey.ShouldBeFalse)
		})
	})
}

func TestServiceStats(t *testing.T) {
	convey.Convey("Given a started service", t, func() {
		svc := startedService(t)

		convey.Convey("When reading stats", func() {
			stats := svc.GetStats()

			convey.Convey("Then the expected keys are present", func() {
				convey.So(stats["started"], convey.ShouldEqual, true)
				convey.So(stats["worker_count"], convey.ShouldEqual, 2)
				convey.So(stats["queue_size"], convey.ShouldEqual, 64)
				convey.So(stats["top_n"], convey.ShouldEqual, 3)
				convey.So(stats["catalog_clubs"], convey.ShouldEqual, 13)
				convey.So(stats, convey.ShouldContainKey, "queue_length")
				convey.So(stats, convey.ShouldContainKey, "surveys_stored")
				convey.So(stats, convey.ShouldContainKey, "matches_stored")
			})
		})

		convey.Convey("When nothing has been recorded", func() {
			convey.So(svc.Size(), convey.ShouldEqual, 0)
		})
	})
}
