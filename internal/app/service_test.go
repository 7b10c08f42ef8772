package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/okian/giftmatch/internal/adapters/repository"
	service "github.com/okian/giftmatch/internal/app"
	"github.com/okian/giftmatch/internal/domain/catalog"
	"github.com/okian/giftmatch/internal/domain/model"
	"github.com/okian/giftmatch/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

// submission answers 1 everywhere except the four teaching questions.
func submission(first string) model.Submission {
	cat := catalog.New()
	var rs []types.QuestionResponse
	for _, q := range cat.Questions() {
		v := 1
		if q.Gift == types.Teaching {
			v = 4
		}
		rs = append(rs, types.QuestionResponse{QuestionID: q.ID, AnswerValue: v})
	}
	return model.Submission{
		FirstName:     " " + first + " ",
		LastName:      "Lovelace",
		Email:         strings.ToLower(first) + "@example.com",
		Responses:     rs,
		TeamInterests: []string{"School Age"},
	}
}

func steppingClock() func() time.Time {
	var mu sync.Mutex
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Minute)
		return now
	}
}

type recordingNotifier struct {
	mu   sync.Mutex
	seen []model.Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, n)
	return nil
}

// flakyStore fails the first Save and delegates everything else.
type flakyStore struct {
	repository.Store
	mu     sync.Mutex
	failed bool
}

func (f *flakyStore) Save(ctx context.Context, a model.Assessment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.failed {
		f.failed = true
		return errors.New("disk full")
	}
	return f.Store.Save(ctx, a)
}

func TestService_Submit(t *testing.T) {
	Convey("Given a service", t, func() {
		ctx := context.Background()
		svc := service.New(service.WithClock(steppingClock()))
		defer func() { _ = svc.Stop(ctx) }()

		Convey("When a valid submission arrives", func() {
			a, err := svc.Submit(ctx, submission("Ada"))

			Convey("Then it should be scored, trimmed and stored", func() {
				So(err, ShouldBeNil)
				So(a.ID, ShouldNotBeEmpty)
				So(a.FirstName, ShouldEqual, "Ada")
				So(len(a.Result.GiftScores), ShouldEqual, 11)
				So(a.Result.GiftScores[types.Teaching], ShouldEqual, 16)
				So(a.TopGift(0), ShouldEqual, types.Teaching)
				So(a.Result.Recommendations[0].Team.Name, ShouldEqual, "School Age")
				So(a.Result.Recommendations[0].MatchType, ShouldEqual, types.MatchPerfect)
				So(a.Result.Opportunities, ShouldBeEmpty)

				n, err := svc.Count(ctx)
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 1)

				got, err := svc.Detail(ctx, a.ID)
				So(err, ShouldBeNil)
				So(got.Email, ShouldEqual, "ada@example.com")

				sum, err := svc.Result(ctx, a.ID)
				So(err, ShouldBeNil)
				So(sum.AssessmentID, ShouldEqual, a.ID)
				So(sum.TopGifts[0].Gift, ShouldEqual, types.Teaching)
			})
		})

		Convey("When opportunities are requested", func() {
			sub := submission("Ada")
			sub.IncludeOpportunities = true
			a, err := svc.Submit(ctx, sub)

			Convey("Then the result should carry them", func() {
				So(err, ShouldBeNil)
				So(len(a.Result.Opportunities), ShouldEqual, 3)
				So(a.Result.Opportunities[0].ID, ShouldEqual, 52)
			})
		})

		Convey("When the submission is invalid", func() {
			sub := submission("Ada")
			sub.Email = "not-an-email"
			_, err := svc.Submit(ctx, sub)

			Convey("Then it should be rejected and nothing stored", func() {
				So(errors.Is(err, model.ErrInvalidSubmission), ShouldBeTrue)
				n, _ := svc.Count(ctx)
				So(n, ShouldEqual, 0)
			})
		})

		Convey("When the same idempotency key is submitted twice", func() {
			sub := submission("Ada")
			sub.IdempotencyKey = "retry-1"
			first, err1 := svc.Submit(ctx, sub)
			second, err2 := svc.Submit(ctx, sub)

			Convey("Then the second call should return the first assessment", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(second.ID, ShouldEqual, first.ID)
				n, _ := svc.Count(ctx)
				So(n, ShouldEqual, 1)
			})
		})

		Convey("When looking up unknown or malformed ids", func() {
			_, err1 := svc.Detail(ctx, "not-a-uuid")
			_, err2 := svc.Result(ctx, "6f1c2d3e-0000-4000-8000-000000000000")

			Convey("Then both should be not found", func() {
				So(errors.Is(err1, repository.ErrNotFound), ShouldBeTrue)
				So(errors.Is(err2, repository.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestService_StoreFailure(t *testing.T) {
	Convey("Given a store whose first save fails", t, func() {
		ctx := context.Background()
		svc := service.New(service.WithStore(&flakyStore{Store: repository.NewMemoryStore()}))
		defer func() { _ = svc.Stop(ctx) }()

		sub := submission("Ada")
		sub.IdempotencyKey = "retry-2"

		Convey("When the submission is retried with the same key", func() {
			_, err := svc.Submit(ctx, sub)
			a, retryErr := svc.Submit(ctx, sub)

			Convey("Then the first attempt fails and the retry is stored", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "disk full")
				So(retryErr, ShouldBeNil)
				got, getErr := svc.Detail(ctx, a.ID)
				So(getErr, ShouldBeNil)
				So(got.ID, ShouldEqual, a.ID)
			})
		})
	})
}

// gatedStore blocks every Save until release is closed.
type gatedStore struct {
	repository.Store
	entered chan struct{}
	release chan struct{}
}

func (g *gatedStore) Save(ctx context.Context, a model.Assessment) error {
	g.entered <- struct{}{}
	<-g.release
	return g.Store.Save(ctx, a)
}

func TestService_InFlightDuplicate(t *testing.T) {
	Convey("Given a store that holds saves open", t, func() {
		ctx := context.Background()
		store := &gatedStore{
			Store:   repository.NewMemoryStore(),
			entered: make(chan struct{}, 1),
			release: make(chan struct{}),
		}
		svc := service.New(service.WithStore(store))
		defer func() { _ = svc.Stop(ctx) }()

		sub := submission("Grace")
		sub.IdempotencyKey = "in-flight-1"

		type outcome struct {
			a   model.Assessment
			err error
		}
		first := make(chan outcome, 1)
		go func() {
			a, err := svc.Submit(ctx, sub)
			first <- outcome{a, err}
		}()
		<-store.entered

		Convey("When the same key arrives while the first save is pending", func() {
			_, dupErr := svc.Submit(ctx, sub)
			close(store.release)
			done := <-first

			Convey("Then it should be reported as in progress", func() {
				So(errors.Is(dupErr, service.ErrInProgress), ShouldBeTrue)
				So(done.err, ShouldBeNil)

				Convey("And a later retry should resolve to the stored assessment", func() {
					again, err := svc.Submit(ctx, sub)
					So(err, ShouldBeNil)
					So(again.ID, ShouldEqual, done.a.ID)
					n, _ := svc.Count(ctx)
					So(n, ShouldEqual, 1)
				})
			})
		})
	})
}

func TestService_Notifications(t *testing.T) {
	Convey("Given a started service with a recording notifier", t, func() {
		ctx := context.Background()
		rec := &recordingNotifier{}
		svc := service.New(
			service.WithNotifier(rec),
			service.WithBaseURL("https://gifts.example.org"),
			service.WithWorkerCount(1),
		)
		So(svc.Start(ctx), ShouldBeNil)
		So(svc.Start(ctx), ShouldBeNil)

		Convey("When an assessment is submitted and the service stops", func() {
			a, err := svc.Submit(ctx, submission("Ada"))
			So(err, ShouldBeNil)
			So(svc.Stop(ctx), ShouldBeNil)

			Convey("Then the queued notification should be delivered", func() {
				So(len(rec.seen), ShouldEqual, 1)
				So(rec.seen[0].AssessmentID, ShouldEqual, a.ID)
				So(rec.seen[0].ResultsURL, ShouldEqual, "https://gifts.example.org/results/"+a.ID)
				So(rec.seen[0].TopGifts[0].Gift, ShouldEqual, types.Teaching)
			})
		})
	})

	Convey("Given a service whose queue is full", t, func() {
		ctx := context.Background()
		svc := service.New(service.WithQueueSize(1))
		defer func() { _ = svc.Stop(ctx) }()

		Convey("When more submissions arrive than the queue holds", func() {
			_, err1 := svc.Submit(ctx, submission("Ada"))
			_, err2 := svc.Submit(ctx, submission("Grace"))

			Convey("Then the submissions should still succeed", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(svc.QueueLen(), ShouldEqual, 1)
			})
		})
	})
}

func TestService_ListAndExport(t *testing.T) {
	Convey("Given three stored assessments", t, func() {
		ctx := context.Background()
		svc := service.New(service.WithClock(steppingClock()), service.WithMaxListLimit(2))
		defer func() { _ = svc.Stop(ctx) }()

		for _, name := range []string{"Ada", "Grace", "Katherine"} {
			_, err := svc.Submit(ctx, submission(name))
			So(err, ShouldBeNil)
		}

		Convey("When listing without a limit", func() {
			as, err := svc.List(ctx, model.ListFilter{})

			Convey("Then the configured maximum should apply, newest first", func() {
				So(err, ShouldBeNil)
				So(len(as), ShouldEqual, 2)
				So(as[0].FirstName, ShouldEqual, "Katherine")
				So(as[1].FirstName, ShouldEqual, "Grace")
			})
		})

		Convey("When searching", func() {
			as, err := svc.List(ctx, model.ListFilter{Search: "GRACE@"})

			Convey("Then only the match should come back", func() {
				So(err, ShouldBeNil)
				So(len(as), ShouldEqual, 1)
				So(as[0].FirstName, ShouldEqual, "Grace")
			})
		})

		Convey("When exporting", func() {
			var buf bytes.Buffer
			So(svc.Export(ctx, &buf), ShouldBeNil)
			lines := strings.Split(buf.String(), "\n")

			Convey("Then every assessment should be a row regardless of the list cap", func() {
				So(len(lines), ShouldEqual, 4)
				So(lines[1], ShouldContainSubstring, `"Katherine"`)
			})
		})

		Convey("Then the catalog should be exposed", func() {
			So(len(svc.Catalog().Teams()), ShouldEqual, 10)
		})
	})
}

func TestService_Preview(t *testing.T) {
	Convey("Given a service", t, func() {
		svc := service.New()
		defer func() { _ = svc.Stop(context.Background()) }()

		Convey("When previewing a submission", func() {
			res, err := svc.Preview(submission("Ada"))

			Convey("Then the result should be computed but not stored", func() {
				So(err, ShouldBeNil)
				So(res.TopGifts[0].Gift, ShouldEqual, types.Teaching)
				n, _ := svc.Count(context.Background())
				So(n, ShouldEqual, 0)
			})
		})

		Convey("When previewing an invalid submission", func() {
			sub := submission("Ada")
			sub.Passions = []types.PassionCategory{"Cooking"}
			_, err := svc.Preview(sub)

			Convey("Then it should be rejected", func() {
				So(errors.Is(err, model.ErrInvalidSubmission), ShouldBeTrue)
			})
		})
	})
}
