package repository_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/giftmatch/internal/adapters/repository"
	"github.com/okian/giftmatch/internal/domain/assessment"
	"github.com/okian/giftmatch/internal/domain/model"
	"github.com/okian/giftmatch/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

var base = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func fixture(id, first, last, email string, created time.Time, top types.GiftCategory) model.Assessment {
	scores := types.GiftScores{}
	for _, g := range types.Gifts() {
		scores[g] = 4
	}
	scores[top] = 16
	return model.Assessment{
		ID:            id,
		FirstName:     first,
		LastName:      last,
		Email:         email,
		CreatedAt:     created,
		Responses:     []types.QuestionResponse{{QuestionID: 4, AnswerValue: 4}, {QuestionID: 10, AnswerValue: 3}},
		TeamInterests: []string{"School Age", "Outreach Ministry"},
		Passions:      []types.PassionCategory{types.PassionEducation},
		Skills:        []types.SkillCategory{types.SkillTeaching},
		Result: assessment.Result{
			GiftScores: scores,
			TopGifts: []types.GiftScore{
				{Gift: top, Score: 16},
				{Gift: types.Administration, Score: 4},
				{Gift: types.Evangelism, Score: 4},
			},
			Recommendations: []types.Recommendation{{
				Team:      types.Team{ID: "school-age", Name: "School Age", Description: "Kids"},
				MatchType: types.MatchPerfect,
				GiftMatch: top,
				Priority:  1,
			}},
			Opportunities: []types.SignUpOpportunity{{
				Opportunity: types.Opportunity{ID: 52, Title: "Children's Ministry Volunteer", Description: "Serve"},
				Reason:      "Matches Teaching gift, your interests",
			}},
		},
	}
}

func ids(as []model.Assessment) []string {
	out := make([]string, 0, len(as))
	for _, a := range as {
		out = append(out, a.ID)
	}
	return out
}

type storeFactory func(t *testing.T) repository.Store

func factories() map[string]storeFactory {
	return map[string]storeFactory{
		"memory": func(*testing.T) repository.Store { return repository.NewMemoryStore() },
		"sqlite": func(t *testing.T) repository.Store {
			s, err := repository.NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "data", "gifts.db"))
			if err != nil {
				t.Fatalf("open sqlite store: %v", err)
			}
			return s
		},
	}
}

func TestStores(t *testing.T) {
	for name, newStore := range factories() {
		Convey(fmt.Sprintf("Given an empty %s store", name), t, func() {
			ctx := context.Background()
			store := newStore(t)
			Reset(func() { _ = store.Close() })

			Convey("Then it should count zero", func() {
				n, err := store.Count(ctx)
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 0)
			})

			Convey("When getting an unknown id", func() {
				_, err := store.Get(ctx, "missing")

				Convey("Then it should return ErrNotFound", func() {
					So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
				})
			})

			Convey("When saving without an id", func() {
				err := store.Save(ctx, model.Assessment{})

				Convey("Then it should be rejected", func() {
					So(errors.Is(err, repository.ErrInvalidID), ShouldBeTrue)
				})
			})

			Convey("When an assessment is saved", func() {
				a := fixture("a1", "Ada", "Lovelace", "ada@example.com", base, types.Teaching)
				So(store.Save(ctx, a), ShouldBeNil)

				Convey("Then it should round-trip unchanged", func() {
					got, err := store.Get(ctx, "a1")
					So(err, ShouldBeNil)
					So(got, ShouldResemble, a)
				})

				Convey("Then saving the same id again should fail", func() {
					err := store.Save(ctx, a)
					So(errors.Is(err, repository.ErrDuplicateID), ShouldBeTrue)
					n, _ := store.Count(ctx)
					So(n, ShouldEqual, 1)
				})
			})

			Convey("When a name outside ASCII is saved", func() {
				So(store.Save(ctx, fixture("u1", "Émile", "Zoë", "emile@example.fr", base, types.Wisdom)), ShouldBeNil)

				Convey("Then search should fold its case like any other name", func() {
					got, err := store.List(ctx, model.ListFilter{Search: "ÉMILE"})
					So(err, ShouldBeNil)
					So(ids(got), ShouldResemble, []string{"u1"})

					got, err = store.List(ctx, model.ListFilter{Search: "zoË"})
					So(err, ShouldBeNil)
					So(ids(got), ShouldResemble, []string{"u1"})
				})
			})

			Convey("When several assessments are saved", func() {
				So(store.Save(ctx, fixture("a1", "Ada", "Lovelace", "ada@example.com", base, types.Teaching)), ShouldBeNil)
				So(store.Save(ctx, fixture("a2", "Grace", "Hopper", "grace@navy.mil", base.Add(24*time.Hour), types.Leadership)), ShouldBeNil)
				So(store.Save(ctx, fixture("a3", "Alan", "Turing", "alan@bletchley.uk", base.Add(48*time.Hour), types.Teaching)), ShouldBeNil)
				So(store.Save(ctx, fixture("a4", "Katherine", "Johnson", "kj_100%@nasa.gov", base.Add(48*time.Hour), types.Mercy)), ShouldBeNil)

				Convey("Then an empty filter should list newest first", func() {
					got, err := store.List(ctx, model.ListFilter{})
					So(err, ShouldBeNil)
					So(ids(got), ShouldResemble, []string{"a4", "a3", "a2", "a1"})
				})

				Convey("Then search should match any contact field ignoring case", func() {
					got, err := store.List(ctx, model.ListFilter{Search: "HOPPER"})
					So(err, ShouldBeNil)
					So(ids(got), ShouldResemble, []string{"a2"})

					got, err = store.List(ctx, model.ListFilter{Search: "a"})
					So(err, ShouldBeNil)
					So(len(got), ShouldEqual, 4)
				})

				Convey("Then search wildcards should match literally", func() {
					got, err := store.List(ctx, model.ListFilter{Search: "_100%"})
					So(err, ShouldBeNil)
					So(ids(got), ShouldResemble, []string{"a4"})

					got, err = store.List(ctx, model.ListFilter{Search: "%"})
					So(err, ShouldBeNil)
					So(ids(got), ShouldResemble, []string{"a4"})
				})

				Convey("Then top gift should filter on the first ranked gift", func() {
					got, err := store.List(ctx, model.ListFilter{TopGift: types.Teaching})
					So(err, ShouldBeNil)
					So(ids(got), ShouldResemble, []string{"a3", "a1"})
				})

				Convey("Then a date range should include the whole end day", func() {
					start, _ := model.StartOfDay("2026-03-11")
					end, _ := model.EndOfDay("2026-03-11")
					got, err := store.List(ctx, model.ListFilter{Start: start, End: end})
					So(err, ShouldBeNil)
					So(ids(got), ShouldResemble, []string{"a2"})
				})

				Convey("Then a limit should cap the page", func() {
					got, err := store.List(ctx, model.ListFilter{Limit: 2})
					So(err, ShouldBeNil)
					So(ids(got), ShouldResemble, []string{"a4", "a3"})
				})

				Convey("Then listed records should carry their answers", func() {
					got, err := store.List(ctx, model.ListFilter{Search: "turing"})
					So(err, ShouldBeNil)
					So(got[0].Responses, ShouldResemble, []types.QuestionResponse{{QuestionID: 4, AnswerValue: 4}, {QuestionID: 10, AnswerValue: 3}})
					So(got[0].TeamInterests, ShouldResemble, []string{"School Age", "Outreach Ministry"})
				})

				Convey("Then the count should match", func() {
					n, err := store.Count(ctx)
					So(err, ShouldBeNil)
					So(n, ShouldEqual, 4)
				})
			})
		})
	}
}
