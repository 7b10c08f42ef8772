package types_test

import (
	"errors"
	"testing"

	"github.com/okian/giftmatch/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGiftCategory(t *testing.T) {
	Convey("Given the gift enumeration", t, func() {
		gifts := types.Gifts()

		Convey("Then it should hold 11 gifts in declaration order", func() {
			So(len(gifts), ShouldEqual, 11)
			So(types.GiftCount, ShouldEqual, 11)
			So(gifts[0], ShouldEqual, types.Administration)
			So(gifts[10], ShouldEqual, types.Wisdom)
		})

		Convey("When the returned slice is modified", func() {
			gifts[0] = "bogus"

			Convey("Then the enumeration should be unaffected", func() {
				So(types.Gifts()[0], ShouldEqual, types.Administration)
			})
		})

		Convey("When parsing a known gift with odd casing", func() {
			g, err := types.ParseGift("  Teaching ")

			Convey("Then it should normalize it", func() {
				So(err, ShouldBeNil)
				So(g, ShouldEqual, types.Teaching)
			})
		})

		Convey("When parsing an unknown gift", func() {
			_, err := types.ParseGift("prophecy")

			Convey("Then it should fail with ErrUnknownCategory", func() {
				So(errors.Is(err, types.ErrUnknownCategory), ShouldBeTrue)
			})
		})

		Convey("When rendering a display name", func() {
			So(types.Teaching.DisplayName(), ShouldEqual, "Teaching")
			So(types.GiftCategory("").DisplayName(), ShouldEqual, "")
		})
	})
}

func TestPassionAndSkill(t *testing.T) {
	Convey("Given the passion and skill enumerations", t, func() {
		Convey("Then they should have 11 and 7 members", func() {
			So(len(types.Passions()), ShouldEqual, 11)
			So(len(types.Skills()), ShouldEqual, 7)
		})

		Convey("When parsing exact labels", func() {
			p, perr := types.ParsePassion("Arts/Music")
			s, serr := types.ParseSkill("Counseling")

			Convey("Then they should resolve", func() {
				So(perr, ShouldBeNil)
				So(serr, ShouldBeNil)
				So(p, ShouldEqual, types.PassionArtsMusic)
				So(s, ShouldEqual, types.SkillCounseling)
			})
		})

		Convey("When parsing labels with the wrong case", func() {
			_, perr := types.ParsePassion("education")
			_, serr := types.ParseSkill("cooking")

			Convey("Then they should be rejected", func() {
				So(errors.Is(perr, types.ErrUnknownCategory), ShouldBeTrue)
				So(errors.Is(serr, types.ErrUnknownCategory), ShouldBeTrue)
			})
		})
	})
}
