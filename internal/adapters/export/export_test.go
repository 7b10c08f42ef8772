package export_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/okian/giftmatch/internal/adapters/export"
	"github.com/okian/giftmatch/internal/domain/assessment"
	"github.com/okian/giftmatch/internal/domain/model"
	"github.com/okian/giftmatch/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestHeaderAndFilename(t *testing.T) {
	Convey("Given the export layout", t, func() {
		h := export.Header()

		Convey("Then it should have 19 columns", func() {
			So(len(h), ShouldEqual, 19)
			So(h[:5], ShouldResemble, []string{"ID", "First Name", "Last Name", "Email", "Date"})
			So(h[5], ShouldEqual, "Administration")
			So(h[15], ShouldEqual, "Wisdom")
			So(h[16:], ShouldResemble, []string{"Top Gift 1", "Top Gift 2", "Top Gift 3"})
		})

		Convey("Then the filename should carry the UTC date", func() {
			now := time.Date(2026, 3, 10, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))
			So(export.Filename(now), ShouldEqual, "spiritual-gifts-assessments-2026-03-11.csv")
		})
	})
}

func TestWrite(t *testing.T) {
	Convey("Given an assessment with a quote in its name", t, func() {
		scores := types.GiftScores{}
		for _, g := range types.Gifts() {
			scores[g] = 4
		}
		scores[types.Teaching] = 16
		scores[types.Mercy] = 12
		a := model.Assessment{
			ID:        "abc",
			FirstName: `Bob "Bobby"`,
			LastName:  "Smith",
			Email:     "bob@example.com",
			CreatedAt: time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
			Result: assessment.Result{
				GiftScores: scores,
				TopGifts:   []types.GiftScore{{Gift: types.Teaching, Score: 16}, {Gift: types.Mercy, Score: 12}},
			},
		}

		Convey("When it is written", func() {
			var buf bytes.Buffer
			So(export.Write(&buf, []model.Assessment{a}), ShouldBeNil)
			lines := strings.Split(buf.String(), "\n")

			Convey("Then the header is bare and each cell is quoted", func() {
				So(len(lines), ShouldEqual, 2)
				So(lines[0], ShouldStartWith, "ID,First Name,Last Name,Email,Date,Administration,")
				So(lines[1], ShouldStartWith, `"abc","Bob ""Bobby""","Smith","bob@example.com","3/10/2026","4",`)
				So(lines[1], ShouldEndWith, `"16","4","teaching","mercy",""`)
			})
		})

		Convey("When there are no assessments", func() {
			var buf bytes.Buffer
			So(export.Write(&buf, nil), ShouldBeNil)

			Convey("Then only the header is written", func() {
				So(buf.String(), ShouldEqual, strings.Join(export.Header(), ","))
			})
		})

		Convey("When the writer fails", func() {
			err := export.Write(failingWriter{}, []model.Assessment{a})

			Convey("Then the error should surface", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "disk full")
			})
		})
	})
}
