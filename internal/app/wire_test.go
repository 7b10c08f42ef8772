package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	service "github.com/okian/giftmatch/internal/app"
	"github.com/okian/giftmatch/internal/config"
	"github.com/okian/giftmatch/internal/domain/catalog"
	"github.com/okian/giftmatch/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWiring(t *testing.T) {
	Convey("Given a config selecting sqlite", t, func() {
		ctx := context.Background()
		cfg := config.New(ctx)
		cfg.StoreDriver = config.StoreSQLite
		cfg.SQLitePath = filepath.Join(t.TempDir(), "nested", "gifts.db")
		cfg.GiftRankWeights = []int{1}

		Convey("When building the service", func() {
			svc, err := service.NewFromConfig(ctx, cfg, logger.Nop())
			So(err, ShouldBeNil)
			defer func() { _ = svc.Stop(ctx) }()

			Convey("Then submissions should persist and use the configured weights", func() {
				a, err := svc.Submit(ctx, submission("Ada"))
				So(err, ShouldBeNil)
				So(len(a.Result.TopGifts), ShouldEqual, 3)
				_, statErr := os.Stat(cfg.SQLitePath)
				So(statErr, ShouldBeNil)
				got, err := svc.Detail(ctx, a.ID)
				So(err, ShouldBeNil)
				So(got.Result.GiftScores, ShouldResemble, a.Result.GiftScores)
			})
		})
	})

	Convey("Given a question file that disagrees with the mapping", t, func() {
		path := filepath.Join(t.TempDir(), "questions.yaml")
		So(os.WriteFile(path, []byte("questions:\n  - id: 4\n    text: I like to explain things.\n    gift: mercy\n"), 0o600), ShouldBeNil)

		Convey("When loading the catalog", func() {
			_, err := service.LoadCatalog(context.Background(), path)

			Convey("Then it should refuse to start", func() {
				So(errors.Is(err, catalog.ErrInvalidCatalog), ShouldBeTrue)
			})
		})
	})

	Convey("Given an unknown store driver", t, func() {
		cfg := config.New(context.Background())
		cfg.StoreDriver = "postgres"

		Convey("Then opening the store should fail", func() {
			_, err := service.OpenStore(context.Background(), cfg)
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})
	})
}
