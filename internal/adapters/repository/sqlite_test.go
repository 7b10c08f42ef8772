package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewSQLiteStore(t *testing.T) {
	Convey("Given the sqlite driver", t, func() {
		ctx := context.Background()

		Convey("When opening a database twice", func() {
			path := filepath.Join(t.TempDir(), "gifts.db")
			first, err := NewSQLiteStore(ctx, path, WithBusyTimeout(0), WithMaxOpenConns(2))
			So(err, ShouldBeNil)
			So(first.Close(), ShouldBeNil)

			second, err := NewSQLiteStore(ctx, path)

			Convey("Then the schema migration should be repeatable", func() {
				So(err, ShouldBeNil)
				n, err := second.Count(ctx)
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 0)
				So(second.Close(), ShouldBeNil)
			})
		})

		Convey("When WAL mode is requested", func() {
			s, err := NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "wal.db"))
			So(err, ShouldBeNil)
			Reset(func() { _ = s.Close() })

			Convey("Then the journal should be in WAL mode", func() {
				var mode string
				So(s.db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode), ShouldBeNil)
				So(mode, ShouldEqual, "wal")
			})
		})

		Convey("When the driver fails to open", func() {
			orig := openDB
			openDB = func(string, string) (*sql.DB, error) { return nil, errors.New("boom") }
			Reset(func() { openDB = orig })

			_, err := NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "x.db"))

			Convey("Then the error should be wrapped", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "repository: open database: boom")
			})
		})
	})
}
