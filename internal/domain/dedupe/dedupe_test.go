package dedupe_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/okian/giftmatch/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryKeys(t *testing.T) {
	ctx := context.Background()

	Convey("Given a new key store", t, func() {
		k := dedupe.NewInMemory()

		Convey("Then it should start empty", func() {
			So(k.Size(), ShouldEqual, 0)
		})

		Convey("When claiming a new key", func() {
			id, seen := k.Claim(ctx, "key-1", "assessment-1")

			Convey("Then it should record the id", func() {
				So(seen, ShouldBeFalse)
				So(id, ShouldEqual, "assessment-1")
				So(k.Size(), ShouldEqual, 1)
			})

			Convey("And claiming it again with another id", func() {
				id, seen := k.Claim(ctx, "key-1", "assessment-2")

				Convey("Then it should return the first id", func() {
					So(seen, ShouldBeTrue)
					So(id, ShouldEqual, "assessment-1")
					So(k.Size(), ShouldEqual, 1)
				})
			})

			Convey("And releasing it", func() {
				k.Release(ctx, "key-1")

				Convey("Then the key should be claimable again", func() {
					So(k.Size(), ShouldEqual, 0)
					id, seen := k.Claim(ctx, "key-1", "assessment-3")
					So(seen, ShouldBeFalse)
					So(id, ShouldEqual, "assessment-3")
				})
			})
		})

		Convey("When releasing an unknown key", func() {
			k.Release(ctx, "missing")

			Convey("Then nothing should change", func() {
				So(k.Size(), ShouldEqual, 0)
			})
		})
	})

	Convey("Given a bounded key store", t, func() {
		k := dedupe.NewInMemory(dedupe.WithMaxSize(2))
		k.Claim(ctx, "a", "1")
		k.Claim(ctx, "b", "2")

		Convey("When a third key arrives", func() {
			k.Claim(ctx, "c", "3")

			Convey("Then the oldest key should be evicted", func() {
				So(k.Size(), ShouldEqual, 2)
				_, seen := k.Claim(ctx, "b", "x")
				So(seen, ShouldBeTrue)
				_, seen = k.Claim(ctx, "c", "x")
				So(seen, ShouldBeTrue)
			})

			Convey("Then the evicted key should be new again", func() {
				_, seen := k.Claim(ctx, "a", "4")
				So(seen, ShouldBeFalse)
			})
		})
	})

	Convey("Given an unbounded key store", t, func() {
		k := dedupe.NewInMemory(dedupe.WithMaxSize(0))

		Convey("When many keys are claimed", func() {
			for i := 0; i < 1000; i++ {
				k.Claim(ctx, fmt.Sprintf("key-%d", i), "id")
			}

			Convey("Then none should be evicted", func() {
				So(k.Size(), ShouldEqual, 1000)
			})
		})
	})

	Convey("Given concurrent claims of the same key", t, func() {
		k := dedupe.NewInMemory()
		var (
			wg    sync.WaitGroup
			mu    sync.Mutex
			fresh int
			ids   = map[string]bool{}
		)

		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				id, seen := k.Claim(ctx, "shared", fmt.Sprintf("id-%d", i))
				mu.Lock()
				defer mu.Unlock()
				if !seen {
					fresh++
				}
				ids[id] = true
			}(i)
		}
		wg.Wait()

		Convey("Then exactly one claim should win", func() {
			So(fresh, ShouldEqual, 1)
			So(len(ids), ShouldEqual, 1)
		})
	})
}
