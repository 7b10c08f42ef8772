package repository

import (
	"sort"

	"github.com/okian/giftmatch/internal/domain/model"
)

// sortNewestFirst orders by CreatedAt descending. Equal timestamps keep the
// incoming order, which callers supply newest-inserted first.
func sortNewestFirst(as []model.Assessment) {
	sort.SliceStable(as, func(i, j int) bool {
		return as[i].CreatedAt.After(as[j].CreatedAt)
	})
}
