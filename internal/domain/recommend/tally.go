package recommend

import (
	"slices"
	"sort"

	"github.com/okian/giftmatch/internal/domain/types"
)

type dimension uint8

const (
	dimGift dimension = 1 << iota
	dimInterest
	dimPassion
	dimSkill
)

type entry[K comparable] struct {
	key     K
	score   int
	dims    dimension
	gift    types.GiftCategory
	reasons []string
}

// tally accumulates points per key and remembers first-contribution order.
type tally[K comparable] struct {
	known   func(K) bool
	entries []*entry[K]
	index   map[K]*entry[K]
}

func newTally[K comparable](known func(K) bool) *tally[K] {
	return &tally[K]{known: known, index: make(map[K]*entry[K])}
}

func (tl *tally[K]) add(key K, points int, dim dimension, gift types.GiftCategory, reason string) {
	if !tl.known(key) {
		return
	}
	e, ok := tl.index[key]
	if !ok {
		e = &entry[K]{key: key}
		tl.index[key] = e
		tl.entries = append(tl.entries, e)
	}
	e.score += points
	e.dims |= dim
	if dim == dimGift && e.gift == "" {
		e.gift = gift
	}
	if reason != "" && !slices.Contains(e.reasons, reason) {
		e.reasons = append(e.reasons, reason)
	}
}

// sorted returns the entries by score, highest first, ties in insertion order.
func (tl *tally[K]) sorted() []*entry[K] {
	out := slices.Clone(tl.entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].score > out[j].score })
	return out
}
