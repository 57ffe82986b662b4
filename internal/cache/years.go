// Package cache memoizes per-year holiday sets on top of the stateless
// holiday engine.
package cache

import (
	"fmt"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/guttosm/shukujitsu/internal/holiday"
)

// DefaultSize is the number of years kept when no size is configured.
const DefaultSize = 64

// Years caches holiday.ForYear results keyed by year. Concurrent misses for
// the same year are computed once. Callers always receive their own copy.
type Years struct {
	lru     *lru.Cache[int, []holiday.Record]
	group   singleflight.Group
	compute func(year int) []holiday.Record
}

// NewYears returns a cache holding at most size years (DefaultSize if size <= 0).
func NewYears(size int) (*Years, error) {
	if size <= 0 {
		size = DefaultSize
	}
	c, err := lru.New[int, []holiday.Record](size)
	if err != nil {
		return nil, fmt.Errorf("create year cache: %w", err)
	}
	return &Years{lru: c, compute: holiday.ForYear}, nil
}

// Get returns the holidays of year, computing them on a miss.
func (y *Years) Get(year int) []holiday.Record {
	if recs, ok := y.lru.Get(year); ok {
		return clone(recs)
	}

	v, _, _ := y.group.Do(strconv.Itoa(year), func() (any, error) {
		recs := y.compute(year)
		y.lru.Add(year, recs)
		return recs, nil
	})
	return clone(v.([]holiday.Record))
}

// Len reports how many years are cached.
func (y *Years) Len() int {
	return y.lru.Len()
}

// Purge drops every cached year.
func (y *Years) Purge() {
	y.lru.Purge()
}

func clone(recs []holiday.Record) []holiday.Record {
	out := make([]holiday.Record, len(recs))
	copy(out, recs)
	return out
}
