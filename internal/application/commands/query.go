package commands

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"kennel/internal/application/liststate"
	"kennel/internal/domain"
)

// Query is the part of a list's state that narrows and orders its records
type Query struct {
	SearchTerm string
	View       string
	Filters    map[string]any
	Sort       liststate.Sort
}

// QueryFrom snapshots the query held by a sort/filter controller
func QueryFrom(f *liststate.SortFilter) Query {
	return Query{
		SearchTerm: f.SearchTerm(),
		View:       f.ActiveView(),
		Filters:    f.Filters(),
		Sort:       f.Sort(),
	}
}

// ApplyQuery filters, searches and sorts records for kind
func ApplyQuery(kind domain.EntityKind, records []domain.Record, q Query) []domain.Record {
	out := Filter(records, q.View, q.Filters)
	out = Search(out, q.SearchTerm, SearchFields(kind))
	SortRecords(out, q.Sort)
	return out
}

// Filter keeps the records in view whose fields equal every truthy filter
// value (case-insensitive). Falsy filter values do not narrow the list.
func Filter(records []domain.Record, view string, filters map[string]any) []domain.Record {
	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if r.InView(view) && matchesFilters(r, filters) {
			out = append(out, r)
		}
	}
	return out
}

func matchesFilters(r domain.Record, filters map[string]any) bool {
	for key, value := range filters {
		if !liststate.Truthy(value) {
			continue
		}
		if !strings.EqualFold(r.Field(key), fmt.Sprint(value)) {
			return false
		}
	}
	return true
}

type timestamped interface {
	Timestamp(name string) (time.Time, bool)
}

// SortRecords sorts records in place by s.Key. Dates compare
// chronologically, numbers numerically and everything else as
// case-insensitive text. The sort is stable; an empty key leaves the order.
func SortRecords(records []domain.Record, s liststate.Sort) {
	if s.Key == "" {
		return
	}
	slices.SortStableFunc(records, func(a, b domain.Record) int {
		c := compareField(a, b, s.Key)
		if s.Direction == liststate.Desc {
			return -c
		}
		return c
	})
}

func compareField(a, b domain.Record, key string) int {
	ta, aok := a.(timestamped)
	tb, bok := b.(timestamped)
	if aok && bok {
		at, aset := ta.Timestamp(key)
		bt, bset := tb.Timestamp(key)
		if aset || bset {
			// unset dates sort first
			switch {
			case !aset:
				return -1
			case !bset:
				return 1
			}
			return at.Compare(bt)
		}
	}

	av, bv := a.Field(key), b.Field(key)
	an, aerr := strconv.ParseFloat(av, 64)
	bn, berr := strconv.ParseFloat(bv, 64)
	if aerr == nil && berr == nil {
		return cmp.Compare(an, bn)
	}
	return strings.Compare(strings.ToLower(av), strings.ToLower(bv))
}
