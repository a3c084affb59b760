package liststate

import (
	"reflect"

	"github.com/mohae/deepcopy"

	"kennel/internal/domain"
)

// Direction is the order of the active sort
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Toggle returns the opposite direction
func (d Direction) Toggle() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// Sort is the active sort key and direction. Only one key sorts at a time.
type Sort struct {
	Key       string
	Direction Direction
}

// SortFilter tracks sort order, free-text search, the named view and
// additional key/value filters of a list
type SortFilter struct {
	sort           Sort
	searchTerm     string
	activeView     string
	filters        map[string]any
	defaultFilters map[string]any
}

// NewSortFilter creates a controller sorted ascending by defaultSortKey.
// defaultFilters is copied; later changes by the caller have no effect.
func NewSortFilter(defaultSortKey string, defaultFilters map[string]any) *SortFilter {
	template := copyFilters(defaultFilters)
	return &SortFilter{
		sort:           Sort{Key: defaultSortKey, Direction: Asc},
		activeView:     domain.ViewAll,
		filters:        copyFilters(template),
		defaultFilters: template,
	}
}

// HandleSort sorts by key. Sorting again by the current key reverses the
// direction; a new key starts ascending.
func (f *SortFilter) HandleSort(key string) {
	if key == f.sort.Key {
		f.sort.Direction = f.sort.Direction.Toggle()
		return
	}
	f.sort = Sort{Key: key, Direction: Asc}
}

// SetSort sets the sort directly, normalising unknown directions to Asc
func (f *SortFilter) SetSort(key string, dir Direction) {
	if dir != Desc {
		dir = Asc
	}
	f.sort = Sort{Key: key, Direction: dir}
}

// Sort returns the active sort
func (f *SortFilter) Sort() Sort {
	return f.sort
}

// SetSearchTerm sets the free-text search term
func (f *SortFilter) SetSearchTerm(term string) {
	f.searchTerm = term
}

// SearchTerm returns the free-text search term
func (f *SortFilter) SearchTerm() string {
	return f.searchTerm
}

// SetActiveView sets the named view filter
func (f *SortFilter) SetActiveView(view string) {
	f.activeView = view
}

// ActiveView returns the named view filter
func (f *SortFilter) ActiveView() string {
	return f.activeView
}

// UpdateFilter sets one filter entry, keeping the others
func (f *SortFilter) UpdateFilter(key string, value any) {
	next := make(map[string]any, len(f.filters)+1)
	for k, v := range f.filters {
		next[k] = v
	}
	next[key] = value
	f.filters = next
}

// Filter returns the value of one filter entry
func (f *SortFilter) Filter(key string) (any, bool) {
	v, ok := f.filters[key]
	return v, ok
}

// Filters returns a copy of the filter map
func (f *SortFilter) Filters() map[string]any {
	return copyFilters(f.filters)
}

// ClearFilters restores the default filters and clears the search term and
// the named view
func (f *SortFilter) ClearFilters() {
	f.filters = copyFilters(f.defaultFilters)
	f.searchTerm = ""
	f.activeView = domain.ViewAll
}

// HasActiveFilters reports whether anything narrows the list: a search
// term, a view other than "all", or any truthy filter value
func (f *SortFilter) HasActiveFilters() bool {
	if f.searchTerm != "" || f.activeView != domain.ViewAll {
		return true
	}
	for _, v := range f.filters {
		if Truthy(v) {
			return true
		}
	}
	return false
}

// Truthy reports whether v counts as set: not nil, false, zero, or empty
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && f == f // NaN is falsy
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}

func copyFilters(m map[string]any) map[string]any {
	if len(m) == 0 {
		return map[string]any{}
	}
	copied, ok := deepcopy.Copy(m).(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return copied
}
