package liststate

import (
	"context"

	charmlog "github.com/charmbracelet/log"

	"kennel/internal/domain"
	"kennel/internal/ports"
)

// Defaults applied by New when Config leaves a field unset
const (
	DefaultPageSize = 25
	DefaultSortKey  = "name"
)

// Config configures an EntityList. Every field is optional.
type Config struct {
	DefaultFilters  map[string]any
	DefaultPageSize int
	DefaultSortKey  string
	AllColumns      []domain.Column
	StorageKey      string
	Logger          *charmlog.Logger
}

// EntityList is the complete state of one list view. It embeds the five
// controllers, so their methods are available directly on the list.
type EntityList[K comparable, T any] struct {
	*Selection[K]
	*SortFilter
	*Modal[T]
	*Pagination
	*Columns
}

// New creates the state of a list view, loading column preferences from
// store. store may be nil to keep preferences in memory.
func New[K comparable, T any](ctx context.Context, cfg Config, store ports.PreferenceStore) (*EntityList[K, T], error) {
	pageSize := cfg.DefaultPageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	sortKey := cfg.DefaultSortKey
	if sortKey == "" {
		sortKey = DefaultSortKey
	}

	columns, err := NewColumns(ctx, cfg.AllColumns, cfg.StorageKey, store, WithLogger(cfg.Logger))
	if err != nil {
		return nil, err
	}

	return &EntityList[K, T]{
		Selection:  NewSelection[K](),
		SortFilter: NewSortFilter(sortKey, cfg.DefaultFilters),
		Modal:      NewModal[T](),
		Pagination: NewPagination(pageSize),
		Columns:    columns,
	}, nil
}

// PaginateData returns the rows of data on the current page
func (l *EntityList[K, T]) PaginateData(data []T) []T {
	return Paginate(l.Pagination, data)
}
