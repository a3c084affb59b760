package commands

import (
	"context"
	"fmt"
	"slices"

	charmlog "github.com/charmbracelet/log"

	"kennel/internal/application"
	"kennel/internal/application/liststate"
	"kennel/internal/domain"
	"kennel/internal/ports"
)

// EntityList is the list state of one entity kind, keyed by record id
type EntityList = liststate.EntityList[string, domain.Record]

// ListDefaults are the configured defaults of every list view
type ListDefaults struct {
	PageSize int
	SortKey  string
	Logger   *charmlog.Logger
}

// NewEntityList creates the list state of kind, loading its column
// preferences from prefs
func NewEntityList(ctx context.Context, kind domain.EntityKind, prefs ports.PreferenceStore, defaults ListDefaults) (*EntityList, error) {
	if kind.Columns() == nil {
		return nil, fmt.Errorf("%w: unknown kind %q", application.ErrInvalidEntity, kind)
	}
	return liststate.New[string, domain.Record](ctx, liststate.Config{
		DefaultPageSize: defaults.PageSize,
		DefaultSortKey:  defaults.SortKey,
		AllColumns:      kind.Columns(),
		StorageKey:      kind.StorageKey(),
		Logger:          defaults.Logger,
	}, prefs)
}

// LoadRecords reads every record of kind from the repository
func LoadRecords(ctx context.Context, repo ports.EntityRepository, kind domain.EntityKind) ([]domain.Record, error) {
	switch kind {
	case domain.KindPets:
		pets, err := repo.ListPets(ctx)
		return toRecords(pets), err
	case domain.KindOwners:
		owners, err := repo.ListOwners(ctx)
		return toRecords(owners), err
	case domain.KindBookings:
		bookings, err := repo.ListBookings(ctx)
		return toRecords(bookings), err
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", application.ErrInvalidEntity, kind)
	}
}

func toRecords[T domain.Record](items []T) []domain.Record {
	out := make([]domain.Record, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// ListOptions narrows and orders a list. Zero values keep the list defaults.
type ListOptions struct {
	SearchTerm string
	View       string
	Filters    map[string]any
	SortKey    string
	Descending bool
	Page       int
	PageSize   int
}

// ListResult is one page of a list
type ListResult struct {
	Kind       domain.EntityKind
	Rows       []domain.Record
	Columns    []domain.Column // visible columns in display order
	Query      Query
	Page       int
	PageSize   int
	TotalPages int
	Total      int // records matching the query, across all pages
}

// ListCommand lists one page of records of a kind
type ListCommand struct {
	repo     ports.EntityRepository
	prefs    ports.PreferenceStore
	defaults ListDefaults
	Kind     domain.EntityKind
	Options  ListOptions
}

// NewListCommand creates a new ListCommand
func NewListCommand(repo ports.EntityRepository, prefs ports.PreferenceStore, defaults ListDefaults, kind domain.EntityKind, opts ListOptions) *ListCommand {
	return &ListCommand{
		repo:     repo,
		prefs:    prefs,
		defaults: defaults,
		Kind:     kind,
		Options:  opts,
	}
}

// Validate checks the kind and options
func (c *ListCommand) Validate() error {
	if c.Kind.Columns() == nil {
		return &application.ValidationError{Field: "kind", Message: fmt.Sprintf("unknown kind %q", c.Kind)}
	}
	if c.Options.View != "" && !slices.Contains(c.Kind.Views(), c.Options.View) {
		return application.ValidateStatus("view", c.Options.View, c.Kind.Views()...)
	}
	if c.Options.SortKey != "" {
		if err := application.ValidateColumn(c.Kind, c.Options.SortKey); err != nil {
			return err
		}
	}
	for key := range c.Options.Filters {
		if err := application.ValidateColumn(c.Kind, key); err != nil {
			return err
		}
	}
	if c.Options.Page < 0 {
		return application.ValidatePage(c.Options.Page, 1)
	}
	if c.Options.PageSize < 0 {
		return application.ValidatePageSize(c.Options.PageSize)
	}
	return nil
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) (*ListResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	list, err := NewEntityList(ctx, c.Kind, c.prefs, c.defaults)
	if err != nil {
		return nil, err
	}
	c.apply(list)

	records, err := LoadRecords(ctx, c.repo, c.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", c.Kind, err)
	}

	q := QueryFrom(list.SortFilter)
	matched := ApplyQuery(c.Kind, records, q)

	return &ListResult{
		Kind:       c.Kind,
		Rows:       list.PaginateData(matched),
		Columns:    list.OrderedColumns(),
		Query:      q,
		Page:       list.CurrentPage(),
		PageSize:   list.PageSize(),
		TotalPages: list.TotalPages(len(matched)),
		Total:      len(matched),
	}, nil
}

func (c *ListCommand) apply(list *EntityList) {
	o := c.Options
	if o.SearchTerm != "" {
		list.SetSearchTerm(o.SearchTerm)
	}
	if o.View != "" {
		list.SetActiveView(o.View)
	}
	for key, value := range o.Filters {
		list.UpdateFilter(key, value)
	}
	if o.SortKey != "" || o.Descending {
		key := o.SortKey
		if key == "" {
			key = list.Sort().Key
		}
		dir := liststate.Asc
		if o.Descending {
			dir = liststate.Desc
		}
		list.SetSort(key, dir)
	}
	if o.PageSize > 0 {
		list.SetPageSize(o.PageSize)
	}
	if o.Page > 0 {
		list.GoToPage(o.Page)
	}
}
