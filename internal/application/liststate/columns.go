package liststate

import (
	"context"
	"encoding/json"
	"errors"
	"slices"

	charmlog "github.com/charmbracelet/log"

	"kennel/internal/application"
	"kennel/internal/domain"
	"kennel/internal/logging"
	"kennel/internal/ports"
)

// Preference key suffixes appended to a view's storage key
const (
	VisibleColumnsSuffix = "-visible-columns"
	ColumnOrderSuffix    = "-column-order"
)

// Columns tracks which columns of a list are shown and in what order.
// Both lists are mirrored to a PreferenceStore so they survive restarts.
type Columns struct {
	all        []domain.Column
	byID       map[string]domain.Column
	storageKey string
	store      ports.PreferenceStore
	logger     *charmlog.Logger

	visible []string
	order   []string
}

// ColumnOption configures a Columns controller
type ColumnOption func(*Columns)

// WithLogger sets the logger used to report unreadable preferences
func WithLogger(logger *charmlog.Logger) ColumnOption {
	return func(c *Columns) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewColumns creates the controller and loads persisted preferences.
//
// Persisted lists are reconciled with allColumns: a column missing from the
// persisted order is new and becomes visible, inserted in the order just
// before the actions column (or appended when there is none). Unreadable
// preferences fall back to the defaults. A nil store or empty storageKey
// keeps preferences in memory only.
func NewColumns(ctx context.Context, allColumns []domain.Column, storageKey string, store ports.PreferenceStore, opts ...ColumnOption) (*Columns, error) {
	c := &Columns{
		all:        slices.Clone(allColumns),
		byID:       make(map[string]domain.Column, len(allColumns)),
		storageKey: storageKey,
		store:      store,
		logger:     logging.Default(),
	}
	for _, col := range allColumns {
		c.byID[col.ID] = col
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.load(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Columns) load(ctx context.Context) error {
	ids := domain.ColumnIDs(c.all)

	order, hasOrder, err := c.read(ctx, c.orderKey())
	if err != nil {
		return err
	}
	visible, hasVisible, err := c.read(ctx, c.visibleKey())
	if err != nil {
		return err
	}

	if hasOrder {
		c.order = reconcileOrder(order, ids)
	} else {
		c.order = slices.Clone(ids)
	}

	switch {
	case !hasVisible:
		c.visible = slices.Clone(ids)
	case hasOrder:
		// The persisted order knows every column that existed when the
		// user last saved, so hidden columns stay hidden.
		c.visible = appendMissing(visible, ids, order)
	default:
		c.visible = appendMissing(visible, ids, visible)
	}
	return nil
}

// read loads a persisted id list. Malformed content is logged and treated
// as absent.
func (c *Columns) read(ctx context.Context, key string) ([]string, bool, error) {
	if !c.persistent() {
		return nil, false, nil
	}
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, false, &application.PreferenceError{Key: key, Op: "load", Err: err}
	}
	if !ok {
		return nil, false, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		c.logger.Warn("ignoring malformed column preference", "key", key, "err", err)
		return nil, false, nil
	}
	return ids, true, nil
}

func (c *Columns) write(ctx context.Context, key string, ids []string) error {
	if !c.persistent() {
		return nil
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return &application.PreferenceError{Key: key, Op: "encode", Err: err}
	}
	if err := c.store.Set(ctx, key, string(data)); err != nil {
		return &application.PreferenceError{Key: key, Op: "save", Err: err}
	}
	return nil
}

func (c *Columns) persistent() bool {
	return c.store != nil && c.storageKey != ""
}

func (c *Columns) visibleKey() string { return c.storageKey + VisibleColumnsSuffix }

func (c *Columns) orderKey() string { return c.storageKey + ColumnOrderSuffix }

// ToggleColumn shows or hides a column and persists the visible list.
// The order is saved alongside so the hidden column is not mistaken for a
// new one on the next load. In-memory state changes even if saving fails.
func (c *Columns) ToggleColumn(ctx context.Context, columnID string) error {
	if i := slices.Index(c.visible, columnID); i >= 0 {
		c.visible = slices.Delete(slices.Clone(c.visible), i, i+1)
	} else {
		c.visible = append(slices.Clone(c.visible), columnID)
	}
	return errors.Join(
		c.write(ctx, c.visibleKey(), c.visible),
		c.write(ctx, c.orderKey(), c.order),
	)
}

// MoveColumn moves the column at fromIndex of the order to toIndex and
// persists the order. An out-of-range fromIndex is a no-op. toIndex follows
// splice rules: negative counts from the end, past the end appends.
func (c *Columns) MoveColumn(ctx context.Context, fromIndex, toIndex int) error {
	if fromIndex < 0 || fromIndex >= len(c.order) {
		return nil
	}
	id := c.order[fromIndex]
	next := slices.Delete(slices.Clone(c.order), fromIndex, fromIndex+1)

	if toIndex < 0 {
		toIndex = max(len(next)+toIndex, 0)
	}
	toIndex = min(toIndex, len(next))
	c.order = slices.Insert(next, toIndex, id)

	return c.write(ctx, c.orderKey(), c.order)
}

// ResetColumns shows every column in canonical order and erases the
// persisted preferences
func (c *Columns) ResetColumns(ctx context.Context) error {
	ids := domain.ColumnIDs(c.all)
	c.visible = slices.Clone(ids)
	c.order = slices.Clone(ids)

	if !c.persistent() {
		return nil
	}
	var errs []error
	for _, key := range []string{c.visibleKey(), c.orderKey()} {
		if err := c.store.Remove(ctx, key); err != nil {
			errs = append(errs, &application.PreferenceError{Key: key, Op: "remove", Err: err})
		}
	}
	return errors.Join(errs...)
}

// AllColumns returns the canonical column list
func (c *Columns) AllColumns() []domain.Column {
	return slices.Clone(c.all)
}

// VisibleColumns returns the ids of the visible columns
func (c *Columns) VisibleColumns() []string {
	return slices.Clone(c.visible)
}

// ColumnOrder returns the display order of every column id
func (c *Columns) ColumnOrder() []string {
	return slices.Clone(c.order)
}

// IsColumnVisible reports whether columnID is shown
func (c *Columns) IsColumnVisible(columnID string) bool {
	return slices.Contains(c.visible, columnID)
}

// OrderedColumns returns the visible columns in display order. Ids without
// a definition are skipped.
func (c *Columns) OrderedColumns() []domain.Column {
	cols := make([]domain.Column, 0, len(c.visible))
	for _, id := range c.order {
		if !slices.Contains(c.visible, id) {
			continue
		}
		if col, ok := c.byID[id]; ok {
			cols = append(cols, col)
		}
	}
	return cols
}

// reconcileOrder inserts ids missing from persisted just before the actions
// column, or appends them when persisted has no actions column
func reconcileOrder(persisted, ids []string) []string {
	order := slices.Clone(persisted)
	for _, id := range ids {
		if slices.Contains(order, id) {
			continue
		}
		if at := slices.Index(order, domain.ActionsColumn); at >= 0 {
			order = slices.Insert(order, at, id)
		} else {
			order = append(order, id)
		}
	}
	return order
}

// appendMissing appends to list every id of ids unknown to known and not
// already in list
func appendMissing(list, ids, known []string) []string {
	out := slices.Clone(list)
	for _, id := range ids {
		if !slices.Contains(known, id) && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
