package commands

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"kennel/internal/application"
	"kennel/internal/domain"
	"kennel/internal/ports"
)

// ColumnState describes one column of a list view
type ColumnState struct {
	domain.Column
	Visible  bool
	Position int // index in the display order
}

// ColumnsResult is the column layout of a kind after a command
type ColumnsResult struct {
	Kind    domain.EntityKind
	Columns []ColumnState // in display order
	Message string
}

func columnsResult(kind domain.EntityKind, list *EntityList, message string) *ColumnsResult {
	all := make(map[string]domain.Column)
	for _, col := range list.AllColumns() {
		all[col.ID] = col
	}
	var states []ColumnState
	for i, id := range list.ColumnOrder() {
		col, ok := all[id]
		if !ok {
			continue
		}
		states = append(states, ColumnState{Column: col, Visible: list.IsColumnVisible(id), Position: i})
	}
	return &ColumnsResult{Kind: kind, Columns: states, Message: message}
}

// ShowColumnsCommand reports the column layout of a kind
type ShowColumnsCommand struct {
	prefs ports.PreferenceStore
	Kind  domain.EntityKind
}

// NewShowColumnsCommand creates a new ShowColumnsCommand
func NewShowColumnsCommand(prefs ports.PreferenceStore, kind domain.EntityKind) *ShowColumnsCommand {
	return &ShowColumnsCommand{prefs: prefs, Kind: kind}
}

// Execute runs the show columns command
func (c *ShowColumnsCommand) Execute(ctx context.Context) (*ColumnsResult, error) {
	list, err := NewEntityList(ctx, c.Kind, c.prefs, ListDefaults{})
	if err != nil {
		return nil, err
	}
	return columnsResult(c.Kind, list, ""), nil
}

// ToggleColumnCommand shows or hides a column
type ToggleColumnCommand struct {
	prefs    ports.PreferenceStore
	Kind     domain.EntityKind
	ColumnID string
}

// NewToggleColumnCommand creates a new ToggleColumnCommand
func NewToggleColumnCommand(prefs ports.PreferenceStore, kind domain.EntityKind, columnID string) *ToggleColumnCommand {
	return &ToggleColumnCommand{prefs: prefs, Kind: kind, ColumnID: columnID}
}

// Validate checks that the column exists
func (c *ToggleColumnCommand) Validate() error {
	if err := application.ValidateRequired("columnID", c.ColumnID); err != nil {
		return err
	}
	return application.ValidateColumn(c.Kind, c.ColumnID)
}

// Execute runs the toggle column command
func (c *ToggleColumnCommand) Execute(ctx context.Context) (*ColumnsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	list, err := NewEntityList(ctx, c.Kind, c.prefs, ListDefaults{})
	if err != nil {
		return nil, err
	}
	if err := list.ToggleColumn(ctx, c.ColumnID); err != nil {
		return nil, err
	}

	state := "hidden"
	if list.IsColumnVisible(c.ColumnID) {
		state = "shown"
	}
	return columnsResult(c.Kind, list, fmt.Sprintf("Column %s %s", c.ColumnID, state)), nil
}

// MoveColumnCommand moves a column within the display order
type MoveColumnCommand struct {
	prefs ports.PreferenceStore
	Kind  domain.EntityKind
	From  string // column id or index in the order
	To    int
}

// NewMoveColumnCommand creates a new MoveColumnCommand
func NewMoveColumnCommand(prefs ports.PreferenceStore, kind domain.EntityKind, from string, to int) *MoveColumnCommand {
	return &MoveColumnCommand{prefs: prefs, Kind: kind, From: from, To: to}
}

// Execute runs the move column command
func (c *MoveColumnCommand) Execute(ctx context.Context) (*ColumnsResult, error) {
	list, err := NewEntityList(ctx, c.Kind, c.prefs, ListDefaults{})
	if err != nil {
		return nil, err
	}
	from, err := ColumnIndex(c.Kind, list.ColumnOrder(), c.From)
	if err != nil {
		return nil, err
	}
	id := list.ColumnOrder()[from]
	if err := list.MoveColumn(ctx, from, c.To); err != nil {
		return nil, err
	}
	pos := slices.Index(list.ColumnOrder(), id)
	return columnsResult(c.Kind, list, fmt.Sprintf("Moved %s to position %d", id, pos)), nil
}

// ColumnIndex resolves ref, a column id or a zero-based index, to an index
// of order
func ColumnIndex(kind domain.EntityKind, order []string, ref string) (int, error) {
	if i, err := strconv.Atoi(ref); err == nil {
		if i < 0 || i >= len(order) {
			return 0, &application.ValidationError{
				Field:   "from",
				Message: fmt.Sprintf("index %d out of range 0..%d", i, len(order)-1),
			}
		}
		return i, nil
	}
	if i := slices.Index(order, ref); i >= 0 {
		return i, nil
	}
	return 0, &application.ColumnError{Kind: kind.String(), ColumnID: ref}
}

// ResetColumnsCommand restores the default column layout
type ResetColumnsCommand struct {
	prefs ports.PreferenceStore
	Kind  domain.EntityKind
}

// NewResetColumnsCommand creates a new ResetColumnsCommand
func NewResetColumnsCommand(prefs ports.PreferenceStore, kind domain.EntityKind) *ResetColumnsCommand {
	return &ResetColumnsCommand{prefs: prefs, Kind: kind}
}

// Execute runs the reset columns command
func (c *ResetColumnsCommand) Execute(ctx context.Context) (*ColumnsResult, error) {
	list, err := NewEntityList(ctx, c.Kind, c.prefs, ListDefaults{})
	if err != nil {
		return nil, err
	}
	if err := list.ResetColumns(ctx); err != nil {
		return nil, err
	}
	return columnsResult(c.Kind, list, fmt.Sprintf("Reset %s columns", c.Kind)), nil
}
