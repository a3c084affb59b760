package commands

import (
	"context"
	"fmt"

	"kennel/internal/application"
	"kennel/internal/domain"
	"kennel/internal/ports"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	Kind    domain.EntityKind
	Deleted int
	Message string
}

// DeleteCommand deletes one or many records of a kind. The TUI runs it for
// the delete modal and for the bulk "delete" action on a selection.
type DeleteCommand struct {
	repo ports.EntityRepository
	Kind domain.EntityKind
	IDs  []string
}

// NewDeleteCommand creates a new DeleteCommand
func NewDeleteCommand(repo ports.EntityRepository, kind domain.EntityKind, ids ...string) *DeleteCommand {
	return &DeleteCommand{
		repo: repo,
		Kind: kind,
		IDs:  ids,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteCommand) Validate() error {
	if c.Kind.Columns() == nil {
		return &application.ValidationError{Field: "kind", Message: fmt.Sprintf("unknown kind %q", c.Kind)}
	}
	if len(c.IDs) == 0 {
		return &application.ValidationError{Field: "ids", Message: "at least one ID is required"}
	}
	for _, id := range c.IDs {
		if err := application.ValidateRequired("id", id); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	n, err := c.repo.Delete(ctx, c.Kind, c.IDs...)
	if err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", c.Kind, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: no %s with id %v", application.ErrNotFound, c.Kind, c.IDs)
	}

	msg := fmt.Sprintf("Deleted %d %s", n, c.Kind)
	if len(c.IDs) == 1 {
		msg = fmt.Sprintf("Deleted %s", c.IDs[0])
	}
	return &DeleteResult{Kind: c.Kind, Deleted: n, Message: msg}, nil
}
