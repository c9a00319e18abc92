package entity

import (
	"context"
	"fmt"
	"log/slog"
)

// SoftDelete marks a record deleted. Deleting an already deleted record
// succeeds and refreshes its deletion time.
func (s *Service) SoftDelete(ctx context.Context, module string, id int64) error {
	schema, err := schemaFor(module)
	if err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}

	if err := s.records.SoftDelete(ctx, schema, id); err != nil {
		return fmt.Errorf("delete %s: %w", schema.Module, err)
	}

	s.log.InfoContext(ctx, "record deleted",
		slog.String("module", schema.Module.String()),
		slog.Int64("id", id),
	)

	return nil
}

// Restore clears the deleted mark of a record.
func (s *Service) Restore(ctx context.Context, module string, id int64) error {
	schema, err := schemaFor(module)
	if err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}

	if err := s.records.Restore(ctx, schema, id); err != nil {
		return fmt.Errorf("restore %s: %w", schema.Module, err)
	}

	s.log.InfoContext(ctx, "record restored",
		slog.String("module", schema.Module.String()),
		slog.Int64("id", id),
	)

	return nil
}
