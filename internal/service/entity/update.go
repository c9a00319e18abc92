package entity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Update overwrites exactly the columns present in the payload and stamps
// updated_at. An empty payload only stamps updated_at.
func (s *Service) Update(ctx context.Context, module string, id int64, payload map[string]any) error {
	schema, err := schemaFor(module)
	if err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}

	fields, err := schema.Bind(payload, false)
	if err != nil {
		return err
	}
	if err := s.records.Update(ctx, schema, id, fields); err != nil {
		return fmt.Errorf("update %s: %w", schema.Module, err)
	}

	s.log.InfoContext(ctx, "record updated",
		slog.String("module", schema.Module.String()),
		slog.Int64("id", id),
		slog.String("fields", strings.Join(fields.Columns(), ",")),
	)

	return nil
}
