package entity

import (
	"context"
	"fmt"
	"log/slog"
)

// Create inserts a record built from the payload and returns its id.
// Columns missing from the payload take their table defaults.
func (s *Service) Create(ctx context.Context, module string, payload map[string]any) (int64, error) {
	schema, err := schemaFor(module)
	if err != nil {
		return 0, err
	}

	fields, err := schema.Bind(payload, true)
	if err != nil {
		return 0, err
	}

	id, err := s.records.Create(ctx, schema, fields)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", schema.Module, err)
	}

	s.log.InfoContext(ctx, "record created",
		slog.String("module", schema.Module.String()),
		slog.Int64("id", id),
	)

	return id, nil
}
