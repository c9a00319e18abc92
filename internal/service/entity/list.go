package entity

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

// List returns the module's records matching the filter, newest first.
func (s *Service) List(ctx context.Context, module string, f domain.ListFilter) ([]domain.Record, error) {
	schema, err := schemaFor(module)
	if err != nil {
		return nil, err
	}

	f.Q = strings.TrimSpace(f.Q)

	records, err := s.records.List(ctx, schema, f)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", schema.Module, err)
	}
	return records, nil
}

// Get returns one record by id, deleted or not.
func (s *Service) Get(ctx context.Context, module string, id int64) (domain.Record, error) {
	schema, err := schemaFor(module)
	if err != nil {
		return nil, err
	}
	if err := validateID(id); err != nil {
		return nil, err
	}

	rec, err := s.records.Get(ctx, schema, id)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", schema.Module, err)
	}
	return rec, nil
}
