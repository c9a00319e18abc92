package entity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

// PurgeDeleted permanently removes records of every module that were
// soft-deleted before olderThan. All modules are purged in one transaction.
func (s *Service) PurgeDeleted(ctx context.Context, olderThan time.Time) (map[domain.Module]int64, error) {
	if olderThan.IsZero() {
		return nil, domain.NewValidationError("older_than", "required")
	}

	purged := make(map[domain.Module]int64, len(domain.AllModules))

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, m := range domain.AllModules {
			n, err := s.records.PurgeDeleted(txCtx, domain.SchemaOf(m), olderThan)
			if err != nil {
				return fmt.Errorf("purge %s: %w", m, err)
			}
			purged[m] = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range purged {
		total += n
	}
	s.log.InfoContext(ctx, "deleted records purged",
		slog.Time("older_than", olderThan),
		slog.Int64("total", total),
	)

	return purged, nil
}
