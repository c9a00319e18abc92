// Package entity implements the generic module-table repository. Every SQL
// identifier comes from the domain schema registry; every value is bound as a
// parameter.
package entity

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/bizcrm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides record persistence for all module tables.
type Repo struct {
	db postgres.Querier
}

// New creates a new entity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns the rows of the module matching the filter, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, s *domain.Schema, f domain.ListFilter) ([]domain.Record, error) {
	query := psql.Select(s.ColumnNames()...).
		From(s.Module.Table()).
		Where(sq.Eq{domain.ColIsDeleted: f.Deleted})

	if q := strings.TrimSpace(f.Q); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		or := sq.Or{}
		for _, col := range domain.SearchColumns {
			or = append(or, sq.ILike{col: pattern})
		}
		query = query.Where(or)
	}
	if f.Status != nil {
		query = query.Where(sq.Eq{domain.ColStatus: *f.Status})
	}
	if f.OwnerID != nil {
		query = query.Where(sq.Eq{domain.ColOwnerID: *f.OwnerID})
	}

	query = query.OrderBy(domain.ColCreatedAt+" DESC", domain.ColID+" DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", s.Module, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, s.Module.String(), 0)
	}
	defer rows.Close()

	records, err := collectRecords(rows, s)
	if err != nil {
		return nil, postgres.MapError(err, s.Module.String(), 0)
	}
	return records, nil
}

// Get returns one row by id regardless of its deleted flag.
func (r *Repo) Get(ctx context.Context, s *domain.Schema, id int64) (domain.Record, error) {
	sql, args, err := psql.Select(s.ColumnNames()...).
		From(s.Module.Table()).
		Where(sq.Eq{domain.ColID: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get %s: %w", s.Module, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, s.Module.String(), id)
	}
	defer rows.Close()

	records, err := collectRecords(rows, s)
	if err != nil {
		return nil, postgres.MapError(err, s.Module.String(), id)
	}
	if len(records) == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, s.Module.String(), id)
	}
	return records[0], nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a row with the supplied fields and returns its id. Columns
// not present in fields take their table defaults.
func (r *Repo) Create(ctx context.Context, s *domain.Schema, fields domain.Fields) (int64, error) {
	values := make(map[string]any, len(fields))
	for col, v := range fields {
		values[col] = v.Arg()
	}

	sql, args, err := psql.Insert(s.Module.Table()).
		SetMap(values).
		Suffix("RETURNING " + domain.ColID).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert %s: %w", s.Module, err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, s.Module.String(), 0)
	}
	return id, nil
}

// Update sets exactly the supplied fields plus updated_at.
// Returns domain.ErrNotFound if no row has the id.
func (r *Repo) Update(ctx context.Context, s *domain.Schema, id int64, fields domain.Fields) error {
	query := psql.Update(s.Module.Table())
	for _, col := range fields.Columns() {
		query = query.Set(col, fields[col].Arg())
	}
	query = query.
		Set(domain.ColUpdatedAt, sq.Expr("now()")).
		Where(sq.Eq{domain.ColID: id})

	return r.execOne(ctx, s, id, query)
}

// SoftDelete flags the row as deleted and stamps deleted_at. Deleting an
// already deleted row re-stamps it.
func (r *Repo) SoftDelete(ctx context.Context, s *domain.Schema, id int64) error {
	query := psql.Update(s.Module.Table()).
		Set(domain.ColIsDeleted, true).
		Set(domain.ColDeletedAt, sq.Expr("now()")).
		Where(sq.Eq{domain.ColID: id})

	return r.execOne(ctx, s, id, query)
}

// Restore clears the deleted flag and deleted_at.
func (r *Repo) Restore(ctx context.Context, s *domain.Schema, id int64) error {
	query := psql.Update(s.Module.Table()).
		Set(domain.ColIsDeleted, false).
		Set(domain.ColDeletedAt, sq.Expr("NULL")).
		Where(sq.Eq{domain.ColID: id})

	return r.execOne(ctx, s, id, query)
}

// PurgeDeleted hard-deletes rows soft-deleted before the threshold and
// returns how many were removed.
func (r *Repo) PurgeDeleted(ctx context.Context, s *domain.Schema, olderThan time.Time) (int64, error) {
	sql, args, err := psql.Delete(s.Module.Table()).
		Where(sq.Eq{domain.ColIsDeleted: true}).
		Where(sq.Lt{domain.ColDeletedAt: olderThan}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build purge %s: %w", s.Module, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, s.Module.String(), 0)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) execOne(ctx context.Context, s *domain.Schema, id int64, query sq.UpdateBuilder) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build update %s: %w", s.Module, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, s.Module.String(), id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, s.Module.String(), id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// collectRecords reads every row into a Record keyed by column name.
// Date columns are rendered as YYYY-MM-DD.
func collectRecords(rows pgx.Rows, s *domain.Schema) ([]domain.Record, error) {
	fields := rows.FieldDescriptions()
	records := []domain.Record{}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read row values: %w", err)
		}

		rec := make(domain.Record, len(fields))
		for i, fd := range fields {
			v := values[i]
			if col, ok := s.Column(fd.Name); ok && col.Kind == domain.KindDate {
				if t, ok := v.(time.Time); ok {
					v = t.Format(time.DateOnly)
				}
			}
			rec[fd.Name] = v
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return records, nil
}
