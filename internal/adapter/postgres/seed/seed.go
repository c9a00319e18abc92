// Package seed fills an empty database with the baseline roles, the
// administrative account and a handful of sample records.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	postgres "github.com/heartmarshall/bizcrm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bizcrm-backend/internal/adapter/postgres/entity"
	"github.com/heartmarshall/bizcrm-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

// lockKey identifies the advisory lock held while seeding.
const lockKey int64 = 0x62697a63726d // "bizcrm"

const (
	lockSQL       = `SELECT pg_advisory_xact_lock($1)`
	countRolesSQL = `SELECT COUNT(*) FROM roles`
	insertRoleSQL = `INSERT INTO roles (name, level, permissions) VALUES ($1, $2, $3::jsonb) RETURNING id`
)

// Admin describes the administrative account created on first start.
type Admin struct {
	Username string
	Password string
	RealName string
}

type role struct {
	name        string
	level       int
	permissions string
}

var roles = []role{
	{"超级管理员", 1, `{"all": true}`},
	{"销售总监", 2, `{"modules": ["leads", "customers", "opportunities", "contracts", "activities"], "scope": "all"}`},
	{"销售经理", 3, `{"modules": ["leads", "customers", "opportunities", "contracts", "activities"], "scope": "team"}`},
	{"销售专员", 4, `{"modules": ["leads", "customers", "opportunities", "activities"], "scope": "own"}`},
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Seeder populates the baseline data set exactly once.
type Seeder struct {
	db      postgres.Querier
	tx      txManager
	users   *user.Repo
	records *entity.Repo
	admin   Admin
	cost    int
	log     *slog.Logger
}

// New creates a Seeder. db must be the same pool the transaction manager
// begins on.
func New(log *slog.Logger, db postgres.Querier, tx txManager, admin Admin) *Seeder {
	return &Seeder{
		db:      db,
		tx:      tx,
		users:   user.New(db),
		records: entity.New(db),
		admin:   admin,
		cost:    bcrypt.DefaultCost,
		log:     log.With("component", "seed"),
	}
}

// SeedIfEmpty inserts the baseline data when the roles table is empty and
// reports whether it did. The whole run is one transaction serialised by an
// advisory lock, so concurrent first starts seed once.
func (s *Seeder) SeedIfEmpty(ctx context.Context) (bool, error) {
	seeded := false
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, s.db)

		if _, err := q.Exec(ctx, lockSQL, lockKey); err != nil {
			return postgres.MapError(err, "seed lock", 0)
		}

		var n int64
		if err := q.QueryRow(ctx, countRolesSQL).Scan(&n); err != nil {
			return postgres.MapError(err, "roles", 0)
		}
		if n > 0 {
			return nil
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s.admin.Password), s.cost)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}

		roleIDs := make([]int64, len(roles))
		for i, r := range roles {
			if err := q.QueryRow(ctx, insertRoleSQL, r.name, r.level, r.permissions).Scan(&roleIDs[i]); err != nil {
				return postgres.MapError(err, "role "+r.name, 0)
			}
		}

		admin, err := s.users.Create(ctx, domain.User{
			Username:     s.admin.Username,
			PasswordHash: string(hash),
			RealName:     s.admin.RealName,
			RoleID:       &roleIDs[0],
			Department:   "管理部",
		})
		if err != nil {
			return err
		}

		for _, sample := range samples(admin.ID) {
			if _, err := s.records.Create(ctx, domain.SchemaOf(sample.module), sample.fields); err != nil {
				return fmt.Errorf("seed %s: %w", sample.module, err)
			}
		}

		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if seeded {
		s.log.InfoContext(ctx, "database seeded",
			slog.Int("roles", len(roles)),
			slog.String("admin", s.admin.Username),
		)
	}
	return seeded, nil
}

type sample struct {
	module domain.Module
	fields domain.Fields
}

func samples(ownerID int64) []sample {
	owner := domain.IntValue(ownerID)
	text := domain.TextValue

	return []sample{
		{domain.ModuleLeads, domain.Fields{
			"name": text("华东机电设备有限公司"), "contact_person": text("王经理"),
			"phone": text("13800000001"), "source": text("展会"), "industry": text("制造业"),
			"owner_id": owner,
		}},
		{domain.ModuleLeads, domain.Fields{
			"name": text("星河网络科技"), "contact_person": text("李总"),
			"phone": text("13800000002"), "source": text("官网"), "industry": text("互联网"),
			"status": text("跟进中"), "owner_id": owner,
		}},
		{domain.ModuleLeads, domain.Fields{
			"name": text("蓝海国际贸易"), "contact_person": text("陈女士"),
			"email": text("chen@lanhai.example"), "source": text("转介绍"), "industry": text("贸易"),
			"owner_id": owner,
		}},
		{domain.ModuleCustomers, domain.Fields{
			"name": text("远航物流集团"), "contact_person": text("赵总"),
			"phone": text("13900000001"), "industry": text("物流"), "level": text("A"),
			"status": text("成交客户"), "owner_id": owner,
		}},
		{domain.ModuleCustomers, domain.Fields{
			"name": text("金石建材"), "contact_person": text("孙经理"),
			"phone": text("13900000002"), "industry": text("建材"), "level": text("B"),
			"owner_id": owner,
		}},
		{domain.ModuleOpportunities, domain.Fields{
			"name": text("ERP 系统升级"), "contact_person": text("赵总"),
			"amount": domain.RealValue(50000), "stage": text("初步沟通"), "probability": domain.IntValue(20),
			"owner_id": owner,
		}},
		{domain.ModuleOpportunities, domain.Fields{
			"name": text("办公设备采购"), "contact_person": text("孙经理"),
			"amount": domain.RealValue(20000), "stage": text("初步沟通"), "probability": domain.IntValue(30),
			"owner_id": owner,
		}},
		{domain.ModuleOpportunities, domain.Fields{
			"name": text("年度维保服务"), "contact_person": text("赵总"),
			"amount": domain.RealValue(80000), "stage": text("需求确认"), "probability": domain.IntValue(50),
			"owner_id": owner,
		}},
	}
}
