package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"clans/src/core/domain"
	"clans/src/core/ports"
	"clans/src/infra/db"
	"clans/src/infra/logger"
)

var (
	_ ports.ClanRepository = (*ClanRepository)(nil)
	_ ports.PoolReporter   = (*ClanRepository)(nil)
)

// ClanRepository implements ports.ClanRepository using pgx.
type ClanRepository struct {
	pg   *db.Postgres
	stmt *statements
	log  *slog.Logger
}

// NewClanRepository constructs a repository for schema.table backed by pg.
func NewClanRepository(pg *db.Postgres, schema, table string, log *slog.Logger) *ClanRepository {
	return &ClanRepository{
		pg:   pg,
		stmt: newStatements(schema, table),
		log:  logger.WithComponent(log, "clan_repository"),
	}
}

// clanRow is the expected shape of a clans row. Decoding fails if the
// returned columns differ in number, name or type.
type clanRow struct {
	ID        uuid.UUID  `db:"id"`
	Name      string     `db:"name"`
	Region    string     `db:"region"`
	CreatedAt *time.Time `db:"created_at"`
}

func (r clanRow) toDomain() domain.Clan {
	return domain.Clan{
		ID:        r.ID,
		Name:      r.Name,
		Region:    r.Region,
		CreatedAt: r.CreatedAt,
	}
}

// Health pings the database.
func (r *ClanRepository) Health(ctx context.Context) error {
	return r.pg.Health(ctx)
}

// PoolStats reports the current pool counters.
func (r *ClanRepository) PoolStats() ports.PoolStats {
	s := r.pg.Pool.Stat()
	return ports.PoolStats{
		TotalConns:    s.TotalConns(),
		IdleConns:     s.IdleConns(),
		AcquiredConns: s.AcquiredConns(),
		MaxConns:      s.MaxConns(),
	}
}

// Create inserts a clan and returns the stored row.
func (r *ClanRepository) Create(ctx context.Context, name, region string) (*domain.Clan, error) {
	var clan domain.Clan
	err := r.pg.WithTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, r.stmt.insert, name, region)
		if err != nil {
			return err
		}
		row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[clanRow])
		if err != nil {
			return err
		}
		clan = row.toDomain()
		return nil
	})
	if err != nil {
		return nil, r.dbError("create", err)
	}
	return &clan, nil
}

// List returns one page of clans, optionally filtered by region.
func (r *ClanRepository) List(ctx context.Context, q domain.ListQuery) ([]domain.Clan, error) {
	stmt, ok := r.stmt.listStatement(q)
	if !ok {
		return nil, fmt.Errorf("no list statement for sort %q order %q", q.SortBy, q.Order)
	}

	var clans []domain.Clan
	err := r.pg.WithTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, stmt, q.Region, q.Limit, q.Offset)
		if err != nil {
			return err
		}
		decoded, err := pgx.CollectRows(rows, pgx.RowToStructByName[clanRow])
		if err != nil {
			return err
		}
		clans = make([]domain.Clan, 0, len(decoded))
		for _, row := range decoded {
			clans = append(clans, row.toDomain())
		}
		return nil
	})
	if err != nil {
		return nil, r.dbError("list", err)
	}
	return clans, nil
}

// Get returns the clan with the given id or a not found error.
func (r *ClanRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Clan, error) {
	var clan domain.Clan
	err := r.pg.WithTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, r.stmt.get, id)
		if err != nil {
			return err
		}
		row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[clanRow])
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.NewNotFoundError("Clan not found")
			}
			return err
		}
		clan = row.toDomain()
		return nil
	})
	if err != nil {
		return nil, r.dbError("get", err)
	}
	return &clan, nil
}

// Delete removes the clan with the given id and returns that id.
func (r *ClanRepository) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var deleted uuid.UUID
	err := r.pg.WithTx(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, r.stmt.delete, id).Scan(&deleted); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.NewNotFoundError("Clan not found")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, r.dbError("delete", err)
	}
	return deleted, nil
}

// dbError passes domain errors through and wraps everything else as a
// database error carrying the driver's message.
func (r *ClanRepository) dbError(op string, err error) error {
	var domErr *domain.DomainError
	if errors.As(err, &domErr) {
		return err
	}

	message := err.Error()
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		message = pgErr.Message
	}

	r.log.Error("database operation failed", "op", op, "error", err)
	return domain.NewDatabaseError(message, err)
}
