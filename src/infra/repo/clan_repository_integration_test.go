package repo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clans/src/core/domain"
	"clans/src/infra/config"
	"clans/src/infra/db"
	"clans/src/infra/logger"
)

// openIntegrationDB connects with the regular DB_* variables and creates a
// throwaway table. Set CLANS_TEST_DATABASE=1 to run.
func openIntegrationDB(t *testing.T, tune func(*config.DatabaseConfig)) (*db.Postgres, config.DatabaseConfig) {
	t.Helper()
	if os.Getenv("CLANS_TEST_DATABASE") != "1" {
		t.Skip("CLANS_TEST_DATABASE not set")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	dbCfg := cfg.Database
	dbCfg.FailFast = true
	dbCfg.Table = fmt.Sprintf("clans_test_%d", time.Now().UnixNano())
	if tune != nil {
		tune(&dbCfg)
	}

	ctx := context.Background()

	pg, err := db.New(ctx, dbCfg, logger.Discard())
	require.NoError(t, err)
	require.NoError(t, db.EnsureSchema(ctx, pg, dbCfg))
	// Idempotent.
	require.NoError(t, db.EnsureSchema(ctx, pg, dbCfg))

	t.Cleanup(func() {
		_, _ = pg.Pool.Exec(context.Background(), "DROP TABLE IF EXISTS "+pgx.Identifier{dbCfg.Schema, dbCfg.Table}.Sanitize())
		pg.Close()
	})

	return pg, dbCfg
}

func newIntegrationRepo(t *testing.T) *ClanRepository {
	t.Helper()
	pg, dbCfg := openIntegrationDB(t, nil)
	return NewClanRepository(pg, dbCfg.Schema, dbCfg.Table, logger.Discard())
}

// singleConnDB opens a pool that holds at most one connection, so a leaked
// connection makes the next call time out.
func singleConnDB(t *testing.T) (*db.Postgres, *ClanRepository) {
	t.Helper()
	pg, dbCfg := openIntegrationDB(t, func(c *config.DatabaseConfig) {
		c.MinConns = 1
		c.MaxConns = 1
	})
	return pg, NewClanRepository(pg, dbCfg.Schema, dbCfg.Table, logger.Discard())
}

func TestClanRepositoryRoundTrip(t *testing.T) {
	r := newIntegrationRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, "Alpha", "EU")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	require.NotNil(t, created.CreatedAt)

	got, err := r.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", got.Name)
	assert.Equal(t, "EU", got.Region)

	deleted, err := r.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted)

	_, err = r.Get(ctx, created.ID)
	assert.True(t, domain.IsNotFound(err))

	_, err = r.Delete(ctx, created.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestClanRepositoryListFilterAndOrder(t *testing.T) {
	r := newIntegrationRepo(t)
	ctx := context.Background()

	for _, c := range []struct{ name, region string }{
		{"Charlie", "EU"}, {"Alpha", "EU"}, {"Bravo", "NA"},
	} {
		_, err := r.Create(ctx, c.name, c.region)
		require.NoError(t, err)
	}

	eu := "EU"
	clans, err := r.List(ctx, domain.ListQuery{
		Region: &eu, SortBy: domain.SortByName, Order: domain.OrderAsc, Limit: 100,
	})
	require.NoError(t, err)
	require.Len(t, clans, 2)
	assert.Equal(t, "Alpha", clans[0].Name)
	assert.Equal(t, "Charlie", clans[1].Name)

	all, err := r.List(ctx, domain.ListQuery{
		SortBy: domain.SortByName, Order: domain.OrderDesc, Limit: 2, Offset: 1,
	})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Bravo", all[0].Name)
	assert.Equal(t, "Alpha", all[1].Name)
}

func TestClanRepositoryDatabaseError(t *testing.T) {
	r := newIntegrationRepo(t)
	ctx := context.Background()

	// region is VARCHAR(16); the service validates first, the column enforces it too.
	_, err := r.Create(ctx, "Alpha", "this region is far too long")
	require.Error(t, err)
	assert.True(t, domain.IsDatabaseError(err))
}

func TestClanRepositoryReleasesConnectionsOnErrorPaths(t *testing.T) {
	pg, r := singleConnDB(t)

	for i := 0; i < 5; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		_, err := r.Get(ctx, uuid.New())
		assert.True(t, domain.IsNotFound(err), "round %d get", i)

		_, err = r.Delete(ctx, uuid.New())
		assert.True(t, domain.IsNotFound(err), "round %d delete", i)

		_, err = r.Create(ctx, "Alpha", "this region is far too long")
		assert.True(t, domain.IsDatabaseError(err), "round %d create", i)

		_, err = r.List(ctx, domain.ListQuery{
			SortBy: domain.SortByCreatedAt, Order: domain.OrderDesc, Limit: 10,
		})
		require.NoError(t, err, "round %d list", i)

		cancel()
	}

	assert.Zero(t, pg.Pool.Stat().AcquiredConns())
}

func TestPostgresReleasesConnectionOnPanic(t *testing.T) {
	pg, r := singleConnDB(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	panics := func(run func()) (recovered any) {
		defer func() { recovered = recover() }()
		run()
		return nil
	}

	got := panics(func() {
		_ = pg.WithConn(ctx, func(*pgxpool.Conn) error { panic("conn boom") })
	})
	assert.Equal(t, "conn boom", got)
	assert.Zero(t, pg.Pool.Stat().AcquiredConns())

	got = panics(func() {
		_ = pg.WithTx(ctx, func(pgx.Tx) error { panic("tx boom") })
	})
	assert.Equal(t, "tx boom", got)
	assert.Zero(t, pg.Pool.Stat().AcquiredConns())

	// The single connection is usable again.
	_, err := r.Create(ctx, "Alpha", "EU")
	require.NoError(t, err)
	assert.Zero(t, pg.Pool.Stat().AcquiredConns())
}
