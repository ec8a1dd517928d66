package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"ads-campaigns/internal/db"
)

// setupTestDB starts a PostgreSQL container, applies the migrations and
// returns a pool. The container is terminated when the test finishes.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("ads"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	require.NoError(t, db.Migrate(dsn), "failed to apply migrations")

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err, "failed to create pool")
	t.Cleanup(pool.Close)

	return pool
}

// insertClicks adds n clicks of banner and returns their ids.
func insertClicks(t *testing.T, pool *pgxpool.Pool, nextID *int64, campaign, banner int64, quarter, n int) []int64 {
	t.Helper()
	ids := make([]int64, 0, n)
	for range n {
		*nextID++
		_, err := pool.Exec(context.Background(),
			`INSERT INTO clicks (click_id, banner_id, campaign_id, quarter) VALUES ($1,$2,$3,$4)`,
			*nextID, banner, campaign, quarter)
		require.NoError(t, err)
		ids = append(ids, *nextID)
	}
	return ids
}

func insertConversion(t *testing.T, pool *pgxpool.Pool, nextID *int64, clickID int64, revenue float64) {
	t.Helper()
	*nextID++
	_, err := pool.Exec(context.Background(),
		`INSERT INTO conversions (conversion_id, click_id, revenue) VALUES ($1,$2,$3)`,
		*nextID, clickID, revenue)
	require.NoError(t, err)
}
