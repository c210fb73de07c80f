package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"shopassist/internal/catalog"
	"shopassist/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const productsSchema = `
CREATE TABLE products (
	item_name   TEXT NOT NULL,
	color       TEXT,
	price_usd   NUMERIC(10, 2),
	size        TEXT,
	stock_count INTEGER
);
INSERT INTO products (item_name, color, price_usd, size, stock_count) VALUES
	('Blue Jeans', 'Blue', 49.99, 'M', 0),
	('Black Sneakers', 'Black', 69.50, '8', 3),
	('Red Dress', 'Red', NULL, NULL, NULL);
`

func startPostgres(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if os.Getenv("CI") == "" && !isDockerAvailable() {
		t.Skip("Docker not available")
	}

	ctx := context.Background()
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("shopassist"),
		postgres.WithUsername("shopassist"),
		postgres.WithPassword("shopassist"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return dsn
}

func isDockerAvailable() bool {
	provider, err := testcontainers.NewDockerProvider()
	if err != nil {
		return false
	}
	defer provider.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = provider.Client().Ping(ctx)
	return err == nil
}

func TestPostgresRepository_Load(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()

	repo, err := NewPostgresRepository(dsn, "products", 2, 1)
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.db.ExecContext(ctx, productsSchema)
	require.NoError(t, err)

	table, err := repo.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"item_name", "color", "price_usd", "size", "stock_count"}, table.Columns)
	assert.ElementsMatch(t, [][]string{
		{"Blue Jeans", "Blue", "49.99", "M", "0"},
		{"Black Sneakers", "Black", "69.50", "8", "3"},
		{"Red Dress", "Red", "", "", ""},
	}, table.Records)
}

func TestPostgresRepository_LoadBuildsCatalog(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()

	repo, err := NewPostgresRepository(dsn, "products", 2, 1)
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.db.ExecContext(ctx, productsSchema)
	require.NoError(t, err)

	idx := catalog.Load(ctx, repo)
	assert.Equal(t, "postgres:products", idx.Source())
	assert.False(t, idx.Degraded())
	assert.Equal(t, 3, idx.Len())

	roles := idx.Roles()
	assert.Equal(t, "item_name", roles[model.RoleItem])
	assert.Equal(t, "price_usd", roles[model.RolePrice])
	assert.Equal(t, "stock_count", roles[model.RoleStock])

	for _, row := range idx.Rows() {
		if row.Item == "Red Dress" {
			assert.False(t, row.Price.Valid)
			continue
		}
		assert.True(t, row.Price.Valid, row.Item)
	}
}

func TestPostgresRepository_LoadMissingTable(t *testing.T) {
	dsn := startPostgres(t)

	repo, err := NewPostgresRepository(dsn, "no_such_table", 2, 1)
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query catalog")
}
