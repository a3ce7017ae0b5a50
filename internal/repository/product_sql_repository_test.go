package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSQLite(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// An in-memory sqlite database lives and dies with its connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if migrate {
		require.NoError(t, AutoMigrate(db))
	}
	return db
}

func TestSQLRepository_RoundTripKeepsOrder(t *testing.T) {
	repo := NewProductSQLRepository(setupSQLite(t, true), quietLogger())
	ctx := context.Background()

	assert.Empty(t, repo.ReadAll(ctx))

	want := sampleProducts()
	require.NoError(t, repo.WriteAll(ctx, want))

	got := repo.ReadAll(ctx)
	require.Len(t, got, 2)
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Name, got[i].Name)
		assert.True(t, want[i].Price.Equal(got[i].Price), "price %s vs %s", want[i].Price, got[i].Price)
		assert.Equal(t, want[i].Quantity, got[i].Quantity)
		assert.Equal(t, want[i].Status, got[i].Status)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt))
		assert.True(t, want[i].UpdatedAt.Equal(got[i].UpdatedAt))
	}
}

func TestSQLRepository_WriteAllReplaces(t *testing.T) {
	repo := NewProductSQLRepository(setupSQLite(t, true), quietLogger())
	ctx := context.Background()

	require.NoError(t, repo.WriteAll(ctx, sampleProducts()))
	reversed := sampleProducts()
	reversed[0], reversed[1] = reversed[1], reversed[0]
	require.NoError(t, repo.WriteAll(ctx, reversed[:1]))

	got := repo.ReadAll(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "a2f9", got[0].ID)

	require.NoError(t, repo.WriteAll(ctx, nil))
	assert.Empty(t, repo.ReadAll(ctx))
}

func TestSQLRepository_MissingTableFailsSoft(t *testing.T) {
	repo := NewProductSQLRepository(setupSQLite(t, false), quietLogger())

	assert.Empty(t, repo.ReadAll(context.Background()))
	assert.Error(t, repo.WriteAll(context.Background(), sampleProducts()))
}
