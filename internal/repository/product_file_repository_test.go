package repository

import (
	"context"
	"io"
	"testing"
	"time"

	"cadcam-storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogPath = "/data/products.json"

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func sampleProducts() []entity.Product {
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	return []entity.Product{
		{ID: "b7c1", Name: "Mastercam Mill", Price: decimal.RequireFromString("4995.5"), Description: "3-axis milling", Image: entity.DefaultProductImage, Quantity: 4, Category: "CAM", Status: entity.ProductStatusActive, CreatedAt: created, UpdatedAt: created},
		{ID: "a2f9", Name: "SOLIDWORKS Standard", Price: decimal.NewFromInt(3995), Description: "Parametric CAD", Image: entity.DefaultProductImage, Quantity: 0, Category: "CAD", Status: entity.ProductStatusInactive, CreatedAt: created, UpdatedAt: created.Add(time.Hour)},
	}
}

func TestFileRepository_ReadAllMissingFile(t *testing.T) {
	repo := NewProductFileRepository(afero.NewMemMapFs(), catalogPath, quietLogger())

	products := repo.ReadAll(context.Background())
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestFileRepository_ReadAllMalformed(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, catalogPath, []byte("{not json"), 0o644))
	repo := NewProductFileRepository(fs, catalogPath, quietLogger())

	assert.Empty(t, repo.ReadAll(context.Background()))
}

func TestFileRepository_WriteThenRead(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo := NewProductFileRepository(fs, catalogPath, quietLogger())
	ctx := context.Background()

	require.NoError(t, repo.WriteAll(ctx, sampleProducts()))

	got := repo.ReadAll(ctx)
	require.Len(t, got, 2)
	assert.Equal(t, "b7c1", got[0].ID)
	assert.Equal(t, "a2f9", got[1].ID)
	assert.True(t, got[0].Price.Equal(decimal.RequireFromString("4995.5")))
	assert.True(t, got[1].UpdatedAt.Equal(sampleProducts()[1].UpdatedAt))

	raw, err := afero.ReadFile(fs, catalogPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  {\n    \"id\": \"b7c1\"")
	assert.Contains(t, string(raw), "\"price\": 4995.5")
	assert.Contains(t, string(raw), "\"createdAt\": \"2024-03-01T09:30:00Z\"")

	files, err := afero.ReadDir(fs, "/data")
	require.NoError(t, err)
	assert.Len(t, files, 1, "temp files must not be left behind")
}

func TestFileRepository_WriteEmptyCollection(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo := NewProductFileRepository(fs, catalogPath, quietLogger())

	require.NoError(t, repo.WriteAll(context.Background(), nil))

	raw, err := afero.ReadFile(fs, catalogPath)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestFileRepository_WriteFailureKeepsPreviousCatalog(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, NewProductFileRepository(base, catalogPath, quietLogger()).WriteAll(context.Background(), sampleProducts()))

	repo := NewProductFileRepository(afero.NewReadOnlyFs(base), catalogPath, quietLogger())
	err := repo.WriteAll(context.Background(), sampleProducts()[:1])
	assert.Error(t, err)

	assert.Len(t, repo.ReadAll(context.Background()), 2)
}
