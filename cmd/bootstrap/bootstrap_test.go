package bootstrap

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"cadcam-storefront/config"
	"cadcam-storefront/internal/domain/entity"
	"cadcam-storefront/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logrus.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func memoryApp() *App {
	log := quietLogger()
	return &App{
		Log:   log,
		Store: repository.NewProductFileRepository(afero.NewMemMapFs(), "/data/products.json", log),
	}
}

func TestSeed_EmptyStore(t *testing.T) {
	app := memoryApp()
	ctx := context.Background()

	n, err := app.Seed(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, len(demoCatalog), n)

	products := app.Store.ReadAll(ctx)
	require.Len(t, products, len(demoCatalog))
	ids := make(map[string]bool)
	for _, p := range products {
		assert.True(t, p.Price.IsPositive(), p.Name)
		assert.Equal(t, entity.ProductStatusActive, p.Status)
		assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
		ids[p.ID] = true
	}
}

func TestSeed_KeepsExistingCatalog(t *testing.T) {
	app := memoryApp()
	ctx := context.Background()
	require.NoError(t, app.Store.WriteAll(ctx, []entity.Product{{ID: "keep", Name: "Existing"}}))

	n, err := app.Seed(ctx, false)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, app.Store.ReadAll(ctx), 1)

	n, err = app.Seed(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, len(demoCatalog), n)
	assert.Len(t, app.Store.ReadAll(ctx), len(demoCatalog))
}

func TestNew_FileDriver(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	dataFile := filepath.Join(dir, "catalog", "products.json")
	require.NoError(t, os.WriteFile(envFile, []byte("APP_PORT=5055\nCATALOG_DATA_FILE="+dataFile+"\n"), 0o644))

	app, err := New(envFile)
	require.NoError(t, err)
	t.Cleanup(app.Close)

	assert.Equal(t, ":5055", app.Server.Addr)
	n, err := app.Seed(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, len(demoCatalog), n)
	assert.FileExists(t, dataFile)
}

func TestOpenStore_SQLite(t *testing.T) {
	app := &App{
		Log: quietLogger(),
		Config: &config.Config{
			Catalog: config.CatalogConfig{Driver: config.DriverSQLite},
			DB:      config.DBConfig{DSN: filepath.Join(t.TempDir(), "catalog.db")},
		},
	}
	require.NoError(t, app.openStore())
	t.Cleanup(app.Close)

	n, err := app.Seed(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, app.Store.ReadAll(context.Background()), n)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	app := &App{
		Log:    quietLogger(),
		Config: &config.Config{Catalog: config.CatalogConfig{Driver: "mongo"}},
	}
	assert.ErrorContains(t, app.openStore(), "mongo")
}
