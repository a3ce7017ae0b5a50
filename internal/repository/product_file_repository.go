package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"cadcam-storefront/internal/domain/entity"
	domainRepo "cadcam-storefront/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// productFileRepository keeps the catalog as a pretty-printed JSON array in a
// single file. The mutex only keeps individual reads and writes from
// interleaving; callers' read-modify-write cycles are not serialized.
type productFileRepository struct {
	fs   afero.Fs
	path string
	log  *logrus.Logger
	mu   sync.Mutex
}

func NewProductFileRepository(fs afero.Fs, path string, log *logrus.Logger) domainRepo.ProductRepository {
	return &productFileRepository{
		fs:   fs,
		path: path,
		log:  log,
	}
}

func (r *productFileRepository) ReadAll(ctx context.Context) []entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.log.Debugf("Catalog file %s does not exist yet", r.path)
		} else {
			r.log.Warnf("Failed to read catalog file %s: %+v", r.path, err)
		}
		return []entity.Product{}
	}

	var products []entity.Product
	if err := json.Unmarshal(data, &products); err != nil {
		r.log.Warnf("Failed to parse catalog file %s: %+v", r.path, err)
		return []entity.Product{}
	}
	if products == nil {
		products = []entity.Product{}
	}

	return products
}

// WriteAll writes to a temp file next to the target and renames it over the
// target, so a failed write leaves the previous catalog intact.
func (r *productFileRepository) WriteAll(ctx context.Context, products []entity.Product) error {
	if products == nil {
		products = []entity.Product{}
	}
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(r.path)
	if err := r.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create catalog directory %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(r.fs, dir, ".products-*.json")
	if err != nil {
		return fmt.Errorf("create temp catalog file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		r.fs.Remove(tmpName)
		return fmt.Errorf("write catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		r.fs.Remove(tmpName)
		return fmt.Errorf("close catalog: %w", err)
	}
	if err := r.fs.Rename(tmpName, r.path); err != nil {
		r.fs.Remove(tmpName)
		return fmt.Errorf("replace catalog file %s: %w", r.path, err)
	}

	return nil
}
