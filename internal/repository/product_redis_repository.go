package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cadcam-storefront/internal/domain/entity"
	domainRepo "cadcam-storefront/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// productRedisRepository stores the JSON catalog array under a single key.
type productRedisRepository struct {
	client *redis.Client
	key    string
	log    *logrus.Logger
}

func NewProductRedisRepository(client *redis.Client, key string, log *logrus.Logger) domainRepo.ProductRepository {
	return &productRedisRepository{client: client, key: key, log: log}
}

func (r *productRedisRepository) ReadAll(ctx context.Context) []entity.Product {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			r.log.Debugf("Catalog key %s does not exist yet", r.key)
		} else {
			r.log.Warnf("Failed to read catalog key %s: %+v", r.key, err)
		}
		return []entity.Product{}
	}

	var products []entity.Product
	if err := json.Unmarshal(data, &products); err != nil {
		r.log.Warnf("Failed to parse catalog key %s: %+v", r.key, err)
		return []entity.Product{}
	}
	if products == nil {
		products = []entity.Product{}
	}
	return products
}

func (r *productRedisRepository) WriteAll(ctx context.Context, products []entity.Product) error {
	if products == nil {
		products = []entity.Product{}
	}
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("write catalog key %s: %w", r.key, err)
	}
	return nil
}
