package repository

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// Nothing listens on port 1, so every command fails fast with a dial error.
func unreachableRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisRepository_ReadAllFailsSoft(t *testing.T) {
	repo := NewProductRedisRepository(unreachableRedis(t), "catalog:products", quietLogger())

	products := repo.ReadAll(context.Background())
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestRedisRepository_WriteAllReportsFailure(t *testing.T) {
	repo := NewProductRedisRepository(unreachableRedis(t), "catalog:products", quietLogger())

	err := repo.WriteAll(context.Background(), sampleProducts())
	assert.ErrorContains(t, err, "catalog:products")
}
