package mocks

import (
	"context"

	"cadcam-storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ReadAll(ctx context.Context) []entity.Product {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]entity.Product)
	}
	return []entity.Product{}
}

func (m *MockProductRepository) WriteAll(ctx context.Context, products []entity.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}
