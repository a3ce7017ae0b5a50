package converter

import (
	"cadcam-storefront/internal/delivery/dto"
	"cadcam-storefront/internal/domain/entity"
)

// ProductToResponse converts a Product entity to ProductResponse DTO
func ProductToResponse(product *entity.Product) *dto.ProductResponse {
	if product == nil {
		return nil
	}

	return &dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		Image:       product.Image,
		Quantity:    product.Quantity,
		Category:    product.Category,
		Status:      string(product.Status),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ProductsToResponses converts a slice of Product entities to ProductResponse DTOs.
// The result is never nil so it encodes as an empty JSON array.
func ProductsToResponses(products []entity.Product) []dto.ProductResponse {
	responses := make([]dto.ProductResponse, len(products))
	for i := range products {
		responses[i] = *ProductToResponse(&products[i])
	}
	return responses
}
