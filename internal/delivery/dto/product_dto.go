package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

// ProductRequest is the body of both create and update. Every member is
// optional at the decoding level; create enforces presence, update merges.
type ProductRequest struct {
	Name        Field `json:"name"`
	Price       Field `json:"price"`
	Description Field `json:"description"`
	Image       Field `json:"image"`
	Quantity    Field `json:"quantity"`
	Category    Field `json:"category"`
	Status      Field `json:"status"`
}

// ProductRules is the string view of a ProductRequest checked by the
// validation pass. Empty members are skipped, so only supplied fields are judged.
type ProductRules struct {
	Name        string `json:"name" validate:"omitempty,max=200"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	Price       string `json:"price" validate:"omitempty,positive_number"`
	Quantity    string `json:"quantity" validate:"omitempty,number"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	Image       string `json:"image" validate:"omitempty,url"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive discontinued"`
}

func (r *ProductRequest) Rules() ProductRules {
	return ProductRules{
		Name:        strings.TrimSpace(r.Name.Text()),
		Description: strings.TrimSpace(r.Description.Text()),
		Price:       strings.TrimSpace(r.Price.Text()),
		Quantity:    strings.TrimSpace(r.Quantity.Text()),
		Category:    strings.TrimSpace(r.Category.Text()),
		Image:       strings.TrimSpace(r.Image.Text()),
		Status:      strings.TrimSpace(r.Status.Text()),
	}
}

// ProductFilter carries the list query. Price bounds stay raw; the usecase
// parses them.
type ProductFilter struct {
	Search   string
	Category string
	MinPrice string
	MaxPrice string
	Page     int
	Limit    int
}

// Response DTOs

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Quantity    int             `json:"quantity"`
	Category    string          `json:"category"`
	Status      string          `json:"status,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type PaginationResponse struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

type ProductListResponse struct {
	Products   []ProductResponse  `json:"products"`
	Pagination PaginationResponse `json:"pagination"`
}
