package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cadcam-storefront/internal/converter"
	"cadcam-storefront/internal/delivery/dto"
	"cadcam-storefront/internal/domain/entity"
	"cadcam-storefront/internal/domain/repository"
	"cadcam-storefront/internal/infrastructure/metrics"
	"cadcam-storefront/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product")
	ErrStoreWrite      = errors.New("failed to persist catalog")
)

const (
	DefaultPage  = 1
	DefaultLimit = 12

	// allCategories disables the category filter on the list endpoint.
	allCategories = "all"

	auditEntity = "product"
)

// ValidationError describes a rejected create request.
type ValidationError struct {
	Message string
	Errors  []string
}

func (e *ValidationError) Error() string {
	return e.Message + ": " + strings.Join(e.Errors, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidProduct
}

type ProductUsecase interface {
	List(ctx context.Context, filter *dto.ProductFilter) (*dto.ProductListResponse, error)
	Search(ctx context.Context, query string) ([]dto.ProductResponse, error)
	Categories(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id string) (*dto.ProductResponse, error)
	Create(ctx context.Context, req *dto.ProductRequest) (*dto.ProductResponse, error)
	Update(ctx context.Context, id string, req *dto.ProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id string) (*dto.ProductResponse, error)
}

type productUsecase struct {
	log         *logrus.Logger
	productRepo repository.ProductRepository
	audit       service.AuditService
	now         func() time.Time
	newID       func() string
}

func NewProductUsecase(log *logrus.Logger, productRepo repository.ProductRepository, audit service.AuditService) ProductUsecase {
	return &productUsecase{
		log:         log,
		productRepo: productRepo,
		audit:       audit,
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Millisecond)
		},
		newID: uuid.NewString,
	}
}

func (u *productUsecase) List(ctx context.Context, filter *dto.ProductFilter) (*dto.ProductListResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if filter == nil {
		filter = &dto.ProductFilter{}
	}

	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	filtered := filterProducts(u.productRepo.ReadAll(ctx), filter)
	total := len(filtered)

	start := total
	if page-1 <= total/limit {
		start = min((page-1)*limit, total)
	}
	end := min(start+limit, total)
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	return &dto.ProductListResponse{
		Products: converter.ProductsToResponses(filtered[start:end]),
		Pagination: dto.PaginationResponse{
			Page:        page,
			Limit:       limit,
			Total:       total,
			TotalPages:  totalPages,
			HasNextPage: page < totalPages,
			HasPrevPage: page > 1,
		},
	}, nil
}

// filterProducts keeps collection order. Price bounds are truncated to
// integers and ignored when they do not parse.
func filterProducts(products []entity.Product, filter *dto.ProductFilter) []entity.Product {
	search := strings.ToLower(filter.Search)
	minBound, hasMin := dto.ParseInt(filter.MinPrice)
	maxBound, hasMax := dto.ParseInt(filter.MaxPrice)
	minPrice := decimal.NewFromInt(int64(minBound))
	maxPrice := decimal.NewFromInt(int64(maxBound))

	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if filter.Category != "" && filter.Category != allCategories && p.Category != filter.Category {
			continue
		}
		if hasMin && p.Price.LessThan(minPrice) {
			continue
		}
		if hasMax && p.Price.GreaterThan(maxPrice) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func (u *productUsecase) Search(ctx context.Context, query string) ([]dto.ProductResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	products := u.productRepo.ReadAll(ctx)
	matched := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			matched = append(matched, p)
		}
	}

	return converter.ProductsToResponses(matched), nil
}

// Categories returns the distinct categories in first-seen order.
func (u *productUsecase) Categories(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	categories := []string{}
	for _, p := range u.productRepo.ReadAll(ctx) {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories, nil
}

func (u *productUsecase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	products := u.productRepo.ReadAll(ctx)
	idx := indexOf(products, id)
	if idx < 0 {
		return nil, ErrProductNotFound
	}
	return converter.ProductToResponse(&products[idx]), nil
}

func (u *productUsecase) Create(ctx context.Context, req *dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name.Text())
	description := strings.TrimSpace(req.Description.Text())
	category := strings.TrimSpace(req.Category.Text())

	var missing []string
	if name == "" {
		missing = append(missing, "name is required")
	}
	if !req.Price.Truthy() {
		missing = append(missing, "price is required")
	}
	if description == "" {
		missing = append(missing, "description is required")
	}
	if category == "" {
		missing = append(missing, "category is required")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Message: "Name, price, description and category are required", Errors: missing}
	}

	price, ok := req.Price.Decimal()
	if !ok || !price.IsPositive() {
		return nil, &ValidationError{Message: "Invalid product data", Errors: []string{"price must be a positive number"}}
	}

	image := strings.TrimSpace(req.Image.Text())
	if image == "" {
		image = entity.DefaultProductImage
	}

	status := entity.ProductStatusActive
	if req.Status.Truthy() {
		status = entity.ProductStatus(strings.TrimSpace(req.Status.Text()))
	}

	now := u.now()
	product := entity.Product{
		ID:          u.newID(),
		Name:        name,
		Price:       price,
		Description: description,
		Image:       image,
		Quantity:    parseQuantity(req.Quantity),
		Category:    category,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	products := append(u.productRepo.ReadAll(ctx), product)
	if err := u.persist(ctx, products); err != nil {
		return nil, err
	}

	created := converter.ProductToResponse(&product)
	u.audit.LogCreate(ctx, auditEntity, product.ID, created)
	return created, nil
}

// Update merges req into the stored product. Most members apply only when
// truthy, so an empty name or a zero price leaves the old value; quantity
// applies whenever it is defined so that zero can be set.
func (u *productUsecase) Update(ctx context.Context, id string, req *dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	products := u.productRepo.ReadAll(ctx)
	idx := indexOf(products, id)
	if idx < 0 {
		return nil, ErrProductNotFound
	}

	previous := converter.ProductToResponse(&products[idx])
	product := products[idx]
	applyText(&product.Name, req.Name)
	applyText(&product.Description, req.Description)
	applyText(&product.Category, req.Category)
	applyText(&product.Image, req.Image)
	if req.Price.Truthy() {
		if price, ok := req.Price.Decimal(); ok && price.IsPositive() {
			product.Price = price
		}
	}
	if req.Status.Truthy() {
		product.Status = entity.ProductStatus(strings.TrimSpace(req.Status.Text()))
	}
	if req.Quantity.Defined() {
		product.Quantity = parseQuantity(req.Quantity)
	}
	product.UpdatedAt = u.stamp(product.CreatedAt)
	products[idx] = product

	if err := u.persist(ctx, products); err != nil {
		return nil, err
	}

	updated := converter.ProductToResponse(&product)
	u.audit.LogUpdate(ctx, auditEntity, product.ID, previous, updated)
	return updated, nil
}

func (u *productUsecase) Delete(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	products := u.productRepo.ReadAll(ctx)
	idx := indexOf(products, id)
	if idx < 0 {
		return nil, ErrProductNotFound
	}

	removed := products[idx]
	remaining := append(products[:idx:idx], products[idx+1:]...)
	if err := u.persist(ctx, remaining); err != nil {
		return nil, err
	}

	deleted := converter.ProductToResponse(&removed)
	u.audit.LogDelete(ctx, auditEntity, removed.ID, deleted)
	return deleted, nil
}

func (u *productUsecase) persist(ctx context.Context, products []entity.Product) error {
	if err := u.productRepo.WriteAll(ctx, products); err != nil {
		metrics.StoreWriteCounter.WithLabelValues("error").Inc()
		u.log.Errorf("Failed to write catalog: %+v", err)
		return fmt.Errorf("%w: %w", ErrStoreWrite, err)
	}
	metrics.StoreWriteCounter.WithLabelValues("ok").Inc()
	return nil
}

// stamp returns the current time, never earlier than createdAt.
func (u *productUsecase) stamp(createdAt time.Time) time.Time {
	now := u.now()
	if now.Before(createdAt) {
		return createdAt
	}
	return now
}

func indexOf(products []entity.Product, id string) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}

func applyText(dst *string, f dto.Field) {
	if !f.Truthy() {
		return
	}
	if v := strings.TrimSpace(f.Text()); v != "" {
		*dst = v
	}
}

// parseQuantity falls back to zero for blank, unparsable or negative input.
func parseQuantity(f dto.Field) int {
	n, ok := f.Int()
	if !ok || n < 0 {
		return 0
	}
	return n
}
