package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"cadcam-storefront/internal/delivery/dto"
	"cadcam-storefront/internal/usecase"
	"cadcam-storefront/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	log            *logrus.Logger
}

func NewProductHandler(productUsecase usecase.ProductUsecase, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		log:            log,
	}
}

// GetAll handles the storefront catalog listing
// @Summary List products
// @Description Filter by search, category and price bounds, then paginate
// @Tags Products
// @Produce json
// @Param search query string false "Case-insensitive match on name or description"
// @Param category query string false "Exact category, or all"
// @Param minPrice query int false "Lower price bound"
// @Param maxPrice query int false "Upper price bound"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} response.Response
// @Router /products [get]
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &dto.ProductFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		MinPrice: q.Get("minPrice"),
		MaxPrice: q.Get("maxPrice"),
	}
	filter.Page, _ = dto.ParseInt(q.Get("page"))
	filter.Limit, _ = dto.ParseInt(q.Get("limit"))

	products, err := h.productUsecase.List(r.Context(), filter)
	if err != nil {
		h.fail(w, err, "Failed to fetch products")
		return
	}

	response.Success(w, http.StatusOK, "Products retrieved successfully", products)
}

// Search handles free-text lookup over name, description and category
// @Summary Search products
// @Tags Products
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} response.Response
// @Router /products/search [get]
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUsecase.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.fail(w, err, "Failed to search products")
		return
	}

	response.Success(w, http.StatusOK, "Search completed successfully", products)
}

// GetCategories handles the category facet
// @Summary List categories
// @Tags Products
// @Produce json
// @Success 200 {object} response.Response
// @Router /products/categories [get]
func (h *ProductHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.productUsecase.Categories(r.Context())
	if err != nil {
		h.fail(w, err, "Failed to fetch categories")
		return
	}

	response.Success(w, http.StatusOK, "Categories retrieved successfully", categories)
}

// GetByID handles getting a product by ID
// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	product, err := h.productUsecase.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err, "Failed to fetch product")
		return
	}

	response.Success(w, http.StatusOK, "Product retrieved successfully", product)
}

// Create handles product creation
// @Summary Create a new product
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ProductRequest true "Product"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeProduct(w, r)
	if !ok {
		return
	}

	product, err := h.productUsecase.Create(r.Context(), req)
	if err != nil {
		h.fail(w, err, "Failed to create product")
		return
	}

	response.Success(w, http.StatusCreated, "Product created successfully", product)
}

// Update handles partial product updates
// @Summary Update a product
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body dto.ProductRequest true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeProduct(w, r)
	if !ok {
		return
	}

	product, err := h.productUsecase.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		h.fail(w, err, "Failed to update product")
		return
	}

	response.Success(w, http.StatusOK, "Product updated successfully", product)
}

// Delete handles product removal and returns the removed record
// @Summary Delete a product
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	product, err := h.productUsecase.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err, "Failed to delete product")
		return
	}

	response.Success(w, http.StatusOK, "Product deleted successfully", product)
}

// decodeProduct treats an empty body as an empty object.
func decodeProduct(w http.ResponseWriter, r *http.Request) (*dto.ProductRequest, bool) {
	var req dto.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request body", nil)
		return nil, false
	}
	return &req, true
}

func (h *ProductHandler) fail(w http.ResponseWriter, err error, message string) {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		response.BadRequest(w, verr.Message, verr.Errors)
	case errors.Is(err, usecase.ErrProductNotFound):
		response.NotFound(w, "Product not found")
	default:
		h.log.Errorf("%s: %+v", message, err)
		response.InternalServerError(w, message, err)
	}
}
