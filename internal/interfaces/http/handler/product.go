package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	catalogapp "github.com/ivrelife/nexus/internal/application/catalog"
	"github.com/ivrelife/nexus/internal/interfaces/http/dto"
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProductRequest is the request body for adding a catalog product
type CreateProductRequest struct {
	SKU         string `json:"sku" binding:"required,min=1,max=100"`
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Category    string `json:"category" binding:"max=100"`
	Description string `json:"description"`
}

// AddVariantRequest is the request body for adding a variant
type AddVariantRequest struct {
	SKU       string  `json:"sku" binding:"required,min=1,max=100"`
	Name      string  `json:"name" binding:"max=200"`
	UnitPrice float64 `json:"unit_price" binding:"gte=0"`
}

// RepriceVariantRequest is the request body for changing a variant price
type RepriceVariantRequest struct {
	UnitPrice float64 `json:"unit_price" binding:"gte=0"`
}

// SetArchivedRequest is the request body for archiving or restoring
type SetArchivedRequest struct {
	Archived bool `json:"archived"`
}

// Create adds a new product to the catalog
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), getActor(c), catalogapp.CreateProductInput{
		SKU:         req.SKU,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, product)
}

// Get returns one product with its variants
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// List returns catalog products matching the filter
func (h *ProductHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	filter := req.ToFilter()
	if category := c.Query("category"); category != "" {
		filter.Filters["category"] = category
	}
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}

	products, err := h.productService.ListProducts(c.Request.Context(), getActor(c), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, products)
}

// AddVariant adds a purchasable variant to a product
func (h *ProductHandler) AddVariant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req AddVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	product, err := h.productService.AddVariant(c.Request.Context(), getActor(c), catalogapp.AddVariantInput{
		ProductID: id,
		SKU:       req.SKU,
		Name:      req.Name,
		UnitPrice: decimal.NewFromFloat(req.UnitPrice),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// RepriceVariant changes the unit price of a variant
func (h *ProductHandler) RepriceVariant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}
	variantSKU := c.Param("sku")
	if variantSKU == "" {
		h.BadRequest(c, "Variant SKU is required")
		return
	}

	var req RepriceVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	product, err := h.productService.RepriceVariant(c.Request.Context(), getActor(c), id, variantSKU,
		decimal.NewFromFloat(req.UnitPrice))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// RetireVariant deactivates a variant
func (h *ProductHandler) RetireVariant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}
	variantSKU := c.Param("sku")
	if variantSKU == "" {
		h.BadRequest(c, "Variant SKU is required")
		return
	}

	if err := h.productService.RetireVariant(c.Request.Context(), getActor(c), id, variantSKU); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// SetArchived archives or restores a product
func (h *ProductHandler) SetArchived(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req SetArchivedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.productService.SetArchived(c.Request.Context(), getActor(c), id, req.Archived); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
