package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ivrelife/nexus/internal/domain/catalog"
	"github.com/ivrelife/nexus/internal/domain/identity"
	"github.com/ivrelife/nexus/internal/domain/shared"
)

// CreateProductInput contains input for adding a catalog product
type CreateProductInput struct {
	SKU         string
	Name        string
	Category    string
	Description string
}

// AddVariantInput contains input for adding a variant to a product
type AddVariantInput struct {
	ProductID uuid.UUID
	SKU       string
	Name      string
	UnitPrice decimal.Decimal
}

// ProductService handles catalog management. The catalog is shared across
// retailers; only backoffice-grade roles may change it.
type ProductService struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewProductService creates a new catalog management service
func NewProductService(productRepo catalog.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{productRepo: productRepo, logger: logger}
}

// CreateProduct adds a new product to the catalog
func (s *ProductService) CreateProduct(ctx context.Context, actor identity.Actor, input CreateProductInput) (*catalog.Product, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapEditProducts) {
		return nil, shared.ErrForbidden
	}

	if _, err := s.productRepo.FindBySKU(ctx, input.SKU); err == nil {
		return nil, shared.NewDomainError("SKU_TAKEN", "A product with this SKU already exists")
	}

	product, err := catalog.NewProduct(input.SKU, input.Name, input.Category)
	if err != nil {
		return nil, err
	}
	product.Description = input.Description

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.logger.Error("Failed to save product", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create product")
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("sku", product.SKU),
	)
	return product, nil
}

// GetProduct returns one product with its variants
func (s *ProductService) GetProduct(ctx context.Context, actor identity.Actor, id uuid.UUID) (*catalog.Product, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapSeeProducts) {
		return nil, shared.ErrForbidden
	}
	return s.productRepo.FindByID(ctx, id)
}

// ListProducts returns catalog products matching the filter
func (s *ProductService) ListProducts(ctx context.Context, actor identity.Actor, filter shared.Filter) ([]catalog.Product, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapSeeProducts) {
		return nil, shared.ErrForbidden
	}
	return s.productRepo.FindAll(ctx, filter)
}

// AddVariant adds a purchasable variant to a product
func (s *ProductService) AddVariant(ctx context.Context, actor identity.Actor, input AddVariantInput) (*catalog.Product, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapEditProducts) {
		return nil, shared.ErrForbidden
	}

	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	if _, err := product.AddVariant(input.SKU, input.Name, input.UnitPrice); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.logger.Error("Failed to save variant", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update product")
	}
	return product, nil
}

// RepriceVariant changes the unit price of a variant
func (s *ProductService) RepriceVariant(ctx context.Context, actor identity.Actor, productID uuid.UUID, variantSKU string, unitPrice decimal.Decimal) (*catalog.Product, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapEditProducts) {
		return nil, shared.ErrForbidden
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := product.Reprice(variantSKU, unitPrice); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.logger.Error("Failed to save reprice", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update product")
	}

	s.logger.Info("Variant repriced",
		zap.String("product_id", productID.String()),
		zap.String("variant_sku", variantSKU),
		zap.String("unit_price", unitPrice.String()),
	)
	return product, nil
}

// RetireVariant deactivates a variant without touching historical orders
func (s *ProductService) RetireVariant(ctx context.Context, actor identity.Actor, productID uuid.UUID, variantSKU string) error {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapEditProducts) {
		return shared.ErrForbidden
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	if err := product.RetireVariant(variantSKU); err != nil {
		return err
	}
	return s.productRepo.Save(ctx, product)
}

// SetArchived archives or restores a product
func (s *ProductService) SetArchived(ctx context.Context, actor identity.Actor, id uuid.UUID, archived bool) error {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapEditProducts) {
		return shared.ErrForbidden
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if archived {
		err = product.Archive()
	} else {
		err = product.Restore()
	}
	if err != nil {
		return err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.logger.Error("Failed to save product state change", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update product")
	}
	return nil
}
