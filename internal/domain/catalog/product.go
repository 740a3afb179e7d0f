package catalog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ivrelife/nexus/internal/domain/shared"
)

// ProductStatus represents the catalog visibility of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusArchived ProductStatus = "archived"
)

// Product is a sellable catalog item maintained by backoffice staff.
// Variants carry the actual prices that order lines reference.
type Product struct {
	shared.BaseAggregateRoot
	SKU         string
	Name        string
	Category    string
	Description string
	Status      ProductStatus
	Variants    []Variant
}

// Variant is a purchasable configuration of a product, for example a
// size or color. Order line items reference variants by ID.
type Variant struct {
	shared.BaseEntity
	SKU       string
	Name      string
	UnitPrice decimal.Decimal
	IsActive  bool
}

// NewProduct creates a new active product with no variants
func NewProduct(sku, name, category string) (*Product, error) {
	sku = strings.ToUpper(strings.TrimSpace(sku))
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "Product SKU cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SKU:               sku,
		Name:              strings.TrimSpace(name),
		Category:          strings.TrimSpace(category),
		Status:            ProductStatusActive,
	}, nil
}

// AddVariant appends a new active variant. The variant SKU must be
// unique within the product and the price non-negative.
func (p *Product) AddVariant(sku, name string, unitPrice decimal.Decimal) (*Variant, error) {
	sku = strings.ToUpper(strings.TrimSpace(sku))
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "Variant SKU cannot be empty")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Variant price cannot be negative")
	}
	for _, v := range p.Variants {
		if v.SKU == sku {
			return nil, shared.NewDomainError("DUPLICATE_SKU", "Variant SKU already exists on this product")
		}
	}

	variant := Variant{
		BaseEntity: shared.NewBaseEntity(),
		SKU:        sku,
		Name:       strings.TrimSpace(name),
		UnitPrice:  unitPrice,
		IsActive:   true,
	}
	p.Variants = append(p.Variants, variant)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return &p.Variants[len(p.Variants)-1], nil
}

// Reprice updates the unit price of a variant
func (p *Product) Reprice(variantSKU string, unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Variant price cannot be negative")
	}
	variantSKU = strings.ToUpper(strings.TrimSpace(variantSKU))
	for i := range p.Variants {
		if p.Variants[i].SKU == variantSKU {
			p.Variants[i].UnitPrice = unitPrice
			p.UpdatedAt = time.Now()
			p.IncrementVersion()
			return nil
		}
	}
	return shared.ErrNotFound
}

// RetireVariant deactivates a variant without removing historical orders
// that reference it
func (p *Product) RetireVariant(variantSKU string) error {
	variantSKU = strings.ToUpper(strings.TrimSpace(variantSKU))
	for i := range p.Variants {
		if p.Variants[i].SKU == variantSKU {
			if !p.Variants[i].IsActive {
				return shared.NewDomainError("INVALID_STATE", "Variant is already retired")
			}
			p.Variants[i].IsActive = false
			p.UpdatedAt = time.Now()
			p.IncrementVersion()
			return nil
		}
	}
	return shared.ErrNotFound
}

// ActiveVariants returns the variants currently purchasable
func (p *Product) ActiveVariants() []Variant {
	var active []Variant
	for _, v := range p.Variants {
		if v.IsActive {
			active = append(active, v)
		}
	}
	return active
}

// Archive removes the product from the catalog
func (p *Product) Archive() error {
	if p.Status == ProductStatusArchived {
		return shared.NewDomainError("INVALID_STATE", "Product is already archived")
	}
	p.Status = ProductStatusArchived
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Restore returns an archived product to the catalog
func (p *Product) Restore() error {
	if p.Status == ProductStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Product is already active")
	}
	p.Status = ProductStatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}
