package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ivrelife/nexus/internal/domain/catalog"
)

// ProductModel is the persistence model for the Product aggregate
type ProductModel struct {
	AggregateModel
	SKU         string                `gorm:"type:varchar(100);not null;uniqueIndex"`
	Name        string                `gorm:"type:varchar(200);not null"`
	Category    string                `gorm:"type:varchar(100);index"`
	Description string                `gorm:"type:text"`
	Status      catalog.ProductStatus `gorm:"type:varchar(20);not null;default:'active'"`
	Variants    []VariantModel        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	variants := make([]catalog.Variant, len(m.Variants))
	for i := range m.Variants {
		variants[i] = m.Variants[i].ToDomainVariant()
	}
	return &catalog.Product{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		SKU:               m.SKU,
		Name:              m.Name,
		Category:          m.Category,
		Description:       m.Description,
		Status:            m.Status,
		Variants:          variants,
	}
}

// FromDomain populates the persistence model from a domain Product
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.SKU = p.SKU
	m.Name = p.Name
	m.Category = p.Category
	m.Description = p.Description
	m.Status = p.Status
	m.Variants = make([]VariantModel, len(p.Variants))
	for i := range p.Variants {
		m.Variants[i].FromDomainVariant(p.Variants[i], p.ID)
	}
}

// ProductModelFromDomain creates a new persistence model from a domain Product
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}

// VariantModel is the persistence model for a product variant
type VariantModel struct {
	BaseModel
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	SKU       string          `gorm:"type:varchar(100);not null;index"`
	Name      string          `gorm:"type:varchar(200);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsActive  bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (VariantModel) TableName() string {
	return "product_variants"
}

// ToDomainVariant converts the persistence model to a domain Variant
func (m *VariantModel) ToDomainVariant() catalog.Variant {
	return catalog.Variant{
		BaseEntity: m.BaseModel.ToDomain(),
		SKU:        m.SKU,
		Name:       m.Name,
		UnitPrice:  m.UnitPrice,
		IsActive:   m.IsActive,
	}
}

// FromDomainVariant populates the persistence model from a domain Variant
func (m *VariantModel) FromDomainVariant(v catalog.Variant, productID uuid.UUID) {
	m.FromDomainBaseEntity(v.BaseEntity)
	m.ProductID = productID
	m.SKU = v.SKU
	m.Name = v.Name
	m.UnitPrice = v.UnitPrice
	m.IsActive = v.IsActive
}
