package models

import (
	"github.com/ivrelife/nexus/internal/domain/partner"
)

// RetailerModel is the persistence model for the Retailer aggregate
type RetailerModel struct {
	AggregateModel
	Code         string                 `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name         string                 `gorm:"type:varchar(200);not null"`
	ContactName  string                 `gorm:"type:varchar(100)"`
	ContactEmail string                 `gorm:"type:varchar(200)"`
	Phone        string                 `gorm:"type:varchar(50)"`
	Status       partner.RetailerStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (RetailerModel) TableName() string {
	return "retailers"
}

// ToDomain converts the persistence model to a domain Retailer
func (m *RetailerModel) ToDomain() *partner.Retailer {
	return &partner.Retailer{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Code:              m.Code,
		Name:              m.Name,
		ContactName:       m.ContactName,
		ContactEmail:      m.ContactEmail,
		Phone:             m.Phone,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Retailer
func (m *RetailerModel) FromDomain(r *partner.Retailer) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.Code = r.Code
	m.Name = r.Name
	m.ContactName = r.ContactName
	m.ContactEmail = r.ContactEmail
	m.Phone = r.Phone
	m.Status = r.Status
}

// RetailerModelFromDomain creates a new persistence model from a domain Retailer
func RetailerModelFromDomain(r *partner.Retailer) *RetailerModel {
	m := &RetailerModel{}
	m.FromDomain(r)
	return m
}

// LocationModel is the persistence model for the Location entity
type LocationModel struct {
	RetailerAggregateModel
	Name       string `gorm:"type:varchar(200);not null"`
	Address    string `gorm:"type:text"`
	City       string `gorm:"type:varchar(100)"`
	State      string `gorm:"type:varchar(100)"`
	PostalCode string `gorm:"type:varchar(20)"`
	Phone      string `gorm:"type:varchar(50)"`
	IsEnabled  bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (LocationModel) TableName() string {
	return "locations"
}

// ToDomain converts the persistence model to a domain Location
func (m *LocationModel) ToDomain() *partner.Location {
	return &partner.Location{
		RetailerAggregateRoot: m.ToDomainRetailerAggregateRoot(),
		Name:                  m.Name,
		Address:               m.Address,
		City:                  m.City,
		State:                 m.State,
		PostalCode:            m.PostalCode,
		Phone:                 m.Phone,
		IsEnabled:             m.IsEnabled,
	}
}

// FromDomain populates the persistence model from a domain Location
func (m *LocationModel) FromDomain(l *partner.Location) {
	m.FromDomainRetailerAggregateRoot(l.RetailerAggregateRoot)
	m.Name = l.Name
	m.Address = l.Address
	m.City = l.City
	m.State = l.State
	m.PostalCode = l.PostalCode
	m.Phone = l.Phone
	m.IsEnabled = l.IsEnabled
}

// LocationModelFromDomain creates a new persistence model from a domain Location
func LocationModelFromDomain(l *partner.Location) *LocationModel {
	m := &LocationModel{}
	m.FromDomain(l)
	return m
}

// CustomerModel is the persistence model for the Customer aggregate
type CustomerModel struct {
	RetailerAggregateModel
	Name       string `gorm:"type:varchar(200);not null"`
	Email      string `gorm:"type:varchar(200);index"`
	Phone      string `gorm:"type:varchar(50);index"`
	Address    string `gorm:"type:text"`
	City       string `gorm:"type:varchar(100)"`
	State      string `gorm:"type:varchar(100)"`
	PostalCode string `gorm:"type:varchar(20)"`
	Notes      string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		RetailerAggregateRoot: m.ToDomainRetailerAggregateRoot(),
		Name:                  m.Name,
		Email:                 m.Email,
		Phone:                 m.Phone,
		Address:               m.Address,
		City:                  m.City,
		State:                 m.State,
		PostalCode:            m.PostalCode,
		Notes:                 m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Customer
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainRetailerAggregateRoot(c.RetailerAggregateRoot)
	m.Name = c.Name
	m.Email = c.Email
	m.Phone = c.Phone
	m.Address = c.Address
	m.City = c.City
	m.State = c.State
	m.PostalCode = c.PostalCode
	m.Notes = c.Notes
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
