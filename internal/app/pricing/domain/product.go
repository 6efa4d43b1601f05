package domain

import "time"

// ProductStatus represents the lifecycle status of a product.
type ProductStatus string

const (
	StatusActive   ProductStatus = "active"
	StatusArchived ProductStatus = "archived"
)

// Product is the catalog snapshot the pricing engine computes against.
// It is created and updated by catalog management, which is outside this
// service; the engine treats it as immutable for the duration of a computation.
type Product struct {
	id               string
	name             string
	category         string
	minOrderQuantity int64
	status           ProductStatus
	createdAt        time.Time
	updatedAt        time.Time
}

// NewProduct creates a new Product snapshot with validation.
func NewProduct(id, name, category string, minOrderQuantity int64, now time.Time) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if category == "" {
		return nil, ErrInvalidCategory
	}

	if minOrderQuantity < 1 {
		return nil, ErrInvalidMinOrder
	}

	return &Product{
		id:               id,
		name:             name,
		category:         category,
		minOrderQuantity: minOrderQuantity,
		status:           StatusActive,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructProduct reconstitutes a Product from the database.
func ReconstructProduct(
	id, name, category string,
	minOrderQuantity int64,
	status ProductStatus,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:               id,
		name:             name,
		category:         category,
		minOrderQuantity: minOrderQuantity,
		status:           status,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Getters
func (p *Product) ID() string              { return p.id }
func (p *Product) Name() string            { return p.name }
func (p *Product) Category() string        { return p.category }
func (p *Product) MinOrderQuantity() int64 { return p.minOrderQuantity }
func (p *Product) Status() ProductStatus   { return p.status }
func (p *Product) CreatedAt() time.Time    { return p.createdAt }
func (p *Product) UpdatedAt() time.Time    { return p.updatedAt }

// IsArchived returns true if the product is archived.
func (p *Product) IsArchived() bool {
	return p.status == StatusArchived
}
