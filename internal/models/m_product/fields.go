package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID        = "product_id"
	Name             = "name"
	Category         = "category"
	MinOrderQuantity = "min_order_quantity"
	Status           = "status"
	CreatedAt        = "created_at"
	UpdatedAt        = "updated_at"
)
