package validation

// OrderItemRequest is a single line item inside a checkout request. The name
// and price are a snapshot taken by the caller, not re-fetched server-side.
type OrderItemRequest struct {
	ProductID   string  `json:"product_id" validate:"required"`
	ProductName string  `json:"product_name" validate:"required"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// CreateProductRequest is the payload for POST /api/products.
// Stock is optional; absent means the catalog default of 100.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	ImageURL    string  `json:"image_url" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Stock       *int    `json:"stock,omitempty" validate:"omitempty,gte=0"`
}

// CreateOrderRequest is the payload for POST /api/orders. Total is stored as
// sent; the server does not recompute it from the items. The items key must
// be present, but an empty list is accepted (required rejects only a nil
// slice, not an empty one).
type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name" validate:"required"`
	CustomerEmail   string             `json:"customer_email" validate:"required"`
	CustomerAddress string             `json:"customer_address" validate:"required"`
	CustomerPhone   string             `json:"customer_phone" validate:"required"`
	Items           []OrderItemRequest `json:"items" validate:"required,dive"`
	Total           float64            `json:"total" validate:"gte=0"`
}
