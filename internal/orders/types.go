package orders

import "time"

// Collection is the document collection orders live in.
const Collection = "orders"

// StatusPending is the status every order is created with. No operation in
// this service changes it afterwards.
const StatusPending = "pending"

// OrderItem is a value embedded in its owning order: a snapshot of the
// product at order time. It is never reconciled against the catalog.
type OrderItem struct {
	ProductID   string  `json:"product_id" bson:"product_id"`
	ProductName string  `json:"product_name" bson:"product_name"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	Price       float64 `json:"price" bson:"price"`
}

// Order is the wire shape returned to callers. The stored document encodes
// OrderDate as a string; see codec.go.
type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerAddress string      `json:"customer_address"`
	CustomerPhone   string      `json:"customer_phone"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	OrderDate       time.Time   `json:"order_date"`
	Status          string      `json:"status"`
}
