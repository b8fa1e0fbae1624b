package orders

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/imrishuroy/go-ecommerce-api/internal/validation"
)

// orderDocument is the stored shape. order_date is written as an RFC 3339
// string because the deployed collections predate native datetime use; on
// read it may be either a string or a real BSON datetime.
type orderDocument struct {
	ID              string      `bson:"id"`
	CustomerName    string      `bson:"customer_name"`
	CustomerEmail   string      `bson:"customer_email"`
	CustomerAddress string      `bson:"customer_address"`
	CustomerPhone   string      `bson:"customer_phone"`
	Items           []OrderItem `bson:"items"`
	Total           float64     `bson:"total"`
	OrderDate       interface{} `bson:"order_date"`
	Status          string      `bson:"status"`
}

// newOrder builds an Order from a checkout request. Identifier and creation
// time are assigned here, exactly once. The total is taken from the request
// as-is.
func newOrder(req validation.CreateOrderRequest, id string, now time.Time) Order {
	items := make([]OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return Order{
		ID:              id,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
		CustomerPhone:   req.CustomerPhone,
		Items:           items,
		Total:           req.Total,
		OrderDate:       now.UTC(),
		Status:          StatusPending,
	}
}

// encodeOrder serializes an Order for storage, normalizing the timestamp to
// an RFC 3339 string in UTC.
func encodeOrder(o Order) orderDocument {
	return orderDocument{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerAddress: o.CustomerAddress,
		CustomerPhone:   o.CustomerPhone,
		Items:           o.Items,
		Total:           o.Total,
		OrderDate:       o.OrderDate.UTC().Format(time.RFC3339Nano),
		Status:          o.Status,
	}
}

// decodeOrder maps a stored document back to an Order. Unknown fields are
// ignored. order_date stored as a string is parsed; a native datetime from
// mixed historical data passes through unchanged.
func decodeOrder(raw bson.Raw) (Order, error) {
	var doc orderDocument
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return Order{}, fmt.Errorf("unmarshal order: %w", err)
	}

	o := Order{
		ID:              doc.ID,
		CustomerName:    doc.CustomerName,
		CustomerEmail:   doc.CustomerEmail,
		CustomerAddress: doc.CustomerAddress,
		CustomerPhone:   doc.CustomerPhone,
		Items:           doc.Items,
		Total:           doc.Total,
		Status:          doc.Status,
	}

	switch v := doc.OrderDate.(type) {
	case string:
		ts, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return Order{}, fmt.Errorf("parse order_date %q: %w", v, err)
		}
		o.OrderDate = ts.UTC()
	case primitive.DateTime:
		o.OrderDate = v.Time().UTC()
	case time.Time:
		o.OrderDate = v.UTC()
	case nil:
		// pre-launch documents without a date keep the zero time
	default:
		return Order{}, fmt.Errorf("unexpected order_date type %T", v)
	}

	return o, nil
}
