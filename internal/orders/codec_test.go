package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/imrishuroy/go-ecommerce-api/internal/validation"
)

func checkoutRequest() validation.CreateOrderRequest {
	return validation.CreateOrderRequest{
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		CustomerAddress: "1 Main St",
		CustomerPhone:   "555-0100",
		Items: []validation.OrderItemRequest{
			{ProductID: "p1", ProductName: "Widget", Quantity: 2, Price: 9.99},
		},
		Total: 19.98,
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 30, 0, 123456000, time.UTC)
	o := newOrder(checkoutRequest(), "order-1", now)

	raw, err := bson.Marshal(encodeOrder(o))
	require.NoError(t, err)

	// stored representation carries the timestamp as a string
	v, err := bson.Raw(raw).LookupErr("order_date")
	require.NoError(t, err)
	require.Equal(t, bson.TypeString, v.Type)

	decoded, err := decodeOrder(raw)
	require.NoError(t, err)
	require.True(t, decoded.OrderDate.Equal(o.OrderDate),
		"decoded %v != original %v", decoded.OrderDate, o.OrderDate)

	decoded.OrderDate = o.OrderDate
	require.Equal(t, o, decoded)
}

func TestDecode_PythonStyleOffset(t *testing.T) {
	// documents written by the previous backend use isoformat() with +00:00
	doc := bson.M{
		"id":         "order-2",
		"order_date": "2024-05-01T10:30:00.123456+00:00",
		"status":     StatusPending,
	}
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	o, err := decodeOrder(raw)
	require.NoError(t, err)
	want := time.Date(2024, 5, 1, 10, 30, 0, 123456000, time.UTC)
	require.True(t, o.OrderDate.Equal(want), "got %v", o.OrderDate)
}

func TestDecode_NativeDatetimePassesThrough(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	doc := bson.M{
		"id":         "order-3",
		"order_date": primitive.NewDateTimeFromTime(ts),
		"status":     StatusPending,
	}
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	o, err := decodeOrder(raw)
	require.NoError(t, err)
	require.True(t, o.OrderDate.Equal(ts), "got %v", o.OrderDate)
}

func TestDecode_UnparseableDate(t *testing.T) {
	doc := bson.M{
		"id":         "order-4",
		"order_date": "yesterday",
	}
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	_, err = decodeOrder(raw)
	require.Error(t, err)
}

func TestDecode_IgnoresUnknownFields(t *testing.T) {
	doc := bson.M{
		"id":           "order-5",
		"order_date":   "2024-05-01T10:30:00Z",
		"status":       StatusPending,
		"legacy_field": bson.M{"nested": true},
	}
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	o, err := decodeOrder(raw)
	require.NoError(t, err)
	require.Equal(t, "order-5", o.ID)
}

func TestNewOrder_Defaults(t *testing.T) {
	now := time.Now()
	req := checkoutRequest()
	req.Items = nil

	o := newOrder(req, "order-6", now)
	require.Equal(t, StatusPending, o.Status)
	require.Empty(t, o.Items)
	require.Equal(t, req.Total, o.Total)
	require.Equal(t, time.UTC, o.OrderDate.Location())
}
