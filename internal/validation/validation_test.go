package validation

import "testing"

func TestCreateProductRequest_Valid(t *testing.T) {
	v := New()

	stock := 10
	req := CreateProductRequest{
		Name:        "Widget",
		Description: "A widget",
		Price:       9.99,
		ImageURL:    "http://x/1.png",
		Category:    "Tools",
		Stock:       &stock,
	}
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}

	// stock may be omitted entirely
	req.Stock = nil
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid without stock, got error: %v", err)
	}
}

func TestCreateProductRequest_MissingFields(t *testing.T) {
	v := New()

	req := CreateProductRequest{
		// Name missing
		Description: "A widget",
		Price:       9.99,
		ImageURL:    "http://x/1.png",
		Category:    "Tools",
	}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for missing name, got nil")
	}
}

func TestCreateProductRequest_NegativePrice(t *testing.T) {
	v := New()

	req := CreateProductRequest{
		Name:        "Widget",
		Description: "A widget",
		Price:       -1,
		ImageURL:    "http://x/1.png",
		Category:    "Tools",
	}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for negative price, got nil")
	}
}

func TestCreateOrderRequest_Valid(t *testing.T) {
	v := New()

	req := CreateOrderRequest{
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		CustomerAddress: "1 Main St",
		CustomerPhone:   "555-0100",
		Items: []OrderItemRequest{
			{ProductID: "p1", ProductName: "Widget", Quantity: 2, Price: 9.99},
		},
		Total: 19.98,
	}
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}

func TestCreateOrderRequest_EmptyItemsAccepted(t *testing.T) {
	v := New()

	req := CreateOrderRequest{
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		CustomerAddress: "1 Main St",
		CustomerPhone:   "555-0100",
		Items:           []OrderItemRequest{},
		Total:           0,
	}
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected empty items to pass, got error: %v", err)
	}
}

func TestCreateOrderRequest_MissingItemsRejected(t *testing.T) {
	v := New()

	// items key absent entirely: a nil slice fails required, unlike []
	req := CreateOrderRequest{
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		CustomerAddress: "1 Main St",
		CustomerPhone:   "555-0100",
		Items:           nil,
		Total:           0,
	}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for missing items, got nil")
	}
}

func TestCreateOrderRequest_TotalNotRecomputed(t *testing.T) {
	v := New()

	// total deliberately does not match quantity*price; still valid
	req := CreateOrderRequest{
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		CustomerAddress: "1 Main St",
		CustomerPhone:   "555-0100",
		Items: []OrderItemRequest{
			{ProductID: "p1", ProductName: "Widget", Quantity: 2, Price: 9.99},
		},
		Total: 5.00,
	}
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected mismatched total to pass, got error: %v", err)
	}
}

func TestCreateOrderRequest_MissingCustomer(t *testing.T) {
	v := New()

	req := CreateOrderRequest{
		CustomerEmail:   "jane@example.com",
		CustomerAddress: "1 Main St",
		CustomerPhone:   "555-0100",
	}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for missing customer name, got nil")
	}
}
