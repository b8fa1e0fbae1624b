package catalog

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/imrishuroy/go-ecommerce-api/internal/validation"
)

// newProduct builds the stored Product from a create request. The identifier
// is assigned here, exactly once; callers never supply one.
func newProduct(req validation.CreateProductRequest, id string) Product {
	stock := DefaultStock
	if req.Stock != nil {
		stock = *req.Stock
	}
	return Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Stock:       stock,
	}
}

// decodeProduct maps a stored document back to a Product. Fields the struct
// does not know about are ignored, so schema drift in old documents cannot
// break reads.
func decodeProduct(raw bson.Raw) (Product, error) {
	var p Product
	if err := bson.Unmarshal(raw, &p); err != nil {
		return Product{}, fmt.Errorf("unmarshal product: %w", err)
	}
	return p, nil
}
