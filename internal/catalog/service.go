package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/imrishuroy/go-ecommerce-api/internal/mongodb"
	"github.com/imrishuroy/go-ecommerce-api/internal/validation"
)

// ErrNotFound is returned when no product matches the requested id.
var ErrNotFound = errors.New("product not found")

// Service exposes the product catalog operations.
type Service struct {
	store  mongodb.API
	idFunc func() string
}

// NewService creates a catalog Service over the given store.
func NewService(store mongodb.API) *Service {
	return &Service{
		store:  store,
		idFunc: uuid.NewString,
	}
}

// List returns all products, or only those in category when it is non-empty.
// The category match is exact and case-sensitive. Result order is whatever
// the store returns.
func (s *Service) List(ctx context.Context, category string) ([]Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	raws, err := s.store.Find(ctx, Collection, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]Product, 0, len(raws))
	for _, raw := range raws {
		p, err := decodeProduct(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Get returns the product with the given id, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	raw, err := s.store.FindOne(ctx, Collection, bson.M{"id": id})
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if raw == nil {
		return nil, ErrNotFound
	}
	p, err := decodeProduct(raw)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create assigns an id, applies the stock default, persists the product and
// returns it. Duplicate names are not checked.
func (s *Service) Create(ctx context.Context, req validation.CreateProductRequest) (*Product, error) {
	p := newProduct(req, s.idFunc())
	if err := s.store.InsertOne(ctx, Collection, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &p, nil
}

// Categories returns the distinct category labels across the catalog.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	cats, err := s.store.Distinct(ctx, Collection, "category")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}
