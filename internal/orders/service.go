package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/imrishuroy/go-ecommerce-api/internal/mongodb"
	"github.com/imrishuroy/go-ecommerce-api/internal/validation"
)

// ErrNotFound is returned when no order matches the requested id.
var ErrNotFound = errors.New("order not found")

// Service exposes checkout and order lookup. Orders are write-once: created
// here, never updated.
type Service struct {
	store   mongodb.API
	idFunc  func() string
	nowFunc func() time.Time
}

// NewService creates an orders Service over the given store.
func NewService(store mongodb.API) *Service {
	return &Service{
		store:   store,
		idFunc:  uuid.NewString,
		nowFunc: time.Now,
	}
}

// Create assigns an id and the current UTC time, persists the order with the
// timestamp encoded as a string, and returns the order with the structured
// timestamp intact.
func (s *Service) Create(ctx context.Context, req validation.CreateOrderRequest) (*Order, error) {
	o := newOrder(req, s.idFunc(), s.nowFunc())
	if err := s.store.InsertOne(ctx, Collection, encodeOrder(o)); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &o, nil
}

// Get returns the order with the given id, or ErrNotFound. The stored
// timestamp string is decoded back into a time.Time.
func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	raw, err := s.store.FindOne(ctx, Collection, bson.M{"id": id})
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if raw == nil {
		return nil, ErrNotFound
	}
	o, err := decodeOrder(raw)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
