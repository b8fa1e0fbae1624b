package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client owns the driver connection and the database handle. Callers are
// expected to Close it on shutdown.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the server, verifies it is reachable and binds to dbName.
func Connect(ctx context.Context, uri, dbName string) (*Client, error) {
	cl, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := cl.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = cl.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Client{client: cl, db: cl.Database(dbName)}, nil
}

// Store returns the document store bound to this client's database.
func (c *Client) Store() *Store {
	return NewStore(c.db)
}

// Close releases the underlying connection pool.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
