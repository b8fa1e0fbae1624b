// Command seed wipes the product catalog and repopulates it with the sample
// products. One-shot operational script, not part of the serving path.
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/imrishuroy/go-ecommerce-api/internal/catalog"
	"github.com/imrishuroy/go-ecommerce-api/internal/config"
	"github.com/imrishuroy/go-ecommerce-api/internal/logging"
	"github.com/imrishuroy/go-ecommerce-api/internal/mongodb"
)

var sampleProducts = []catalog.Product{
	{
		Name:        "Wireless Headphones",
		Description: "Premium noise-canceling wireless headphones with 30-hour battery life. Crystal clear sound and comfortable design for all-day wear.",
		Price:       149.99,
		ImageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&h=500&fit=crop",
		Category:    "Electronics",
		Stock:       50,
	},
	{
		Name:        "Smart Watch",
		Description: "Track your fitness goals with this sleek smartwatch. Features heart rate monitoring, GPS, and water resistance.",
		Price:       299.99,
		ImageURL:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500&h=500&fit=crop",
		Category:    "Electronics",
		Stock:       35,
	},
	{
		Name:        "Leather Backpack",
		Description: "Stylish and durable leather backpack perfect for work or travel. Multiple compartments keep you organized.",
		Price:       89.99,
		ImageURL:    "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500&h=500&fit=crop",
		Category:    "Accessories",
		Stock:       25,
	},
	{
		Name:        "Running Shoes",
		Description: "Lightweight running shoes with advanced cushioning technology. Perfect for long-distance runs and daily training.",
		Price:       119.99,
		ImageURL:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500&h=500&fit=crop",
		Category:    "Footwear",
		Stock:       60,
	},
	{
		Name:        "Coffee Maker",
		Description: "Programmable coffee maker with thermal carafe. Brew the perfect cup every morning with customizable settings.",
		Price:       79.99,
		ImageURL:    "https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=500&h=500&fit=crop",
		Category:    "Home & Kitchen",
		Stock:       40,
	},
	{
		Name:        "Yoga Mat",
		Description: "Non-slip yoga mat with extra cushioning. Eco-friendly material perfect for yoga, pilates, and floor exercises.",
		Price:       34.99,
		ImageURL:    "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=500&h=500&fit=crop",
		Category:    "Sports & Fitness",
		Stock:       75,
	},
	{
		Name:        "Desk Lamp",
		Description: "Modern LED desk lamp with adjustable brightness and color temperature. USB charging port included.",
		Price:       45.99,
		ImageURL:    "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=500&h=500&fit=crop",
		Category:    "Home & Kitchen",
		Stock:       55,
	},
	{
		Name:        "Wireless Mouse",
		Description: "Ergonomic wireless mouse with precision tracking. Long battery life and comfortable grip for extended use.",
		Price:       29.99,
		ImageURL:    "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500&h=500&fit=crop",
		Category:    "Electronics",
		Stock:       100,
	},
	{
		Name:        "Sunglasses",
		Description: "Classic aviator sunglasses with UV protection. Stylish design suitable for any occasion.",
		Price:       59.99,
		ImageURL:    "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=500&h=500&fit=crop",
		Category:    "Accessories",
		Stock:       45,
	},
	{
		Name:        "Water Bottle",
		Description: "Insulated stainless steel water bottle keeps drinks cold for 24 hours or hot for 12 hours. Leak-proof design.",
		Price:       24.99,
		ImageURL:    "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=500&h=500&fit=crop",
		Category:    "Sports & Fitness",
		Stock:       80,
	},
}

func main() {
	log := logging.New()

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		log.Error("mongo connect failed", "err", err)
		os.Exit(1)
	}
	defer func() { _ = client.Close(ctx) }()

	store := client.Store()

	deleted, err := store.DeleteMany(ctx, catalog.Collection, bson.M{})
	if err != nil {
		log.Error("clear products failed", "err", err)
		os.Exit(1)
	}
	log.Info("cleared existing products", "deleted", deleted)

	docs := make([]interface{}, 0, len(sampleProducts))
	for _, p := range sampleProducts {
		p.ID = uuid.NewString()
		docs = append(docs, p)
	}
	if err := store.InsertMany(ctx, catalog.Collection, docs); err != nil {
		log.Error("insert sample products failed", "err", err)
		os.Exit(1)
	}

	categories, err := store.Distinct(ctx, catalog.Collection, "category")
	if err != nil {
		log.Error("list categories failed", "err", err)
		os.Exit(1)
	}
	log.Info("seeded products", "count", len(docs), "categories", categories)
}
