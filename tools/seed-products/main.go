// Seeds the products collection with a sample catalog when it is empty.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/AyatoShirayouki/Online-Shop/config"
	"github.com/AyatoShirayouki/Online-Shop/database"
	"github.com/AyatoShirayouki/Online-Shop/models"
	"github.com/AyatoShirayouki/Online-Shop/repository"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	mongoClient, db, err := database.ConnectMongo(cfg.MongoURL, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}
	defer database.CloseMongo(mongoClient)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := repository.NewMongoProductRepository(db)
	count, err := repo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count products: %v", err)
	}
	if count > 0 {
		log.Printf("Products collection already has %d documents, skipping seed", count)
		return
	}

	products := []interface{}{
		product("Mechanical Keyboard", 129.99, "Tenkeyless board with hot-swappable switches."),
		product("Wireless Mouse", 49.90, "Low-latency mouse with a 90-day battery."),
		product("27\" Monitor", 329.00, "QHD IPS panel, 144 Hz."),
		product("USB-C Dock", 89.50, "Dual display output, 100 W passthrough."),
		product("Noise-Cancelling Headphones", 249.00, "Over-ear, 30-hour battery."),
		product("Laptop Stand", 39.99, "Aluminium, adjustable height."),
		product("Webcam", 79.00, "1080p60 with privacy shutter."),
		product("Desk Mat", 19.99, "900x400 mm, stitched edges."),
	}

	result, err := db.Collection("products").InsertMany(ctx, products)
	if err != nil {
		log.Fatalf("Failed to insert products: %v", err)
	}
	log.Printf("Seeded %d products", len(result.InsertedIDs))
}

func product(name string, price float64, description string) models.Product {
	return models.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Price:       price,
		ImageURL:    "/images/placeholder.png",
		Description: description,
	}
}
