package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AyatoShirayouki/Online-Shop/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCartRepository implements CartRepository on the "carts" collection.
type MongoCartRepository struct {
	collection *mongo.Collection
}

func NewMongoCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{
		collection: db.Collection("carts"),
	}
}

func (r *MongoCartRepository) FindByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *MongoCartRepository) Create(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	cart.ID = uuid.NewString()
	cart.UpdatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *MongoCartRepository) Replace(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now().UTC()

	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": cart.ID}, cart)
	return err
}
