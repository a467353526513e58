package repository

import (
	"context"

	"github.com/AyatoShirayouki/Online-Shop/models"
)

// ProductRepository is the read-only catalog store. Lookups that find nothing
// return (nil, nil) rather than an error.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Product, error)
	FindAllSortedByName(ctx context.Context) ([]models.Product, error)
	Count(ctx context.Context) (int64, error)
}

// CartRepository persists one cart per user. FindByUserID returns (nil, nil)
// when the user has no cart yet; Create assigns the cart id; Replace
// overwrites the whole document keyed by cart id.
type CartRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.Cart, error)
	Create(ctx context.Context, cart *models.Cart) (*models.Cart, error)
	Replace(ctx context.Context, cart *models.Cart) error
}
