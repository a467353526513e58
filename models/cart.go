package models

import "time"

// CartItem is one line of a cart. A persisted item always has Quantity >= 1;
// items that would drop to zero or below are removed instead.
type CartItem struct {
	ProductID string `json:"product_id" bson:"product_id"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

// Cart holds the pending purchases of a single user. There is at most one
// cart per user id.
type Cart struct {
	ID        string     `json:"id" bson:"_id"`
	UserID    string     `json:"user_id" bson:"user_id"`
	Items     []CartItem `json:"items" bson:"items"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

// FindItem returns the index of the line item for productID, or -1.
func (c *Cart) FindItem(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// CartItemView is a cart line enriched with catalog data for display.
type CartItemView struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"totalPrice"`
}

// CartView is the client-facing projection of a cart. It is assembled per
// request and never persisted.
type CartView struct {
	Items               []CartItemView `json:"items"`
	Discount            float64        `json:"discount"`
	DiscountDescription string         `json:"discountDescription"`
}

// AddToCartRequest adjusts a line item's quantity by a signed delta.
// `required` also rejects a zero quantity.
type AddToCartRequest struct {
	UserID    string `json:"userId" binding:"required,uuid"`
	ProductID string `json:"productId" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// RemoveFromCartRequest deletes a line item outright.
type RemoveFromCartRequest struct {
	UserID    string `json:"userId" binding:"required,uuid"`
	ProductID string `json:"productId" binding:"required,uuid"`
}

// CartUpdatedEvent is published to SNS after a successful cart mutation.
type CartUpdatedEvent struct {
	EventType     string    `json:"event_type"`
	UserID        string    `json:"user_id"`
	ProductID     string    `json:"product_id"`
	QuantityDelta int       `json:"quantity_delta"`
	ItemCount     int       `json:"item_count"`
	Timestamp     time.Time `json:"timestamp"`
}
