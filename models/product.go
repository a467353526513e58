package models

// Product is a catalog entry. The cart and discount code treats products as
// read-only; catalog management owns their lifecycle.
type Product struct {
	ID          string  `json:"id" bson:"_id"`
	Name        string  `json:"name" bson:"name"`
	Price       float64 `json:"price" bson:"price"`
	ImageURL    string  `json:"imageUrl" bson:"image_url"`
	Description string  `json:"description" bson:"description"`
}
