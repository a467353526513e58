package services

import (
	"context"
	"fmt"

	"github.com/AyatoShirayouki/Online-Shop/models"
	"github.com/AyatoShirayouki/Online-Shop/repository"
)

const (
	bundleMinItems    = 5
	thresholdTotal    = 1000
	thresholdDiscount = 100
)

// DiscountService computes the single best promotional discount for a cart's
// current contents against live catalog prices.
type DiscountService struct {
	products repository.ProductRepository
}

func NewDiscountService(products repository.ProductRepository) *DiscountService {
	return &DiscountService{products: products}
}

// CalculateDiscount evaluates the discount rules in a fixed order and keeps
// the candidate with the strictly largest amount, so the first rule wins
// ties. An empty cart yields (0, "").
//
// Products are fetched in one batched lookup. Every line item must resolve
// in the catalog: a dangling product reference is an error, never a silent
// zero price.
func (s *DiscountService) CalculateDiscount(ctx context.Context, cart *models.Cart) (float64, string, error) {
	var discount float64
	var discountDescription string

	productIDs := make([]string, 0, len(cart.Items))
	for _, item := range cart.Items {
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := s.products.FindByIDs(ctx, productIDs)
	if err != nil {
		return 0, "", fmt.Errorf("failed to fetch cart products: %w", err)
	}

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var totalPrice float64
	var itemCount int
	for _, item := range cart.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return 0, "", fmt.Errorf("product %s in cart %s is missing from the catalog", item.ProductID, cart.ID)
		}
		totalPrice += float64(item.Quantity) * product.Price
		itemCount += item.Quantity
	}

	var cheapest *models.Product
	for i := range products {
		if cheapest == nil || products[i].Price < cheapest.Price {
			cheapest = &products[i]
		}
	}

	if itemCount >= bundleMinItems && cheapest != nil {
		freeItemDiscount := cheapest.Price
		if freeItemDiscount > discount {
			discount = freeItemDiscount
			discountDescription = fmt.Sprintf("Buy 5, get the cheapest item free (%s)", cheapest.Name)
		}
	}

	if totalPrice > thresholdTotal {
		priceDiscount := float64(thresholdDiscount)
		if priceDiscount > discount {
			discount = priceDiscount
			discountDescription = "Spend over $1000, get $100 off"
		}
	}

	return discount, discountDescription, nil
}
