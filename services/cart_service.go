package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/AyatoShirayouki/Online-Shop/models"
	aws_pkg "github.com/AyatoShirayouki/Online-Shop/pkg/aws"
	"github.com/AyatoShirayouki/Online-Shop/repository"
	"go.uber.org/zap"
)

// CartService defines the cart business logic: quantity adjustment, item
// removal and the client-facing cart projection.
type CartService interface {
	AdjustItemQuantity(ctx context.Context, userID, productID string, quantity int) *ServiceError
	RemoveItem(ctx context.Context, userID, productID string) *ServiceError
	GetCart(ctx context.Context, userID string) (*models.CartView, *ServiceError)
}

// cartServiceImpl implements CartService.
type cartServiceImpl struct {
	carts       repository.CartRepository
	products    repository.ProductRepository
	discounts   *DiscountService
	snsClient   aws_pkg.SNSPublisher
	snsTopicArn string
	logger      *zap.Logger
}

// NewCartService creates a new CartService.
func NewCartService(
	carts repository.CartRepository,
	products repository.ProductRepository,
	discounts *DiscountService,
	snsClient aws_pkg.SNSPublisher,
	snsTopicArn string,
	logger *zap.Logger,
) CartService {
	return &cartServiceImpl{
		carts:       carts,
		products:    products,
		discounts:   discounts,
		snsClient:   snsClient,
		snsTopicArn: snsTopicArn,
		logger:      logger,
	}
}

// AdjustItemQuantity applies a signed quantity delta to the user's cart,
// creating the cart or the line item as needed and removing the line when its
// quantity drops to zero or below. The whole mutation is computed in memory
// and persisted with a single store write; every failure path leaves the
// store untouched.
//
// Concurrent calls for the same user are last-write-wins: the read-modify-
// write has no optimistic token, matching the store's replace semantics.
func (s *cartServiceImpl) AdjustItemQuantity(ctx context.Context, userID, productID string, quantity int) *ServiceError {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		s.logger.Error("Failed to look up product", zap.String("product_id", productID), zap.Error(err))
		return errInternal("Failed to look up product")
	}
	if product == nil {
		return errProductNotFound()
	}

	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.String("user_id", userID), zap.Error(err))
		return errInternal("Failed to load cart")
	}

	if cart == nil {
		if quantity < 0 {
			return errDecreaseWithoutCart()
		}

		cart = &models.Cart{
			UserID: userID,
			Items:  []models.CartItem{{ProductID: productID, Quantity: quantity}},
		}
		if _, err := s.carts.Create(ctx, cart); err != nil {
			s.logger.Error("Failed to create cart", zap.String("user_id", userID), zap.Error(err))
			return errInternal("Failed to save cart")
		}
	} else {
		if i := cart.FindItem(productID); i >= 0 {
			cart.Items[i].Quantity += quantity

			if cart.Items[i].Quantity <= 0 {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			}
		} else {
			if quantity < 0 {
				return errDecreaseWithoutItem()
			}
			cart.Items = append(cart.Items, models.CartItem{ProductID: productID, Quantity: quantity})
		}

		if err := s.carts.Replace(ctx, cart); err != nil {
			s.logger.Error("Failed to update cart", zap.String("user_id", userID), zap.Error(err))
			return errInternal("Failed to save cart")
		}
	}

	s.logger.Info("Cart updated",
		zap.String("user_id", userID),
		zap.String("product_id", productID),
		zap.Int("quantity_delta", quantity),
		zap.Int("items", len(cart.Items)),
	)
	s.publishCartUpdatedEvent(ctx, cart, productID, quantity)

	return nil
}

// RemoveItem deletes the line item for productID outright, regardless of its
// quantity. A missing cart or missing line item is a no-op.
func (s *cartServiceImpl) RemoveItem(ctx context.Context, userID, productID string) *ServiceError {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.String("user_id", userID), zap.Error(err))
		return errInternal("Failed to load cart")
	}
	if cart == nil {
		return nil
	}

	i := cart.FindItem(productID)
	if i < 0 {
		return nil
	}

	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	if err := s.carts.Replace(ctx, cart); err != nil {
		s.logger.Error("Failed to update cart", zap.String("user_id", userID), zap.Error(err))
		return errInternal("Failed to save cart")
	}

	s.logger.Info("Cart item removed",
		zap.String("user_id", userID),
		zap.String("product_id", productID),
	)
	s.publishCartUpdatedEvent(ctx, cart, productID, 0)

	return nil
}

// GetCart assembles the client-facing view of the user's cart. A user with
// no cart projects as an empty one; lines whose product vanished from the
// catalog are omitted from the view, while the discount is computed over the
// unfiltered cart and fails hard on a dangling reference.
func (s *cartServiceImpl) GetCart(ctx context.Context, userID string) (*models.CartView, *ServiceError) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.String("user_id", userID), zap.Error(err))
		return nil, errInternal("Failed to load cart")
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID}
	}

	view := &models.CartView{Items: []models.CartItemView{}}

	for _, item := range cart.Items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			s.logger.Error("Failed to look up product", zap.String("product_id", item.ProductID), zap.Error(err))
			return nil, errInternal("Failed to look up product")
		}
		if product == nil {
			continue
		}

		view.Items = append(view.Items, models.CartItemView{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    item.Quantity,
			TotalPrice:  product.Price * float64(item.Quantity),
		})
	}

	discount, discountDescription, err := s.discounts.CalculateDiscount(ctx, cart)
	if err != nil {
		s.logger.Error("Failed to calculate discount", zap.String("user_id", userID), zap.Error(err))
		return nil, errInternal("Failed to calculate discount")
	}
	view.Discount = discount
	view.DiscountDescription = discountDescription

	return view, nil
}

// publishCartUpdatedEvent publishes a cart_updated event to SNS. Publishing
// is best effort: failures are logged and never fail the mutation.
func (s *cartServiceImpl) publishCartUpdatedEvent(ctx context.Context, cart *models.Cart, productID string, quantityDelta int) {
	if s.snsClient == nil || s.snsTopicArn == "" {
		return
	}

	itemCount := 0
	for _, item := range cart.Items {
		itemCount += item.Quantity
	}

	event := models.CartUpdatedEvent{
		EventType:     "cart_updated",
		UserID:        cart.UserID,
		ProductID:     productID,
		QuantityDelta: quantityDelta,
		ItemCount:     itemCount,
		Timestamp:     time.Now(),
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("Failed to marshal cart_updated event", zap.Error(err))
		return
	}

	if err := s.snsClient.Publish(ctx, s.snsTopicArn, eventBytes); err != nil {
		s.logger.Error("Failed to publish cart_updated event", zap.Error(err))
		return
	}

	s.logger.Info("Published cart_updated event",
		zap.String("user_id", cart.UserID),
		zap.String("product_id", productID),
	)
}
