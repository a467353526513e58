package controllers

import (
	"net/http"

	"github.com/AyatoShirayouki/Online-Shop/models"
	"github.com/AyatoShirayouki/Online-Shop/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartController handles HTTP requests for shopping cart operations.
type CartController struct {
	cartService services.CartService
}

// NewCartController creates a new CartController.
func NewCartController(cartService services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// GetCart handles GET /cart?userId=.
func (cc *CartController) GetCart(ctx *gin.Context) {
	userID := ctx.Query("userId")
	if _, err := uuid.Parse(userID); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required and must be a UUID"})
		return
	}

	view, svcErr := cc.cartService.GetCart(ctx.Request.Context(), userID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// AddToCart handles POST /cart/add.
func (cc *CartController) AddToCart(ctx *gin.Context) {
	var req models.AddToCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	svcErr := cc.cartService.AdjustItemQuantity(ctx.Request.Context(), req.UserID, req.ProductID, req.Quantity)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "cart updated"})
}

// RemoveFromCart handles POST /cart/remove.
func (cc *CartController) RemoveFromCart(ctx *gin.Context) {
	var req models.RemoveFromCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	svcErr := cc.cartService.RemoveItem(ctx.Request.Context(), req.UserID, req.ProductID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "item removed"})
}
