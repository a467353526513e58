package controllers

import (
	"net/http"

	"github.com/AyatoShirayouki/Online-Shop/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductController handles HTTP requests for catalog reads.
type ProductController struct {
	productService services.ProductService
}

// NewProductController creates a new ProductController.
func NewProductController(productService services.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// ListProducts handles GET /products.
func (pc *ProductController) ListProducts(ctx *gin.Context) {
	products, svcErr := pc.productService.ListProducts(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// GetProduct handles GET /products/:id.
func (pc *ProductController) GetProduct(ctx *gin.Context) {
	id := ctx.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Product ID must be a UUID"})
		return
	}

	product, svcErr := pc.productService.GetProduct(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, product)
}
