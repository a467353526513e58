package routes

import (
	"net/http"

	"github.com/AyatoShirayouki/Online-Shop/controllers"
	"github.com/gin-gonic/gin"
)

// Register sets up all API routes.
func Register(r *gin.Engine, pc *controllers.ProductController, cc *controllers.CartController) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	products := r.Group("/products")
	{
		products.GET("", pc.ListProducts)
		products.GET("/:id", pc.GetProduct)
	}

	cart := r.Group("/cart")
	{
		cart.GET("", cc.GetCart)
		cart.POST("/add", cc.AddToCart)
		cart.POST("/remove", cc.RemoveFromCart)
	}
}
