package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router builds the gin engine with every route registered.
func (s *HTTPServer) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.accessLog, cors)

	r.GET("/", s.root)
	r.GET("/ping", s.ping)
	r.POST("/login", s.login)

	api := r.Group("/api")
	{
		api.POST("/registration", s.register)

		api.GET("/related_products/:id", s.locate)
		api.GET("/product/:id", s.locateWithRelated)
		api.GET("/productById/:id", s.locateRecentlyAdded)
		api.GET("/products", s.resolve)

		for route, partition := range s.listRoutes {
			api.GET("/"+route, s.listPartition(partition))
		}

		cart := api.Group("", s.requireToken)
		cart.POST("/cart/:id", s.addToCart)
		cart.GET("/cartItems", s.cartItems)
		cart.PATCH("/cartUpdate/:id", s.updateCartItem)
		cart.DELETE("/cartRemove/:id", s.removeCartItem)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return r
}
