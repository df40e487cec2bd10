package httpserver

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/electro/internal/common"
	"github.com/dmitrijs2005/electro/internal/server/services"
	"github.com/gin-gonic/gin"
)

type addToCartRequest struct {
	Price    *float64 `json:"price" binding:"required,min=0"`
	Quantity int      `json:"quantity" binding:"required,min=1"`
}

type updateCartRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// addToCart takes the product snapshot from the body; price and quantity are
// validated by binding, the rest of the body is stored as is.
func (s *HTTPServer) addToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		s.abortWithError(c, fmt.Errorf("%w: %v", common.ErrInvalidInput, err))
		return
	}
	var body map[string]any
	if err := c.ShouldBindBodyWithJSON(&body); err != nil {
		s.abortWithError(c, fmt.Errorf("%w: %v", common.ErrInvalidInput, err))
		return
	}

	id, err := s.svc.Carts.Add(c.Request.Context(), identity(c), services.AddItemInput{
		ProductID: c.Param("id"),
		Snapshot:  body,
		Price:     *req.Price,
		Quantity:  req.Quantity,
	})
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Product added to cart successfully",
		"insertedId": id,
	})
}

func (s *HTTPServer) cartItems(c *gin.Context) {
	items, err := s.svc.Carts.List(c.Request.Context(), identity(c))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *HTTPServer) updateCartItem(c *gin.Context) {
	var req updateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, fmt.Errorf("%w: %v", common.ErrInvalidInput, err))
		return
	}
	item, err := s.svc.Carts.UpdateQuantity(c.Request.Context(), c.Param("id"), req.Quantity)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"item":    item,
	})
}

func (s *HTTPServer) removeCartItem(c *gin.Context) {
	if err := s.svc.Carts.Remove(c.Request.Context(), c.Param("id")); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
