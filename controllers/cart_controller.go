package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Thurzix/Product-Pit-Stop/common/response"
	"github.com/Thurzix/Product-Pit-Stop/middleware"
	"github.com/Thurzix/Product-Pit-Stop/services"
)

type CartController struct {
	cartService services.CartService
}

func NewCartController(cartService services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

type AddToCartRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  *int      `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart returns the current cart for the authenticated user
func (cc *CartController) GetCart(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	cart, err := cc.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, http.StatusBadRequest)
		return
	}

	response.Data(c, http.StatusOK, cart)
}

// AddToCart adds a product to the cart, merging with an existing line
func (cc *CartController) AddToCart(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "product_id is required")
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	if err := cc.cartService.AddToCart(c.Request.Context(), userID, req.ProductID, quantity); err != nil {
		respondServiceError(c, err, http.StatusBadRequest)
		return
	}

	response.Message(c, http.StatusCreated, "Item added to cart")
}

// UpdateLine sets a cart line's quantity; zero or below removes the line
func (cc *CartController) UpdateLine(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	lineID, err := uuid.Parse(c.Param("line_id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, "Cart item not found")
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "quantity is required")
		return
	}

	if err := cc.cartService.UpdateQuantity(c.Request.Context(), userID, lineID, *req.Quantity); err != nil {
		respondServiceError(c, err, http.StatusBadRequest)
		return
	}

	response.Message(c, http.StatusOK, "Quantity updated")
}

// RemoveLine deletes one cart line
func (cc *CartController) RemoveLine(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	lineID, err := uuid.Parse(c.Param("line_id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, "Cart item not found")
		return
	}

	if err := cc.cartService.RemoveLine(c.Request.Context(), userID, lineID); err != nil {
		respondServiceError(c, err, http.StatusBadRequest)
		return
	}

	response.Message(c, http.StatusOK, "Item removed from cart")
}

// ClearCart removes every line from the user's cart
func (cc *CartController) ClearCart(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := cc.cartService.ClearCart(c.Request.Context(), userID); err != nil {
		respondServiceError(c, err, http.StatusBadRequest)
		return
	}

	response.Message(c, http.StatusOK, "Cart cleared")
}
