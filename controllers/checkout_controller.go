package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Thurzix/Product-Pit-Stop/common/response"
	"github.com/Thurzix/Product-Pit-Stop/middleware"
	"github.com/Thurzix/Product-Pit-Stop/services"
)

type CheckoutController struct {
	checkoutService services.CheckoutService
}

func NewCheckoutController(checkoutService services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: checkoutService}
}

// Checkout turns the cart into orders. Insufficient stock surfaces as 409
// here, unlike the 400 on cart mutations: the client's view was valid when
// the cart was built but conflicts with the store now.
func (cc *CheckoutController) Checkout(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orderIDs, err := cc.checkoutService.Checkout(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, http.StatusConflict)
		return
	}

	response.Data(c, http.StatusCreated, gin.H{"order_ids": orderIDs})
}
