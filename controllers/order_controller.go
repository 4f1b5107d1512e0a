package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Thurzix/Product-Pit-Stop/common/response"
	"github.com/Thurzix/Product-Pit-Stop/middleware"
	"github.com/Thurzix/Product-Pit-Stop/services"
)

type OrderController struct {
	orderService services.OrderService
}

func NewOrderController(orderService services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// GetOrders returns paginated orders for the authenticated user
func (oc *OrderController) GetOrders(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	page, limit := parsePaginationParams(c)

	result, err := oc.orderService.GetUserOrders(c.Request.Context(), userID, page, limit)
	if err != nil {
		respondServiceError(c, err, http.StatusBadRequest)
		return
	}

	response.Data(c, http.StatusOK, result)
}
