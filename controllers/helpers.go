package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Thurzix/Product-Pit-Stop/common/errors"
	"github.com/Thurzix/Product-Pit-Stop/common/response"
)

// respondServiceError maps a service error onto the response envelope.
// stockStatus is the status used for insufficient stock, which differs
// between cart mutations (400) and checkout (409).
func respondServiceError(c *gin.Context, err error, stockStatus int) {
	var stockErr *apperrors.InsufficientStockError
	if errors.As(err, &stockErr) {
		response.FailWithData(c, stockStatus, "Insufficient stock", stockErr)
		return
	}

	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		response.FailDebug(c, appErr.Code, appErr.Message, appErr.Err)
		return
	}

	response.FailDebug(c, http.StatusInternalServerError, "Internal server error", err)
}

func parsePaginationParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
