package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Thurzix/Product-Pit-Stop/common/response"
	"github.com/Thurzix/Product-Pit-Stop/services"
)

type ProductController struct {
	productService services.ProductService
}

func NewProductController(productService services.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// ListProducts returns a page of the catalog, optionally filtered by
// category or a title search
func (pc *ProductController) ListProducts(c *gin.Context) {
	page, limit := parsePaginationParams(c)
	category := c.Query("category")
	search := c.Query("search")

	result, err := pc.productService.List(c.Request.Context(), page, limit, category, search)
	if err != nil {
		respondServiceError(c, err, http.StatusBadRequest)
		return
	}

	response.Data(c, http.StatusOK, result)
}

// GetProduct returns one product with its seller display fields
func (pc *ProductController) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, "Product not found")
		return
	}

	product, err := pc.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, http.StatusBadRequest)
		return
	}

	response.Data(c, http.StatusOK, gin.H{"product": product})
}
