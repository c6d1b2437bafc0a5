package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/ecommerce-api/middleware"
	"github.com/kendall-kelly/ecommerce-api/models"
	"github.com/kendall-kelly/ecommerce-api/services"
	"go.uber.org/zap"
)

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name  string   `json:"name" binding:"required,max=80"`
	Price *float64 `json:"price" binding:"required,gte=0"` // pointer so a price of 0 counts as present
}

// UpdateProductRequest represents the request body for updating a product
type UpdateProductRequest struct {
	Name  *string  `json:"name" binding:"omitempty,min=1,max=80"`
	Price *float64 `json:"price" binding:"omitempty,gte=0"`
}

// ProductController serves the /products endpoints
type ProductController struct {
	products *services.ProductService
	log      *zap.Logger
}

// NewProductController creates a new ProductController
func NewProductController(products *services.ProductService, log *zap.Logger) *ProductController {
	return &ProductController{products: products, log: log}
}

// CreateProduct handles POST /products
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, pc.log, err)
		return
	}

	product := models.Product{Name: req.Name, Price: *req.Price}

	err := pc.products.Create(c.Request.Context(), &product)
	middleware.RecordStoreOperation("product", "create", err == nil)
	if err != nil {
		respondError(c, pc.log, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// GetProducts handles GET /products
func (pc *ProductController) GetProducts(c *gin.Context) {
	products, err := pc.products.List(c.Request.Context())
	if err != nil {
		respondError(c, pc.log, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /products/:id
func (pc *ProductController) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := pc.products.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, pc.log, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateProduct handles PUT /products/:id
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, pc.log, err)
		return
	}

	product, err := pc.products.Update(c.Request.Context(), id, services.ProductUpdate{
		Name:  req.Name,
		Price: req.Price,
	})
	middleware.RecordStoreOperation("product", "update", err == nil)
	if err != nil {
		respondError(c, pc.log, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/:id
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	err := pc.products.Delete(c.Request.Context(), id)
	middleware.RecordStoreOperation("product", "delete", err == nil)
	if err != nil {
		respondError(c, pc.log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Product deleted"})
}
