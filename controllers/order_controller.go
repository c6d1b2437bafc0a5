package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/ecommerce-api/apperrors"
	"github.com/kendall-kelly/ecommerce-api/middleware"
	"github.com/kendall-kelly/ecommerce-api/models"
	"github.com/kendall-kelly/ecommerce-api/services"
	"github.com/kendall-kelly/ecommerce-api/utils"
	"go.uber.org/zap"
)

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	UserID    *uint  `json:"user_id" binding:"required,gt=0"`
	OrderDate string `json:"order_date" binding:"required"`
}

// UpdateOrderRequest represents the request body for updating an order
type UpdateOrderRequest struct {
	UserID    *uint   `json:"user_id" binding:"omitempty,gt=0"`
	OrderDate *string `json:"order_date" binding:"omitempty"`
}

// OrderController serves the /orders endpoints, including the products
// linked to each order
type OrderController struct {
	orders *services.OrderService
	log    *zap.Logger
}

// NewOrderController creates a new OrderController
func NewOrderController(orders *services.OrderService, log *zap.Logger) *OrderController {
	return &OrderController{orders: orders, log: log}
}

func parseOrderDate(value string) (time.Time, error) {
	t, err := utils.ParseOrderDate(value)
	if err != nil {
		return time.Time{}, apperrors.Validation(map[string]string{"order_date": "Not a valid datetime."})
	}
	return t, nil
}

// CreateOrder handles POST /orders - creates an order for an existing user
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, oc.log, err)
		return
	}

	orderDate, err := parseOrderDate(req.OrderDate)
	if err != nil {
		respondError(c, oc.log, err)
		return
	}

	order := models.Order{UserID: *req.UserID, OrderDate: orderDate}

	err = oc.orders.Create(c.Request.Context(), &order)
	middleware.RecordStoreOperation("order", "create", err == nil)
	if err != nil {
		respondError(c, oc.log, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetOrders handles GET /orders
func (oc *OrderController) GetOrders(c *gin.Context) {
	orders, err := oc.orders.List(c.Request.Context())
	if err != nil {
		respondError(c, oc.log, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /orders/:order_id
func (oc *OrderController) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	order, err := oc.orders.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, oc.log, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrder handles PUT /orders/:order_id
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	var req UpdateOrderRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, oc.log, err)
		return
	}

	update := services.OrderUpdate{UserID: req.UserID}
	if req.OrderDate != nil {
		orderDate, err := parseOrderDate(*req.OrderDate)
		if err != nil {
			respondError(c, oc.log, err)
			return
		}
		update.OrderDate = &orderDate
	}

	order, err := oc.orders.Update(c.Request.Context(), id, update)
	middleware.RecordStoreOperation("order", "update", err == nil)
	if err != nil {
		respondError(c, oc.log, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder handles DELETE /orders/:order_id - removes the order and its product links
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	err := oc.orders.Delete(c.Request.Context(), id)
	middleware.RecordStoreOperation("order", "delete", err == nil)
	if err != nil {
		respondError(c, oc.log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Order deleted"})
}

// GetOrdersForUser handles GET /orders/user/:user_id
func (oc *OrderController) GetOrdersForUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	orders, err := oc.orders.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, oc.log, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// AddProductToOrder handles PUT /orders/:order_id/add_product/:product_id
func (oc *OrderController) AddProductToOrder(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	productID, ok := pathID(c, "product_id")
	if !ok {
		return
	}

	err := oc.orders.AddProduct(c.Request.Context(), orderID, productID)
	middleware.RecordStoreOperation("order_product", "create", err == nil)
	if err != nil {
		respondError(c, oc.log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Product added to the order"})
}

// RemoveProductFromOrder handles DELETE /orders/:order_id/remove_product/:product_id
func (oc *OrderController) RemoveProductFromOrder(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	productID, ok := pathID(c, "product_id")
	if !ok {
		return
	}

	err := oc.orders.RemoveProduct(c.Request.Context(), orderID, productID)
	middleware.RecordStoreOperation("order_product", "delete", err == nil)
	if err != nil {
		respondError(c, oc.log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Product removed from the order"})
}

// GetOrderProducts handles GET /orders/:order_id/products
func (oc *OrderController) GetOrderProducts(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	products, err := oc.orders.Products(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, oc.log, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetOrderTotalPrice handles GET /orders/:order_id/total_price
func (oc *OrderController) GetOrderTotalPrice(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	total, err := oc.orders.TotalPrice(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, oc.log, err)
		return
	}
	c.JSON(http.StatusOK, total)
}
