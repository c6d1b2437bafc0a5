package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/ecommerce-api/middleware"
	"github.com/kendall-kelly/ecommerce-api/models"
	"github.com/kendall-kelly/ecommerce-api/services"
	"go.uber.org/zap"
)

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Name    string `json:"name" binding:"required,max=80"`
	Address string `json:"address" binding:"required,max=200"`
	Email   string `json:"email" binding:"required,email,max=120"`
}

// UpdateUserRequest represents the request body for updating a user.
// Absent fields keep their stored value.
type UpdateUserRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=80"`
	Address *string `json:"address" binding:"omitempty,min=1,max=200"`
	Email   *string `json:"email" binding:"omitempty,email,max=120"`
}

// UserController serves the /users endpoints
type UserController struct {
	users *services.UserService
	log   *zap.Logger
}

// NewUserController creates a new UserController
func NewUserController(users *services.UserService, log *zap.Logger) *UserController {
	return &UserController{users: users, log: log}
}

// CreateUser handles POST /users - creates a new user
func (uc *UserController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, uc.log, err)
		return
	}

	user := models.User{
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
	}

	err := uc.users.Create(c.Request.Context(), &user)
	middleware.RecordStoreOperation("user", "create", err == nil)
	if err != nil {
		respondError(c, uc.log, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUsers handles GET /users - lists every user
func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.users.List(c.Request.Context())
	if err != nil {
		respondError(c, uc.log, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /users/:id
func (uc *UserController) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := uc.users.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, uc.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /users/:id - applies the supplied fields only
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, uc.log, err)
		return
	}

	user, err := uc.users.Update(c.Request.Context(), id, services.UserUpdate{
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
	})
	middleware.RecordStoreOperation("user", "update", err == nil)
	if err != nil {
		respondError(c, uc.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /users/:id - removes the user and their orders
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	err := uc.users.Delete(c.Request.Context(), id)
	middleware.RecordStoreOperation("user", "delete", err == nil)
	if err != nil {
		respondError(c, uc.log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "User deleted"})
}
